/*
File    : interop/file/file_test.go
Author  : Interop Authors
*/
package file

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/interoplang/interop/config"
)

// TestTranspile runs the whole pipeline over a source string.
func TestTranspile(t *testing.T) {
	src := "func my_func(a: Int, b: String) -> Int:\n    123\nend"
	code, err := Transpile(src, "test.iop", nil)
	assert.NoError(t, err)
	assert.Contains(t, code, "func my_func(a int, b string) int {")
	assert.Contains(t, code, "return 123")
}

// TestTranspile_ConfigTypes threads config type mappings into the
// emitter.
func TestTranspile_ConfigTypes(t *testing.T) {
	cfg := &config.Config{Types: map[string]string{"Text": "string"}}
	code, err := Transpile("func f(a: Text) -> a", "test.iop", cfg)
	assert.NoError(t, err)
	assert.Contains(t, code, "func f(a string) {")
}

// TestTranspile_ParseError surfaces the parser's error unchanged.
func TestTranspile_ParseError(t *testing.T) {
	_, err := Transpile("func broken(:\nend", "test.iop", nil)
	assert.Error(t, err)
}

// TestRun writes generated code for a good file and a [line:col]
// diagnostic for a bad one.
func TestRun(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "good.iop")
	assert.NoError(t, os.WriteFile(good, []byte("func f() -> 1\n"), 0644))
	var out bytes.Buffer
	assert.NoError(t, Run(good, &out))
	assert.Contains(t, out.String(), "func f() {")

	bad := filepath.Join(dir, "bad.iop")
	assert.NoError(t, os.WriteFile(bad, []byte("func oops(:\nend\n"), 0644))
	out.Reset()
	assert.Error(t, Run(bad, &out))
	assert.Contains(t, out.String(), "PARSER ERROR")
	assert.Contains(t, out.String(), "[1:11]")

	out.Reset()
	assert.Error(t, Run(filepath.Join(dir, "missing.iop"), &out))
	assert.Contains(t, out.String(), "[FILE ERROR]")
}
