/*
File    : interop/file/file.go
Author  : Interop Authors
*/

// Package file implements the file mode of the transpiler: read an
// Interop source file, run it through the lexer/parser/emitter pipeline,
// and write either the generated Go text or a diagnostic to the given
// writer.
package file

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/interoplang/interop/config"
	"github.com/interoplang/interop/emitter"
	"github.com/interoplang/interop/parser"
)

// Color definitions for diagnostics written in file mode.
var redColor = color.New(color.FgRed)

// Transpile runs the front end over src and returns the generated Go
// source. The path is recorded on the parsed file node. A nil cfg runs
// with the emitter's built-in type map.
//
// On a parse error the returned error is the parser's *ParseError,
// carrying the offending token kind and byte range.
func Transpile(src, path string, cfg *config.Config) (string, error) {
	par := parser.NewParser(src)
	par.Path = path
	parsed, err := par.Parse()
	if err != nil {
		return "", err
	}

	em := emitter.NewGoEmitter()
	if cfg != nil {
		em.AddTypes(cfg.Types)
	}
	return em.EmitFile(parsed), nil
}

// Run reads the named file, transpiles it, and writes the result to
// writer. Diagnostics go to the same writer: the parse error is shown
// with its 1-based line and column, resolved from the error's byte range.
//
// Returns a non-nil error when the file cannot be read or does not parse,
// so the caller can choose the process exit status.
func Run(fileName string, writer io.Writer) error {
	data, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(writer, "[FILE ERROR] %v\n", err)
		return err
	}
	src := string(data)

	cfg, err := config.LoadDefault()
	if err != nil {
		redColor.Fprintf(writer, "[CONFIG ERROR] %v\n", err)
		return err
	}

	code, err := Transpile(src, fileName, cfg)
	if err != nil {
		redColor.Fprintf(writer, "%s\n", Diagnostic(src, err))
		return err
	}

	fmt.Fprint(writer, code)
	return nil
}

// Diagnostic renders a transpile error for humans. Parse errors gain a
// [line:col] prefix resolved from their byte range; other errors pass
// through unchanged.
func Diagnostic(src string, err error) string {
	if perr, ok := err.(*parser.ParseError); ok {
		line, col := perr.RowCol(src)
		return fmt.Sprintf("[%d:%d] %v", line, col, perr)
	}
	return err.Error()
}
