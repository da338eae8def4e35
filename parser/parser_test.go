/*
File    : interop/parser/parser_test.go
Author  : Interop Authors
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/interoplang/interop/ast"
	"github.com/interoplang/interop/lexer"
)

// parseExprString is a test helper that parses a single expression.
func parseExprString(t *testing.T, src string) (ast.Expr, error) {
	t.Helper()
	par := NewParser(src)
	return par.parseExpr()
}

// TestParser_FuncForms covers the accepted function body shapes.
func TestParser_FuncForms(t *testing.T) {
	accepted := []string{
		// arrow form with return type and block
		"func my_func() -> Int:\n    123\nend",
		// args plus typed block
		"func my_func(a: Int, b: String) -> Int:\n    123\nend",
		// untyped block
		"func my_func2():\n    123\nend",
		// arrow form, single expression body
		"func my_func3() -> 123",
		"func my_func4() -> println",
		// nested function declaration inside a block
		"func my_func2():\n    func my_func5() -> println\nend",
		// zero args, empty block
		"func empty():\nend",
		// default values after plain args
		"func defaults(a: Int, b: Int = 123) -> a",
	}
	for _, src := range accepted {
		par := NewParser(src)
		parsed, err := par.Parse()
		assert.NoError(t, err, src)
		assert.Len(t, parsed.Decls, 1, src)
	}

	rejected := []string{
		// parentheses are mandatory
		"func my_func4:\n    println\nend",
		// missing argument type
		"func f(a, b: Int) -> a",
		// positional argument after a default value
		"func f(a: Int = 123, b: Int) -> a",
		// bare expression body without the arrow
		"func f() println",
	}
	for _, src := range rejected {
		par := NewParser(src)
		_, err := par.Parse()
		assert.Error(t, err, src)
	}
}

// TestParser_FuncShape digs into the parsed structure of a full function.
func TestParser_FuncShape(t *testing.T) {
	src := "func my_func(a: Int, b: String = \"x\") -> Int:\n    123\nend"
	par := NewParser(src)
	parsed, err := par.Parse()
	assert.NoError(t, err)

	fn := parsed.Decls[0].(*ast.Func)
	assert.Equal(t, "my_func", fn.Name.Name)
	assert.Len(t, fn.Args, 2)
	assert.Equal(t, "a", fn.Args[0].Name.Name)
	assert.Equal(t, "Int", fn.Args[0].Type.Literal())
	assert.Nil(t, fn.Args[0].Default)
	assert.NotNil(t, fn.Args[1].Default)

	body := fn.Body.(ast.BlockBody)
	assert.Equal(t, "Int", body.Return.Literal())
	assert.Len(t, body.Block.Items, 1)
	assert.Equal(t, ast.IntLit{Value: 123}, body.Block.Items[0])
}

// TestParser_MultipleDecls checks that semicolon insertion separates
// top-level declarations across lines.
func TestParser_MultipleDecls(t *testing.T) {
	src := "func a() -> 1\nfunc b() -> 2\n"
	par := NewParser(src)
	parsed, err := par.Parse()
	assert.NoError(t, err)
	assert.Len(t, parsed.Decls, 2)
	assert.Equal(t, "a", parsed.Decls[0].(*ast.Func).Name.Name)
	assert.Equal(t, "b", parsed.Decls[1].(*ast.Func).Name.Name)
}

// TestParser_IfStatement covers the statement form: block branches,
// optional else, and else-if chains sharing a single 'end'.
func TestParser_IfStatement(t *testing.T) {
	// Then-block with no else
	expr, err := parseExprString(t, "if test then: blah; 123 end")
	assert.NoError(t, err)
	node := expr.(*ast.If)
	assert.Equal(t, ast.Ident{Name: "test"}, node.Cond)
	assert.Len(t, node.Then.Items, 2)
	assert.Equal(t, ast.Ident{Name: "blah"}, node.Then.Items[0])
	assert.Equal(t, ast.IntLit{Value: 123}, node.Then.Items[1])
	assert.Nil(t, node.Else)

	// Then and else blocks
	expr, err = parseExprString(t, "if test then:\n    blah\n    123\nelse:\n    456\n    blah\nend")
	assert.NoError(t, err)
	node = expr.(*ast.If)
	assert.Len(t, node.Then.Items, 2)
	els := node.Else.(ast.ElseBlock)
	assert.Len(t, els.Block.Items, 2)

	// An else-if chain keeps order and arity, one 'end' for the chain
	expr, err = parseExprString(t,
		"if test then:\n    1\nelse if test2 then:\n    2\nelse:\n    3\nend")
	assert.NoError(t, err)
	node = expr.(*ast.If)
	assert.Equal(t, ast.Ident{Name: "test"}, node.Cond)
	assert.Len(t, node.Then.Items, 1)
	chain := node.Else.(*ast.If)
	assert.Equal(t, ast.Ident{Name: "test2"}, chain.Cond)
	assert.Len(t, chain.Then.Items, 1)
	tail := chain.Else.(ast.ElseBlock)
	assert.Len(t, tail.Block.Items, 1)
}

// TestParser_IfThenElse covers the value form, including nesting through
// the else branch.
func TestParser_IfThenElse(t *testing.T) {
	expr, err := parseExprString(t, "if test then 123 else if test2 then 5 else 3")
	assert.NoError(t, err)

	node := expr.(*ast.IfThenElse)
	assert.Equal(t, ast.Ident{Name: "test"}, node.Cond)
	assert.Equal(t, ast.IntLit{Value: 123}, node.Then)

	nested := node.Else.(*ast.IfThenElse)
	assert.Equal(t, ast.Ident{Name: "test2"}, nested.Cond)
	assert.Equal(t, ast.IntLit{Value: 5}, nested.Then)
	assert.Equal(t, ast.IntLit{Value: 3}, nested.Else)
}

// TestParser_IfMixedFormsRejected checks that a block then-branch cannot
// pair with a simple else and vice versa.
func TestParser_IfMixedFormsRejected(t *testing.T) {
	rejected := []string{
		// block then, simple else
		"if test then:\n    blah\n    123\nelse 456",
		// simple then, block else
		"if test then blah else:\n    456\n    blah\nend",
		// value form is incomplete without an else
		"if test then blah",
	}
	for _, src := range rejected {
		_, err := parseExprString(t, src)
		assert.Error(t, err, src)
	}
}

// TestParser_NoNakedIfInCondition checks that the condition position
// requires a simple expression: a bare 'if' there is an error, while the
// parenthesized workaround parses.
func TestParser_NoNakedIfInCondition(t *testing.T) {
	_, err := parseExprString(t, "if if a then 1 else 2 then 3 else 4")
	assert.Error(t, err)
	perr := err.(*ParseError)
	assert.Equal(t, lexer.IF_KEY, perr.Kind)

	expr, err := parseExprString(t, "if (if a then 1 else 2) then 3 else 4")
	assert.NoError(t, err)
	node := expr.(*ast.IfThenElse)
	paren := node.Cond.(*ast.Paren)
	_, ok := paren.Expr.(*ast.IfThenElse)
	assert.True(t, ok)
}

// TestParser_NoStatementIfInParens checks that parentheses do not smuggle
// the statement form of 'if' into sub-expression position: only the value
// form is a simple expression.
func TestParser_NoStatementIfInParens(t *testing.T) {
	rejected := []string{
		"(if c then: 1 end)",
		"a and (if c then: 1 else: 2 end)",
	}
	for _, src := range rejected {
		_, err := parseExprString(t, src)
		assert.Error(t, err, src)
	}

	// The same rule holds through a full declaration parse
	par := NewParser("func f() -> (if c then: 1 end).x")
	_, err := par.Parse()
	assert.Error(t, err)
	perr := err.(*ParseError)
	assert.Equal(t, lexer.COLON_DELIM, perr.Kind)

	// The value form stays legal inside parentheses
	_, err = parseExprString(t, "(if c then 1 else 2).x")
	assert.NoError(t, err)
}

// TestParser_PostfixChains covers field and call chains over atoms and
// parenthesized expressions.
func TestParser_PostfixChains(t *testing.T) {
	// test.field
	expr, err := parseExprString(t, "test.field")
	assert.NoError(t, err)
	field := expr.(*ast.Field)
	assert.Equal(t, ast.Ident{Name: "test"}, field.Target)
	assert.Equal(t, "field", field.Name.Name)

	// test().field
	expr, err = parseExprString(t, "test().field")
	assert.NoError(t, err)
	field = expr.(*ast.Field)
	_, ok := field.Target.(*ast.Call)
	assert.True(t, ok)

	// (test).field
	expr, err = parseExprString(t, "(test).field")
	assert.NoError(t, err)
	field = expr.(*ast.Field)
	_, ok = field.Target.(*ast.Paren)
	assert.True(t, ok)

	// test()
	expr, err = parseExprString(t, "test()")
	assert.NoError(t, err)
	call := expr.(*ast.Call)
	assert.Empty(t, call.Args)

	// test.field()
	expr, err = parseExprString(t, "test.field()")
	assert.NoError(t, err)
	call = expr.(*ast.Call)
	_, ok = call.Target.(*ast.Field)
	assert.True(t, ok)

	// test()()
	expr, err = parseExprString(t, "test()()")
	assert.NoError(t, err)
	call = expr.(*ast.Call)
	_, ok = call.Target.(*ast.Call)
	assert.True(t, ok)

	// (test)()
	expr, err = parseExprString(t, "(test)()")
	assert.NoError(t, err)
	call = expr.(*ast.Call)
	_, ok = call.Target.(*ast.Paren)
	assert.True(t, ok)

	// a.b().c() builds a left-nested tree
	expr, err = parseExprString(t, "a.b().c()")
	assert.NoError(t, err)
	outer := expr.(*ast.Call)
	cField := outer.Target.(*ast.Field)
	assert.Equal(t, "c", cField.Name.Name)
	bCall := cField.Target.(*ast.Call)
	bField := bCall.Target.(*ast.Field)
	assert.Equal(t, "b", bField.Name.Name)
	assert.Equal(t, ast.Ident{Name: "a"}, bField.Target)
}

// TestParser_CallArgs covers positional, named, and mixed argument lists
// plus the ordering rule.
func TestParser_CallArgs(t *testing.T) {
	// Positional
	expr, err := parseExprString(t, `test(a, 123, "test")`)
	assert.NoError(t, err)
	call := expr.(*ast.Call)
	assert.Len(t, call.Args, 3)
	assert.Nil(t, call.Args[0].Name)

	// Named
	expr, err = parseExprString(t, `test(a=a, b=123, c="test")`)
	assert.NoError(t, err)
	call = expr.(*ast.Call)
	assert.Len(t, call.Args, 3)
	assert.Equal(t, "a", call.Args[0].Name.Name)
	assert.Equal(t, "c", call.Args[2].Name.Name)

	// Positional then named
	expr, err = parseExprString(t, `test(a, b=123, c="test")`)
	assert.NoError(t, err)
	call = expr.(*ast.Call)
	assert.Nil(t, call.Args[0].Name)
	assert.NotNil(t, call.Args[1].Name)

	// Positional after named is rejected
	_, err = parseExprString(t, `test(a=123, b="test", a)`)
	assert.Error(t, err)
}

// TestParser_BoolCond checks stratified precedence: not > and > or, all
// left-associative.
func TestParser_BoolCond(t *testing.T) {
	expr, err := parseExprString(t, "a or b and not c")
	assert.NoError(t, err)

	or := expr.(*ast.BoolCond)
	assert.Equal(t, ast.BoolOr, or.Op)
	assert.Equal(t, ast.Ident{Name: "a"}, or.Left)

	and := or.Right.(*ast.BoolCond)
	assert.Equal(t, ast.BoolAnd, and.Op)
	assert.Equal(t, ast.Ident{Name: "b"}, and.Left)

	not := and.Right.(*ast.NotCond)
	assert.Equal(t, ast.Ident{Name: "c"}, not.Expr)

	// Left associativity
	expr, err = parseExprString(t, "a or b or c")
	assert.NoError(t, err)
	or = expr.(*ast.BoolCond)
	inner := or.Left.(*ast.BoolCond)
	assert.Equal(t, ast.Ident{Name: "a"}, inner.Left)
	assert.Equal(t, ast.Ident{Name: "b"}, inner.Right)
	assert.Equal(t, ast.Ident{Name: "c"}, or.Right)

	// not nests
	expr, err = parseExprString(t, "not not a")
	assert.NoError(t, err)
	outerNot := expr.(*ast.NotCond)
	_, ok := outerNot.Expr.(*ast.NotCond)
	assert.True(t, ok)
}

// TestParser_ErrorPositions checks that the abort error carries the
// offending token's kind and byte range, and that lexer error tokens
// surface as parse errors at their position.
func TestParser_ErrorPositions(t *testing.T) {
	// 'func' without a name: the '(' is the offending token
	par := NewParser("func (")
	_, err := par.Parse()
	assert.Error(t, err)
	perr := err.(*ParseError)
	assert.Equal(t, lexer.LEFT_PAREN, perr.Kind)
	assert.Equal(t, uint32(5), perr.Start)
	assert.Equal(t, uint32(6), perr.End)

	// A malformed char literal aborts the parse where it sits
	par = NewParser("func f() -> 'ab'")
	_, err = par.Parse()
	assert.Error(t, err)
	perr = err.(*ParseError)
	assert.Equal(t, lexer.ERROR_TYPE, perr.Kind)
	assert.Equal(t, uint32(12), perr.Start)
	assert.Equal(t, uint32(16), perr.End)

	// Line/column are derivable from the byte range
	src := "func f() ->\n    'ab'"
	par = NewParser(src)
	_, err = par.Parse()
	perr = err.(*ParseError)
	line, col := perr.RowCol(src)
	assert.Equal(t, uint32(2), line)
	assert.Equal(t, uint32(5), col)
}

// TestParser_BlockTermination checks trailing semicolons before 'end'
// and empty blocks.
func TestParser_BlockTermination(t *testing.T) {
	accepted := []string{
		"func f():\n    1;\nend",
		"func f():\n    1;;\nend",
		"func f():\nend",
		"func f():\n    1\n    2\nend",
	}
	for _, src := range accepted {
		par := NewParser(src)
		_, err := par.Parse()
		assert.NoError(t, err, src)
	}
}

// TestParser_StringAndCharAtoms checks the literal payloads reach the
// AST with the right cache polarity.
func TestParser_StringAndCharAtoms(t *testing.T) {
	expr, err := parseExprString(t, `f("plain", "with\nescape", 'c')`)
	assert.NoError(t, err)
	call := expr.(*ast.Call)

	plain := call.Args[0].Expr.(ast.StringLit)
	assert.Equal(t, `"plain"`, plain.Unparsed)
	assert.True(t, plain.ParsedOK)
	assert.Equal(t, "plain", plain.Parsed)

	escaped := call.Args[1].Expr.(ast.StringLit)
	assert.Equal(t, `"with\nescape"`, escaped.Unparsed)
	assert.False(t, escaped.ParsedOK)

	ch := call.Args[2].Expr.(ast.CharLit)
	assert.Equal(t, `'c'`, ch.Unparsed)
	assert.True(t, ch.ParsedOK)
}
