/*
File    : interop/emitter/emitter.go
Author  : Interop Authors
*/

// Package emitter lowers the Interop AST into Go source text.
//
// The design challenge is the expression/statement mismatch: Interop's
// 'if' is an expression and function bodies yield their final value,
// while in Go 'if' is a statement and values leave a function through
// 'return'. The emitter bridges the gap by threading a 'return' prefix
// onto the final item of a function body and by lowering both 'if' forms
// to Go if statements.
package emitter

import (
	"bytes"
	"strconv"

	"github.com/interoplang/interop/ast"
)

const bufferSize = 65536

// GoEmitter walks an AST and appends Go source text to an internal
// buffer. It is a read-only consumer of the tree; a single emitter can be
// reused across files by calling Reset between them.
type GoEmitter struct {
	typeMap map[string]string
	indent  int
	code    bytes.Buffer
}

// NewGoEmitter creates an emitter with the built-in type mapping.
// The mapping is a small, closed table from Interop type names to Go type
// names; unknown names pass through verbatim.
func NewGoEmitter() *GoEmitter {
	em := &GoEmitter{
		typeMap: map[string]string{
			"Int":    "int",
			"String": "string",
		},
	}
	em.code.Grow(bufferSize)
	return em
}

// AddTypes merges extra type mappings over the built-in table. The
// config layer feeds user-supplied mappings through here.
func (em *GoEmitter) AddTypes(types map[string]string) {
	for name, target := range types {
		em.typeMap[name] = target
	}
}

// Reset clears the output buffer so the emitter can be reused.
func (em *GoEmitter) Reset() {
	em.indent = 0
	em.code.Reset()
}

// mapType translates an Interop type name to its Go spelling.
func (em *GoEmitter) mapType(name string) string {
	if mapped, ok := em.typeMap[name]; ok {
		return mapped
	}
	return name
}

// pushIndent writes one tab per indentation level.
func (em *GoEmitter) pushIndent() {
	for i := 0; i < em.indent; i++ {
		em.code.WriteByte('\t')
	}
}

// EmitFile generates Go source for every declaration of a file and
// returns the accumulated text.
func (em *GoEmitter) EmitFile(file *ast.File) string {
	return em.EmitDecls(file.Decls)
}

// EmitDecls generates Go source for a list of top-level declarations.
func (em *GoEmitter) EmitDecls(decls []ast.Decl) string {
	for idx, decl := range decls {
		if idx > 0 {
			em.code.WriteByte('\n')
		}
		switch d := decl.(type) {
		case *ast.Func:
			em.genFunc(d)
			em.code.WriteByte('\n')
		}
	}
	return em.code.String()
}

// genFunc writes 'func NAME(args) RET? BODY'. Arguments are emitted as
// 'name type' pairs; the return type, when annotated, precedes the body.
func (em *GoEmitter) genFunc(fn *ast.Func) {
	em.code.WriteString("func ")
	em.code.WriteString(fn.Name.Name)

	em.code.WriteByte('(')
	for idx, arg := range fn.Args {
		em.code.WriteString(arg.Name.Name)
		em.code.WriteByte(' ')
		em.code.WriteString(em.mapType(arg.Type.Literal()))
		if idx < len(fn.Args)-1 {
			em.code.WriteString(", ")
		}
	}
	em.code.WriteString(") ")

	switch body := fn.Body.(type) {
	case ast.BlockBody:
		if body.Return != nil {
			em.code.WriteString(em.mapType(body.Return.Literal()))
			em.code.WriteByte(' ')
		}
		em.genBlock(&body.Block, true)
	case ast.ExprBody:
		em.genSingleStmtBlock(body.Expr, true)
	}
}

// genField writes a field access chain.
func (em *GoEmitter) genField(field *ast.Field) {
	em.genSimpleExpr(field.Target)
	em.code.WriteByte('.')
	em.code.WriteString(field.Name.Name)
}

// genCall writes a call. Named arguments are written in source order
// without consulting the callee's parameter list; for a purely positional
// target convention this can mis-bind out-of-order named arguments. See
// the design notes.
func (em *GoEmitter) genCall(call *ast.Call) {
	em.genSimpleExpr(call.Target)
	em.code.WriteByte('(')
	for idx, arg := range call.Args {
		em.genSimpleExpr(arg.Expr)
		if idx < len(call.Args)-1 {
			em.code.WriteString(", ")
		}
	}
	em.code.WriteByte(')')
}

// genNotCond writes a logical negation.
func (em *GoEmitter) genNotCond(cond *ast.NotCond) {
	em.code.WriteByte('!')
	em.genSimpleExpr(cond.Expr)
}

// genBoolCond writes a binary boolean condition.
func (em *GoEmitter) genBoolCond(cond *ast.BoolCond) {
	em.genSimpleExpr(cond.Left)
	switch cond.Op {
	case ast.BoolAnd:
		em.code.WriteString(" && ")
	case ast.BoolOr:
		em.code.WriteString(" || ")
	}
	em.genSimpleExpr(cond.Right)
}

// genIfThenElse lowers the value form of 'if' to a Go if statement with
// single-expression branches, each wrapped in a one-line block. In
// function-body position the branches carry the 'return' prefix so the
// value leaves the function.
func (em *GoEmitter) genIfThenElse(ite *ast.IfThenElse, funcBlock bool) {
	em.code.WriteString("if ")
	em.genSimpleExpr(ite.Cond)
	em.code.WriteByte(' ')
	em.genSingleStmtBlock(ite.Then, funcBlock)
	em.code.WriteString(" else ")
	em.genSingleStmtBlock(ite.Else, funcBlock)
}

// genIf lowers the statement form of 'if', preserving else-if chaining.
// In function-body tail position the 'return' prefix is pushed into the
// tail of every branch block, so each path yields the function's value.
func (em *GoEmitter) genIf(node *ast.If, funcBlock bool) {
	em.code.WriteString("if ")
	em.genSimpleExpr(node.Cond)
	em.code.WriteByte(' ')
	em.genBlock(&node.Then, funcBlock)

	switch els := node.Else.(type) {
	case *ast.If:
		em.code.WriteString(" else ")
		em.genIf(els, funcBlock)
	case ast.ElseBlock:
		em.code.WriteString(" else ")
		em.genBlock(&els.Block, funcBlock)
	}
}

// genSimpleExpr writes a simple expression. Literals are emitted from
// their unparsed source text, so string and character literals land in
// the output bit-for-bit as written in the source.
func (em *GoEmitter) genSimpleExpr(expr ast.SimpleExpr) {
	switch node := expr.(type) {
	case ast.Ident:
		em.code.WriteString(node.Name)
	case ast.IntLit:
		em.code.WriteString(strconv.FormatInt(int64(node.Value), 10))
	case ast.StringLit:
		em.code.WriteString(node.Unparsed)
	case ast.CharLit:
		em.code.WriteString(node.Unparsed)
	case ast.BoolLit:
		em.code.WriteString(strconv.FormatBool(node.Value))
	case *ast.Field:
		em.genField(node)
	case *ast.Call:
		em.genCall(node)
	case *ast.IfThenElse:
		em.genIfThenElse(node, false)
	case *ast.NotCond:
		em.genNotCond(node)
	case *ast.BoolCond:
		em.genBoolCond(node)
	case *ast.Paren:
		em.code.WriteByte('(')
		em.genExpr(node.Expr)
		em.code.WriteByte(')')
	}
}

// genExpr writes a full expression.
func (em *GoEmitter) genExpr(expr ast.Expr) {
	switch node := expr.(type) {
	case *ast.If:
		em.genIf(node, false)
	case ast.SimpleExpr:
		em.genSimpleExpr(node)
	}
}

// genSingleStmtBlock writes a one-expression block. In function-body
// position the expression is returned; a value 'if' in that position
// pushes the 'return' down into its branches instead, since Go has no
// if expression to return.
func (em *GoEmitter) genSingleStmtBlock(expr ast.SimpleExpr, funcBlock bool) {
	em.code.WriteString("{\n")
	em.indent++
	em.pushIndent()

	if ite, ok := expr.(*ast.IfThenElse); ok && funcBlock {
		em.genIfThenElse(ite, true)
	} else {
		if funcBlock {
			em.code.WriteString("return ")
		}
		em.genSimpleExpr(expr)
	}
	em.code.WriteByte('\n')

	em.indent--
	em.pushIndent()
	em.code.WriteByte('}')
}

// genBlock writes a braced, tab-indented block. When the block is a
// function body the final item is prefixed with 'return' so the
// expression-oriented body yields its value. The prefix applies only when
// that item is an expression: a nested function declaration gets none,
// and a tail 'if' of either form pushes the 'return' down into its
// branches instead, since Go has no if expression to return.
func (em *GoEmitter) genBlock(block *ast.Block, funcBlock bool) {
	em.code.WriteString("{\n")
	em.indent++

	for idx, item := range block.Items {
		em.pushIndent()
		last := idx == len(block.Items)-1

		switch node := item.(type) {
		case *ast.Func:
			em.genFunc(node)
		case *ast.IfThenElse:
			em.genIfThenElse(node, funcBlock && last)
		case *ast.If:
			em.genIf(node, funcBlock && last)
		case ast.Expr:
			if funcBlock && last {
				em.code.WriteString("return ")
			}
			em.genExpr(node)
		}

		em.code.WriteByte('\n')
	}

	em.indent--
	em.pushIndent()
	em.code.WriteByte('}')
}
