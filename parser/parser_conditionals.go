/*
File    : interop/parser/parser_conditionals.go
Author  : Interop Authors
*/
package parser

import (
	"github.com/interoplang/interop/ast"
	"github.com/interoplang/interop/lexer"
)

// ifForm constrains which surface forms of 'if' a call site accepts.
type ifForm int

const (
	// ifAnyForm: expression position - statement or value form
	ifAnyForm ifForm = iota
	// ifStmtForm: else-if chain position - statement form only
	ifStmtForm
	// ifValueForm: sub-expression position - value form only
	ifValueForm
)

// parseIf parses both surface forms of 'if'.
//
// Syntax:
//
//	if cond then SimpleExpr else SimpleExpr          (value form)
//	if cond then : Block ( else ElseTail )? end      (statement form)
//	ElseTail := if ... | : Block
//
// The token after 'then' decides the form: a colon starts a block (and
// with it the statement form), anything else starts the simple
// then-branch of the value form. Mixed forms - a block then-branch with a
// simple else, or a simple then-branch with a block else - are parse
// errors, as is a form not permitted by the call site.
//
// In an else-if chain only the innermost arm carries the single 'end'
// that terminates the whole chain.
func (par *Parser) parseIf(form ifForm) (ast.Expr, error) {
	if err := par.expectAdvance(lexer.IF_KEY); err != nil {
		return nil, err
	}
	cond, err := par.parseCond()
	if err != nil {
		return nil, err
	}
	if err := par.expectAdvance(lexer.THEN_KEY); err != nil {
		return nil, err
	}

	if par.currIs(lexer.COLON_DELIM) {
		// Statement form. Rejected where a simple expression is required.
		if form == ifValueForm {
			return nil, unexpected(par.CurrToken)
		}
		return par.parseIfBlockTail(cond)
	}

	// Value form. Rejected in an else-if chain, which requires blocks.
	if form == ifStmtForm {
		return nil, unexpected(par.CurrToken)
	}
	then, err := par.parseSimpleExpr()
	if err != nil {
		return nil, err
	}
	if err := par.expectAdvance(lexer.ELSE_KEY); err != nil {
		return nil, err
	}
	if par.currIs(lexer.COLON_DELIM) {
		// Simple then-branch with a block else-branch
		return nil, unexpected(par.CurrToken)
	}
	els, err := par.parseSimpleExpr()
	if err != nil {
		return nil, err
	}
	return &ast.IfThenElse{Cond: cond, Then: then, Else: els}, nil
}

// parseIfBlockTail parses the statement form after 'then', starting at
// the colon: the then-block, the optional else branch, and - unless a
// nested else-if consumed it - the terminating 'end'.
func (par *Parser) parseIfBlockTail(cond ast.SimpleExpr) (ast.Expr, error) {
	par.advance() // ':'
	then, err := par.parseBlock(true)
	if err != nil {
		return nil, err
	}
	node := &ast.If{Cond: cond, Then: then}

	if par.currIs(lexer.ELSE_KEY) {
		par.advance()
		if par.currIs(lexer.IF_KEY) {
			// else-if chain: the nested if consumes the shared 'end'
			tail, err := par.parseIf(ifStmtForm)
			if err != nil {
				return nil, err
			}
			node.Else = tail.(*ast.If)
			return node, nil
		}
		// Block else-branch; a simple else after a block then is the
		// mixed form and errors on the missing colon
		if err := par.expectAdvance(lexer.COLON_DELIM); err != nil {
			return nil, err
		}
		block, err := par.parseBlock(false)
		if err != nil {
			return nil, err
		}
		node.Else = ast.ElseBlock{Block: block}
	}

	if err := par.expectAdvance(lexer.END_KEY); err != nil {
		return nil, err
	}
	return node, nil
}
