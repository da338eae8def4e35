/*
File    : interop/parser/parser_functions.go
Author  : Interop Authors
*/
package parser

import (
	"github.com/interoplang/interop/ast"
	"github.com/interoplang/interop/lexer"
)

// parseFunc parses a function declaration.
//
// Syntax:
//
//	func NAME ( args? ) -> SimpleExpr
//	func NAME ( args? ) ( -> Type )? : Block end
//
// Parentheses are mandatory even for zero-argument functions.
func (par *Parser) parseFunc() (*ast.Func, error) {
	if err := par.expectAdvance(lexer.FUNC_KEY); err != nil {
		return nil, err
	}

	if !par.currIs(lexer.IDENTIFIER_ID) {
		return nil, unexpected(par.CurrToken)
	}
	name := ast.Ident{Name: par.text(par.CurrToken)}
	par.advance()

	if err := par.expectAdvance(lexer.LEFT_PAREN); err != nil {
		return nil, err
	}
	args, err := par.parseFuncArgs()
	if err != nil {
		return nil, err
	}
	if err := par.expectAdvance(lexer.RIGHT_PAREN); err != nil {
		return nil, err
	}

	body, err := par.parseFuncBody()
	if err != nil {
		return nil, err
	}

	return &ast.Func{Name: name, Args: args, Body: body}, nil
}

// parseFuncArgs parses a possibly empty, comma-separated argument list.
// The closing parenthesis is left for the caller.
//
// Every argument carries a type; a default value is optional, but once an
// argument has a default every later argument must have one too.
func (par *Parser) parseFuncArgs() ([]ast.FuncArg, error) {
	args := make([]ast.FuncArg, 0)
	if par.currIs(lexer.RIGHT_PAREN) {
		return args, nil
	}

	seenDefault := false
	for {
		arg, err := par.parseFuncArg(&seenDefault)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		if par.currIs(lexer.COMMA_DELIM) {
			par.advance()
			continue
		}
		return args, nil
	}
}

// parseFuncArg parses a single 'name: Type (= default)?' argument.
func (par *Parser) parseFuncArg(seenDefault *bool) (ast.FuncArg, error) {
	nameTok := par.CurrToken
	if !par.currIs(lexer.IDENTIFIER_ID) {
		return ast.FuncArg{}, unexpected(par.CurrToken)
	}
	name := ast.Ident{Name: par.text(nameTok)}
	par.advance()

	if err := par.expectAdvance(lexer.COLON_DELIM); err != nil {
		return ast.FuncArg{}, err
	}
	typ, err := par.parseType()
	if err != nil {
		return ast.FuncArg{}, err
	}

	var def ast.SimpleExpr
	if par.currIs(lexer.ASSIGN_OP) {
		par.advance()
		def, err = par.parseSimpleExpr()
		if err != nil {
			return ast.FuncArg{}, err
		}
		*seenDefault = true
	} else if *seenDefault {
		// A non-default argument after a defaulted one
		return ast.FuncArg{}, unexpected(nameTok)
	}

	return ast.FuncArg{Name: name, Type: typ, Default: def}, nil
}

// parseType parses a type annotation. Only simple named types exist for
// now.
func (par *Parser) parseType() (ast.Type, error) {
	if !par.currIs(lexer.IDENTIFIER_ID) {
		return nil, unexpected(par.CurrToken)
	}
	typ := ast.SimpleType{Name: ast.Ident{Name: par.text(par.CurrToken)}}
	par.advance()
	return typ, nil
}

// parseFuncBody parses one of the two body shapes:
//   - arrow form: '->' SimpleExpr
//   - block form: ('->' Type)? ':' Block 'end'
//
// After '->' one token of lookahead decides between the shapes: an
// identifier followed by ':' is a return type, anything else starts the
// arrow expression.
func (par *Parser) parseFuncBody() (ast.FuncBody, error) {
	switch par.CurrToken.Kind {
	case lexer.RARROW_OP:
		par.advance()
		if par.currIs(lexer.IDENTIFIER_ID) && par.nextIs(lexer.COLON_DELIM) {
			// '-> Type : Block end'
			ret, err := par.parseType()
			if err != nil {
				return nil, err
			}
			par.advance() // ':'
			block, err := par.parseBlock(false)
			if err != nil {
				return nil, err
			}
			if err := par.expectAdvance(lexer.END_KEY); err != nil {
				return nil, err
			}
			return ast.BlockBody{Return: ret, Block: block}, nil
		}
		// '-> SimpleExpr'
		expr, err := par.parseSimpleExpr()
		if err != nil {
			return nil, err
		}
		return ast.ExprBody{Expr: expr}, nil
	case lexer.COLON_DELIM:
		par.advance()
		block, err := par.parseBlock(false)
		if err != nil {
			return nil, err
		}
		if err := par.expectAdvance(lexer.END_KEY); err != nil {
			return nil, err
		}
		return ast.BlockBody{Block: block}, nil
	default:
		return nil, unexpected(par.CurrToken)
	}
}
