/*
File    : interop/parser/parser_expressions.go
Author  : Interop Authors
*/
package parser

import (
	"strconv"

	"github.com/interoplang/interop/ast"
	"github.com/interoplang/interop/lexer"
)

// parseExpr parses a full expression: either the statement form of 'if'
// or a simple expression.
func (par *Parser) parseExpr() (ast.Expr, error) {
	if par.currIs(lexer.IF_KEY) {
		return par.parseIf(ifAnyForm)
	}
	return par.parseSimpleExpr()
}

// parseSimpleExpr parses a simple expression - anything that may appear
// as a sub-expression. A leading 'if' here must be the value form.
func (par *Parser) parseSimpleExpr() (ast.SimpleExpr, error) {
	if par.currIs(lexer.IF_KEY) {
		expr, err := par.parseIf(ifValueForm)
		if err != nil {
			return nil, err
		}
		return expr.(*ast.IfThenElse), nil
	}
	return par.parseOr()
}

// parseCond parses a condition. The condition position requires a simple
// expression, and a bare 'if' is not one - conditions starting with 'if'
// must be parenthesized.
func (par *Parser) parseCond() (ast.SimpleExpr, error) {
	if par.currIs(lexer.IF_KEY) {
		return nil, unexpected(par.CurrToken)
	}
	return par.parseOr()
}

// parseOr parses the 'or' stratum: and-expressions joined by 'or',
// left-associative.
func (par *Parser) parseOr() (ast.SimpleExpr, error) {
	left, err := par.parseAnd()
	if err != nil {
		return nil, err
	}
	for par.currIs(lexer.OR_KEY) {
		par.advance()
		right, err := par.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &ast.BoolCond{Op: ast.BoolOr, Left: left, Right: right}
	}
	return left, nil
}

// parseAnd parses the 'and' stratum: not-expressions joined by 'and',
// left-associative. 'and' binds tighter than 'or'.
func (par *Parser) parseAnd() (ast.SimpleExpr, error) {
	left, err := par.parseNot()
	if err != nil {
		return nil, err
	}
	for par.currIs(lexer.AND_KEY) {
		par.advance()
		right, err := par.parseNot()
		if err != nil {
			return nil, err
		}
		left = &ast.BoolCond{Op: ast.BoolAnd, Left: left, Right: right}
	}
	return left, nil
}

// parseNot parses the 'not' stratum. 'not' binds tighter than 'and' and
// nests ('not not x' is legal).
func (par *Parser) parseNot() (ast.SimpleExpr, error) {
	if par.currIs(lexer.NOT_KEY) {
		par.advance()
		expr, err := par.parseNot()
		if err != nil {
			return nil, err
		}
		return &ast.NotCond{Expr: expr}, nil
	}
	return par.parsePostfix()
}

// parsePostfix parses an atom followed by any number of '.field' and
// '(args)' suffixes. The suffixes build a left-nested Field/Call tree, so
// a.b().c() becomes Call(Field(Call(Field(a, b)), c)).
func (par *Parser) parsePostfix() (ast.SimpleExpr, error) {
	expr, err := par.parseAtom()
	if err != nil {
		return nil, err
	}

	for {
		switch par.CurrToken.Kind {
		case lexer.DOT_OP:
			par.advance()
			if !par.currIs(lexer.IDENTIFIER_ID) {
				return nil, unexpected(par.CurrToken)
			}
			name := ast.Ident{Name: par.text(par.CurrToken)}
			par.advance()
			expr = &ast.Field{Target: expr, Name: name}
		case lexer.LEFT_PAREN:
			par.advance()
			args, err := par.parseCallArgs()
			if err != nil {
				return nil, err
			}
			expr = &ast.Call{Target: expr, Args: args}
		default:
			return expr, nil
		}
	}
}

// parseCallArgs parses a parenthesized call argument list. The opening
// parenthesis has been consumed; the closing one is consumed here.
//
// An argument is either positional or named (name=expr). Once a named
// argument appears, a positional one is a parse error.
func (par *Parser) parseCallArgs() ([]ast.CallArg, error) {
	args := make([]ast.CallArg, 0)
	if par.currIs(lexer.RIGHT_PAREN) {
		par.advance()
		return args, nil
	}

	named := false
	for {
		var arg ast.CallArg
		if par.currIs(lexer.IDENTIFIER_ID) && par.nextIs(lexer.ASSIGN_OP) {
			name := ast.Ident{Name: par.text(par.CurrToken)}
			par.advance() // name
			par.advance() // '='
			expr, err := par.parseSimpleExpr()
			if err != nil {
				return nil, err
			}
			arg = ast.CallArg{Name: &name, Expr: expr}
			named = true
		} else {
			if named {
				// Positional argument after a named one
				return nil, unexpected(par.CurrToken)
			}
			expr, err := par.parseSimpleExpr()
			if err != nil {
				return nil, err
			}
			arg = ast.CallArg{Expr: expr}
		}
		args = append(args, arg)

		if par.currIs(lexer.COMMA_DELIM) {
			par.advance()
			continue
		}
		if err := par.expectAdvance(lexer.RIGHT_PAREN); err != nil {
			return nil, err
		}
		return args, nil
	}
}

// parseAtom parses a terminal expression: identifier, literal, boolean,
// or a parenthesized expression.
func (par *Parser) parseAtom() (ast.SimpleExpr, error) {
	tok := par.CurrToken
	switch tok.Kind {
	case lexer.IDENTIFIER_ID:
		par.advance()
		return ast.Ident{Name: par.text(tok)}, nil
	case lexer.NUMBER_LIT:
		value, err := strconv.ParseInt(par.text(tok), 10, 32)
		if err != nil {
			// Out of range for a 32-bit literal
			return nil, unexpected(tok)
		}
		par.advance()
		return ast.IntLit{Value: int32(value)}, nil
	case lexer.STRING_LIT:
		par.advance()
		return ast.NewStringLit(par.text(tok), tok.HasEscapes), nil
	case lexer.CHAR_LIT:
		par.advance()
		return ast.NewCharLit(par.text(tok), tok.HasEscapes), nil
	case lexer.TRUE_KEY:
		par.advance()
		return ast.BoolLit{Value: true}, nil
	case lexer.FALSE_KEY:
		par.advance()
		return ast.BoolLit{Value: false}, nil
	case lexer.LEFT_PAREN:
		// Parentheses admit only simple expressions: the value form of
		// 'if' may be wrapped here, the statement form may not appear as
		// a sub-expression at all
		par.advance()
		expr, err := par.parseSimpleExpr()
		if err != nil {
			return nil, err
		}
		if err := par.expectAdvance(lexer.RIGHT_PAREN); err != nil {
			return nil, err
		}
		return &ast.Paren{Expr: expr}, nil
	default:
		return nil, unexpected(tok)
	}
}
