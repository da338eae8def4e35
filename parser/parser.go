/*
File    : interop/parser/parser.go
Author  : Interop Authors
*/

/*
Package parser implements a recursive descent parser for the Interop
language. It consumes the lexer's token stream and produces the list of
top-level declarations of a source file.

The grammar needs one token of lookahead, which the parser keeps as a
CurrToken/NextToken window over the lexer. Every parse method follows the
same convention: on entry CurrToken is the first token of the construct,
on exit CurrToken is the first token after it.

Key disambiguation rules:
  - The value form of 'if' (if c then a else b) requires simple branches
    and is itself a simple expression; the statement form requires
    colon-introduced blocks. Mixed forms are rejected.
  - A condition position requires a simple expression, so a bare 'if'
    there is a parse error ('if (if ... then ... else ...) then' is the
    parenthesized workaround).
  - 'not' binds tighter than 'and', which binds tighter than 'or', all
    left-associative, expressed by grammar stratification.
  - Named call arguments must follow all positional ones.

Parsing aborts at the first error; no partial AST is returned.
*/
package parser

import (
	"github.com/interoplang/interop/ast"
	"github.com/interoplang/interop/lexer"
)

// Parser holds the lexer and the one-token lookahead window.
type Parser struct {
	Lex       *lexer.Lexer // Lexer producing the token stream
	Src       string       // Source text, for resolving token lexemes
	Path      string       // File path recorded on the parsed File node
	CurrToken lexer.Token  // Current token being processed
	NextToken lexer.Token  // Next token (for lookahead)
}

// NewParser creates and initializes a new Parser for the given source
// code. The underlying lexer is created with comments excluded and input
// markers enabled; the grammar anchors its top-level production on the
// end-of-input marker.
//
// Example:
//
//	par := NewParser("func my_func() -> 123")
//	file, err := par.Parse()
func NewParser(src string) *Parser {
	par := &Parser{
		Lex: lexer.NewLexer(src, false, true),
		Src: src,
	}
	// Prime the lookahead window. The first produced token is the virtual
	// start-of-input marker, which the extra advance skips.
	par.advance()
	par.advance()
	par.advance()
	return par
}

// advance moves the parser forward by one token:
// CurrToken becomes NextToken and NextToken is fetched from the lexer.
func (par *Parser) advance() {
	par.CurrToken = par.NextToken
	par.NextToken = par.Lex.NextToken()
}

// expectAdvance consumes the current token if it has the expected kind,
// or aborts with a parse error naming the offending token.
func (par *Parser) expectAdvance(expected lexer.TokenKind) error {
	if par.CurrToken.Kind != expected {
		return unexpected(par.CurrToken)
	}
	par.advance()
	return nil
}

// currIs checks whether the current token has the given kind.
func (par *Parser) currIs(kind lexer.TokenKind) bool {
	return par.CurrToken.Kind == kind
}

// nextIs checks whether the lookahead token has the given kind.
func (par *Parser) nextIs(kind lexer.TokenKind) bool {
	return par.NextToken.Kind == kind
}

// text returns the source lexeme of the given token.
func (par *Parser) text(tok lexer.Token) string {
	return tok.Text(par.Src)
}

// Parse parses a whole file: function declarations separated by
// semicolons (explicit or inserted), anchored on the end-of-input marker.
//
// Returns:
//   - *ast.File: the parsed declarations, or nil on error
//   - error: the first parse error encountered
func (par *Parser) Parse() (*ast.File, error) {
	decls := make([]ast.Decl, 0)

	for {
		// Tolerate leading and repeated statement terminators
		for par.currIs(lexer.SEMICOLON_DELIM) {
			par.advance()
		}
		if par.currIs(lexer.EOI_TYPE) {
			break
		}

		if !par.currIs(lexer.FUNC_KEY) {
			return nil, unexpected(par.CurrToken)
		}
		fn, err := par.parseFunc()
		if err != nil {
			return nil, err
		}
		decls = append(decls, fn)

		// Declarations are separated by Semi; the last one may run
		// straight into the end of input
		if par.currIs(lexer.SEMICOLON_DELIM) {
			continue
		}
		if par.currIs(lexer.EOI_TYPE) {
			break
		}
		return nil, unexpected(par.CurrToken)
	}

	return &ast.File{Path: par.Path, Decls: decls}, nil
}

// parseBlock parses a sequence of statements/expressions separated by
// semicolons. The block does not consume its terminator: 'end' (and
// 'else' when stopAtElse is set) is left for the enclosing construct.
// Trailing semicolons are tolerated and empty blocks are permitted; the
// final item's semicolon is optional when the terminator follows on the
// same line.
func (par *Parser) parseBlock(stopAtElse bool) (ast.Block, error) {
	items := make([]ast.StmtOrExpr, 0)

	for {
		for par.currIs(lexer.SEMICOLON_DELIM) {
			par.advance()
		}
		if par.atBlockEnd(stopAtElse) {
			break
		}
		if par.currIs(lexer.EOI_TYPE) {
			return ast.Block{}, unexpected(par.CurrToken)
		}

		var item ast.StmtOrExpr
		if par.currIs(lexer.FUNC_KEY) {
			fn, err := par.parseFunc()
			if err != nil {
				return ast.Block{}, err
			}
			item = fn
		} else {
			expr, err := par.parseExpr()
			if err != nil {
				return ast.Block{}, err
			}
			item = expr
		}
		items = append(items, item)

		if par.currIs(lexer.SEMICOLON_DELIM) {
			continue
		}
		if par.atBlockEnd(stopAtElse) {
			break
		}
		return ast.Block{}, unexpected(par.CurrToken)
	}

	return ast.Block{Items: items}, nil
}

// atBlockEnd reports whether the current token terminates a block.
func (par *Parser) atBlockEnd(stopAtElse bool) bool {
	if par.currIs(lexer.END_KEY) {
		return true
	}
	return stopAtElse && par.currIs(lexer.ELSE_KEY)
}
