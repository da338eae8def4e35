/*
File    : interop/parser/errors.go
Author  : Interop Authors
*/
package parser

import (
	"fmt"

	"github.com/interoplang/interop/lexer"
)

// ParseError reports the first point where the token stream stopped
// matching the grammar. It carries the offending token's kind and byte
// range and nothing else - no recovery, no suggestions. Line and column
// can be derived from the range with the lexer's position resolver.
type ParseError struct {
	Kind  lexer.TokenKind // Kind of the offending token
	Start uint32          // Start byte offset of the offending token
	End   uint32          // End byte offset of the offending token
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("PARSER ERROR: unexpected %s at bytes %d..%d", e.Kind, e.Start, e.End)
}

// RowCol resolves the error's start offset to a 1-based (line, column)
// pair using the stateless resolver. src must be the source text the
// parse ran over.
func (e *ParseError) RowCol(src string) (uint32, uint32) {
	return lexer.RowCol(src, e.Start)
}

// unexpected builds the abort error for the given token. Lexer error
// tokens flow through here too: the parser treats any in-band Error token
// as a parse error at its position.
func unexpected(tok lexer.Token) error {
	return &ParseError{
		Kind:  tok.Kind,
		Start: tok.Start,
		End:   tok.End,
	}
}
