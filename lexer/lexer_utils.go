/*
File    : interop/lexer/lexer_utils.go
Author  : Interop Authors
*/
package lexer

import (
	"unicode"
	"unicode/utf8"
)

// isHexDigit reports whether c is an ASCII hexadecimal digit.
// Used when validating \xHH and \uHHHHHH escape payloads.
func isHexDigit(c rune) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// isIdentCont reports whether c may continue an identifier.
// Identifiers continue with '_' or any Unicode alphanumeric scalar.
func isIdentCont(c rune) bool {
	return c == '_' || unicode.IsLetter(c) || unicode.IsDigit(c)
}

// readNumber reads a numeric literal whose first (nonzero) digit has
// already been consumed at byte offset start.
//
// The grammar is [1-9][0-9]* - no floats, no sign, no leading zero.
// A rune past the end of the literal is pushed back for the main loop.
//
// Returns:
//   - Token: A NUMBER_LIT token spanning the digits
func (lex *Lexer) readNumber(start int) Token {
	end := start + 1
	for {
		idx, ch, ok := lex.nextChar()
		if !ok {
			break
		}
		if ch < '0' || ch > '9' {
			// Not a digit - save it since it is not processed yet
			lex.unread(idx, ch)
			break
		}
		end = idx + 1
	}
	return NewToken(NUMBER_LIT, uint32(start), uint32(end))
}

// readIdentifier reads an identifier or keyword whose first rune has
// already been consumed at byte offset start.
//
// Rules:
//   - Starts with '_' or a Unicode alphabetic scalar (checked by caller)
//   - Continues with '_' or Unicode alphanumeric scalars
//   - The finished lexeme is classified through the keyword table
//
// Returns:
//   - Token: An IDENTIFIER_ID token or the matching keyword kind
func (lex *Lexer) readIdentifier(start int) Token {
	// The pushback slot only ever holds the most recently decoded rune, so
	// whether the caller took the first rune off the cursor or out of the
	// slot, the cursor currently sits one rune past start
	end := lex.Pos
	for {
		idx, ch, ok := lex.nextChar()
		if !ok {
			break
		}
		if !isIdentCont(ch) {
			lex.unread(idx, ch)
			break
		}
		end = idx + utf8.RuneLen(ch)
	}
	lexeme := lex.Src[start:end]
	return NewToken(lookupIdent(lexeme), uint32(start), uint32(end))
}

// scanEscape validates a single escape sequence. The backslash has already
// been consumed; quote is the quote rune of the enclosing literal (so \"
// is valid in strings and \' in character literals).
//
// Escape vocabulary: \\ \n \r \t \0 \<quote> \xHH (exactly two hex digits)
// and \uHHHHHH (exactly six hex digits).
//
// Returns:
//   - LitErrorKind: LIT_OK for a valid escape, otherwise the error detail
//   - int: byte offset one past the last consumed byte (the detection point)
func (lex *Lexer) scanEscape(quote rune) (LitErrorKind, int) {
	idx, ch, ok := lex.nextChar()
	if !ok {
		// EOF mid-escape
		return UNTERMINATED_LIT, lex.SrcLength
	}
	switch ch {
	case '\\', 'n', 'r', 't', '0', quote:
		return LIT_OK, idx + utf8.RuneLen(ch)
	case 'x':
		return lex.scanHexEscape(2, INVALID_HEX_ESCAPE, idx+1)
	case 'u':
		return lex.scanHexEscape(6, INVALID_UNICODE_ESCAPE, idx+1)
	default:
		return INVALID_ESCAPE, idx + utf8.RuneLen(ch)
	}
}

// scanHexEscape consumes exactly digits hex digits for a \x or \u escape.
// A non-hex rune produces the supplied error kind; EOF produces
// UNTERMINATED_LIT.
func (lex *Lexer) scanHexEscape(digits int, badKind LitErrorKind, after int) (LitErrorKind, int) {
	end := after
	for i := 0; i < digits; i++ {
		idx, ch, ok := lex.nextChar()
		if !ok {
			return UNTERMINATED_LIT, lex.SrcLength
		}
		if !isHexDigit(ch) {
			return badKind, idx + utf8.RuneLen(ch)
		}
		end = idx + 1
	}
	return LIT_OK, end
}

// readStringLiteral reads a string literal whose opening quote has been
// consumed at byte offset start.
//
// Permitted inner characters are any Unicode scalar except a raw newline,
// a raw carriage return, or an unescaped quote. Malformed input produces a
// single INVALID_STRING error token spanning from the opening quote
// through the point of detection; the lexer then resumes after the
// offending byte(s).
//
// Returns:
//   - Token: STRING_LIT on success (HasEscapes set iff an escape was
//     scanned), or an ERROR_TYPE token
func (lex *Lexer) readStringLiteral(start int) Token {
	hasEscapes := false
	for {
		idx, ch, ok := lex.nextChar()
		if !ok {
			// EOF mid-literal
			return NewErrorToken(INVALID_STRING, UNTERMINATED_LIT,
				uint32(start), uint32(lex.SrcLength))
		}
		switch ch {
		case '"':
			tok := NewToken(STRING_LIT, uint32(start), uint32(idx)+1)
			tok.HasEscapes = hasEscapes
			return tok
		case '\n', '\r':
			// Raw line breaks are not allowed inside string literals
			return NewErrorToken(INVALID_STRING, INVALID_CHAR_LIT,
				uint32(start), uint32(idx)+1)
		case '\\':
			hasEscapes = true
			if kind, end := lex.scanEscape('"'); kind != LIT_OK {
				return NewErrorToken(INVALID_STRING, kind, uint32(start), uint32(end))
			}
		}
	}
}

// readCharLiteral reads a character literal whose opening quote has been
// consumed at byte offset start.
//
// A character literal holds exactly one Unicode scalar, possibly produced
// by an escape. More than one scalar yields CHAR_TOO_LONG after consuming
// through the closing quote; an empty literal yields InvalidChar. The
// escape vocabulary matches string literals with ' substituted for ".
//
// Returns:
//   - Token: CHAR_LIT on success, or an ERROR_TYPE token
func (lex *Lexer) readCharLiteral(start int) Token {
	scalars := 0
	hasEscapes := false
	for {
		idx, ch, ok := lex.nextChar()
		if !ok {
			return NewErrorToken(INVALID_CHAR, UNTERMINATED_LIT,
				uint32(start), uint32(lex.SrcLength))
		}
		switch ch {
		case '\'':
			end := uint32(idx) + 1
			switch scalars {
			case 1:
				tok := NewToken(CHAR_LIT, uint32(start), end)
				tok.HasEscapes = hasEscapes
				return tok
			case 0:
				// Empty literal: '' holds no scalar at all
				return NewErrorToken(INVALID_CHAR, INVALID_CHAR_LIT, uint32(start), end)
			default:
				return NewErrorToken(INVALID_CHAR, CHAR_TOO_LONG, uint32(start), end)
			}
		case '\n', '\r':
			return NewErrorToken(INVALID_CHAR, INVALID_CHAR_LIT,
				uint32(start), uint32(idx)+1)
		case '\\':
			hasEscapes = true
			if kind, end := lex.scanEscape('\''); kind != LIT_OK {
				return NewErrorToken(INVALID_CHAR, kind, uint32(start), uint32(end))
			}
			scalars++
		default:
			scalars++
		}
	}
}
