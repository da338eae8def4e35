/*
File    : interop/lexer/lexer.go
Author  : Interop Authors
*/
package lexer

import (
	"unicode"
	"unicode/utf8"
)

// Lexer performs lexical analysis (tokenization) of Interop source code.
// It scans through the source text rune by rune, producing tokens that
// carry byte ranges into the source rather than copies of their text.
//
// The lexer is a pull-model iterator: the parser calls NextToken until it
// sees EOI_TYPE. The stream is infallible - every input byte is consumed
// either into a valid token or into an ERROR_TYPE token.
//
// It handles:
//   - Operators (* / + -) and punctuation
//   - Keywords (func, end, if, then, else, and, or, not, true, false)
//   - Literals (numbers, strings, characters) with structured error tokens
//   - Identifiers (Unicode alphabetic or '_' start)
//   - Line comments (# ...) which are dropped unless requested
//   - Automatic semicolon insertion at newlines (see NextToken)
//
// Fields:
//   - Src: The complete source code as a string
//   - Pos: Byte offset of the next rune to decode (0-indexed)
//   - SrcLength: The total length of the source string in bytes
type Lexer struct {
	Src       string // Entire source code in plain text format
	Pos       int    // Byte offset of the next undecoded rune
	SrcLength int    // Length of source string in bytes

	// One-slot pushback: scan routines that overshoot deposit the extra
	// rune here instead of re-decoding. One slot is sufficient for every
	// production in the grammar.
	savedIdx  int
	savedChar rune
	hasSaved  bool

	// lastToken remembers the kind of the last emitted non-comment token.
	// It drives automatic semicolon insertion. Comments never update it;
	// error tokens do.
	lastToken TokenKind

	includeComments bool // Emit COMMENT_TYPE tokens instead of dropping them
	emitMarkers     bool // Bracket the stream with SOI_TYPE/EOI_TYPE
	started         bool // SOI marker already emitted
}

// NewLexer creates and initializes a new Lexer for the given source code.
//
// Parameters:
//   - src: The source code string to tokenize (UTF-8)
//   - includeComments: when true, '#' comments are emitted as COMMENT_TYPE
//     tokens; when false they are dropped entirely
//   - emitMarkers: when true, the first token is SOI_TYPE and the stream
//     ends with EOI_TYPE (both zero-length)
//
// Example:
//
//	lex := NewLexer("func my_func() -> 123", false, true)
func NewLexer(src string, includeComments, emitMarkers bool) *Lexer {
	return &Lexer{
		Src:             src,
		Pos:             0,
		SrcLength:       len(src),
		includeComments: includeComments,
		emitMarkers:     emitMarkers,
	}
}

// NextToken retrieves the next token from the source code stream.
// This is the main entry point for token-by-token parsing.
//
// Automatic semicolon insertion: a '\n' is emitted as a SEMICOLON_DELIM
// token iff the last non-comment token was one of Ident, NumberLit, ')',
// or 'end' - the kinds that can terminate a complete expression or
// declaration. Every other newline is treated as continuation whitespace.
//
// After the input is exhausted, NextToken keeps returning a zero-length
// EOI_TYPE token on every call.
//
// Returns:
//   - Token: The next token in the source
func (lex *Lexer) NextToken() Token {
	// The start-of-input marker is fully virtual: no actual bytes
	if lex.emitMarkers && !lex.started {
		lex.started = true
		return lex.emitToken(NewToken(SOI_TYPE, 0, 0))
	}
	lex.started = true

	for {
		idx, ch, ok := lex.nextChar()
		if !ok {
			// End of input - the EOI token is purely virtual and is
			// returned again on every subsequent call
			return lex.emitToken(NewToken(EOI_TYPE, 0, 0))
		}

		switch ch {
		case '\t', ' ', '\r':
			// Insignificant whitespace
			continue
		case '\n':
			// Automatic semicolon insertion
			switch lex.lastToken {
			case IDENTIFIER_ID, NUMBER_LIT, RIGHT_PAREN, END_KEY:
				// These kinds end a complete form, so the newline acts
				// as a statement terminator
				return lex.emitToken(NewToken(SEMICOLON_DELIM, uint32(idx), uint32(idx)+1))
			default:
				// Everywhere else a newline is continuation
				continue
			}
		case '#':
			if tok, emitted := lex.scanComment(idx); emitted {
				return tok
			}
			continue
		case ';':
			return lex.emitToken(NewToken(SEMICOLON_DELIM, uint32(idx), uint32(idx)+1))
		case '(':
			return lex.emitToken(NewToken(LEFT_PAREN, uint32(idx), uint32(idx)+1))
		case ')':
			return lex.emitToken(NewToken(RIGHT_PAREN, uint32(idx), uint32(idx)+1))
		case ':':
			return lex.emitToken(NewToken(COLON_DELIM, uint32(idx), uint32(idx)+1))
		case '=':
			return lex.emitToken(NewToken(ASSIGN_OP, uint32(idx), uint32(idx)+1))
		case '.':
			return lex.emitToken(NewToken(DOT_OP, uint32(idx), uint32(idx)+1))
		case ',':
			return lex.emitToken(NewToken(COMMA_DELIM, uint32(idx), uint32(idx)+1))
		case '*':
			return lex.emitToken(NewToken(MUL_OP, uint32(idx), uint32(idx)+1))
		case '/':
			return lex.emitToken(NewToken(DIV_OP, uint32(idx), uint32(idx)+1))
		case '+':
			return lex.emitToken(NewToken(PLUS_OP, uint32(idx), uint32(idx)+1))
		case '-':
			// Could be '-' (minus) or the '->' digraph
			if idx2, ch2, ok2 := lex.nextChar(); ok2 {
				if ch2 == '>' {
					return lex.emitToken(NewToken(RARROW_OP, uint32(idx), uint32(idx)+2))
				}
				// Not an arrow - reinject the peeked rune
				lex.unread(idx2, ch2)
			}
			return lex.emitToken(NewToken(MINUS_OP, uint32(idx), uint32(idx)+1))
		case '→':
			// The Unicode arrow is equivalent to the ASCII digraph
			return lex.emitToken(NewToken(RARROW_OP, uint32(idx), uint32(idx+utf8.RuneLen(ch))))
		case '"':
			return lex.emitToken(lex.readStringLiteral(idx))
		case '\'':
			return lex.emitToken(lex.readCharLiteral(idx))
		default:
			// Numeric literals start with a nonzero digit; a leading '0'
			// is not a valid number start and falls through to unknown
			// handling below
			if ch >= '1' && ch <= '9' {
				return lex.emitToken(lex.readNumber(idx))
			}
			if ch == '_' || unicode.IsLetter(ch) {
				return lex.emitToken(lex.readIdentifier(idx))
			}
			// Unrecognized rune - consume it into an error token so the
			// stream stays infallible
			return lex.emitToken(NewErrorToken(UNKNOWN_TOKEN, LIT_OK,
				uint32(idx), uint32(idx+utf8.RuneLen(ch))))
		}
	}
}

// emitToken records the token kind for the semicolon insertion state
// machine and returns the token unchanged. Comments bypass this method.
func (lex *Lexer) emitToken(tok Token) Token {
	lex.lastToken = tok.Kind
	return tok
}

// nextChar returns the next rune and its byte offset, preferring the
// pushback slot over the input cursor.
//
// Returns:
//   - int: byte offset of the rune
//   - rune: the decoded rune
//   - bool: false once the input is exhausted
func (lex *Lexer) nextChar() (int, rune, bool) {
	if lex.hasSaved {
		lex.hasSaved = false
		return lex.savedIdx, lex.savedChar, true
	}
	if lex.Pos >= lex.SrcLength {
		return lex.SrcLength, 0, false
	}
	ch, size := utf8.DecodeRuneInString(lex.Src[lex.Pos:])
	idx := lex.Pos
	lex.Pos += size
	return idx, ch, true
}

// unread deposits a rune into the one-slot pushback. Scan routines that
// peek past their production must call this exactly once before returning.
func (lex *Lexer) unread(idx int, ch rune) {
	lex.savedIdx = idx
	lex.savedChar = ch
	lex.hasSaved = true
}

// scanComment consumes a '#' line comment up to but excluding the next
// newline. The newline stays in the stream so semicolon insertion still
// sees it.
//
// Returns the comment token and true when comments are being included.
// Either way the semicolon insertion memory is left untouched.
func (lex *Lexer) scanComment(start int) (Token, bool) {
	end := start + 1
	for {
		idx, ch, ok := lex.nextChar()
		if !ok {
			break
		}
		if ch == '\n' {
			// Leave the newline for the main loop
			lex.unread(idx, ch)
			break
		}
		end = idx + utf8.RuneLen(ch)
	}
	if lex.includeComments {
		return NewToken(COMMENT_TYPE, uint32(start), uint32(end)), true
	}
	return Token{}, false
}

// ConsumeTokens tokenizes the entire source code and returns all tokens.
// It repeatedly calls NextToken until EOI is reached. When input markers
// are enabled the SOI/EOI markers are part of the result; otherwise the
// EOI sentinel is dropped.
//
// Example:
//
//	lex := NewLexer("1 + 2", false, false)
//	tokens := lex.ConsumeTokens()
//	// tokens contains: [NumberLit, PLUS_OP, NumberLit]
func (lex *Lexer) ConsumeTokens() []Token {
	tokens := make([]Token, 0)
	for {
		token := lex.NextToken()
		if token.Kind == EOI_TYPE {
			if lex.emitMarkers {
				tokens = append(tokens, token)
			}
			break
		}
		tokens = append(tokens, token)
	}
	return tokens
}
