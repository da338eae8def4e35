/*
File    : interop/lexer/position.go
Author  : Interop Authors
*/
package lexer

import "unicode/utf8"

// PositionResolver maps byte offsets in a source string to 1-based
// (line, column) positions. It is the streaming variant: callers must
// supply offsets in non-decreasing order, and the resolver walks each
// character of the source at most once. An out-of-order query reports
// not-ok instead of rescanning.
//
// Lines are counted at '\n'; the column resets to 1 after a newline and
// otherwise advances once per Unicode scalar value, not per byte.
type PositionResolver struct {
	src    string
	offset int    // Byte offset of the next unconsumed rune
	line   uint32 // Line of the rune at offset (1-based)
	column uint32 // Column of the rune at offset (1-based, in scalars)
}

// NewPositionResolver creates a resolver positioned at the start of src.
func NewPositionResolver(src string) *PositionResolver {
	return &PositionResolver{
		src:    src,
		line:   1,
		column: 1,
	}
}

// Resolve returns the 1-based line and column of the given byte offset.
// Offsets must be supplied in non-decreasing order; a query before the
// current cursor returns (0, 0, false).
func (res *PositionResolver) Resolve(offset uint32) (uint32, uint32, bool) {
	target := int(offset)
	if target < res.offset {
		// The streaming cursor only moves forward
		return 0, 0, false
	}
	for res.offset < target && res.offset < len(res.src) {
		res.advance()
	}
	return res.line, res.column, true
}

// advance consumes one rune, updating the line/column counters.
func (res *PositionResolver) advance() {
	ch, size := utf8.DecodeRuneInString(res.src[res.offset:])
	res.offset += size
	if ch == '\n' {
		res.line++
		res.column = 1
	} else {
		res.column++
	}
}

// RowCol is the stateless variant of position resolution: it rescans from
// the start of the source for every query. Used for error reporting, where
// amortization does not matter.
//
// Returns the 1-based line and column of the rune at the given byte
// offset. An offset at or past the end of the source resolves to the
// position just past the final rune.
func RowCol(src string, offset uint32) (uint32, uint32) {
	res := NewPositionResolver(src)
	line, col, _ := res.Resolve(offset)
	return line, col
}
