/*
File    : interop/ast/builder.go
Author  : Interop Authors
*/
package ast

import "strings"

// IdentIdx is a dense 32-bit handle into a Builder's identifier table.
type IdentIdx uint32

// TypeIdx is a dense 32-bit handle into a Builder's type table.
type TypeIdx uint32

// Builder is the optional interning layer over the AST. It maps
// identifiers and types into dense index spaces with lookup-or-insert
// semantics: inserting a value equal to an existing one returns the
// existing handle, otherwise the value is appended and the new handle
// returned. Insertion order is preserved and every handle stays
// indexable.
//
// Downstream passes and AST importers (converters from another
// language's AST) use the builder so that repeated names share a single
// entry.
type Builder struct {
	idents   []Ident
	identIdx map[string]IdentIdx
	types    []Type
	typeIdx  map[string]TypeIdx
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		identIdx: make(map[string]IdentIdx),
		typeIdx:  make(map[string]TypeIdx),
	}
}

// GetOrInsertIdent returns the handle of an identifier equal to ident,
// inserting it first if absent.
func (b *Builder) GetOrInsertIdent(ident Ident) IdentIdx {
	if idx, ok := b.identIdx[ident.Name]; ok {
		return idx
	}
	idx := IdentIdx(len(b.idents))
	b.idents = append(b.idents, ident)
	b.identIdx[ident.Name] = idx
	return idx
}

// Ident returns the identifier stored at the given handle.
func (b *Builder) Ident(idx IdentIdx) Ident {
	return b.idents[idx]
}

// IdentCount returns the number of interned identifiers.
func (b *Builder) IdentCount() int {
	return len(b.idents)
}

// GetOrInsertType returns the handle of a type equal to typ, inserting it
// first if absent. Types are keyed by their rendered form.
func (b *Builder) GetOrInsertType(typ Type) TypeIdx {
	key := typ.Literal()
	if idx, ok := b.typeIdx[key]; ok {
		return idx
	}
	idx := TypeIdx(len(b.types))
	b.types = append(b.types, typ)
	b.typeIdx[key] = idx
	return idx
}

// Type returns the type stored at the given handle.
func (b *Builder) Type(idx TypeIdx) Type {
	return b.types[idx]
}

// TypeCount returns the number of interned types.
func (b *Builder) TypeCount() int {
	return len(b.types)
}

// SnakeCaseIdent interns an identifier derived from name by snake_case
// conversion. AST importers use this when the foreign language's naming
// convention differs from Interop's; the derived text is owned by the
// builder rather than borrowed from any input buffer.
func (b *Builder) SnakeCaseIdent(name string) IdentIdx {
	return b.GetOrInsertIdent(Ident{Name: toSnakeCase(name)})
}

// toSnakeCase converts CamelCase and mixedCase names to snake_case.
// Runs of upper-case letters collapse into a single word, so "HTTPServer"
// becomes "http_server".
func toSnakeCase(name string) string {
	var sb strings.Builder
	sb.Grow(len(name) + 4)
	runes := []rune(name)
	for i, r := range runes {
		if r >= 'A' && r <= 'Z' {
			// A word boundary before an upper-case rune, except at the
			// start and inside an acronym run that is not ending
			if i > 0 {
				prevUpper := runes[i-1] >= 'A' && runes[i-1] <= 'Z'
				nextLower := i+1 < len(runes) && runes[i+1] >= 'a' && runes[i+1] <= 'z'
				if !prevUpper || nextLower {
					sb.WriteByte('_')
				}
			}
			sb.WriteRune(r - 'A' + 'a')
		} else {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
