package isa

import "strings"

// Ident is a normalized handler identifier, valid in any language
// identifier grammar the generated code may target.
type Ident string

// HandlerIdent derives the canonical handler identifier for an
// instruction from its mnemonic and free-text description.
//
// The derivation is a pure function: both inputs are trimmed and
// lowercased, runes in [a-z0-9_] pass through, '+' becomes the word
// "plus" and every other rune becomes '_'. Identical inputs always
// yield the identical identifier; nothing here (nor in the compiler)
// enforces that distinct inputs yield distinct identifiers.
func HandlerIdent(mnemonic, description string) Ident {
	var b strings.Builder
	norm := func(s string) {
		for _, r := range strings.ToLower(strings.TrimSpace(s)) {
			switch {
			case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
				b.WriteRune(r)
			case r == '+':
				b.WriteString("plus")
			default:
				b.WriteByte('_')
			}
		}
	}
	norm(mnemonic)
	b.WriteByte('_')
	norm(description)
	return Ident(b.String())
}
