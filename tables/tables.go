// Package tables ships the instruction tables embedded in the binary.
package tables

import (
	"bytes"
	_ "embed"
	"sync"

	"optab/isa"
)

// NES6502 is the full NES 6502 instruction set, all 256 opcodes,
// documented and undocumented, in the extended table format.
//
//go:embed nes6502.tab
var NES6502 []byte

// NES6502Documented is the documented instruction set only (151
// opcodes), in the standard table format.
//
//go:embed nes6502_doc.tab
var NES6502Documented []byte

// Full returns the compiled full instruction table. The table is
// compiled on first use and shared afterwards; it is immutable.
var Full = sync.OnceValue(func() *isa.Table {
	return isa.MustCompile(bytes.NewReader(NES6502), isa.VariantExtended)
})

// Documented returns the compiled documented-only instruction table.
var Documented = sync.OnceValue(func() *isa.Table {
	return isa.MustCompile(bytes.NewReader(NES6502Documented), isa.VariantStandard)
})
