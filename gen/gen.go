// Package gen emits Go source from a compiled instruction table: one
// descriptor declaration per opcode, and placeholder handler
// definitions for every handler identifier lacking a real
// implementation.
//
// The emitted code is meant to live in a package that provides the
// CPU, Operand, Handler and opdef types; the generator itself only
// deals in text, it never executes anything.
package gen

import (
	"bytes"
	"fmt"
	"go/format"

	"optab/isa"
	"optab/log"
)

const header = "// Code generated by optab gen. DO NOT EDIT."

// Generator accumulates Go source for one compiled table. Output is
// deterministic: generating twice from the same table and registry
// yields byte-identical source.
type Generator struct {
	outbuf bytes.Buffer
	tbl    *isa.Table
	pkg    string
}

func New(tbl *isa.Table, pkg string) *Generator {
	return &Generator{tbl: tbl, pkg: pkg}
}

func (g *Generator) printf(format string, args ...any) {
	fmt.Fprintf(&g.outbuf, "%s\n", fmt.Sprintf(format, args...))
}

func (g *Generator) fileHeader() {
	g.outbuf.Reset()
	g.printf(header)
	g.printf("")
	g.printf("package %s", g.pkg)
	g.printf("")
}

// gofmt formats the accumulated source. Nothing is returned on error,
// so a failed generation can never be mistaken for valid output.
func (g *Generator) gofmt() ([]byte, error) {
	src, err := format.Source(g.outbuf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("gofmt of generated source failed: %w", err)
	}
	return src, nil
}

// Descriptors emits the opcode-indexed descriptor array, one element
// per occupied slot, in opcode order. Undefined opcodes keep their
// zero (nil) element: they are absent from the table, not aliased to
// anything.
func (g *Generator) Descriptors() ([]byte, error) {
	g.fileHeader()
	g.printf(`import "optab/isa"`)
	g.printf("")
	g.printf("var optable = [256]*opdef{")
	for _, e := range g.tbl.Entries() {
		g.printf("// %s   %02X", e.Mnemonic, e.Opcode)
		if g.tbl.Variant() == isa.VariantExtended {
			g.printf("0x%02X: {mnemonic: %q, mode: isa.%s, bytes: %d, cycles: %d, category: isa.%s, fn: %s},",
				e.Opcode, e.Mnemonic, e.Mode, e.Bytes, e.Cycles, e.Category, e.Handler)
		} else {
			g.printf("0x%02X: {mnemonic: %q, mode: isa.%s, bytes: %d, cycles: %d, fn: %s},",
				e.Opcode, e.Mnemonic, e.Mode, e.Bytes, e.Cycles, e.Handler)
		}
	}
	g.printf("}")

	log.ModGen.Debugf("emitted %d descriptors", g.tbl.Len())
	return g.gofmt()
}
