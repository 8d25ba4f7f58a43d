package gen

import (
	"optab/isa"
	"optab/log"
)

// Missing returns the handler identifiers referenced by the table but
// absent from the set of implemented handlers, sorted. This is the set
// the stub synthesizer fills in: it is what lets a table be declared
// complete while the interpreter behind it is not.
func Missing(tbl *isa.Table, implemented map[isa.Ident]bool) []isa.Ident {
	var missing []isa.Ident
	for _, id := range tbl.Handlers() {
		if !implemented[id] {
			missing = append(missing, id)
		}
	}
	return missing
}

// Stubs emits one placeholder handler definition per missing
// identifier. A stub satisfies the same calling contract as a real
// handler and always fails with the typed unimplemented-opcode error,
// naming the opcode being executed: one identifier may serve several
// opcodes, so the handler name alone would not identify the culprit.
// Stubs never succeed silently and never raise anything untyped.
func (g *Generator) Stubs(implemented map[isa.Ident]bool) ([]byte, error) {
	missing := Missing(g.tbl, implemented)

	g.fileHeader()
	for i, id := range missing {
		if i > 0 {
			g.printf("")
		}
		g.printf("// %s has no implementation yet.", id)
		g.printf("func %s(c *CPU, _ Operand) error {", id)
		g.printf("return c.unimplemented()")
		g.printf("}")
	}

	log.ModGen.Debugf("synthesized %d stubs (%d handlers implemented)",
		len(missing), len(implemented))
	return g.gofmt()
}
