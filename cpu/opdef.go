package cpu

import "optab/isa"

// opdef is the descriptor slot the generated sources fill in: the gen
// command emits an opcode-indexed [256]*opdef array together with stub
// definitions for every handler identifier that has no implementation
// listed in the registry. A package consuming generated output binds
// handlers at compile time through this array, instead of the runtime
// Registry binding New performs.
type opdef struct {
	mnemonic string
	mode     isa.AddressingMode
	bytes    int
	cycles   int
	category isa.Category
	fn       Handler
}
