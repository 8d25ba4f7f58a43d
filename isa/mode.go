// Package isa compiles a declarative, row-oriented description of the
// 6502 instruction set into a dense opcode-indexed dispatch table.
//
// The input is a delimited text table (one record per instruction, see
// ParseRow for the field layout). Compilation is a single synchronous
// pass: the first fatal diagnostic aborts the whole compile and no
// partial table is ever produced.
package isa

//go:generate go tool stringer -type=AddressingMode,Category

// AddressingMode is the rule by which an instruction locates its
// operand. The set is closed: parsing is the only way to obtain a
// value and it only ever produces one of the thirteen constants below.
type AddressingMode uint8

const (
	Implicit AddressingMode = iota
	Accumulator
	Immediate
	ZeroPage
	ZeroPageIndexedX
	ZeroPageIndexedY
	Absolute
	AbsoluteIndexedX
	AbsoluteIndexedY
	Relative
	Indirect
	IndirectIndexedX
	IndirectIndexedY
)

// modeTokens is the fixed vocabulary accepted in the addressing-mode
// column. The reference tables spell the indexed absolute forms with
// the trailing 'e' omitted, so both spellings are accepted.
var modeTokens = map[string]AddressingMode{
	"implied":      Implicit,
	"accumulator":  Accumulator,
	"immediate":    Immediate,
	"zeropage":     ZeroPage,
	"zeropage,X":   ZeroPageIndexedX,
	"zeropage,Y":   ZeroPageIndexedY,
	"absolute":     Absolute,
	"absolute,X":   AbsoluteIndexedX,
	"absolute,Y":   AbsoluteIndexedY,
	"absolut":      Absolute,
	"absolut,X":    AbsoluteIndexedX,
	"absolut,Y":    AbsoluteIndexedY,
	"relative":     Relative,
	"indirect":     Indirect,
	"(indirect,X)": IndirectIndexedX,
	"(indirect),Y": IndirectIndexedY,
}

// ParseAddressingMode resolves an addressing-mode token by exact match
// against the fixed vocabulary. There is no fuzzy matching and no
// default: any token outside the vocabulary fails, which is what makes
// a compile fail fast on typos in the source table.
func ParseAddressingMode(tok string) (AddressingMode, error) {
	m, ok := modeTokens[tok]
	if !ok {
		return 0, &InvalidAddressingModeError{Token: tok}
	}
	return m, nil
}
