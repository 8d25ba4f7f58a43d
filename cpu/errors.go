package cpu

import "fmt"

// UnimplementedOpcodeError is returned by a synthesized stub handler:
// the dispatch table defines the opcode but its behavior has not been
// written yet. It is a normal, inspectable result - callers may halt,
// skip or report it - never a crash.
type UnimplementedOpcodeError struct {
	Opcode byte
}

func (e *UnimplementedOpcodeError) Error() string {
	return fmt.Sprintf("unimplemented opcode 0x%02X", e.Opcode)
}

// UndefinedOpcodeError is returned when execution reaches an opcode
// the dispatch table never defined. This is a table/data condition,
// distinct from an unimplemented (defined but stubbed) opcode.
type UndefinedOpcodeError struct {
	Opcode byte
	PC     uint16
}

func (e *UndefinedOpcodeError) Error() string {
	return fmt.Sprintf("undefined opcode 0x%02X at 0x%04X", e.Opcode, e.PC)
}

// InvalidOperandError is returned by a handler asked to read or write
// an operand that has no location, like the operand of an implied
// instruction.
type InvalidOperandError struct {
	Opcode byte
}

func (e *InvalidOperandError) Error() string {
	return fmt.Sprintf("opcode 0x%02X: operand has no value", e.Opcode)
}
