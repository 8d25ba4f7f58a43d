package cpu

// OperandKind says where, if anywhere, a decoded operand lives.
type OperandKind uint8

const (
	OperandNone OperandKind = iota
	OperandAccumulator
	OperandAddress
)

// Operand is the decoded operand passed to a handler. For Immediate
// addressing it is the address of the immediate byte itself; for
// Relative addressing it is the already-computed branch target.
type Operand struct {
	Kind OperandKind
	Addr uint16
}

func addrOperand(addr uint16) Operand {
	return Operand{Kind: OperandAddress, Addr: addr}
}

// load reads the operand value, from memory or the accumulator.
func (c *CPU) load(op Operand) (uint8, error) {
	switch op.Kind {
	case OperandAccumulator:
		return c.A, nil
	case OperandAddress:
		return c.Mem.Read8(op.Addr), nil
	}
	return 0, &InvalidOperandError{Opcode: c.opcode}
}

// store writes back to the operand location.
func (c *CPU) store(op Operand, val uint8) error {
	switch op.Kind {
	case OperandAccumulator:
		c.A = val
		return nil
	case OperandAddress:
		c.Mem.Write8(op.Addr, val)
		return nil
	}
	return &InvalidOperandError{Opcode: c.opcode}
}
