// Package cpu is a 6502 interpreter skeleton driven entirely by a
// compiled dispatch table. Instruction behavior lives in handlers
// resolved by identifier through a Registry; opcodes whose behavior is
// not written yet dispatch to a synthesized stub that fails with a
// typed error instead of crashing.
package cpu

import (
	"optab/isa"
	"optab/log"
)

// Locations reserved for vector pointers.
const (
	NMIVector   = 0xFFFA // Non-Maskable Interrupt
	ResetVector = 0xFFFC // Reset
	IRQVector   = 0xFFFE // Interrupt Request
)

// Memory is the bus the CPU reads and writes through.
type Memory interface {
	Read8(addr uint16) uint8
	Write8(addr uint16, val uint8)
}

// RAM is a flat 64KiB memory, enough for tests and small programs.
type RAM [0x10000]byte

func (m *RAM) Read8(addr uint16) uint8       { return m[addr] }
func (m *RAM) Write8(addr uint16, val uint8) { m[addr] = val }

type CPU struct {
	Mem Memory

	// cpu registers
	A, X, Y, SP uint8
	PC          uint16
	P           P

	Clock int64 // cycles

	table  *isa.Table
	ops    [256]Handler
	opcode byte // opcode currently executing
}

// New creates a CPU at power-up state, bound to a dispatch table. Every
// opcode the table defines resolves to a handler: the one registered
// under its identifier, or a synthesized stub when there is none. The
// table is never modified and may be shared between CPUs.
func New(tbl *isa.Table, reg *Registry, mem Memory) *CPU {
	c := &CPU{
		Mem:   mem,
		SP:    0xFD,
		table: tbl,
	}
	c.bind(reg)
	return c
}

// bind fills the handler slots for every occupied table entry. Missing
// registry entries get the stub, so the binding is total over defined
// opcodes: "defined" and "implemented" stay two independent facts.
func (c *CPU) bind(reg *Registry) {
	stubbed := 0
	for op := 0; op < 256; op++ {
		e, ok := c.table.Lookup(byte(op))
		if !ok {
			continue
		}
		if h, ok := reg.Lookup(e.Handler); ok {
			c.ops[op] = h
			continue
		}
		c.ops[op] = stub
		stubbed++
	}
	log.ModCPU.Debugf("bound %d opcodes, %d stubbed", c.table.Len(), stubbed)
}

// stub is the synthesized placeholder handler. It reports the opcode
// being executed, not the handler name: one identifier may be bound to
// several opcodes.
func stub(c *CPU, _ Operand) error {
	return c.unimplemented()
}

func (c *CPU) unimplemented() error {
	return &UnimplementedOpcodeError{Opcode: c.opcode}
}

func (c *CPU) Reset() {
	c.PC = c.read16(ResetVector)
	c.SP = 0xFD
	c.P = 0x34
}

// Step fetches, decodes and executes one instruction. An opcode the
// table never defined fails with UndefinedOpcodeError before anything
// executes; an opcode bound to a stub executes the stub and fails with
// UnimplementedOpcodeError.
func (c *CPU) Step() error {
	opcode := c.Mem.Read8(c.PC)
	e, ok := c.table.Lookup(opcode)
	if !ok {
		return &UndefinedOpcodeError{Opcode: opcode, PC: c.PC}
	}

	c.opcode = opcode
	c.PC++
	op := c.operand(e.Mode)
	if err := c.ops[opcode](c, op); err != nil {
		return err
	}
	c.Clock += int64(e.Cycles)
	return nil
}

// Run executes instructions until the clock reaches until, or an
// instruction fails.
func (c *CPU) Run(until int64) error {
	for c.Clock < until {
		if err := c.Step(); err != nil {
			return err
		}
	}
	return nil
}

// operand decodes the operand for an addressing mode, advancing PC
// past the operand bytes.
func (c *CPU) operand(mode isa.AddressingMode) Operand {
	switch mode {
	case isa.Accumulator:
		return Operand{Kind: OperandAccumulator}

	case isa.Immediate:
		addr := c.PC
		c.PC++
		return addrOperand(addr)

	case isa.ZeroPage:
		addr := uint16(c.Mem.Read8(c.PC))
		c.PC++
		return addrOperand(addr)

	case isa.ZeroPageIndexedX:
		addr := uint16(c.Mem.Read8(c.PC)+c.X) & 0xFF
		c.PC++
		return addrOperand(addr)

	case isa.ZeroPageIndexedY:
		addr := uint16(c.Mem.Read8(c.PC)+c.Y) & 0xFF
		c.PC++
		return addrOperand(addr)

	case isa.Absolute:
		addr := c.read16(c.PC)
		c.PC += 2
		return addrOperand(addr)

	case isa.AbsoluteIndexedX:
		addr := c.read16(c.PC) + uint16(c.X)
		c.PC += 2
		return addrOperand(addr)

	case isa.AbsoluteIndexedY:
		addr := c.read16(c.PC) + uint16(c.Y)
		c.PC += 2
		return addrOperand(addr)

	case isa.Relative:
		off := int8(c.Mem.Read8(c.PC))
		c.PC++
		return addrOperand(uint16(int16(c.PC) + int16(off)))

	case isa.Indirect:
		ptr := c.read16(c.PC)
		c.PC += 2
		// the pointer high byte never crosses the page
		lo := c.Mem.Read8(ptr)
		hi := c.Mem.Read8((ptr & 0xFF00) | (ptr+1)&0x00FF)
		return addrOperand(uint16(hi)<<8 | uint16(lo))

	case isa.IndirectIndexedX:
		zp := c.Mem.Read8(c.PC) + c.X
		c.PC++
		return addrOperand(c.read16zp(zp))

	case isa.IndirectIndexedY:
		zp := c.Mem.Read8(c.PC)
		c.PC++
		return addrOperand(c.read16zp(zp) + uint16(c.Y))
	}

	// Implicit
	return Operand{Kind: OperandNone}
}

func (c *CPU) read16(addr uint16) uint16 {
	lo := c.Mem.Read8(addr)
	hi := c.Mem.Read8(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// read16zp reads a 16-bit address from the zero page, wrapping at the
// page boundary.
func (c *CPU) read16zp(zp uint8) uint16 {
	lo := c.Mem.Read8(uint16(zp))
	hi := c.Mem.Read8(uint16(zp + 1))
	return uint16(hi)<<8 | uint16(lo)
}
