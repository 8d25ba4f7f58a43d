package cpu

import (
	"slices"

	"optab/isa"
)

// Handler executes one instruction given the CPU execution context and
// the decoded operand.
type Handler func(*CPU, Operand) error

// Registry is the set of handlers with a real, hand-written
// implementation, keyed by handler identifier. It is read-only input
// to the binding step: nothing ever registers on behalf of the table
// compiler.
type Registry struct {
	m map[isa.Ident]Handler
}

func NewRegistry() *Registry {
	return &Registry{m: make(map[isa.Ident]Handler)}
}

func (r *Registry) Register(id isa.Ident, h Handler) {
	r.m[id] = h
}

func (r *Registry) Lookup(id isa.Ident) (Handler, bool) {
	h, ok := r.m[id]
	return h, ok
}

// Idents returns the registered identifiers, sorted.
func (r *Registry) Idents() []isa.Ident {
	ids := make([]isa.Ident, 0, len(r.m))
	for id := range r.m {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Implemented returns the registry as the set shape the stub
// synthesizer consumes.
func (r *Registry) Implemented() map[isa.Ident]bool {
	set := make(map[isa.Ident]bool, len(r.m))
	for id := range r.m {
		set[id] = true
	}
	return set
}

// Builtin returns the registry of instructions implemented so far.
// Identifiers match the descriptions in the shipped instruction
// tables; everything absent from here runs as a stub until written.
func Builtin() *Registry {
	r := NewRegistry()

	r.Register("lda_load_accumulator_with_memory", lda)
	r.Register("ldx_load_index_x_with_memory", ldx)
	r.Register("ldy_load_index_y_with_memory", ldy)
	r.Register("sta_store_accumulator_in_memory", sta)
	r.Register("stx_store_index_x_in_memory", stx)
	r.Register("sty_store_index_y_in_memory", sty)

	r.Register("tax_transfer_accumulator_to_index_x", tax)
	r.Register("tay_transfer_accumulator_to_index_y", tay)
	r.Register("txa_transfer_index_x_to_accumulator", txa)
	r.Register("tya_transfer_index_y_to_accumulator", tya)
	r.Register("tsx_transfer_stack_pointer_to_index_x", tsx)
	r.Register("txs_transfer_index_x_to_stack_register", txs)

	r.Register("inx_increment_index_x_by_one", inx)
	r.Register("iny_increment_index_y_by_one", iny)
	r.Register("dex_decrement_index_x_by_one", dex)
	r.Register("dey_decrement_index_y_by_one", dey)
	r.Register("inc_increment_memory_by_one", inc)
	r.Register("dec_decrement_memory_by_one", dec)

	r.Register("and_and_memory_with_accumulator", and)
	r.Register("ora_or_memory_with_accumulator", ora)
	r.Register("eor_exclusive_or_memory_with_accumulator", eor)

	r.Register("cmp_compare_memory_with_accumulator", compare(func(c *CPU) uint8 { return c.A }))
	r.Register("cpx_compare_memory_and_index_x", compare(func(c *CPU) uint8 { return c.X }))
	r.Register("cpy_compare_memory_and_index_y", compare(func(c *CPU) uint8 { return c.Y }))

	r.Register("clc_clear_carry_flag", flag(pbitC, false))
	r.Register("sec_set_carry_flag", flag(pbitC, true))
	r.Register("cld_clear_decimal_mode", flag(pbitD, false))
	r.Register("sed_set_decimal_flag", flag(pbitD, true))
	r.Register("cli_clear_interrupt_disable_bit", flag(pbitI, false))
	r.Register("sei_set_interrupt_disable_status", flag(pbitI, true))
	r.Register("clv_clear_overflow_flag", flag(pbitV, false))

	r.Register("jmp_jump_to_new_location", jmp)
	r.Register("bcc_branch_on_carry_clear", branch(pbitC, false))
	r.Register("bcs_branch_on_carry_set", branch(pbitC, true))
	r.Register("bne_branch_on_result_not_zero", branch(pbitZ, false))
	r.Register("beq_branch_on_result_zero", branch(pbitZ, true))
	r.Register("bpl_branch_on_result_plus", branch(pbitN, false))
	r.Register("bmi_branch_on_result_minus", branch(pbitN, true))
	r.Register("bvc_branch_on_overflow_clear", branch(pbitV, false))
	r.Register("bvs_branch_on_overflow_set", branch(pbitV, true))

	r.Register("nop_no_operation", nop)

	return r
}

func lda(c *CPU, op Operand) error {
	val, err := c.load(op)
	if err != nil {
		return err
	}
	c.A = val
	c.P.checkNZ(c.A)
	return nil
}

func ldx(c *CPU, op Operand) error {
	val, err := c.load(op)
	if err != nil {
		return err
	}
	c.X = val
	c.P.checkNZ(c.X)
	return nil
}

func ldy(c *CPU, op Operand) error {
	val, err := c.load(op)
	if err != nil {
		return err
	}
	c.Y = val
	c.P.checkNZ(c.Y)
	return nil
}

func sta(c *CPU, op Operand) error { return c.store(op, c.A) }
func stx(c *CPU, op Operand) error { return c.store(op, c.X) }
func sty(c *CPU, op Operand) error { return c.store(op, c.Y) }

func tax(c *CPU, _ Operand) error {
	c.X = c.A
	c.P.checkNZ(c.X)
	return nil
}

func tay(c *CPU, _ Operand) error {
	c.Y = c.A
	c.P.checkNZ(c.Y)
	return nil
}

func txa(c *CPU, _ Operand) error {
	c.A = c.X
	c.P.checkNZ(c.A)
	return nil
}

func tya(c *CPU, _ Operand) error {
	c.A = c.Y
	c.P.checkNZ(c.A)
	return nil
}

func tsx(c *CPU, _ Operand) error {
	c.X = c.SP
	c.P.checkNZ(c.X)
	return nil
}

func txs(c *CPU, _ Operand) error {
	// the only transfer that does not touch the flags
	c.SP = c.X
	return nil
}

func inx(c *CPU, _ Operand) error {
	c.X++
	c.P.checkNZ(c.X)
	return nil
}

func iny(c *CPU, _ Operand) error {
	c.Y++
	c.P.checkNZ(c.Y)
	return nil
}

func dex(c *CPU, _ Operand) error {
	c.X--
	c.P.checkNZ(c.X)
	return nil
}

func dey(c *CPU, _ Operand) error {
	c.Y--
	c.P.checkNZ(c.Y)
	return nil
}

func inc(c *CPU, op Operand) error {
	val, err := c.load(op)
	if err != nil {
		return err
	}
	val++
	c.P.checkNZ(val)
	return c.store(op, val)
}

func dec(c *CPU, op Operand) error {
	val, err := c.load(op)
	if err != nil {
		return err
	}
	val--
	c.P.checkNZ(val)
	return c.store(op, val)
}

func and(c *CPU, op Operand) error {
	val, err := c.load(op)
	if err != nil {
		return err
	}
	c.A &= val
	c.P.checkNZ(c.A)
	return nil
}

func ora(c *CPU, op Operand) error {
	val, err := c.load(op)
	if err != nil {
		return err
	}
	c.A |= val
	c.P.checkNZ(c.A)
	return nil
}

func eor(c *CPU, op Operand) error {
	val, err := c.load(op)
	if err != nil {
		return err
	}
	c.A ^= val
	c.P.checkNZ(c.A)
	return nil
}

func compare(reg func(*CPU) uint8) Handler {
	return func(c *CPU, op Operand) error {
		val, err := c.load(op)
		if err != nil {
			return err
		}
		v := reg(c)
		c.P.writeBit(pbitC, v >= val)
		c.P.checkNZ(v - val)
		return nil
	}
}

func flag(bit int, val bool) Handler {
	return func(c *CPU, _ Operand) error {
		c.P.writeBit(bit, val)
		return nil
	}
}

func jmp(c *CPU, op Operand) error {
	c.PC = op.Addr
	return nil
}

func branch(bit int, val bool) Handler {
	return func(c *CPU, op Operand) error {
		if c.P.bit(bit) == val {
			c.PC = op.Addr
		}
		return nil
	}
}

func nop(*CPU, Operand) error { return nil }
