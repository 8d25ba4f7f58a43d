package cpu

// P is the 6502 Processor Status Register.
type P uint8

const (
	pbitN = 7 - iota // Negative flag
	pbitV            // oVerflow flag
	pbitU            // Unused
	pbitB            // Break flag
	pbitD            // Decimal mode flag
	pbitI            // Interrupt disable flag
	pbitZ            // Zero flag
	pbitC            // Carry flag
)

func (p P) N() bool { return p.bit(pbitN) }
func (p P) V() bool { return p.bit(pbitV) }
func (p P) B() bool { return p.bit(pbitB) }
func (p P) D() bool { return p.bit(pbitD) }
func (p P) I() bool { return p.bit(pbitI) }
func (p P) Z() bool { return p.bit(pbitZ) }
func (p P) C() bool { return p.bit(pbitC) }

func (p *P) checkNZ(v uint8) {
	p.writeBit(pbitN, v&0x80 != 0)
	p.writeBit(pbitZ, v == 0)
}

func (p *P) writeBit(i int, v bool) {
	if v {
		*p |= P(1 << i)
	} else {
		*p &= ^P(1 << i)
	}
}

func (p P) bit(i int) bool {
	return p&P(1<<i) != 0
}
