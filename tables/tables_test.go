package tables

import (
	"testing"

	"optab/isa"
)

func TestFull(t *testing.T) {
	tbl := Full()

	if got := tbl.Variant(); got != isa.VariantExtended {
		t.Errorf("variant = %s, want extended", got)
	}
	// the extended table defines the whole opcode space.
	if got := tbl.Len(); got != 256 {
		t.Errorf("got %d opcodes, want 256", got)
	}
}

func TestDocumented(t *testing.T) {
	tbl := Documented()

	if got := tbl.Variant(); got != isa.VariantStandard {
		t.Errorf("variant = %s, want standard", got)
	}
	if got := tbl.Len(); got != 151 {
		t.Errorf("got %d opcodes, want 151", got)
	}
	for _, e := range tbl.Entries() {
		if e.Category != isa.Standard {
			t.Errorf("opcode 0x%02X: category %s in the documented table", e.Opcode, e.Category)
		}
	}
}

// Every opcode of the documented table must appear in the full table
// with an identical descriptor, standard category included.
func TestDocumentedSubsetOfFull(t *testing.T) {
	full := Full()
	for _, e := range Documented().Entries() {
		fe, ok := full.Lookup(e.Opcode)
		if !ok {
			t.Errorf("opcode 0x%02X documented but missing from the full table", e.Opcode)
			continue
		}
		if fe.Category != isa.Standard {
			t.Errorf("opcode 0x%02X: documented but illegal in the full table", e.Opcode)
		}
		if fe.Mnemonic != e.Mnemonic || fe.Mode != e.Mode ||
			fe.Bytes != e.Bytes || fe.Cycles != e.Cycles || fe.Handler != e.Handler {
			t.Errorf("opcode 0x%02X: descriptors diverge between tables", e.Opcode)
		}
	}
}

func TestFullWellFormed(t *testing.T) {
	for _, e := range Full().Entries() {
		if e.Handler == "" {
			t.Errorf("opcode 0x%02X: empty handler identifier", e.Opcode)
		}
		for _, r := range e.Handler {
			if !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '_') {
				t.Errorf("opcode 0x%02X: identifier %q has rune %q", e.Opcode, e.Handler, r)
			}
		}
	}
}

func TestKnownOpcodes(t *testing.T) {
	tests := []struct {
		opcode   byte
		mnemonic string
		mode     isa.AddressingMode
		handler  isa.Ident
	}{
		{0xA9, "LDA", isa.Immediate, "lda_load_accumulator_with_memory"},
		{0x6C, "JMP", isa.Indirect, "jmp_jump_to_new_location"},
		{0x00, "BRK", isa.Implicit, "brk_force_break"},
		{0x6B, "ARR", isa.Immediate, "arr_and_oper_plus_ror"},
		{0x02, "JAM", isa.Implicit, "jam_freeze_the_cpu"},
	}
	for _, tt := range tests {
		e, ok := Full().Lookup(tt.opcode)
		if !ok {
			t.Errorf("opcode 0x%02X undefined", tt.opcode)
			continue
		}
		if e.Mnemonic != tt.mnemonic || e.Mode != tt.mode || e.Handler != tt.handler {
			t.Errorf("opcode 0x%02X: got (%s, %s, %s), want (%s, %s, %s)",
				tt.opcode, e.Mnemonic, e.Mode, e.Handler, tt.mnemonic, tt.mode, tt.handler)
		}
	}
}
