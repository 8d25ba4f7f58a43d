package isa

import "testing"

func TestHandlerIdent(t *testing.T) {
	tests := []struct {
		mnemonic, description string
		want                  Ident
	}{
		{"LDA", "Load Accumulator", "lda_load_accumulator"},
		{"LDA", "Load Accumulator with Memory", "lda_load_accumulator_with_memory"},
		{"ARR", "AND oper + ROR", "arr_and_oper_plus_ror"},
		{"SLO", "ASL oper + ORA oper", "slo_asl_oper_plus_ora_oper"},
		{"EOR", "Exclusive-OR Memory with Accumulator", "eor_exclusive_or_memory_with_accumulator"},
		{"LAS", "LDA/TSX oper", "las_lda_tsx_oper"},
		{"BRK", "Force Break", "brk_force_break"},

		// whitespace and case invariance
		{"  lda ", "  LOAD ACCUMULATOR  ", "lda_load_accumulator"},

		// anything outside [a-z0-9_] becomes a separator
		{"JMP", "Jump (indirect)", "jmp_jump__indirect_"},
	}
	for _, tt := range tests {
		got := HandlerIdent(tt.mnemonic, tt.description)
		if got != tt.want {
			t.Errorf("HandlerIdent(%q, %q) = %q, want %q",
				tt.mnemonic, tt.description, got, tt.want)
		}
	}
}

func TestHandlerIdentDeterministic(t *testing.T) {
	a := HandlerIdent("SBC", "Subtract Memory from Accumulator with Borrow")
	for i := 0; i < 100; i++ {
		b := HandlerIdent("SBC", "Subtract Memory from Accumulator with Borrow")
		if a != b {
			t.Fatalf("run %d: %q != %q", i, b, a)
		}
	}
}
