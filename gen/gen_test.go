package gen

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"optab/isa"
)

const testTable = `mnemonic; description; addressing mode; assembler; opcode; bytes; cycles; category
LDA; Load Accumulator with Memory; immediate; LDA #oper; A9; 2; 2; standard
LDA; Load Accumulator with Memory; absolute; LDA oper; AD; 3; 4; standard
SLO; Shift Left then OR; zeropage; SLO oper; 07; 2; 5; illegal
NOP; No Operation; implied; NOP; EA; 1; 2; standard
`

func compileTestTable(t *testing.T) *isa.Table {
	t.Helper()

	tbl, err := isa.Compile(strings.NewReader(testTable), isa.VariantExtended)
	if err != nil {
		t.Fatal(err)
	}
	return tbl
}

func TestDescriptors(t *testing.T) {
	g := New(compileTestTable(t), "cpu")
	src, err := g.Descriptors()
	if err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{
		"// Code generated by optab gen. DO NOT EDIT.",
		"package cpu",
		`import "optab/isa"`,
		"var optable = [256]*opdef{",
		"// SLO   07",
		`0x07: {mnemonic: "SLO", mode: isa.ZeroPage, bytes: 2, cycles: 5, category: isa.Illegal, fn: slo_shift_left_then_or},`,
		`0xA9: {mnemonic: "LDA", mode: isa.Immediate, bytes: 2, cycles: 2, category: isa.Standard, fn: lda_load_accumulator_with_memory},`,
	} {
		if !strings.Contains(string(src), want) {
			t.Errorf("generated source lacks %q", want)
		}
	}

	// both 0xA9 and 0xAD map to the same handler identifier.
	if got := strings.Count(string(src), "fn: lda_load_accumulator_with_memory"); got != 2 {
		t.Errorf("got %d references to the shared lda handler, want 2", got)
	}
}

func TestDescriptorsStandardOmitsCategory(t *testing.T) {
	const std = `mnemonic; description; addressing mode; assembler; opcode; bytes; cycles
NOP; No Operation; implied; NOP; EA; 1; 2
`
	tbl, err := isa.Compile(strings.NewReader(std), isa.VariantStandard)
	if err != nil {
		t.Fatal(err)
	}
	src, err := New(tbl, "cpu").Descriptors()
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(src), "category:") {
		t.Error("standard-variant descriptors carry a category field")
	}
}

func TestMissing(t *testing.T) {
	tbl := compileTestTable(t)

	implemented := map[isa.Ident]bool{
		"lda_load_accumulator_with_memory": true,
		"nop_no_operation":                 true,
	}
	want := []isa.Ident{"slo_shift_left_then_or"}
	if diff := cmp.Diff(want, Missing(tbl, implemented)); diff != "" {
		t.Errorf("missing set differs (-want +got):\n%s", diff)
	}

	if got := Missing(tbl, nil); len(got) != 3 {
		t.Errorf("with nothing implemented, got %d missing, want 3", len(got))
	}
}

func TestStubs(t *testing.T) {
	g := New(compileTestTable(t), "cpu")

	src, err := g.Stubs(map[isa.Ident]bool{
		"lda_load_accumulator_with_memory": true,
	})
	if err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{
		"// nop_no_operation has no implementation yet.",
		"func nop_no_operation(c *CPU, _ Operand) error {",
		"func slo_shift_left_then_or(c *CPU, _ Operand) error {",
		"return c.unimplemented()",
	} {
		if !strings.Contains(string(src), want) {
			t.Errorf("stub source lacks %q", want)
		}
	}
	if strings.Contains(string(src), "func lda_load_accumulator_with_memory") {
		t.Error("stub emitted for an implemented handler")
	}
}

func TestGenerateDeterministic(t *testing.T) {
	tbl := compileTestTable(t)

	d1, err := New(tbl, "cpu").Descriptors()
	if err != nil {
		t.Fatal(err)
	}
	d2, err := New(tbl, "cpu").Descriptors()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(d1, d2) {
		t.Error("descriptor generation is not byte-identical across runs")
	}

	s1, err := New(tbl, "cpu").Stubs(nil)
	if err != nil {
		t.Fatal(err)
	}
	s2, err := New(tbl, "cpu").Stubs(nil)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(s1, s2) {
		t.Error("stub generation is not byte-identical across runs")
	}
}

func TestReadRegistry(t *testing.T) {
	const reg = `# handlers with a real implementation
lda_load_accumulator_with_memory

nop_no_operation
`
	got, err := ReadRegistry(strings.NewReader(reg))
	if err != nil {
		t.Fatal(err)
	}
	want := map[isa.Ident]bool{
		"lda_load_accumulator_with_memory": true,
		"nop_no_operation":                 true,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("registry differs (-want +got):\n%s", diff)
	}
}
