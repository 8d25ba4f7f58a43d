package isa

import (
	"strconv"
	"strings"
)

// Variant selects which of the two table layouts is being compiled.
// Both share all parsing and compilation logic: the extended layout
// simply carries one more column, the legality category.
type Variant uint8

const (
	// VariantStandard: mnemonic, description, addressing mode,
	// assembler syntax, opcode, bytes, cycles.
	VariantStandard Variant = iota
	// VariantExtended: same plus a trailing category column.
	VariantExtended
)

func (v Variant) String() string {
	if v == VariantExtended {
		return "extended"
	}
	return "standard"
}

// fields returns the number of columns a record must have.
func (v Variant) fields() int {
	if v == VariantExtended {
		return 8
	}
	return 7
}

// Row is one parsed record of the instruction table. Rows are built
// once per input line, handed to the compiler and never retained.
type Row struct {
	Mnemonic    string
	Description string
	Mode        AddressingMode
	Syntax      string // assembler syntax, informational only
	Opcode      byte
	Bytes       int
	Cycles      int
	Category    Category // extended variant only, Standard otherwise
}

const delim = ";"

// ParseRow parses one delimited record into a Row, resolving the
// addressing-mode and (extended variant) category tokens. A trailing
// delimiter is tolerated. Resolver failures are propagated as is;
// everything else wrong with the record surfaces as a MalformedRowError
// carrying the raw record.
func ParseRow(record string, variant Variant) (Row, error) {
	raw := record
	record = strings.TrimSpace(record)
	record = strings.TrimSuffix(record, delim)

	fields := strings.Split(record, delim)
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	if len(fields) != variant.fields() {
		return Row{}, &MalformedRowError{Raw: raw}
	}

	mode, err := ParseAddressingMode(fields[2])
	if err != nil {
		return Row{}, err
	}

	opcode, err := strconv.ParseUint(fields[4], 16, 8)
	if err != nil {
		return Row{}, &MalformedRowError{Raw: raw, Err: err}
	}
	nbytes, err := strconv.Atoi(fields[5])
	if err != nil {
		return Row{}, &MalformedRowError{Raw: raw, Err: err}
	}
	cycles, err := strconv.Atoi(fields[6])
	if err != nil {
		return Row{}, &MalformedRowError{Raw: raw, Err: err}
	}
	if nbytes < 1 || nbytes > 3 || cycles < 1 {
		return Row{}, &MalformedRowError{Raw: raw}
	}

	row := Row{
		Mnemonic:    fields[0],
		Description: fields[1],
		Mode:        mode,
		Syntax:      fields[3],
		Opcode:      byte(opcode),
		Bytes:       nbytes,
		Cycles:      cycles,
	}
	if variant == VariantExtended {
		cat, err := ParseCategory(fields[7])
		if err != nil {
			return Row{}, err
		}
		row.Category = cat
	}
	return row, nil
}
