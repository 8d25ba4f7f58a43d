package isa

import "fmt"

// The four error kinds below are all fatal: the compiler surfaces the
// first one encountered and stops, it never attempts best-effort
// continuation or partial recovery.

// InvalidAddressingModeError reports an addressing-mode token outside
// the fixed vocabulary. Token holds the offending token verbatim.
type InvalidAddressingModeError struct {
	Token string
}

func (e *InvalidAddressingModeError) Error() string {
	return fmt.Sprintf("invalid addressing mode %q", e.Token)
}

// InvalidCategoryError reports an unknown legality token in the
// category column of an extended-variant table.
type InvalidCategoryError struct {
	Token string
}

func (e *InvalidCategoryError) Error() string {
	return fmt.Sprintf("invalid instruction category %q", e.Token)
}

// MalformedRowError reports a record with the wrong field count or an
// unparsable field. Raw holds the raw record for diagnostics; Err, when
// non-nil, is the underlying cause (a resolver or numeric conversion
// failure).
type MalformedRowError struct {
	Raw string
	Err error
}

func (e *MalformedRowError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed row %q: %s", e.Raw, e.Err)
	}
	return fmt.Sprintf("malformed row %q", e.Raw)
}

func (e *MalformedRowError) Unwrap() error { return e.Err }

// DuplicateOpcodeError reports two rows claiming the same opcode byte.
// Both conflicting mnemonics are named, in table order.
type DuplicateOpcodeError struct {
	Opcode byte
	Prev   string
	New    string
}

func (e *DuplicateOpcodeError) Error() string {
	return fmt.Sprintf("duplicate opcode 0x%02X: %s and %s", e.Opcode, e.Prev, e.New)
}
