package isa

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strings"

	"optab/log"
)

// Entry is one occupied dispatch-table slot: everything the
// interpreter needs to decode and account for an instruction, plus the
// identifier of the handler implementing its behavior.
type Entry struct {
	Opcode   byte
	Mnemonic string
	Mode     AddressingMode
	Bytes    int
	Cycles   int
	Category Category
	Handler  Ident
}

// Table is the compiled dispatch table: a fixed 256-slot mapping from
// opcode byte to instruction descriptor. Slots with no corresponding
// table row stay nil, which Lookup reports as "opcode undefined" - a
// different condition from "defined but unimplemented", which only
// shows up at execution time through a stub handler.
//
// A Table is immutable once compiled and safe to share between any
// number of readers.
type Table struct {
	variant Variant
	slots   [256]*Entry
}

func (t *Table) Variant() Variant { return t.variant }

// Lookup returns the descriptor bound to an opcode byte, or ok=false
// if the table never defined it.
func (t *Table) Lookup(opcode byte) (*Entry, bool) {
	e := t.slots[opcode]
	return e, e != nil
}

// Len is the number of occupied slots.
func (t *Table) Len() int {
	n := 0
	for _, e := range t.slots {
		if e != nil {
			n++
		}
	}
	return n
}

// Entries returns the occupied slots in opcode order.
func (t *Table) Entries() []*Entry {
	var entries []*Entry
	for _, e := range t.slots {
		if e != nil {
			entries = append(entries, e)
		}
	}
	return entries
}

// Handlers returns the distinct handler identifiers referenced by
// occupied slots, sorted. Several opcodes may share one identifier.
func (t *Table) Handlers() []Ident {
	var ids []Ident
	for _, e := range t.slots {
		if e != nil && !slices.Contains(ids, e.Handler) {
			ids = append(ids, e.Handler)
		}
	}
	slices.Sort(ids)
	return ids
}

// Compile reads a delimited instruction table and compiles it into a
// dispatch table. The first record is a header and is always skipped;
// blank lines are ignored. Rows are processed in file order, in a
// single pass: the first fatal diagnostic (malformed row, unknown
// token, duplicate opcode) aborts the compile and no table is
// returned.
func Compile(r io.Reader, variant Variant) (*Table, error) {
	t := &Table{variant: variant}

	sc := bufio.NewScanner(r)
	header := true
	for sc.Scan() {
		line := sc.Text()
		if header {
			header = false
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		row, err := ParseRow(line, variant)
		if err != nil {
			return nil, err
		}

		if prev := t.slots[row.Opcode]; prev != nil {
			return nil, &DuplicateOpcodeError{
				Opcode: row.Opcode,
				Prev:   prev.Mnemonic,
				New:    row.Mnemonic,
			}
		}
		t.slots[row.Opcode] = &Entry{
			Opcode:   row.Opcode,
			Mnemonic: row.Mnemonic,
			Mode:     row.Mode,
			Bytes:    row.Bytes,
			Cycles:   row.Cycles,
			Category: row.Category,
			Handler:  HandlerIdent(row.Mnemonic, row.Description),
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading instruction table: %w", err)
	}

	log.ModISA.Debugf("compiled %s table: %d opcodes, %d handlers",
		variant, t.Len(), len(t.Handlers()))
	return t, nil
}

// MustCompile is like Compile but panics on error. It is meant for
// tables embedded in the binary, where a diagnostic is a programming
// error.
func MustCompile(r io.Reader, variant Variant) *Table {
	t, err := Compile(r, variant)
	if err != nil {
		panic(fmt.Sprintf("isa: MustCompile: %s", err))
	}
	return t
}
