package isa

// Category tells whether an instruction belongs to the officially
// documented set or is one of the undocumented ("illegal") opcodes
// with defined, emulatable behavior.
type Category uint8

const (
	Standard Category = iota
	Illegal
)

// ParseCategory resolves a legality token. Only the extended table
// variant carries a category column, so this is never called when
// compiling a standard-variant table.
func ParseCategory(tok string) (Category, error) {
	switch tok {
	case "standard":
		return Standard, nil
	case "illegal":
		return Illegal, nil
	}
	return 0, &InvalidCategoryError{Token: tok}
}
