package gen

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"optab/isa"
)

// ReadRegistry reads a handler registry: one implemented handler
// identifier per line, '#' starting a comment. The registry is
// established by hand, next to the hand-written handlers; the compiler
// only ever reads it.
func ReadRegistry(r io.Reader) (map[isa.Ident]bool, error) {
	implemented := make(map[isa.Ident]bool)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		implemented[isa.Ident(line)] = true
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading handler registry: %w", err)
	}
	return implemented, nil
}
