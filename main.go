package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/go-faster/jx"
	"golang.org/x/sync/errgroup"

	"optab/gen"
	"optab/isa"
)

const version = "0.2.0"

func main() {
	cli := parseArgs(os.Args[1:])

	switch cli.mode {
	case genMode:
		genMain(cli.Gen)
	case checkMode:
		checkMain(cli.Check)
	case dumpMode:
		dumpMain(cli.Dump)
	case versionMode:
		fmt.Printf("optab %s\n", version)
	}
}

func parseVariant(s string) isa.Variant {
	if s == "standard" {
		return isa.VariantStandard
	}
	return isa.VariantExtended
}

func compileFile(path string, variant isa.Variant) (*isa.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return isa.Compile(f, variant)
}

func genMain(cmd Gen) {
	cfg := loadConfigOrDefault(cmd.Config).Gen

	table := fallback(cmd.Table, cfg.Table)
	if table == "" {
		fatalf("no instruction table given (argument or config file)")
	}
	out := fallback(cmd.Out, cfg.Out, "opcodes.go")
	stubs := fallback(cmd.Stubs, cfg.Stubs, "stubs.go")
	pkg := fallback(cmd.Pkg, cfg.Package, "cpu")
	variant := parseVariant(fallback(cmd.Variant, cfg.Variant, "extended"))

	implemented := map[isa.Ident]bool{}
	if reg := fallback(cmd.Registry, cfg.Registry); reg != "" {
		f, err := os.Open(reg)
		checkf(err, "failed to open handler registry")
		implemented, err = gen.ReadRegistry(f)
		f.Close()
		checkf(err, "failed to read handler registry")
	}

	tbl, err := compileFile(table, variant)
	checkf(err, "failed to compile %s", table)

	// generate both artifacts before writing either: a generation
	// failure must not leave valid-looking partial output behind.
	g := gen.New(tbl, pkg)
	descsrc, err := g.Descriptors()
	checkf(err, "failed to generate descriptors")
	stubsrc, err := g.Stubs(implemented)
	checkf(err, "failed to generate stubs")

	checkf(os.WriteFile(out, descsrc, 0644), "can't write to %s", out)
	checkf(os.WriteFile(stubs, stubsrc, 0644), "can't write to %s", stubs)
}

func checkMain(cmd Check) {
	variant := parseVariant(cmd.Variant)

	// each table compiles in a single synchronous pass; only distinct
	// files are checked concurrently.
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())

	errs := make([]error, len(cmd.Tables))
	counts := make([]int, len(cmd.Tables))
	for i, path := range cmd.Tables {
		i, path := i, path
		g.Go(func() error {
			tbl, err := compileFile(path, variant)
			if err != nil {
				errs[i] = err
				return nil
			}
			counts[i] = tbl.Len()
			return nil
		})
	}
	g.Wait()

	failed := false
	for i, path := range cmd.Tables {
		if errs[i] != nil {
			failed = true
			fmt.Fprintf(os.Stderr, "%s: %s\n", path, errs[i])
			continue
		}
		fmt.Printf("%s: ok, %d opcodes\n", path, counts[i])
	}
	if failed {
		os.Exit(1)
	}
}

func dumpMain(cmd Dump) {
	variant := parseVariant(cmd.Variant)
	tbl, err := compileFile(cmd.Table, variant)
	checkf(err, "failed to compile %s", cmd.Table)

	var e jx.Encoder
	e.ArrStart()
	for _, ent := range tbl.Entries() {
		e.ObjStart()
		e.FieldStart("opcode")
		e.Str(fmt.Sprintf("%02X", ent.Opcode))
		e.FieldStart("mnemonic")
		e.Str(ent.Mnemonic)
		e.FieldStart("mode")
		e.Str(ent.Mode.String())
		e.FieldStart("bytes")
		e.Int(ent.Bytes)
		e.FieldStart("cycles")
		e.Int(ent.Cycles)
		if variant == isa.VariantExtended {
			e.FieldStart("category")
			e.Str(ent.Category.String())
		}
		e.FieldStart("handler")
		e.Str(string(ent.Handler))
		e.ObjEnd()
	}
	e.ArrEnd()

	os.Stdout.Write(e.Bytes())
	fmt.Println()
}
