package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"optab/log"
)

type mode byte

const (
	genMode     mode = iota // Compile a table and emit Go source
	checkMode               // Validate table files
	dumpMode                // Dump a compiled table as JSON
	versionMode             // Show optab version
)

type (
	CLI struct {
		Gen     Gen     `cmd:"" help:"Compile an instruction table and emit Go source. (default command)" default:"true"`
		Check   Check   `cmd:"" help:"Validate instruction table files."`
		Dump    Dump    `cmd:"" help:"Compile an instruction table and dump it as JSON."`
		Version Version `cmd:"" help:"Show optab version."`

		Log logModMask `help:"${log_help}" placeholder:"mod0,mod1,..."`

		mode mode
	}

	Gen struct {
		Table string `arg:"" optional:"" name:"/path/to/table" help:"${table_help}" type:"existingfile"`

		Out      string `name:"out" help:"Output file for descriptor declarations."`
		Stubs    string `name:"stubs" help:"Output file for synthesized stub handlers."`
		Pkg      string `name:"pkg" help:"Package name of the generated files."`
		Variant  string `name:"variant" help:"Table variant." enum:"standard,extended,"`
		Registry string `name:"registry" help:"${registry_help}" type:"existingfile"`
		Config   string `name:"config" help:"TOML file providing gen defaults." type:"path"`
	}

	Check struct {
		Tables []string `arg:"" name:"table" help:"Table files to validate." type:"existingfile"`

		Variant string `name:"variant" help:"Table variant." enum:"standard,extended" default:"extended"`
	}

	Dump struct {
		Table string `arg:"" name:"/path/to/table" type:"existingfile"`

		Variant string `name:"variant" help:"Table variant." enum:"standard,extended" default:"extended"`
	}

	Version struct{}
)

var vars = kong.Vars{
	"table_help":    "Instruction table to compile. Falls back to the value from the config file.",
	"registry_help": "File listing implemented handler identifiers, one per line.",
	"log_help":      "Enable debug logging for specified modules.",
}

func parseArgs(args []string) CLI {
	var cfg CLI
	parser, err := kong.New(&cfg,
		kong.Name("optab"),
		kong.Description("6502 instruction-table compiler."),
		kong.UsageOnError(),
		kong.Help(printHelp),
		vars)
	if err != nil {
		panic(err)
	}

	ctx, err := parser.Parse(args)
	checkf(err, "failed to parse command line")
	checkf(ctx.Error, "failed to parse command line")

	switch {
	case strings.HasPrefix(ctx.Command(), "check"):
		cfg.mode = checkMode
	case strings.HasPrefix(ctx.Command(), "dump"):
		cfg.mode = dumpMode
	case ctx.Command() == "version":
		cfg.mode = versionMode
	default:
		cfg.mode = genMode
	}
	return cfg
}

func printHelp(options kong.HelpOptions, ctx *kong.Context) error {
	if err := kong.DefaultHelpPrinter(options, ctx); err != nil {
		return err
	}

	loggingHelp := `
Log modules:
  The --log flag accepts a comma-separated list of modules.

  Valid log modules are:
%s

  As a special case, the following values are accepted:
    - no                     Disable all logging.
    - all                    Enable all logs.
`
	var strs []string
	for _, m := range log.ModuleNames() {
		strs = append(strs, "    - "+m)
	}

	fmt.Fprintf(os.Stderr, loggingHelp, strings.Join(strs, "\n"))
	return nil
}

type logModMask log.ModuleMask

// Decode decodes a comma-separated list of module names into a module mask.
//
// Implements kong.MapperValue interface.
func (lm logModMask) Decode(ctx *kong.DecodeContext) error {
	nolog := false
	allLogs := false

	tok := ctx.Scan.Pop()
	for _, v := range strings.Split(tok.Value.(string), ",") {
		switch v {
		case "all":
			allLogs = true
		case "no":
			nolog = true
		default:
			mod, ok := log.ModuleByName(v)
			if !ok {
				return fmt.Errorf("unknown log module %s", v)
			}
			lm |= logModMask(mod.Mask())
		}
	}

	if nolog {
		if allLogs {
			return fmt.Errorf("cannot use 'all' and 'no' together")
		}
		if lm != 0 {
			return fmt.Errorf("cannot combine 'no' with other log modules")
		}
		log.Disable()
		return nil
	}

	if allLogs {
		lm = logModMask(log.ModuleMaskAll)
	}

	log.EnableDebugModules(log.ModuleMask(lm))
	return nil
}

func checkf(err error, format string, args ...any) {
	if err == nil {
		return
	}
	fatalf(format+".\n"+err.Error(), args...)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "fatal error:")
	fmt.Fprintf(os.Stderr, "\n\t%s\n", fmt.Sprintf(format, args...))
	os.Exit(1)
}
