// Command gofift runs the interpreter's reference CLI frontend: a
// batch/interactive runner over one or more source files, matching the
// positional-file-plus-flags surface spec.md §6 describes. Grounded on
// Tosca's go/ct/driver CLI (cli/flags.go's typed-flag wrapper pattern).
package main

import (
	"fmt"
	"math/big"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/corbinlang/gofift"
	"github.com/corbinlang/gofift/internal/logio"
	"github.com/corbinlang/gofift/words"
)

const version = "0.1.0"

func main() {
	app := &cli.App{
		Name:      "gofift",
		Usage:     "a stack-based, dictionary-driven interpreter",
		ArgsUsage: "[file...]",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "n", Usage: "skip the prelude"},
			&cli.BoolFlag{Name: "i", Usage: "force interactive mode"},
			&cli.StringFlag{Name: "I", Usage: "include search path (colon-separated)"},
			&cli.StringFlag{Name: "L", Usage: "explicit prelude path"},
			&cli.BoolFlag{Name: "v", Usage: "print version and exit"},
			&cli.BoolFlag{Name: "s", Usage: "script mode: first file argument is the source, the rest become $0..$N"},
			&cli.BoolFlag{Name: "trace", Usage: "log each resolved word to stderr"},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if c.Bool("v") {
		fmt.Println("gofift", version)
		return nil
	}

	env := gofift.NewOS()
	if inc := c.String("I"); inc != "" {
		env.IncludePath = strings.Split(inc, ":")
	}

	opts := []gofift.Option{gofift.WithEnvironment(env)}
	if c.Bool("trace") {
		var tracer logio.Logger
		tracer.SetOutput(os.Stderr)
		opts = append(opts, gofift.WithTrace(tracer.Leveledf("trace")))
	}
	ctx := gofift.New(opts...)
	for _, m := range words.All() {
		if err := m.Init(ctx.Dict); err != nil {
			return fmt.Errorf("installing word module: %w", err)
		}
	}

	args := c.Args().Slice()

	if !c.Bool("n") {
		prelude := c.String("L")
		if prelude == "" {
			prelude = "Fift.fif"
		}
		if env.FileExists(prelude) {
			data, err := env.ReadFile(prelude)
			if err != nil {
				return fmt.Errorf("reading prelude: %w", err)
			}
			ctx.Lexer.PushString(prelude, string(data))
		}
	}

	if c.Bool("s") {
		if len(args) == 0 {
			return fmt.Errorf("-s requires a source file argument")
		}
		src, rest := args[0], args[1:]
		data, err := env.ReadFile(src)
		if err != nil {
			return fmt.Errorf("reading %s: %w", src, err)
		}
		installScriptArgs(ctx, rest)
		ctx.Lexer.PushString(src, string(data))
	} else {
		for _, path := range args {
			data, err := env.ReadFile(path)
			if err != nil {
				return fmt.Errorf("reading %s: %w", path, err)
			}
			ctx.Lexer.PushString(path, string(data))
		}
		if len(args) == 0 || c.Bool("i") {
			ctx.Lexer.PushSource("<stdin>", os.Stdin)
		}
	}

	exitCode, err := gofift.RunIsolated(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		if exitCode == 0 {
			exitCode = 1
		}
	}
	if exitCode != 0 {
		os.Exit(exitCode)
	}
	return nil
}

// installScriptArgs defines $0..$N (the script's own arguments) and $#
// (their count) for `-s` script mode, per
// original_source/cli/src/modules/args.rs.
func installScriptArgs(ctx *gofift.Context, args []string) {
	for i, a := range args {
		name := "$" + strconv.Itoa(i)
		ctx.Dict.DefineWord(name, &gofift.LitCont{Value: gofift.StringValue(a)})
	}
	ctx.Dict.DefineWord("$#", &gofift.IntLitCont{Value: big.NewInt(int64(len(args)))})
}
