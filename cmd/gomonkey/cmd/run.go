package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/monkey-lang/gomonkey/evaluator"
	"github.com/monkey-lang/gomonkey/lexer"
	"github.com/monkey-lang/gomonkey/object"
	"github.com/monkey-lang/gomonkey/parser"
)

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Run a Monkey source file",
	Args:  cobra.ExactArgs(1),
	RunE:  runFile,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runFile(_ *cobra.Command, args []string) error {
	source, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	p := parser.New(lexer.New(string(source)))
	program := p.ParseProgram()

	if errs := p.Errors(); len(errs) != 0 {
		for _, msg := range errs {
			fmt.Fprintln(os.Stderr, msg)
		}
		return fmt.Errorf("parsing failed with %d error(s)", len(errs))
	}

	env := object.NewEnvironment()
	result := evaluator.Eval(program, env)

	if result == nil {
		return nil
	}

	if result.Type() == object.MError {
		return fmt.Errorf("runtime error: %s", result.Inspect())
	}

	fmt.Println(result.Inspect())
	return nil
}
