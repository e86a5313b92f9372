package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/monkey-lang/gomonkey/evaluator"
	"github.com/monkey-lang/gomonkey/lexer"
	"github.com/monkey-lang/gomonkey/object"
	"github.com/monkey-lang/gomonkey/parser"
)

var benchDepth int

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run the recursive fibonacci benchmark through the real pipeline",
	RunE:  runBench,
}

func init() {
	rootCmd.AddCommand(benchCmd)
	benchCmd.Flags().IntVar(&benchDepth, "depth", 35, "argument passed to fibonacci(n)")
}

func runBench(_ *cobra.Command, _ []string) error {
	source := fmt.Sprintf(`
let fibonacci = fn(x) {
  if (x < 2) {
    x
  } else {
    fibonacci(x - 1) + fibonacci(x - 2)
  }
};
fibonacci(%d);
`, benchDepth)

	p := parser.New(lexer.New(source))
	program := p.ParseProgram()
	if errs := p.Errors(); len(errs) != 0 {
		return fmt.Errorf("parsing failed with %d error(s)", len(errs))
	}

	env := object.NewEnvironment()

	start := time.Now()
	result := evaluator.Eval(program, env)
	duration := time.Since(start)

	if result != nil && result.Type() == object.MError {
		return fmt.Errorf("runtime error: %s", result.Inspect())
	}

	fmt.Printf("fibonacci(%d) = %s\n", benchDepth, result.Inspect())
	fmt.Printf("elapsed: %s\n", duration)

	return nil
}
