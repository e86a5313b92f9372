/*
File   : gomonkey/repl/repl.go
Package: repl

Package repl implements the interactive Read-Eval-Print Loop for the
Monkey interpreter. The REPL keeps a single object.Environment alive
across lines so that `let` bindings and function definitions persist
between prompts, and uses readline for line editing/history and
fatih/color for distinguishing results from errors.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/monkey-lang/gomonkey/evaluator"
	"github.com/monkey-lang/gomonkey/lexer"
	"github.com/monkey-lang/gomonkey/object"
	"github.com/monkey-lang/gomonkey/parser"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

const monkeyFace = `            __,__
   .--.  .-"     "-.  .--.
  / .. \/  .-. .-.  \/ .. \
 | |  '|  /   Y   \  |'  | |
 | \   \  \ 0 | 0 /  /   / |
  \ '- ,\.-"""""""-./, -' /
   ''-' /_   ^ ^   _\ '-''
       |  \._   _./  |
       \   \ '~' /   /
        '._ '-=-' _.'
           '-----'
`

// Repl holds the static display elements of an interactive session
// (banner, version string, prompt) independent of any particular run.
type Repl struct {
	Banner  string
	Version string
	Prompt  string
}

// New creates a Repl with the given banner, version string, and prompt.
func New(banner, version, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Prompt: prompt}
}

// printBanner writes the startup banner and short usage notes to writer.
func (r *Repl) printBanner(writer io.Writer) {
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	yellowColor.Fprintf(writer, "gomonkey %s\n", r.Version)
	cyanColor.Fprintln(writer, "Type Monkey code and press enter. Ctrl+D to exit.")
}

// Start runs the REPL loop against a freshly created Environment, reading
// lines via readline and printing each expression's result until EOF or
// the user presses Ctrl+D.
func (r *Repl) Start(writer io.Writer) error {
	r.printBanner(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		return err
	}
	defer rl.Close()

	env := object.NewEnvironment()

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("\n"))
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		rl.SaveHistory(line)
		r.executeWithRecovery(writer, line, env)
	}
}

// executeWithRecovery parses and evaluates a single line, recovering from
// an unforeseen runtime panic rather than crashing the session — that is
// this function's only responsibility beyond reporting; every
// evaluator-detected error is already a first-class object.Error, handled
// without recover(). A Go stack overflow from deep recursion is a fatal
// runtime error, not a panic, and is not recovered here.
func (r *Repl) executeWithRecovery(writer io.Writer, line string, env *object.Environment) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "runtime panic: %v\n", recovered)
		}
	}()

	p := parser.New(lexer.New(line))
	program := p.ParseProgram()

	if errs := p.Errors(); len(errs) != 0 {
		printParserErrors(writer, errs)
		return
	}

	result := evaluator.Eval(program, env)
	if result == nil {
		return
	}

	if result.Type() == object.MError {
		redColor.Fprintf(writer, "%s\n", result.Inspect())
		return
	}

	blueColor.Fprintf(writer, "%s\n", result.Inspect())
}

func printParserErrors(writer io.Writer, errors []string) {
	redColor.Fprintln(writer, monkeyFace)
	redColor.Fprintln(writer, "Woops! We ran into some monkey business here!")
	redColor.Fprintln(writer, " parser errors:")
	for _, msg := range errors {
		redColor.Fprintf(writer, "\t%s\n", msg)
	}
}
