package cmd

import (
	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags; it defaults to "dev" for
// local builds.
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:     "gomonkey",
	Short:   "An interpreter for the Monkey programming language",
	Version: Version,
	RunE:    runRepl,
}

// Execute runs the root command, dispatching to whichever subcommand the
// user invoked. With no subcommand, it starts the REPL.
func Execute() error {
	return rootCmd.Execute()
}

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive REPL",
	RunE:  runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}
