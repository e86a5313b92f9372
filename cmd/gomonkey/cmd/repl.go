package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/monkey-lang/gomonkey/repl"
)

const banner = `
  __  __             _
 |  \/  | ___  _ __ | | _____ _   _
 | |\/| |/ _ \| '_ \| |/ / _ \ | | |
 | |  | | (_) | | | |   <  __/ |_| |
 |_|  |_|\___/|_| |_|_|\_\___|\__, |
                              |___/
`

func runRepl(_ *cobra.Command, _ []string) error {
	r := repl.New(banner, Version, "monkey>> ")
	return r.Start(os.Stdout)
}
