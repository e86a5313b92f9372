/*
File: gomonkey/cmd/gomonkey/main.go

Entry point for the gomonkey command-line tool: a thin wrapper around
cmd.Execute that owns the process exit code.
*/
package main

import (
	"fmt"
	"os"

	"github.com/monkey-lang/gomonkey/cmd/gomonkey/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
