// Package main is the entry point for the fnforge CLI.
//
// fnforge builds Go serverless functions from a declarative project file:
// it generates entry-point wrappers for handlers that name an exported
// symbol, compiles one binary per function, and can run the project's test
// suite against locally started helper processes.
//
// Commands: build, test, doctor, predeploy, history, version.
package main

import (
	"fmt"
	"os"

	"github.com/fnforge/fnforge/cmd/fnforge/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
