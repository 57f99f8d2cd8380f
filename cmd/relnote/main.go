// Package main is the entry point for the relnote CLI.
package main

import (
	"fmt"
	"os"
	"slices"

	"github.com/scalar-labs/relnote/internal/app"
	"github.com/scalar-labs/relnote/internal/cli"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	container, err := app.New(cwd)
	if err != nil {
		// A broken config file must not block help, version or the template.
		if !canRunWithoutContainer(args) {
			return fmt.Errorf("failed to initialize: %w", err)
		}
	}

	rootCmd := cli.NewRootCommand(container, version)
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func canRunWithoutContainer(args []string) bool {
	if len(args) >= 2 && args[0] == "config" && args[1] == "template" {
		return true
	}
	if len(args) > 0 && args[0] == "help" {
		return true
	}
	return slices.ContainsFunc(args, func(arg string) bool {
		return arg == "--version" || arg == "-v" || arg == "--help" || arg == "-h"
	})
}
