package main

import (
	"fmt"
	"runtime"

	"goidioms/internal/goversion"

	"github.com/spf13/cobra"
)

// Populated by the linker on release builds:
//
//	go build -ldflags "-X main.version=v1.2.3 -X main.commit=abc1234 -X main.date=2026-08-23"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// versionCmd prints build and toolchain information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version and toolchain information",
	RunE:  printVersion,
}

// printVersion is the handler for "goidioms version".
func printVersion(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "goidioms %s (commit %s, built %s)\n", version, commit, date)
	fmt.Fprintf(out, "toolchain %s\n", runtime.Version())
	if v, ok := goversion.Current(); ok {
		fmt.Fprintf(out, "release   %s\n", v)
	}
	return nil
}
