// Package main provides the advent CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "advent",
		Short: "Solutions for Advent of Code 2024",
		Long: `Advent runs the daily Advent of Code 2024 exercises over local puzzle
input files and prints the answer for the requested part.`,
		Version: version,
	}

	rootCmd.AddCommand(
		newDay01Cmd(),
		newHelloCmd(),
		newFetchCmd(),
		newRunsCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
