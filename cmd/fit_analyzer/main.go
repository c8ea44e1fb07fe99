// Package main provides the entry point for the fit-analyzer CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fit_analyzer",
	Short: "Job-fit analysis with deterministic post-processing",
	Long:  "fit_analyzer assesses how well a candidate's history matches a target role, turning a generative assessment into a consistent, auditable, invariant-preserving decision.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
