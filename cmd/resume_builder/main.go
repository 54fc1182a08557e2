// Package main provides the resume_builder CLI: the HTTP editor server plus offline
// validation, export and suggestion commands for resume JSON files.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "resume_builder",
		Short:         "Resume Builder editor server and tools",
		Long:          "Resume Builder edits a structured resume, validates it, suggests content and exports a one-page A4 PDF.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to JSON config file")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Print detailed debug information")

	cmd.AddCommand(
		newServeCmd(opts),
		newValidateCmd(opts),
		newExportCmd(opts),
		newSuggestCmd(opts),
	)
	return cmd
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
