package main

import (
	"encoding/json"
	"fmt"

	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/validation"
	"github.com/spf13/cobra"
)

func newValidateCmd(root *rootOptions) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "validate <resume.json>",
		Short: "Validate a resume JSON file",
		Long:  "Checks the file against the resume schema, then reports every field constraint that fails.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			doc, err := schemas.LoadResume(args[0])
			if err != nil {
				return fmt.Errorf("invalid resume file: %w", err)
			}

			result := validation.Validate(doc)
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(result); err != nil {
					return fmt.Errorf("failed to encode result: %w", err)
				}
			} else {
				printer := observability.NewPrinter(out)
				if root.verbose {
					printer.PrintResumeSummary(doc)
				}
				printer.PrintViolations(result)
			}

			if !result.Valid() {
				return fmt.Errorf("validation failed: %d violations", len(result.Violations))
			}
			if !asJSON {
				fmt.Fprintln(out, "Validation passed")
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")
	return cmd
}
