package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/validation"
	"github.com/spf13/cobra"
)

func newExportCmd(root *rootOptions) *cobra.Command {
	var (
		output string
		chrome string
		strict bool
	)
	cmd := &cobra.Command{
		Use:   "export <resume.json>",
		Short: "Export a resume JSON file as a one-page A4 PDF",
		Long:  "Renders the resume, rasterizes it in headless Chrome and writes a single-page A4 PDF named after the full name.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(root)
			if err != nil {
				return err
			}
			if chrome != "" {
				cfg.ChromePath = chrome
			}

			doc, err := schemas.LoadResume(args[0])
			if err != nil {
				return fmt.Errorf("invalid resume file: %w", err)
			}

			printer := observability.NewPrinter(cmd.OutOrStdout())
			if result := validation.Validate(doc); !result.Valid() {
				if strict {
					printer.PrintViolations(result)
					return fmt.Errorf("validation failed: %d violations", len(result.Violations))
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Warning: resume has %d validation issues\n", len(result.Violations))
			}

			renderer, err := rendering.Default()
			if err != nil {
				return fmt.Errorf("failed to load templates: %w", err)
			}

			res, err := export.ExportResume(cmd.Context(), newExporter(cfg), renderer, doc)
			if err != nil {
				return fmt.Errorf("export failed: %w", err)
			}

			path := output
			if path == "" {
				path = res.Filename
			} else if info, err := os.Stat(path); err == nil && info.IsDir() {
				path = filepath.Join(path, res.Filename)
			}
			if err := os.WriteFile(path, res.PDF, 0o644); err != nil {
				return fmt.Errorf("failed to write PDF: %w", err)
			}

			printer.PrintExport(path, len(res.PDF))
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "out", "o", "", "Output file or directory (default: <full name>.pdf)")
	cmd.Flags().StringVar(&chrome, "chrome", "", "Chrome executable (default: CHROME_PATH or auto-detect)")
	cmd.Flags().BoolVar(&strict, "strict", false, "Refuse to export a resume with validation issues")
	return cmd
}
