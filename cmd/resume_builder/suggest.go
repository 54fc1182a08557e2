package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/session"
	"github.com/jonathan/resume-builder/internal/suggest"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/spf13/cobra"
)

type suggestOptions struct {
	root  *rootOptions
	write bool
}

func newSuggestCmd(root *rootOptions) *cobra.Command {
	opts := &suggestOptions{root: root}
	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Generate content suggestions for a resume JSON file",
	}
	cmd.PersistentFlags().BoolVarP(&opts.write, "write", "w", false, "Store the suggestion back into the resume file")

	cmd.AddCommand(
		newSuggestSummaryCmd(opts),
		newSuggestDescriptionCmd(opts),
		newSuggestSkillsCmd(opts),
		newSuggestImproveCmd(opts),
	)
	return cmd
}

// withSession loads path into a session wired to the configured provider, runs fn and,
// with --write, saves the updated document.
func (o *suggestOptions) withSession(ctx context.Context, path string, fn func(*session.Session) error) error {
	cfg, err := loadConfig(o.root)
	if err != nil {
		return err
	}

	var doc *types.Resume
	if path != "" {
		if doc, err = schemas.LoadResume(path); err != nil {
			return fmt.Errorf("invalid resume file: %w", err)
		}
	}

	provider, closeProvider, err := newProvider(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeProvider() //nolint:errcheck // best effort on exit

	sess := session.New("cli", doc, session.Deps{Provider: provider})
	if err := fn(sess); err != nil {
		return err
	}

	if !o.write || path == "" {
		return nil
	}
	data, err := json.MarshalIndent(sess.Snapshot(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode resume: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write resume: %w", err)
	}
	return nil
}

func newSuggestSummaryCmd(opts *suggestOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "summary <resume.json>",
		Short: "Suggest a professional summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withSession(cmd.Context(), args[0], func(s *session.Session) error {
				text, err := s.SuggestSummary(cmd.Context())
				if err != nil {
					return err
				}
				observability.NewPrinter(cmd.OutOrStdout()).PrintText("SUMMARY", text)
				return nil
			})
		},
	}
}

func newSuggestDescriptionCmd(opts *suggestOptions) *cobra.Command {
	var experienceID, educationID string
	cmd := &cobra.Command{
		Use:   "description <resume.json>",
		Short: "Suggest a description for one experience or education entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if (experienceID == "") == (educationID == "") {
				return fmt.Errorf("exactly one of --experience or --education is required")
			}
			return opts.withSession(cmd.Context(), args[0], func(s *session.Session) error {
				var (
					text string
					err  error
				)
				if experienceID != "" {
					text, err = s.SuggestJobDescription(cmd.Context(), experienceID)
				} else {
					text, err = s.SuggestEducationDescription(cmd.Context(), educationID)
				}
				if err != nil {
					return err
				}
				observability.NewPrinter(cmd.OutOrStdout()).PrintText("DESCRIPTION", text)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&experienceID, "experience", "", "Experience id")
	cmd.Flags().StringVar(&educationID, "education", "", "Education id")
	return cmd
}

func newSuggestSkillsCmd(opts *suggestOptions) *cobra.Command {
	var jobTitle string
	cmd := &cobra.Command{
		Use:   "skills [resume.json]",
		Short: "Suggest skills for a job title",
		Long:  "Suggests skills for --job-title, or for the first experience's title when a resume file is given.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			if path == "" && jobTitle == "" {
				return fmt.Errorf("either a resume file or --job-title is required")
			}
			return opts.withSession(cmd.Context(), path, func(s *session.Session) error {
				got, err := s.SuggestSkills(cmd.Context(), jobTitle)
				if err != nil {
					return err
				}
				observability.NewPrinter(cmd.OutOrStdout()).PrintSkillSuggestions(got.Skills)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&jobTitle, "job-title", "", "Job title to suggest skills for")
	return cmd
}

func newSuggestImproveCmd(opts *suggestOptions) *cobra.Command {
	var kind, id string
	cmd := &cobra.Command{
		Use:   "improve <resume.json>",
		Short: "Rewrite the summary or a description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := suggest.ParseTextKind(kind)
			if err != nil {
				return err
			}
			if k != suggest.KindSummary && id == "" {
				return fmt.Errorf("--id is required for %s", k)
			}
			return opts.withSession(cmd.Context(), args[0], func(s *session.Session) error {
				text, err := s.ImproveText(cmd.Context(), k, id)
				if err != nil {
					return err
				}
				observability.NewPrinter(cmd.OutOrStdout()).PrintText("IMPROVED TEXT", text)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&kind, "kind", string(suggest.KindSummary), "summary, experience or education")
	cmd.Flags().StringVar(&id, "id", "", "Entry id for experience or education")
	return cmd
}
