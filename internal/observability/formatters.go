// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-builder/internal/types"
	"github.com/jonathan/resume-builder/internal/validation"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n-3]) + "..."
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

// PrintResumeSummary outputs a short overview of a resume document.
func (p *Printer) PrintResumeSummary(r *types.Resume) {
	if r == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:     %s\n", orDash(r.PersonalInfo.FullName)))
	sb.WriteString(fmt.Sprintf("Email:    %s\n", orDash(r.PersonalInfo.Email)))
	sb.WriteString(fmt.Sprintf("Location: %s\n", orDash(r.PersonalInfo.Location)))
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Experience:   %d\n", len(r.Experience)))
	count := min(len(r.Experience), maxItemsToShow)
	for i := 0; i < count; i++ {
		exp := r.Experience[i]
		sb.WriteString(fmt.Sprintf("  • %s @ %s\n", orDash(exp.JobTitle), orDash(exp.Company)))
	}
	if len(r.Experience) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(r.Experience)-maxItemsToShow))
	}

	sb.WriteString(fmt.Sprintf("Education:    %d\n", len(r.Education)))
	sb.WriteString(fmt.Sprintf("Skills:       %d\n", len(r.Skills)))
	sb.WriteString(fmt.Sprintf("Projects:     %d\n", len(r.Projects)))
	sb.WriteString(fmt.Sprintf("Certificates: %d", len(r.Certificates)))

	p.printBox("RESUME", sb.String())
}

// PrintViolations outputs any constraint violations found.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintViolations(result validation.Result) {
	if result.Valid() {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO VIOLATIONS FOUND")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d violations:\n\n", len(result.Violations)))

	for i, v := range result.Violations {
		sb.WriteString(fmt.Sprintf("⚠ %s\n", v.Field))
		sb.WriteString(fmt.Sprintf("  %s\n", truncate(v.Message, 50)))
		if i < len(result.Violations)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("CONSTRAINT VIOLATIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSkillSuggestions outputs suggested skills in order.
func (p *Printer) PrintSkillSuggestions(skills []types.SkillSuggestion) {
	if len(skills) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Suggested %d skills:\n\n", len(skills)))
	for i, s := range skills {
		sb.WriteString(fmt.Sprintf("• %-22s %-14s %s", truncate(s.Name, 22), s.Level, truncate(orDash(s.Category), 16)))
		if i < len(skills)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("SKILL SUGGESTIONS", sb.String())
}

// PrintText outputs a free-text suggestion wrapped to the box width.
func (p *Printer) PrintText(title, text string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	p.printBox(title, wrap(text, boxWidth-4))
}

// PrintExport outputs the result of an export.
func (p *Printer) PrintExport(path string, size int) {
	p.printBox("PDF EXPORTED", fmt.Sprintf("File: %s\nSize: %d bytes", path, size))
}

// wrap breaks text into lines of at most width runes on word boundaries.
func wrap(text string, width int) string {
	var lines []string
	var line strings.Builder
	for _, word := range strings.Fields(text) {
		if line.Len() > 0 && utf8.RuneCountInString(line.String())+1+utf8.RuneCountInString(word) > width {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}
