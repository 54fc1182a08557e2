// Package suggest provides filler text and skill suggestions for a resume being edited.
//
// Providers only compute suggestions. Applying a suggestion to the document is the
// caller's job, so a failed or abandoned call never leaves the resume half-updated.
package suggest

import (
	"context"
	"fmt"

	"github.com/jonathan/resume-builder/internal/types"
)

// TextKind is the section a passage of text belongs to.
type TextKind string

// Text kinds accepted by ImproveText.
const (
	KindSummary    TextKind = "summary"
	KindExperience TextKind = "experience"
	KindEducation  TextKind = "education"
)

// ParseTextKind validates a text kind name.
func ParseTextKind(s string) (TextKind, error) {
	switch k := TextKind(s); k {
	case KindSummary, KindExperience, KindEducation:
		return k, nil
	}
	return "", fmt.Errorf("unknown text kind %q", s)
}

// Provider returns suggestions for parts of a resume. Implementations may be slow and
// must honour ctx cancellation.
type Provider interface {
	SuggestSummary(ctx context.Context, info types.PersonalInfo) (string, error)
	SuggestJobDescription(ctx context.Context, jobTitle, company string) (string, error)
	SuggestEducationDescription(ctx context.Context, degree, institution string) (string, error)
	SuggestSkills(ctx context.Context, jobTitle string) ([]types.SkillSuggestion, error)
	ImproveText(ctx context.Context, text string, kind TextKind) (string, error)
}

// Error reports a failed suggestion.
type Error struct {
	Operation string
	Message   string
	Cause     error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s suggestion failed: %s: %v", e.Operation, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s suggestion failed: %s", e.Operation, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
