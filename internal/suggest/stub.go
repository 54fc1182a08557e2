package suggest

import (
	"context"
	"math/rand/v2"
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/jonathan/resume-builder/internal/types"
)

// Picker returns an index in [0, n). n is always positive.
type Picker func(n int) int

// Delays is the simulated latency of each Stub operation.
type Delays struct {
	Summary              time.Duration
	JobDescription       time.Duration
	EducationDescription time.Duration
	Skills               time.Duration
	ImproveText          time.Duration
}

// DefaultDelays mimic a remote service.
var DefaultDelays = Delays{
	Summary:              1500 * time.Millisecond,
	JobDescription:       1200 * time.Millisecond,
	EducationDescription: 800 * time.Millisecond,
	Skills:               1000 * time.Millisecond,
	ImproveText:          1000 * time.Millisecond,
}

// StubOption configures a Stub.
type StubOption func(*Stub)

// WithPicker replaces the pseudo-random choice of pool entries.
func WithPicker(p Picker) StubOption {
	return func(s *Stub) {
		if p != nil {
			s.pick = p
		}
	}
}

// WithDelays sets the simulated latency per operation.
func WithDelays(d Delays) StubOption {
	return func(s *Stub) { s.delays = d }
}

// WithoutDelay disables simulated latency.
func WithoutDelay() StubOption {
	return WithDelays(Delays{})
}

// Stub is a Provider backed by fixed pools of canned text, keyed loosely on its input.
type Stub struct {
	pick   Picker
	delays Delays
}

var _ Provider = (*Stub)(nil)

// NewStub returns a Stub using DefaultDelays and a pseudo-random picker.
func NewStub(opts ...StubOption) *Stub {
	s := &Stub{pick: rand.IntN, delays: DefaultDelays}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Stub) choose(pool []string) string {
	return pool[s.pick(len(pool))]
}

// wait sleeps for d or until ctx is done.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func canceled(op string, err error) error {
	return &Error{Operation: op, Message: "request abandoned", Cause: err}
}

// SuggestSummary returns a canned professional summary.
func (s *Stub) SuggestSummary(ctx context.Context, info types.PersonalInfo) (string, error) {
	if err := wait(ctx, s.delays.Summary); err != nil {
		return "", canceled("summary", err)
	}
	return s.choose(summaryPool(info)), nil
}

// SuggestJobDescription returns a canned job description. The title and company are not used.
func (s *Stub) SuggestJobDescription(ctx context.Context, _, _ string) (string, error) {
	if err := wait(ctx, s.delays.JobDescription); err != nil {
		return "", canceled("job description", err)
	}
	return s.choose(jobDescriptionPool), nil
}

// SuggestEducationDescription returns a canned description tuned by keywords in the degree.
func (s *Stub) SuggestEducationDescription(ctx context.Context, degree, _ string) (string, error) {
	if err := wait(ctx, s.delays.EducationDescription); err != nil {
		return "", canceled("education description", err)
	}
	return s.choose(educationDescriptionPool(degree)), nil
}

// SuggestSkills returns the skill pool matching the job title.
func (s *Stub) SuggestSkills(ctx context.Context, jobTitle string) ([]types.SkillSuggestion, error) {
	if err := wait(ctx, s.delays.Skills); err != nil {
		return nil, canceled("skills", err)
	}
	pool := skillsFor(jobTitle)
	out := make([]types.SkillSuggestion, len(pool))
	copy(out, pool)
	return out, nil
}

var (
	leadingVerb = regexp.MustCompile(`^(Spearheaded|Implemented|Developed|Led|Optimized|Enhanced|Delivered|Managed|Created|Built)`)
	hasMetric   = regexp.MustCompile(`\d+(%|x|\+)`)
)

// ImproveText rewrites experience text to open with an action verb and close with a
// metric when it has none. Other kinds and blank text are returned unchanged.
func (s *Stub) ImproveText(ctx context.Context, text string, kind TextKind) (string, error) {
	if err := wait(ctx, s.delays.ImproveText); err != nil {
		return "", canceled("improve text", err)
	}
	if strings.TrimSpace(text) == "" || kind != KindExperience {
		return text, nil
	}

	improved := text
	if !leadingVerb.MatchString(improved) {
		improved = s.choose(actionVerbs) + " " + lowerFirst(improved)
	}
	if !hasMetric.MatchString(improved) {
		improved += ", resulting in " + s.choose(improvementMetrics) + " improvement in efficiency"
	}
	return improved, nil
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}
