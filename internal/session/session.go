// Package session wraps one resume editor for concurrent callers such as HTTP handlers.
//
// Editor mutations are serialized by a mutex. Suggestion and export calls read their
// inputs under the lock, run the slow provider without it, and apply the result under
// the lock again. At most one call per operation and target is in flight; duplicates share
// its outcome. A failed call records an error in Status and leaves the document as it was.
package session

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/jonathan/resume-builder/internal/editor"
	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/suggest"
	"github.com/jonathan/resume-builder/internal/types"
)

// ErrNotFound is returned when a suggestion targets an entity that does not exist.
var ErrNotFound = errors.New("entity not found")

// ErrUnavailable is returned when the session has no provider for an operation.
var ErrUnavailable = errors.New("operation not configured")

// Targets of coalesced operations.
const (
	TargetSummary = "summary"
	TargetSkills  = "skills"
	TargetExport  = "export"
)

// Operations that can be in flight on a target. Only calls for the same operation and
// target share a result.
const (
	opSuggest = "suggest"
	opImprove = "improve"
	opExport  = "export"
)

// ExperienceDescriptionTarget names the description of one experience.
func ExperienceDescriptionTarget(id string) string {
	return "experience/" + id + "/description"
}

// EducationDescriptionTarget names the description of one education entry.
func EducationDescriptionTarget(id string) string {
	return "education/" + id + "/description"
}

// Deps are the collaborators a session uses.
type Deps struct {
	Provider      suggest.Provider
	Exporter      export.Exporter
	Renderer      *rendering.Renderer
	EditorOptions []editor.Option
}

// Status reports in-flight operations and the last collaborator failure.
type Status struct {
	Pending   []string `json:"pending"`
	Exporting bool     `json:"exporting"`
	LastError string   `json:"lastError,omitempty"`
}

// Session owns one editor.
type Session struct {
	ID string

	deps  Deps
	group singleflight.Group

	mu       sync.Mutex
	editor   *editor.Editor
	pending  map[string]int
	lastErr  string
	lastUsed time.Time
}

// New returns a session over doc. A nil doc starts from a default resume.
func New(id string, doc *types.Resume, deps Deps) *Session {
	return &Session{
		ID:       id,
		deps:     deps,
		editor:   editor.NewWithResume(doc, deps.EditorOptions...),
		pending:  make(map[string]int),
		lastUsed: time.Now(),
	}
}

// Update runs fn with exclusive access to the editor.
func (s *Session) Update(fn func(*editor.Editor) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastUsed = time.Now()
	return fn(s.editor)
}

// Snapshot returns a copy of the current document.
func (s *Session) Snapshot() *types.Resume {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editor.Snapshot()
}

// Status returns the current status. Pending targets are sorted.
func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := Status{Pending: make([]string, 0, len(s.pending)), LastError: s.lastErr}
	for target := range s.pending {
		st.Pending = append(st.Pending, target)
		if target == TargetExport {
			st.Exporting = true
		}
	}
	sort.Strings(st.Pending)
	return st
}

// LastUsed returns when the session was last read or modified.
func (s *Session) LastUsed() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastUsed
}

func (s *Session) read(fn func(*editor.Editor)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastUsed = time.Now()
	fn(s.editor)
}

// run executes call once per key, where key identifies the operation and its inputs
// on target. The leader's ctx governs the call. Callers that give up return early and
// the outcome is still applied for whoever remains.
func (s *Session) run(ctx context.Context, key, target string, call func(context.Context) (any, error)) (any, error) {
	ch := s.group.DoChan(key, func() (any, error) {
		s.mu.Lock()
		s.pending[target]++
		s.mu.Unlock()

		v, err := call(ctx)

		s.mu.Lock()
		if s.pending[target]--; s.pending[target] <= 0 {
			delete(s.pending, target)
		}
		if err != nil {
			s.lastErr = err.Error()
		} else {
			s.lastErr = ""
		}
		s.mu.Unlock()

		if err != nil {
			log.Printf("[SESSION] %s: %s failed: %v", s.ID, key, err)
		}
		return v, err
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		return res.Val, res.Err
	}
}

// apply runs fn under the lock unless ctx was abandoned, in which case the result is dropped.
func (s *Session) apply(ctx context.Context, fn func(*editor.Editor)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastUsed = time.Now()
	fn(s.editor)
	return nil
}

func (s *Session) provider() (suggest.Provider, error) {
	if s.deps.Provider == nil {
		return nil, fmt.Errorf("suggestions: %w", ErrUnavailable)
	}
	return s.deps.Provider, nil
}

// SuggestSummary asks for a summary based on the personal info and stores it.
func (s *Session) SuggestSummary(ctx context.Context) (string, error) {
	p, err := s.provider()
	if err != nil {
		return "", err
	}
	v, err := s.run(ctx, opSuggest+":"+TargetSummary, TargetSummary, func(ctx context.Context) (any, error) {
		var info types.PersonalInfo
		s.read(func(e *editor.Editor) { info = e.Snapshot().PersonalInfo })

		text, err := p.SuggestSummary(ctx, info)
		if err != nil {
			return nil, err
		}
		return text, s.apply(ctx, func(e *editor.Editor) { e.SetSummary(text) })
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// SuggestJobDescription asks for a description of the experience with id and stores it.
func (s *Session) SuggestJobDescription(ctx context.Context, id string) (string, error) {
	p, err := s.provider()
	if err != nil {
		return "", err
	}
	var (
		exp   types.Experience
		found bool
	)
	s.read(func(e *editor.Editor) { exp, found = e.Experience(id) })
	if !found {
		return "", fmt.Errorf("experience %q: %w", id, ErrNotFound)
	}

	target := ExperienceDescriptionTarget(id)
	v, err := s.run(ctx, opSuggest+":"+target, target, func(ctx context.Context) (any, error) {
		text, err := p.SuggestJobDescription(ctx, exp.JobTitle, exp.Company)
		if err != nil {
			return nil, err
		}
		return text, s.apply(ctx, func(e *editor.Editor) {
			e.UpdateExperience(id, types.ExperienceDescription, types.Text(text))
		})
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// SuggestEducationDescription asks for a description of the education entry with id and stores it.
func (s *Session) SuggestEducationDescription(ctx context.Context, id string) (string, error) {
	p, err := s.provider()
	if err != nil {
		return "", err
	}
	var (
		edu   types.Education
		found bool
	)
	s.read(func(e *editor.Editor) { edu, found = e.Education(id) })
	if !found {
		return "", fmt.Errorf("education %q: %w", id, ErrNotFound)
	}

	target := EducationDescriptionTarget(id)
	v, err := s.run(ctx, opSuggest+":"+target, target, func(ctx context.Context) (any, error) {
		text, err := p.SuggestEducationDescription(ctx, edu.Degree, edu.Institution)
		if err != nil {
			return nil, err
		}
		return text, s.apply(ctx, func(e *editor.Editor) {
			e.UpdateEducation(id, types.EducationDescription, types.Text(text))
		})
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// SuggestedSkills are skills appended by SuggestSkills.
type SuggestedSkills struct {
	IDs    []string                `json:"ids"`
	Skills []types.SkillSuggestion `json:"skills"`
}

// SuggestSkills asks for skills matching jobTitle and appends them. An empty jobTitle
// uses the title of the first experience.
func (s *Session) SuggestSkills(ctx context.Context, jobTitle string) (*SuggestedSkills, error) {
	p, err := s.provider()
	if err != nil {
		return nil, err
	}
	if jobTitle == "" {
		s.read(func(e *editor.Editor) {
			if exp := e.Snapshot().Experience; len(exp) > 0 {
				jobTitle = exp[0].JobTitle
			}
		})
	}

	key := opSuggest + ":" + TargetSkills + ":" + strings.ToLower(strings.TrimSpace(jobTitle))
	v, err := s.run(ctx, key, TargetSkills, func(ctx context.Context) (any, error) {
		skills, err := p.SuggestSkills(ctx, jobTitle)
		if err != nil {
			return nil, err
		}
		out := &SuggestedSkills{Skills: skills}
		return out, s.apply(ctx, func(e *editor.Editor) { out.IDs = e.AddSuggestedSkills(skills) })
	})
	if err != nil {
		return nil, err
	}
	return v.(*SuggestedSkills), nil
}

// ImproveText rewrites a passage in place. kind selects the summary, an experience
// description or an education description; id is ignored for the summary.
func (s *Session) ImproveText(ctx context.Context, kind suggest.TextKind, id string) (string, error) {
	p, err := s.provider()
	if err != nil {
		return "", err
	}

	var (
		text   string
		found  = true
		target string
		store  func(*editor.Editor, string)
	)
	switch kind {
	case suggest.KindSummary:
		target = TargetSummary
		s.read(func(e *editor.Editor) { text = e.Snapshot().Summary })
		store = func(e *editor.Editor, v string) { e.SetSummary(v) }
	case suggest.KindExperience:
		target = ExperienceDescriptionTarget(id)
		s.read(func(e *editor.Editor) {
			var exp types.Experience
			exp, found = e.Experience(id)
			text = exp.Description
		})
		store = func(e *editor.Editor, v string) { e.UpdateExperience(id, types.ExperienceDescription, types.Text(v)) }
	case suggest.KindEducation:
		target = EducationDescriptionTarget(id)
		s.read(func(e *editor.Editor) {
			var edu types.Education
			edu, found = e.Education(id)
			text = edu.Description
		})
		store = func(e *editor.Editor, v string) { e.UpdateEducation(id, types.EducationDescription, types.Text(v)) }
	default:
		return "", fmt.Errorf("improve text: unknown kind %q", kind)
	}
	if !found {
		return "", fmt.Errorf("%s %q: %w", kind, id, ErrNotFound)
	}

	v, err := s.run(ctx, opImprove+":"+target, target, func(ctx context.Context) (any, error) {
		improved, err := p.ImproveText(ctx, text, kind)
		if err != nil {
			return nil, err
		}
		return improved, s.apply(ctx, func(e *editor.Editor) { store(e, improved) })
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// Export renders the current document and converts it to a PDF.
func (s *Session) Export(ctx context.Context) (*export.Result, error) {
	if s.deps.Exporter == nil || s.deps.Renderer == nil {
		return nil, fmt.Errorf("export: %w", ErrUnavailable)
	}
	v, err := s.run(ctx, opExport, TargetExport, func(ctx context.Context) (any, error) {
		return export.ExportResume(ctx, s.deps.Exporter, s.deps.Renderer, s.Snapshot())
	})
	if err != nil {
		return nil, err
	}
	return v.(*export.Result), nil
}
