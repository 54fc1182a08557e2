// Package editor owns a single in-memory resume and mediates every structural change to it.
//
// All operations are synchronous and total: lookups by an unknown id are no-ops and a value
// of the wrong kind for a field leaves the entity untouched. Validation is not performed at
// write time; run validation.Validate on a Snapshot when needed.
package editor

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/jonathan/resume-builder/internal/types"
)

// maxRegenerate bounds how many fresh ids are drawn before falling back to a suffix.
const maxRegenerate = 3

// IDGenerator returns a new candidate id for an entity.
type IDGenerator func() string

// Option configures an Editor.
type Option func(*Editor)

// WithIDGenerator replaces the default UUIDv7 generator.
func WithIDGenerator(gen IDGenerator) Option {
	return func(e *Editor) {
		if gen != nil {
			e.newID = gen
		}
	}
}

// Editor holds one resume document. It is not safe for concurrent use.
type Editor struct {
	doc   *types.Resume
	newID IDGenerator
}

// New returns an editor over a default (empty) resume.
func New(opts ...Option) *Editor {
	return NewWithResume(types.DefaultResume(), opts...)
}

// NewWithResume returns an editor that takes ownership of doc.
// A nil doc is replaced by a default resume.
func NewWithResume(doc *types.Resume, opts ...Option) *Editor {
	if doc == nil {
		doc = types.DefaultResume()
	}
	doc.Normalize()
	e := &Editor{doc: doc, newID: defaultID}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func defaultID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Snapshot returns a deep copy of the document for readers.
func (e *Editor) Snapshot() *types.Resume {
	return e.doc.Clone()
}

// SetPersonalInfoField replaces one personal info field. Unknown fields are ignored.
func (e *Editor) SetPersonalInfoField(f types.PersonalInfoField, value string) {
	e.doc.PersonalInfo.Set(f, value)
}

// SetSummary replaces the professional summary.
func (e *Editor) SetSummary(value string) {
	e.doc.Summary = value
}

type entity interface {
	EntityID() string
}

func indexOf[T entity](items []T, id string) int {
	return slices.IndexFunc(items, func(item T) bool { return item.EntityID() == id })
}

func removeByID[T entity](items []T, id string) ([]T, bool) {
	i := indexOf(items, id)
	if i < 0 {
		return items, false
	}
	return slices.Delete(items, i, i+1), true
}

func find[T entity](items []T, id string) (T, bool) {
	if i := indexOf(items, id); i >= 0 {
		return items[i], true
	}
	var zero T
	return zero, false
}

// uniqueID draws ids until one is unused among siblings, then falls back to suffixing.
func uniqueID[T entity](gen IDGenerator, items []T) string {
	taken := func(id string) bool { return id == "" || indexOf(items, id) >= 0 }

	id := gen()
	for i := 0; i < maxRegenerate && taken(id); i++ {
		id = gen()
	}
	if !taken(id) {
		return id
	}
	base := id
	if base == "" {
		base = "item"
	}
	for n := 2; ; n++ {
		candidate := fmt.Sprintf("%s-%d", base, n)
		if !taken(candidate) {
			return candidate
		}
	}
}

// AddExperience appends a default experience and returns its id.
func (e *Editor) AddExperience() string {
	item := types.DefaultExperience()
	item.ID = uniqueID(e.newID, e.doc.Experience)
	e.doc.Experience = append(e.doc.Experience, item)
	return item.ID
}

// UpdateExperience sets one field of the experience with the given id.
// It reports whether an experience matched.
func (e *Editor) UpdateExperience(id string, f types.ExperienceField, v types.Value) bool {
	i := indexOf(e.doc.Experience, id)
	if i < 0 {
		return false
	}
	e.doc.Experience[i].Set(f, v)
	return true
}

// RemoveExperience deletes the first experience with the given id.
func (e *Editor) RemoveExperience(id string) bool {
	var ok bool
	e.doc.Experience, ok = removeByID(e.doc.Experience, id)
	return ok
}

// Experience returns a copy of the experience with the given id.
func (e *Editor) Experience(id string) (types.Experience, bool) {
	return find(e.doc.Experience, id)
}

// AddEducation appends a default education entry and returns its id.
func (e *Editor) AddEducation() string {
	item := types.DefaultEducation()
	item.ID = uniqueID(e.newID, e.doc.Education)
	e.doc.Education = append(e.doc.Education, item)
	return item.ID
}

// UpdateEducation sets one field of the education entry with the given id.
func (e *Editor) UpdateEducation(id string, f types.EducationField, v types.Value) bool {
	i := indexOf(e.doc.Education, id)
	if i < 0 {
		return false
	}
	e.doc.Education[i].Set(f, v)
	return true
}

// RemoveEducation deletes the first education entry with the given id.
func (e *Editor) RemoveEducation(id string) bool {
	var ok bool
	e.doc.Education, ok = removeByID(e.doc.Education, id)
	return ok
}

// Education returns a copy of the education entry with the given id.
func (e *Editor) Education(id string) (types.Education, bool) {
	return find(e.doc.Education, id)
}

// AddSkill appends a default skill and returns its id.
func (e *Editor) AddSkill() string {
	item := types.DefaultSkill()
	item.ID = uniqueID(e.newID, e.doc.Skills)
	e.doc.Skills = append(e.doc.Skills, item)
	return item.ID
}

// UpdateSkill sets one field of the skill with the given id.
func (e *Editor) UpdateSkill(id string, f types.SkillField, v types.Value) bool {
	i := indexOf(e.doc.Skills, id)
	if i < 0 {
		return false
	}
	e.doc.Skills[i].Set(f, v)
	return true
}

// RemoveSkill deletes the first skill with the given id.
func (e *Editor) RemoveSkill(id string) bool {
	var ok bool
	e.doc.Skills, ok = removeByID(e.doc.Skills, id)
	return ok
}

// AddSuggestedSkills appends one skill per suggestion and returns the new ids in order.
// A suggestion with an unknown level gets the default level.
func (e *Editor) AddSuggestedSkills(suggestions []types.SkillSuggestion) []string {
	ids := make([]string, 0, len(suggestions))
	for _, s := range suggestions {
		item := types.DefaultSkill()
		item.ID = uniqueID(e.newID, e.doc.Skills)
		item.Name = s.Name
		item.Category = s.Category
		if s.Level.Valid() {
			item.Level = s.Level
		}
		e.doc.Skills = append(e.doc.Skills, item)
		ids = append(ids, item.ID)
	}
	return ids
}

// AddProject appends a default project and returns its id.
func (e *Editor) AddProject() string {
	item := types.DefaultProject()
	item.ID = uniqueID(e.newID, e.doc.Projects)
	e.doc.Projects = append(e.doc.Projects, item)
	return item.ID
}

// UpdateProject sets one field of the project with the given id.
func (e *Editor) UpdateProject(id string, f types.ProjectField, v types.Value) bool {
	i := indexOf(e.doc.Projects, id)
	if i < 0 {
		return false
	}
	e.doc.Projects[i].Set(f, v)
	return true
}

// RemoveProject deletes the first project with the given id.
func (e *Editor) RemoveProject(id string) bool {
	var ok bool
	e.doc.Projects, ok = removeByID(e.doc.Projects, id)
	return ok
}

// AddCertificate appends a default certificate and returns its id.
func (e *Editor) AddCertificate() string {
	item := types.DefaultCertificate()
	item.ID = uniqueID(e.newID, e.doc.Certificates)
	e.doc.Certificates = append(e.doc.Certificates, item)
	return item.ID
}

// UpdateCertificate sets one field of the certificate with the given id.
func (e *Editor) UpdateCertificate(id string, f types.CertificateField, v types.Value) bool {
	i := indexOf(e.doc.Certificates, id)
	if i < 0 {
		return false
	}
	e.doc.Certificates[i].Set(f, v)
	return true
}

// RemoveCertificate deletes the first certificate with the given id.
func (e *Editor) RemoveCertificate(id string) bool {
	var ok bool
	e.doc.Certificates, ok = removeByID(e.doc.Certificates, id)
	return ok
}
