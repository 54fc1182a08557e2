// Package types provides type definitions for the resume document edited and rendered by the resume-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Resume is the root document. Sequence order is display order.
type Resume struct {
	PersonalInfo PersonalInfo  `json:"personalInfo"`
	Summary      string        `json:"summary" validate:"required"`
	Experience   []Experience  `json:"experience" validate:"dive"`
	Education    []Education   `json:"education" validate:"dive"`
	Skills       []Skill       `json:"skills" validate:"dive"`
	Projects     []Project     `json:"projects" validate:"dive"`
	Certificates []Certificate `json:"certificates" validate:"dive"`
}

// PersonalInfo holds the contact header of a resume.
// Website, LinkedIn and GitHub are optional and never validated.
type PersonalInfo struct {
	FullName string `json:"fullName" validate:"required"`
	Email    string `json:"email" validate:"required,email,email_domain"`
	Phone    string `json:"phone" validate:"required"`
	Location string `json:"location" validate:"required"`
	Website  string `json:"website,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
}

// Experience represents a single job entry.
// When IsCurrentJob is set, EndDate is displayed as "Present" but kept as entered.
type Experience struct {
	ID           string `json:"id"`
	JobTitle     string `json:"jobTitle" validate:"required"`
	Company      string `json:"company" validate:"required"`
	Location     string `json:"location" validate:"required"`
	StartDate    string `json:"startDate" validate:"required"`
	EndDate      string `json:"endDate,omitempty"`
	IsCurrentJob bool   `json:"isCurrentJob"`
	Description  string `json:"description" validate:"required"`
}

// Education represents a degree or course of study.
type Education struct {
	ID             string `json:"id"`
	Degree         string `json:"degree" validate:"required"`
	Institution    string `json:"institution" validate:"required"`
	Location       string `json:"location" validate:"required"`
	StartDate      string `json:"startDate" validate:"required"`
	EndDate        string `json:"endDate,omitempty"`
	IsCurrentStudy bool   `json:"isCurrentStudy"`
	GPA            string `json:"gpa,omitempty"`
	Description    string `json:"description,omitempty"`
}

// Skill is a named skill grouped by Category in the preview.
type Skill struct {
	ID       string     `json:"id"`
	Name     string     `json:"name" validate:"required"`
	Category string     `json:"category" validate:"required"`
	Level    SkillLevel `json:"level" validate:"oneof=Beginner Intermediate Advanced Expert"`
}

// SkillSuggestion is a Skill that has not been added to a resume yet, so it has no ID.
type SkillSuggestion struct {
	Name     string     `json:"name"`
	Level    SkillLevel `json:"level"`
	Category string     `json:"category"`
}

// Project represents a personal or professional project.
type Project struct {
	ID           string `json:"id"`
	Name         string `json:"name" validate:"required"`
	Description  string `json:"description" validate:"required"`
	Technologies string `json:"technologies" validate:"required"`
	URL          string `json:"url,omitempty"`
	GitHub       string `json:"github,omitempty"`
	StartDate    string `json:"startDate,omitempty"`
	EndDate      string `json:"endDate,omitempty"`
}

// Certificate represents a professional certification.
type Certificate struct {
	ID             string `json:"id"`
	Name           string `json:"name" validate:"required"`
	Issuer         string `json:"issuer" validate:"required"`
	IssueDate      string `json:"issueDate" validate:"required"`
	ExpirationDate string `json:"expirationDate,omitempty"`
	CredentialID   string `json:"credentialId,omitempty"`
	URL            string `json:"url,omitempty"`
}

// EntityID returns the experience ID.
func (e Experience) EntityID() string { return e.ID }

// EntityID returns the education ID.
func (e Education) EntityID() string { return e.ID }

// EntityID returns the skill ID.
func (s Skill) EntityID() string { return s.ID }

// EntityID returns the project ID.
func (p Project) EntityID() string { return p.ID }

// EntityID returns the certificate ID.
func (c Certificate) EntityID() string { return c.ID }

// Normalize replaces missing sequences with empty ones and gives skills without a
// level the default one.
func (r *Resume) Normalize() {
	if r.Experience == nil {
		r.Experience = []Experience{}
	}
	if r.Education == nil {
		r.Education = []Education{}
	}
	if r.Skills == nil {
		r.Skills = []Skill{}
	}
	if r.Projects == nil {
		r.Projects = []Project{}
	}
	if r.Certificates == nil {
		r.Certificates = []Certificate{}
	}
	for i := range r.Skills {
		if r.Skills[i].Level == "" {
			r.Skills[i].Level = LevelIntermediate
		}
	}
}

// Clone returns a deep copy of the resume. All entity types are plain values,
// so copying the slices is sufficient.
func (r *Resume) Clone() *Resume {
	if r == nil {
		return nil
	}
	out := *r
	out.Experience = cloneSlice(r.Experience)
	out.Education = cloneSlice(r.Education)
	out.Skills = cloneSlice(r.Skills)
	out.Projects = cloneSlice(r.Projects)
	out.Certificates = cloneSlice(r.Certificates)
	return &out
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}

// SkillGroup is a category and its skills in first-seen order.
type SkillGroup struct {
	Category string
	Skills   []Skill
}

// OtherSkillCategory holds skills that have no category of their own.
const OtherSkillCategory = "Other"

// GroupSkills groups skills by category, preserving the order in which each
// category first appears. Skills without a category are grouped under OtherSkillCategory.
func GroupSkills(skills []Skill) []SkillGroup {
	var groups []SkillGroup
	index := make(map[string]int)
	for _, s := range skills {
		category := s.Category
		if category == "" {
			category = OtherSkillCategory
		}
		i, ok := index[category]
		if !ok {
			i = len(groups)
			index[category] = i
			groups = append(groups, SkillGroup{Category: category})
		}
		groups[i].Skills = append(groups[i].Skills, s)
	}
	return groups
}
