package rendering

import (
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// PlaceholderName is shown in the preview until a full name is entered.
const PlaceholderName = "Your Name"

// ContentID is the id of the element that holds the rendered resume.
const ContentID = "resume-content"

// ResumeView is the preview's read-only projection of a resume.
type ResumeView struct {
	Name         string
	Contact      []ContactItem
	Summary      string
	Experience   []ExperienceView
	Education    []EducationView
	SkillGroups  []types.SkillGroup
	Projects     []ProjectView
	Certificates []types.Certificate
}

// ContactItem is one entry of the contact line.
type ContactItem struct {
	Kind  string
	Label string
}

// ExperienceView is an experience with its date range resolved.
type ExperienceView struct {
	types.Experience
	Dates string
}

// EducationView is an education entry with its date range resolved.
type EducationView struct {
	types.Education
	Dates string
}

// ProjectView is a project with its date range resolved.
type ProjectView struct {
	types.Project
	Dates string
}

// DateRange formats a start and end date. Current entries end in "Present" whatever
// their stored end date is.
func DateRange(start, end string, current bool) string {
	if current {
		end = "Present"
	}
	switch {
	case start == "" && end == "":
		return ""
	case end == "":
		return start
	case start == "":
		return end
	}
	return start + " - " + end
}

// NewResumeView projects r for display. Blank optional contact fields are omitted.
func NewResumeView(r *types.Resume) ResumeView {
	if r == nil {
		r = types.DefaultResume()
	}

	v := ResumeView{
		Name:         strings.TrimSpace(r.PersonalInfo.FullName),
		Summary:      r.Summary,
		SkillGroups:  types.GroupSkills(r.Skills),
		Certificates: r.Certificates,
	}
	if v.Name == "" {
		v.Name = PlaceholderName
	}

	p := r.PersonalInfo
	for _, c := range []ContactItem{
		{Kind: "email", Label: p.Email},
		{Kind: "phone", Label: p.Phone},
		{Kind: "location", Label: p.Location},
		{Kind: "website", Label: p.Website},
		{Kind: "linkedin", Label: labelIfSet(p.LinkedIn, "LinkedIn")},
		{Kind: "github", Label: labelIfSet(p.GitHub, "GitHub")},
	} {
		if strings.TrimSpace(c.Label) != "" {
			v.Contact = append(v.Contact, c)
		}
	}

	for _, e := range r.Experience {
		v.Experience = append(v.Experience, ExperienceView{
			Experience: e,
			Dates:      DateRange(e.StartDate, e.EndDate, e.IsCurrentJob),
		})
	}
	for _, e := range r.Education {
		v.Education = append(v.Education, EducationView{
			Education: e,
			Dates:     DateRange(e.StartDate, e.EndDate, e.IsCurrentStudy),
		})
	}
	for _, p := range r.Projects {
		v.Projects = append(v.Projects, ProjectView{
			Project: p,
			Dates:   DateRange(p.StartDate, p.EndDate, false),
		})
	}
	return v
}

func labelIfSet(value, label string) string {
	if strings.TrimSpace(value) == "" {
		return ""
	}
	return label
}
