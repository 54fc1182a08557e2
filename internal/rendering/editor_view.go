package rendering

import (
	"fmt"

	"github.com/jonathan/resume-builder/internal/types"
	"github.com/jonathan/resume-builder/internal/validation"
)

// EditorView is the data behind the editor page.
type EditorView struct {
	Status   string
	Sections []FormSection
	Preview  ResumeView
}

// FormSection is one fieldset of the editor form.
type FormSection struct {
	Key        string
	Title      string
	Repeatable bool
	Entries    []FormEntry
}

// FormEntry is one entity (or the single personal info block) in a section.
type FormEntry struct {
	ID     string
	Fields []FormField
}

// FormField is one input. Kind is "text", "textarea", "checkbox" or "select".
type FormField struct {
	Name    string
	Label   string
	Kind    string
	Value   string
	Checked bool
	Options []string
	Error   string
}

// NewEditorView builds the editor page for r, attaching the messages of result to
// the fields they belong to.
func NewEditorView(r *types.Resume, result validation.Result, status string) EditorView {
	if r == nil {
		r = types.DefaultResume()
	}
	msgs := result.Messages()
	field := func(path, label, kind, value string) FormField {
		return FormField{Name: path, Label: label, Kind: kind, Value: value, Error: msgs[path]}
	}
	check := func(path, label string, checked bool) FormField {
		return FormField{Name: path, Label: label, Kind: "checkbox", Checked: checked}
	}

	p := r.PersonalInfo
	sections := []FormSection{
		{
			Key:   "personalInfo",
			Title: "Personal Information",
			Entries: []FormEntry{{Fields: []FormField{
				field("personalInfo.fullName", "Full Name", "text", p.FullName),
				field("personalInfo.email", "Email", "text", p.Email),
				field("personalInfo.phone", "Phone", "text", p.Phone),
				field("personalInfo.location", "Location", "text", p.Location),
				field("personalInfo.website", "Website", "text", p.Website),
				field("personalInfo.linkedin", "LinkedIn", "text", p.LinkedIn),
				field("personalInfo.github", "GitHub", "text", p.GitHub),
			}}},
		},
		{
			Key:     "summary",
			Title:   "Professional Summary",
			Entries: []FormEntry{{Fields: []FormField{field("summary", "Summary", "textarea", r.Summary)}}},
		},
	}

	experience := FormSection{Key: string(types.CollectionExperience), Title: "Experience", Repeatable: true}
	for i, e := range r.Experience {
		at := indexed("experience", i)
		experience.Entries = append(experience.Entries, FormEntry{ID: e.ID, Fields: []FormField{
			field(at("jobTitle"), "Job Title", "text", e.JobTitle),
			field(at("company"), "Company", "text", e.Company),
			field(at("location"), "Location", "text", e.Location),
			field(at("startDate"), "Start Date", "text", e.StartDate),
			field(at("endDate"), "End Date", "text", e.EndDate),
			check(at("isCurrentJob"), "I currently work here", e.IsCurrentJob),
			field(at("description"), "Description", "textarea", e.Description),
		}})
	}

	education := FormSection{Key: string(types.CollectionEducation), Title: "Education", Repeatable: true}
	for i, e := range r.Education {
		at := indexed("education", i)
		education.Entries = append(education.Entries, FormEntry{ID: e.ID, Fields: []FormField{
			field(at("degree"), "Degree", "text", e.Degree),
			field(at("institution"), "Institution", "text", e.Institution),
			field(at("location"), "Location", "text", e.Location),
			field(at("startDate"), "Start Date", "text", e.StartDate),
			field(at("endDate"), "End Date", "text", e.EndDate),
			check(at("isCurrentStudy"), "I currently study here", e.IsCurrentStudy),
			field(at("gpa"), "GPA", "text", e.GPA),
			field(at("description"), "Description", "textarea", e.Description),
		}})
	}

	levels := make([]string, 0, len(types.SkillLevels))
	for _, l := range types.SkillLevels {
		levels = append(levels, string(l))
	}
	skills := FormSection{Key: string(types.CollectionSkills), Title: "Skills", Repeatable: true}
	for i, s := range r.Skills {
		at := indexed("skills", i)
		level := field(at("level"), "Level", "select", string(s.Level))
		level.Options = levels
		skills.Entries = append(skills.Entries, FormEntry{ID: s.ID, Fields: []FormField{
			field(at("name"), "Skill", "text", s.Name),
			field(at("category"), "Category", "text", s.Category),
			level,
		}})
	}

	projects := FormSection{Key: string(types.CollectionProjects), Title: "Projects", Repeatable: true}
	for i, pr := range r.Projects {
		at := indexed("projects", i)
		projects.Entries = append(projects.Entries, FormEntry{ID: pr.ID, Fields: []FormField{
			field(at("name"), "Project Name", "text", pr.Name),
			field(at("description"), "Description", "textarea", pr.Description),
			field(at("technologies"), "Technologies Used", "text", pr.Technologies),
			field(at("url"), "URL", "text", pr.URL),
			field(at("github"), "GitHub", "text", pr.GitHub),
			field(at("startDate"), "Start Date", "text", pr.StartDate),
			field(at("endDate"), "End Date", "text", pr.EndDate),
		}})
	}

	certificates := FormSection{Key: string(types.CollectionCertificates), Title: "Certifications", Repeatable: true}
	for i, c := range r.Certificates {
		at := indexed("certificates", i)
		certificates.Entries = append(certificates.Entries, FormEntry{ID: c.ID, Fields: []FormField{
			field(at("name"), "Certificate Name", "text", c.Name),
			field(at("issuer"), "Issuer", "text", c.Issuer),
			field(at("issueDate"), "Issue Date", "text", c.IssueDate),
			field(at("expirationDate"), "Expiration Date", "text", c.ExpirationDate),
			field(at("credentialId"), "Credential ID", "text", c.CredentialID),
			field(at("url"), "URL", "text", c.URL),
		}})
	}

	sections = append(sections, experience, education, skills, projects, certificates)
	return EditorView{Status: status, Sections: sections, Preview: NewResumeView(r)}
}

// indexed returns a builder for validation paths of the i-th element of a collection.
func indexed(collection string, i int) func(string) string {
	return func(field string) string {
		return fmt.Sprintf("%s[%d].%s", collection, i, field)
	}
}
