package editor

import (
	"fmt"

	"github.com/jonathan/resume-builder/internal/types"
)

// Add appends a default entity to collection c and returns its id.
func (e *Editor) Add(c types.Collection) (string, error) {
	switch c {
	case types.CollectionExperience:
		return e.AddExperience(), nil
	case types.CollectionEducation:
		return e.AddEducation(), nil
	case types.CollectionSkills:
		return e.AddSkill(), nil
	case types.CollectionProjects:
		return e.AddProject(), nil
	case types.CollectionCertificates:
		return e.AddCertificate(), nil
	}
	return "", fmt.Errorf("add: %w", &types.UnknownFieldError{Entity: "resume", Field: string(c)})
}

// Apply parses field and raw for collection c and updates the entity with the given id.
// Field names and values are checked before the lookup, so a bad request is reported even
// when the id is unknown. It reports whether an entity matched.
func (e *Editor) Apply(c types.Collection, id, field string, raw any) (bool, error) {
	switch c {
	case types.CollectionExperience:
		f, v, err := parseField(types.ParseExperienceField, field, raw)
		if err != nil {
			return false, err
		}
		return e.UpdateExperience(id, f, v), nil
	case types.CollectionEducation:
		f, v, err := parseField(types.ParseEducationField, field, raw)
		if err != nil {
			return false, err
		}
		return e.UpdateEducation(id, f, v), nil
	case types.CollectionSkills:
		f, v, err := parseField(types.ParseSkillField, field, raw)
		if err != nil {
			return false, err
		}
		return e.UpdateSkill(id, f, v), nil
	case types.CollectionProjects:
		f, v, err := parseField(types.ParseProjectField, field, raw)
		if err != nil {
			return false, err
		}
		return e.UpdateProject(id, f, v), nil
	case types.CollectionCertificates:
		f, v, err := parseField(types.ParseCertificateField, field, raw)
		if err != nil {
			return false, err
		}
		return e.UpdateCertificate(id, f, v), nil
	}
	return false, &types.UnknownFieldError{Entity: "resume", Field: string(c)}
}

// Remove deletes the entity with the given id from collection c.
// It reports whether an entity matched; an unknown collection matches nothing.
func (e *Editor) Remove(c types.Collection, id string) bool {
	switch c {
	case types.CollectionExperience:
		return e.RemoveExperience(id)
	case types.CollectionEducation:
		return e.RemoveEducation(id)
	case types.CollectionSkills:
		return e.RemoveSkill(id)
	case types.CollectionProjects:
		return e.RemoveProject(id)
	case types.CollectionCertificates:
		return e.RemoveCertificate(id)
	}
	return false
}

type parsableField interface {
	~string
	Parse(raw any) (types.Value, error)
}

func parseField[F parsableField](parse func(string) (F, error), name string, raw any) (F, types.Value, error) {
	f, err := parse(name)
	if err != nil {
		return f, types.Value{}, err
	}
	v, err := f.Parse(raw)
	if err != nil {
		return f, types.Value{}, err
	}
	return f, v, nil
}
