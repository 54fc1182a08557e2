//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"strconv"
	"strings"
)

// SkillLevel is the closed set of proficiency levels.
type SkillLevel string

// Skill levels, lowest first.
const (
	LevelBeginner     SkillLevel = "Beginner"
	LevelIntermediate SkillLevel = "Intermediate"
	LevelAdvanced     SkillLevel = "Advanced"
	LevelExpert       SkillLevel = "Expert"
)

// SkillLevels lists every valid level in ascending order.
var SkillLevels = []SkillLevel{LevelBeginner, LevelIntermediate, LevelAdvanced, LevelExpert}

// Valid reports whether l is one of SkillLevels.
func (l SkillLevel) Valid() bool {
	for _, level := range SkillLevels {
		if l == level {
			return true
		}
	}
	return false
}

// ParseSkillLevel parses a level name case-insensitively.
func ParseSkillLevel(s string) (SkillLevel, error) {
	for _, level := range SkillLevels {
		if strings.EqualFold(strings.TrimSpace(s), string(level)) {
			return level, nil
		}
	}
	return "", fmt.Errorf("invalid skill level %q", s)
}

// Collection names a repeatable section of the resume.
type Collection string

// Resume collections.
const (
	CollectionExperience   Collection = "experience"
	CollectionEducation    Collection = "education"
	CollectionSkills       Collection = "skills"
	CollectionProjects     Collection = "projects"
	CollectionCertificates Collection = "certificates"
)

// Collections lists every collection in document order.
var Collections = []Collection{
	CollectionExperience,
	CollectionEducation,
	CollectionSkills,
	CollectionProjects,
	CollectionCertificates,
}

// ParseCollection maps a collection name to a Collection.
func ParseCollection(s string) (Collection, error) {
	for _, c := range Collections {
		if string(c) == s {
			return c, nil
		}
	}
	return "", &UnknownFieldError{Entity: "resume", Field: s}
}

// FieldKind is the type of value a field accepts.
type FieldKind int

// Field kinds.
const (
	KindText FieldKind = iota
	KindFlag
	KindLevel
)

func (k FieldKind) String() string {
	switch k {
	case KindFlag:
		return "boolean"
	case KindLevel:
		return "skill level"
	default:
		return "string"
	}
}

// Value is a typed field value. Build one with Text, Flag or Level.
type Value struct {
	kind FieldKind
	text string
	flag bool
}

// Text wraps a string value.
func Text(s string) Value { return Value{kind: KindText, text: s} }

// Flag wraps a boolean value.
func Flag(b bool) Value { return Value{kind: KindFlag, flag: b} }

// Level wraps a skill level value.
func Level(l SkillLevel) Value { return Value{kind: KindLevel, text: string(l)} }

// Kind returns the kind of the wrapped value.
func (v Value) Kind() FieldKind { return v.kind }

// UnknownFieldError is returned when a field or collection name is not part of the schema.
type UnknownFieldError struct {
	Entity string
	Field  string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown %s field %q", e.Entity, e.Field)
}

// ValueKindError is returned when a raw value cannot be converted to the kind a field expects.
type ValueKindError struct {
	Field string
	Want  FieldKind
	Got   any
}

func (e *ValueKindError) Error() string {
	return fmt.Sprintf("field %q expects a %s, got %T", e.Field, e.Want, e.Got)
}

// accessor binds a field identifier to the struct member it sets.
type accessor[T any] struct {
	kind  FieldKind
	text  func(*T) *string
	flag  func(*T) *bool
	level func(*T) *SkillLevel
}

func textField[T any](f func(*T) *string) accessor[T] {
	return accessor[T]{kind: KindText, text: f}
}

func flagField[T any](f func(*T) *bool) accessor[T] {
	return accessor[T]{kind: KindFlag, flag: f}
}

func levelField[T any](f func(*T) *SkillLevel) accessor[T] {
	return accessor[T]{kind: KindLevel, level: f}
}

// set writes v into target. A value of the wrong kind, or a level outside SkillLevels,
// is ignored.
func (a accessor[T]) set(target *T, v Value) bool {
	if v.kind != a.kind {
		return false
	}
	if v.kind == KindLevel && !SkillLevel(v.text).Valid() {
		return false
	}
	switch a.kind {
	case KindText:
		*a.text(target) = v.text
	case KindFlag:
		*a.flag(target) = v.flag
	case KindLevel:
		*a.level(target) = SkillLevel(v.text)
	}
	return true
}

// parseValue converts loosely typed input (JSON or form values) into a Value of the given kind.
func parseValue(field string, kind FieldKind, raw any) (Value, error) {
	switch kind {
	case KindText:
		if s, ok := raw.(string); ok {
			return Text(s), nil
		}
	case KindFlag:
		switch b := raw.(type) {
		case bool:
			return Flag(b), nil
		case string:
			if parsed, err := strconv.ParseBool(b); err == nil {
				return Flag(parsed), nil
			}
		}
	case KindLevel:
		if s, ok := raw.(string); ok {
			if level, err := ParseSkillLevel(s); err == nil {
				return Level(level), nil
			}
		}
	}
	return Value{}, &ValueKindError{Field: field, Want: kind, Got: raw}
}

func parseFor[F ~string, T any](table map[F]accessor[T], entity string, f F, raw any) (Value, error) {
	a, ok := table[f]
	if !ok {
		return Value{}, &UnknownFieldError{Entity: entity, Field: string(f)}
	}
	return parseValue(string(f), a.kind, raw)
}

// PersonalInfoField identifies a PersonalInfo member. All of them are text.
type PersonalInfoField string

// PersonalInfo fields.
const (
	PersonalFullName PersonalInfoField = "fullName"
	PersonalEmail    PersonalInfoField = "email"
	PersonalPhone    PersonalInfoField = "phone"
	PersonalLocation PersonalInfoField = "location"
	PersonalWebsite  PersonalInfoField = "website"
	PersonalLinkedIn PersonalInfoField = "linkedin"
	PersonalGitHub   PersonalInfoField = "github"
)

var personalInfoFields = map[PersonalInfoField]accessor[PersonalInfo]{
	PersonalFullName: textField(func(p *PersonalInfo) *string { return &p.FullName }),
	PersonalEmail:    textField(func(p *PersonalInfo) *string { return &p.Email }),
	PersonalPhone:    textField(func(p *PersonalInfo) *string { return &p.Phone }),
	PersonalLocation: textField(func(p *PersonalInfo) *string { return &p.Location }),
	PersonalWebsite:  textField(func(p *PersonalInfo) *string { return &p.Website }),
	PersonalLinkedIn: textField(func(p *PersonalInfo) *string { return &p.LinkedIn }),
	PersonalGitHub:   textField(func(p *PersonalInfo) *string { return &p.GitHub }),
}

// ParsePersonalInfoField validates a field name.
func ParsePersonalInfoField(s string) (PersonalInfoField, error) {
	f := PersonalInfoField(s)
	if _, ok := personalInfoFields[f]; !ok {
		return "", &UnknownFieldError{Entity: "personalInfo", Field: s}
	}
	return f, nil
}

// Set assigns value to the named field. Unknown fields are ignored.
func (p *PersonalInfo) Set(f PersonalInfoField, value string) bool {
	a, ok := personalInfoFields[f]
	if !ok {
		return false
	}
	return a.set(p, Text(value))
}

// ExperienceField identifies an updatable Experience member.
type ExperienceField string

// Experience fields.
const (
	ExperienceJobTitle     ExperienceField = "jobTitle"
	ExperienceCompany      ExperienceField = "company"
	ExperienceLocation     ExperienceField = "location"
	ExperienceStartDate    ExperienceField = "startDate"
	ExperienceEndDate      ExperienceField = "endDate"
	ExperienceIsCurrentJob ExperienceField = "isCurrentJob"
	ExperienceDescription  ExperienceField = "description"
)

var experienceFields = map[ExperienceField]accessor[Experience]{
	ExperienceJobTitle:     textField(func(e *Experience) *string { return &e.JobTitle }),
	ExperienceCompany:      textField(func(e *Experience) *string { return &e.Company }),
	ExperienceLocation:     textField(func(e *Experience) *string { return &e.Location }),
	ExperienceStartDate:    textField(func(e *Experience) *string { return &e.StartDate }),
	ExperienceEndDate:      textField(func(e *Experience) *string { return &e.EndDate }),
	ExperienceIsCurrentJob: flagField(func(e *Experience) *bool { return &e.IsCurrentJob }),
	ExperienceDescription:  textField(func(e *Experience) *string { return &e.Description }),
}

// ParseExperienceField validates a field name.
func ParseExperienceField(s string) (ExperienceField, error) {
	f := ExperienceField(s)
	if _, ok := experienceFields[f]; !ok {
		return "", &UnknownFieldError{Entity: "experience", Field: s}
	}
	return f, nil
}

// Parse converts raw input into a Value suitable for f.
func (f ExperienceField) Parse(raw any) (Value, error) {
	return parseFor(experienceFields, "experience", f, raw)
}

// Set assigns v to the named field. It reports false, leaving e unchanged,
// when the field is unknown or v has the wrong kind.
func (e *Experience) Set(f ExperienceField, v Value) bool {
	a, ok := experienceFields[f]
	if !ok {
		return false
	}
	return a.set(e, v)
}

// EducationField identifies an updatable Education member.
type EducationField string

// Education fields.
const (
	EducationDegree         EducationField = "degree"
	EducationInstitution    EducationField = "institution"
	EducationLocation       EducationField = "location"
	EducationStartDate      EducationField = "startDate"
	EducationEndDate        EducationField = "endDate"
	EducationIsCurrentStudy EducationField = "isCurrentStudy"
	EducationGPA            EducationField = "gpa"
	EducationDescription    EducationField = "description"
)

var educationFields = map[EducationField]accessor[Education]{
	EducationDegree:         textField(func(e *Education) *string { return &e.Degree }),
	EducationInstitution:    textField(func(e *Education) *string { return &e.Institution }),
	EducationLocation:       textField(func(e *Education) *string { return &e.Location }),
	EducationStartDate:      textField(func(e *Education) *string { return &e.StartDate }),
	EducationEndDate:        textField(func(e *Education) *string { return &e.EndDate }),
	EducationIsCurrentStudy: flagField(func(e *Education) *bool { return &e.IsCurrentStudy }),
	EducationGPA:            textField(func(e *Education) *string { return &e.GPA }),
	EducationDescription:    textField(func(e *Education) *string { return &e.Description }),
}

// ParseEducationField validates a field name.
func ParseEducationField(s string) (EducationField, error) {
	f := EducationField(s)
	if _, ok := educationFields[f]; !ok {
		return "", &UnknownFieldError{Entity: "education", Field: s}
	}
	return f, nil
}

// Parse converts raw input into a Value suitable for f.
func (f EducationField) Parse(raw any) (Value, error) {
	return parseFor(educationFields, "education", f, raw)
}

// Set assigns v to the named field.
func (e *Education) Set(f EducationField, v Value) bool {
	a, ok := educationFields[f]
	if !ok {
		return false
	}
	return a.set(e, v)
}

// SkillField identifies an updatable Skill member.
type SkillField string

// Skill fields.
const (
	SkillName     SkillField = "name"
	SkillCategory SkillField = "category"
	SkillLevelKey SkillField = "level"
)

var skillFields = map[SkillField]accessor[Skill]{
	SkillName:     textField(func(s *Skill) *string { return &s.Name }),
	SkillCategory: textField(func(s *Skill) *string { return &s.Category }),
	SkillLevelKey: levelField(func(s *Skill) *SkillLevel { return &s.Level }),
}

// ParseSkillField validates a field name.
func ParseSkillField(s string) (SkillField, error) {
	f := SkillField(s)
	if _, ok := skillFields[f]; !ok {
		return "", &UnknownFieldError{Entity: "skill", Field: s}
	}
	return f, nil
}

// Parse converts raw input into a Value suitable for f.
func (f SkillField) Parse(raw any) (Value, error) {
	return parseFor(skillFields, "skill", f, raw)
}

// Set assigns v to the named field.
func (s *Skill) Set(f SkillField, v Value) bool {
	a, ok := skillFields[f]
	if !ok {
		return false
	}
	return a.set(s, v)
}

// ProjectField identifies an updatable Project member.
type ProjectField string

// Project fields.
const (
	ProjectName         ProjectField = "name"
	ProjectDescription  ProjectField = "description"
	ProjectTechnologies ProjectField = "technologies"
	ProjectURL          ProjectField = "url"
	ProjectGitHub       ProjectField = "github"
	ProjectStartDate    ProjectField = "startDate"
	ProjectEndDate      ProjectField = "endDate"
)

var projectFields = map[ProjectField]accessor[Project]{
	ProjectName:         textField(func(p *Project) *string { return &p.Name }),
	ProjectDescription:  textField(func(p *Project) *string { return &p.Description }),
	ProjectTechnologies: textField(func(p *Project) *string { return &p.Technologies }),
	ProjectURL:          textField(func(p *Project) *string { return &p.URL }),
	ProjectGitHub:       textField(func(p *Project) *string { return &p.GitHub }),
	ProjectStartDate:    textField(func(p *Project) *string { return &p.StartDate }),
	ProjectEndDate:      textField(func(p *Project) *string { return &p.EndDate }),
}

// ParseProjectField validates a field name.
func ParseProjectField(s string) (ProjectField, error) {
	f := ProjectField(s)
	if _, ok := projectFields[f]; !ok {
		return "", &UnknownFieldError{Entity: "project", Field: s}
	}
	return f, nil
}

// Parse converts raw input into a Value suitable for f.
func (f ProjectField) Parse(raw any) (Value, error) {
	return parseFor(projectFields, "project", f, raw)
}

// Set assigns v to the named field.
func (p *Project) Set(f ProjectField, v Value) bool {
	a, ok := projectFields[f]
	if !ok {
		return false
	}
	return a.set(p, v)
}

// CertificateField identifies an updatable Certificate member.
type CertificateField string

// Certificate fields.
const (
	CertificateName           CertificateField = "name"
	CertificateIssuer         CertificateField = "issuer"
	CertificateIssueDate      CertificateField = "issueDate"
	CertificateExpirationDate CertificateField = "expirationDate"
	CertificateCredentialID   CertificateField = "credentialId"
	CertificateURL            CertificateField = "url"
)

var certificateFields = map[CertificateField]accessor[Certificate]{
	CertificateName:           textField(func(c *Certificate) *string { return &c.Name }),
	CertificateIssuer:         textField(func(c *Certificate) *string { return &c.Issuer }),
	CertificateIssueDate:      textField(func(c *Certificate) *string { return &c.IssueDate }),
	CertificateExpirationDate: textField(func(c *Certificate) *string { return &c.ExpirationDate }),
	CertificateCredentialID:   textField(func(c *Certificate) *string { return &c.CredentialID }),
	CertificateURL:            textField(func(c *Certificate) *string { return &c.URL }),
}

// ParseCertificateField validates a field name.
func ParseCertificateField(s string) (CertificateField, error) {
	f := CertificateField(s)
	if _, ok := certificateFields[f]; !ok {
		return "", &UnknownFieldError{Entity: "certificate", Field: s}
	}
	return f, nil
}

// Parse converts raw input into a Value suitable for f.
func (f CertificateField) Parse(raw any) (Value, error) {
	return parseFor(certificateFields, "certificate", f, raw)
}

// Set assigns v to the named field.
func (c *Certificate) Set(f CertificateField, v Value) bool {
	a, ok := certificateFields[f]
	if !ok {
		return false
	}
	return a.set(c, v)
}
