// Package validation checks a resume document against its field constraints.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/resume-builder/internal/types"
)

// RootField is the path reported when the input itself is unusable.
const RootField = "(root)"

// Violation is a single failed constraint.
type Violation struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// Result holds every violation found in one pass, in document order.
type Result struct {
	Violations []Violation `json:"violations"`
}

// Valid reports whether no constraint failed.
func (r Result) Valid() bool {
	return len(r.Violations) == 0
}

// Field returns the violations reported for an exact field path.
func (r Result) Field(path string) []Violation {
	var out []Violation
	for _, v := range r.Violations {
		if v.Field == path {
			out = append(out, v)
		}
	}
	return out
}

// Messages returns field path -> message, convenient for form display.
func (r Result) Messages() map[string]string {
	out := make(map[string]string, len(r.Violations))
	for _, v := range r.Violations {
		if _, exists := out[v.Field]; !exists {
			out[v.Field] = v.Message
		}
	}
	return out
}

// Err returns nil for a valid result and an *Error otherwise.
func (r Result) Err() error {
	if r.Valid() {
		return nil
	}
	return &Error{Violations: r.Violations}
}

var (
	instance     *validator.Validate
	instanceOnce sync.Once
)

func resumeValidator() *validator.Validate {
	instanceOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(jsonFieldName)
		if err := v.RegisterValidation("email_domain", validateEmailDomain); err != nil {
			panic(fmt.Sprintf("failed to register email_domain validation: %v", err))
		}
		instance = v
	})
	return instance
}

// jsonFieldName makes validator report paths using the JSON interchange names.
func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	}
	return name
}

// validateEmailDomain requires a domain with at least one dot and no empty labels.
// validator's own email rule accepts single-label domains such as "a@b".
func validateEmailDomain(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	at := strings.LastIndex(value, "@")
	if at <= 0 || at == len(value)-1 {
		return false
	}
	labels := strings.Split(value[at+1:], ".")
	if len(labels) < 2 {
		return false
	}
	for _, label := range labels {
		if label == "" {
			return false
		}
	}
	return true
}

// Validate checks every constraint on the resume and returns all violations.
// It never fails: a nil resume yields a single root violation.
func Validate(r *types.Resume) Result {
	if r == nil {
		return Result{Violations: []Violation{{Field: RootField, Rule: "required", Message: "Resume is required"}}}
	}
	return ValidateEntity(r)
}

// ValidateEntity checks a single entity (PersonalInfo, Experience, Education,
// Skill, Project, Certificate) or a whole Resume. Paths are relative to v.
func ValidateEntity(v any) Result {
	err := resumeValidator().Struct(v)
	if err == nil {
		return Result{Violations: []Violation{}}
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return Result{Violations: []Violation{{Field: RootField, Rule: "type", Message: "Value is not a resume entity"}}}
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return Result{Violations: []Violation{{Field: RootField, Rule: "unknown", Message: err.Error()}}}
	}

	out := Result{Violations: make([]Violation, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		root, path := splitNamespace(fe.Namespace())
		out.Violations = append(out.Violations, Violation{
			Field:   path,
			Rule:    fe.Tag(),
			Message: message(messageKey(root, path), fe),
		})
	}
	return out
}

// entityKeys maps a top-level struct name to its path inside a Resume.
var entityKeys = map[string]string{
	"Resume":       "",
	"PersonalInfo": "personalInfo",
	"Experience":   "experience",
	"Education":    "education",
	"Skill":        "skills",
	"Project":      "projects",
	"Certificate":  "certificates",
}

var indexPattern = regexp.MustCompile(`\[\d+\]`)

// splitNamespace turns "Resume.experience[0].jobTitle" into ("Resume", "experience[0].jobTitle").
func splitNamespace(ns string) (root, path string) {
	root, path, found := strings.Cut(ns, ".")
	if !found {
		return root, RootField
	}
	return root, path
}

// messageKey builds the index-free lookup key, e.g. "experience.jobTitle".
func messageKey(root, path string) string {
	key := indexPattern.ReplaceAllString(path, "")
	if prefix := entityKeys[root]; prefix != "" {
		key = prefix + "." + key
	}
	return key
}

var requiredMessages = map[string]string{
	"personalInfo.fullName":  "Full name is required",
	"personalInfo.email":     "Email is required",
	"personalInfo.phone":     "Phone number is required",
	"personalInfo.location":  "Location is required",
	"summary":                "Professional summary is required",
	"experience.jobTitle":    "Job title is required",
	"experience.company":     "Company name is required",
	"experience.location":    "Location is required",
	"experience.startDate":   "Start date is required",
	"experience.description": "Job description is required",
	"education.degree":       "Degree is required",
	"education.institution":  "Institution is required",
	"education.location":     "Location is required",
	"education.startDate":    "Start date is required",
	"skills.name":            "Skill name is required",
	"skills.category":        "Category is required",
	"projects.name":          "Project name is required",
	"projects.description":   "Project description is required",
	"projects.technologies":  "Technologies used is required",
	"certificates.name":      "Certificate name is required",
	"certificates.issuer":    "Issuer is required",
	"certificates.issueDate": "Issue date is required",
}

func message(key string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		if msg, ok := requiredMessages[key]; ok {
			return msg
		}
		return fmt.Sprintf("%s is required", fe.Field())
	case "email", "email_domain":
		return "Invalid email address"
	case "oneof":
		if key == "skills.level" {
			return "Skill level must be one of " + strings.Join(strings.Fields(fe.Param()), ", ")
		}
		return fmt.Sprintf("%s must be one of %s", fe.Field(), strings.Join(strings.Fields(fe.Param()), ", "))
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

// ValidEmail applies the email rules on their own, for callers that check a
// single input before it reaches the document.
func ValidEmail(email string) bool {
	return resumeValidator().Var(email, "required,email,email_domain") == nil
}
