// Package schemas provides JSON Schema validation for resume documents read from outside the editor.
package schemas

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed resume.schema.json
var resumeSchema string

// ResumeSchema returns the embedded JSON Schema for the resume interchange format.
func ResumeSchema() string {
	return resumeSchema
}

// ValidationError represents a schema validation error with field paths
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

// SchemaLoadError represents errors loading or parsing the schema itself
type SchemaLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Path, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// ValidateJSONString validates JSON string content against schema string content
func ValidateJSONString(schemaContent, jsonContent string) error {
	schemaLoader := gojsonschema.NewStringLoader(schemaContent)
	documentLoader := gojsonschema.NewStringLoader(jsonContent)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &SchemaLoadError{
			Path:    "(string schema)",
			Message: "schema validation failed during load",
			Cause:   err,
		}
	}

	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}

	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}

	return validationErr
}

// ValidateResumeJSON checks that data has the shape of a resume document.
// It checks structure only (types, known keys, ids, skill levels); whether
// required values are filled in is the validation package's concern.
func ValidateResumeJSON(data []byte) error {
	return ValidateJSONString(resumeSchema, string(data))
}

// DecodeResume validates data against the resume schema and decodes it.
// Missing sequences are normalized to empty ones and ids must be unique
// within each sequence.
func DecodeResume(data []byte) (*types.Resume, error) {
	if err := ValidateResumeJSON(data); err != nil {
		return nil, err
	}

	var r types.Resume
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to decode resume JSON: %w", err)
	}
	r.Normalize()

	if err := checkUniqueIDs(&r); err != nil {
		return nil, err
	}
	return &r, nil
}

// LoadResume reads and decodes a resume document from a file.
func LoadResume(path string) (*types.Resume, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume file %s: %w", path, err)
	}
	return DecodeResume(data)
}

func checkUniqueIDs(r *types.Resume) error {
	var errs []FieldError
	errs = append(errs, duplicates("experience", r.Experience)...)
	errs = append(errs, duplicates("education", r.Education)...)
	errs = append(errs, duplicates("skills", r.Skills)...)
	errs = append(errs, duplicates("projects", r.Projects)...)
	errs = append(errs, duplicates("certificates", r.Certificates)...)
	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

func duplicates[T interface{ EntityID() string }](collection string, items []T) []FieldError {
	var errs []FieldError
	seen := make(map[string]bool, len(items))
	for i, item := range items {
		id := item.EntityID()
		if seen[id] {
			errs = append(errs, FieldError{
				Field:   fmt.Sprintf("%s.%d.id", collection, i),
				Message: fmt.Sprintf("duplicate id %q", id),
			})
		}
		seen[id] = true
	}
	return errs
}
