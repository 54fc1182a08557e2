// Package prompts holds the LLM prompt templates used by the suggestion provider.
// The templates live in suggestions.json, embedded at compile time and parsed once.
package prompts

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"sync"
	"text/template"
)

// Key names one prompt.
type Key string

const (
	KeySummary              Key = "summary"
	KeyJobDescription       Key = "job-description"
	KeyEducationDescription Key = "education-description"
	KeySkills               Key = "skills"
	KeyImproveText          Key = "improve-text"
)

// notProvided stands in for blank values so the model sees an explicit gap.
const notProvided = "(not provided)"

//go:embed suggestions.json
var suggestionsJSON []byte

var load = sync.OnceValues(func() (map[Key]*template.Template, error) {
	return parse(suggestionsJSON)
})

func parse(data []byte) (map[Key]*template.Template, error) {
	var raw map[Key]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse prompts: %w", err)
	}

	out := make(map[Key]*template.Template, len(raw))
	for key, text := range raw {
		tmpl, err := template.New(string(key)).Option("missingkey=error").Parse(text)
		if err != nil {
			return nil, fmt.Errorf("failed to parse prompt %q: %w", key, err)
		}
		out[key] = tmpl
	}
	return out, nil
}

// Render fills the prompt for key with data. Blank values become "(not provided)";
// a placeholder with no entry in data is an error.
func Render(key Key, data map[string]string) (string, error) {
	templates, err := load()
	if err != nil {
		return "", err
	}
	tmpl, ok := templates[key]
	if !ok {
		return "", fmt.Errorf("prompt %q not found", key)
	}

	filled := make(map[string]string, len(data))
	for k, v := range data {
		if strings.TrimSpace(v) == "" {
			v = notProvided
		}
		filled[k] = v
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, filled); err != nil {
		return "", fmt.Errorf("failed to render prompt %q: %w", key, err)
	}
	return sb.String(), nil
}

// Keys returns the available prompt keys, sorted.
func Keys() ([]Key, error) {
	templates, err := load()
	if err != nil {
		return nil, err
	}
	keys := make([]Key, 0, len(templates))
	for k := range templates {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys, nil
}
