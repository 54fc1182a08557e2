package suggest

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"github.com/jonathan/resume-builder/internal/llm"
	"github.com/jonathan/resume-builder/internal/prompts"
	"github.com/jonathan/resume-builder/internal/types"
)

// maxSuggestedSkills caps how many skills an LLM response may add at once.
const maxSuggestedSkills = 10

// LLM is a Provider backed by a language model.
type LLM struct {
	client llm.Client
}

var _ Provider = (*LLM)(nil)

// NewLLM returns a Provider that sends prompts to client.
func NewLLM(client llm.Client) *LLM {
	return &LLM{client: client}
}

func (p *LLM) generateText(ctx context.Context, op string, key prompts.Key, data map[string]string) (string, error) {
	prompt, err := prompts.Render(key, data)
	if err != nil {
		return "", &Error{Operation: op, Message: "failed to load prompt", Cause: err}
	}

	text, err := p.client.Generate(ctx, llm.Request{Task: llm.TaskText, Prompt: prompt})
	if err != nil {
		log.Printf("[SUGGEST] %s generation failed: %v", op, err)
		return "", &Error{Operation: op, Message: "model call failed", Cause: err}
	}

	text = cleanText(text)
	if text == "" {
		return "", &Error{Operation: op, Message: "model returned no text", Cause: llm.ErrEmptyResponse}
	}
	return text, nil
}

// cleanText trims whitespace and a pair of wrapping quotes.
func cleanText(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = strings.TrimSpace(s[1 : len(s)-1])
	}
	return s
}

// SuggestSummary asks the model for a professional summary.
func (p *LLM) SuggestSummary(ctx context.Context, info types.PersonalInfo) (string, error) {
	var links []string
	for _, l := range []string{info.Website, info.LinkedIn, info.GitHub} {
		if strings.TrimSpace(l) != "" {
			links = append(links, l)
		}
	}
	return p.generateText(ctx, "summary", prompts.KeySummary, map[string]string{
		"FullName": info.FullName,
		"Location": info.Location,
		"Links":    strings.Join(links, ", "),
	})
}

// SuggestJobDescription asks the model for a job description.
func (p *LLM) SuggestJobDescription(ctx context.Context, jobTitle, company string) (string, error) {
	return p.generateText(ctx, "job description", prompts.KeyJobDescription, map[string]string{
		"JobTitle": jobTitle,
		"Company":  company,
	})
}

// SuggestEducationDescription asks the model for a degree description.
func (p *LLM) SuggestEducationDescription(ctx context.Context, degree, institution string) (string, error) {
	return p.generateText(ctx, "education description", prompts.KeyEducationDescription, map[string]string{
		"Degree":      degree,
		"Institution": institution,
	})
}

// ImproveText asks the model to reword text. Blank text is returned without a model call.
func (p *LLM) ImproveText(ctx context.Context, text string, kind TextKind) (string, error) {
	if strings.TrimSpace(text) == "" {
		return text, nil
	}
	return p.generateText(ctx, "improve text", prompts.KeyImproveText, map[string]string{
		"Kind": string(kind),
		"Text": text,
	})
}

type skillJSON struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Level    string `json:"level"`
}

// SuggestSkills asks the model for a JSON list of skills.
func (p *LLM) SuggestSkills(ctx context.Context, jobTitle string) ([]types.SkillSuggestion, error) {
	prompt, err := prompts.Render(prompts.KeySkills, map[string]string{"JobTitle": jobTitle})
	if err != nil {
		return nil, &Error{Operation: "skills", Message: "failed to load prompt", Cause: err}
	}

	raw, err := p.client.Generate(ctx, llm.Request{Task: llm.TaskSkills, Prompt: prompt, JSON: true})
	if err != nil {
		log.Printf("[SUGGEST] skills generation failed: %v", err)
		return nil, &Error{Operation: "skills", Message: "model call failed", Cause: err}
	}
	return parseSkills(raw)
}

// parseSkills decodes a model response into suggestions. Entries without a name are
// dropped and unknown levels become Intermediate.
func parseSkills(raw string) ([]types.SkillSuggestion, error) {
	var items []skillJSON
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(raw)), &items); err != nil {
		return nil, &Error{Operation: "skills", Message: "response is not a JSON array of skills", Cause: err}
	}

	out := make([]types.SkillSuggestion, 0, len(items))
	for _, item := range items {
		name := strings.TrimSpace(item.Name)
		if name == "" {
			continue
		}
		level, err := types.ParseSkillLevel(item.Level)
		if err != nil {
			level = types.LevelIntermediate
		}
		category := strings.TrimSpace(item.Category)
		if category == "" {
			category = types.OtherSkillCategory
		}
		out = append(out, types.SkillSuggestion{
			Name:     name,
			Level:    level,
			Category: category,
		})
		if len(out) == maxSuggestedSkills {
			break
		}
	}

	if len(out) == 0 {
		return nil, &Error{Operation: "skills", Message: "model returned no skills", Cause: llm.ErrEmptyResponse}
	}
	return out, nil
}
