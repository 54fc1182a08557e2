package suggest

import (
	"context"
	"errors"
	"testing"

	"github.com/jonathan/resume-builder/internal/llm"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	text    string
	json    string
	err     error
	prompts []string
	tasks   []llm.Task
}

func (f *fakeClient) Generate(_ context.Context, req llm.Request) (string, error) {
	f.prompts = append(f.prompts, req.Prompt)
	f.tasks = append(f.tasks, req.Task)
	if req.JSON {
		return f.json, f.err
	}
	return f.text, f.err
}

func (f *fakeClient) Close() error { return nil }

func TestLLM_SuggestSummary(t *testing.T) {
	client := &fakeClient{text: "  \"Seasoned engineer building reliable systems.\"\n"}
	p := NewLLM(client)

	text, err := p.SuggestSummary(context.Background(), types.PersonalInfo{
		FullName: "Ada Lovelace",
		GitHub:   "github.com/ada",
	})

	require.NoError(t, err)
	assert.Equal(t, "Seasoned engineer building reliable systems.", text)
	require.Len(t, client.prompts, 1)
	assert.Contains(t, client.prompts[0], "Candidate name: Ada Lovelace")
	assert.Contains(t, client.prompts[0], "Online presence: github.com/ada")
	assert.Contains(t, client.prompts[0], "Location: (not provided)")
	assert.Equal(t, llm.TaskText, client.tasks[0])
}

func TestLLM_TextPrompts(t *testing.T) {
	client := &fakeClient{text: "Did things."}
	p := NewLLM(client)
	ctx := context.Background()

	_, err := p.SuggestJobDescription(ctx, "Backend Engineer", "Globex")
	require.NoError(t, err)
	_, err = p.SuggestEducationDescription(ctx, "BSc Physics", "ETH")
	require.NoError(t, err)
	_, err = p.ImproveText(ctx, "worked on stuff", KindExperience)
	require.NoError(t, err)

	require.Len(t, client.prompts, 3)
	assert.Contains(t, client.prompts[0], "Company: Globex")
	assert.Contains(t, client.prompts[1], "Degree: BSc Physics")
	assert.Contains(t, client.prompts[2], "Rewrite the experience below")
	assert.Contains(t, client.prompts[2], "worked on stuff")
}

func TestLLM_ImproveBlankTextSkipsModel(t *testing.T) {
	client := &fakeClient{}
	p := NewLLM(client)

	text, err := p.ImproveText(context.Background(), " ", KindSummary)

	require.NoError(t, err)
	assert.Equal(t, " ", text)
	assert.Empty(t, client.prompts)
}

func TestLLM_Errors(t *testing.T) {
	boom := errors.New("quota exceeded")

	_, err := NewLLM(&fakeClient{err: boom}).SuggestJobDescription(context.Background(), "a", "b")
	assert.ErrorIs(t, err, boom)
	var serr *Error
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "job description", serr.Operation)

	_, err = NewLLM(&fakeClient{text: "  "}).SuggestSummary(context.Background(), types.PersonalInfo{})
	assert.ErrorIs(t, err, llm.ErrEmptyResponse)

	_, err = NewLLM(&fakeClient{err: boom}).SuggestSkills(context.Background(), "Engineer")
	assert.ErrorIs(t, err, boom)
}

func TestLLM_SuggestSkills(t *testing.T) {
	client := &fakeClient{json: "```json\n[" +
		`{"name": "Go", "category": "Languages", "level": "expert"},` +
		`{"name": "  ", "category": "Nope", "level": "Beginner"},` +
		`{"name": "Terraform", "category": "Infrastructure", "level": "Wizard"}` +
		"]\n```"}
	p := NewLLM(client)

	skills, err := p.SuggestSkills(context.Background(), "Platform Engineer")

	require.NoError(t, err)
	assert.Equal(t, []types.SkillSuggestion{
		{Name: "Go", Level: types.LevelExpert, Category: "Languages"},
		{Name: "Terraform", Level: types.LevelIntermediate, Category: "Infrastructure"},
	}, skills)
	assert.Equal(t, llm.TaskSkills, client.tasks[0])
	assert.Contains(t, client.prompts[0], "Job title: Platform Engineer")
}

func TestParseSkills_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "not JSON", raw: "I think Go is nice"},
		{name: "object instead of array", raw: `{"name": "Go"}`},
		{name: "empty array", raw: `[]`},
		{name: "only blank names", raw: `[{"name": ""}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseSkills(tt.raw)
			var serr *Error
			assert.ErrorAs(t, err, &serr)
		})
	}
}

func TestParseSkills_BlankCategoryDefaultsToOther(t *testing.T) {
	skills, err := parseSkills(`[{"name": "Go", "category": "Languages", "level": "Expert"}, {"name": "Patience", "category": "  "}, {"name": "Mentoring"}]`)
	require.NoError(t, err)
	require.Len(t, skills, 3)
	assert.Equal(t, "Languages", skills[0].Category)
	assert.Equal(t, types.OtherSkillCategory, skills[1].Category)
	assert.Equal(t, types.OtherSkillCategory, skills[2].Category)
	assert.Equal(t, types.LevelIntermediate, skills[2].Level)
}

func TestParseSkills_Capped(t *testing.T) {
	raw := "["
	for i := range 15 {
		if i > 0 {
			raw += ","
		}
		raw += `{"name": "Skill", "category": "C", "level": "Advanced"}`
	}
	raw += "]"

	skills, err := parseSkills(raw)
	require.NoError(t, err)
	assert.Len(t, skills, maxSuggestedSkills)
}
