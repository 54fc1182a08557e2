package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "json code block",
			input:    "```json\n[{\"name\": \"Go\"}]\n```",
			expected: `[{"name": "Go"}]`,
		},
		{
			name:     "generic code block",
			input:    "```\n{\"key\": \"value\"}\n```",
			expected: `{"key": "value"}`,
		},
		{
			name:     "plain JSON",
			input:    `{"key": "value"}`,
			expected: `{"key": "value"}`,
		},
		{
			name:     "preamble before array",
			input:    "Here are some skills for a data scientist:\n[\"Python\", \"SQL\"]",
			expected: `["Python", "SQL"]`,
		},
		{
			name:     "trailing chatter",
			input:    "{\"summary\": \"Engineer\"}\n\nLet me know if you need anything else!",
			expected: `{"summary": "Engineer"}`,
		},
		{
			name:     "braces inside strings",
			input:    `Result: {"text": "use {curly} and \"quotes\""}`,
			expected: `{"text": "use {curly} and \"quotes\""}`,
		},
		{
			name:     "no JSON at all",
			input:    "  sorry, I cannot help  ",
			expected: "sorry, I cannot help",
		},
		{
			name:     "unterminated object is returned as is",
			input:    `{"key": "value"`,
			expected: `{"key": "value"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanJSONBlock(tt.input))
		})
	}
}

func TestExtractBalanced(t *testing.T) {
	assert.Equal(t, `[[1, 2], [3]]`, extractJSONArray(`[[1, 2], [3]] extra`))
	assert.Equal(t, `{"a": {"b": 1}}`, extractJSONObject(`{"a": {"b": 1}}}`))
	assert.Equal(t, "", extractJSONObject("not json"))
	assert.Equal(t, "", extractJSONArray(""))
}
