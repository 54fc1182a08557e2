package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// ErrEmptyResponse is returned when the model produced no usable text.
var ErrEmptyResponse = errors.New("empty response from model")

// Request is one prompt. JSON asks the model for an application/json reply and
// strips any fences or chatter around it.
type Request struct {
	Task   Task
	Prompt string
	JSON   bool
}

// Client generates text for a Request.
type Client interface {
	Generate(ctx context.Context, req Request) (string, error)
	Close() error
}

// Gemini implements Client on the Google Gemini API.
type Gemini struct {
	client *genai.Client
	config Config
}

var _ Client = (*Gemini)(nil)

// NewGemini connects to Gemini with apiKey.
func NewGemini(ctx context.Context, cfg Config, apiKey string) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &Gemini{client: client, config: cfg}, nil
}

// Generate sends req to the model configured for its task.
func (g *Gemini) Generate(ctx context.Context, req Request) (string, error) {
	name := g.config.ModelFor(req.Task)
	if name == "" {
		return "", fmt.Errorf("no model configured for task %s", req.Task)
	}
	model := g.client.GenerativeModel(name)
	model.SetTemperature(g.config.Temperature)
	if g.config.MaxOutputTokens > 0 {
		model.SetMaxOutputTokens(g.config.MaxOutputTokens)
	}
	if req.JSON {
		model.ResponseMIMEType = "application/json"
	}

	resp, err := model.GenerateContent(ctx, genai.Text(req.Prompt))
	if err != nil {
		return "", fmt.Errorf("%s generation with %s failed: %w", req.Task, name, err)
	}

	text, err := responseText(resp)
	if err != nil {
		return "", err
	}
	if req.JSON {
		return CleanJSONBlock(text), nil
	}
	return text, nil
}

// Close releases the underlying connection.
func (g *Gemini) Close() error {
	if g.client == nil {
		return nil
	}
	return g.client.Close()
}

// responseText joins the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates: %w", ErrEmptyResponse)
	}
	content := resp.Candidates[0].Content
	if content == nil {
		return "", fmt.Errorf("no content: %w", ErrEmptyResponse)
	}

	var sb strings.Builder
	for _, part := range content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", fmt.Errorf("no text parts: %w", ErrEmptyResponse)
	}
	return text, nil
}
