// Package llm wraps the Gemini API behind the small interface the suggestion provider needs.
package llm

// Task names the kind of output a request asks for. Each task can run on its own model.
type Task string

const (
	// TaskText is short free text: summaries, descriptions and rewording.
	TaskText Task = "text"
	// TaskSkills is a JSON list of skills.
	TaskSkills Task = "skills"
)

const (
	// DefaultModel serves every task without an override.
	DefaultModel = "gemini-2.5-flash"
	// DefaultTemperature favours varied suggestions over deterministic ones.
	DefaultTemperature float32 = 0.7
	// DefaultMaxOutputTokens bounds a reply; suggestions are a paragraph at most.
	DefaultMaxOutputTokens int32 = 1024
)

// Config selects models and sampling for generation.
type Config struct {
	Model           string
	TaskModels      map[Task]string
	Temperature     float32
	MaxOutputTokens int32
}

// DefaultConfig runs free text on the lite model and skills on DefaultModel.
func DefaultConfig() Config {
	return Config{
		Model:           DefaultModel,
		TaskModels:      map[Task]string{TaskText: "gemini-2.5-flash-lite"},
		Temperature:     DefaultTemperature,
		MaxOutputTokens: DefaultMaxOutputTokens,
	}
}

// ModelFor returns the model for task, falling back to Model.
func (c Config) ModelFor(task Task) string {
	if m := c.TaskModels[task]; m != "" {
		return m
	}
	return c.Model
}

// WithModel returns a copy of c that runs every task on model.
func (c Config) WithModel(model string) Config {
	c.Model = model
	c.TaskModels = nil
	return c
}
