// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Suggestion provider names.
const (
	SuggestionsStub = "stub"
	SuggestionsLLM  = "llm"
)

// Config represents configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults, CLI flags or environment variables.
type Config struct {
	// Server
	Port               int `json:"port,omitempty"`                 // HTTP listen port
	SessionIdleMinutes int `json:"session_idle_minutes,omitempty"` // Idle sessions are dropped after this long

	// Suggestions
	Suggestions string `json:"suggestions,omitempty"` // "stub" or "llm"
	APIKey      string `json:"api_key,omitempty"`     // Gemini API key
	Model       string `json:"model,omitempty"`       // Runs every task on this model

	// Export
	ChromePath           string `json:"chrome_path,omitempty"`            // Chrome executable, empty for auto-detect
	ExportTimeoutSeconds int    `json:"export_timeout_seconds,omitempty"` // Upper bound for one export

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Port:                 8080,
		SessionIdleMinutes:   120,
		Suggestions:          SuggestionsStub,
		ExportTimeoutSeconds: 60,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	switch c.Suggestions {
	case "", SuggestionsStub, SuggestionsLLM:
	default:
		return fmt.Errorf("config error: 'suggestions' must be %q or %q, got %q", SuggestionsStub, SuggestionsLLM, c.Suggestions)
	}

	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.SessionIdleMinutes < 0 {
		return fmt.Errorf("config error: 'session_idle_minutes' must be non-negative")
	}
	if c.ExportTimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'export_timeout_seconds' must be non-negative")
	}

	if c.ChromePath != "" {
		if _, err := os.Stat(c.ChromePath); os.IsNotExist(err) {
			return fmt.Errorf("config error: chrome executable not found: %s", c.ChromePath)
		}
	}

	if c.Suggestions == SuggestionsLLM && c.APIKey == "" {
		return fmt.Errorf("config error: 'api_key' (or GEMINI_API_KEY) is required for llm suggestions")
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Suggestions == "" {
		result.Suggestions = defaults.Suggestions
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.ChromePath == "" {
		result.ChromePath = defaults.ChromePath
	}

	// Int fields: use default if zero
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.SessionIdleMinutes == 0 {
		result.SessionIdleMinutes = defaults.SessionIdleMinutes
	}
	if result.ExportTimeoutSeconds == 0 {
		result.ExportTimeoutSeconds = defaults.ExportTimeoutSeconds
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// FromEnv returns the values supplied by GEMINI_API_KEY and CHROME_PATH.
// It is meant to be passed to MergeWithDefaults ahead of Defaults.
func FromEnv() Config {
	return Config{
		APIKey:     os.Getenv("GEMINI_API_KEY"),
		ChromePath: os.Getenv("CHROME_PATH"),
	}
}

// Resolve loads path when it is non-empty and fills gaps from the environment and defaults.
func Resolve(path string) (Config, error) {
	cfg := &Config{}
	if path != "" {
		loaded, err := LoadConfig(path)
		if err != nil {
			return Config{}, err
		}
		cfg = loaded
	}

	merged := cfg.MergeWithDefaults(FromEnv())
	merged = merged.MergeWithDefaults(Defaults())
	if err := merged.Validate(); err != nil {
		return Config{}, err
	}
	return merged, nil
}
