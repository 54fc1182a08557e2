package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig_ValidJSON(t *testing.T) {
	path := writeConfig(t, `{
		"port": 9090,
		"suggestions": "llm",
		"api_key": "k",
		"model": "gemini-2.5-pro",
		"session_idle_minutes": 30,
		"verbose": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, SuggestionsLLM, cfg.Suggestions)
	assert.Equal(t, "k", cfg.APIKey)
	assert.Equal(t, "gemini-2.5-pro", cfg.Model)
	assert.Equal(t, 30, cfg.SessionIdleMinutes)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeConfig(t, `{ invalid json }`)

	cfg, err := LoadConfig(path)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestValidate(t *testing.T) {
	chrome := filepath.Join(t.TempDir(), "chrome")
	require.NoError(t, os.WriteFile(chrome, []byte("#!/bin/sh\n"), 0755))

	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "empty", cfg: Config{}},
		{name: "defaults", cfg: Defaults()},
		{name: "existing chrome", cfg: Config{ChromePath: chrome}},
		{name: "llm with key", cfg: Config{Suggestions: SuggestionsLLM, APIKey: "k"}},
		{name: "unknown provider", cfg: Config{Suggestions: "oracle"}, wantErr: "'suggestions'"},
		{name: "llm without key", cfg: Config{Suggestions: SuggestionsLLM}, wantErr: "'api_key'"},
		{name: "port out of range", cfg: Config{Port: 70000}, wantErr: "'port'"},
		{name: "negative idle", cfg: Config{SessionIdleMinutes: -1}, wantErr: "'session_idle_minutes'"},
		{name: "negative timeout", cfg: Config{ExportTimeoutSeconds: -5}, wantErr: "'export_timeout_seconds'"},
		{name: "missing chrome", cfg: Config{ChromePath: "/nonexistent/chrome"}, wantErr: "chrome executable not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := &Config{Port: 9000, Verbose: true}

	merged := cfg.MergeWithDefaults(Defaults())

	assert.Equal(t, 9000, merged.Port)
	assert.Equal(t, SuggestionsStub, merged.Suggestions)
	assert.Equal(t, 120, merged.SessionIdleMinutes)
	assert.Equal(t, 60, merged.ExportTimeoutSeconds)
	assert.True(t, merged.Verbose)
	assert.Equal(t, 0, cfg.SessionIdleMinutes, "receiver must not be modified")
}

func TestResolve(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "from-env")
	t.Setenv("CHROME_PATH", "")

	path := writeConfig(t, `{"suggestions": "llm", "port": 7000}`)

	cfg, err := Resolve(path)
	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.Port)
	assert.Equal(t, "from-env", cfg.APIKey)
	assert.Equal(t, SuggestionsLLM, cfg.Suggestions)

	cfg, err = Resolve("")
	require.NoError(t, err)
	assert.Equal(t, Defaults().Port, cfg.Port)
	assert.Equal(t, SuggestionsStub, cfg.Suggestions)
}

func TestResolve_FileKeyWinsOverEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "from-env")
	path := writeConfig(t, `{"api_key": "from-file"}`)

	cfg, err := Resolve(path)
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.APIKey)
}

func TestResolve_InvalidConfig(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	path := writeConfig(t, `{"suggestions": "llm"}`)

	_, err := Resolve(path)
	assert.Error(t, err)
}
