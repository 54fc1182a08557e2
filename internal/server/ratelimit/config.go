package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EndpointConfig is one rate limit rule. A Path ending in "/" matches every path
// below it. Burst defaults to Limit when zero.
type EndpointConfig struct {
	Path   string
	Method string
	Limit  int
	Window time.Duration
	Burst  int
}

// LoadConfig reads the limiter settings from RATE_LIMIT_* environment variables.
// Unparseable values fall back to their defaults. RATE_LIMIT_PER_MINUTE and
// RATE_LIMIT_BURST tune the suggestion and export rules.
func LoadConfig() *Config {
	if !envOr("RATE_LIMIT_ENABLED", true, strconv.ParseBool) {
		return &Config{Enabled: false}
	}

	return &Config{
		Enabled:         true,
		DefaultLimit:    envOr("RATE_LIMIT_DEFAULT_LIMIT", 1000, strconv.Atoi),
		DefaultWindow:   envOr("RATE_LIMIT_DEFAULT_WINDOW", time.Minute, time.ParseDuration),
		CleanupInterval: envOr("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute, time.ParseDuration),
		Allowlist:       clientSet(os.Getenv("RATE_LIMIT_ALLOWLIST")),
		Denylist:        clientSet(os.Getenv("RATE_LIMIT_DENYLIST")),
		EndpointConfigs: DefaultEndpointConfigs(
			envOr("RATE_LIMIT_PER_MINUTE", 20, strconv.Atoi),
			envOr("RATE_LIMIT_BURST", 5, strconv.Atoi),
		),
	}
}

// DefaultEndpointConfigs returns the endpoint rules. Suggestions and export call slow
// collaborators and get perMinute requests with the given burst. Session creation gets
// a fixed moderate limit; edits and reads use the default limit.
func DefaultEndpointConfigs(perMinute, burst int) []EndpointConfig {
	collaborator := func(path string) EndpointConfig {
		return EndpointConfig{Path: path, Method: "POST", Limit: perMinute, Window: time.Minute, Burst: burst}
	}
	return []EndpointConfig{
		collaborator("/resume/suggestions/"),
		collaborator("/resume/experience/"),
		collaborator("/resume/education/"),
		collaborator("/resume/export"),
		{Path: "/sessions", Method: "POST", Limit: 30, Window: time.Minute, Burst: 10},
	}
}

func envOr[T any](key string, def T, parse func(string) (T, error)) T {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	v, err := parse(raw)
	if err != nil {
		return def
	}
	return v
}

// clientSet parses a comma-separated list of client addresses.
func clientSet(list string) map[string]bool {
	set := make(map[string]bool)
	for _, c := range strings.Split(list, ",") {
		if c = strings.TrimSpace(c); c != "" {
			set[c] = true
		}
	}
	return set
}
