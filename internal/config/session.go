package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"time"
)

const (
	// DefaultSessionTTL is how long a session token stays valid.
	DefaultSessionTTL = 24 * time.Hour
	minSecretLength   = 16
)

// SessionConfig holds the signing secret and lifetime of session tokens.
type SessionConfig struct {
	Secret string
	TTL    time.Duration
	// Ephemeral is set when Secret was generated at startup. Tokens then die with
	// the process, as the sessions they point at do.
	Ephemeral bool
}

// NewSessionConfig reads SESSION_SECRET and SESSION_TTL (a Go duration, default 24h).
// Without SESSION_SECRET a random secret is generated.
func NewSessionConfig() (*SessionConfig, error) {
	cfg := &SessionConfig{
		Secret: os.Getenv("SESSION_SECRET"),
		TTL:    DefaultSessionTTL,
	}

	if raw := os.Getenv("SESSION_TTL"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid SESSION_TTL: %w", err)
		}
		cfg.TTL = ttl
	}

	if cfg.Secret == "" {
		secret, err := randomSecret()
		if err != nil {
			return nil, err
		}
		cfg.Secret = secret
		cfg.Ephemeral = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the secret length and lifetime.
func (c *SessionConfig) Validate() error {
	if len(c.Secret) < minSecretLength {
		return fmt.Errorf("SESSION_SECRET must be at least %d characters", minSecretLength)
	}
	if c.TTL < time.Minute {
		return fmt.Errorf("SESSION_TTL must be at least 1m, got: %s", c.TTL)
	}
	return nil
}

func randomSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate session secret: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
