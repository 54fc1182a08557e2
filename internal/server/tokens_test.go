package server

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jonathan/resume-builder/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-jwt-signing-minimum-32-bytes"

func newTestTokens(ttl time.Duration) *Tokens {
	return NewTokens(&config.SessionConfig{Secret: testSecret, TTL: ttl})
}

func sign(t *testing.T, method jwt.SigningMethod, claims jwt.RegisteredClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(method, &Claims{RegisteredClaims: claims}).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func TestTokens_Issue(t *testing.T) {
	tokens := newTestTokens(24 * time.Hour)

	token, expires, err := tokens.Issue("session-1")
	require.NoError(t, err)
	assert.Len(t, strings.Split(token, "."), 3)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), expires, time.Minute)

	claims, err := tokens.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "session-1", claims.GetSessionID())
	assert.Equal(t, tokenIssuer, claims.Issuer)

	_, _, err = tokens.Issue("")
	assert.Error(t, err)
}

func TestTokens_ParseRejects(t *testing.T) {
	tokens := newTestTokens(24 * time.Hour)
	other := NewTokens(&config.SessionConfig{Secret: "a-completely-different-secret", TTL: time.Hour})
	foreign, _, err := other.Issue("session-1")
	require.NoError(t, err)

	future := jwt.NewNumericDate(time.Now().Add(time.Hour))

	tests := []struct {
		name    string
		token   string
		wantErr string
	}{
		{name: "empty", token: "", wantErr: "empty"},
		{name: "garbage", token: "not.a.token", wantErr: "malformed"},
		{name: "wrong secret", token: foreign, wantErr: "signature"},
		{
			name: "expired",
			token: sign(t, jwt.SigningMethodHS256, jwt.RegisteredClaims{
				Issuer: tokenIssuer, Subject: "session-1", ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			}),
			wantErr: "expired",
		},
		{
			name:    "no expiry",
			token:   sign(t, jwt.SigningMethodHS256, jwt.RegisteredClaims{Issuer: tokenIssuer, Subject: "session-1"}),
			wantErr: "invalid token",
		},
		{
			name:    "other issuer",
			token:   sign(t, jwt.SigningMethodHS256, jwt.RegisteredClaims{Issuer: "someone-else", Subject: "session-1", ExpiresAt: future}),
			wantErr: "invalid token",
		},
		{
			name:    "missing session",
			token:   sign(t, jwt.SigningMethodHS256, jwt.RegisteredClaims{Issuer: tokenIssuer, ExpiresAt: future}),
			wantErr: "no session",
		},
		{
			name:    "unexpected algorithm",
			token:   sign(t, jwt.SigningMethodHS512, jwt.RegisteredClaims{Issuer: tokenIssuer, Subject: "session-1", ExpiresAt: future}),
			wantErr: "signature",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := tokens.Parse(tt.token)
			require.Error(t, err)
			assert.Nil(t, claims)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestTokens_ValidateToken(t *testing.T) {
	tokens := newTestTokens(time.Hour)
	token, _, err := tokens.Issue("abc")
	require.NoError(t, err)

	got, err := tokens.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "abc", got.GetSessionID())

	got, err = tokens.ValidateToken("junk")
	assert.Error(t, err)
	assert.Nil(t, got)
}
