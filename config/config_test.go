package config

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	for _, k := range []string{"GO_ENV", "HOST", "PORT", "ALLOWED_ORIGINS", "OPEN_BROWSER", "PUBLIC_URL", "EMAIL_PROVIDER"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "localhost:8000", cfg.Addr())
	assert.Empty(t, cfg.AllowedOrigins)
	assert.False(t, cfg.OpenBrowser)
	assert.Equal(t, "http://localhost:8000/", cfg.PublicURL)
	assert.Equal(t, "noop", cfg.Email.Provider)
}

func TestParse_FromEnv(t *testing.T) {
	t.Setenv("GO_ENV", "production")
	t.Setenv("HOST", "0.0.0.0")
	t.Setenv("PORT", "9000")
	t.Setenv("ALLOWED_ORIGINS", "http://a.test,http://b.test")
	t.Setenv("OPEN_BROWSER", "true")
	t.Setenv("PUBLIC_URL", "https://party.example.com")
	t.Setenv("EMAIL_PROVIDER", "ses")
	t.Setenv("EMAIL_FROM_ADDRESS", "party@example.com")
	t.Setenv("AWS_REGION", "eu-west-1")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "0.0.0.0:9000", cfg.Addr())
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.AllowedOrigins)
	assert.True(t, cfg.OpenBrowser)
	assert.Equal(t, "https://party.example.com", cfg.PublicURL)
	assert.Equal(t, "ses", cfg.Email.Provider)
	assert.Equal(t, "party@example.com", cfg.Email.FromAddress)
	assert.Equal(t, "eu-west-1", cfg.Email.AWSRegion)
}

func TestParse_InvalidBool(t *testing.T) {
	t.Setenv("OPEN_BROWSER", "maybe")

	_, err := Parse()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "production", "warn")

	logger.Info("hidden")
	logger.Warn("shown", "k", "v")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "shown", rec["msg"])
	assert.Equal(t, "v", rec["k"])

	text := newLogger(&buf, "development", "")
	assert.True(t, text.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, text.Enabled(context.Background(), slog.LevelDebug))
}
