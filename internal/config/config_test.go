// ABOUTME: Tests for configuration loading
// ABOUTME: Covers defaults, env expansion, duration parsing, and validation

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	t.Setenv("MOKOM_API_BASE", "")

	cfg := Default()

	assert.Equal(t, "http://localhost:8000", cfg.API.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, "mokom-voice", cfg.Voice.Room)
	require.NoError(t, cfg.Validate())
}

func TestLoadFullConfig(t *testing.T) {
	t.Setenv("MOKOM_API_BASE", "")
	path := writeConfig(t, `
api:
  base_url: https://chat.example.com
  timeout: 45s
auth:
  token_path: /tmp/mokom-token
logging:
  level: debug
  format: json
voice:
  room: standup
  participant: alice
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://chat.example.com", cfg.API.BaseURL)
	assert.Equal(t, 45*time.Second, cfg.API.Timeout)
	assert.Equal(t, "/tmp/mokom-token", cfg.Auth.TokenPath)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "standup", cfg.Voice.Room)
	assert.Equal(t, "alice", cfg.Voice.Participant)
}

func TestLoadExpandsEnvVars(t *testing.T) {
	t.Setenv("MOKOM_API_BASE", "")
	t.Setenv("CHAT_HOST", "backend.internal")
	path := writeConfig(t, `
api:
  base_url: https://${CHAT_HOST}:8443
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://backend.internal:8443", cfg.API.BaseURL)
}

func TestLoadUnsetEnvVarBecomesEmpty(t *testing.T) {
	t.Setenv("MOKOM_API_BASE", "")
	os.Unsetenv("DEFINITELY_NOT_SET_ANYWHERE")
	path := writeConfig(t, `
voice:
  participant: ${DEFINITELY_NOT_SET_ANYWHERE}
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	// Empty after expansion, so the default fills in
	assert.Equal(t, "mokom-user", cfg.Voice.Participant)
}

func TestLoadEnvBaseOverridesFile(t *testing.T) {
	t.Setenv("MOKOM_API_BASE", "http://override:9000")
	path := writeConfig(t, `
api:
  base_url: https://from-file.example.com
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://override:9000", cfg.API.BaseURL)
}

func TestLoadAppliesDefaultsToPartialFile(t *testing.T) {
	t.Setenv("MOKOM_API_BASE", "")
	path := writeConfig(t, `
logging:
  level: warn
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000", cfg.API.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestLoadBadDuration(t *testing.T) {
	t.Setenv("MOKOM_API_BASE", "")
	path := writeConfig(t, `
api:
  timeout: not-a-duration
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing durations")
}

func TestLoadBadLogFormat(t *testing.T) {
	t.Setenv("MOKOM_API_BASE", "")
	path := writeConfig(t, `
logging:
  format: xml
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.format")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}
