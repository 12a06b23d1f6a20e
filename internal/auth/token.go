// ABOUTME: Bearer token storage: MOKOM_TOKEN env var or a token file under XDG config
// ABOUTME: A 401 from the backend clears the stored token so the next run prompts re-login

package auth

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoToken is returned when no bearer token is configured
var ErrNoToken = errors.New("no token configured")

// envToken is checked before the token file
const envToken = "MOKOM_TOKEN"

// TokenStore reads and clears the bearer token attached to every request.
// The env var wins over the file; clearing only affects the file, since the
// process cannot unset the caller's environment meaningfully.
type TokenStore struct {
	path string
}

// NewTokenStore creates a token store. An empty path defaults to
// $XDG_CONFIG_HOME/mokom/token (falling back to ~/.config).
func NewTokenStore(path string) *TokenStore {
	if path == "" {
		path = defaultTokenPath()
	}
	return &TokenStore{path: path}
}

// Load returns the configured token, or ErrNoToken if none is set.
func (t *TokenStore) Load() (string, error) {
	if token := os.Getenv(envToken); token != "" {
		return token, nil
	}
	data, err := os.ReadFile(t.path)
	if err != nil {
		return "", ErrNoToken
	}
	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", ErrNoToken
	}
	return token, nil
}

// Save writes the token to the token file, creating parent directories.
func (t *TokenStore) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(t.path), 0o700); err != nil {
		return fmt.Errorf("creating token dir: %w", err)
	}
	if err := os.WriteFile(t.path, []byte(token+"\n"), 0o600); err != nil {
		return fmt.Errorf("writing token file: %w", err)
	}
	return nil
}

// Clear removes the token file. Missing file is not an error.
func (t *TokenStore) Clear() error {
	err := os.Remove(t.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing token file: %w", err)
	}
	return nil
}

// Expired reports whether the token is a JWT whose exp claim has passed.
// The signature is not verified; the server is the authority, this only
// saves a doomed request. Tokens that do not parse as JWTs report false.
func Expired(token string, now time.Time) bool {
	parser := jwt.NewParser()
	parsed, _, err := parser.ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return false
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Time.Before(now)
}

func defaultTokenPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join("mokom", "token")
		}
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "mokom", "token")
}
