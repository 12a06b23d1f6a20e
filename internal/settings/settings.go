// ABOUTME: In-memory user settings with export/import and confirmation-gated reset
// ABOUTME: Settings are discarded on exit; only explicit export writes anything

package settings

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
)

// Settings holds the user preferences for the session. Keys are free-form;
// the defaults cover the options the settings panel exposes.
type Settings struct {
	logger *slog.Logger

	mu     sync.Mutex
	values map[string]any
}

// defaults returns the baseline preference set
func defaults() map[string]any {
	return map[string]any{
		"theme":         "dark",
		"language":      "en",
		"send_on_enter": true,
		"notifications": true,
	}
}

// New creates a settings instance with defaults applied.
func New(logger *slog.Logger) *Settings {
	if logger == nil {
		logger = slog.Default()
	}
	return &Settings{
		logger: logger.With("component", "settings"),
		values: defaults(),
	}
}

// Get returns the value for key, or nil when unset.
func (s *Settings) Get(key string) any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.values[key]
}

// Set stores a value.
func (s *Settings) Set(key string, value any) {
	s.mu.Lock()
	s.values[key] = value
	s.mu.Unlock()
	s.logger.Debug("setting changed", "key", key)
}

// Snapshot returns a copy of all values, for export.
func (s *Settings) Snapshot() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]any, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}

// Import replaces all values with the given JSON object.
func (s *Settings) Import(data []byte) error {
	var values map[string]any
	if err := json.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("parsing settings: %w", err)
	}

	s.mu.Lock()
	s.values = values
	s.mu.Unlock()
	return nil
}

// ClearAll resets every setting to its default after the confirm callback
// approves. Returns whether the reset happened; cancellation leaves the
// values untouched.
func (s *Settings) ClearAll(confirm func() bool) bool {
	if confirm == nil || !confirm() {
		return false
	}

	s.mu.Lock()
	s.values = defaults()
	s.mu.Unlock()

	s.logger.Debug("settings cleared")
	return true
}
