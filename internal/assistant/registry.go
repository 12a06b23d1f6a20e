// ABOUTME: Registry loads the assistant list from the backend with a fixture fallback
// ABOUTME: Assistants are fetched once and cached for the lifetime of the process

package assistant

import (
	"context"
	"log/slog"
	"sync"
)

// Lister fetches the assistant list from the backend
type Lister interface {
	ListAssistants(ctx context.Context) ([]Assistant, error)
}

// Registry holds the assistant list for the client session. The list is
// fetched once; a fetch failure substitutes the fallback set so the UI
// remains usable offline.
type Registry struct {
	lister   Lister
	fallback []Assistant
	logger   *slog.Logger

	mu         sync.Mutex
	assistants []Assistant
	loaded     bool
}

// NewRegistry creates a registry backed by the given lister. The fallback
// set is used whenever the remote fetch fails.
func NewRegistry(lister Lister, fallback []Assistant, logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		lister:   lister,
		fallback: fallback,
		logger:   logger.With("component", "assistants"),
	}
}

// Load returns the assistant list, fetching it on first call.
func (r *Registry) Load(ctx context.Context) []Assistant {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.loaded {
		return append([]Assistant(nil), r.assistants...)
	}

	assistants, err := r.lister.ListAssistants(ctx)
	if err != nil {
		r.logger.Warn("assistant fetch failed, using fallback set", "error", err)
		assistants = append([]Assistant(nil), r.fallback...)
	}

	r.assistants = assistants
	r.loaded = true
	return append([]Assistant(nil), r.assistants...)
}

// Get returns the assistant with the given ID, or nil if unknown.
func (r *Registry) Get(ctx context.Context, id string) *Assistant {
	for _, a := range r.Load(ctx) {
		if a.ID == id {
			return &a
		}
	}
	return nil
}
