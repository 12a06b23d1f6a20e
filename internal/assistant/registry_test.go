// ABOUTME: Tests for the assistant registry
// ABOUTME: Covers the one-shot fetch, fallback substitution, and lookup

package assistant

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLister struct {
	assistants []Assistant
	err        error
	calls      int
}

func (s *stubLister) ListAssistants(context.Context) ([]Assistant, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.assistants, nil
}

func TestRegistryLoadsFromBackend(t *testing.T) {
	lister := &stubLister{assistants: []Assistant{{ID: "gpt-4", Name: "GPT-4"}}}
	r := NewRegistry(lister, Defaults(), nil)

	assistants := r.Load(context.Background())

	require.Len(t, assistants, 1)
	assert.Equal(t, "gpt-4", assistants[0].ID)
}

func TestRegistryFetchesOnce(t *testing.T) {
	lister := &stubLister{assistants: []Assistant{{ID: "gpt-4", Name: "GPT-4"}}}
	r := NewRegistry(lister, nil, nil)

	r.Load(context.Background())
	r.Load(context.Background())

	assert.Equal(t, 1, lister.calls)
}

func TestRegistryFallsBackOnError(t *testing.T) {
	lister := &stubLister{err: errors.New("connection refused")}
	fallback := []Assistant{{ID: "claude-3", Name: "Claude 3"}}
	r := NewRegistry(lister, fallback, nil)

	assistants := r.Load(context.Background())

	require.Len(t, assistants, 1)
	assert.Equal(t, "claude-3", assistants[0].ID)

	// The failed fetch is not retried within the session
	r.Load(context.Background())
	assert.Equal(t, 1, lister.calls)
}

func TestRegistryGet(t *testing.T) {
	lister := &stubLister{assistants: Defaults()}
	r := NewRegistry(lister, nil, nil)

	a := r.Get(context.Background(), "code-assistant")
	require.NotNil(t, a)
	assert.Equal(t, "Code Assistant", a.Name)

	assert.Nil(t, r.Get(context.Background(), "nonexistent"))
}

func TestDefaultsAreWellFormed(t *testing.T) {
	defaults := Defaults()

	require.Len(t, defaults, 6)
	seen := map[string]bool{}
	for _, a := range defaults {
		assert.NotEmpty(t, a.ID)
		assert.NotEmpty(t, a.Name)
		assert.False(t, seen[a.ID], "duplicate assistant id %s", a.ID)
		seen[a.ID] = true
		assert.Contains(t, IconLabels, a.Icon)
	}
	assert.True(t, seen["general"])
}
