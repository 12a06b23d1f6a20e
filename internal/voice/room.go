// ABOUTME: Stub voice room: token fetch plus toggled local state, no transport
// ABOUTME: Joining only records the grant; audio/video is out of scope

package voice

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// TokenSource fetches a voice room access token from the backend
type TokenSource interface {
	VoiceToken(ctx context.Context, room, participant string) (token, roomURL string, err error)
}

// Status is a snapshot of the room state
type Status struct {
	Room       string
	RoomURL    string
	Connected  bool
	MicEnabled bool
}

// Room tracks the stub voice session for one named room. The connected and
// mic flags are local booleans only.
type Room struct {
	name        string
	participant string
	tokens      TokenSource
	logger      *slog.Logger

	mu         sync.Mutex
	token      string
	roomURL    string
	connected  bool
	micEnabled bool
}

// NewRoom creates a room bound to the given token source.
func NewRoom(name, participant string, tokens TokenSource, logger *slog.Logger) *Room {
	if logger == nil {
		logger = slog.Default()
	}
	return &Room{
		name:        name,
		participant: participant,
		tokens:      tokens,
		logger:      logger.With("component", "voice"),
	}
}

// Join fetches an access token and marks the room connected. The mic
// starts enabled, matching the widget's default.
func (r *Room) Join(ctx context.Context) error {
	token, roomURL, err := r.tokens.VoiceToken(ctx, r.name, r.participant)
	if err != nil {
		return fmt.Errorf("joining voice room: %w", err)
	}

	r.mu.Lock()
	r.token = token
	r.roomURL = roomURL
	r.connected = true
	r.micEnabled = true
	r.mu.Unlock()

	r.logger.Debug("voice room joined", "room", r.name, "url", roomURL)
	return nil
}

// Leave drops the local session state.
func (r *Room) Leave() {
	r.mu.Lock()
	r.token = ""
	r.roomURL = ""
	r.connected = false
	r.micEnabled = false
	r.mu.Unlock()

	r.logger.Debug("voice room left", "room", r.name)
}

// ToggleMic flips the mic flag and returns the new value. No-op while
// disconnected.
func (r *Room) ToggleMic() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.connected {
		return false
	}
	r.micEnabled = !r.micEnabled
	return r.micEnabled
}

// Status returns a snapshot of the room state.
func (r *Room) Status() Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Status{
		Room:       r.name,
		RoomURL:    r.roomURL,
		Connected:  r.connected,
		MicEnabled: r.micEnabled,
	}
}
