// ABOUTME: Fixture backend implementing the client's endpoint contract in memory
// ABOUTME: Lets the TUI run end to end without the real backend; no persistence, no AI

package mockapi

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mokom/mokom-client/internal/assistant"
	"github.com/mokom/mokom-client/internal/chat"
	"github.com/mokom/mokom-client/internal/fixture"
)

// Server holds the in-memory fixture state behind the HTTP handlers.
type Server struct {
	logger *slog.Logger
	now    func() time.Time

	mu            sync.Mutex
	conversations []chat.Conversation
	messages      map[string][]chat.Message
	assistants    []assistant.Assistant
}

// New creates a server seeded from the fixture data. A nil clock defaults
// to time.Now.
func New(logger *slog.Logger, now func() time.Time) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if now == nil {
		now = time.Now
	}

	s := &Server{
		logger:        logger.With("component", "mockapi"),
		now:           now,
		conversations: fixture.Conversations(now()),
		messages:      map[string][]chat.Message{},
		assistants:    fixture.Assistants(),
	}
	for _, conv := range s.conversations {
		s.messages[conv.ID] = fixture.Messages(conv, now())
	}
	return s
}

// Router builds the HTTP routes for the fixture backend.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.StripSlashes)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"status":"ok"}`))
		})

		r.Post("/chat", s.handleChat)

		r.Get("/conversations", s.handleListConversations)
		r.Get("/conversations/{conversationID}", s.handleGetMessages)
		r.Put("/conversations/{conversationID}", s.handleUpdateConversation)
		r.Delete("/conversations/{conversationID}", s.handleDeleteConversation)

		r.Get("/assistants", s.handleListAssistants)
		r.Post("/assistants", s.handleCreateAssistant)
		r.Put("/assistants/{assistantID}", s.handleUpdateAssistant)
		r.Delete("/assistants/{assistantID}", s.handleDeleteAssistant)

		r.Post("/upload", s.handleUpload)
		r.Post("/livekit/token", s.handleVoiceToken)
	})

	return r
}
