// ABOUTME: HTTP handlers for the fixture backend
// ABOUTME: Chat replies are canned; mutations only touch the in-memory state

package mockapi

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mokom/mokom-client/internal/assistant"
	"github.com/mokom/mokom-client/internal/chat"
)

// chatRequest mirrors the client's POST /api/chat body
type chatRequest struct {
	Message     string `json:"message"`
	AssistantID string `json:"assistant_id"`
	SessionID   string `json:"session_id"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Message == "" {
		http.Error(w, "message is required", http.StatusBadRequest)
		return
	}

	name := "MOKOM General Assistant"
	id := "general"
	s.mu.Lock()
	for _, a := range s.assistants {
		if a.ID == req.AssistantID {
			id = a.ID
			name = a.Name
			break
		}
	}
	s.mu.Unlock()

	now := s.now().UnixMilli()
	reply := fmt.Sprintf("This is %s. You said: %q. A real backend would answer properly.", name, req.Message)

	// Record the exchange so a later history fetch sees it
	s.mu.Lock()
	s.messages[req.SessionID] = append(s.messages[req.SessionID],
		chat.Message{
			ID:        uuid.New().String(),
			Role:      chat.RoleUser,
			Content:   req.Message,
			Timestamp: now,
		},
		chat.Message{
			ID:            uuid.New().String(),
			Role:          chat.RoleAssistant,
			Content:       reply,
			Timestamp:     now,
			AssistantID:   id,
			AssistantName: name,
		})
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{
		"response":       reply,
		"assistant_id":   id,
		"assistant_name": name,
		"session_id":     req.SessionID,
		"timestamp":      now,
	})
}

func (s *Server) handleListConversations(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	conversations := append([]chat.Conversation(nil), s.conversations...)
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{"conversations": conversations})
}

func (s *Server) handleGetMessages(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "conversationID")

	s.mu.Lock()
	messages, ok := s.messages[id]
	messages = append([]chat.Message(nil), messages...)
	s.mu.Unlock()

	if !ok {
		http.Error(w, "conversation not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"messages": messages})
}

// conversationUpdate mirrors the client's PUT body; nil fields are no-ops
type conversationUpdate struct {
	Title     *string `json:"title"`
	Archived  *bool   `json:"archived"`
	Important *bool   `json:"important"`
}

func (s *Server) handleUpdateConversation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "conversationID")

	var update conversationUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.conversations {
		if s.conversations[i].ID != id {
			continue
		}
		if update.Title != nil {
			s.conversations[i].Title = *update.Title
		}
		if update.Archived != nil {
			s.conversations[i].Archived = *update.Archived
		}
		if update.Important != nil {
			s.conversations[i].Important = *update.Important
		}
		writeJSON(w, http.StatusOK, s.conversations[i])
		return
	}
	http.Error(w, "conversation not found", http.StatusNotFound)
}

func (s *Server) handleDeleteConversation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "conversationID")

	s.mu.Lock()
	kept := s.conversations[:0]
	for _, c := range s.conversations {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	s.conversations = kept
	delete(s.messages, id)
	s.mu.Unlock()

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListAssistants(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	assistants := append([]assistant.Assistant(nil), s.assistants...)
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{"assistants": assistants})
}

// assistantCreate mirrors the client's POST /api/assistants body
type assistantCreate struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Icon         string   `json:"icon"`
	Capabilities []string `json:"capabilities"`
	Customizable bool     `json:"customizable"`
}

func (s *Server) handleCreateAssistant(w http.ResponseWriter, r *http.Request) {
	var create assistantCreate
	if err := json.NewDecoder(r.Body).Decode(&create); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if create.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}

	a := assistant.Assistant{
		ID:           uuid.New().String(),
		Name:         create.Name,
		Description:  create.Description,
		Icon:         create.Icon,
		Enabled:      true,
		Customizable: create.Customizable,
		Status:       assistant.StatusIdle,
		Category:     assistant.CategoryProfessional,
		Capabilities: create.Capabilities,
	}

	s.mu.Lock()
	s.assistants = append(s.assistants, a)
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, a)
}

// assistantUpdate mirrors the client's PUT body; nil fields are no-ops
type assistantUpdate struct {
	Name         *string  `json:"name"`
	Description  *string  `json:"description"`
	Icon         *string  `json:"icon"`
	Capabilities []string `json:"capabilities"`
	Enabled      *bool    `json:"enabled"`
	Customizable *bool    `json:"customizable"`
}

func (s *Server) handleUpdateAssistant(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "assistantID")

	var update assistantUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.assistants {
		if s.assistants[i].ID != id {
			continue
		}
		a := &s.assistants[i]
		if update.Name != nil {
			a.Name = *update.Name
		}
		if update.Description != nil {
			a.Description = *update.Description
		}
		if update.Icon != nil {
			a.Icon = *update.Icon
		}
		if update.Capabilities != nil {
			a.Capabilities = update.Capabilities
		}
		if update.Enabled != nil {
			a.Enabled = *update.Enabled
		}
		if update.Customizable != nil {
			a.Customizable = *update.Customizable
		}
		writeJSON(w, http.StatusOK, *a)
		return
	}
	http.Error(w, "assistant not found", http.StatusNotFound)
}

func (s *Server) handleDeleteAssistant(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "assistantID")

	s.mu.Lock()
	kept := s.assistants[:0]
	for _, a := range s.assistants {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	s.assistants = kept
	s.mu.Unlock()

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	id := uuid.New().String()
	writeJSON(w, http.StatusOK, map[string]any{
		"file_id":   id,
		"file_url":  fmt.Sprintf("/files/%s/%s", id, header.Filename),
		"file_type": header.Header.Get("Content-Type"),
	})
}

// voiceTokenRequest mirrors the client's POST /api/livekit/token body
type voiceTokenRequest struct {
	RoomName        string `json:"room_name"`
	ParticipantName string `json:"participant_name"`
}

func (s *Server) handleVoiceToken(w http.ResponseWriter, r *http.Request) {
	var req voiceTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.RoomName == "" || req.ParticipantName == "" {
		http.Error(w, "room_name and participant_name are required", http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"token":    "mock-" + uuid.New().String(),
		"room_url": "wss://localhost:7880/" + req.RoomName,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
