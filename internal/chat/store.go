// ABOUTME: Store is the single source of truth for conversations and the active thread
// ABOUTME: All mutation flows through its methods so the list and current view never diverge

package chat

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mokom/mokom-client/internal/assistant"
)

// Title rewrite keeps the first titleSliceLen characters of the first message
const titleSliceLen = 20

// Default titles assigned at creation; a conversation still carrying one is
// considered untitled and gets its title derived from the first sent message.
const (
	defaultChatTitle         = "New casual chat"
	defaultAssistantTitleFmt = "Chat with %s"
)

// errorMessageText is appended as a system message when a send fails
const errorMessageText = "Failed to send message. Please try again."

// Store owns the conversation list, the current conversation, and its
// message buffer. Methods are safe for concurrent use; the loading flag is
// global to the chat surface, so concurrent sends are serialized by callers.
type Store struct {
	source   Source
	fixtures Source
	sender   Sender
	logger   *slog.Logger

	mu            sync.Mutex
	conversations []Conversation
	current       *Conversation
	messages      []Message
	selected      *assistant.Assistant
	loading       bool

	// epoch increments whenever the message buffer is replaced. In-flight
	// sends capture it so a reply landing after navigation updates the list
	// entry without being appended to a buffer it does not belong to.
	epoch uint64

	now func() time.Time
}

// NewStore creates a store. The fixture source is substituted whenever the
// remote source fails, keeping the UI exercisable offline.
func NewStore(source, fixtures Source, sender Sender, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		source:   source,
		fixtures: fixtures,
		sender:   sender,
		logger:   logger.With("component", "chat"),
		now:      time.Now,
	}
}

// LoadConversations fetches the conversation list, replacing any prior list
// wholesale. On fetch failure the fixture set is substituted.
func (s *Store) LoadConversations(ctx context.Context) error {
	convs, err := s.source.Conversations(ctx)
	if err != nil {
		s.logger.Warn("conversation list fetch failed, using fixtures", "error", err)
		convs, err = s.fixtures.Conversations(ctx)
		if err != nil {
			return fmt.Errorf("loading fixture conversations: %w", err)
		}
	}

	s.mu.Lock()
	s.conversations = convs
	s.mu.Unlock()

	s.logger.Debug("conversations loaded", "count", len(convs))
	return nil
}

// NewConversation creates a conversation bound to the given assistant, or a
// free-form chat when a is nil. The conversation is prepended to the list
// and made current with an empty message buffer. Purely local; no network.
func (s *Store) NewConversation(a *assistant.Assistant) Conversation {
	now := s.now().UnixMilli()

	conv := Conversation{
		UpdatedAt: now,
		CreatedAt: now,
	}
	if a == nil {
		conv.ID = fmt.Sprintf("chat-%d", now)
		conv.Title = defaultChatTitle
		conv.Category = CategoryChat
	} else {
		conv.ID = fmt.Sprintf("%s-%d", a.ID, now)
		conv.Title = fmt.Sprintf(defaultAssistantTitleFmt, a.Name)
		conv.AssistantID = &a.ID
		conv.AssistantName = &a.Name
		conv.Category = CategoryAssistant
	}

	s.mu.Lock()
	s.conversations = append([]Conversation{conv}, s.conversations...)
	cur := conv
	s.current = &cur
	s.messages = nil
	s.selected = a
	s.epoch++
	s.mu.Unlock()

	s.logger.Debug("conversation created", "id", conv.ID, "category", conv.Category)
	return conv
}

// OpenConversation makes the conversation current and loads its history.
// On fetch failure the fixture source substitutes placeholder messages.
// The selected assistant is resolved from the conversation's binding.
func (s *Store) OpenConversation(ctx context.Context, conv Conversation) error {
	s.mu.Lock()
	cur := conv
	s.current = &cur
	if conv.AssistantID != nil {
		name := ""
		if conv.AssistantName != nil {
			name = *conv.AssistantName
		}
		s.selected = &assistant.Assistant{
			ID:           *conv.AssistantID,
			Name:         name,
			Icon:         "general",
			Enabled:      true,
			Customizable: true,
			Status:       assistant.StatusIdle,
			Category:     assistant.CategoryProfessional,
		}
	} else {
		s.selected = nil
	}
	s.mu.Unlock()

	msgs, err := s.source.Messages(ctx, conv)
	if err != nil {
		s.logger.Warn("message history fetch failed, using placeholders",
			"conversation_id", conv.ID,
			"error", err)
		msgs, err = s.fixtures.Messages(ctx, conv)
		if err != nil {
			return fmt.Errorf("loading fixture messages: %w", err)
		}
	}

	s.mu.Lock()
	// Only install the history if the user has not navigated away while the
	// fetch was in flight.
	if s.current != nil && s.current.ID == conv.ID {
		s.messages = msgs
		s.epoch++
	}
	s.mu.Unlock()

	s.logger.Debug("conversation opened", "id", conv.ID, "messages", len(msgs))
	return nil
}

// SendMessage appends the user message immediately, then calls the chat
// endpoint. On success the assistant reply is appended and the conversation
// entry updated; on failure a system error message is appended instead. The
// optimistic user message is never rolled back. An empty message with no
// attachments, or no current conversation, is silently ignored.
func (s *Store) SendMessage(ctx context.Context, content string, attachments []Attachment) error {
	if strings.TrimSpace(content) == "" && len(attachments) == 0 {
		return nil
	}

	s.mu.Lock()
	if s.current == nil {
		s.mu.Unlock()
		return nil
	}
	targetID := s.current.ID
	epoch := s.epoch

	userMsg := Message{
		ID:          uuid.New().String(),
		Role:        RoleUser,
		Content:     content,
		Timestamp:   s.now().UnixMilli(),
		Attachments: attachments,
	}
	s.messages = append(s.messages, userMsg)
	s.loading = true

	req := &SendRequest{
		Message:   content,
		SessionID: targetID,
	}
	if s.selected != nil {
		req.AssistantID = s.selected.ID
	}
	s.mu.Unlock()

	result, err := s.sender.SendChat(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false

	if err != nil {
		s.logger.Warn("send failed", "conversation_id", targetID, "error", err)
		if s.current != nil && s.current.ID == targetID && s.epoch == epoch {
			s.messages = append(s.messages, Message{
				ID:        uuid.New().String(),
				Role:      RoleSystem,
				Content:   errorMessageText,
				Timestamp: s.now().UnixMilli(),
			})
		}
		return nil
	}

	reply := Message{
		ID:            uuid.New().String(),
		Role:          RoleAssistant,
		Content:       result.Response,
		Timestamp:     result.Timestamp,
		AssistantID:   result.AssistantID,
		AssistantName: result.AssistantName,
	}
	// Append to the visible buffer only if the target conversation is still
	// the one on screen; the list entry is updated either way so the round
	// trip is never lost.
	if s.current != nil && s.current.ID == targetID && s.epoch == epoch {
		s.messages = append(s.messages, reply)
	} else {
		s.logger.Debug("reply for background conversation", "conversation_id", targetID)
	}

	now := s.now().UnixMilli()
	for i := range s.conversations {
		if s.conversations[i].ID != targetID {
			continue
		}
		c := &s.conversations[i]
		// Title derives from the first message: evaluated against the latest
		// persisted count, not the one captured when the send started.
		if c.MessageCount == 0 {
			c.Title = deriveTitle(content)
		}
		c.UpdatedAt = now
		c.MessageCount += 2
		if s.current != nil && s.current.ID == targetID {
			cur := *c
			s.current = &cur
		}
		break
	}

	s.logger.Debug("message round trip complete",
		"conversation_id", targetID,
		"assistant_id", reply.AssistantID)
	return nil
}

// DeleteConversation removes the conversation from the list. Deleting the
// current conversation clears the current view, the message buffer, and the
// selected assistant. Local only; the backend copy is untouched.
func (s *Store) DeleteConversation(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.conversations[:0]
	for _, c := range s.conversations {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	s.conversations = kept

	if s.current != nil && s.current.ID == id {
		s.current = nil
		s.messages = nil
		s.selected = nil
		s.epoch++
	}
	s.logger.Debug("conversation deleted", "id", id)
}

// RenameConversation replaces the title of the matching entry, mirroring the
// change into the current conversation when it is the one renamed.
func (s *Store) RenameConversation(id, title string) {
	s.patch(id, func(c *Conversation) {
		c.Title = title
	})
}

// ArchiveConversation sets the archived flag on the matching entry.
func (s *Store) ArchiveConversation(id string, archived bool) {
	s.patch(id, func(c *Conversation) {
		c.Archived = archived
	})
}

// ToggleImportant sets the important flag on the matching entry.
func (s *Store) ToggleImportant(id string, important bool) {
	s.patch(id, func(c *Conversation) {
		c.Important = important
	})
}

// patch applies fn to the matching list entry and mirrors the result into
// the current conversation if it is the same one. The dual write keeps the
// list row and the header view of a conversation from diverging.
func (s *Store) patch(id string, fn func(*Conversation)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.conversations {
		if s.conversations[i].ID != id {
			continue
		}
		fn(&s.conversations[i])
		if s.current != nil && s.current.ID == id {
			cur := s.conversations[i]
			s.current = &cur
		}
		return
	}
}

// Conversations returns a copy of the conversation list.
func (s *Store) Conversations() []Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Conversation(nil), s.conversations...)
}

// Current returns a copy of the current conversation, or nil.
func (s *Store) Current() *Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	cur := *s.current
	return &cur
}

// Messages returns a copy of the current message buffer.
func (s *Store) Messages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Message(nil), s.messages...)
}

// Selected returns the assistant bound to the current conversation, or nil
// for a free-form chat.
func (s *Store) Selected() *assistant.Assistant {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == nil {
		return nil
	}
	sel := *s.selected
	return &sel
}

// Loading reports whether a send is in flight.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// deriveTitle builds a conversation title from the first sent message
func deriveTitle(content string) string {
	runes := []rune(content)
	if len(runes) > titleSliceLen {
		runes = runes[:titleSliceLen]
	}
	return string(runes) + "..."
}
