// ABOUTME: Deterministic offline fixtures substituted when the backend is unreachable
// ABOUTME: Same data backs the store fallback and the mokom-mockd fixture server

package fixture

import (
	"context"
	"fmt"
	"time"

	"github.com/mokom/mokom-client/internal/chat"
)

// Source serves fixture conversations and placeholder message history. It
// implements chat.Source; generation is pure in the supplied clock so tests
// control bucketing.
type Source struct {
	now func() time.Time
}

// NewSource creates a fixture source. A nil clock defaults to time.Now.
func NewSource(now func() time.Time) *Source {
	if now == nil {
		now = time.Now
	}
	return &Source{now: now}
}

// Conversations returns the fixture conversation set: five literal entries
// plus two generated batches, enough to exercise scrolling, archive, and
// important handling offline.
func (s *Source) Conversations(_ context.Context) ([]chat.Conversation, error) {
	return Conversations(s.now()), nil
}

// Messages returns a placeholder greeting exchange for the conversation,
// with the reply attributed to the bound assistant when there is one.
func (s *Source) Messages(_ context.Context, conv chat.Conversation) ([]chat.Message, error) {
	return Messages(conv, s.now()), nil
}

// Conversations builds the fixture conversation set relative to now.
func Conversations(now time.Time) []chat.Conversation {
	ms := now.UnixMilli()

	convs := []chat.Conversation{
		{
			ID:           "chat-1",
			Title:        "Everyday small talk",
			UpdatedAt:    ms - 30*time.Minute.Milliseconds(),
			CreatedAt:    ms - 2*time.Hour.Milliseconds(),
			MessageCount: 5,
			Category:     chat.CategoryChat,
			Important:    true,
		},
		{
			ID:           "chat-2",
			Title:        "Weekend plans",
			UpdatedAt:    ms - 1*time.Hour.Milliseconds(),
			CreatedAt:    ms - 3*time.Hour.Milliseconds(),
			MessageCount: 8,
			Category:     chat.CategoryChat,
			Archived:     true,
		},
		bound("gpt4-1", "React project tuning", "gpt-4", "GPT-4", ms-3*time.Hour.Milliseconds(), ms-4*time.Hour.Milliseconds(), 12, true, false),
		bound("claude-1", "Chat with Claude 3", "claude-3", "Claude 3", ms-5*time.Hour.Milliseconds(), ms-6*time.Hour.Milliseconds(), 15, false, false),
		bound("code-1", "Python scraper project", "code-assistant", "Code Assistant", ms-24*time.Hour.Milliseconds(), ms-25*time.Hour.Milliseconds(), 8, false, true),
	}

	// Batch of assistant conversations spread one per day into the past.
	for i := 0; i < 15; i++ {
		age := int64(i+1) * 24 * time.Hour.Milliseconds()
		convs = append(convs, bound(
			fmt.Sprintf("claude-%d", i+2),
			fmt.Sprintf("Chat with Claude 3 (%d)", i+2),
			"claude-3", "Claude 3",
			ms-age, ms-age,
			(i*7)%20+1,
			i%5 == 0,
			i%7 == 0,
		))
	}

	// Batch of free-form chats, same spread.
	for i := 0; i < 10; i++ {
		age := int64(i+1) * 24 * time.Hour.Milliseconds()
		convs = append(convs, chat.Conversation{
			ID:           fmt.Sprintf("chat-%d", i+3),
			Title:        fmt.Sprintf("Casual topic %d", i+3),
			UpdatedAt:    ms - age,
			CreatedAt:    ms - age,
			MessageCount: (i*5)%15 + 1,
			Category:     chat.CategoryChat,
			Important:    i%4 == 0,
			Archived:     i%6 == 0,
		})
	}

	return convs
}

// Messages builds the placeholder greeting pair for a conversation.
func Messages(conv chat.Conversation, now time.Time) []chat.Message {
	ms := now.UnixMilli()

	name := "the casual chat assistant"
	if conv.AssistantName != nil && *conv.AssistantName != "" {
		name = *conv.AssistantName
	}

	reply := chat.Message{
		ID:        "2",
		Role:      chat.RoleAssistant,
		Content:   fmt.Sprintf("Hello! I am %s. How can I help you?", name),
		Timestamp: ms - 9*time.Minute.Milliseconds(),
	}
	if conv.AssistantID != nil {
		reply.AssistantID = *conv.AssistantID
	}
	if conv.AssistantName != nil {
		reply.AssistantName = *conv.AssistantName
	}

	return []chat.Message{
		{
			ID:        "1",
			Role:      chat.RoleUser,
			Content:   "Hi there!",
			Timestamp: ms - 10*time.Minute.Milliseconds(),
		},
		reply,
	}
}

// bound builds an assistant-bound fixture conversation
func bound(id, title, assistantID, assistantName string, updated, created int64, count int, important, archived bool) chat.Conversation {
	return chat.Conversation{
		ID:            id,
		Title:         title,
		AssistantID:   &assistantID,
		AssistantName: &assistantName,
		UpdatedAt:     updated,
		CreatedAt:     created,
		MessageCount:  count,
		Category:      chat.CategoryAssistant,
		Important:     important,
		Archived:      archived,
	}
}
