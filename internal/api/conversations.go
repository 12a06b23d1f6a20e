// ABOUTME: Conversation endpoints: list, message history, update, delete
// ABOUTME: Implements chat.Source for the store's remote path

package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mokom/mokom-client/internal/chat"
)

// conversationsResponse is the JSON response from GET /api/conversations
type conversationsResponse struct {
	Conversations []chat.Conversation `json:"conversations"`
}

// messagesResponse is the JSON response from GET /api/conversations/{id}
type messagesResponse struct {
	Messages []chat.Message `json:"messages"`
}

// ConversationUpdate carries the mutable conversation fields for PUT.
// Nil fields are left unchanged by the server.
type ConversationUpdate struct {
	Title     *string `json:"title,omitempty"`
	Archived  *bool   `json:"archived,omitempty"`
	Important *bool   `json:"important,omitempty"`
}

// Conversations fetches the full conversation list.
func (c *Client) Conversations(ctx context.Context) ([]chat.Conversation, error) {
	var resp conversationsResponse
	if err := c.do(ctx, http.MethodGet, "/api/conversations", nil, &resp); err != nil {
		return nil, fmt.Errorf("fetching conversations: %w", err)
	}
	return resp.Conversations, nil
}

// Messages fetches the message history for a conversation.
func (c *Client) Messages(ctx context.Context, conv chat.Conversation) ([]chat.Message, error) {
	var resp messagesResponse
	if err := c.do(ctx, http.MethodGet, "/api/conversations/"+conv.ID, nil, &resp); err != nil {
		return nil, fmt.Errorf("fetching messages for %s: %w", conv.ID, err)
	}
	return resp.Messages, nil
}

// UpdateConversation pushes title/flag changes to the backend.
func (c *Client) UpdateConversation(ctx context.Context, id string, update ConversationUpdate) error {
	if err := c.do(ctx, http.MethodPut, "/api/conversations/"+id, update, nil); err != nil {
		return fmt.Errorf("updating conversation %s: %w", id, err)
	}
	return nil
}

// DeleteConversation removes a conversation on the backend.
func (c *Client) DeleteConversation(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/api/conversations/"+id, nil, nil); err != nil {
		return fmt.Errorf("deleting conversation %s: %w", id, err)
	}
	return nil
}
