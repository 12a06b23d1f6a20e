// ABOUTME: Source and Sender interfaces the store needs from the transport layer
// ABOUTME: Implemented by the HTTP API client (remote) and the fixture package (offline)

package chat

import "context"

// Source supplies conversation lists and message history. The store holds
// two: a remote source and a fixture source used when the remote fails.
type Source interface {
	// Conversations returns the full conversation list.
	Conversations(ctx context.Context) ([]Conversation, error)

	// Messages returns the message history for a conversation. The whole
	// conversation is passed (not just the ID) so offline sources can build
	// placeholder replies naming the bound assistant.
	Messages(ctx context.Context, conv Conversation) ([]Message, error)
}

// SendRequest carries a user message to the chat endpoint
type SendRequest struct {
	Message     string
	AssistantID string
	SessionID   string
}

// SendResult is the assistant's reply from the chat endpoint
type SendResult struct {
	Response      string
	AssistantID   string
	AssistantName string
	SessionID     string
	Timestamp     int64
}

// Sender delivers a user message and returns the assistant's reply
type Sender interface {
	SendChat(ctx context.Context, req *SendRequest) (*SendResult, error)
}
