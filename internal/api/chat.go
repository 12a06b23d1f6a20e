// ABOUTME: POST /api/chat: deliver a user message and receive the assistant reply
// ABOUTME: Implements chat.Sender so the store can use the client directly

package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mokom/mokom-client/internal/chat"
)

// chatRequest is the JSON body for POST /api/chat
type chatRequest struct {
	Message     string `json:"message"`
	AssistantID string `json:"assistant_id,omitempty"`
	SessionID   string `json:"session_id,omitempty"`
}

// chatResponse is the JSON response from POST /api/chat
type chatResponse struct {
	Response      string `json:"response"`
	AssistantID   string `json:"assistant_id"`
	AssistantName string `json:"assistant_name"`
	SessionID     string `json:"session_id"`
	Timestamp     int64  `json:"timestamp"`
}

// SendChat delivers a user message to the chat endpoint and returns the
// assistant's reply.
func (c *Client) SendChat(ctx context.Context, req *chat.SendRequest) (*chat.SendResult, error) {
	body := chatRequest{
		Message:     req.Message,
		AssistantID: req.AssistantID,
		SessionID:   req.SessionID,
	}

	var resp chatResponse
	if err := c.do(ctx, http.MethodPost, "/api/chat", body, &resp); err != nil {
		return nil, fmt.Errorf("sending chat message: %w", err)
	}

	return &chat.SendResult{
		Response:      resp.Response,
		AssistantID:   resp.AssistantID,
		AssistantName: resp.AssistantName,
		SessionID:     resp.SessionID,
		Timestamp:     resp.Timestamp,
	}, nil
}
