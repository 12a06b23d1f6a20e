// ABOUTME: Assistant management endpoints: list, create, update, delete
// ABOUTME: Implements assistant.Lister for the registry's remote path

package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mokom/mokom-client/internal/assistant"
)

// assistantsResponse is the JSON response from GET /api/assistants
type assistantsResponse struct {
	Assistants []assistant.Assistant `json:"assistants"`
}

// AssistantCreate is the JSON body for POST /api/assistants
type AssistantCreate struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Icon         string   `json:"icon"`
	Capabilities []string `json:"capabilities"`
	Customizable bool     `json:"customizable,omitempty"`
}

// AssistantUpdate carries the mutable assistant fields for PUT.
// Nil fields are left unchanged by the server.
type AssistantUpdate struct {
	Name         *string  `json:"name,omitempty"`
	Description  *string  `json:"description,omitempty"`
	Icon         *string  `json:"icon,omitempty"`
	Capabilities []string `json:"capabilities,omitempty"`
	Enabled      *bool    `json:"enabled,omitempty"`
	Customizable *bool    `json:"customizable,omitempty"`
}

// ListAssistants fetches the assistant list.
func (c *Client) ListAssistants(ctx context.Context) ([]assistant.Assistant, error) {
	var resp assistantsResponse
	if err := c.do(ctx, http.MethodGet, "/api/assistants", nil, &resp); err != nil {
		return nil, fmt.Errorf("fetching assistants: %w", err)
	}
	return resp.Assistants, nil
}

// CreateAssistant registers a new assistant.
func (c *Client) CreateAssistant(ctx context.Context, create AssistantCreate) (*assistant.Assistant, error) {
	var resp assistant.Assistant
	if err := c.do(ctx, http.MethodPost, "/api/assistants", create, &resp); err != nil {
		return nil, fmt.Errorf("creating assistant: %w", err)
	}
	return &resp, nil
}

// UpdateAssistant pushes assistant changes to the backend.
func (c *Client) UpdateAssistant(ctx context.Context, id string, update AssistantUpdate) error {
	if err := c.do(ctx, http.MethodPut, "/api/assistants/"+id, update, nil); err != nil {
		return fmt.Errorf("updating assistant %s: %w", id, err)
	}
	return nil
}

// DeleteAssistant removes an assistant.
func (c *Client) DeleteAssistant(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/api/assistants/"+id, nil, nil); err != nil {
		return fmt.Errorf("deleting assistant %s: %w", id, err)
	}
	return nil
}
