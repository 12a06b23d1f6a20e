// ABOUTME: Downloadable JSON blobs for the export actions
// ABOUTME: Shapes are informal, matching the UI contract; no schema versioning

package export

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/mokom/mokom-client/internal/chat"
)

// ConversationExport is the JSON blob written by "export conversation"
type ConversationExport struct {
	Title        string `json:"title"`
	Timestamp    int64  `json:"timestamp"`
	MessageCount int    `json:"messageCount"`
}

// SettingsExport is the JSON blob written by "export settings"
type SettingsExport struct {
	Settings  map[string]any `json:"settings"`
	Timestamp int64          `json:"timestamp"`
}

// Conversation renders the export blob for a conversation.
func Conversation(conv chat.Conversation, now time.Time) ([]byte, error) {
	blob := ConversationExport{
		Title:        conv.Title,
		Timestamp:    now.UnixMilli(),
		MessageCount: conv.MessageCount,
	}
	data, err := json.MarshalIndent(blob, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding conversation export: %w", err)
	}
	return data, nil
}

// ParseConversation reads back an exported conversation blob.
func ParseConversation(data []byte) (*ConversationExport, error) {
	var blob ConversationExport
	if err := json.Unmarshal(data, &blob); err != nil {
		return nil, fmt.Errorf("parsing conversation export: %w", err)
	}
	return &blob, nil
}

// Settings renders the export blob for the settings panel.
func Settings(values map[string]any, now time.Time) ([]byte, error) {
	blob := SettingsExport{
		Settings:  values,
		Timestamp: now.UnixMilli(),
	}
	data, err := json.MarshalIndent(blob, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding settings export: %w", err)
	}
	return data, nil
}
