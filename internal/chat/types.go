// ABOUTME: Core data types for conversations, messages, and attachments
// ABOUTME: Timestamps are epoch milliseconds to match the backend wire format

package chat

// Role identifies the author of a message
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// Category distinguishes free-form chats from assistant-bound conversations
type Category string

const (
	CategoryChat      Category = "chat"
	CategoryAssistant Category = "assistant"
)

// Attachment is a file attached to a message
type Attachment struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
	URL  string `json:"url"`
	Size int64  `json:"size"`
}

// Message is a single entry in a conversation thread
type Message struct {
	ID            string       `json:"id"`
	Role          Role         `json:"role"`
	Content       string       `json:"content"`
	Timestamp     int64        `json:"timestamp"`
	AssistantID   string       `json:"assistant_id,omitempty"`
	AssistantName string       `json:"assistant_name,omitempty"`
	Attachments   []Attachment `json:"attachments,omitempty"`
}

// Conversation is a titled, timestamped thread. A nil AssistantID means a
// free-form chat; Category is fixed at creation and never changes.
type Conversation struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	AssistantID   *string  `json:"assistant_id"`
	AssistantName *string  `json:"assistant_name"`
	UpdatedAt     int64    `json:"updated_at"`
	CreatedAt     int64    `json:"created_at"`
	MessageCount  int      `json:"message_count"`
	Category      Category `json:"category"`
	Archived      bool     `json:"archived,omitempty"`
	Important     bool     `json:"important,omitempty"`
}
