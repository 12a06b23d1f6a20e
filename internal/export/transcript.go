// ABOUTME: HTML transcript export; assistant markdown is rendered with goldmark
// ABOUTME: User and system messages are escaped verbatim

package export

import (
	"bytes"
	"fmt"
	"html"
	"time"

	"github.com/yuin/goldmark"

	"github.com/mokom/mokom-client/internal/chat"
)

// Transcript renders a conversation and its messages as a standalone HTML
// document. Assistant messages are treated as markdown.
func Transcript(conv chat.Conversation, messages []chat.Message) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	fmt.Fprintf(&buf, "<title>%s</title>\n", html.EscapeString(conv.Title))
	buf.WriteString("<meta charset=\"utf-8\">\n</head>\n<body>\n")
	fmt.Fprintf(&buf, "<h1>%s</h1>\n", html.EscapeString(conv.Title))

	for _, msg := range messages {
		author := authorLabel(msg)
		stamp := time.UnixMilli(msg.Timestamp).Format(time.RFC3339)
		fmt.Fprintf(&buf, "<div class=%q>\n<p><strong>%s</strong> <time>%s</time></p>\n",
			string(msg.Role), html.EscapeString(author), stamp)

		if msg.Role == chat.RoleAssistant {
			if err := goldmark.Convert([]byte(msg.Content), &buf); err != nil {
				return nil, fmt.Errorf("rendering message %s: %w", msg.ID, err)
			}
		} else {
			fmt.Fprintf(&buf, "<p>%s</p>\n", html.EscapeString(msg.Content))
		}

		for _, att := range msg.Attachments {
			fmt.Fprintf(&buf, "<p><a href=%q>%s</a> (%d bytes)</p>\n",
				att.URL, html.EscapeString(att.Name), att.Size)
		}
		buf.WriteString("</div>\n")
	}

	buf.WriteString("</body>\n</html>\n")
	return buf.Bytes(), nil
}

func authorLabel(msg chat.Message) string {
	switch msg.Role {
	case chat.RoleAssistant:
		if msg.AssistantName != "" {
			return msg.AssistantName
		}
		return "Assistant"
	case chat.RoleSystem:
		return "System"
	default:
		return "You"
	}
}
