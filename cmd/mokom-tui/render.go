// ABOUTME: Terminal rendering for the sidebar, message thread, and exports
// ABOUTME: fatih/color for bucket headers, role prefixes, and status dots

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"

	"github.com/mokom/mokom-client/internal/assistant"
	"github.com/mokom/mokom-client/internal/chat"
	"github.com/mokom/mokom-client/internal/export"
)

var (
	bucketColor    = color.New(color.FgCyan, color.Bold)
	userColor      = color.New(color.FgBlue)
	assistantColor = color.New(color.FgGreen)
	systemColor    = color.New(color.FgRed)
	dimColor       = color.New(color.Faint)
)

// renderSidebar prints the grouped conversation list: the chat tab, then
// the assistant tab, each bucketed Important/Today/Yesterday/Earlier.
func (a *app) renderSidebar(query string) {
	filtered := chat.Filter(a.store.Conversations(), query, a.showArchived)
	if len(filtered) == 0 {
		fmt.Println("No conversations match")
		return
	}

	chats, assistants := chat.SplitByCategory(filtered)
	now := time.Now()

	a.renderTab("Chats", chats, now)
	a.renderTab("Assistants", assistants, now)
}

func (a *app) renderTab(label string, convs []chat.Conversation, now time.Time) {
	if len(convs) == 0 {
		return
	}
	fmt.Printf("%s\n", label)
	for _, group := range chat.GroupByDate(convs, now) {
		bucketColor.Printf("  %s\n", group.Bucket)
		for _, conv := range group.Conversations {
			a.renderRow(conv)
		}
	}
}

func (a *app) renderRow(conv chat.Conversation) {
	marker := " "
	if cur := a.store.Current(); cur != nil && cur.ID == conv.ID {
		marker = "*"
	}
	flags := ""
	if conv.Important {
		flags += " ★"
	}
	if conv.Archived {
		flags += " [archived]"
	}
	fmt.Printf("  %s %-14s %s%s", marker, conv.ID, conv.Title, flags)
	dimColor.Printf("  (%d messages)\n", conv.MessageCount)
}

// renderAssistants prints the assistant panel with status dots.
func (a *app) renderAssistants(ctx context.Context) {
	for _, as := range a.registry.Load(ctx) {
		dot := statusDot(as.Status)
		enabled := ""
		if !as.Enabled {
			enabled = " (disabled)"
		}
		fmt.Printf("  %s %-20s %s%s\n", dot, as.ID, as.Name, enabled)
		if as.Description != "" {
			dimColor.Printf("      %s\n", as.Description)
		}
	}
}

func statusDot(status assistant.Status) string {
	switch status {
	case assistant.StatusWorking:
		return color.YellowString("●")
	case assistant.StatusOffline:
		return dimColor.Sprint("●")
	default:
		return color.GreenString("●")
	}
}

// renderMessages prints the full buffer of the open conversation.
func (a *app) renderMessages() {
	msgs := a.store.Messages()
	if len(msgs) == 0 {
		fmt.Println("No messages yet")
		return
	}
	for _, msg := range msgs {
		renderMessage(msg)
	}
}

// renderTail prints the last n messages, for after a send round trip.
func (a *app) renderTail(n int) {
	msgs := a.store.Messages()
	if len(msgs) > n {
		msgs = msgs[len(msgs)-n:]
	}
	for _, msg := range msgs {
		renderMessage(msg)
	}
}

func renderMessage(msg chat.Message) {
	switch msg.Role {
	case chat.RoleAssistant:
		name := msg.AssistantName
		if name == "" {
			name = "assistant"
		}
		assistantColor.Printf("← %s: ", name)
	case chat.RoleSystem:
		systemColor.Print("! ")
	default:
		userColor.Print("→ ")
	}
	fmt.Println(msg.Content)
	for _, att := range msg.Attachments {
		dimColor.Printf("  [attachment] %s (%d bytes)\n", att.Name, att.Size)
	}
}

// export writes the open conversation as JSON, or as an HTML transcript
// when the html argument is given.
func (a *app) export(format string) {
	cur := a.store.Current()
	if cur == nil {
		fmt.Println("No conversation open")
		return
	}

	var (
		data []byte
		name string
		err  error
	)
	switch format {
	case "", "json":
		data, err = export.Conversation(*cur, time.Now())
		name = cur.ID + ".json"
	case "html":
		data, err = export.Transcript(*cur, a.store.Messages())
		name = cur.ID + ".html"
	default:
		fmt.Println("Usage: /export [html]")
		return
	}
	if err != nil {
		fmt.Printf("[error] %v\n", err)
		return
	}

	if err := os.WriteFile(name, data, 0o644); err != nil {
		fmt.Printf("[error] %v\n", err)
		return
	}
	fmt.Printf("Wrote %s\n", name)
}

// handleSettings implements the /settings subcommands: show, set, export,
// and the confirmation-gated clear.
func (a *app) handleSettings(args string) {
	switch {
	case args == "" || args == "show":
		for key, value := range a.settings.Snapshot() {
			fmt.Printf("  %s = %v\n", key, value)
		}

	case args == "export":
		data, err := export.Settings(a.settings.Snapshot(), time.Now())
		if err != nil {
			fmt.Printf("[error] %v\n", err)
			return
		}
		if err := os.WriteFile("settings.json", data, 0o644); err != nil {
			fmt.Printf("[error] %v\n", err)
			return
		}
		fmt.Println("Wrote settings.json")

	case args == "clear":
		if a.settings.ClearAll(func() bool { return a.confirm("Clear all settings?") }) {
			fmt.Println("Settings reset to defaults")
		} else {
			fmt.Println("Cancelled")
		}

	default:
		var key, value string
		if n, _ := fmt.Sscanf(args, "%s %s", &key, &value); n == 2 {
			a.settings.Set(key, value)
			fmt.Printf("Set %s = %s\n", key, value)
			return
		}
		fmt.Println("Usage: /settings [show|export|clear|<key> <value>]")
	}
}
