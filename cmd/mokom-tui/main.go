// ABOUTME: Terminal client for MOKOM AI chat over the backend HTTP API
// ABOUTME: Readline-style input; slash commands drive the conversation store

package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/mokom/mokom-client/internal/api"
	"github.com/mokom/mokom-client/internal/assistant"
	"github.com/mokom/mokom-client/internal/auth"
	"github.com/mokom/mokom-client/internal/chat"
	"github.com/mokom/mokom-client/internal/config"
	"github.com/mokom/mokom-client/internal/fixture"
	"github.com/mokom/mokom-client/internal/settings"
	"github.com/mokom/mokom-client/internal/voice"
)

func main() {
	configPath := flag.String("config", "", "Path to config file (optional)")
	server := flag.String("server", "", "Backend base URL (overrides config)")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *server != "" {
		cfg.API.BaseURL = *server
	}

	logger := newLogger(cfg.Logging)
	slog.SetDefault(logger)

	tokens := auth.NewTokenStore(cfg.Auth.TokenPath)
	client := api.New(cfg.API, tokens, logger)

	app := &app{
		cfg:      cfg,
		client:   client,
		store:    chat.NewStore(client, fixture.NewSource(nil), client, logger),
		registry: assistant.NewRegistry(client, fixture.Assistants(), logger),
		settings: settings.New(logger),
		room:     voice.NewRoom(cfg.Voice.Room, cfg.Voice.Participant, client, logger),
		logger:   logger,
	}

	fmt.Printf("mokom-tui connected to %s\n", cfg.API.BaseURL)
	if _, err := tokens.Load(); err == nil {
		fmt.Println("Auth: bearer token configured")
	} else {
		fmt.Println("Auth: none (set MOKOM_TOKEN for authentication)")
	}
	fmt.Println("Type a message and press Enter. /help for commands. Ctrl+C to quit.")
	fmt.Println()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := app.store.LoadConversations(ctx); err != nil {
		fmt.Printf("[error] loading conversations: %v\n", err)
	}

	if err := app.run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("\nGoodbye!")
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func newLogger(cfg config.LoggingConfig) *slog.Logger {
	var lvl slog.Level
	switch cfg.Level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

// app ties the store, registry, and voice room to the command loop
type app struct {
	cfg      *config.Config
	client   *api.Client
	store    *chat.Store
	registry *assistant.Registry
	settings *settings.Settings
	room     *voice.Room
	logger   *slog.Logger

	showArchived bool
	attachments  []chat.Attachment
	scanner      *bufio.Scanner
}

func (a *app) run(ctx context.Context) error {
	a.scanner = bufio.NewScanner(os.Stdin)

	for {
		a.printPrompt()

		// Read input with context awareness
		inputCh := make(chan string, 1)
		errCh := make(chan error, 1)

		go func() {
			if a.scanner.Scan() {
				inputCh <- a.scanner.Text()
			} else {
				if err := a.scanner.Err(); err != nil {
					errCh <- err
				} else {
					errCh <- io.EOF
				}
			}
		}()

		var input string
		select {
		case <-ctx.Done():
			return nil
		case err := <-errCh:
			if err == io.EOF {
				return nil
			}
			return fmt.Errorf("reading input: %w", err)
		case input = <-inputCh:
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if input == "/quit" || input == "/exit" || input == "/q" {
			return nil
		}

		if strings.HasPrefix(input, "/") {
			a.handleCommand(ctx, input)
			fmt.Println()
			continue
		}

		a.send(ctx, input)
		fmt.Println()
	}
}

func (a *app) printPrompt() {
	if cur := a.store.Current(); cur != nil {
		fmt.Printf("[%s]> ", cur.Title)
	} else {
		fmt.Print("> ")
	}
}

func (a *app) handleCommand(ctx context.Context, input string) {
	cmd, args, _ := strings.Cut(input, " ")
	args = strings.TrimSpace(args)

	switch cmd {
	case "/help":
		printHelp()

	case "/list":
		a.renderSidebar(args)

	case "/archived":
		a.showArchived = !a.showArchived
		if a.showArchived {
			fmt.Println("Showing archived conversations")
		} else {
			fmt.Println("Showing active conversations")
		}

	case "/assistants":
		a.renderAssistants(ctx)

	case "/new":
		var bound *assistant.Assistant
		if args != "" {
			bound = a.registry.Get(ctx, args)
			if bound == nil {
				fmt.Printf("Unknown assistant %q. Try /assistants.\n", args)
				return
			}
		}
		conv := a.store.NewConversation(bound)
		fmt.Printf("Started %q\n", conv.Title)

	case "/open":
		a.open(ctx, args)

	case "/rename":
		id, title, _ := strings.Cut(args, " ")
		title = strings.TrimSpace(title)
		if id == "" || title == "" {
			fmt.Println("Usage: /rename <id> <new title>")
			return
		}
		a.store.RenameConversation(id, title)
		fmt.Printf("Renamed %s\n", id)

	case "/archive", "/unarchive":
		if args == "" {
			fmt.Printf("Usage: %s <id>\n", cmd)
			return
		}
		a.store.ArchiveConversation(args, cmd == "/archive")
		fmt.Printf("Updated %s\n", args)

	case "/star", "/unstar":
		if args == "" {
			fmt.Printf("Usage: %s <id>\n", cmd)
			return
		}
		a.store.ToggleImportant(args, cmd == "/star")
		fmt.Printf("Updated %s\n", args)

	case "/delete":
		a.deleteConversation(args)

	case "/attach":
		a.attach(ctx, args)

	case "/export":
		a.export(args)

	case "/settings":
		a.handleSettings(args)

	case "/voice":
		a.toggleVoice(ctx)

	case "/mic":
		if !a.room.Status().Connected {
			fmt.Println("Not in a voice room. /voice to join.")
			return
		}
		if a.room.ToggleMic() {
			fmt.Println("Mic on")
		} else {
			fmt.Println("Mic off")
		}

	default:
		fmt.Printf("Unknown command %s. Try /help.\n", cmd)
	}
}

func (a *app) send(ctx context.Context, content string) {
	if a.store.Current() == nil {
		fmt.Println("No conversation open. /new to start one, /list to browse.")
		return
	}

	attachments := a.attachments
	a.attachments = nil

	if err := a.store.SendMessage(ctx, content, attachments); err != nil {
		fmt.Printf("[error] %v\n", err)
		return
	}
	a.renderTail(2)
}

func (a *app) open(ctx context.Context, id string) {
	if id == "" {
		fmt.Println("Usage: /open <id>")
		return
	}
	for _, conv := range a.store.Conversations() {
		if conv.ID != id {
			continue
		}
		if err := a.store.OpenConversation(ctx, conv); err != nil {
			fmt.Printf("[error] %v\n", err)
			return
		}
		a.renderMessages()
		return
	}
	fmt.Printf("No conversation %q. Try /list.\n", id)
}

func (a *app) deleteConversation(id string) {
	if id == "" {
		fmt.Println("Usage: /delete <id>")
		return
	}
	if !a.confirm(fmt.Sprintf("Delete conversation %s?", id)) {
		fmt.Println("Cancelled")
		return
	}
	a.store.DeleteConversation(id)
	fmt.Printf("Deleted %s\n", id)
}

func (a *app) attach(ctx context.Context, path string) {
	if path == "" {
		fmt.Println("Usage: /attach <path>")
		return
	}
	f, err := os.Open(path)
	if err != nil {
		fmt.Printf("[error] %v\n", err)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		fmt.Printf("[error] %v\n", err)
		return
	}

	att, err := a.client.UploadFile(ctx, filepath.Base(path), info.Size(), f)
	if err != nil {
		fmt.Printf("[error] upload failed: %v\n", err)
		return
	}
	a.attachments = append(a.attachments, *att)
	fmt.Printf("Attached %s (%d bytes); it rides on your next message\n", att.Name, att.Size)
}

func (a *app) toggleVoice(ctx context.Context) {
	if a.room.Status().Connected {
		a.room.Leave()
		fmt.Println("Left voice room")
		return
	}
	if err := a.room.Join(ctx); err != nil {
		fmt.Printf("[error] %v\n", err)
		return
	}
	st := a.room.Status()
	fmt.Printf("Joined voice room %s (%s). Audio transport is not implemented; this is a stub.\n", st.Room, st.RoomURL)
}

// confirm asks a yes/no question on the same input stream. Anything other
// than y/yes cancels.
func (a *app) confirm(question string) bool {
	fmt.Printf("%s [y/N] ", question)
	if !a.scanner.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(a.scanner.Text()))
	return answer == "y" || answer == "yes"
}

func printHelp() {
	fmt.Println("Commands:")
	fmt.Println("  /list [query]       Show the conversation sidebar, optionally filtered")
	fmt.Println("  /archived           Toggle between active and archived conversations")
	fmt.Println("  /assistants         List available assistants")
	fmt.Println("  /new [assistant]    Start a casual chat, or one bound to an assistant")
	fmt.Println("  /open <id>          Open a conversation and show its history")
	fmt.Println("  /rename <id> <t>    Rename a conversation")
	fmt.Println("  /archive <id>       Archive a conversation (/unarchive to restore)")
	fmt.Println("  /star <id>          Mark important (/unstar to clear)")
	fmt.Println("  /delete <id>        Delete a conversation (asks first)")
	fmt.Println("  /attach <path>      Upload a file to attach to the next message")
	fmt.Println("  /export [html]      Export the open conversation")
	fmt.Println("  /settings           Show settings; see /settings help")
	fmt.Println("  /voice              Join or leave the stub voice room")
	fmt.Println("  /mic                Toggle the mic flag while in the room")
	fmt.Println("  /quit               Exit")
}
