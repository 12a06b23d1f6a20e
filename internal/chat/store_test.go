// ABOUTME: Tests for the conversation store: creation, sends, dual-write mirroring
// ABOUTME: Uses stub sources/senders and a fixed clock for deterministic timestamps

package chat

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mokom/mokom-client/internal/assistant"
)

// stubSource is a canned chat.Source
type stubSource struct {
	conversations []Conversation
	messages      []Message
	err           error
}

func (s *stubSource) Conversations(context.Context) ([]Conversation, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.conversations, nil
}

func (s *stubSource) Messages(context.Context, Conversation) ([]Message, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.messages, nil
}

// stubSender is a canned chat.Sender; fn runs mid-send when set, simulating
// user actions while the request is in flight
type stubSender struct {
	result  *SendResult
	err     error
	lastReq *SendRequest
	fn      func()
}

func (s *stubSender) SendChat(_ context.Context, req *SendRequest) (*SendResult, error) {
	s.lastReq = req
	if s.fn != nil {
		s.fn()
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

// newTestStore builds a store with the given collaborators and a fixed clock
func newTestStore(t *testing.T, source, fixtures Source, sender Sender) *Store {
	t.Helper()
	s := NewStore(source, fixtures, sender, nil)
	// Each read of the clock advances it so generated IDs never collide
	base := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	ticks := 0
	s.now = func() time.Time {
		ticks++
		return base.Add(time.Duration(ticks) * time.Second)
	}
	return s
}

func reply(text string) *SendResult {
	return &SendResult{
		Response:      text,
		AssistantID:   "claude-3",
		AssistantName: "Claude 3",
		Timestamp:     time.Date(2026, 8, 31, 12, 0, 1, 0, time.UTC).UnixMilli(),
	}
}

func TestNewConversationCasualChat(t *testing.T) {
	s := newTestStore(t, &stubSource{}, &stubSource{}, &stubSender{})

	conv := s.NewConversation(nil)

	assert.Equal(t, CategoryChat, conv.Category)
	assert.Nil(t, conv.AssistantID)
	assert.Nil(t, conv.AssistantName)
	assert.Equal(t, "New casual chat", conv.Title)
	assert.Contains(t, conv.ID, "chat-")
	assert.Equal(t, 0, conv.MessageCount)

	require.NotNil(t, s.Current())
	assert.Equal(t, conv.ID, s.Current().ID)
	assert.Empty(t, s.Messages())
	assert.Nil(t, s.Selected())
}

func TestNewConversationWithAssistant(t *testing.T) {
	s := newTestStore(t, &stubSource{}, &stubSource{}, &stubSender{})
	a := &assistant.Assistant{ID: "claude-3", Name: "Claude 3"}

	conv := s.NewConversation(a)

	assert.Equal(t, CategoryAssistant, conv.Category)
	require.NotNil(t, conv.AssistantID)
	assert.Equal(t, "claude-3", *conv.AssistantID)
	require.NotNil(t, conv.AssistantName)
	assert.Equal(t, "Claude 3", *conv.AssistantName)
	assert.Equal(t, "Chat with Claude 3", conv.Title)
	assert.Contains(t, conv.ID, "claude-3-")

	require.NotNil(t, s.Selected())
	assert.Equal(t, "claude-3", s.Selected().ID)
}

func TestNewConversationPrepends(t *testing.T) {
	s := newTestStore(t, &stubSource{}, &stubSource{}, &stubSender{})

	s.NewConversation(nil)
	// A later creation lands at the head of the list
	second := s.NewConversation(&assistant.Assistant{ID: "gpt-4", Name: "GPT-4"})

	convs := s.Conversations()
	require.Len(t, convs, 2)
	assert.Equal(t, second.ID, convs[0].ID)
}

func TestSendMessageDerivesTitleAndCount(t *testing.T) {
	sender := &stubSender{result: reply("Hi! How can I help?")}
	s := newTestStore(t, &stubSource{}, &stubSource{}, sender)
	s.NewConversation(nil)

	require.NoError(t, s.SendMessage(context.Background(), "hello", nil))

	cur := s.Current()
	require.NotNil(t, cur)
	assert.Equal(t, "hello...", cur.Title)
	assert.Equal(t, 2, cur.MessageCount)

	// The list entry and the current view must agree
	convs := s.Conversations()
	require.Len(t, convs, 1)
	assert.Equal(t, cur.Title, convs[0].Title)
	assert.Equal(t, cur.MessageCount, convs[0].MessageCount)
	assert.Equal(t, cur.UpdatedAt, convs[0].UpdatedAt)

	msgs := s.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, RoleUser, msgs[0].Role)
	assert.Equal(t, "hello", msgs[0].Content)
	assert.Equal(t, RoleAssistant, msgs[1].Role)
	assert.Equal(t, "Hi! How can I help?", msgs[1].Content)
	assert.Equal(t, "Claude 3", msgs[1].AssistantName)

	assert.False(t, s.Loading())
}

func TestSendMessageTitleSlicedToTwentyRunes(t *testing.T) {
	sender := &stubSender{result: reply("ok")}
	s := newTestStore(t, &stubSource{}, &stubSource{}, sender)
	s.NewConversation(nil)

	long := "this message is considerably longer than twenty characters"
	require.NoError(t, s.SendMessage(context.Background(), long, nil))

	assert.Equal(t, "this message is cons...", s.Current().Title)
}

func TestSendMessageSecondSendKeepsTitle(t *testing.T) {
	sender := &stubSender{result: reply("ok")}
	s := newTestStore(t, &stubSource{}, &stubSource{}, sender)
	s.NewConversation(nil)

	require.NoError(t, s.SendMessage(context.Background(), "first", nil))
	require.NoError(t, s.SendMessage(context.Background(), "second", nil))

	assert.Equal(t, "first...", s.Current().Title)
	assert.Equal(t, 4, s.Current().MessageCount)
}

func TestSendMessageFailure(t *testing.T) {
	sender := &stubSender{err: errors.New("connection refused")}
	s := newTestStore(t, &stubSource{}, &stubSource{}, sender)
	conv := s.NewConversation(nil)

	require.NoError(t, s.SendMessage(context.Background(), "hello", nil))

	// Count and title untouched, optimistic user message kept, one system error
	cur := s.Current()
	assert.Equal(t, 0, cur.MessageCount)
	assert.Equal(t, "New casual chat", cur.Title)
	assert.Equal(t, conv.UpdatedAt, cur.UpdatedAt)

	msgs := s.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, RoleUser, msgs[0].Role)
	assert.Equal(t, RoleSystem, msgs[1].Role)
	assert.Equal(t, "Failed to send message. Please try again.", msgs[1].Content)
	assert.False(t, s.Loading())
}

func TestSendMessageEmptyIgnored(t *testing.T) {
	sender := &stubSender{result: reply("ok")}
	s := newTestStore(t, &stubSource{}, &stubSource{}, sender)
	s.NewConversation(nil)

	require.NoError(t, s.SendMessage(context.Background(), "   ", nil))

	assert.Empty(t, s.Messages())
	assert.Nil(t, sender.lastReq)
}

func TestSendMessageNoCurrentConversationIgnored(t *testing.T) {
	sender := &stubSender{result: reply("ok")}
	s := newTestStore(t, &stubSource{}, &stubSource{}, sender)

	require.NoError(t, s.SendMessage(context.Background(), "hello", nil))

	assert.Nil(t, sender.lastReq)
}

func TestSendMessageAttachmentsOnly(t *testing.T) {
	sender := &stubSender{result: reply("got the file")}
	s := newTestStore(t, &stubSource{}, &stubSource{}, sender)
	s.NewConversation(nil)

	att := Attachment{ID: "f1", Name: "report.pdf", Size: 1024}
	require.NoError(t, s.SendMessage(context.Background(), "", []Attachment{att}))

	msgs := s.Messages()
	require.Len(t, msgs, 2)
	require.Len(t, msgs[0].Attachments, 1)
	assert.Equal(t, "report.pdf", msgs[0].Attachments[0].Name)
}

func TestSendMessageCarriesAssistantBinding(t *testing.T) {
	sender := &stubSender{result: reply("ok")}
	s := newTestStore(t, &stubSource{}, &stubSource{}, sender)
	conv := s.NewConversation(&assistant.Assistant{ID: "claude-3", Name: "Claude 3"})

	require.NoError(t, s.SendMessage(context.Background(), "hello", nil))

	require.NotNil(t, sender.lastReq)
	assert.Equal(t, "claude-3", sender.lastReq.AssistantID)
	assert.Equal(t, conv.ID, sender.lastReq.SessionID)
}

func TestStaleReplyUpdatesListEntryOnly(t *testing.T) {
	sender := &stubSender{result: reply("late answer")}
	s := newTestStore(t, &stubSource{}, &stubSource{}, sender)
	first := s.NewConversation(nil)

	// The user starts a new conversation while the send is in flight
	sender.fn = func() { s.NewConversation(nil) }

	require.NoError(t, s.SendMessage(context.Background(), "hello", nil))

	// The reply must not leak into the new conversation's buffer
	assert.Empty(t, s.Messages())

	// But the original round trip still lands on the list entry
	for _, conv := range s.Conversations() {
		if conv.ID == first.ID {
			assert.Equal(t, 2, conv.MessageCount)
			assert.Equal(t, "hello...", conv.Title)
			return
		}
	}
	t.Fatalf("original conversation %s missing from list", first.ID)
}

func TestDeleteCurrentConversation(t *testing.T) {
	sender := &stubSender{result: reply("ok")}
	s := newTestStore(t, &stubSource{}, &stubSource{}, sender)
	conv := s.NewConversation(&assistant.Assistant{ID: "gpt-4", Name: "GPT-4"})
	require.NoError(t, s.SendMessage(context.Background(), "hello", nil))

	s.DeleteConversation(conv.ID)

	assert.Empty(t, s.Conversations())
	assert.Nil(t, s.Current())
	assert.Empty(t, s.Messages())
	assert.Nil(t, s.Selected())
}

func TestDeleteOtherConversationKeepsCurrent(t *testing.T) {
	sender := &stubSender{result: reply("ok")}
	s := newTestStore(t, &stubSource{}, &stubSource{}, sender)
	other := s.NewConversation(nil)
	current := s.NewConversation(&assistant.Assistant{ID: "gpt-4", Name: "GPT-4"})
	require.NoError(t, s.SendMessage(context.Background(), "hello", nil))

	s.DeleteConversation(other.ID)

	convs := s.Conversations()
	require.Len(t, convs, 1)
	assert.Equal(t, current.ID, convs[0].ID)
	require.NotNil(t, s.Current())
	assert.Equal(t, current.ID, s.Current().ID)
	assert.Len(t, s.Messages(), 2)
	require.NotNil(t, s.Selected())
}

func TestPatchOperationsMirrorIntoCurrent(t *testing.T) {
	s := newTestStore(t, &stubSource{}, &stubSource{}, &stubSender{})
	conv := s.NewConversation(nil)

	s.RenameConversation(conv.ID, "Trip planning")
	s.ArchiveConversation(conv.ID, true)
	s.ToggleImportant(conv.ID, true)

	entry := s.Conversations()[0]
	cur := s.Current()
	require.NotNil(t, cur)
	assert.Equal(t, "Trip planning", entry.Title)
	assert.Equal(t, entry.Title, cur.Title)
	assert.Equal(t, entry.Archived, cur.Archived)
	assert.Equal(t, entry.Important, cur.Important)
	assert.True(t, cur.Archived)
	assert.True(t, cur.Important)
}

func TestPatchOperationsLeaveOtherCurrentAlone(t *testing.T) {
	s := newTestStore(t, &stubSource{}, &stubSource{}, &stubSender{})
	other := s.NewConversation(nil)
	current := s.NewConversation(nil)

	s.RenameConversation(other.ID, "Renamed")

	cur := s.Current()
	require.NotNil(t, cur)
	assert.Equal(t, current.Title, cur.Title)
}

func TestLoadConversationsReplacesWholesale(t *testing.T) {
	source := &stubSource{conversations: []Conversation{{ID: "remote-1", Title: "From the backend"}}}
	s := newTestStore(t, source, &stubSource{}, &stubSender{})
	s.NewConversation(nil)

	require.NoError(t, s.LoadConversations(context.Background()))

	convs := s.Conversations()
	require.Len(t, convs, 1)
	assert.Equal(t, "remote-1", convs[0].ID)
}

func TestLoadConversationsFallsBackToFixtures(t *testing.T) {
	source := &stubSource{err: errors.New("connection refused")}
	fixtures := &stubSource{conversations: []Conversation{{ID: "fixture-1", Title: "Offline data"}}}
	s := newTestStore(t, source, fixtures, &stubSender{})

	require.NoError(t, s.LoadConversations(context.Background()))

	convs := s.Conversations()
	require.Len(t, convs, 1)
	assert.Equal(t, "fixture-1", convs[0].ID)
}

func TestOpenConversationLoadsHistory(t *testing.T) {
	source := &stubSource{messages: []Message{
		{ID: "1", Role: RoleUser, Content: "earlier question"},
		{ID: "2", Role: RoleAssistant, Content: "earlier answer"},
	}}
	s := newTestStore(t, source, &stubSource{}, &stubSender{})

	id := "claude-3"
	name := "Claude 3"
	conv := Conversation{ID: "claude-1", Title: "Chat with Claude 3", AssistantID: &id, AssistantName: &name, Category: CategoryAssistant}
	require.NoError(t, s.OpenConversation(context.Background(), conv))

	require.NotNil(t, s.Current())
	assert.Equal(t, "claude-1", s.Current().ID)
	assert.Len(t, s.Messages(), 2)

	sel := s.Selected()
	require.NotNil(t, sel)
	assert.Equal(t, "claude-3", sel.ID)
	assert.Equal(t, "Claude 3", sel.Name)
}

func TestOpenConversationClearsAssistantForCasualChat(t *testing.T) {
	s := newTestStore(t, &stubSource{}, &stubSource{}, &stubSender{})
	s.NewConversation(&assistant.Assistant{ID: "gpt-4", Name: "GPT-4"})

	require.NoError(t, s.OpenConversation(context.Background(), Conversation{ID: "chat-9", Category: CategoryChat}))

	assert.Nil(t, s.Selected())
}

func TestOpenConversationFallsBackToPlaceholders(t *testing.T) {
	source := &stubSource{err: errors.New("connection refused")}
	fixtures := &stubSource{messages: []Message{
		{ID: "1", Role: RoleUser, Content: "Hi there!"},
		{ID: "2", Role: RoleAssistant, Content: "Hello! I am Claude 3. How can I help you?"},
	}}
	s := newTestStore(t, source, fixtures, &stubSender{})

	require.NoError(t, s.OpenConversation(context.Background(), Conversation{ID: "claude-1"}))

	msgs := s.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, RoleAssistant, msgs[1].Role)
}

func TestDeriveTitle(t *testing.T) {
	assert.Equal(t, "hi...", deriveTitle("hi"))
	assert.Equal(t, "exactly twenty chars...", deriveTitle("exactly twenty chars"))
	// Multibyte content slices by runes, not bytes
	assert.Equal(t, "日本語のメッセージ...", deriveTitle("日本語のメッセージ"))
}
