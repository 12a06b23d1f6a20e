// Package chat implements the conversation store: the single source of
// truth for the conversation list, the active conversation, and its
// message buffer.
//
// # Overview
//
// The store sits between the view layer (TUI) and the transport layer
// (HTTP API client or fixtures), mediating every mutation so the list
// entry and the current-conversation view of the same conversation never
// diverge.
//
// # Store
//
// The Store coordinates all conversation state:
//
//	store := chat.NewStore(remote, fixtures, remote, logger)
//
// Key operations:
//
//   - LoadConversations(ctx): Fetch the list, fixtures on failure
//   - NewConversation(assistant): Create a chat or assistant conversation
//   - OpenConversation(ctx, conv): Make current and load history
//   - SendMessage(ctx, content, attachments): Optimistic send round trip
//   - DeleteConversation / RenameConversation / ArchiveConversation /
//     ToggleImportant: Local list mutations with dual-write mirroring
//
// # Optimistic Sends
//
// SendMessage appends the user message before calling the backend and
// never rolls it back. A successful reply appends an assistant message
// and bumps the conversation's updated_at and message_count; a failure
// appends a system error message instead. Replies that land after the
// user has navigated away still update the list entry but are not
// appended to the now-foreign message buffer.
//
// # Grouping
//
// The sidebar display pipeline is Filter (title substring + archive
// toggle), SplitByCategory (chat vs assistant tabs), then GroupByDate
// into the Important/Today/Yesterday/Earlier buckets.
package chat
