// Package api implements the HTTP client for the mokom backend.
//
// # Overview
//
// One file per endpoint, mirroring the backend contract:
//
//   - SendChat: POST /api/chat
//   - Conversations: GET /api/conversations
//   - Messages: GET /api/conversations/{id}
//   - UpdateConversation: PUT /api/conversations/{id}
//   - DeleteConversation: DELETE /api/conversations/{id}
//   - ListAssistants / CreateAssistant / UpdateAssistant /
//     DeleteAssistant: /api/assistants
//   - UploadFile: POST /api/upload (multipart)
//   - VoiceToken: POST /api/livekit/token
//
// The Client satisfies chat.Source, chat.Sender, assistant.Lister, and
// voice.TokenSource, so the rest of the client wires it in without
// adapters.
//
// # Authentication
//
// Every request carries the stored bearer token when one is configured
// (MOKOM_TOKEN env var or the token file). A 401 response clears the
// stored token and surfaces ErrUnauthorized; tokens whose exp claim has
// already passed are not attached at all.
//
// # Failure Model
//
// No call is retried. Callers substitute fixture data (list and history
// loads) or surface an inline error message (sends); see the chat
// package.
package api
