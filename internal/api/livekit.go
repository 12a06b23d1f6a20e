// ABOUTME: POST /api/livekit/token: access token for the stub voice room
// ABOUTME: Implements voice.TokenSource; no transport is established here

package api

import (
	"context"
	"fmt"
	"net/http"
)

// voiceTokenRequest is the JSON body for POST /api/livekit/token
type voiceTokenRequest struct {
	RoomName        string `json:"room_name"`
	ParticipantName string `json:"participant_name"`
}

// voiceTokenResponse is the JSON response from POST /api/livekit/token
type voiceTokenResponse struct {
	Token   string `json:"token"`
	RoomURL string `json:"room_url"`
}

// VoiceToken requests an access token for the named voice room.
func (c *Client) VoiceToken(ctx context.Context, room, participant string) (token, roomURL string, err error) {
	body := voiceTokenRequest{
		RoomName:        room,
		ParticipantName: participant,
	}

	var resp voiceTokenResponse
	if err := c.do(ctx, http.MethodPost, "/api/livekit/token", body, &resp); err != nil {
		return "", "", fmt.Errorf("fetching voice token: %w", err)
	}
	return resp.Token, resp.RoomURL, nil
}
