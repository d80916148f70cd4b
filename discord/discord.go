// Package discord is a minimal client for the one piece of the Discord
// REST API the bot needs: posting a plain-text message to a channel.
package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

const defaultBaseURL = "https://discord.com/api/v10"

// Session is an authenticated connection to the Discord API, shared by
// the lifetime of the process. It holds a bot token and an HTTP
// transport; it keeps no other state, so it survives Discord-side
// disconnects without any resynchronization.
type Session struct {
	client  *http.Client
	baseURL string
	token   string
}

// NewSession returns a Session authenticated with the passed bot token.
// Passing an empty baseURL uses the public Discord API; passing a nil
// client uses http.DefaultClient.
func NewSession(client *http.Client, baseURL, token string) *Session {
	if client == nil {
		client = http.DefaultClient
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Session{
		client:  client,
		baseURL: baseURL,
		token:   token,
	}
}

// APIError is a non-2xx response from Discord, carrying Discord's own
// error code alongside the HTTP status.
type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"-"`
}

func (a APIError) Error() string {
	return fmt.Sprintf("discord: %s (code %d, status %d)", a.Message, a.Code, a.Status)
}

type messagePayload struct {
	Content string `json:"content"`
}

// SendMessage posts content as a text message to the channel with the
// passed ID.
func (s *Session) SendMessage(ctx context.Context, channelID, content string) error {
	body, err := json.Marshal(messagePayload{Content: content})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/channels/"+channelID+"/messages", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bot "+s.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("posting message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr APIError
		err = json.NewDecoder(resp.Body).Decode(&apiErr)
		if err != nil {
			return fmt.Errorf("discord: unexpected status %d", resp.StatusCode)
		}
		apiErr.Status = resp.StatusCode
		return apiErr
	}
	return nil
}
