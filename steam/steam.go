// Package steam looks up player profiles through the Steam Web API.
package steam

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

const defaultBaseURL = "https://api.steampowered.com"

// ErrNoPlayer is returned when the profile response contains no
// players for the requested ID.
var ErrNoPlayer = errors.New("no player in profile response")

// Client calls the Steam Web API on behalf of one API key.
type Client struct {
	client  *http.Client
	baseURL string
	key     string
}

// NewClient returns a Client authenticated with key. Passing an empty
// baseURL uses the public Steam API; passing a nil client uses
// http.DefaultClient.
func NewClient(client *http.Client, baseURL, key string) *Client {
	if client == nil {
		client = http.DefaultClient
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		client:  client,
		baseURL: baseURL,
		key:     key,
	}
}

type playerSummaries struct {
	Response struct {
		Players []struct {
			PersonaName string `json:"personaname"`
		} `json:"players"`
	} `json:"response"`
}

// PlayerName returns the current persona name for steamID. Transport
// errors, non-200 responses, undecodable bodies, and empty player lists
// are all errors; callers decide how hard a failed lookup should fail.
func (c *Client) PlayerName(ctx context.Context, steamID string) (string, error) {
	reqURL := c.baseURL + "/ISteamUser/GetPlayerSummaries/v0002/?key=" + url.QueryEscape(c.key) + "&steamids=" + url.QueryEscape(steamID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("querying player summaries: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d from player summaries", resp.StatusCode)
	}
	var summaries playerSummaries
	err = json.NewDecoder(resp.Body).Decode(&summaries)
	if err != nil {
		return "", fmt.Errorf("decoding player summaries: %w", err)
	}
	if len(summaries.Response.Players) < 1 {
		return "", ErrNoPlayer
	}
	return summaries.Response.Players[0].PersonaName, nil
}
