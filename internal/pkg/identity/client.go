package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// SessionData is the verified profile returned by the identity provider.
// SessionToken is used verbatim as the new session's bearer token.
type SessionData struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	Picture      string `json:"picture"`
	SessionToken string `json:"session_token"`
}

type Client struct {
	exchangeURL string
	httpClient  *http.Client
}

func NewClient(exchangeURL string, timeout time.Duration) *Client {
	return &Client{
		exchangeURL: exchangeURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// GetSessionData exchanges an opaque session handle for a verified profile.
// Any transport failure or non-2xx response is one error kind; no retries.
func (c *Client) GetSessionData(ctx context.Context, sessionID string) (*SessionData, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.exchangeURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build exchange request: %w", err)
	}
	req.Header.Set("X-Session-ID", sessionID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call identity provider: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("identity provider returned status %d", resp.StatusCode)
	}

	var data SessionData
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode session data: %w", err)
	}

	if data.Email == "" || data.SessionToken == "" {
		return nil, fmt.Errorf("identity provider returned incomplete session data")
	}

	return &data, nil
}
