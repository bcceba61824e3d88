// Package client is the data gateway the web tier uses to reach the REST
// API. Each call maps onto one endpoint; failures of any kind come back as a
// uniform *APIError so the UI only ever renders {error, details?}.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/tictacnext/tictacnext/internal/model/game"
)

// APIError is the uniform failure shape: a display message plus, for
// validation failures, the structured issue list from the server.
type APIError struct {
	Message string       `json:"error"`
	Details []game.Issue `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	return e.Message
}

// Client calls the game-session API. No caching, no retries; cancellation
// and timeouts come from the caller's context and the injected http.Client.
type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a client rooted at baseURL, e.g. "http://localhost:3000/api/v1".
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// CreateSession validates and persists a completed session, returning the
// new identifier. Validation runs client-side first with the same rules the
// server applies, so a malformed session never leaves the process.
func (c *Client) CreateSession(ctx context.Context, session game.Session) (string, error) {
	if issues := session.Validate(); len(issues) > 0 {
		return "", &APIError{Message: "Invalid input", Details: issues}
	}

	body, err := json.Marshal(session)
	if err != nil {
		return "", &APIError{Message: "Invalid input"}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/game-session", bytes.NewReader(body))
	if err != nil {
		return "", &APIError{Message: "Network error"}
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return "", &APIError{Message: "Network error"}
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusCreated {
		return "", readAPIError(res, "Failed to create game session")
	}

	var created struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(res.Body).Decode(&created); err != nil {
		return "", &APIError{Message: "Failed to create game session"}
	}
	return created.ID, nil
}

// ListSessions fetches every stored session.
func (c *Client) ListSessions(ctx context.Context) ([]game.StoredSession, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/game-session", nil)
	if err != nil {
		return nil, &APIError{Message: "Network error"}
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, &APIError{Message: "Network error"}
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, readAPIError(res, "Failed to fetch game sessions")
	}

	var sessions []game.StoredSession
	if err := json.NewDecoder(res.Body).Decode(&sessions); err != nil {
		return nil, &APIError{Message: "Failed to fetch game sessions"}
	}
	return sessions, nil
}

// GetSession fetches one stored session by identifier.
func (c *Client) GetSession(ctx context.Context, id string) (game.StoredSession, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.sessionURL(id), nil)
	if err != nil {
		return game.StoredSession{}, &APIError{Message: "Network error"}
	}

	res, err := c.http.Do(req)
	if err != nil {
		return game.StoredSession{}, &APIError{Message: "Network error"}
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return game.StoredSession{}, readAPIError(res, "Game session not found")
	}

	var session game.StoredSession
	if err := json.NewDecoder(res.Body).Decode(&session); err != nil {
		return game.StoredSession{}, &APIError{Message: "Game session not found"}
	}
	return session, nil
}

// DeleteSession removes one stored session by identifier.
func (c *Client) DeleteSession(ctx context.Context, id string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.sessionURL(id), nil)
	if err != nil {
		return &APIError{Message: "Network error"}
	}

	res, err := c.http.Do(req)
	if err != nil {
		return &APIError{Message: "Network error"}
	}
	defer res.Body.Close()

	switch res.StatusCode {
	case http.StatusNoContent:
		return nil
	case http.StatusNotFound:
		return &APIError{Message: "Game session not found"}
	default:
		return readAPIError(res, "Failed to delete game session")
	}
}

func (c *Client) sessionURL(id string) string {
	return fmt.Sprintf("%s/game-session/%s", c.baseURL, id)
}

// readAPIError decodes the server's error body, falling back to a fixed
// message when the body is empty or unreadable.
func readAPIError(res *http.Response, fallback string) *APIError {
	apiErr := &APIError{}
	if err := json.NewDecoder(res.Body).Decode(apiErr); err != nil || apiErr.Message == "" {
		return &APIError{Message: fallback}
	}
	return apiErr
}
