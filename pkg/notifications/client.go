// Package notifications is the client-side companion to the notification
// API: a thin HTTP client plus a Provider that keeps an in-memory copy of
// the current user's notifications and derives unread state from it. The
// server stays authoritative; the local copy is a cache that Refresh
// replaces wholesale.
package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

var (
	ErrNotFound        = errors.New("notification not found")
	ErrUnauthenticated = errors.New("unauthenticated")
)

// Notification mirrors the API's wire representation.
type Notification struct {
	ID         string            `json:"id"`
	UserID     string            `json:"user_id"`
	Type       string            `json:"type"`
	Title      string            `json:"title"`
	Message    string            `json:"message"`
	TargetDate *time.Time        `json:"target_date,omitempty"`
	Priority   string            `json:"priority"`
	IsRead     bool              `json:"is_read"`
	Data       map[string]string `json:"data,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

// CreateInput is the payload for creating a notification.
type CreateInput struct {
	Title      string            `json:"title"`
	Message    string            `json:"message"`
	Type       string            `json:"type"`
	TargetDate *string           `json:"target_date,omitempty"`
	Priority   string            `json:"priority,omitempty"`
	Data       map[string]string `json:"data,omitempty"`
}

// APIError carries a non-2xx response that is not one of the sentinel
// conditions above.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// Client talks to the notification endpoints of a kakeibo-dashboard server.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a client for the given server base URL (e.g.
// http://localhost:8080) using the provided bearer access token.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) do(ctx context.Context, method, path string, body, result any) error {
	var bodyReader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		bodyReader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return c.errorFrom(resp)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}
	return nil
}

func (c *Client) errorFrom(resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusUnauthorized:
		return ErrUnauthenticated
	}

	var body struct {
		Error string `json:"error"`
	}
	message := resp.Status
	if json.NewDecoder(resp.Body).Decode(&body) == nil && body.Error != "" {
		message = body.Error
	}
	return &APIError{StatusCode: resp.StatusCode, Message: message}
}

func (c *Client) list(ctx context.Context) ([]Notification, error) {
	var result struct {
		Notifications []Notification `json:"notifications"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/notifications", nil, &result); err != nil {
		return nil, err
	}
	return result.Notifications, nil
}

func (c *Client) create(ctx context.Context, input CreateInput) (*Notification, error) {
	var result struct {
		Notification Notification `json:"notification"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/v1/notifications", input, &result); err != nil {
		return nil, err
	}
	return &result.Notification, nil
}

func (c *Client) markAsRead(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPut, "/api/v1/notifications/"+id+"/read", nil, nil)
}

func (c *Client) delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/notifications/"+id, nil, nil)
}

func (c *Client) clearAll(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/notifications", nil, nil)
}
