// Package client is a small Go client for the activity signup API. It covers
// the three operations the web frontend performs: loading the roster,
// signing a student up, and removing a participant.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Activity is one entry of the roster returned by the API.
type Activity struct {
	Name            string   `json:"-"`
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// SpotsLeft returns the remaining capacity of the activity.
func (a Activity) SpotsLeft() int {
	return a.MaxParticipants - len(a.Participants)
}

// APIError is an application-level failure: the server answered with a
// non-2xx status and a JSON "detail" field.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Detail)
}

// Client talks to a remote activity signup service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the service at baseURL.
func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// NewWithHTTPClient creates a client using a caller-supplied http.Client.
func NewWithHTTPClient(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// LoadActivities fetches the full roster, keyed by activity name.
func (c *Client) LoadActivities(ctx context.Context) (map[string]Activity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/activities", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %v", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch activities: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var activities map[string]Activity
	if err := json.NewDecoder(resp.Body).Decode(&activities); err != nil {
		return nil, fmt.Errorf("failed to decode activities: %w", err)
	}
	for name, a := range activities {
		a.Name = name
		activities[name] = a
	}
	return activities, nil
}

// Signup registers an email for an activity and returns the server's
// confirmation message.
func (c *Client) Signup(ctx context.Context, activity, email string) (string, error) {
	endpoint := fmt.Sprintf("%s/activities/%s/signup?email=%s",
		c.baseURL, url.PathEscape(activity), url.QueryEscape(email))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request: %v", err)
	}
	return c.doMessage(req)
}

// RemoveParticipant takes an email off an activity's roster and returns the
// server's confirmation message.
func (c *Client) RemoveParticipant(ctx context.Context, activity, email string) (string, error) {
	endpoint := fmt.Sprintf("%s/activities/%s/participants/%s",
		c.baseURL, url.PathEscape(activity), url.PathEscape(email))

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request: %v", err)
	}
	return c.doMessage(req)
}

// doMessage executes a mutating request and decodes the {"message": ...}
// response body.
func (c *Client) doMessage(req *http.Request) (string, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return "", err
	}

	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	return body.Message, nil
}

// checkStatus turns a non-2xx response into an *APIError, surfacing the
// server's "detail" text verbatim when the body carries one.
func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	apiErr := &APIError{StatusCode: resp.StatusCode, Detail: "An error occurred"}
	raw, err := io.ReadAll(resp.Body)
	if err == nil {
		var body struct {
			Detail string `json:"detail"`
		}
		if json.Unmarshal(raw, &body) == nil && body.Detail != "" {
			apiErr.Detail = body.Detail
		}
	}
	return apiErr
}
