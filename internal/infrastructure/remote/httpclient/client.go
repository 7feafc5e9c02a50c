package httpclient

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

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"rkanban/internal/domain/entity"
)

const (
	// RequestIDHeader carries the per-call correlation id
	RequestIDHeader = "X-Request-ID"

	defaultTimeout = 30 * time.Second
	maxErrorBody   = 4 << 10
)

// Client talks to the board API over HTTP. It keeps no board state and never
// retries; every failure comes back as *entity.SyncFailure.
type Client struct {
	baseURL      string
	client       *http.Client
	newRequestID func() string
}

type errorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// NewClient creates a client for the API at baseURL. A non-positive timeout
// uses the default.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		client:       &http.Client{Timeout: timeout},
		newRequestID: uuid.NewString,
	}
}

// BaseURL returns the API root the client talks to
func (c *Client) BaseURL() string {
	return c.baseURL
}

// call describes one API request
type call struct {
	op       string
	entityID string
	method   string
	path     string
	token    string
	public   bool
	body     any
}

// do performs the call and decodes a JSON response into out when both are
// present. An empty response body leaves out untouched.
func (c *Client) do(ctx context.Context, in call, out any) error {
	requestID := c.newRequestID()
	fail := func(status int, err error) error {
		return &entity.SyncFailure{
			Op:         in.op,
			EntityID:   in.entityID,
			RequestID:  requestID,
			StatusCode: status,
			Err:        err,
		}
	}

	if !in.public && in.token == "" {
		return fail(0, entity.ErrNotAuthenticated)
	}

	var body io.Reader
	if in.body != nil {
		payload, err := json.Marshal(in.body)
		if err != nil {
			return fail(0, fmt.Errorf("failed to marshal request: %w", err))
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, in.method, c.baseURL+in.path, body)
	if err != nil {
		return fail(0, fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)
	if in.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if !in.public {
		req.Header.Set("Authorization", "Bearer "+in.token)
	}

	logger := log.WithFields(log.Fields{"op": in.op, "request_id": requestID})
	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		logger.WithError(err).Debug("request failed")
		return fail(0, fmt.Errorf("HTTP request failed: %w", err))
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fail(resp.StatusCode, fmt.Errorf("failed to read response body: %w", err))
	}
	logger.WithFields(log.Fields{
		"status":   resp.StatusCode,
		"duration": time.Since(start),
	}).Debug("request completed")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fail(resp.StatusCode, errors.New(errorMessage(resp.StatusCode, respBody)))
	}

	if out == nil || len(bytes.TrimSpace(respBody)) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fail(resp.StatusCode, fmt.Errorf("failed to decode response: %w", err))
	}
	return nil
}

func errorMessage(status int, body []byte) string {
	var parsed errorResponse
	if json.Unmarshal(body, &parsed) == nil {
		if parsed.Message != "" {
			return parsed.Message
		}
		if parsed.Error != "" {
			return parsed.Error
		}
	}
	text := strings.TrimSpace(string(body))
	if len(text) > maxErrorBody {
		text = text[:maxErrorBody]
	}
	if text == "" {
		return http.StatusText(status)
	}
	return text
}
