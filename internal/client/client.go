package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rotoapp/roto-core/internal/logger"
)

// Client performs JSON POST requests against the recipe backend. Every
// request carries a fresh X-Request-ID and the stable X-Device-ID so the
// backend can correlate traces per install.
type Client struct {
	baseURL    string
	deviceID   string
	httpClient *http.Client
}

// New creates a Client. deviceID is the persisted install identifier;
// timeout bounds the whole request including body read.
func New(baseURL, deviceID string, timeout time.Duration) *Client {
	return &Client{
		baseURL:  baseURL,
		deviceID: deviceID,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Post sends body as JSON to baseURL+endpoint and decodes the 2xx response
// into out. Every failure maps into the closed taxonomy in errors.go.
func (c *Client) Post(ctx context.Context, endpoint string, body, out any) error {
	u, err := url.Parse(c.baseURL + endpoint)
	if err != nil || !u.IsAbs() {
		return ErrInvalidURL
	}

	// A body that cannot serialize fails the call outright rather than
	// going out on the wire empty.
	payload, err := json.Marshal(body)
	if err != nil {
		return &UnknownError{Cause: fmt.Errorf("encoding request body: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), bytes.NewReader(payload))
	if err != nil {
		return ErrInvalidURL
	}

	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	req.Header.Set("X-Device-ID", c.deviceID)

	logger.L().Debug("sending request",
		zap.String("endpoint", endpoint),
		zap.String("request_id", requestID))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &UnknownError{Cause: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &ServerError{StatusCode: resp.StatusCode}
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("%w: %v", ErrDecoding, err)
		}
	}
	return nil
}
