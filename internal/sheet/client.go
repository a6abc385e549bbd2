// Package sheet talks to the spreadsheet-backed Apps Script endpoint that
// owns all persistent state. One URL serves both reads and writes: a GET
// returns the full record array, a POST either creates a record or applies
// an updateStatus action, depending on the body shape.
package sheet

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/PhoorinS/leave-system-dfd/internal/leave"
	"go.uber.org/zap"
)

// RequestFailedError reports a POST the script answered but did not accept.
// RawBody carries the verbatim response so it can be surfaced to the user.
type RequestFailedError struct {
	Status  string
	Message string
	RawBody string
}

func (e *RequestFailedError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("sheet request failed: %s (%s)", e.Status, e.Message)
	}
	return fmt.Sprintf("sheet request failed: %s", e.Status)
}

// FailureMessage and ResponseBody satisfy leave.UpstreamFailure.

func (e *RequestFailedError) FailureMessage() string { return e.Message }

func (e *RequestFailedError) ResponseBody() string { return e.RawBody }

type mutationResult struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type updateStatusAction struct {
	Action string `json:"action"`
	ID     string `json:"id"`
	Status string `json:"status"`
}

type Client struct {
	url        string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewClient(url string, timeout time.Duration, logger ...*zap.Logger) *Client {
	l := zap.L().Named("sheet.client")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("sheet.client")
	}
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
		logger:     l,
	}
}

// FetchAll reads the complete leave dataset.
func (c *Client) FetchAll(ctx context.Context) ([]leave.Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("sheet fetch: unexpected status %d", resp.StatusCode)
	}

	var records []leave.Record
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("sheet fetch: decode response: %w", err)
	}

	c.logger.Debug("fetched records", zap.Int("count", len(records)))
	return records, nil
}

// Submit creates a new record. The record itself is the request body,
// without any envelope.
func (c *Client) Submit(ctx context.Context, rec leave.Record) error {
	body, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return c.post(ctx, body)
}

// UpdateStatus applies an admin review decision to one record.
func (c *Client) UpdateStatus(ctx context.Context, id string, status leave.Status) error {
	body, err := json.Marshal(updateStatusAction{
		Action: "updateStatus",
		ID:     id,
		Status: string(status),
	})
	if err != nil {
		return err
	}
	return c.post(ctx, body)
}

func (c *Client) post(ctx context.Context, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	// Apps Script web apps ignore the content type; text/plain mirrors what
	// the browser client sent and avoids the script's CORS preflight path.
	req.Header.Set("Content-Type", "text/plain;charset=utf-8")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var result mutationResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return &RequestFailedError{Status: "unparseable", RawBody: string(raw)}
	}
	if result.Status != "success" {
		c.logger.Warn("sheet mutation rejected",
			zap.String("status", result.Status),
			zap.String("message", result.Message),
		)
		return &RequestFailedError{
			Status:  result.Status,
			Message: result.Message,
			RawBody: string(raw),
		}
	}
	return nil
}
