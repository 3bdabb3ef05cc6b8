package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"mezcaltasting/internal/domain"
)

// Client talks to the authoritative REST backend. All repository adapters in
// this package share one Client.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

// NewClient returns a backend client for the given base URL.
func NewClient(baseURL string, httpClient *http.Client, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    httpClient,
		logger:  logger,
	}
}

// StatusError carries a non-2xx, non-404 backend status. 404 is mapped to
// domain.ErrNotFound instead because it drives the endpoint-shape fallbacks.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend returned status %d: %s", e.Status, e.Body)
}

// candidate is one endpoint shape for a request. Update and delete
// operations carry an ordered list of candidates; everything else uses one.
type candidate struct {
	method string
	path   string
	body   any
}

// do issues a single request. A JSON body is attached when body is non-nil.
// On 2xx the response is decoded into out unless out is nil or plainText is
// set (delete endpoints answer plain text, which is read and discarded).
func (c *Client) do(ctx context.Context, cand candidate, out any, plainText bool) error {
	var rd io.Reader
	if cand.body != nil {
		raw, err := json.Marshal(cand.body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		rd = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, cand.method, c.baseURL+cand.path, rd)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if cand.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s: %w", cand.method, cand.path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		_, _ = io.Copy(io.Discard, resp.Body)
		return domain.ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &StatusError{Status: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}
	if out == nil || plainText {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response from %s: %w", cand.path, err)
	}
	return nil
}

// tryInOrder runs the candidates in order, advancing to the next shape only
// on a 404. Any other failure is terminal, and exhausting every shape
// reports ErrNotFound. This is an endpoint-compatibility shim, not a retry
// policy: timeouts and server errors are never retried.
func (c *Client) tryInOrder(ctx context.Context, out any, plainText bool, candidates ...candidate) error {
	var lastErr error
	for i, cand := range candidates {
		err := c.do(ctx, cand, out, plainText)
		if err == nil {
			return nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return err
		}
		lastErr = err
		if i < len(candidates)-1 {
			c.logger.Warn("endpoint shape not found, trying fallback",
				"method", cand.method,
				"path", cand.path,
			)
		}
	}
	return lastErr
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, candidate{method: http.MethodGet, path: path}, out, false)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, candidate{method: http.MethodPost, path: path, body: body}, out, false)
}

func (c *Client) patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, candidate{method: http.MethodPatch, path: path, body: body}, out, false)
}

// deleteText issues a DELETE whose response body is plain text.
func (c *Client) deleteText(ctx context.Context, path string) error {
	return c.do(ctx, candidate{method: http.MethodDelete, path: path}, nil, true)
}
