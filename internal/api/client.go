// Package api is the typed gateway to the notes backend REST API.
//
// Every method maps to one endpoint, takes a context, and returns an explicit
// error classified into the internal/apperr taxonomy. Nothing here retries or
// caches: callers own the refetch-after-mutation discipline.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"inkwell-cli/internal/apperr"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const defaultTimeout = 15 * time.Second

type Client struct {
	base string
	http *http.Client
	log  zerolog.Logger
}

type Options struct {
	// BaseURL is the backend base path including /api, e.g.
	// "http://localhost:8000/api".
	BaseURL string

	// HTTPClient overrides the default client (used by tests).
	HTTPClient *http.Client

	Logger zerolog.Logger
}

func New(opts Options) *Client {
	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		base: strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/"),
		http: hc,
		log:  opts.Logger,
	}
}

// call describes one request for do. kind/id feed the 404/409 error messages
// so callers get "note not found: n-1" rather than a bare status code.
type call struct {
	op     string
	kind   string
	id     string
	method string
	path   string
	query  url.Values
	body   any
}

func (c *Client) do(ctx context.Context, cl call, out any) error {
	u := c.base + cl.path
	if len(cl.query) > 0 {
		u += "?" + cl.query.Encode()
	}

	var body io.Reader
	if cl.body != nil {
		b, err := json.Marshal(cl.body)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", cl.op, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, u, body)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", cl.op, err)
	}
	if cl.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	reqID := uuid.NewString()
	req.Header.Set("X-Request-ID", reqID)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug().Str("op", cl.op).Str("request_id", reqID).Err(err).Msg("request failed")
		return &apperr.NetworkError{Op: cl.op, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	c.log.Debug().
		Str("op", cl.op).
		Str("method", cl.method).
		Str("path", cl.path).
		Int("status", resp.StatusCode).
		Dur("dur", time.Since(start)).
		Str("request_id", reqID).
		Msg("api call")

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		if out == nil {
			// Drain so the connection can be reused.
			_, _ = io.Copy(io.Discard, resp.Body)
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &apperr.NetworkError{Op: cl.op, Err: fmt.Errorf("decode response: %w", err)}
		}
		return nil
	case resp.StatusCode == http.StatusNotFound:
		return &apperr.NotFoundError{Kind: cl.kind, ID: cl.id}
	case resp.StatusCode == http.StatusConflict:
		return &apperr.ConflictError{Kind: cl.kind, Detail: readErrorDetail(resp.Body)}
	default:
		return &apperr.RemoteError{Op: cl.op, Status: resp.StatusCode}
	}
}

// readErrorDetail tries to pull a human-readable message out of an error body.
// Backends answer either {"message": "..."} or plain text; both fit in a toast.
func readErrorDetail(r io.Reader) string {
	b, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil || len(b) == 0 {
		return ""
	}
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(b, &body); err == nil {
		if body.Message != "" {
			return body.Message
		}
		if body.Error != "" {
			return body.Error
		}
	}
	s := strings.TrimSpace(string(b))
	if strings.HasPrefix(s, "{") {
		return ""
	}
	return s
}

func userQuery(userID string) url.Values {
	return url.Values{"userId": []string{userID}}
}
