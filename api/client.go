// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/Shahidulislam34/mucsu-election-client/cliparse"
	"github.com/Shahidulislam34/mucsu-election-client/credstore"
)

// Client talks to the election backend. The credential store is
// injected; the client reads the normalized token from it on every
// request and adds the "Bearer " prefix exactly once.
type Client struct {
	base  string
	httpc *http.Client
	creds credstore.Store
}

func New(cfg cliparse.Config, creds credstore.Store) *Client {
	return &Client{
		base:  strings.TrimRight(cfg.BaseURL, "/"),
		httpc: &http.Client{Timeout: cfg.Timeout},
		creds: creds,
	}
}

// Store exposes the injected credential store to collaborators that
// share the session (identity resolution, sign-out).
func (c *Client) Store() credstore.Store { return c.creds }

// StatusError is a non-2xx response, normalized to one user-facing
// message: the body's message/error field when present, else the HTTP
// status text.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string { return e.Message }

// do issues one JSON request and returns the decoded body. A body that
// is not valid JSON is returned as its opaque text. A 401 anywhere
// clears all local credentials before the error is returned.
func (c *Client) do(ctx context.Context, method, path string, body any) (any, error) {
	url := c.base + path
	if !strings.HasPrefix(path, "/") {
		url = c.base + "/" + path
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	token := credstore.ReadToken(c.creds)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	slog.Debug("request", "method", method, "url", url, "has_auth", token != "")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	text, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var data any
	if len(text) > 0 {
		if err := json.Unmarshal(text, &data); err != nil {
			// Shape failure: treat the body as opaque text.
			data = string(text)
		}
	}

	if resp.StatusCode == http.StatusUnauthorized {
		// Stale credentials must not outlive a rejection.
		credstore.Clear(c.creds)
		slog.Debug("401 received, credentials cleared", "url", url)
		return nil, &StatusError{Status: resp.StatusCode, Message: "Unauthorized"}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		slog.Debug("request error", "url", url, "status", resp.StatusCode)
		return nil, &StatusError{Status: resp.StatusCode, Message: errorMessage(data, resp.StatusCode)}
	}

	return data, nil
}

// errorMessage picks the user-facing message for a non-2xx response:
// body message field, body error field, HTTP status text, generic.
func errorMessage(data any, status int) string {
	if obj, ok := data.(map[string]any); ok {
		for _, k := range []string{"message", "error"} {
			if s, ok := obj[k].(string); ok && s != "" {
				return s
			}
		}
	}
	if s := http.StatusText(status); s != "" {
		return s
	}
	return fmt.Sprintf("request failed with status %d", status)
}

// decode re-encodes a loosely parsed body into a typed struct.
func decode(data any, dst any) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode response: %w", err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
