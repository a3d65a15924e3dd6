// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Shahidulislam34/mucsu-election-client/api"
	"github.com/Shahidulislam34/mucsu-election-client/cliparse"
	"github.com/Shahidulislam34/mucsu-election-client/credstore"
)

// Backend is a scripted election backend for client tests. Responses
// are registered per "METHOD /path" pattern; every request is counted
// so tests can assert exactly how many network calls were made.
type Backend struct {
	Server *httptest.Server

	mux   *http.ServeMux
	mu    sync.Mutex
	calls map[string]int
	total int
}

func NewBackend(t *testing.T) *Backend {
	t.Helper()

	b := &Backend{
		mux:   http.NewServeMux(),
		calls: make(map[string]int),
	}
	b.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.total++
		b.mu.Unlock()
		b.mux.ServeHTTP(w, r)
	}))
	t.Cleanup(b.Server.Close)
	return b
}

func (b *Backend) URL() string { return b.Server.URL }

// Handle registers a fixed JSON response for a pattern like
// "GET /api/candidates".
func (b *Backend) Handle(pattern string, status int, body any) {
	b.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if body != nil {
			if err := json.NewEncoder(w).Encode(body); err != nil {
				panic(err)
			}
		}
	})
}

// HandleFunc registers a handler for a pattern and counts its hits.
func (b *Backend) HandleFunc(pattern string, fn http.HandlerFunc) {
	b.mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.calls[pattern]++
		b.mu.Unlock()
		fn(w, r)
	})
}

// Calls returns how many requests matched the pattern.
func (b *Backend) Calls(pattern string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls[pattern]
}

// TotalCalls returns how many requests reached the backend at all,
// matched or not.
func (b *Backend) TotalCalls() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.total
}

// NewClient builds an api client pointed at the backend, with a fresh
// in-memory credential store.
func NewClient(t *testing.T, b *Backend) (*api.Client, *credstore.Memory) {
	t.Helper()

	store := credstore.NewMemory()
	cfg := cliparse.Config{BaseURL: b.URL()}
	return api.New(cfg, store), store
}

// SignedToken builds a structurally valid HS256 JWT carrying the given
// claims. The signature key is irrelevant: the client never verifies.
func SignedToken(t *testing.T, claims map[string]any) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims(claims))
	signed, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("Failed to sign test token: %v", err)
	}
	return signed
}

// ConfigBody builds a raw election-config response.
func ConfigBody(active bool, start, end *time.Time) map[string]any {
	cfg := map[string]any{
		"electionTitle": "Test Election",
		"isActive":      active,
	}
	if start != nil {
		cfg["startDate"] = start.Format(time.RFC3339)
	}
	if end != nil {
		cfg["endDate"] = end.Format(time.RFC3339)
	}
	return map[string]any{"config": cfg}
}

// CandidateBody builds one raw candidate record.
func CandidateBody(id, name, office string, order int) map[string]any {
	return map[string]any{
		"_id":          id,
		"full_name":    name,
		"position":     office,
		"displayOrder": order,
	}
}
