// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package credstore

import (
	"encoding/json"
	"os"
	"sync"

	"github.com/Shahidulislam34/mucsu-election-client/models"
)

// Store is durable key/value storage for the bearer credential and the
// cached user record. It is always an injected dependency, never an
// ambient global, so tests can substitute Memory.
//
// Get must never fail loudly: an inaccessible store reads as empty.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Delete(keys ...string) error
	Close() error
}

// Storage key names. Earlier generations of the client wrote the
// credential under several different keys, and all of them are still
// honored on read, in this priority order.
var (
	TokenKeys = []string{"token", "accessToken", "access_token", "authToken", "auth_token", "authorization"}

	// envTokenVars stand in for the legacy cookie sources: consulted
	// only after every stored key comes up empty.
	envTokenVars = []string{"MUCSU_TOKEN", "MUCSU_ACCESS_TOKEN", "MUCSU_AUTH_TOKEN"}

	// UserKeys hold a cached JSON user record.
	UserKeys = []string{"user", "currentUser", "profile", "auth_user", "authUser"}

	RefreshTokenKey = "refreshToken"
)

// ReadToken returns the normalized bearer credential, or "" when none
// is stored. The "Bearer " prefix is stripped here; callers add it back
// exactly once when building an Authorization header.
func ReadToken(s Store) string {
	if s != nil {
		for _, k := range TokenKeys {
			if v, ok := s.Get(k); ok && v != "" {
				return models.StripBearer(v)
			}
		}
	}
	for _, name := range envTokenVars {
		if v := os.Getenv(name); v != "" {
			return models.StripBearer(v)
		}
	}
	return ""
}

// ReadRefreshToken returns the stored refresh token, if any.
func ReadRefreshToken(s Store) string {
	if s == nil {
		return ""
	}
	v, _ := s.Get(RefreshTokenKey)
	return v
}

// CachedUser parses the first stored user record that decodes as a JSON
// object. Corrupt entries are skipped, not reported.
func CachedUser(s Store) map[string]any {
	if s == nil {
		return nil
	}
	for _, k := range UserKeys {
		raw, ok := s.Get(k)
		if !ok || raw == "" {
			continue
		}
		var obj map[string]any
		if err := json.Unmarshal([]byte(raw), &obj); err == nil && obj != nil {
			return obj
		}
	}
	return nil
}

// SaveSession persists an authentication result under the current-
// generation key names.
func SaveSession(s Store, res models.AuthResult) error {
	if s == nil || res.AccessToken == "" {
		return nil
	}
	if err := s.Set("token", res.AccessToken); err != nil {
		return err
	}
	if res.RefreshToken != "" {
		if err := s.Set(RefreshTokenKey, res.RefreshToken); err != nil {
			return err
		}
	}
	if res.User != nil {
		if raw, err := json.Marshal(res.User); err == nil {
			return s.Set("user", string(raw))
		}
	}
	return nil
}

// Clear removes every known credential and cached-identity key. Safe to
// call when nothing is stored.
func Clear(s Store) {
	if s == nil {
		return
	}
	keys := make([]string, 0, len(TokenKeys)+len(UserKeys)+1)
	keys = append(keys, TokenKeys...)
	keys = append(keys, UserKeys...)
	keys = append(keys, RefreshTokenKey)
	// Best effort: a failed delete leaves the store as it was.
	_ = s.Delete(keys...)
}

// Memory is an in-memory Store for tests and for environments without a
// usable config directory.
type Memory struct {
	mu sync.Mutex
	m  map[string]string
}

func NewMemory() *Memory {
	return &Memory{m: make(map[string]string)}
}

func (s *Memory) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.m[key]
	return v, ok
}

func (s *Memory) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = value
	return nil
}

func (s *Memory) Delete(keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, k := range keys {
		delete(s.m, k)
	}
	return nil
}

func (s *Memory) Close() error { return nil }
