// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Shahidulislam34/mucsu-election-client/credstore"
	"github.com/Shahidulislam34/mucsu-election-client/models"
)

// meEndpoints are the "who am I" paths, tried in order until one
// returns a usable identity. Older backend deployments mounted the
// route in different places.
var meEndpoints = []string{"/api/auth/me", "/api/me", "/auth/me"}

// ErrNoToken is returned when an auth response carries no access token.
var ErrNoToken = errors.New("login failed")

// Register creates an account. When the response carries a token the
// session is persisted immediately, so a fresh registration is also a
// login.
func (c *Client) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResult, error) {
	data, err := c.do(ctx, http.MethodPost, "/api/auth/register", req)
	if err != nil {
		return models.AuthResult{}, err
	}

	res := models.ExtractAuthResult(data)
	if res.AccessToken != "" {
		if err := credstore.SaveSession(c.creds, res); err != nil {
			return res, err
		}
	}
	return res, nil
}

// Login signs in and persists the session. An accepted response without
// an access token is a failed login.
func (c *Client) Login(ctx context.Context, email, password string) (models.AuthResult, error) {
	data, err := c.do(ctx, http.MethodPost, "/api/auth/login", models.LoginRequest{Email: email, Password: password})
	if err != nil {
		return models.AuthResult{}, err
	}

	res := models.ExtractAuthResult(data)
	if res.AccessToken == "" {
		if msg := errorMessage(data, http.StatusUnauthorized); msg != "" && msg != http.StatusText(http.StatusUnauthorized) {
			return models.AuthResult{}, errors.New(msg)
		}
		return models.AuthResult{}, ErrNoToken
	}
	if err := credstore.SaveSession(c.creds, res); err != nil {
		return res, err
	}
	return res, nil
}

// Logout tells the backend to invalidate the session and clears local
// state regardless of the outcome. Backend errors are ignored: the
// local session ends either way.
func (c *Client) Logout(ctx context.Context) {
	req := models.LogoutRequest{RefreshToken: credstore.ReadRefreshToken(c.creds)}
	if _, err := c.do(ctx, http.MethodPost, "/api/auth/logout", req); err != nil {
		slog.Debug("logout call failed", "error", err)
	}
	credstore.Clear(c.creds)
}

// WhoAmI resolves the current identity remotely, trying each known
// endpoint until one yields an object with an id. Returns (nil, nil)
// when no endpoint does: an unresolvable identity is not an error here.
func (c *Client) WhoAmI(ctx context.Context) (*models.VoterIdentity, error) {
	for _, ep := range meEndpoints {
		data, err := c.do(ctx, http.MethodGet, ep, nil)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			slog.Debug("who-am-i endpoint failed", "endpoint", ep, "error", err)
			continue
		}
		if obj, ok := data.(map[string]any); ok {
			if id := models.NormalizeIdentity(obj); id != nil {
				return id, nil
			}
		}
	}
	return nil, nil
}

// Verify confirms voter eligibility against a student id. With a known
// voter id it calls the per-voter route; otherwise the email-based one.
func (c *Client) Verify(ctx context.Context, voterID, email, studentID string) (bool, error) {
	var (
		data any
		err  error
	)
	if voterID == "" {
		body := map[string]string{"email": email, "student_id": studentID}
		data, err = c.do(ctx, http.MethodPost, "/api/voters/verify", body)
	} else {
		body := map[string]string{"student_id": studentID}
		data, err = c.do(ctx, http.MethodPost, "/api/voters/"+voterID+"/verify", body)
	}
	if err != nil {
		return false, err
	}

	if obj, ok := data.(map[string]any); ok {
		if ok, _ := obj["ok"].(bool); ok {
			return true, nil
		}
		return false, errors.New(errorMessage(data, http.StatusUnprocessableEntity))
	}
	return false, errors.New("verification failed")
}
