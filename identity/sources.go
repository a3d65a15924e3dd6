// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package identity

import (
	"context"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Shahidulislam34/mucsu-election-client/credstore"
	"github.com/Shahidulislam34/mucsu-election-client/models"
)

// CacheSource reads the user record cached in the credential store at
// login time.
type CacheSource struct {
	Store credstore.Store
}

func (s CacheSource) Resolve(ctx context.Context) (*models.VoterIdentity, error) {
	raw := credstore.CachedUser(s.Store)
	if raw == nil {
		return nil, nil
	}
	return models.NormalizeIdentity(raw), nil
}

// ClaimsSource decodes the credential as a JWT and uses its claims as a
// non-authoritative identity hint. The signature is not checked: the
// client has no verification key and the server re-checks everything
// anyway.
type ClaimsSource struct {
	Store credstore.Store
}

func (s ClaimsSource) Resolve(ctx context.Context) (*models.VoterIdentity, error) {
	token := credstore.ReadToken(s.Store)
	if token == "" {
		return nil, nil
	}

	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	// Malformed input yields no result, never a failure of the chain.
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, nil
	}
	return models.NormalizeIdentity(map[string]any(claims)), nil
}

// RemoteSource asks the backend who the credential belongs to. Last in
// the chain: it is the only source that costs a network round trip.
type RemoteSource struct {
	Client WhoAmIClient
}

func (s RemoteSource) Resolve(ctx context.Context) (*models.VoterIdentity, error) {
	if s.Client == nil {
		return nil, nil
	}
	return s.Client.WhoAmI(ctx)
}
