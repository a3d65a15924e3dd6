// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package identity

import (
	"context"
	"log/slog"

	"github.com/Shahidulislam34/mucsu-election-client/credstore"
	"github.com/Shahidulislam34/mucsu-election-client/models"
)

// State says which source produced the resolved identity. Unresolved is
// a terminal outcome, not an error: the caller degrades to logged-out
// behavior.
type State int

const (
	Unresolved State = iota
	FromContext
	FromCache
	FromClaims
	FromRemote
)

func (s State) String() string {
	switch s {
	case FromContext:
		return "context"
	case FromCache:
		return "cache"
	case FromClaims:
		return "claims"
	case FromRemote:
		return "remote"
	default:
		return "unresolved"
	}
}

// Source is one identity provider in the fallback chain. Resolve
// returns (nil, nil) when this source has nothing; errors are advisory
// and never stop the chain.
type Source interface {
	Resolve(ctx context.Context) (*models.VoterIdentity, error)
}

// Resolver produces the canonical voter identity by trying, in order:
// an already-known context identity, the cached user record, claims
// decoded from the credential, and the remote who-am-i endpoints.
//
// The resolver holds no state between calls: every Resolve re-reads the
// credential, so a sign-out (credential cleared) resets resolution to
// Unresolved on the next call.
type Resolver struct {
	known *models.VoterIdentity
	store credstore.Store
	chain []chainStep
}

type chainStep struct {
	state State
	src   Source
}

// WhoAmIClient is the remote who-am-i surface of the api client.
type WhoAmIClient interface {
	WhoAmI(ctx context.Context) (*models.VoterIdentity, error)
}

// New builds the standard chain. known is the context-provided identity
// and may be nil; store and client are the shared session dependencies.
func New(known *models.VoterIdentity, store credstore.Store, client WhoAmIClient) *Resolver {
	return &Resolver{
		known: known,
		store: store,
		chain: []chainStep{
			{FromCache, CacheSource{Store: store}},
			{FromClaims, ClaimsSource{Store: store}},
			{FromRemote, RemoteSource{Client: client}},
		},
	}
}

// Resolve walks the chain; the first source with a non-empty id wins.
//
// The context-provided identity needs no credential. Every other source
// requires one: without a stored credential resolution terminates
// immediately in Unresolved and no remote call is made, so a stale
// identity from a previous session can never leak through.
func (r *Resolver) Resolve(ctx context.Context) (*models.VoterIdentity, State) {
	if r.known != nil && r.known.ID != "" {
		return r.known, FromContext
	}

	if credstore.ReadToken(r.store) == "" {
		slog.Debug("no credential present, skipping identity rehydration")
		return nil, Unresolved
	}

	for _, step := range r.chain {
		if step.src == nil {
			continue
		}
		id, err := step.src.Resolve(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil, Unresolved
			}
			slog.Debug("identity source failed", "source", step.state, "error", err)
			continue
		}
		if id != nil && id.ID != "" {
			slog.Debug("voter identity resolved", "source", step.state, "voter_id", id.ID)
			return id, step.state
		}
	}

	slog.Debug("unable to resolve voter identity from any source despite credential")
	return nil, Unresolved
}
