package identity_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/Shahidulislam34/mucsu-election-client/credstore"
	"github.com/Shahidulislam34/mucsu-election-client/identity"
	"github.com/Shahidulislam34/mucsu-election-client/models"
	"github.com/Shahidulislam34/mucsu-election-client/testutil"
)

func clearEnvTokens(t *testing.T) {
	t.Helper()
	for _, name := range []string{"MUCSU_TOKEN", "MUCSU_ACCESS_TOKEN", "MUCSU_AUTH_TOKEN"} {
		t.Setenv(name, "")
	}
}

func TestResolveContextIdentityWins(t *testing.T) {
	clearEnvTokens(t)
	backend := testutil.NewBackend(t)
	client, store := testutil.NewClient(t, backend)
	store.Set("token", "tok-1")
	store.Set("user", `{"id":"cached"}`)

	known := &models.VoterIdentity{ID: "ctx-1", DisplayName: "Asha"}
	r := identity.New(known, store, client)

	id, state := r.Resolve(context.Background())
	if state != identity.FromContext || id == nil || id.ID != "ctx-1" {
		t.Fatalf("Resolve = %+v, %v; want ctx-1 from context", id, state)
	}
	if n := backend.TotalCalls(); n != 0 {
		t.Errorf("backend calls = %d, want 0", n)
	}
}

func TestResolveWithoutCredential(t *testing.T) {
	clearEnvTokens(t)
	backend := testutil.NewBackend(t)
	client, store := testutil.NewClient(t, backend)
	// A cached user without a credential must not resurrect a session.
	store.Set("user", `{"id":"stale"}`)

	r := identity.New(nil, store, client)

	id, state := r.Resolve(context.Background())
	if id != nil || state != identity.Unresolved {
		t.Fatalf("Resolve = %+v, %v; want nil, unresolved", id, state)
	}
	if n := backend.TotalCalls(); n != 0 {
		t.Errorf("backend calls = %d, want 0 without a credential", n)
	}
}

func TestResolveFromCache(t *testing.T) {
	clearEnvTokens(t)
	backend := testutil.NewBackend(t)
	client, store := testutil.NewClient(t, backend)
	store.Set("token", "tok-1")
	store.Set("currentUser", `{"_id":"v1","full_name":"Asha","has_voted":true}`)

	r := identity.New(nil, store, client)

	id, state := r.Resolve(context.Background())
	if state != identity.FromCache {
		t.Fatalf("state = %v, want cache", state)
	}
	if id.ID != "v1" || id.DisplayName != "Asha" || !id.HasVoted {
		t.Errorf("identity = %+v", id)
	}
	if n := backend.TotalCalls(); n != 0 {
		t.Errorf("backend calls = %d, want 0 when cache resolves", n)
	}
}

func TestResolveFromClaims(t *testing.T) {
	clearEnvTokens(t)
	backend := testutil.NewBackend(t)
	client, store := testutil.NewClient(t, backend)
	store.Set("token", testutil.SignedToken(t, map[string]any{
		"sub":  "claim-7",
		"name": "Rafi",
	}))

	r := identity.New(nil, store, client)

	id, state := r.Resolve(context.Background())
	if state != identity.FromClaims {
		t.Fatalf("state = %v, want claims", state)
	}
	if id.ID != "claim-7" || id.DisplayName != "Rafi" {
		t.Errorf("identity = %+v", id)
	}
	if n := backend.TotalCalls(); n != 0 {
		t.Errorf("backend calls = %d, want 0 when claims resolve", n)
	}
}

func TestResolveMalformedTokenFallsThroughToRemote(t *testing.T) {
	clearEnvTokens(t)
	backend := testutil.NewBackend(t)
	backend.Handle("GET /api/auth/me", http.StatusOK, map[string]any{
		"user": map[string]any{"_id": "remote-1", "name": "Mina"},
	})
	client, store := testutil.NewClient(t, backend)
	// Opaque (non-JWT) session token: claims decoding yields nothing and
	// must not abort the chain.
	store.Set("token", "opaque-session-token")

	r := identity.New(nil, store, client)

	id, state := r.Resolve(context.Background())
	if state != identity.FromRemote {
		t.Fatalf("state = %v, want remote", state)
	}
	if id.ID != "remote-1" {
		t.Errorf("identity = %+v", id)
	}
	if n := backend.Calls("GET /api/auth/me"); n != 1 {
		t.Errorf("who-am-i calls = %d, want 1", n)
	}
}

func TestResolveUnresolvedDespiteCredential(t *testing.T) {
	clearEnvTokens(t)
	backend := testutil.NewBackend(t)
	client, store := testutil.NewClient(t, backend)
	store.Set("token", "opaque-session-token")

	r := identity.New(nil, store, client)

	id, state := r.Resolve(context.Background())
	if id != nil || state != identity.Unresolved {
		t.Fatalf("Resolve = %+v, %v; want nil, unresolved", id, state)
	}
	// All three who-am-i endpoints were tried before giving up.
	if n := backend.TotalCalls(); n != 3 {
		t.Errorf("backend calls = %d, want 3", n)
	}
}

func TestResolveResetsAfterSignOut(t *testing.T) {
	clearEnvTokens(t)
	backend := testutil.NewBackend(t)
	client, store := testutil.NewClient(t, backend)
	store.Set("token", "tok-1")
	store.Set("user", `{"id":"v1"}`)

	r := identity.New(nil, store, client)

	if id, state := r.Resolve(context.Background()); state != identity.FromCache || id.ID != "v1" {
		t.Fatalf("first Resolve = %+v, %v", id, state)
	}

	credstore.Clear(store)

	if id, state := r.Resolve(context.Background()); id != nil || state != identity.Unresolved {
		t.Errorf("Resolve after sign-out = %+v, %v; want nil, unresolved", id, state)
	}
}

func TestResolveCancelledContext(t *testing.T) {
	clearEnvTokens(t)
	backend := testutil.NewBackend(t)
	client, store := testutil.NewClient(t, backend)
	store.Set("token", "opaque-session-token")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := identity.New(nil, store, client)
	if id, state := r.Resolve(ctx); id != nil || state != identity.Unresolved {
		t.Errorf("Resolve = %+v, %v; want nil, unresolved", id, state)
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state identity.State
		want  string
	}{
		{identity.Unresolved, "unresolved"},
		{identity.FromContext, "context"},
		{identity.FromCache, "cache"},
		{identity.FromClaims, "claims"},
		{identity.FromRemote, "remote"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("String(%d) = %q, want %q", int(tt.state), got, tt.want)
		}
	}
}
