// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ballot

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Shahidulislam34/mucsu-election-client/election"
	"github.com/Shahidulislam34/mucsu-election-client/identity"
	"github.com/Shahidulislam34/mucsu-election-client/models"
)

// PreconditionError is a client-side business-rule rejection. It never
// reaches the network layer and its message is shown to the user as-is.
type PreconditionError struct {
	Message string
}

func (e *PreconditionError) Error() string { return e.Message }

var (
	ErrVotingClosed = &PreconditionError{"Voting is not currently open. Please ensure the election is active."}
	ErrAlreadyVoted = &PreconditionError{"You have already voted."}
	ErrNoSelection  = &PreconditionError{"Please select at least one candidate to submit."}
	ErrNotLoggedIn  = &PreconditionError{"You must be logged in to vote (missing voter id). Please login and try again."}
	ErrInFlight     = &PreconditionError{"A submission is already in progress."}
)

// VoteClient is the submission surface of the api client.
type VoteClient interface {
	SubmitVotes(ctx context.Context, records []models.VoteRecord) error
	SubmitVote(ctx context.Context, record models.VoteRecord) error
}

// IdentityResolver recovers a voter id when the caller has none.
type IdentityResolver interface {
	Resolve(ctx context.Context) (*models.VoterIdentity, identity.State)
}

// Submitter validates preconditions and sends the ballot: one batch
// attempt, then a sequential per-record fallback.
type Submitter struct {
	client   VoteClient
	resolver IdentityResolver
	now      func() time.Time
	inFlight bool
}

// NewSubmitter wires the submitter. resolver may be nil when the caller
// always supplies a resolved voter.
func NewSubmitter(client VoteClient, resolver IdentityResolver) *Submitter {
	return &Submitter{client: client, resolver: resolver, now: time.Now}
}

// Submitting reports whether a submission is in flight, for disabling
// the submit control.
func (s *Submitter) Submitting() bool { return s.inFlight }

// Submit checks the preconditions in order (the first failure wins and
// nothing is sent), builds one VoteRecord per selected office, and
// submits. On batch failure every record is retried individually and
// sequentially; if any individual request fails the whole submission is
// reported failed. The server may have kept some records by then -
// the client does not attempt compensating rollback.
//
// The window and already-voted checks run here again even though the UI
// gates its controls on the same rules: the composer trusts its caller,
// the submitter trusts no one.
//
// On success all selections are cleared and the submitted records are
// returned so the caller can reload election data.
func (s *Submitter) Submit(ctx context.Context, cfg *models.ElectionConfig, voter *models.VoterIdentity, comp *Composer) ([]models.VoteRecord, error) {
	if s.inFlight {
		return nil, ErrInFlight
	}
	s.inFlight = true
	defer func() { s.inFlight = false }()

	if !election.IsOpen(cfg, s.now()) {
		return nil, ErrVotingClosed
	}
	if voter != nil && voter.HasVoted {
		return nil, ErrAlreadyVoted
	}
	if comp == nil || comp.Count() == 0 {
		return nil, ErrNoSelection
	}

	voterID := ""
	if voter != nil {
		voterID = voter.ID
	}
	if voterID == "" && s.resolver != nil {
		if resolved, _ := s.resolver.Resolve(ctx); resolved != nil {
			if resolved.HasVoted {
				return nil, ErrAlreadyVoted
			}
			voterID = resolved.ID
		}
	}
	if voterID == "" {
		return nil, ErrNotLoggedIn
	}

	records := comp.Records(voterID)

	if err := s.client.SubmitVotes(ctx, records); err != nil {
		slog.Warn("batch vote submission failed, trying single requests", "error", err, "records", len(records))
		for _, record := range records {
			if err := s.client.SubmitVote(ctx, record); err != nil {
				slog.Error("single vote submission failed", "office", record.Office, "error", err)
				return nil, fmt.Errorf("failed to submit vote: %w", err)
			}
		}
	}

	slog.Info("votes submitted", "voter_id", voterID, "records", len(records))
	comp.Reset()
	return records, nil
}
