// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package api

import (
	"context"
	"net/http"

	"github.com/Shahidulislam34/mucsu-election-client/models"
)

type batchVotesRequest struct {
	Votes []models.VoteRecord `json:"votes"`
}

// SubmitVotes posts all vote records as one batch.
func (c *Client) SubmitVotes(ctx context.Context, records []models.VoteRecord) error {
	_, err := c.do(ctx, http.MethodPost, "/api/votes", batchVotesRequest{Votes: records})
	return err
}

// SubmitVote posts a single vote record. Used as the per-record
// fallback when the batch call fails.
func (c *Client) SubmitVote(ctx context.Context, record models.VoteRecord) error {
	_, err := c.do(ctx, http.MethodPost, "/api/votes", record)
	return err
}

// VoteHistory fetches a voter's cast votes for the dashboard.
func (c *Client) VoteHistory(ctx context.Context, voterID string) (*models.VoteHistory, error) {
	data, err := c.do(ctx, http.MethodGet, "/api/votes/"+voterID, nil)
	if err != nil {
		return nil, err
	}
	var history models.VoteHistory
	if err := decode(data, &history); err != nil {
		return nil, err
	}
	return &history, nil
}
