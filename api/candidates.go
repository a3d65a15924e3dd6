// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package api

import (
	"context"
	"net/http"

	"github.com/Shahidulislam34/mucsu-election-client/models"
)

// ListCandidates fetches the roster, normalized and sorted.
func (c *Client) ListCandidates(ctx context.Context) ([]models.Candidate, error) {
	data, err := c.FetchCandidates(ctx)
	if err != nil {
		return nil, err
	}
	return models.NormalizeCandidates(models.CandidateList(data)), nil
}

// CreateCandidate adds one candidate to the roster (admin).
func (c *Client) CreateCandidate(ctx context.Context, form models.CandidateForm) error {
	_, err := c.do(ctx, http.MethodPost, "/api/candidates", form)
	return err
}

// UpdateCandidate partially updates one candidate (admin).
func (c *Client) UpdateCandidate(ctx context.Context, id string, form models.CandidateForm) error {
	_, err := c.do(ctx, http.MethodPatch, "/api/candidates/"+id, form)
	return err
}

// DeleteCandidate removes one candidate (admin).
func (c *Client) DeleteCandidate(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/candidates/"+id, nil)
	return err
}
