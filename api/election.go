// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package api

import (
	"context"
	"net/http"

	"github.com/Shahidulislam34/mucsu-election-client/models"
)

// FetchElectionConfig returns the raw election-config response body.
// Normalization happens in the election loader, which also needs the
// raw body for the embedded-candidates fallback.
func (c *Client) FetchElectionConfig(ctx context.Context) (any, error) {
	return c.do(ctx, http.MethodGet, "/api/election-config", nil)
}

// FetchCandidates returns the raw candidate roster response body.
func (c *Client) FetchCandidates(ctx context.Context) (any, error) {
	return c.do(ctx, http.MethodGet, "/api/candidates", nil)
}

// Results fetches the aggregated tallies, normalized and sorted.
func (c *Client) Results(ctx context.Context) ([]models.Candidate, error) {
	data, err := c.do(ctx, http.MethodGet, "/api/results", nil)
	if err != nil {
		return nil, err
	}
	return models.NormalizeCandidates(models.ResultList(data)), nil
}
