// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/Shahidulislam34/mucsu-election-client/models"
)

// LoadState is the single tagged state of a load flow. Exactly one
// value holds at a time; "loading" and "failed" cannot both be true.
type LoadState int

const (
	StateIdle LoadState = iota
	StateLoading
	StateLoaded
	StateFailed
)

func (s LoadState) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateFailed:
		return "failed"
	default:
		return "idle"
	}
}

// ErrLoadFailed is returned when both fetches fail; a single failed
// fetch degrades to a partial snapshot instead.
var ErrLoadFailed = errors.New("failed to load election data")

// Fetcher is the slice of the api client the loader needs.
type Fetcher interface {
	FetchElectionConfig(ctx context.Context) (any, error)
	FetchCandidates(ctx context.Context) (any, error)
}

// Snapshot is one load's result: the normalized config (nil when that
// fetch failed) and the candidate roster grouped by office.
type Snapshot struct {
	Config     *models.ElectionConfig
	Candidates []models.Candidate
	// Offices lists office names in ballot order (first appearance in
	// the sorted roster); ByOffice holds each office's candidates, each
	// group already in (display order, name) order.
	Offices  []string
	ByOffice map[string][]models.Candidate
}

// Loader fetches the election configuration and candidate roster.
// State is mutated only by the single flow of control driving Load;
// cancel the context to abandon an in-flight load.
type Loader struct {
	client Fetcher
	state  LoadState
}

func NewLoader(client Fetcher) *Loader {
	return &Loader{client: client, state: StateIdle}
}

func (l *Loader) State() LoadState { return l.state }

// Load issues the two fetches concurrently. Either may fail on its own:
// a failed config fetch degrades to a nil config, a failed candidate
// fetch falls back to candidates embedded in the config response. Only
// when both fail does Load return an error. The state always leaves
// "loading", whatever the outcome.
func (l *Loader) Load(ctx context.Context) (*Snapshot, error) {
	l.state = StateLoading

	var (
		rawConfig, rawCandidates any
		cfgErr, candErr          error
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rawConfig, cfgErr = l.client.FetchElectionConfig(gctx)
		return nil
	})
	g.Go(func() error {
		rawCandidates, candErr = l.client.FetchCandidates(gctx)
		return nil
	})
	_ = g.Wait()

	if ctx.Err() != nil {
		l.state = StateFailed
		return nil, ctx.Err()
	}
	if cfgErr != nil && candErr != nil {
		slog.Error("election data load failed", "config_error", cfgErr, "candidates_error", candErr)
		l.state = StateFailed
		return nil, ErrLoadFailed
	}
	if cfgErr != nil {
		slog.Warn("election config fetch failed", "error", cfgErr)
	}
	if candErr != nil {
		slog.Warn("candidate fetch failed", "error", candErr)
	}

	// The direct candidate fetch always wins; the config response is
	// only mined for candidates when it produced nothing.
	list := models.CandidateList(rawCandidates)
	if len(list) == 0 && rawConfig != nil {
		list = models.EmbeddedCandidateList(rawConfig)
	}

	snap := &Snapshot{
		Config:     models.NormalizeConfig(rawConfig),
		Candidates: models.NormalizeCandidates(list),
	}
	snap.Offices, snap.ByOffice = groupByOffice(snap.Candidates)

	l.state = StateLoaded
	return snap, nil
}

// groupByOffice buckets an already-sorted roster. Office order is first
// appearance, so the overall ballot order follows the candidate sort.
func groupByOffice(cands []models.Candidate) ([]string, map[string][]models.Candidate) {
	offices := []string{}
	byOffice := make(map[string][]models.Candidate)
	for _, c := range cands {
		office := c.Office
		if office == "" {
			office = models.DefaultOffice
		}
		if _, seen := byOffice[office]; !seen {
			offices = append(offices, office)
		}
		byOffice[office] = append(byOffice[office], c)
	}
	return offices, byOffice
}
