// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"time"

	"github.com/Shahidulislam34/mucsu-election-client/models"
)

// IsOpen reports whether the voting window is open at the given time.
// No config or an inactive election is closed regardless of dates. An
// active election with no dates at all is open unconditionally.
func IsOpen(cfg *models.ElectionConfig, now time.Time) bool {
	if cfg == nil || !cfg.IsActive {
		return false
	}
	start, end := cfg.StartTime, cfg.EndTime
	switch {
	case start != nil && end != nil:
		return !now.Before(*start) && !now.After(*end)
	case start != nil:
		return !now.Before(*start)
	case end != nil:
		return !now.After(*end)
	default:
		return true
	}
}

// CanSubmit reports whether submission controls should be enabled:
// window open, voter known and not already voted, at least one
// selection, and no submission in flight. These checks are advisory
// UX guards; the submitter re-checks and the server enforces.
func CanSubmit(cfg *models.ElectionConfig, voter *models.VoterIdentity, selections int, submitting bool, now time.Time) bool {
	if submitting || selections == 0 {
		return false
	}
	if voter == nil || voter.HasVoted {
		return false
	}
	return IsOpen(cfg, now)
}
