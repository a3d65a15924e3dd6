// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ballot

import (
	"sort"

	"github.com/Shahidulislam34/mucsu-election-client/models"
)

// Composer holds the in-memory selection state: each office maps to at
// most one chosen candidate. Selections never outlive the session and
// are cleared on successful submission.
type Composer struct {
	selected map[string]string
}

func NewComposer() *Composer {
	return &Composer{selected: make(map[string]string)}
}

// Select records the choice for an office, replacing any prior
// selection there. Exactly-one-of semantics: never additive. An empty
// candidate id is equivalent to clearing the office.
func (c *Composer) Select(office, candidateID string) {
	if candidateID == "" {
		c.Clear(office)
		return
	}
	c.selected[office] = candidateID
}

// Clear removes one office's selection. Unknown offices are a no-op.
func (c *Composer) Clear(office string) {
	delete(c.selected, office)
}

// Reset empties all selections.
func (c *Composer) Reset() {
	c.selected = make(map[string]string)
}

// Selected returns the choice for an office, if any.
func (c *Composer) Selected(office string) (string, bool) {
	id, ok := c.selected[office]
	if id == "" {
		return "", false
	}
	return id, ok
}

// Count is the number of offices with a non-empty selection.
func (c *Composer) Count() int {
	n := 0
	for _, id := range c.selected {
		if id != "" {
			n++
		}
	}
	return n
}

// Records builds one VoteRecord per selected office, in office name
// order for determinism. Records exist only for the submission attempt.
func (c *Composer) Records(voterID string) []models.VoteRecord {
	offices := make([]string, 0, len(c.selected))
	for office, id := range c.selected {
		if id != "" {
			offices = append(offices, office)
		}
	}
	sort.Strings(offices)

	records := make([]models.VoteRecord, 0, len(offices))
	for _, office := range offices {
		records = append(records, models.VoteRecord{
			VoterID:     voterID,
			CandidateID: c.selected[office],
			Office:      office,
		})
	}
	return records
}
