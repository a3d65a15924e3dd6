// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Shahidulislam34/mucsu-election-client/identity"
	"github.com/Shahidulislam34/mucsu-election-client/models"
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Show aggregated tallies per office",
	RunE:  runResults,
}

var historyCmd = &cobra.Command{
	Use:   "history [voter-id]",
	Short: "Show a voter's cast votes",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runHistory,
}

func runResults(cmd *cobra.Command, args []string) error {
	s := newSession()
	defer s.close()

	candidates, err := s.client.Results(cmd.Context())
	if err != nil {
		return err
	}
	if len(candidates) == 0 {
		fmt.Println("No results yet.")
		return nil
	}

	offices := []string{}
	byOffice := map[string][]models.Candidate{}
	for _, c := range candidates {
		if _, seen := byOffice[c.Office]; !seen {
			offices = append(offices, c.Office)
		}
		byOffice[c.Office] = append(byOffice[c.Office], c)
	}

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	for _, office := range offices {
		group := byOffice[office]
		// Ranking within an office is by votes; the normalization sort
		// stays as the tie-break.
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].VoteCount > group[j].VoteCount
		})

		total := 0
		for _, c := range group {
			total += c.VoteCount
		}

		fmt.Fprintf(w, "%s\t\t\n", office)
		for rank, c := range group {
			pct := 0.0
			if total > 0 {
				pct = float64(c.VoteCount) / float64(total) * 100
			}
			fmt.Fprintf(w, "  %d. %s\t%d votes\t%.1f%%\n", rank+1, c.FullName, c.VoteCount, pct)
		}
		fmt.Fprintf(w, "\t\t\n")
	}
	return w.Flush()
}

func runHistory(cmd *cobra.Command, args []string) error {
	s := newSession()
	defer s.close()

	voterID := ""
	if len(args) == 1 {
		voterID = args[0]
	} else if voter, _ := identity.New(nil, s.store, s.client).Resolve(cmd.Context()); voter != nil {
		voterID = voter.ID
	}
	if voterID == "" {
		return errors.New("voter id not provided and not resolvable; log in or pass one")
	}

	history, err := s.client.VoteHistory(cmd.Context(), voterID)
	if err != nil {
		return err
	}

	name := history.Name
	if name == "" {
		name = voterID
	}
	fmt.Printf("Votes cast by %s: %d\n", name, len(history.Voted))
	for _, v := range history.Voted {
		if v.CandidateName != "" {
			fmt.Printf("  %s: %s\n", v.Office, v.CandidateName)
		} else {
			fmt.Printf("  %s: %s\n", v.Office, v.CandidateID)
		}
	}
	return nil
}
