// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Shahidulislam34/mucsu-election-client/ballot"
	"github.com/Shahidulislam34/mucsu-election-client/election"
	"github.com/Shahidulislam34/mucsu-election-client/identity"
)

var voteSelections []string

// postVoteDelay is the short pause before pointing the voter at their
// dashboard. Purely cosmetic.
const postVoteDelay = 1500 * time.Millisecond

var ballotCmd = &cobra.Command{
	Use:   "ballot",
	Short: "Show the ballot: offices and their candidates",
	RunE:  runBallot,
}

var voteCmd = &cobra.Command{
	Use:   "vote",
	Short: "Cast votes, one selection per office",
	Long: `Cast votes for the selected candidates.

Each --select pairs an office with a candidate id, at most one per
office (a repeated office replaces the earlier choice):

	mucsu-vote vote --select "President=66f1a2" --select "Secretary=66f1b9"`,
	RunE: runVote,
}

func init() {
	voteCmd.Flags().StringArrayVarP(&voteSelections, "select", "s", nil, "Office=CandidateID selection (repeatable)")
	voteCmd.MarkFlagRequired("select")
}

func runBallot(cmd *cobra.Command, args []string) error {
	s := newSession()
	defer s.close()

	snap, err := election.NewLoader(s.client).Load(cmd.Context())
	if err != nil {
		return err
	}

	if snap.Config != nil {
		title := snap.Config.Title
		if title == "" {
			title = "MUCSU Election Ballot"
		}
		fmt.Println(title)
		if open := election.IsOpen(snap.Config, time.Now()); open {
			fmt.Println("Status: voting open")
		} else {
			fmt.Println("Status: voting closed")
		}
		fmt.Println()
	}

	if len(snap.Offices) == 0 {
		fmt.Println("No candidates registered yet.")
		return nil
	}

	for _, office := range snap.Offices {
		group := snap.ByOffice[office]
		fmt.Printf("%s (%d candidate%s)\n", office, len(group), plural(len(group)))
		for _, c := range group {
			line := fmt.Sprintf("  %s  %s", c.ID, c.FullName)
			if c.Department != "" {
				line += "  - " + c.Department
			}
			fmt.Println(line)
		}
		fmt.Println()
	}
	return nil
}

func runVote(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	s := newSession()
	defer s.close()

	loader := election.NewLoader(s.client)
	snap, err := loader.Load(ctx)
	if err != nil {
		return err
	}

	resolver := identity.New(nil, s.store, s.client)
	voter, _ := resolver.Resolve(ctx)

	comp := ballot.NewComposer()
	for _, sel := range voteSelections {
		office, candidateID, found := strings.Cut(sel, "=")
		if !found || strings.TrimSpace(office) == "" {
			return fmt.Errorf("invalid --select %q, want Office=CandidateID", sel)
		}
		comp.Select(strings.TrimSpace(office), strings.TrimSpace(candidateID))
	}

	submitter := ballot.NewSubmitter(s.client, resolver)
	records, err := submitter.Submit(ctx, snap.Config, voter, comp)
	if err != nil {
		return err
	}

	fmt.Printf("Votes submitted successfully (%d office%s).\n", len(records), plural(len(records)))

	// Reload so vote counts and the has-voted flag reflect the cast
	// ballot; a failed reload does not un-submit anything.
	if _, err := loader.Load(ctx); err != nil {
		fmt.Println("Could not refresh election data:", err)
	}

	time.Sleep(postVoteDelay)
	fmt.Println("See your votes with: mucsu-vote history")
	return nil
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
