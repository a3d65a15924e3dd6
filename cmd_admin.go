// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Shahidulislam34/mucsu-election-client/models"
)

var candidateForm models.CandidateForm

var candidateCmd = &cobra.Command{
	Use:   "candidate",
	Short: "Maintain the candidate roster (admin)",
}

var candidateListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all candidates",
	RunE:  runCandidateList,
}

var candidateAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a candidate",
	RunE:  runCandidateAdd,
}

var candidateUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a candidate",
	Args:  cobra.ExactArgs(1),
	RunE:  runCandidateUpdate,
}

var candidateDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove a candidate",
	Args:  cobra.ExactArgs(1),
	RunE:  runCandidateDelete,
}

func init() {
	for _, c := range []*cobra.Command{candidateAddCmd, candidateUpdateCmd} {
		c.Flags().StringVar(&candidateForm.Name, "name", "", "Candidate name")
		c.Flags().StringVar(&candidateForm.Position, "position", "", "Office the candidate runs for")
		c.Flags().StringVar(&candidateForm.StudentID, "student-id", "", "Student id")
		c.Flags().StringVar(&candidateForm.Department, "department", "", "Department")
		c.Flags().StringVar(&candidateForm.PhotoURL, "photo-url", "", "Photo URL")
		c.Flags().StringVar(&candidateForm.Manifesto, "manifesto", "", "Manifesto text")
		c.Flags().IntVar(&candidateForm.DisplayOrder, "display-order", 0, "Ballot position within the office")
	}
	candidateAddCmd.MarkFlagRequired("name")
	candidateAddCmd.MarkFlagRequired("position")

	candidateCmd.AddCommand(candidateListCmd, candidateAddCmd, candidateUpdateCmd, candidateDeleteCmd)
}

func runCandidateList(cmd *cobra.Command, args []string) error {
	s := newSession()
	defer s.close()

	candidates, err := s.client.ListCandidates(cmd.Context())
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPOSITION\tDEPARTMENT\tORDER")
	for _, c := range candidates {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n", c.ID, c.FullName, c.Office, c.Department, c.DisplayOrder)
	}
	return w.Flush()
}

func runCandidateAdd(cmd *cobra.Command, args []string) error {
	s := newSession()
	defer s.close()

	if err := s.client.CreateCandidate(cmd.Context(), candidateForm); err != nil {
		return err
	}
	fmt.Println("Successfully added candidate")
	return nil
}

func runCandidateUpdate(cmd *cobra.Command, args []string) error {
	s := newSession()
	defer s.close()

	if err := s.client.UpdateCandidate(cmd.Context(), args[0], candidateForm); err != nil {
		return err
	}
	fmt.Println("Candidate updated successfully")
	return nil
}

func runCandidateDelete(cmd *cobra.Command, args []string) error {
	s := newSession()
	defer s.close()

	if err := s.client.DeleteCandidate(cmd.Context(), args[0]); err != nil {
		return err
	}
	fmt.Println("Candidate removed")
	return nil
}
