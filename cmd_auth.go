// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Shahidulislam34/mucsu-election-client/identity"
	"github.com/Shahidulislam34/mucsu-election-client/models"
)

var (
	registerEmail    string
	registerPassword string
	registerName     string

	loginEmail    string
	loginPassword string

	verifyStudentID string
	verifyEmail     string
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a voter account",
	RunE:  runRegister,
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and store the session credential",
	RunE:  runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Invalidate the session and clear stored credentials",
	RunE:  runLogout,
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the resolved voter identity",
	RunE:  runWhoami,
}

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Confirm voter eligibility against a student id",
	RunE:  runVerify,
}

func init() {
	registerCmd.Flags().StringVar(&registerEmail, "email", "", "Account email")
	registerCmd.Flags().StringVar(&registerPassword, "password", "", "Account password")
	registerCmd.Flags().StringVar(&registerName, "name", "", "Full name")
	registerCmd.MarkFlagRequired("email")
	registerCmd.MarkFlagRequired("password")

	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Account password")
	loginCmd.MarkFlagRequired("email")
	loginCmd.MarkFlagRequired("password")

	verifyCmd.Flags().StringVar(&verifyStudentID, "student-id", "", "Student id to verify")
	verifyCmd.Flags().StringVar(&verifyEmail, "email", "", "Email, used when no voter id is resolvable")
	verifyCmd.MarkFlagRequired("student-id")
}

func runRegister(cmd *cobra.Command, args []string) error {
	s := newSession()
	defer s.close()

	req := models.RegisterRequest{Email: registerEmail, Password: registerPassword, FullName: registerName}
	res, err := s.client.Register(cmd.Context(), req)
	if err != nil {
		return err
	}
	if res.AccessToken == "" {
		fmt.Println("Account created. Log in with: mucsu-vote login")
		return nil
	}
	fmt.Println("Account created and signed in.")
	return nil
}

func runLogin(cmd *cobra.Command, args []string) error {
	s := newSession()
	defer s.close()

	res, err := s.client.Login(cmd.Context(), loginEmail, loginPassword)
	if err != nil {
		return err
	}

	// Warm the voter cache; a failing who-am-i is not a failed login.
	if voter, _ := s.client.WhoAmI(cmd.Context()); voter != nil {
		fmt.Printf("Signed in as %s (%s)\n", voter.DisplayName, voter.ID)
		return nil
	}
	if name, ok := res.User["email"].(string); ok {
		fmt.Printf("Signed in as %s\n", name)
	} else {
		fmt.Println("Signed in.")
	}
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	s := newSession()
	defer s.close()

	s.client.Logout(cmd.Context())
	fmt.Println("Signed out.")
	return nil
}

func runWhoami(cmd *cobra.Command, args []string) error {
	s := newSession()
	defer s.close()

	voter, state := identity.New(nil, s.store, s.client).Resolve(cmd.Context())
	if voter == nil {
		fmt.Println("Not logged in.")
		return nil
	}

	fmt.Printf("Voter:      %s\n", voter.DisplayName)
	fmt.Printf("Id:         %s\n", voter.ID)
	if voter.Department != "" {
		fmt.Printf("Department: %s\n", voter.Department)
	}
	if voter.Role != "" {
		fmt.Printf("Role:       %s\n", voter.Role)
	}
	fmt.Printf("Has voted:  %v\n", voter.HasVoted)
	fmt.Printf("Source:     %s\n", state)
	return nil
}

func runVerify(cmd *cobra.Command, args []string) error {
	s := newSession()
	defer s.close()

	voterID := ""
	if voter, _ := identity.New(nil, s.store, s.client).Resolve(cmd.Context()); voter != nil {
		voterID = voter.ID
	}
	if voterID == "" && verifyEmail == "" {
		return errors.New("no voter id resolvable; pass --email to verify by email")
	}

	ok, err := s.client.Verify(cmd.Context(), voterID, verifyEmail, verifyStudentID)
	if err != nil {
		return err
	}
	if !ok {
		return errors.New("verification failed")
	}
	fmt.Println("Verification successful.")
	return nil
}
