// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// DefaultOffice is the sentinel office assigned to candidates whose
// record carries no position.
const DefaultOffice = "Unspecified"

// Request types

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName,omitempty"`
	Role     string `json:"role,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refreshToken,omitempty"`
}

// CandidateForm is the camelCase payload the admin CRUD endpoints expect.
type CandidateForm struct {
	Name         string `json:"name"`
	Position     string `json:"position"`
	StudentID    string `json:"studentId"`
	Department   string `json:"department"`
	PhotoURL     string `json:"photoUrl"`
	Manifesto    string `json:"manifesto"`
	DisplayOrder int    `json:"displayOrder"`
}

// VoteRecord is one submission payload unit: one per office with a
// non-empty selection. Built at submission time, never persisted.
type VoteRecord struct {
	VoterID     string `json:"voterId"`
	CandidateID string `json:"candidateId"`
	Office      string `json:"position"`
}

// Domain types

// VoterIdentity is the canonical resolved voter for the session.
// ID is never empty on a resolved identity: an unresolvable id is the
// distinct "unresolved" outcome (a nil *VoterIdentity), never an
// identity with an empty-string id.
type VoterIdentity struct {
	ID          string `json:"id"`
	DisplayName string `json:"full_name"`
	Department  string `json:"department,omitempty"`
	HasVoted    bool   `json:"has_voted"`
	Role        string `json:"role,omitempty"`
}

// ElectionConfig is a read-only snapshot of the election window.
type ElectionConfig struct {
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	StartTime        *time.Time `json:"start_time,omitempty"`
	EndTime          *time.Time `json:"end_time,omitempty"`
	IsActive         bool       `json:"is_active"`
	MaxVotesPerVoter int        `json:"max_votes_per_voter"`
}

type Candidate struct {
	ID           string `json:"id"`
	Office       string `json:"position"`
	FullName     string `json:"full_name"`
	StudentID    string `json:"student_id,omitempty"`
	Department   string `json:"department,omitempty"`
	PhotoURL     string `json:"photo_url,omitempty"`
	Manifesto    string `json:"manifesto,omitempty"`
	DisplayOrder int    `json:"display_order"`
	VoteCount    int    `json:"vote_count"`
}

// AuthResult is what the register/login endpoints yield after
// normalization: the bearer token (prefix already stripped), an
// optional refresh token, and the raw user object when present.
type AuthResult struct {
	AccessToken  string
	RefreshToken string
	User         map[string]any
}

// VoteHistory is the GET /api/votes/:voterId response.
type VoteHistory struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Voted []CastVote `json:"voted"`
}

// CastVote is one entry in a voter's vote history.
type CastVote struct {
	Office        string `json:"position"`
	CandidateID   string `json:"candidateId"`
	CandidateName string `json:"candidateName,omitempty"`
}
