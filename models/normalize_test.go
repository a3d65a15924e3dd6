package models

import (
	"encoding/json"
	"testing"
	"time"
)

func mustParse(t *testing.T, raw string) any {
	t.Helper()
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		t.Fatalf("Failed to parse fixture: %v", err)
	}
	return v
}

func TestNormalizeCandidate(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Candidate
	}{
		{
			name: "snake_case record",
			raw:  `{"_id":"c1","full_name":"Asha Rahman","position":"President","student_id":"MU-101","display_order":2,"vote_count":7}`,
			want: Candidate{ID: "c1", FullName: "Asha Rahman", Office: "President", StudentID: "MU-101", DisplayOrder: 2, VoteCount: 7},
		},
		{
			name: "camelCase record",
			raw:  `{"id":"c2","fullName":"Binoy Das","position":"Secretary","studentId":"MU-102","displayOrder":1,"voteCount":3}`,
			want: Candidate{ID: "c2", FullName: "Binoy Das", Office: "Secretary", StudentID: "MU-102", DisplayOrder: 1, VoteCount: 3},
		},
		{
			name: "_id wins over id",
			raw:  `{"_id":"mongo","id":"legacy","name":"C"}`,
			want: Candidate{ID: "mongo", FullName: "C", Office: DefaultOffice},
		},
		{
			name: "missing office falls back to sentinel",
			raw:  `{"id":"c3","name":"Chitra Sen"}`,
			want: Candidate{ID: "c3", FullName: "Chitra Sen", Office: DefaultOffice},
		},
		{
			name: "blank office falls back to sentinel",
			raw:  `{"id":"c4","name":"Dulal Bose","position":"  "}`,
			want: Candidate{ID: "c4", FullName: "Dulal Bose", Office: DefaultOffice},
		},
		{
			name: "meta block fills gaps",
			raw:  `{"id":"c5","meta":{"name":"Esha Khan","position":"Treasurer","displayOrder":4}}`,
			want: Candidate{ID: "c5", FullName: "Esha Khan", Office: "Treasurer", DisplayOrder: 4},
		},
		{
			name: "record fields win over meta",
			raw:  `{"id":"c6","full_name":"Farid","position":"President","meta":{"name":"Wrong","position":"Secretary"}}`,
			want: Candidate{ID: "c6", FullName: "Farid", Office: "President"},
		},
		{
			name: "numeric id stringified",
			raw:  `{"id":42,"name":"Gita"}`,
			want: Candidate{ID: "42", FullName: "Gita", Office: DefaultOffice},
		},
		{
			name: "votes alias precedence",
			raw:  `{"id":"c7","name":"H","votes":5,"vote_count":9,"voteCount":11}`,
			want: Candidate{ID: "c7", FullName: "H", Office: DefaultOffice, VoteCount: 5},
		},
		{
			name: "symbol as photo fallback",
			raw:  `{"id":"c8","name":"I","symbol":"https://img/i.png"}`,
			want: Candidate{ID: "c8", FullName: "I", Office: DefaultOffice, PhotoURL: "https://img/i.png"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := mustParse(t, tt.raw).(map[string]any)
			got := NormalizeCandidate(raw)
			if got != tt.want {
				t.Errorf("NormalizeCandidate = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSortCandidatesStableAndTotal(t *testing.T) {
	in := []Candidate{
		{ID: "a", FullName: "Zara", DisplayOrder: 1},
		{ID: "b", FullName: "Anik", DisplayOrder: 0},
		{ID: "c", FullName: "Anik", DisplayOrder: 0},
		{ID: "d", FullName: "Mita", DisplayOrder: 1},
	}

	first := append([]Candidate(nil), in...)
	SortCandidates(first)

	wantIDs := []string{"b", "c", "d", "a"}
	for i, id := range wantIDs {
		if first[i].ID != id {
			t.Fatalf("order[%d] = %s, want %s", i, first[i].ID, id)
		}
	}

	// Equal keys keep relative order across repeated runs.
	for run := 0; run < 3; run++ {
		again := append([]Candidate(nil), first...)
		SortCandidates(again)
		for i := range first {
			if again[i].ID != first[i].ID {
				t.Fatalf("run %d: order changed at %d: %s vs %s", run, i, again[i].ID, first[i].ID)
			}
		}
	}
}

func TestNormalizeConfig(t *testing.T) {
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		raw        string
		wantNil    bool
		wantActive bool
		wantTitle  string
		wantStart  *time.Time
		wantMax    int
	}{
		{
			name:       "bare object with camelCase dates",
			raw:        `{"electionTitle":"MUCSU 2026","isActive":true,"startDate":"2026-03-01T09:00:00Z","maxVotesPerVoter":3}`,
			wantActive: true,
			wantTitle:  "MUCSU 2026",
			wantStart:  &start,
			wantMax:    3,
		},
		{
			name:       "nested under config with snake_case",
			raw:        `{"ok":true,"config":{"title":"Nested","is_active":true,"start_date":"2026-03-01T09:00:00Z"}}`,
			wantActive: true,
			wantTitle:  "Nested",
			wantStart:  &start,
			wantMax:    1,
		},
		{
			name:       "voting_start_time alias",
			raw:        `{"isActive":false,"voting_start_time":"2026-03-01T09:00:00Z"}`,
			wantActive: false,
			wantStart:  &start,
			wantMax:    1,
		},
		{
			name:    "nil input",
			raw:     `null`,
			wantNil: true,
		},
		{
			name:    "non-object input",
			raw:     `"oops"`,
			wantNil: true,
		},
		{
			name:       "missing max defaults to 1",
			raw:        `{"isActive":true}`,
			wantActive: true,
			wantMax:    1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeConfig(mustParse(t, tt.raw))
			if tt.wantNil {
				if got != nil {
					t.Fatalf("expected nil config, got %+v", got)
				}
				return
			}
			if got == nil {
				t.Fatal("expected config, got nil")
			}
			if got.IsActive != tt.wantActive {
				t.Errorf("IsActive = %v, want %v", got.IsActive, tt.wantActive)
			}
			if got.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", got.Title, tt.wantTitle)
			}
			if got.MaxVotesPerVoter != tt.wantMax {
				t.Errorf("MaxVotesPerVoter = %d, want %d", got.MaxVotesPerVoter, tt.wantMax)
			}
			if tt.wantStart == nil && got.StartTime != nil {
				t.Errorf("StartTime = %v, want nil", got.StartTime)
			}
			if tt.wantStart != nil && (got.StartTime == nil || !got.StartTime.Equal(*tt.wantStart)) {
				t.Errorf("StartTime = %v, want %v", got.StartTime, tt.wantStart)
			}
		})
	}
}

func TestNormalizeIdentity(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantNil bool
		want    VoterIdentity
	}{
		{
			name: "nested user object",
			raw:  `{"user":{"_id":"v1","full_name":"Asha","department":"CSE","has_voted":true,"role":"voter"}}`,
			want: VoterIdentity{ID: "v1", DisplayName: "Asha", Department: "CSE", HasVoted: true, Role: "voter"},
		},
		{
			name: "nested voter object",
			raw:  `{"voter":{"id":"v2","fullName":"Binoy"}}`,
			want: VoterIdentity{ID: "v2", DisplayName: "Binoy"},
		},
		{
			name: "bare object with claim-style id",
			raw:  `{"sub":"v3","name":"Chitra","hasVoted":false}`,
			want: VoterIdentity{ID: "v3", DisplayName: "Chitra"},
		},
		{
			name: "email as display name fallback",
			raw:  `{"uid":"v4","email":"v4@mu.edu"}`,
			want: VoterIdentity{ID: "v4", DisplayName: "v4@mu.edu"},
		},
		{
			name: "roles array object form",
			raw:  `{"id":"v5","name":"E","roles":[{"name":"admin"}]}`,
			want: VoterIdentity{ID: "v5", DisplayName: "E", Role: "admin"},
		},
		{
			name: "roles array string form",
			raw:  `{"id":"v6","name":"F","roles":["voter"]}`,
			want: VoterIdentity{ID: "v6", DisplayName: "F", Role: "voter"},
		},
		{
			name:    "no id means no identity",
			raw:     `{"full_name":"Nobody","department":"CSE"}`,
			wantNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeIdentity(mustParse(t, tt.raw).(map[string]any))
			if tt.wantNil {
				if got != nil {
					t.Fatalf("expected nil identity, got %+v", got)
				}
				return
			}
			if got == nil {
				t.Fatal("expected identity, got nil")
			}
			if *got != tt.want {
				t.Errorf("NormalizeIdentity = %+v, want %+v", *got, tt.want)
			}
		})
	}
}

func TestExtractAuthResult(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		wantToken   string
		wantRefresh string
	}{
		{
			name:      "top level token",
			raw:       `{"token":"tok-1"}`,
			wantToken: "tok-1",
		},
		{
			name:      "accessToken wins over token",
			raw:       `{"accessToken":"tok-a","token":"tok-b"}`,
			wantToken: "tok-a",
		},
		{
			name:        "nested data wins over top level",
			raw:         `{"data":{"accessToken":"nested","refreshToken":"r1"},"token":"top"}`,
			wantToken:   "nested",
			wantRefresh: "r1",
		},
		{
			name:      "bearer prefix stripped",
			raw:       `{"token":"Bearer tok-2"}`,
			wantToken: "tok-2",
		},
		{
			name:      "no token",
			raw:       `{"error":"bad credentials"}`,
			wantToken: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractAuthResult(mustParse(t, tt.raw))
			if got.AccessToken != tt.wantToken {
				t.Errorf("AccessToken = %q, want %q", got.AccessToken, tt.wantToken)
			}
			if got.RefreshToken != tt.wantRefresh {
				t.Errorf("RefreshToken = %q, want %q", got.RefreshToken, tt.wantRefresh)
			}
		})
	}
}

func TestCandidateListShapes(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{"bare array", `[{"id":"a"},{"id":"b"}]`, 2},
		{"under data", `{"data":[{"id":"a"}]}`, 1},
		{"under candidates", `{"candidates":[{"id":"a"},{"id":"b"},{"id":"c"}]}`, 3},
		{"under items", `{"items":[{"id":"a"}]}`, 1},
		{"data wins over candidates", `{"data":[{"id":"a"}],"candidates":[{"id":"b"},{"id":"c"}]}`, 1},
		{"nothing usable", `{"message":"hi"}`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CandidateList(mustParse(t, tt.raw))
			if len(got) != tt.want {
				t.Errorf("CandidateList len = %d, want %d", len(got), tt.want)
			}
		})
	}
}

func TestEmbeddedCandidateListShapes(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{"data.candidates", `{"data":{"candidates":[{"id":"a"}]}}`, 1},
		{"top level candidates", `{"candidates":[{"id":"a"},{"id":"b"}]}`, 2},
		{"data.items", `{"data":{"items":[{"id":"a"}]}}`, 1},
		{"data as array", `{"data":[{"id":"a"}]}`, 1},
		{"candidatesList", `{"candidatesList":[{"id":"a"}]}`, 1},
		{"none", `{"config":{}}`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EmbeddedCandidateList(mustParse(t, tt.raw))
			if len(got) != tt.want {
				t.Errorf("EmbeddedCandidateList len = %d, want %d", len(got), tt.want)
			}
		})
	}
}

func TestStripBearer(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Bearer abc", "abc"},
		{"Bearer  abc", "abc"},
		{"abc", "abc"},
		{"  abc  ", "abc"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := StripBearer(tt.in); got != tt.want {
			t.Errorf("StripBearer(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
