// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// The backend has gone through several schema generations, so every
// entity may arrive under a handful of field spellings. Each alias list
// below is the single declared precedence for one target field; the
// first key with a usable value wins. All response-shape tolerance in
// the module funnels through this file.

var (
	idAliases           = []string{"_id", "id", "userId", "uid", "sub"}
	nameAliases         = []string{"full_name", "fullName", "name", "email"}
	departmentAliases   = []string{"department", "dept"}
	hasVotedAliases     = []string{"has_voted", "hasVoted"}
	roleAliases         = []string{"role", "role_name"}
	officeAliases       = []string{"position", "position_title"}
	studentIDAliases    = []string{"studentId", "student_id"}
	photoURLAliases     = []string{"photoUrl", "photo_url", "symbol"}
	displayOrderAliases = []string{"displayOrder", "display_order"}
	voteCountAliases    = []string{"votes", "vote_count", "voteCount"}

	titleAliases     = []string{"electionTitle", "election_title", "title"}
	startTimeAliases = []string{"startDate", "start_date", "voting_start_time"}
	endTimeAliases   = []string{"endDate", "end_date", "voting_end_time"}
	isActiveAliases  = []string{"isActive", "is_active"}
	maxVotesAliases  = []string{"maxVotesPerVoter", "max_votes_per_voter"}

	accessTokenAliases = []string{"accessToken", "token"}

	// candidateListKeys is tried, in order, on the direct candidate
	// response when it is not already a bare array.
	candidateListKeys = []string{"data", "candidates", "items"}

	// embeddedCandidateListKeys is tried on the config response when the
	// direct candidate fetch produced nothing.
	embeddedCandidateListKeys = []string{"data.candidates", "candidates", "data.items", "items", "data", "candidatesList"}

	// resultListKeys is tried on the /api/results response.
	resultListKeys = []string{"candidates", "data.candidates"}
)

// timeLayouts are accepted for the election window timestamps.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// NormalizeCandidate maps one raw candidate record to the canonical
// shape. A missing office falls back to the record's meta block, then
// to DefaultOffice.
func NormalizeCandidate(raw map[string]any) Candidate {
	meta := asObject(firstValue(raw, "meta", "metadata"))

	office := strings.TrimSpace(pickString(raw, meta, officeAliases))
	if office == "" {
		office = DefaultOffice
	}

	return Candidate{
		ID:           pickString(raw, nil, idAliases[:2]),
		Office:       office,
		FullName:     pickString(raw, meta, nameAliases),
		StudentID:    pickString(raw, meta, studentIDAliases),
		Department:   pickString(raw, meta, departmentAliases),
		PhotoURL:     pickString(raw, meta, photoURLAliases),
		Manifesto:    pickString(raw, meta, []string{"manifesto"}),
		DisplayOrder: pickInt(raw, meta, displayOrderAliases),
		VoteCount:    pickInt(raw, meta, voteCountAliases),
	}
}

// NormalizeCandidates normalizes every element of a raw list and sorts
// the result by (display order, full name). The sort is stable, so
// candidates with equal keys keep their arrival order.
func NormalizeCandidates(raw []any) []Candidate {
	out := make([]Candidate, 0, len(raw))
	for _, r := range raw {
		obj := asObject(r)
		if obj == nil {
			continue
		}
		out = append(out, NormalizeCandidate(obj))
	}
	SortCandidates(out)
	return out
}

// SortCandidates orders candidates by (DisplayOrder asc, FullName asc).
// This ordering is a load-bearing contract for deterministic listing.
func SortCandidates(cs []Candidate) {
	sort.SliceStable(cs, func(i, j int) bool {
		if cs[i].DisplayOrder != cs[j].DisplayOrder {
			return cs[i].DisplayOrder < cs[j].DisplayOrder
		}
		return cs[i].FullName < cs[j].FullName
	})
}

// NormalizeConfig maps a raw election-config response to the canonical
// shape. The config object may be the body itself or nested under
// "config". Returns nil when there is nothing usable.
func NormalizeConfig(raw any) *ElectionConfig {
	obj := asObject(raw)
	if obj == nil {
		return nil
	}
	if cfg := asObject(obj["config"]); cfg != nil {
		obj = cfg
	}

	ec := &ElectionConfig{
		Title:            pickString(obj, nil, titleAliases),
		Description:      pickString(obj, nil, []string{"description"}),
		StartTime:        pickTime(obj, startTimeAliases),
		EndTime:          pickTime(obj, endTimeAliases),
		IsActive:         pickBool(obj, isActiveAliases),
		MaxVotesPerVoter: pickInt(obj, nil, maxVotesAliases),
	}
	if ec.MaxVotesPerVoter <= 0 {
		ec.MaxVotesPerVoter = 1
	}
	return ec
}

// NormalizeIdentity maps a raw user/voter object to a VoterIdentity.
// Returns nil when no id can be extracted: an identity without an id is
// not an identity.
func NormalizeIdentity(raw map[string]any) *VoterIdentity {
	if raw == nil {
		return nil
	}
	// The payload may be nested under "user" or "voter".
	for _, k := range []string{"user", "voter"} {
		if inner := asObject(raw[k]); inner != nil {
			raw = inner
			break
		}
	}

	id := pickString(raw, nil, idAliases)
	if id == "" {
		return nil
	}

	role := pickString(raw, nil, roleAliases)
	if role == "" {
		if roles, ok := raw["roles"].([]any); ok && len(roles) > 0 {
			if obj := asObject(roles[0]); obj != nil {
				role = pickString(obj, nil, []string{"name"})
			} else {
				role = stringify(roles[0])
			}
		}
	}

	return &VoterIdentity{
		ID:          id,
		DisplayName: pickString(raw, nil, nameAliases),
		Department:  pickString(raw, nil, departmentAliases),
		HasVoted:    pickBool(raw, hasVotedAliases),
		Role:        role,
	}
}

// ExtractAuthResult pulls the access token, refresh token and user
// object from a register/login response body. Values may live at the
// top level or under "data"; a "Bearer " prefix on the token is
// stripped here so the rest of the module never sees one.
func ExtractAuthResult(raw any) AuthResult {
	obj := asObject(raw)
	if obj == nil {
		return AuthResult{}
	}

	var res AuthResult
	for _, scope := range []map[string]any{asObject(obj["data"]), obj} {
		if scope == nil {
			continue
		}
		if res.AccessToken == "" {
			res.AccessToken = StripBearer(pickString(scope, nil, accessTokenAliases))
		}
		if res.RefreshToken == "" {
			res.RefreshToken = pickString(scope, nil, []string{"refreshToken"})
		}
		if res.User == nil {
			res.User = asObject(scope["user"])
		}
	}
	return res
}

// StripBearer removes a leading "Bearer " scheme from a raw credential.
// Reads always normalize; writers of the Authorization header add the
// prefix back exactly once.
func StripBearer(raw string) string {
	raw = strings.TrimSpace(raw)
	rest, found := strings.CutPrefix(raw, "Bearer ")
	if !found {
		return raw
	}
	return strings.TrimSpace(rest)
}

// CandidateList extracts the raw candidate array from a direct
// /api/candidates response: a bare array, or the first array found
// under the conventional keys.
func CandidateList(raw any) []any {
	if arr, ok := raw.([]any); ok {
		return arr
	}
	return firstArray(asObject(raw), candidateListKeys)
}

// EmbeddedCandidateList extracts candidates embedded in the config
// response. Only consulted when the direct candidate fetch yields
// nothing: the direct result always wins.
func EmbeddedCandidateList(raw any) []any {
	return firstArray(asObject(raw), embeddedCandidateListKeys)
}

// ResultList extracts the candidate tally array from /api/results.
func ResultList(raw any) []any {
	if arr, ok := raw.([]any); ok {
		return arr
	}
	return firstArray(asObject(raw), resultListKeys)
}

// lookup helpers

func asObject(v any) map[string]any {
	obj, _ := v.(map[string]any)
	return obj
}

func firstValue(m map[string]any, keys ...string) any {
	for _, k := range keys {
		if v, ok := m[k]; ok && v != nil {
			return v
		}
	}
	return nil
}

// pickString returns the first non-empty string value for the alias
// list, consulting the record itself before its meta block. Numeric ids
// are stringified the way the backend renders them.
func pickString(m, meta map[string]any, keys []string) string {
	for _, scope := range []map[string]any{m, meta} {
		if scope == nil {
			continue
		}
		for _, k := range keys {
			if s := stringify(scope[k]); s != "" {
				return s
			}
		}
	}
	return ""
}

func pickInt(m, meta map[string]any, keys []string) int {
	for _, scope := range []map[string]any{m, meta} {
		if scope == nil {
			continue
		}
		for _, k := range keys {
			switch v := scope[k].(type) {
			case float64:
				return int(v)
			case string:
				if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
					return n
				}
			}
		}
	}
	return 0
}

func pickBool(m map[string]any, keys []string) bool {
	for _, k := range keys {
		if b, ok := m[k].(bool); ok {
			return b
		}
	}
	return false
}

func pickTime(m map[string]any, keys []string) *time.Time {
	for _, k := range keys {
		s, ok := m[k].(string)
		if !ok || s == "" {
			continue
		}
		for _, layout := range timeLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return &t
			}
		}
	}
	return nil
}

// firstArray resolves each key (dotted keys descend one level) and
// returns the first array found.
func firstArray(m map[string]any, keys []string) []any {
	if m == nil {
		return nil
	}
	for _, key := range keys {
		scope, k := m, key
		if head, tail, found := strings.Cut(key, "."); found {
			scope, k = asObject(m[head]), tail
			if scope == nil {
				continue
			}
		}
		if arr, ok := scope[k].([]any); ok {
			return arr
		}
	}
	return nil
}

func stringify(v any) string {
	switch v := v.(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		if v == float64(int64(v)) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}
