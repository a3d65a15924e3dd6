// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the canonical entity shapes exchanged with the
election backend, plus the normalization rules that map the backend's
assorted response spellings onto them.

# Entities

  - VoterIdentity: the resolved voter (id, display name, department,
    has-voted flag, role)
  - ElectionConfig: the election window snapshot
  - Candidate: one ballot entry, grouped by office
  - VoteRecord: one submission unit (voter, candidate, office)

# Normalization

The backend returns entities under several historical field spellings
(camelCase, snake_case, Mongo-style _id, values tucked into a meta
block). Each target field has exactly one ordered alias list declared
here, and one normalization function per entity applies it:

	c := models.NormalizeCandidate(raw)

Callers never probe alternate field names themselves.

# Ordering contract

NormalizeCandidates sorts by (display order asc, full name asc) with a
stable sort. Rendering and listing everywhere depend on this order.
*/
package models
