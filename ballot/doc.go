// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ballot composes and submits a voter's ballot.

Composer keeps the per-office selection map (one choice per office,
selecting again replaces). Submitter checks the preconditions in a
fixed order - window open, not already voted, at least one selection,
resolvable voter id - then posts all records as one batch, falling back
to sequential per-record requests when the batch fails.

The client has no idempotency key: duplicate submission is prevented
only by the in-flight guard and the server-acknowledged has-voted flag.
True duplicate prevention is the server's job.
*/
package ballot
