// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package election loads the election configuration and candidate roster,
and derives voting eligibility from them.

# Loading

Loader.Load issues the config and candidate fetches concurrently; each
may fail independently without failing the other. Candidates are
accepted from several response shapes, normalized, sorted by
(display order, name) and grouped by office into a Snapshot. Only when
both fetches fail does Load error.

# Eligibility

IsOpen evaluates the voting window (active flag plus optional start/end
times); CanSubmit adds the voter, selection and in-flight checks that
gate the submit control. Both are advisory: the backend owns
enforcement.
*/
package election
