// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package credstore reads and writes the bearer credential and cached user
record in durable client-side storage.

# Store

The Store interface is injected wherever credentials are needed; SQLite
(a single-file database in the user config dir) is the durable
implementation and Memory backs tests.

# Reading

ReadToken checks a fixed priority list of legacy storage keys, then a
fixed list of environment variables, and returns the first hit with any
"Bearer " prefix stripped:

	token := credstore.ReadToken(store)

Reads never fail loudly: an inaccessible store behaves like an empty
one.

# Clearing

Clear removes every known credential and cached-identity key and is safe
to call when nothing is stored. It runs on sign-out and whenever the
backend answers 401.
*/
package credstore
