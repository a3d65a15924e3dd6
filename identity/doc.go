// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package identity resolves the authenticated voter from multiple,
possibly stale sources.

Resolution is a strictly ordered fallback chain, each source an
independent one-method implementation:

 1. an identity already known to the caller (no credential needed)
 2. the cached user record in the credential store
 3. claims decoded (unverified) from the credential itself
 4. the backend's who-am-i endpoints

The first source producing a non-empty id wins. Without a stored
credential the chain terminates immediately in Unresolved and never
touches the network. Unresolved is a normal outcome: the caller shows
logged-out behavior rather than an error.
*/
package identity
