// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package api is the HTTP client for the election backend.

# Requests

Every request carries Content-Type: application/json and an
X-Request-ID correlation id. When the injected credential store holds a
token, the client attaches Authorization: Bearer <token>, adding the
scheme prefix exactly once (the store strips it on read).

# Errors

Failures normalize into one of:

  - a wrapped transport error (no response at all)
  - *StatusError for non-2xx responses, carrying the best available
    user-facing message (body message/error field, else status text)

A body that does not parse as JSON is handed back as opaque text rather
than failing the call. A 401 from any endpoint clears all local
credentials before the error is returned.

# Surface

Auth (register, login, logout, who-am-i, verify), election data
(config, candidates, results), vote submission (batch and single
fallback), vote history, and the admin candidate CRUD.
*/
package api
