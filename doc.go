// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the mucsu-vote CLI, a client for the MUCSU
university election backend.

# Usage

Sign in, inspect the ballot and cast votes:

	mucsu-vote login --email you@mu.edu --password ...
	mucsu-vote ballot
	mucsu-vote vote --select "President=66f1a2" --select "Secretary=66f1b9"
	mucsu-vote results

# Configuration

Settings come from flags, environment variables or a .env file:

  - API_BASE_URL (-b): backend base URL (default http://localhost:4000)
  - REQUEST_TIMEOUT (-t): per-request timeout
  - CREDENTIAL_STORE (--store): credential store path

# Architecture

The CLI wires small client packages with injected dependencies:

  - credstore: bearer credential storage (legacy key compatible)
  - identity: multi-source voter identity resolution
  - election: config/candidate loading and the eligibility gate
  - ballot: selection state and submission (batch with fallback)
  - api: HTTP surface, error normalization, 401 handling
  - models: canonical shapes and response normalization
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
