// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles client configuration.

Settings come from three layers, lowest priority first: a .env file in
the working directory (loaded via godotenv), environment variables, and
command line flags bound by the CLI.

Settings:

  - API_BASE_URL (-b): backend base URL (default http://localhost:4000);
    trailing slashes are stripped
  - REQUEST_TIMEOUT (-t): per-request timeout; zero means the transport
    default
  - CREDENTIAL_STORE (--store): path to the credential store file
    (default: the user config dir)
  - --verbose (-v): debug logging
*/
package cliparse
