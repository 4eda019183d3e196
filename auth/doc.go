// Copyright (c) 2025 Purplefish Digital.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides session token derivation and validation.

The dashboard uses a single shared password with no per-user accounts.
Rather than placing that password in the session cookie, login sets an
opaque token derived from it:

	token := auth.SessionToken(cfg.AppPassword)

The session guard validates presented cookies in constant time:

	if err := auth.ValidateSession(cookie.Value, cfg.AppPassword); err != nil {
		// redirect to /login
	}

The token is HMAC-SHA256 keyed by the password over a fixed context
string, so it is deterministic per password, requires no server-side
session storage, and rotates automatically when the password changes.
*/
package auth
