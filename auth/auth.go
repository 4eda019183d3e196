// Copyright (c) 2025 Purplefish Digital.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"strings"
)

// SessionCookieName is the cookie checked by the session guard.
const SessionCookieName = "app-auth"

// sessionContext domain-separates the session token from any other
// value ever derived from the shared password.
const sessionContext = "rankdash-session-v1"

var ErrInvalidSession = errors.New("invalid session token")

// SessionToken derives the opaque session cookie value from the shared
// application password. The cookie never carries the password itself,
// and the token is deterministic so no server-side session state is
// needed.
func SessionToken(password string) string {
	h := hmac.New(sha256.New, []byte(password))
	h.Write([]byte(sessionContext))
	sum := h.Sum(nil)
	// URL-safe base64 and trim padding for a cleaner cookie value
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}

// ValidateSession checks a presented cookie value against the token
// derived from the configured password.
func ValidateSession(token, password string) error {
	expected := SessionToken(password)
	if !hmac.Equal([]byte(token), []byte(expected)) {
		return ErrInvalidSession
	}
	return nil
}
