// Copyright (c) 2025 Purplefish Digital.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"github.com/purplefish/rankdash/auth"
	"github.com/purplefish/rankdash/cliparse"
	"github.com/purplefish/rankdash/middleware"
	"github.com/purplefish/rankdash/models"
)

// sessionMaxAge is the session cookie lifetime: 7 days.
const sessionMaxAge = 7 * 24 * 60 * 60

type AuthHandler struct {
	cfg cliparse.Config
}

func NewAuthHandler(cfg cliparse.Config) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

// Login handles POST /api/auth
// On a password match it sets the session cookie the guard checks.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid password")
		return
	}

	if subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.cfg.AppPassword)) != 1 {
		slog.Info("login rejected", "remote", r.RemoteAddr)
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid password")
		return
	}

	// The cookie carries a token derived from the password, never the
	// password itself. Secure is off: the dashboard runs over plain
	// HTTP inside the office network.
	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName,
		Value:    auth.SessionToken(h.cfg.AppPassword),
		Path:     "/",
		MaxAge:   sessionMaxAge,
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteStrictMode,
	})

	slog.Info("login succeeded", "remote", r.RemoteAddr)
	middleware.JSONResponse(w, http.StatusOK, models.SuccessResponse{Success: true})
}
