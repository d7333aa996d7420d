package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"skillforge/internal/mail"
	"skillforge/internal/middleware"
	"skillforge/internal/store"
	"skillforge/internal/token"
)

// Auth groups login, password reset, and the current-user endpoint.
type Auth struct {
	users   *store.UserStore
	signer  *token.Signer
	sender  mail.Sender
	baseURL string
}

// NewAuth creates the auth handler group. baseURL is the public origin
// used to build password reset links.
func NewAuth(users *store.UserStore, signer *token.Signer, sender mail.Sender, baseURL string) *Auth {
	return &Auth{
		users:   users,
		signer:  signer,
		sender:  sender,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Login checks credentials and issues an access token.
func (a *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Identifier string `json:"identifier"`
		Password   string `json:"password"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := a.users.FindByIdentifier(strings.TrimSpace(req.Identifier))
	if err != nil {
		slog.Error("login lookup failed", "error", err)
		respondError(w, http.StatusInternalServerError, "could not sign in")
		return
	}
	if user == nil || !a.users.CheckPassword(user, req.Password) {
		respondError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	raw, err := a.signer.IssueAccess(user)
	if err != nil {
		slog.Error("issue token failed", "error", err)
		respondError(w, http.StatusInternalServerError, "could not sign in")
		return
	}

	respond(w, http.StatusOK, "signed in", map[string]any{
		"token": raw,
		"user":  user,
	})
}

// Me returns the authenticated user's profile.
func (a *Auth) Me(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromCtx(r.Context())
	if claims == nil {
		respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	id, err := claims.UserID()
	if err != nil {
		respondError(w, http.StatusUnauthorized, "invalid token")
		return
	}

	user, err := a.users.FindByID(id)
	if err != nil {
		slog.Error("find user failed", "error", err)
		respondError(w, http.StatusInternalServerError, "could not load profile")
		return
	}
	if user == nil {
		respondError(w, http.StatusUnauthorized, "account no longer exists")
		return
	}

	respond(w, http.StatusOK, "profile", map[string]any{"user": user})
}

// RequestPasswordReset emails a reset link. The response is identical
// whether or not the address belongs to an account.
func (a *Auth) RequestPasswordReset(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	email := strings.TrimSpace(req.Email)
	if email == "" {
		respondError(w, http.StatusBadRequest, "email is required")
		return
	}

	const accepted = "if that address has an account, a reset link is on its way"

	user, err := a.users.FindByIdentifier(email)
	if err != nil {
		slog.Error("reset lookup failed", "error", err)
		respondError(w, http.StatusInternalServerError, "could not process request")
		return
	}
	if user == nil {
		respond(w, http.StatusOK, accepted, nil)
		return
	}

	raw, err := a.signer.IssueReset(user.ID)
	if err != nil {
		slog.Error("issue reset token failed", "error", err)
		respondError(w, http.StatusInternalServerError, "could not process request")
		return
	}

	resetURL := a.baseURL + "/admin/reset-password?token=" + url.QueryEscape(raw)
	subject, body := mail.PasswordReset(resetURL)

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		err := a.sender.Send(ctx, mail.SendRequest{
			To:      []string{user.Email},
			Subject: subject,
			HTML:    body,
		})
		if err != nil {
			slog.Error("reset email failed", "error", err, "user", user.ID)
		}
	}()

	respond(w, http.StatusOK, accepted, nil)
}

// ResetPassword sets a new password from a valid reset token.
func (a *Auth) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Token    string `json:"token"`
		Password string `json:"password"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(req.Password) < 8 {
		respondError(w, http.StatusBadRequest, "password must be at least 8 characters")
		return
	}

	claims, err := a.signer.VerifyReset(req.Token)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "invalid or expired reset token")
		return
	}
	id, err := claims.UserID()
	if err != nil {
		respondError(w, http.StatusUnauthorized, "invalid reset token")
		return
	}

	if err := a.users.SetPassword(id, req.Password); err != nil {
		slog.Error("set password failed", "error", err, "user", id)
		respondError(w, http.StatusInternalServerError, "could not update password")
		return
	}

	respond(w, http.StatusOK, "password updated", nil)
}
