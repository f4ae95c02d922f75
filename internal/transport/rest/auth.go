package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashcards/internal/config"
	"github.com/heartmarshall/flashcards/internal/domain"
	"github.com/heartmarshall/flashcards/internal/service/auth"
	"github.com/heartmarshall/flashcards/internal/transport/middleware"
	"github.com/heartmarshall/flashcards/internal/wire"
)

// authService defines the minimal interface needed by AuthHandler.
type authService interface {
	Signup(ctx context.Context, creds auth.Credentials) (*auth.AuthResult, error)
	Login(ctx context.Context, creds auth.Credentials) (*auth.AuthResult, error)
	Logout(ctx context.Context, sessionID uuid.UUID) error
}

// AuthHandler serves signup, login and logout. Sessions travel in an
// HTTP-only cookie.
type AuthHandler struct {
	svc    authService
	log    *slog.Logger
	cookie config.AuthConfig
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc authService, cfg config.AuthConfig, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, log: logger.With("handler", "auth"), cookie: cfg}
}

// Signup handles POST /auth/signup.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req wire.Credentials
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.svc.Signup(r.Context(), auth.Credentials{Username: req.Username, Password: req.Password})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			writeError(w, http.StatusBadRequest, "user already exists")
			return
		}
		handleError(w, r, h.log, err, "signup failed")
		return
	}

	h.setSessionCookie(w, result.Session)
	writeMessage(w, http.StatusCreated, "user created")
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req wire.Credentials
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.svc.Login(r.Context(), auth.Credentials{Username: req.Username, Password: req.Password})
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			writeError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		handleError(w, r, h.log, err, "login failed")
		return
	}

	h.setSessionCookie(w, result.Session)
	writeMessage(w, http.StatusOK, "logged in")
}

// Logout handles POST /auth/logout. It succeeds without a session too.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if sessionID, ok := middleware.SessionIDFromCookie(r, h.cookie.CookieName); ok {
		if err := h.svc.Logout(r.Context(), sessionID); err != nil {
			handleError(w, r, h.log, err, "logout failed")
			return
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookie.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	writeMessage(w, http.StatusOK, "logged out")
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, s *domain.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.CookieName,
		Value:    s.ID.String(),
		Path:     "/",
		Expires:  s.Expires,
		HttpOnly: true,
		Secure:   h.cookie.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}
