package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashcards/internal/domain"
	"github.com/heartmarshall/flashcards/pkg/ctxutil"
)

type sessionValidator interface {
	ValidateSession(ctx context.Context, sessionID uuid.UUID) (*domain.Session, error)
}

// Auth rejects requests without a live session cookie with 401 and puts the
// session's user and id into the context otherwise.
func Auth(validator sessionValidator, cookieName string, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID, ok := SessionIDFromCookie(r, cookieName)
			if !ok {
				writeError(w, http.StatusUnauthorized, "not authorized")
				return
			}

			session, err := validator.ValidateSession(r.Context(), sessionID)
			switch {
			case err == nil:
			case errors.Is(err, domain.ErrSessionExpired):
				writeError(w, http.StatusUnauthorized, "session expired")
				return
			case errors.Is(err, domain.ErrUnauthorized):
				writeError(w, http.StatusUnauthorized, "not authorized")
				return
			default:
				logger.ErrorContext(r.Context(), "session lookup failed", slog.String("error", err.Error()))
				writeError(w, http.StatusInternalServerError, "internal server error")
				return
			}

			ctx := ctxutil.WithUserID(r.Context(), session.UserID)
			ctx = ctxutil.WithSessionID(ctx, session.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionIDFromCookie parses the session cookie. A missing or malformed
// cookie reports false.
func SessionIDFromCookie(r *http.Request, cookieName string) (uuid.UUID, bool) {
	c, err := r.Cookie(cookieName)
	if err != nil || c.Value == "" {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(c.Value)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
