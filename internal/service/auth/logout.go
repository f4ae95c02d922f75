package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashcards/internal/domain"
)

// Logout deletes the session. Logging out of a missing session succeeds.
func (s *Service) Logout(ctx context.Context, sessionID uuid.UUID) error {
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("auth.Logout: %w", err)
	}

	s.log.InfoContext(ctx, "session closed", slog.String("session_id", sessionID.String()))
	return nil
}

// ValidateSession returns the session behind a cookie value.
// Unknown sessions yield domain.ErrUnauthorized. An expired session is deleted
// and yields domain.ErrSessionExpired, so a second attempt with the same
// cookie sees an unknown session.
func (s *Service) ValidateSession(ctx context.Context, sessionID uuid.UUID) (*domain.Session, error) {
	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.ValidateSession: %w", err)
	}

	if session.IsExpired(s.now()) {
		if err := s.sessions.Delete(ctx, session.ID); err != nil {
			return nil, fmt.Errorf("auth.ValidateSession delete expired: %w", err)
		}
		return nil, domain.ErrSessionExpired
	}

	return session, nil
}

// CleanupExpiredSessions removes every session past its expiry.
// Returns the number of sessions deleted. This is a maintenance operation.
func (s *Service) CleanupExpiredSessions(ctx context.Context) (int64, error) {
	count, err := s.sessions.DeleteExpired(ctx, s.now())
	if err != nil {
		s.log.ErrorContext(ctx, "session cleanup failed", slog.String("error", err.Error()))
		return 0, fmt.Errorf("auth.CleanupExpiredSessions: %w", err)
	}

	if count > 0 {
		s.log.InfoContext(ctx, "cleaned up expired sessions", slog.Int64("count", count))
	}
	return count, nil
}
