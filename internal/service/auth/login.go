package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/flashcards/internal/domain"
)

// Login checks the password and opens a new session. An unknown username and
// a wrong password both yield domain.ErrUnauthorized.
func (s *Service) Login(ctx context.Context, creds Credentials) (*AuthResult, error) {
	creds = creds.normalized()
	if creds.Username == "" || creds.Password == "" {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByUsername(ctx, creds.Username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Login: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)); err != nil {
		s.log.InfoContext(ctx, "login rejected", slog.String("user_id", user.ID.String()))
		return nil, domain.ErrUnauthorized
	}

	result, err := s.openSession(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("auth.Login: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in", slog.String("user_id", user.ID.String()))
	return result, nil
}
