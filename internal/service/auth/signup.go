package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/flashcards/internal/domain"
)

// Signup creates a user and logs it in. Returns domain.ErrAlreadyExists if
// the username is taken.
func (s *Service) Signup(ctx context.Context, creds Credentials) (*AuthResult, error) {
	creds = creds.normalized()
	if err := creds.Validate(s.cfg.MinPasswordLen); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), s.cfg.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("auth.Signup hash password: %w", err)
	}

	var result *AuthResult
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		user, err := s.users.Create(txCtx, &domain.User{
			ID:           uuid.New(),
			Username:     creds.Username,
			PasswordHash: string(hash),
			Created:      s.now().UTC(),
		})
		if err != nil {
			return err
		}

		result, err = s.openSession(txCtx, user)
		return err
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("auth.Signup: username %q: %w", creds.Username, domain.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("auth.Signup: %w", err)
	}

	s.log.InfoContext(ctx, "user signed up",
		slog.String("user_id", result.User.ID.String()),
		slog.String("username", result.User.Username),
	)
	return result, nil
}
