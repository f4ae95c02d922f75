package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashcards/internal/config"
	"github.com/heartmarshall/flashcards/internal/domain"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

// sessionRepo defines the session repository interface needed by auth service.
type sessionRepo interface {
	Create(ctx context.Context, session *domain.Session) (*domain.Session, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Session, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// txManager defines the transaction manager interface needed by auth service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements signup, login and session lifecycle.
type Service struct {
	log      *slog.Logger
	users    userRepo
	sessions sessionRepo
	tx       txManager
	cfg      config.AuthConfig
	now      func() time.Time
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	sessions sessionRepo,
	tx txManager,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:      logger.With("service", "auth"),
		users:    users,
		sessions: sessions,
		tx:       tx,
		cfg:      cfg,
		now:      time.Now,
	}
}

// openSession stores a fresh session for user.
func (s *Service) openSession(ctx context.Context, user *domain.User) (*AuthResult, error) {
	session := domain.NewSession(user.ID, s.now().UTC(), s.cfg.SessionTTL)
	created, err := s.sessions.Create(ctx, &session)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: user, Session: created}, nil
}
