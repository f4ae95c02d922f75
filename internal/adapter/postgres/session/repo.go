// Package session implements the login Session repository using PostgreSQL.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/flashcards/internal/adapter/postgres"
	"github.com/heartmarshall/flashcards/internal/domain"
)

// Repo provides session persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new session repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const sessionColumns = `id, user_id, created_at, expires_at`

const createSQL = `
INSERT INTO sessions (id, user_id, created_at, expires_at)
VALUES ($1, $2, $3, $4)
RETURNING ` + sessionColumns

const getByIDSQL = `SELECT ` + sessionColumns + ` FROM sessions WHERE id = $1`

const deleteSQL = `DELETE FROM sessions WHERE id = $1`

const deleteExpiredSQL = `DELETE FROM sessions WHERE expires_at < $1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a session by id, expired or not.
// Returns domain.ErrNotFound if no such session exists.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	q := postgres.Conn(ctx, r.pool)

	s, err := scanSession(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "session", id)
	}
	return s, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new session.
func (r *Repo) Create(ctx context.Context, s *domain.Session) (*domain.Session, error) {
	q := postgres.Conn(ctx, r.pool)

	row := q.QueryRow(ctx, createSQL,
		s.ID,
		s.UserID,
		s.Created.UTC().Truncate(time.Microsecond),
		s.Expires.UTC().Truncate(time.Microsecond),
	)

	created, err := scanSession(row)
	if err != nil {
		return nil, postgres.MapError(err, "session", s.ID)
	}
	return created, nil
}

// Delete removes a session. Deleting a missing session is not an error.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.Conn(ctx, r.pool)

	if _, err := q.Exec(ctx, deleteSQL, id); err != nil {
		return postgres.MapError(err, "session", id)
	}
	return nil
}

// DeleteExpired removes every session whose expiry is before now and returns
// how many rows were deleted.
func (r *Repo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	q := postgres.Conn(ctx, r.pool)

	ct, err := q.Exec(ctx, deleteExpiredSQL, now.UTC())
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}
	return ct.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanSession(row pgx.Row) (*domain.Session, error) {
	var s domain.Session
	if err := row.Scan(&s.ID, &s.UserID, &s.Created, &s.Expires); err != nil {
		return nil, err
	}
	return &s, nil
}
