package domain

import (
	"time"

	"github.com/google/uuid"
)

// SessionTTL is the absolute lifetime of a login session.
const SessionTTL = 365 * 24 * time.Hour

// User is an account on the cloud backend.
type User struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
	Created      time.Time
}

// Session is an opaque bearer record looked up on every authenticated request.
type Session struct {
	ID      uuid.UUID
	UserID  uuid.UUID
	Created time.Time
	Expires time.Time
}

// NewSession creates a session for userID expiring ttl after now.
func NewSession(userID uuid.UUID, now time.Time, ttl time.Duration) Session {
	return Session{
		ID:      uuid.New(),
		UserID:  userID,
		Created: now,
		Expires: now.Add(ttl),
	}
}

// IsExpired returns true once now is past the expiry instant.
func (s *Session) IsExpired(now time.Time) bool {
	return now.After(s.Expires)
}
