package auth

import "github.com/heartmarshall/flashcards/internal/domain"

// AuthResult is returned by Signup and Login. The session id is what the
// client keeps in its cookie.
type AuthResult struct {
	User    *domain.User
	Session *domain.Session
}
