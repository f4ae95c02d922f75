package auth

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/flashcards/internal/domain"
)

const (
	maxUsernameLength = 64
	// bcrypt ignores everything past 72 bytes.
	maxPasswordBytes = 72
)

// Credentials holds a username and a plaintext password.
type Credentials struct {
	Username string
	Password string
}

func (c Credentials) normalized() Credentials {
	c.Username = strings.TrimSpace(c.Username)
	return c
}

// Validate checks the credentials for signup.
func (c Credentials) Validate(minPasswordLen int) error {
	var errs []domain.FieldError

	if c.Username == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	} else if utf8.RuneCountInString(c.Username) > maxUsernameLength {
		errs = append(errs, domain.FieldError{Field: "username", Message: "too long"})
	}

	switch {
	case utf8.RuneCountInString(c.Password) < minPasswordLen:
		errs = append(errs, domain.FieldError{Field: "password", Message: "too short"})
	case len(c.Password) > maxPasswordBytes:
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
