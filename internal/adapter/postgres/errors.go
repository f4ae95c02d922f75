package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/flashcards/internal/domain"
)

// SQLSTATE codes the repositories translate.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
	codeNotNullViolation    = "23502"
	codeInvalidText         = "22P02"
)

var pgCodeErrors = map[string]error{
	codeUniqueViolation:     domain.ErrAlreadyExists,
	codeForeignKeyViolation: domain.ErrNotFound,
	codeCheckViolation:      domain.ErrValidation,
	codeNotNullViolation:    domain.ErrValidation,
	codeInvalidText:         domain.ErrValidation,
}

// MapError prefixes err with the entity and the id that identifies it to the
// caller (a card id, a user uuid, a username) and translates it to a domain
// error where one applies. Context errors are wrapped unchanged so callers
// can still tell a timeout from a database failure.
func MapError(err error, entity string, id any) error {
	if err == nil {
		return nil
	}

	target := err
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
	case errors.Is(err, pgx.ErrNoRows):
		target = domain.ErrNotFound
	default:
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if mapped, ok := pgCodeErrors[pgErr.Code]; ok {
				target = mapped
			}
		}
	}
	return fmt.Errorf("%s %v: %w", entity, id, target)
}
