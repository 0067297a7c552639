package store

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrUsernameTaken = errors.New("username already registered")
	ErrEmailTaken    = errors.New("email already registered")
	ErrRoleNameTaken = errors.New("role name already taken")
)

// uniqueViolation maps a postgres unique-constraint violation (23505) to
// the sentinel naming the offending field. Constraint names come from the
// migrations. This is the race-safety backstop behind the form-level
// uniqueness checks: a duplicate slipping in between check and write still
// surfaces as the same field-scoped error.
func uniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
		return nil
	}
	switch pgErr.ConstraintName {
	case "users_username_key":
		return ErrUsernameTaken
	case "users_email_key":
		return ErrEmailTaken
	case "roles_name_key":
		return ErrRoleNameTaken
	}
	return nil
}
