// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"

	"github.com/example/tlog/internal/ports/primary"
)

// wrapErr maps driver-level failures onto the primary error taxonomy, so a
// constraint rejection surfaces the same sentinel as boundary validation.
// The schema is the second guard: even a caller that skips the service
// layer cannot persist an invariant violation, and still gets a
// classifiable error back.
func wrapErr(op string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, primary.ErrNotFound)
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return fmt.Errorf("%s: %v: %w", op, err, primary.ErrConflict)
		case sqlite3.ErrConstraintForeignKey, sqlite3.ErrConstraintTrigger:
			return fmt.Errorf("%s: %v: %w", op, err, primary.ErrConflict)
		case sqlite3.ErrConstraintCheck, sqlite3.ErrConstraintNotNull:
			return fmt.Errorf("%s: %v: %w", op, err, primary.ErrValidation)
		}
	}

	return fmt.Errorf("%s: %w", op, err)
}

// notFound builds an ErrNotFound for an entity ID, used when an UPDATE or
// DELETE affected zero rows.
func notFound(entity, id string) error {
	return fmt.Errorf("%s %s: %w", entity, id, primary.ErrNotFound)
}
