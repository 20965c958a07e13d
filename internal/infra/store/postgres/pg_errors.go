package postgres

import (
	"errors"

	"stayhub/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	codeUniqueViolation    = "23505"
	codeExclusionViolation = "23P01"
)

// wrapErr translates driver errors into repository error kinds. The
// exclusion constraint on bookings surfaces as a conflict, matching what an
// availability check would have reported.
func wrapErr(msg string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return infra.WrapRepoErr(msg, err, infra.KindNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return infra.WrapRepoErr(msg, err, infra.KindDuplicateKey)
		case codeExclusionViolation:
			return infra.WrapRepoErr(msg, err, infra.KindConflict)
		}
	}

	return infra.WrapRepoErr(msg, err)
}
