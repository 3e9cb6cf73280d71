package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/msomdec/userstore/internal/domain"
)

// SQLSTATE codes, see https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	codeNotNullViolation = "23502"
	codeUniqueViolation  = "23505"
	codeCheckViolation   = "23514"
	codeUndefinedTable   = "42P01"
)

func classify(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case codeNotNullViolation, codeUniqueViolation, codeCheckViolation:
		return fmt.Errorf("%w: %w", domain.ErrConstraintViolation, err)
	case codeUndefinedTable:
		return fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
	}
	return err
}
