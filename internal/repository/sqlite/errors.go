package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/msomdec/userstore/internal/domain"
	moderncsqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// classify maps driver errors onto the domain taxonomy, keeping the driver
// error in the chain.
func classify(err error) error {
	if err == nil || errors.Is(err, sql.ErrNoRows) {
		return err
	}

	var sqliteErr *moderncsqlite.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code()&0xff == sqlite3.SQLITE_CONSTRAINT {
		return fmt.Errorf("%w: %w", domain.ErrConstraintViolation, err)
	}
	if strings.Contains(err.Error(), "no such table") {
		return fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
	}
	return err
}
