// Package sqlutil holds the row encoding shared by the database/sql backed
// user repositories.
package sqlutil

import (
	"database/sql"
	"fmt"

	"github.com/msomdec/userstore/internal/dateformat"
	"github.com/msomdec/userstore/internal/domain"
)

// RowScanner is satisfied by *sql.Row and *sql.Rows.
type RowScanner interface {
	Scan(dest ...any) error
}

// ScanUser reads the columns id, name, birthday, email, password, role, gender
// in that order. Birthday must be selected as YYYY-MM-DD text.
func ScanUser(s RowScanner) (*domain.User, error) {
	var (
		u        domain.User
		name     sql.NullString
		birthday string
		role     string
		gender   string
	)
	if err := s.Scan(&u.ID, &name, &birthday, &u.Email, &u.Password, &role, &gender); err != nil {
		return nil, err
	}

	b, err := dateformat.Format(birthday)
	if err != nil {
		return nil, fmt.Errorf("user %d birthday: %w", u.ID, err)
	}
	u.Name = name.String
	u.Birthday = b
	u.Role = domain.Role(role)
	u.Gender = domain.Gender(gender)
	return &u, nil
}

// ScanUsers drains rows into a non-nil slice.
func ScanUsers(rows *sql.Rows) ([]domain.User, error) {
	users := []domain.User{}
	for rows.Next() {
		u, err := ScanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

// Args returns the bind values for name, birthday, email, password, role and
// gender. Empty required fields are bound as NULL so the NOT NULL constraints
// of the users table reject them.
func Args(u *domain.User) []any {
	return []any{
		nullable(u.Name),
		birthdayArg(u),
		nullable(u.Email),
		nullable(u.Password),
		nullable(string(u.Role)),
		nullable(string(u.Gender)),
	}
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func birthdayArg(u *domain.User) sql.NullString {
	if u.Birthday.IsZero() {
		return sql.NullString{}
	}
	return sql.NullString{String: dateformat.String(u.Birthday), Valid: true}
}

// MissingRequired reports whether u lacks a value for a NOT NULL column of the
// users table. Name is optional.
func MissingRequired(u *domain.User) bool {
	return u.Birthday.IsZero() ||
		u.Email == "" ||
		u.Password == "" ||
		u.Role == "" ||
		u.Gender == ""
}

// NoRowsUpdated is the error for an UPDATE that matched no row. A user missing
// required values is a constraint violation even when its id does not exist,
// since the database skips NOT NULL checks when nothing matches.
func NoRowsUpdated(u *domain.User) error {
	if MissingRequired(u) {
		return fmt.Errorf("%w: user %d is missing a required field", domain.ErrConstraintViolation, u.ID)
	}
	return domain.ErrNotFound
}
