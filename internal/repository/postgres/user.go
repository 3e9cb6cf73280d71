package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/msomdec/userstore/internal/domain"
	"github.com/msomdec/userstore/internal/repository/sqlutil"
)

// Birthday leaves the server as text so both backends share one row decoder.
const selectUsers = `SELECT id, name, to_char(birthday, 'YYYY-MM-DD'), email, password, role, gender FROM users`

// UserRepository implements domain.UserRepository using PostgreSQL.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new PostgreSQL-backed UserRepository.
func NewUserRepository(db *DB) *UserRepository {
	return &UserRepository{db: db.SqlDB}
}

func (r *UserRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx, selectUsers+` ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", classify(err))
	}
	defer rows.Close()

	users, err := sqlutil.ScanUsers(rows)
	if err != nil {
		return nil, fmt.Errorf("scan users: %w", classify(err))
	}
	return users, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, bool, error) {
	if id <= 0 {
		return nil, false, nil
	}
	row := r.db.QueryRowContext(ctx, selectUsers+` WHERE id = $1`, id)
	return scanOne(row, "query user by id")
}

func (r *UserRepository) FindByEmailAndPassword(ctx context.Context, email, password string) (*domain.User, bool, error) {
	if email == "" || password == "" {
		return nil, false, nil
	}
	row := r.db.QueryRowContext(ctx, selectUsers+` WHERE email = $1 AND password = $2`, email, password)
	return scanOne(row, "query user by credentials")
}

func scanOne(row *sql.Row, op string) (*domain.User, bool, error) {
	user, err := sqlutil.ScanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("%s: %w", op, classify(err))
	}
	return user, true, nil
}

func (r *UserRepository) Save(ctx context.Context, user *domain.User) (*domain.User, error) {
	if user == nil {
		return nil, fmt.Errorf("save user: %w", domain.ErrNullInput)
	}

	var id int64
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO users (name, birthday, email, password, role, gender)
		 VALUES ($1, $2::text::date, $3, $4, $5, $6)
		 RETURNING id`,
		sqlutil.Args(user)...,
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", classify(err))
	}

	user.ID = id
	return user, nil
}

func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	if user == nil {
		return fmt.Errorf("update user: %w", domain.ErrNullInput)
	}

	args := append(sqlutil.Args(user), user.ID)
	result, err := r.db.ExecContext(ctx,
		`UPDATE users SET name = $1, birthday = $2::text::date, email = $3, password = $4, role = $5, gender = $6
		 WHERE id = $7`,
		args...,
	)
	if err != nil {
		return fmt.Errorf("update user: %w", classify(err))
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return sqlutil.NoRowsUpdated(user)
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) (bool, error) {
	if id <= 0 {
		return false, nil
	}

	result, err := r.db.ExecContext(ctx, "DELETE FROM users WHERE id = $1", id)
	if err != nil {
		return false, fmt.Errorf("delete user: %w", classify(err))
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return rows > 0, nil
}
