// Package postgres implements the user store on PostgreSQL through pgx's
// database/sql adapter.
package postgres

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/msomdec/userstore/internal/domain"
	"github.com/msomdec/userstore/internal/migrations"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// PoolOptions tunes the database/sql connection pool.
type PoolOptions struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// DB wraps a PostgreSQL connection pool and implements domain.Database.
type DB struct {
	SqlDB *sql.DB
	users *UserRepository
}

// New connects to the PostgreSQL server at dsn and verifies the connection.
func New(ctx context.Context, dsn string, opts PoolOptions) (*DB, error) {
	sqlDB, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if opts.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
	}
	if opts.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
	}
	if opts.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	db := &DB{SqlDB: sqlDB}
	db.users = NewUserRepository(db)
	return db, nil
}

// Migrate applies the embedded PostgreSQL migrations.
func (db *DB) Migrate(ctx context.Context) error {
	files, err := fs.Sub(migrationFiles, "migrations")
	if err != nil {
		return fmt.Errorf("open migrations: %w", err)
	}
	return migrations.Run(ctx, db.SqlDB, files, migrations.Postgres)
}

func (db *DB) Users() domain.UserRepository {
	return db.users
}

func (db *DB) Close() error {
	return db.SqlDB.Close()
}
