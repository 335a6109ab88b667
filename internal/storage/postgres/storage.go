// Package postgres provides a PostgreSQL-backed note and account store.
package postgres

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"strings"

	"github.com/cristianoliveira/notedeck/internal/domain"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

// PostgresStorage implements domain.Store on PostgreSQL through pgx.
type PostgresStorage struct {
	db *sql.DB
}

var _ domain.Store = (*PostgresStorage)(nil)

// NewPostgresStorage connects to dsn and applies pending migrations.
func NewPostgresStorage(ctx context.Context, dsn string) (*PostgresStorage, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, fmt.Errorf("postgres storage: database url cannot be empty")
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres storage: open db: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres storage: ping: %w", err)
	}

	s := &PostgresStorage{db: db}
	if err := s.RunMigrations(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// RunMigrations applies the embedded goose migrations.
func (s *PostgresStorage) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("postgres storage: set dialect: %w", err)
	}
	if err := goose.UpContext(ctx, s.db, "migrations"); err != nil {
		return fmt.Errorf("postgres storage: migrate: %w", err)
	}
	return nil
}

// Close closes the connection pool.
func (s *PostgresStorage) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
