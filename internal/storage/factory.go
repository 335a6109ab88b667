// Package storage provides storage backend selection.
package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/cristianoliveira/notedeck/internal/config"
	"github.com/cristianoliveira/notedeck/internal/domain"
	"github.com/cristianoliveira/notedeck/internal/storage/memory"
	"github.com/cristianoliveira/notedeck/internal/storage/postgres"
	"github.com/cristianoliveira/notedeck/internal/storage/sqlite"
)

const (
	// BackendSQLite selects the local SQLite database.
	BackendSQLite = "sqlite"
	// BackendPostgres selects a PostgreSQL server given by database_url.
	BackendPostgres = "postgres"
	// BackendMemory keeps everything in process memory.
	BackendMemory = "memory"
)

// NewFromConfig creates the store selected by the loaded configuration.
func NewFromConfig(ctx context.Context) (domain.Store, error) {
	return NewForBackend(ctx, config.Get("storage_backend", BackendSQLite))
}

// NewForBackend creates a store for the provided backend name.
func NewForBackend(ctx context.Context, backend string) (domain.Store, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", BackendSQLite:
		return sqlite.NewSQLiteStorage(config.Get("db_path", ""))
	case BackendPostgres:
		dsn := config.Get("database_url", "")
		if dsn == "" {
			return nil, fmt.Errorf("storage: backend %q requires database_url", BackendPostgres)
		}
		return postgres.NewPostgresStorage(ctx, dsn)
	case BackendMemory:
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("storage: unknown backend %q", backend)
	}
}
