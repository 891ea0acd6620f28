// Package storage opens the local SQLite database, applies the embedded
// migrations and exposes the repositories built on top of it.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/noteskeeper/internal/client/migrations"
	"github.com/dmitrijs2005/noteskeeper/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/noteskeeper/internal/dbx"
	"github.com/dmitrijs2005/noteskeeper/internal/filex"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// Storage bundles the database handle with its repositories.
type Storage struct {
	DB       *sql.DB
	Metadata metadata.Repository
}

// RunMigrations applies every pending migration from the embedded FS.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	provider, err := goose.NewProvider(goose.DialectSQLite3, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("failed to create migration provider: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

// InitDatabase opens the database at dsn, creating its directory when
// needed, and migrates it.
func InitDatabase(ctx context.Context, dsn string) (*Storage, error) {
	if err := filex.EnsureParentDir(dsn); err != nil {
		return nil, fmt.Errorf("failed to prepare database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// a single connection keeps ":memory:" databases consistent and
	// serializes writers on file databases
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Storage{
		DB:       db,
		Metadata: metadata.NewSQLiteRepository(db),
	}, nil
}

// Close releases the database handle.
func (s *Storage) Close() error {
	return s.DB.Close()
}

// InTx runs fn with a metadata repository bound to a transaction. The
// transaction is committed when fn returns nil and rolled back otherwise.
// Panics roll back and are rethrown.
func (s *Storage) InTx(ctx context.Context, fn func(repo metadata.Repository) error) error {
	return dbx.WithTx(ctx, s.DB, func(tx dbx.DBTX) error {
		return fn(metadata.NewSQLiteRepository(tx))
	})
}
