// Package store provides a SQLite-backed implementation of session.Store
// for consoles that keep their state in a database file instead of JSON.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/me/agrirent/internal/session"

	_ "modernc.org/sqlite"
)

// SQLiteStore implements session.Store using SQLite. Each persisted field
// is one row of session_fields; an absent field has no row.
type SQLiteStore struct {
	db     *sql.DB
	logger *slog.Logger
}

var _ session.Store = (*SQLiteStore)(nil)

// NewSQLiteStore opens (or creates) a SQLite database at dbPath.
// Use ":memory:" for an in-memory database (useful in tests).
func NewSQLiteStore(dbPath string, logger *slog.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", dbPath, err)
	}

	// An in-memory database exists per connection.
	if dbPath == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("pragma wal: %w", err)
	}

	return &SQLiteStore{
		db:     db,
		logger: logger.With("component", "store"),
	}, nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Migrate creates all required tables.
func (s *SQLiteStore) Migrate(ctx context.Context) error {
	s.logger.Debug("sql", "op", "migrate")
	return migrate(ctx, s.db)
}

// Load reads every persisted field. Rows with unknown keys are ignored.
func (s *SQLiteStore) Load(ctx context.Context) (session.Fields, error) {
	s.logger.Debug("sql", "op", "select", "table", "session_fields")

	rows, err := s.db.QueryContext(ctx, `SELECT key, value FROM session_fields`)
	if err != nil {
		return session.Fields{}, fmt.Errorf("query session fields: %w", err)
	}
	defer rows.Close()

	var f session.Fields
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return session.Fields{}, fmt.Errorf("scan session field: %w", err)
		}
		f.Set(key, value)
	}
	if err := rows.Err(); err != nil {
		return session.Fields{}, fmt.Errorf("iterate session fields: %w", err)
	}
	return f, nil
}

// Save replaces all four fields in one transaction. Empty values are
// stored as absent.
func (s *SQLiteStore) Save(ctx context.Context, f session.Fields) error {
	s.logger.Debug("sql", "op", "upsert", "table", "session_fields")

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC().Format(time.RFC3339Nano)
	for _, key := range session.Keys {
		value := f.Get(key)
		if value == "" {
			if _, err := tx.ExecContext(ctx, `DELETE FROM session_fields WHERE key = ?`, key); err != nil {
				return fmt.Errorf("delete %s: %w", key, err)
			}
			continue
		}
		_, err := tx.ExecContext(ctx,
			`INSERT INTO session_fields (key, value, updated_at) VALUES (?, ?, ?)
			 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
			key, value, now,
		)
		if err != nil {
			return fmt.Errorf("upsert %s: %w", key, err)
		}
	}
	return tx.Commit()
}

// Clear deletes the four persisted fields.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	s.logger.Debug("sql", "op", "delete", "table", "session_fields")

	_, err := s.db.ExecContext(ctx,
		`DELETE FROM session_fields WHERE key IN (?, ?, ?, ?)`,
		session.KeyToken, session.KeyUsername, session.KeyRole, session.KeyName,
	)
	if err != nil {
		return fmt.Errorf("clear session fields: %w", err)
	}
	return nil
}
