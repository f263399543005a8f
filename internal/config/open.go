package config

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/me/agrirent/internal/session"
	"github.com/me/agrirent/internal/store"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// OpenStore builds the session.Store selected by cfg. The closer releases
// the database for the sqlite store and is a no-op otherwise.
func OpenStore(ctx context.Context, cfg ConsoleConfig, logger *slog.Logger) (session.Store, io.Closer, error) {
	path, err := cfg.ResolveSessionPath()
	if err != nil {
		return nil, nil, err
	}

	switch cfg.SessionStore {
	case StoreMemory:
		return session.NewMemoryStore(), nopCloser{}, nil
	case StoreFile:
		return session.NewFileStore(path), nopCloser{}, nil
	case StoreSQLite:
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return nil, nil, fmt.Errorf("create %s: %w", filepath.Dir(path), err)
		}
		st, err := store.NewSQLiteStore(path, logger)
		if err != nil {
			return nil, nil, err
		}
		if err := st.Migrate(ctx); err != nil {
			st.Close()
			return nil, nil, fmt.Errorf("migrate session database: %w", err)
		}
		logger.Debug("session database ready", "path", path)
		return st, st, nil
	default:
		return nil, nil, fmt.Errorf("unknown session store %q", cfg.SessionStore)
	}
}
