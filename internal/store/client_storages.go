package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/rate-keeper/internal/config"
	"github.com/MKhiriev/rate-keeper/internal/logger"
)

// ClientStorages groups the client-side repositories together with the
// database handle they share.
type ClientStorages struct {
	// TokenRepository caches one session token per profile.
	TokenRepository LocalTokenRepository

	db *DB
}

// NewClientStorages opens the sqlite database named by cfg.DB.DSN (creating
// the file when missing), applies pending migrations and wires the repositories.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Str("dsn", cfg.DB.DSN).Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		TokenRepository: NewLocalTokenRepository(db, logger),
		db:              db,
	}, nil
}

// Close releases the underlying database handle.
func (s *ClientStorages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
