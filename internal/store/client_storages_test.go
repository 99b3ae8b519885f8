package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/rate-keeper/internal/config"
	"github.com/MKhiriev/rate-keeper/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestClientStorages_TokenSurvivesReopen exercises the real sqlite driver and
// the goose migrations: a token saved before closing is read back after the
// database is opened again.
func TestClientStorages_TokenSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	cfg := config.ClientStorage{DB: config.ClientDB{DSN: filepath.Join(t.TempDir(), "tokens.db")}}

	first, err := NewClientStorages(ctx, cfg, logger.Nop())
	require.NoError(t, err)

	_, err = first.TokenRepository.GetToken(ctx, 1)
	assert.ErrorIs(t, err, ErrTokenNotFound)

	require.NoError(t, first.TokenRepository.SaveToken(ctx, 1, "old"))
	require.NoError(t, first.TokenRepository.SaveToken(ctx, 1, "new"))
	require.NoError(t, first.TokenRepository.SaveToken(ctx, 3, "other"))
	require.NoError(t, first.Close())

	second, err := NewClientStorages(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	defer second.Close()

	token, err := second.TokenRepository.GetToken(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "new", token)

	token, err = second.TokenRepository.GetToken(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "other", token)
}

func TestCreateLocalDBFileIfNotExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fresh.db")

	require.NoError(t, createLocalDBFileIfNotExists(path))
	_, err := os.Stat(path)
	require.NoError(t, err)

	// second call leaves the existing file alone
	require.NoError(t, os.WriteFile(path, []byte("keep"), 0o600))
	require.NoError(t, createLocalDBFileIfNotExists(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "keep", string(data))
}

func TestClientStorages_CloseNil(t *testing.T) {
	var s *ClientStorages
	assert.NoError(t, s.Close())
}
