package client

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/rate-keeper/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

type uiFunc func(ctx context.Context) error

func (f uiFunc) Run(ctx context.Context) error { return f(ctx) }

type closerSpy struct {
	closed int
	err    error
}

func (c *closerSpy) Close() error {
	c.closed++
	return c.err
}

func TestNewApp_RequiresDependencies(t *testing.T) {
	_, err := NewApp(nil, uiFunc(func(context.Context) error { return nil }), nil, logger.Nop())
	assert.Error(t, err)

	_, err = NewApp(pingerFunc(func(context.Context) error { return nil }), nil, nil, logger.Nop())
	assert.Error(t, err)
}

func TestApp_Run(t *testing.T) {
	tests := []struct {
		name    string
		pingErr error
		uiErr   error
		wantErr bool
	}{
		{name: "api reachable"},
		{name: "api unreachable still runs ui", pingErr: errors.New("connection refused")},
		{name: "ui failure is returned", uiErr: errors.New("no tty"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var pinged, ran bool
			storages := &closerSpy{}

			app, err := NewApp(
				pingerFunc(func(ctx context.Context) error {
					pinged = true
					_, hasDeadline := ctx.Deadline()
					assert.True(t, hasDeadline)
					return tt.pingErr
				}),
				uiFunc(func(ctx context.Context) error {
					ran = true
					_, hasDeadline := ctx.Deadline()
					assert.False(t, hasDeadline)
					return tt.uiErr
				}),
				storages,
				logger.Nop(),
			)
			require.NoError(t, err)

			err = app.Run(context.Background())
			if tt.wantErr {
				assert.ErrorIs(t, err, tt.uiErr)
			} else {
				assert.NoError(t, err)
			}
			assert.True(t, pinged)
			assert.True(t, ran)
			assert.Equal(t, 1, storages.closed)
		})
	}
}

func TestApp_Run_CloseErrorIsNotFatal(t *testing.T) {
	storages := &closerSpy{err: errors.New("database is locked")}
	app, err := NewApp(
		pingerFunc(func(context.Context) error { return nil }),
		uiFunc(func(context.Context) error { return nil }),
		storages,
		logger.Nop(),
	)
	require.NoError(t, err)

	assert.NoError(t, app.Run(context.Background()))
	assert.Equal(t, 1, storages.closed)
}
