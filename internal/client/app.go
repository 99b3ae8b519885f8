package client

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/MKhiriev/rate-keeper/internal/logger"
)

// probeTimeout bounds the startup health probe.
const probeTimeout = 5 * time.Second

type App struct {
	health   Pinger
	ui       UI
	storages io.Closer

	logger *logger.Logger
}

// NewApp wires the client runtime. storages is closed when Run returns.
func NewApp(health Pinger, ui UI, storages io.Closer, logger *logger.Logger) (*App, error) {
	if health == nil || ui == nil {
		return nil, fmt.Errorf("client app requires a health probe and a ui")
	}

	return &App{
		health:   health,
		ui:       ui,
		storages: storages,
		logger:   logger,
	}, nil
}

// Run blocks until the UI exits. An unreachable API only produces a
// warning: the UI reports the outage itself on the first call.
func (a *App) Run(ctx context.Context) error {
	ctx = a.logger.WithContext(ctx)

	defer func() {
		if a.storages == nil {
			return
		}
		if err := a.storages.Close(); err != nil {
			a.logger.Err(err).Msg("closing local storage failed")
		}
	}()

	probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
	if err := a.health.Ping(probeCtx); err != nil {
		a.logger.Warn().Err(err).Msg("rating api is not reachable at startup")
	} else {
		a.logger.Info().Msg("rating api is reachable")
	}
	cancel()

	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("client ui error: %w", err)
	}
	return nil
}
