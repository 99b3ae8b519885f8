// Package tui renders the controller state in the terminal and turns key
// presses into controller intents.
//
// The bubbletea event loop is the only goroutine that touches the
// controller. Commands returned by the controller run on bubbletea's
// goroutines and come back as messages.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/rate-keeper/internal/controller"
	"github.com/MKhiriev/rate-keeper/internal/logger"
	"github.com/MKhiriev/rate-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	controller *controller.Controller
	buildInfo  models.AppBuildInfo
	noticeTTL  time.Duration

	logger *logger.Logger
}

func New(ctrl *controller.Controller, buildInfo models.AppBuildInfo, noticeTTL time.Duration, logger *logger.Logger) *TUI {
	return &TUI{
		controller: ctrl,
		buildInfo:  buildInfo,
		noticeTTL:  noticeTTL,
		logger:     logger.Component("tui"),
	}
}

// Run blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	model := newRootModel(ctx, t.controller, t.buildInfo, t.noticeTTL)

	if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("terminal ui stopped: %w", err)
	}

	t.logger.Info().Msg("terminal ui closed")
	return nil
}
