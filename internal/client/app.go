package client

import (
	"context"
	"errors"

	"github.com/MKhiriev/fit-tracker/internal/config"
	"github.com/MKhiriev/fit-tracker/internal/logger"
	"github.com/MKhiriev/fit-tracker/internal/service"
	"github.com/MKhiriev/fit-tracker/internal/tui"
)

// App is the interactive client runtime. It owns the process lifecycle: the
// background token refresh job runs for as long as the TUI does.
type App struct {
	services *service.ClientServices
	ui       *tui.TUI
	workers  config.ClientWorkers
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, workers config.ClientWorkers, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client app requires services and ui")
	}
	return &App{services: services, ui: ui, workers: workers, logger: logger}, nil
}

// Run implements [Client]. It starts the silent refresh job, hands control
// to the TUI, and stops the job when the user leaves.
func (a *App) Run() error {
	ctx := context.Background()

	a.services.RefreshJob.Start(ctx, a.workers.RefreshInterval)
	defer a.services.RefreshJob.Stop()

	if err := a.ui.Run(ctx); err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			a.logger.Info().Msg("user quit")
			return nil
		}
		return err
	}

	return nil
}
