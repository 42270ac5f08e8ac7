package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/fit-tracker/internal/logger"
	"github.com/MKhiriev/fit-tracker/internal/service"
	"github.com/MKhiriev/fit-tracker/internal/store"
	"github.com/MKhiriev/fit-tracker/models"
)

var ErrUserQuit = errors.New("вышел из программы")

type TUI struct {
	services  *service.ClientServices
	prefs     *store.PreferencesRepository
	buildInfo models.AppBuildInfo
}

func New(services *service.ClientServices, prefs *store.PreferencesRepository, buildInfo models.AppBuildInfo, _ *logger.Logger) (*TUI, error) {
	return &TUI{services: services, prefs: prefs, buildInfo: buildInfo}, nil
}

// Run starts the interactive loop. A session persisted by a previous run is
// restored first; when it holds a token the app opens straight on the
// dashboard, otherwise on the menu. The guard still re-checks the dashboard
// before showing it.
func (t *TUI) Run(ctx context.Context) error {
	pages := map[string]tea.Model{
		"menu":       NewMenuModel(),
		"login":      NewLoginModel(ctx, t.services.Session),
		"register":   NewRegisterModel(ctx, t.services.Session),
		"google":     NewGoogleLoginModel(ctx, t.services.Session),
		"dashboard":  NewDashboardModel(ctx, t.services),
		"meals":      NewMealsModel(ctx, t.services.Meals, t.services.Favorites),
		"favorites":  NewFavoritesModel(ctx, t.services.Favorites, t.services.Meals),
		"onboarding": NewOnboardingModel(ctx, t.services.Profile),
		"settings":   NewSettingsModel(ctx, t.services, t.prefs),
	}

	startPage := "menu"
	if _, err := t.services.Session.RestoreSession(ctx); err == nil && t.services.Session.IsAuthenticated(ctx) {
		startPage = "dashboard"
	}

	root := NewRootModel(ctx, t.services.Session, pages, startPage, t.buildInfo)
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen(), tea.WithReportFocus()).Run()
	if runErr != nil {
		return runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}
