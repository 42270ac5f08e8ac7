package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/fit-tracker/internal/service"
	"github.com/MKhiriev/fit-tracker/models"
)

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global Ctrl+C quit
// 3) handles NavigateTo messages, passing protected targets through the
//    session guard
// 4) re-runs the guard when the terminal regains focus
// 5) delegates all other messages to the active page
type RootModel struct {
	ctx     context.Context
	session service.SessionService

	pages       map[string]tea.Model
	currentName string

	guardPending string
	buildInfo    models.AppBuildInfo

	showBuildInfo bool
	quitByUser    bool
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(ctx context.Context, session service.SessionService, pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		ctx:         ctx,
		session:     session,
		pages:       pages,
		currentName: startPage,
		buildInfo:   buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	current := r.pages[r.currentName]
	if current == nil {
		return nil
	}
	if protectedPages[r.currentName] {
		return tea.Batch(current.Init(), cmdGuardCheck(r.ctx, r.session, r.currentName))
	}
	return current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkeys for every page.
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			r.quitByUser = true
			return r, tea.Quit
		case "v":
			if r.isMenuPage() {
				r.showBuildInfo = !r.showBuildInfo
				return r, nil
			}
		case "esc":
			if r.showBuildInfo {
				r.showBuildInfo = false
				return r, nil
			}
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	// The terminal regained focus: the session may have been invalidated
	// while the app was in the background.
	if _, ok := msg.(tea.FocusMsg); ok {
		if protectedPages[r.currentName] {
			return r, cmdGuardCheck(r.ctx, r.session, r.currentName)
		}
		return r, nil
	}

	// Cross-page navigation.
	if nav, ok := msg.(NavigateTo); ok {
		if _, exists := r.pages[nav.Page]; !exists {
			return r, nil
		}

		if protectedPages[nav.Page] {
			r.guardPending = nav.Page
			return r, cmdGuardCheck(r.ctx, r.session, nav.Page)
		}
		return r.switchTo(nav.Page, nav.Payload)
	}

	if result, ok := msg.(guardResultMsg); ok {
		r.guardPending = ""
		if !result.allowed {
			return r.switchTo("login", SessionExpiredNotice{})
		}
		if result.target != r.currentName {
			return r.switchTo(result.target, nil)
		}
		return r, nil
	}

	// Finalize the login and google-login flows on success. Errors fall
	// through to the active page for display.
	if result, ok := msg.(LoginResult); ok && result.Err == nil {
		return r.switchTo("dashboard", nil)
	}

	current := r.pages[r.currentName]
	if current == nil {
		return r, nil
	}

	updated, cmd := current.Update(msg)
	r.pages[r.currentName] = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}
	current := r.pages[r.currentName]
	if current == nil {
		return renderPage("FitTracker", "", "")
	}
	return current.View()
}

func (r RootModel) switchTo(page string, payload tea.Msg) (tea.Model, tea.Cmd) {
	r.showBuildInfo = false
	r.currentName = page

	current := r.pages[page]
	if current == nil {
		return r, nil
	}
	if payload != nil {
		return r, tea.Batch(current.Init(), func() tea.Msg { return payload })
	}
	return r, current.Init()
}

func (r RootModel) isMenuPage() bool {
	return r.currentName == "menu"
}
