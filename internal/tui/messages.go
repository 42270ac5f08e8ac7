package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/fit-tracker/models"
)

// NavigateTo switches the active page of [RootModel]. Navigation into a
// protected page goes through the session guard first.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult finishes the login and google-login flows.
type LoginResult struct {
	Err  error
	User models.User
}

// RegisterResult finishes the registration flow. LoggedIn is true when the
// backend issued tokens right away; otherwise the user is sent back to the
// menu with a notice to log in.
type RegisterResult struct {
	Err      error
	User     models.User
	LoggedIn bool
}

// RegisterSuccessNotice is shown on the menu after a registration that did
// not issue tokens.
type RegisterSuccessNotice struct {
	Email string
}

// SessionExpiredNotice is shown on the login page when the guard kicked the
// user out of a protected page.
type SessionExpiredNotice struct{}

// LogoutResult finishes the logout flow.
type LogoutResult struct {
	Err error
}

type guardResultMsg struct {
	target  string
	allowed bool
}

type dashboardLoadedMsg struct {
	userName string
	totals   models.NutritionTotals
	glasses  int
	percent  float64
	goal     int
}

type waterUpdatedMsg struct {
	glasses int
	percent float64
	err     error
}

type dayLoadedMsg struct {
	day models.DayMeals
	err error
}

type favoritesLoadedMsg struct {
	favorites []models.FavoriteFood
	err       error
}

type favoriteSavedMsg struct {
	err error
}

type calcResultMsg struct {
	result models.CalorieCalculation
	err    error
}

type profileSavedMsg struct {
	err error
}

type accountLoadedMsg struct {
	user models.User
	err  error
}

type accountChangedMsg struct {
	what string
	err  error
}

type preferencesSavedMsg struct {
	prefs models.Preferences
	err   error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
