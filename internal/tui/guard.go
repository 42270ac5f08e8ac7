// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/fit-tracker/internal/service"
)

// protectedPages lists the pages that require a live session. The guard
// re-checks on every navigation into them and again whenever the terminal
// regains focus, so a session dropped while the app was in the background is
// caught before any cached data is shown.
var protectedPages = map[string]bool{
	"dashboard":  true,
	"meals":      true,
	"favorites":  true,
	"onboarding": true,
	"settings":   true,
}

// cmdGuardCheck asynchronously decides whether target may be shown. The
// check is token presence only; an expired token passes here and gets caught
// by the first backend call returning 401.
func cmdGuardCheck(ctx context.Context, session service.SessionService, target string) tea.Cmd {
	return func() tea.Msg {
		return guardResultMsg{target: target, allowed: session.IsAuthenticated(ctx)}
	}
}
