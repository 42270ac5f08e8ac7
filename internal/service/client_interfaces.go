// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/fit-tracker/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/service_mock.go -package=mock

// SessionService is the single authority for establishing, refreshing, and
// tearing down the session; it is the only component permitted to write the
// token store. Every operation that persists a new session runs the
// identity-change invalidation: when the resolved user id differs from the
// previously stored one, the old user's meal, favorites and water caches are
// evicted so a second person on the same device never sees the first
// person's data.
type SessionService interface {
	// Register creates a new account. Some backend versions issue tokens on
	// registration, others defer to a subsequent login; both are tolerated,
	// and the session is persisted only when tokens are present.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login authenticates with e-mail and password and persists the session.
	// Returns [ErrNoTokensInResponse] when the backend reports success
	// without issuing tokens.
	Login(ctx context.Context, creds models.Credentials) (models.User, error)

	// LoginWithGoogle exchanges a provider-issued credential for this
	// system's tokens and persists the session. A federated flow with no
	// tokens is a broken state: it fails with [ErrNoTokensInResponse]
	// rather than presenting as logged in.
	LoginWithGoogle(ctx context.Context, credential string) (models.User, error)

	// Logout notifies the backend (best effort; network failure is
	// non-fatal) and always clears the local session. Per-user caches are
	// preserved: the next login's namespace isolates them.
	Logout(ctx context.Context) error

	// Refresh exchanges the stored refresh token for a new token pair. Any
	// failure — including a missing refresh token, detected without a
	// network call — clears the session and surfaces [ErrAuthentication].
	Refresh(ctx context.Context) error

	// RestoreSession re-attaches a persisted session after a client restart
	// and returns the stored identity snapshot, if any.
	RestoreSession(ctx context.Context) (*models.User, error)

	// IsAuthenticated reports whether an access token is present. Presence
	// only: expiry and signature are discovered reactively when a backend
	// call fails with 401.
	IsAuthenticated(ctx context.Context) bool

	// CurrentUser returns the cached identity snapshot, or nil.
	CurrentUser(ctx context.Context) *models.User
}

// MealService manages the daily meal log.
type MealService interface {
	// ForDate returns the meal log of one day.
	ForDate(ctx context.Context, date time.Time) models.DayMeals

	// Add logs a meal into the given slot of the given day, assigning it a
	// fresh id, and returns the updated day.
	Add(ctx context.Context, date time.Time, slot models.MealSlot, meal models.Meal) (models.DayMeals, error)

	// Remove deletes the meal with the given id from the given day and
	// returns the updated day.
	Remove(ctx context.Context, date time.Time, mealID string) (models.DayMeals, error)

	// TotalsForDate sums calories and macros over the whole day.
	TotalsForDate(ctx context.Context, date time.Time) models.NutritionTotals
}

// FavoriteService manages the saved-foods list.
type FavoriteService interface {
	// List returns all favorites.
	List(ctx context.Context) []models.FavoriteFood

	// Add saves a food unless an entry with the same name, serving size and
	// serving unit already exists.
	Add(ctx context.Context, food models.FavoriteFood) error

	// Remove deletes the favorite with the given id.
	Remove(ctx context.Context, id string) error

	// IsFavorite reports whether the same food and portion is already saved.
	IsFavorite(ctx context.Context, food models.FavoriteFood) bool
}

// WaterService tracks daily water intake in glasses.
type WaterService interface {
	// Today returns today's glass count.
	Today(ctx context.Context) int

	// AddGlass logs one more glass, capped at twice the daily goal, and
	// returns the new count.
	AddGlass(ctx context.Context) (int, error)

	// RemoveGlass removes one glass, floored at zero, and returns the new
	// count.
	RemoveGlass(ctx context.Context) (int, error)

	// ResetToday sets today's count back to zero.
	ResetToday(ctx context.Context) error

	// Goal returns the daily goal in glasses.
	Goal() int

	// Percentage returns today's progress towards the goal, capped at 100.
	Percentage(ctx context.Context) float64
}

// ProfileService runs the onboarding calculation flow against the calorie
// backend.
type ProfileService interface {
	// CalculateDailyCalories submits the onboarding answers and returns the
	// daily calorie target with its macro split.
	CalculateDailyCalories(ctx context.Context, data models.OnboardingData) (models.CalorieCalculation, error)

	// SaveProfile persists the onboarding answers plus the computed target
	// on the backend.
	SaveProfile(ctx context.Context, data models.OnboardingData, dailyCalories float64) error
}

// AccountService covers the authenticated account operations of the
// settings screen.
type AccountService interface {
	// Me fetches the authoritative user record from the auth backend.
	Me(ctx context.Context) (models.User, error)

	// ChangePassword verifies that the confirmation matches and submits the
	// password change.
	ChangePassword(ctx context.Context, req models.ChangePasswordRequest) error

	// ChangeEmail submits the e-mail change.
	ChangeEmail(ctx context.Context, req models.ChangeEmailRequest) error
}

// RefreshJob is the background worker that silently refreshes the access
// token while the main loop runs.
type RefreshJob interface {
	// Start launches the background refresh goroutine. It refreshes every
	// interval, defaulting to 10 minutes if interval is zero or negative.
	// Any previously running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop cancels the background goroutine and blocks until it has exited.
	// Safe to call when the job is not running.
	Stop()
}
