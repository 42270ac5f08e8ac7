// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating
// with the external FitTracker backends: the auth service and the
// calorie/nutrition service.
//
// The primary abstractions are [AuthAdapter] and [CalorieAdapter], which
// decouple the service layer from HTTP details. Error values defined in
// errors.go are produced by mapHTTPError so that callers can use
// [errors.Is]/[errors.As] for transport-agnostic error handling
// ([ErrNetwork] when no response was received, [*ServerError] for a non-2xx
// reply, [ErrUnauthorized] matched via errors.Is for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/fit-tracker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// AuthAdapter defines communication with the auth backend. Implementations
// are responsible for serialisation, Authorization header management, and
// mapping transport-level errors to the values defined in this package.
type AuthAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. An empty string detaches it.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register sends POST /api/Auth/register. The raw envelope is returned
	// undecoded into tokens: some backend versions issue tokens here, others
	// defer to a subsequent login call, and the session layer owns that
	// decision.
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)

	// Login sends POST /api/Auth/login with the user's credentials.
	Login(ctx context.Context, creds models.Credentials) (models.AuthResponse, error)

	// GoogleLogin sends POST /api/Auth/google-login exchanging a
	// provider-issued credential for this system's own tokens.
	GoogleLogin(ctx context.Context, credential string) (models.AuthResponse, error)

	// Refresh sends POST /api/Auth/refresh exchanging refreshToken for a new
	// token pair.
	Refresh(ctx context.Context, refreshToken string) (models.AuthResponse, error)

	// Logout sends POST /api/Auth/logout so the backend can invalidate the
	// server-side session. Callers treat any error as non-fatal.
	Logout(ctx context.Context, refreshToken string) error

	// Me sends GET /api/Auth/me and returns the authoritative user record.
	Me(ctx context.Context) (models.User, error)

	// ChangePassword sends POST /api/Account/change-password.
	ChangePassword(ctx context.Context, req models.ChangePasswordRequest) error

	// ChangeEmail sends POST /api/Account/change-email.
	ChangeEmail(ctx context.Context, req models.ChangeEmailRequest) error
}

// CalorieAdapter defines communication with the calorie/nutrition backend.
type CalorieAdapter interface {
	// SetToken stores the bearer token attached to subsequent requests.
	SetToken(token string)

	// CalculateDailyCalories sends POST /api/CalorieCalculator/calculate and
	// returns the daily calorie target with its macro split.
	CalculateDailyCalories(ctx context.Context, data models.OnboardingData) (models.CalorieCalculation, error)

	// SaveProfile sends POST /api/profile/save persisting the onboarding
	// answers and the computed daily target.
	SaveProfile(ctx context.Context, req models.ProfileSaveRequest) error
}
