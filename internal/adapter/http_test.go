// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/fit-tracker/internal/config"
	"github.com/MKhiriev/fit-tracker/internal/logger"
	"github.com/MKhiriev/fit-tracker/models"
)

// newTestAuthAdapter создаёт httpAuthAdapter, направленный на тестовый сервер
func newTestAuthAdapter(t *testing.T, serverURL string) AuthAdapter {
	t.Helper()
	cfg := config.ClientAdapter{AuthAddress: serverURL, RequestTimeout: 2 * time.Second}

	a, err := NewHTTPAuthAdapter(cfg, logger.Nop())
	require.NoError(t, err)
	return a
}

func newTestCalorieAdapter(t *testing.T, serverURL string) CalorieAdapter {
	t.Helper()
	cfg := config.ClientAdapter{CalorieAddress: serverURL, RequestTimeout: 2 * time.Second}

	a, err := NewHTTPCalorieAdapter(cfg, logger.Nop())
	require.NoError(t, err)
	return a
}

// ── Конструкторы ─────────────────────────────────────────────────────────────

func TestNewHTTPAuthAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPAuthAdapter(config.ClientAdapter{AuthAddress: "   "}, logger.Nop())
	require.Error(t, err)
}

func TestNewHTTPAuthAdapter_SchemelessAddress(t *testing.T) {
	a, err := NewHTTPAuthAdapter(config.ClientAdapter{AuthAddress: "localhost:5161"}, logger.Nop())
	require.NoError(t, err, "bare host:port must be accepted and upgraded to http://")
	require.NotNil(t, a)
}

// ── Login / envelope ─────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/Auth/login", r.URL.Path)

		var creds models.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "a@b.c", creds.Email)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"accessToken":"access-1","refreshToken":"refresh-1","user":{"id":"u-1"}}`))
	}))
	defer srv.Close()

	a := newTestAuthAdapter(t, srv.URL)
	envelope, err := a.Login(context.Background(), models.Credentials{Email: "a@b.c", Password: "pw"})

	require.NoError(t, err)
	tokens, user := envelope.Normalize()
	assert.Equal(t, "access-1", tokens.AccessToken)
	assert.Equal(t, "refresh-1", tokens.RefreshToken)
	require.NotNil(t, user)
	assert.Equal(t, "u-1", user.ID)
}

func TestLogin_NestedDataEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"token":"legacy-token","refreshToken":"r","user":{"id":"u-2"}}}`))
	}))
	defer srv.Close()

	a := newTestAuthAdapter(t, srv.URL)
	envelope, err := a.Login(context.Background(), models.Credentials{Email: "a@b.c", Password: "pw"})

	require.NoError(t, err)
	tokens, user := envelope.Normalize()
	assert.Equal(t, "legacy-token", tokens.AccessToken)
	require.NotNil(t, user)
	assert.Equal(t, "u-2", user.ID)
}

func TestLogin_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Invalid email or password"}`))
	}))
	defer srv.Close()

	a := newTestAuthAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.Credentials{Email: "a@b.c", Password: "bad"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)

	var serverErr *ServerError
	require.ErrorAs(t, err, &serverErr)
	assert.Equal(t, "Invalid email or password", serverErr.Message)
}

func TestLogin_StructuredValidationErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"title":"One or more validation errors occurred.","errors":{"Email":["The Email field is required."]}}`))
	}))
	defer srv.Close()

	a := newTestAuthAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.Credentials{Email: "a@b.c", Password: "pw"})

	var serverErr *ServerError
	require.ErrorAs(t, err, &serverErr)
	assert.Equal(t, "One or more validation errors occurred.", serverErr.Message)
	assert.Equal(t, "The Email field is required.", serverErr.FirstFieldError("email"))
}

func TestLogin_ValidationExceptionStackTraceBody(t *testing.T) {
	// Необработанное исключение ASP.NET приходит сырым stack trace'ом
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("System.ComponentModel.DataAnnotations.ValidationException: Password is too short\r\n   at FitTracker.Auth..."))
	}))
	defer srv.Close()

	a := newTestAuthAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.Credentials{Email: "a@b.c", Password: "x"})

	var serverErr *ServerError
	require.ErrorAs(t, err, &serverErr)
	assert.Equal(t, "Password is too short", serverErr.Message)
}

func TestLogin_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // сервер уже мёртв

	a := newTestAuthAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.Credentials{Email: "a@b.c", Password: "pw"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNetwork)
}

// ── Авторизованные запросы ───────────────────────────────────────────────────

func TestMe_SendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/Auth/me", r.URL.Path)
		assert.Equal(t, "Bearer my-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"u-1","email":"a@b.c","name":"Alice"}`))
	}))
	defer srv.Close()

	a := newTestAuthAdapter(t, srv.URL)
	a.SetToken("my-token")

	user, err := a.Me(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "u-1", user.ID)
	assert.Equal(t, "Alice", user.Name)
}

func TestLogout_SendsRefreshToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/Auth/logout", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "refresh-1", body["refreshToken"])
	}))
	defer srv.Close()

	a := newTestAuthAdapter(t, srv.URL)
	require.NoError(t, a.Logout(context.Background(), "refresh-1"))
}

func TestSetToken_TrimsWhitespace(t *testing.T) {
	a := newTestAuthAdapter(t, "http://localhost:5161")
	a.SetToken("  token  ")
	assert.Equal(t, "token", a.Token())

	a.SetToken("")
	assert.Empty(t, a.Token())
}

// ── Calorie adapter ──────────────────────────────────────────────────────────

func TestCalculateDailyCalories_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/CalorieCalculator/calculate", r.URL.Path)
		assert.Equal(t, "Bearer cal-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"dailyCalories":2400,"protein":150,"carbs":260,"fat":80}`))
	}))
	defer srv.Close()

	a := newTestCalorieAdapter(t, srv.URL)
	a.SetToken("cal-token")

	got, err := a.CalculateDailyCalories(context.Background(), models.OnboardingData{HeightCm: 180, WeightKg: 75, BirthDate: "1990-05-01"})

	require.NoError(t, err)
	assert.Equal(t, models.CalorieCalculation{DailyCalories: 2400, Protein: 150, Carbs: 260, Fat: 80}, got)
}

func TestSaveProfile_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/profile/save", r.URL.Path)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"profile save failed"}`))
	}))
	defer srv.Close()

	a := newTestCalorieAdapter(t, srv.URL)
	err := a.SaveProfile(context.Background(), models.ProfileSaveRequest{DailyCalories: 2400})

	var serverErr *ServerError
	require.ErrorAs(t, err, &serverErr)
	assert.Equal(t, http.StatusInternalServerError, serverErr.Status)
}
