package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/fit-tracker/internal/config"
	"github.com/MKhiriev/fit-tracker/internal/logger"
	"github.com/MKhiriev/fit-tracker/internal/utils"
	"github.com/MKhiriev/fit-tracker/models"
	"github.com/go-resty/resty/v2"
)

type httpAuthAdapter struct {
	client *utils.HTTPClient
	token  string

	logger *logger.Logger
}

// NewHTTPAuthAdapter constructs the HTTP/REST implementation of
// [AuthAdapter]. It normalises and validates the base URL from
// adapterCfg.AuthAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.AuthAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPAuthAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (AuthAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.AuthAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid auth backend address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)

	return &httpAuthAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [AuthAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated
// requests.
func (h *httpAuthAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [AuthAdapter]. It returns the bearer token currently held
// by the adapter, or an empty string if none has been set.
func (h *httpAuthAdapter) Token() string {
	return h.token
}

// Register implements [AuthAdapter]. It POSTs the registration fields to
// POST /api/Auth/register and returns the raw response envelope; token
// extraction is the session layer's job because the envelope shape varies
// across backend versions.
func (h *httpAuthAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	return h.postAuthEnvelope(ctx, "/api/Auth/register", req)
}

// Login implements [AuthAdapter]. It POSTs the credentials to
// POST /api/Auth/login and returns the raw response envelope.
func (h *httpAuthAdapter) Login(ctx context.Context, creds models.Credentials) (models.AuthResponse, error) {
	return h.postAuthEnvelope(ctx, "/api/Auth/login", creds)
}

// GoogleLogin implements [AuthAdapter]. It POSTs the provider credential to
// POST /api/Auth/google-login and returns the raw response envelope.
func (h *httpAuthAdapter) GoogleLogin(ctx context.Context, credential string) (models.AuthResponse, error) {
	return h.postAuthEnvelope(ctx, "/api/Auth/google-login", map[string]string{"credential": credential})
}

// Refresh implements [AuthAdapter]. It POSTs the stored refresh token to
// POST /api/Auth/refresh and returns the raw response envelope with the new
// token pair.
func (h *httpAuthAdapter) Refresh(ctx context.Context, refreshToken string) (models.AuthResponse, error) {
	return h.postAuthEnvelope(ctx, "/api/Auth/refresh", map[string]string{"refreshToken": refreshToken})
}

// Logout implements [AuthAdapter]. It POSTs the refresh token to
// POST /api/Auth/logout with the current bearer token attached so the
// backend can invalidate the server-side session.
func (h *httpAuthAdapter) Logout(ctx context.Context, refreshToken string) error {
	body := map[string]string{}
	if refreshToken != "" {
		body["refreshToken"] = refreshToken
	}

	resp, err := h.authedRequest(ctx).
		SetBody(body).
		Post("/api/Auth/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w: %v", ErrNetwork, err)
	}

	return mapHTTPError(resp)
}

// Me implements [AuthAdapter]. It GETs /api/Auth/me and decodes the
// authoritative user record. Requires a valid bearer token.
func (h *httpAuthAdapter) Me(ctx context.Context) (models.User, error) {
	resp, err := h.authedRequest(ctx).Get("/api/Auth/me")
	if err != nil {
		return models.User{}, fmt.Errorf("me request: %w: %v", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var user models.User
	if err = json.Unmarshal(resp.Body(), &user); err != nil {
		return models.User{}, fmt.Errorf("decode me response: %w", err)
	}

	return user, nil
}

// ChangePassword implements [AuthAdapter]. Requires a valid bearer token.
func (h *httpAuthAdapter) ChangePassword(ctx context.Context, req models.ChangePasswordRequest) error {
	resp, err := h.authedRequest(ctx).
		SetBody(req).
		Post("/api/Account/change-password")
	if err != nil {
		return fmt.Errorf("change password request: %w: %v", ErrNetwork, err)
	}

	return mapHTTPError(resp)
}

// ChangeEmail implements [AuthAdapter]. Requires a valid bearer token.
func (h *httpAuthAdapter) ChangeEmail(ctx context.Context, req models.ChangeEmailRequest) error {
	resp, err := h.authedRequest(ctx).
		SetBody(req).
		Post("/api/Account/change-email")
	if err != nil {
		return fmt.Errorf("change email request: %w: %v", ErrNetwork, err)
	}

	return mapHTTPError(resp)
}

func (h *httpAuthAdapter) postAuthEnvelope(ctx context.Context, path string, body any) (models.AuthResponse, error) {
	var envelope models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&envelope).
		Post(path)
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("%s request: %w: %v", path, ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	return envelope, nil
}

func (h *httpAuthAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
