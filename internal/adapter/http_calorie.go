package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/fit-tracker/internal/config"
	"github.com/MKhiriev/fit-tracker/internal/logger"
	"github.com/MKhiriev/fit-tracker/internal/utils"
	"github.com/MKhiriev/fit-tracker/models"
	"github.com/go-resty/resty/v2"
)

type httpCalorieAdapter struct {
	client *utils.HTTPClient
	token  string

	logger *logger.Logger
}

// NewHTTPCalorieAdapter constructs the HTTP/REST implementation of
// [CalorieAdapter] against the calorie backend base URL from
// adapterCfg.CalorieAddress.
func NewHTTPCalorieAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (CalorieAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.CalorieAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid calorie backend address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)

	return &httpCalorieAdapter{client: client, logger: logger}, nil
}

// SetToken implements [CalorieAdapter].
func (h *httpCalorieAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// CalculateDailyCalories implements [CalorieAdapter]. It POSTs the
// onboarding answers to POST /api/CalorieCalculator/calculate and decodes
// the calculated daily target.
func (h *httpCalorieAdapter) CalculateDailyCalories(ctx context.Context, data models.OnboardingData) (models.CalorieCalculation, error) {
	resp, err := h.authedRequest(ctx).
		SetBody(data).
		Post("/api/CalorieCalculator/calculate")
	if err != nil {
		return models.CalorieCalculation{}, fmt.Errorf("calculate calories request: %w: %v", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CalorieCalculation{}, err
	}

	var result models.CalorieCalculation
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return models.CalorieCalculation{}, fmt.Errorf("decode calorie calculation response: %w", err)
	}

	return result, nil
}

// SaveProfile implements [CalorieAdapter]. It POSTs the onboarding answers
// plus the computed daily target to POST /api/profile/save.
func (h *httpCalorieAdapter) SaveProfile(ctx context.Context, req models.ProfileSaveRequest) error {
	resp, err := h.authedRequest(ctx).
		SetBody(req).
		Post("/api/profile/save")
	if err != nil {
		return fmt.Errorf("save profile request: %w: %v", ErrNetwork, err)
	}

	return mapHTTPError(resp)
}

func (h *httpCalorieAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if h.token != "" {
		req.SetHeader("Authorization", "Bearer "+h.token)
	}
	return req
}
