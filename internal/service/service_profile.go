package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/fit-tracker/internal/adapter"
	"github.com/MKhiriev/fit-tracker/internal/logger"
	"github.com/MKhiriev/fit-tracker/internal/validators"
	"github.com/MKhiriev/fit-tracker/models"
)

// Profile implements [ProfileService] against the calorie backend.
type Profile struct {
	calories  adapter.CalorieAdapter
	validator validators.Validator
	logger    *logger.Logger
}

func NewProfile(calories adapter.CalorieAdapter, validator validators.Validator, logger *logger.Logger) *Profile {
	return &Profile{calories: calories, validator: validator, logger: logger}
}

func (p *Profile) CalculateDailyCalories(ctx context.Context, data models.OnboardingData) (models.CalorieCalculation, error) {
	if err := p.validator.Validate(ctx, data); err != nil {
		return models.CalorieCalculation{}, fmt.Errorf("%w: %v", ErrInvalidDataProvided, err)
	}

	calc, err := p.calories.CalculateDailyCalories(ctx, data)
	if err != nil {
		return models.CalorieCalculation{}, fmt.Errorf("calorie calculation failed: %w", err)
	}
	return calc, nil
}

func (p *Profile) SaveProfile(ctx context.Context, data models.OnboardingData, dailyCalories float64) error {
	if err := p.validator.Validate(ctx, data); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDataProvided, err)
	}

	req := models.ProfileSaveRequest{OnboardingData: data, DailyCalories: dailyCalories}
	if err := p.calories.SaveProfile(ctx, req); err != nil {
		return fmt.Errorf("profile save failed: %w", err)
	}
	return nil
}

// MapGender converts the onboarding answer to the backend's numeric code.
// Unknown input maps to male, matching the backend default.
func MapGender(answer string) int {
	if answer == "female" {
		return 1
	}
	return 0
}

// MapActivityLevel converts the onboarding answer to the backend's numeric
// code. Unknown input maps to "not very active".
func MapActivityLevel(answer string) int {
	switch answer {
	case "lightly-active":
		return 1
	case "active":
		return 2
	case "very-active":
		return 3
	default:
		return 0
	}
}

// MapGoal converts the onboarding answer to the backend's numeric code.
// Unknown input maps to "maintain".
func MapGoal(answer string) int {
	switch answer {
	case "lose-weight":
		return 0
	case "gain-weight":
		return 2
	default:
		return 1
	}
}

// FormatBirthDate renders a birth date in the YYYY-MM-DD form the calorie
// backend expects.
func FormatBirthDate(t time.Time) string {
	return t.Format("2006-01-02")
}
