// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// OnboardingData collects everything the onboarding flow asks for before the
// daily calorie target can be calculated. Enum fields use the numeric codes
// the calorie backend expects; see service.MapActivityLevel and friends for
// the text-to-code mapping.
type OnboardingData struct {
	// Gender code: 0 male, 1 female.
	Gender int `json:"gender"`

	// BirthDate in YYYY-MM-DD form.
	BirthDate string `json:"birthDate"`

	// HeightCm is the body height in centimetres.
	HeightCm float64 `json:"heightCm"`

	// WeightKg is the body weight in kilograms.
	WeightKg float64 `json:"weightKg"`

	// ActivityLevel code: 0 not very active .. 3 very active.
	ActivityLevel int `json:"activityLevel"`

	// Goal code: 0 lose, 1 maintain, 2 gain.
	Goal int `json:"goal"`
}

// CalorieCalculation is the calorie backend's answer: the daily calorie
// target and its macro split.
type CalorieCalculation struct {
	DailyCalories float64 `json:"dailyCalories"`
	Protein       float64 `json:"protein"`
	Carbs         float64 `json:"carbs"`
	Fat           float64 `json:"fat"`
}

// ProfileSaveRequest is the payload of POST /api/profile/save: the onboarding
// answers plus the computed daily target.
type ProfileSaveRequest struct {
	OnboardingData
	DailyCalories float64 `json:"dailyCalories"`
}
