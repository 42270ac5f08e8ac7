package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/fit-tracker/models"
)

func TestValidate_UnsupportedType(t *testing.T) {
	v := NewUserInputValidator()
	err := v.Validate(context.Background(), struct{ X int }{1})
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestValidate_Credentials(t *testing.T) {
	v := NewUserInputValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		creds   models.Credentials
		wantErr error
	}{
		{"valid", models.Credentials{Email: "a@b.c", Password: "pw"}, nil},
		{"empty email", models.Credentials{Password: "pw"}, ErrEmptyEmail},
		{"empty password", models.Credentials{Email: "a@b.c"}, ErrEmptyPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.creds)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_Credentials_PointerForm(t *testing.T) {
	v := NewUserInputValidator()
	err := v.Validate(context.Background(), &models.Credentials{Email: "a@b.c", Password: "pw"})
	assert.NoError(t, err)
}

func TestValidate_Credentials_FieldScoping(t *testing.T) {
	v := NewUserInputValidator()
	ctx := context.Background()

	// Пароль пустой, но проверяем только email
	creds := models.Credentials{Email: "a@b.c"}
	assert.NoError(t, v.Validate(ctx, creds, FieldEmail))

	assert.ErrorIs(t, v.Validate(ctx, creds, "no-such-field"), ErrUnknownField)
}

func TestValidate_RegisterRequest(t *testing.T) {
	v := NewUserInputValidator()
	ctx := context.Background()

	valid := models.RegisterRequest{
		FullName:        "Alice",
		Email:           "a@b.c",
		Password:        "pw",
		ConfirmPassword: "pw",
	}
	require.NoError(t, v.Validate(ctx, valid))

	tests := []struct {
		name    string
		mutate  func(r *models.RegisterRequest)
		wantErr error
	}{
		{"empty name", func(r *models.RegisterRequest) { r.FullName = "" }, ErrEmptyFullName},
		{"empty email", func(r *models.RegisterRequest) { r.Email = "" }, ErrEmptyEmail},
		{"empty password", func(r *models.RegisterRequest) { r.Password = "" }, ErrEmptyPassword},
		{"confirmation mismatch", func(r *models.RegisterRequest) { r.ConfirmPassword = "other" }, ErrPasswordMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			assert.ErrorIs(t, v.Validate(ctx, req), tt.wantErr)
		})
	}
}

func TestValidate_ChangePasswordRequest(t *testing.T) {
	v := NewUserInputValidator()
	ctx := context.Background()

	valid := models.ChangePasswordRequest{
		CurrentPassword: "old",
		NewPassword:     "new",
		ConfirmPassword: "new",
	}
	require.NoError(t, v.Validate(ctx, valid))

	assert.ErrorIs(t, v.Validate(ctx, models.ChangePasswordRequest{NewPassword: "n", ConfirmPassword: "n"}), ErrEmptyCurrentPassword)
	assert.ErrorIs(t, v.Validate(ctx, models.ChangePasswordRequest{CurrentPassword: "old"}), ErrEmptyNewPassword)

	mismatch := valid
	mismatch.ConfirmPassword = "typo"
	assert.ErrorIs(t, v.Validate(ctx, mismatch), ErrPasswordMismatch)
}

func TestValidate_ChangeEmailRequest(t *testing.T) {
	v := NewUserInputValidator()
	ctx := context.Background()

	require.NoError(t, v.Validate(ctx, models.ChangeEmailRequest{NewEmail: "new@b.c", Password: "pw"}))
	assert.ErrorIs(t, v.Validate(ctx, models.ChangeEmailRequest{Password: "pw"}), ErrEmptyNewEmail)
	assert.ErrorIs(t, v.Validate(ctx, models.ChangeEmailRequest{NewEmail: "new@b.c"}), ErrEmptyPassword)
}

func TestValidate_OnboardingData(t *testing.T) {
	v := NewUserInputValidator()
	ctx := context.Background()

	valid := models.OnboardingData{
		Gender:        1,
		BirthDate:     "1990-05-01",
		HeightCm:      170,
		WeightKg:      65,
		ActivityLevel: 2,
		Goal:          1,
	}
	require.NoError(t, v.Validate(ctx, valid))

	tests := []struct {
		name    string
		mutate  func(d *models.OnboardingData)
		wantErr error
	}{
		{"empty birth date", func(d *models.OnboardingData) { d.BirthDate = "" }, ErrInvalidBirthDate},
		{"wrong date format", func(d *models.OnboardingData) { d.BirthDate = "01.05.1990" }, ErrInvalidBirthDate},
		{"zero height", func(d *models.OnboardingData) { d.HeightCm = 0 }, ErrInvalidHeight},
		{"negative weight", func(d *models.OnboardingData) { d.WeightKg = -1 }, ErrInvalidWeight},
		{"gender out of range", func(d *models.OnboardingData) { d.Gender = 2 }, ErrInvalidGender},
		{"activity out of range", func(d *models.OnboardingData) { d.ActivityLevel = 4 }, ErrInvalidActivityLevel},
		{"goal out of range", func(d *models.OnboardingData) { d.Goal = 3 }, ErrInvalidGoal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := valid
			tt.mutate(&data)
			assert.ErrorIs(t, v.Validate(ctx, data), tt.wantErr)
		})
	}
}
