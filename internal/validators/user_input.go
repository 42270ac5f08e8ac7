package validators

import (
	"context"
	"time"

	"github.com/MKhiriev/fit-tracker/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldEmail targets the account e-mail of credentials and registration.
	FieldEmail = "email"

	// FieldPassword targets the account password.
	FieldPassword = "password"

	// FieldFullName targets the display name of a registration request.
	FieldFullName = "full_name"

	// FieldPasswordConfirmation enforces that password and confirmation match.
	FieldPasswordConfirmation = "password_confirmation"

	// FieldCurrentPassword targets the current password of a password change.
	FieldCurrentPassword = "current_password"

	// FieldNewPassword targets the new password of a password change.
	FieldNewPassword = "new_password"

	// FieldNewEmail targets the new address of an e-mail change.
	FieldNewEmail = "new_email"

	// FieldBirthDate targets the birth date of the onboarding questionnaire.
	FieldBirthDate = "birth_date"

	// FieldHeight targets the body height of the onboarding questionnaire.
	FieldHeight = "height"

	// FieldWeight targets the body weight of the onboarding questionnaire.
	FieldWeight = "weight"

	// FieldGender targets the gender enum code of the onboarding questionnaire.
	FieldGender = "gender"

	// FieldActivityLevel targets the activity enum code of the onboarding
	// questionnaire.
	FieldActivityLevel = "activity_level"

	// FieldGoal targets the goal enum code of the onboarding questionnaire.
	FieldGoal = "goal"
)

// UserInputValidator implements the Validator interface for the user-facing
// request models: Credentials, RegisterRequest, ChangePasswordRequest,
// ChangeEmailRequest and OnboardingData.
//
// It supports both value and pointer receivers for every model type and
// allows optional field-level scoping via variadic field name arguments.
type UserInputValidator struct {
}

// NewUserInputValidator constructs a new UserInputValidator and returns it
// as the Validator interface.
func NewUserInputValidator() Validator {
	return &UserInputValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported model are accepted.
//
// Returns ErrUnsupportedType if obj does not match any known model. Optional
// fields restrict validation to the named subset; when omitted, a sensible
// default set of fields is validated.
func (v *UserInputValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value, fields...)

	case models.RegisterRequest:
		return v.validateRegisterRequest(ctx, value, fields...)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(ctx, *value, fields...)

	case models.ChangePasswordRequest:
		return v.validateChangePassword(ctx, value, fields...)
	case *models.ChangePasswordRequest:
		return v.validateChangePassword(ctx, *value, fields...)

	case models.ChangeEmailRequest:
		return v.validateChangeEmail(ctx, value, fields...)
	case *models.ChangeEmailRequest:
		return v.validateChangeEmail(ctx, *value, fields...)

	case models.OnboardingData:
		return v.validateOnboardingData(ctx, value, fields...)
	case *models.OnboardingData:
		return v.validateOnboardingData(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateCredentials validates a login form.
//
// Default validated fields: Email, Password.
func (v *UserInputValidator) validateCredentials(_ context.Context, creds models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if creds.Email == "" {
				return ErrEmptyEmail
			}
		case FieldPassword:
			if creds.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateRegisterRequest validates a registration form.
//
// Default validated fields: FullName, Email, Password, PasswordConfirmation.
func (v *UserInputValidator) validateRegisterRequest(_ context.Context, req models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFullName, FieldEmail, FieldPassword, FieldPasswordConfirmation}
	}

	for _, f := range fields {
		switch f {
		case FieldFullName:
			if req.FullName == "" {
				return ErrEmptyFullName
			}
		case FieldEmail:
			if req.Email == "" {
				return ErrEmptyEmail
			}
		case FieldPassword:
			if req.Password == "" {
				return ErrEmptyPassword
			}
		case FieldPasswordConfirmation:
			if req.Password != req.ConfirmPassword {
				return ErrPasswordMismatch
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateChangePassword validates a password change form.
//
// Default validated fields: CurrentPassword, NewPassword,
// PasswordConfirmation.
func (v *UserInputValidator) validateChangePassword(_ context.Context, req models.ChangePasswordRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCurrentPassword, FieldNewPassword, FieldPasswordConfirmation}
	}

	for _, f := range fields {
		switch f {
		case FieldCurrentPassword:
			if req.CurrentPassword == "" {
				return ErrEmptyCurrentPassword
			}
		case FieldNewPassword:
			if req.NewPassword == "" {
				return ErrEmptyNewPassword
			}
		case FieldPasswordConfirmation:
			if req.NewPassword != req.ConfirmPassword {
				return ErrPasswordMismatch
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateChangeEmail validates an e-mail change form.
//
// Default validated fields: NewEmail, Password.
func (v *UserInputValidator) validateChangeEmail(_ context.Context, req models.ChangeEmailRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldNewEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldNewEmail:
			if req.NewEmail == "" {
				return ErrEmptyNewEmail
			}
		case FieldPassword:
			if req.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateOnboardingData validates the calorie questionnaire. Enum codes are
// checked against the ranges the calorie backend accepts.
//
// Default validated fields: BirthDate, Height, Weight, Gender,
// ActivityLevel, Goal.
func (v *UserInputValidator) validateOnboardingData(_ context.Context, data models.OnboardingData, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldBirthDate, FieldHeight, FieldWeight, FieldGender, FieldActivityLevel, FieldGoal}
	}

	for _, f := range fields {
		switch f {
		case FieldBirthDate:
			if _, err := time.Parse("2006-01-02", data.BirthDate); err != nil {
				return ErrInvalidBirthDate
			}
		case FieldHeight:
			if data.HeightCm <= 0 {
				return ErrInvalidHeight
			}
		case FieldWeight:
			if data.WeightKg <= 0 {
				return ErrInvalidWeight
			}
		case FieldGender:
			if data.Gender < 0 || data.Gender > 1 {
				return ErrInvalidGender
			}
		case FieldActivityLevel:
			if data.ActivityLevel < 0 || data.ActivityLevel > 3 {
				return ErrInvalidActivityLevel
			}
		case FieldGoal:
			if data.Goal < 0 || data.Goal > 2 {
				return ErrInvalidGoal
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
