package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyEmail           = errors.New("email is required")
	ErrEmptyPassword        = errors.New("password is required")
	ErrEmptyFullName        = errors.New("name is required")
	ErrPasswordMismatch     = errors.New("passwords do not match")
	ErrEmptyCurrentPassword = errors.New("current password is required")
	ErrEmptyNewPassword     = errors.New("new password is required")
	ErrEmptyNewEmail        = errors.New("new email is required")
	ErrInvalidBirthDate     = errors.New("birth date must be in YYYY-MM-DD form")
	ErrInvalidHeight        = errors.New("height must be positive")
	ErrInvalidWeight        = errors.New("weight must be positive")
	ErrInvalidGender        = errors.New("invalid gender code")
	ErrInvalidActivityLevel = errors.New("invalid activity level code")
	ErrInvalidGoal          = errors.New("invalid goal code")
)
