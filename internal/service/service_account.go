package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/fit-tracker/internal/adapter"
	"github.com/MKhiriev/fit-tracker/internal/logger"
	"github.com/MKhiriev/fit-tracker/internal/validators"
	"github.com/MKhiriev/fit-tracker/models"
)

// Account implements [AccountService] against the auth backend.
type Account struct {
	auth      adapter.AuthAdapter
	validator validators.Validator
	logger    *logger.Logger
}

func NewAccount(auth adapter.AuthAdapter, validator validators.Validator, logger *logger.Logger) *Account {
	return &Account{auth: auth, validator: validator, logger: logger}
}

func (a *Account) Me(ctx context.Context) (models.User, error) {
	user, err := a.auth.Me(ctx)
	if err != nil {
		return models.User{}, fmt.Errorf("fetch account: %w", err)
	}
	return user, nil
}

func (a *Account) ChangePassword(ctx context.Context, req models.ChangePasswordRequest) error {
	if err := a.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDataProvided, err)
	}

	if err := a.auth.ChangePassword(ctx, req); err != nil {
		return fmt.Errorf("change password: %w", err)
	}
	return nil
}

func (a *Account) ChangeEmail(ctx context.Context, req models.ChangeEmailRequest) error {
	if err := a.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDataProvided, err)
	}

	if err := a.auth.ChangeEmail(ctx, req); err != nil {
		return fmt.Errorf("change email: %w", err)
	}
	return nil
}
