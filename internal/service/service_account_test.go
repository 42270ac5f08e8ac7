package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/fit-tracker/internal/logger"
	"github.com/MKhiriev/fit-tracker/internal/mock"
	"github.com/MKhiriev/fit-tracker/internal/validators"
	"github.com/MKhiriev/fit-tracker/models"
)

func newTestAccount(t *testing.T, ctrl *gomock.Controller) (*Account, *mock.MockAuthAdapter) {
	t.Helper()
	auth := mock.NewMockAuthAdapter(ctrl)
	return NewAccount(auth, validators.NewUserInputValidator(), logger.Nop()), auth
}

func TestAccount_Me(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, auth := newTestAccount(t, ctrl)
	ctx := context.Background()

	want := models.User{ID: "u-1", Email: "a@b.c", Name: "Alice"}
	auth.EXPECT().Me(ctx).Return(want, nil)

	got, err := svc.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestAccount_Me_BackendError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, auth := newTestAccount(t, ctrl)
	ctx := context.Background()

	auth.EXPECT().Me(ctx).Return(models.User{}, errors.New("http 401"))

	_, err := svc.Me(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetch account")
}

func TestAccount_ChangePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, auth := newTestAccount(t, ctrl)
	ctx := context.Background()

	req := models.ChangePasswordRequest{CurrentPassword: "old", NewPassword: "new", ConfirmPassword: "new"}
	auth.EXPECT().ChangePassword(ctx, req).Return(nil)

	require.NoError(t, svc.ChangePassword(ctx, req))
}

func TestAccount_ChangePassword_ValidationErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAccount(t, ctrl)
	ctx := context.Background()

	tests := []struct {
		name string
		req  models.ChangePasswordRequest
	}{
		{"empty new password", models.ChangePasswordRequest{CurrentPassword: "old"}},
		{"confirmation mismatch", models.ChangePasswordRequest{CurrentPassword: "old", NewPassword: "new", ConfirmPassword: "typo"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, svc.ChangePassword(ctx, tt.req), ErrInvalidDataProvided)
		})
	}
}

func TestAccount_ChangeEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, auth := newTestAccount(t, ctrl)
	ctx := context.Background()

	req := models.ChangeEmailRequest{NewEmail: "new@b.c", Password: "pw"}
	auth.EXPECT().ChangeEmail(ctx, req).Return(nil)

	require.NoError(t, svc.ChangeEmail(ctx, req))
}

func TestAccount_ChangeEmail_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAccount(t, ctrl)

	err := svc.ChangeEmail(context.Background(), models.ChangeEmailRequest{Password: "pw"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}
