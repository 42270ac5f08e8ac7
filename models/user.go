package models

// User is the identity snapshot of the authenticated account as issued by the
// auth backend (or recovered from token claims when the backend omits it).
// It is cached locally so screens can greet the user and so per-user cache
// namespaces can be derived without a network round trip.
type User struct {
	// ID is the backend-issued account identifier (a GUID-like string).
	// When known it is immutable for the lifetime of a session; a different
	// ID means a different person is using this device.
	ID string `json:"id"`

	// Email is the account e-mail address.
	Email string `json:"email"`

	// Name is the display name shown in the UI.
	Name string `json:"name"`
}

// Credentials are the fields submitted to POST /api/Auth/login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the payload of POST /api/Auth/register. The auth backend
// expects the display name under fullName.
type RegisterRequest struct {
	FullName        string `json:"fullName"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// ChangePasswordRequest is the payload of POST /api/Account/change-password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

// ChangeEmailRequest is the payload of POST /api/Account/change-email.
type ChangeEmailRequest struct {
	NewEmail string `json:"newEmail"`
	Password string `json:"password"`
}
