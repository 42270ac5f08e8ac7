package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrAuthentication means the session can no longer be refreshed: the
	// refresh token is missing or the backend rejected it. Not retryable
	// without logging in again.
	ErrAuthentication = errors.New("authentication required")

	// ErrNoTokensInResponse means the backend reported success but the
	// response carried no usable tokens; presenting such a state as
	// "logged in" would be broken, so the session is not persisted.
	ErrNoTokensInResponse = errors.New("no tokens in auth response")
)
