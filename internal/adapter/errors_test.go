package adapter

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServerError_Error(t *testing.T) {
	err := &ServerError{Status: 400, Message: "bad request body"}
	assert.Equal(t, "http 400: bad request body", err.Error())

	// Без сообщения подставляется стандартный текст статуса
	err = &ServerError{Status: 502}
	assert.Equal(t, "http 502: Bad Gateway", err.Error())
}

func TestServerError_UnwrapOnlyFor401(t *testing.T) {
	assert.True(t, errors.Is(&ServerError{Status: http.StatusUnauthorized}, ErrUnauthorized))
	assert.False(t, errors.Is(&ServerError{Status: http.StatusForbidden}, ErrUnauthorized))
	assert.False(t, errors.Is(&ServerError{Status: http.StatusInternalServerError}, ErrUnauthorized))
}

func TestServerError_FirstFieldError(t *testing.T) {
	err := &ServerError{FieldErrors: map[string][]string{
		"Email":    {"The Email field is required.", "second"},
		"Password": {},
	}}

	// Имена полей сверяются без учёта регистра
	assert.Equal(t, "The Email field is required.", err.FirstFieldError("email"))
	assert.Empty(t, err.FirstFieldError("password"))
	assert.Empty(t, err.FirstFieldError("missing"))
}
