package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTryParse_Success(t *testing.T) {
	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	got, ok := TryParse[payload](`{"name":"apple","count":3}`)

	require.True(t, ok)
	assert.Equal(t, payload{Name: "apple", Count: 3}, got)
}

func TestTryParse_EmptyInput(t *testing.T) {
	got, ok := TryParse[map[string]int]("")

	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestTryParse_CorruptInput(t *testing.T) {
	got, ok := TryParse[[]string](`{broken`)

	assert.False(t, ok)
	assert.Nil(t, got, "corrupt blob must read as zero value")
}

func TestTryParse_TypeMismatch(t *testing.T) {
	_, ok := TryParse[int](`"definitely not an int"`)
	assert.False(t, ok)
}
