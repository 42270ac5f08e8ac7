package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/fit-tracker/internal/logger"
	"github.com/MKhiriev/fit-tracker/models"
)

func TestNamespaceResolver_KeyFor(t *testing.T) {
	ns := NewNamespaceResolver(NewTokenStore(NewMemoryKeyValueStore(), logger.Nop()))

	assert.Equal(t, "fit-tracker-meals-u-1", ns.KeyFor(DomainMeals, "u-1"))
	assert.Equal(t, "fit-tracker-water", ns.KeyFor(DomainWater, ""), "anonymous fallback key")
	assert.NotEqual(t, ns.KeyFor(DomainMeals, "u-1"), ns.KeyFor(DomainMeals, "u-2"))
	assert.NotEqual(t, ns.KeyFor(DomainMeals, "u-1"), ns.KeyFor(DomainMeals, ""))
}

func TestNamespaceResolver_Key_FollowsStoredIdentity(t *testing.T) {
	ctx := context.Background()
	tokens := NewTokenStore(NewMemoryKeyValueStore(), logger.Nop())
	ns := NewNamespaceResolver(tokens)

	// Без сохранённой личности — анонимный ключ
	assert.Equal(t, "fit-tracker-meals", ns.Key(ctx, DomainMeals))

	require.NoError(t, tokens.Save(ctx, models.Tokens{AccessToken: "a"}, &models.User{ID: "u-7"}))
	assert.Equal(t, "fit-tracker-meals-u-7", ns.Key(ctx, DomainMeals))

	// Ключ стабилен, пока личность не меняется
	assert.Equal(t, ns.Key(ctx, DomainMeals), ns.Key(ctx, DomainMeals))
}

func TestNamespaceResolver_CurrentUserID(t *testing.T) {
	ctx := context.Background()
	tokens := NewTokenStore(NewMemoryKeyValueStore(), logger.Nop())
	ns := NewNamespaceResolver(tokens)

	assert.Empty(t, ns.CurrentUserID(ctx))

	require.NoError(t, tokens.Save(ctx, models.Tokens{AccessToken: "a"}, &models.User{ID: "u-9"}))
	assert.Equal(t, "u-9", ns.CurrentUserID(ctx))
}
