package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/fit-tracker/internal/logger"
	"github.com/MKhiriev/fit-tracker/models"
)

func newTestTokenStore(t *testing.T) (*TokenStore, KeyValueStore) {
	t.Helper()
	kv := NewMemoryKeyValueStore()
	return NewTokenStore(kv, logger.Nop()), kv
}

func TestTokenStore_SaveAndRead(t *testing.T) {
	ts, _ := newTestTokenStore(t)
	ctx := context.Background()

	tokens := models.Tokens{AccessToken: "access", RefreshToken: "refresh"}
	user := &models.User{ID: "u-1", Email: "a@b.c", Name: "Alice"}

	require.NoError(t, ts.Save(ctx, tokens, user))

	gotTokens, gotUser, err := ts.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, tokens, gotTokens)
	require.NotNil(t, gotUser)
	assert.Equal(t, *user, *gotUser)
}

func TestTokenStore_Read_Empty(t *testing.T) {
	ts, _ := newTestTokenStore(t)

	tokens, user, err := ts.Read(context.Background())

	require.NoError(t, err)
	assert.False(t, tokens.HasAccess())
	assert.Nil(t, user)
}

func TestTokenStore_Save_NilUserKeepsSnapshot(t *testing.T) {
	ts, _ := newTestTokenStore(t)
	ctx := context.Background()

	require.NoError(t, ts.Save(ctx, models.Tokens{AccessToken: "a1", RefreshToken: "r1"}, &models.User{ID: "u-1"}))
	// Refresh без объекта user не должен стирать сохранённую личность
	require.NoError(t, ts.Save(ctx, models.Tokens{AccessToken: "a2", RefreshToken: "r2"}, nil))

	tokens, user, err := ts.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a2", tokens.AccessToken)
	require.NotNil(t, user)
	assert.Equal(t, "u-1", user.ID)
}

func TestTokenStore_Read_CorruptUserBlob(t *testing.T) {
	ts, kv := newTestTokenStore(t)
	ctx := context.Background()

	require.NoError(t, ts.Save(ctx, models.Tokens{AccessToken: "access"}, &models.User{ID: "u-1"}))
	require.NoError(t, kv.Set(ctx, AppPrefix+"-user", "{not json"))

	tokens, user, err := ts.Read(ctx)

	require.NoError(t, err, "corrupt identity must not fail a session read")
	assert.True(t, tokens.HasAccess())
	assert.Nil(t, user)
}

func TestTokenStore_Clear(t *testing.T) {
	ts, _ := newTestTokenStore(t)
	ctx := context.Background()

	require.NoError(t, ts.Save(ctx, models.Tokens{AccessToken: "access", RefreshToken: "refresh"}, &models.User{ID: "u-1"}))
	require.NoError(t, ts.Clear(ctx))

	tokens, user, err := ts.Read(ctx)
	require.NoError(t, err)
	assert.False(t, tokens.HasAccess())
	assert.Empty(t, tokens.RefreshToken)
	assert.Nil(t, user)
}
