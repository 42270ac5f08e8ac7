package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/fit-tracker/internal/logger"
	"github.com/MKhiriev/fit-tracker/internal/utils"
	"github.com/MKhiriev/fit-tracker/models"
)

// AppPrefix is the key prefix shared by every cache entry this client owns.
const AppPrefix = "fit-tracker"

const (
	keyAccessToken  = AppPrefix + "-auth-token"
	keyRefreshToken = AppPrefix + "-refresh-token"
	keyUser         = AppPrefix + "-user"
)

// TokenStore persists the access/refresh tokens and the current user
// identity in the key-value store so the session survives client restarts.
// It is pure data access: session decisions (when to save, when to clear,
// whose caches to evict) belong to the session service, the only component
// allowed to write here.
type TokenStore struct {
	kv     KeyValueStore
	logger *logger.Logger
}

func NewTokenStore(kv KeyValueStore, logger *logger.Logger) *TokenStore {
	return &TokenStore{kv: kv, logger: logger}
}

// Save writes both tokens unconditionally and the user snapshot only when
// one is provided, matching the backend's habit of omitting the user object
// on refresh.
func (t *TokenStore) Save(ctx context.Context, tokens models.Tokens, user *models.User) error {
	if err := t.kv.Set(ctx, keyAccessToken, tokens.AccessToken); err != nil {
		return fmt.Errorf("save access token: %w", err)
	}
	if err := t.kv.Set(ctx, keyRefreshToken, tokens.RefreshToken); err != nil {
		return fmt.Errorf("save refresh token: %w", err)
	}

	if user == nil {
		return nil
	}

	payload, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user snapshot: %w", err)
	}
	if err := t.kv.Set(ctx, keyUser, string(payload)); err != nil {
		return fmt.Errorf("save user snapshot: %w", err)
	}

	return nil
}

// Read returns the stored session fields. An unparsable user blob reads as
// "no user": identity is a best-effort convenience and must never fail a
// session check.
func (t *TokenStore) Read(ctx context.Context) (models.Tokens, *models.User, error) {
	access, _, err := t.kv.Get(ctx, keyAccessToken)
	if err != nil {
		return models.Tokens{}, nil, fmt.Errorf("read access token: %w", err)
	}
	refresh, _, err := t.kv.Get(ctx, keyRefreshToken)
	if err != nil {
		return models.Tokens{}, nil, fmt.Errorf("read refresh token: %w", err)
	}

	tokens := models.Tokens{AccessToken: access, RefreshToken: refresh}

	raw, found, err := t.kv.Get(ctx, keyUser)
	if err != nil {
		return tokens, nil, fmt.Errorf("read user snapshot: %w", err)
	}
	if !found {
		return tokens, nil, nil
	}

	user, ok := utils.TryParse[models.User](raw)
	if !ok {
		t.logger.Warn().Str("func", "TokenStore.Read").Msg("stored user snapshot is unparsable, treating as absent")
		return tokens, nil, nil
	}

	return tokens, &user, nil
}

// Clear removes all three session keys.
func (t *TokenStore) Clear(ctx context.Context) error {
	for _, key := range []string{keyAccessToken, keyRefreshToken, keyUser} {
		if err := t.kv.Delete(ctx, key); err != nil {
			return fmt.Errorf("clear session key %s: %w", key, err)
		}
	}
	return nil
}
