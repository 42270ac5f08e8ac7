// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/fit-tracker/internal/adapter"
	"github.com/MKhiriev/fit-tracker/internal/logger"
	"github.com/MKhiriev/fit-tracker/internal/store"
	"github.com/MKhiriev/fit-tracker/internal/utils"
	"github.com/MKhiriev/fit-tracker/internal/validators"
	"github.com/MKhiriev/fit-tracker/models"
)

// Session implements [SessionService] over the auth adapter and the local
// cache layer.
type Session struct {
	auth      adapter.AuthAdapter
	calories  adapter.CalorieAdapter
	storages  *store.ClientStorages
	validator validators.Validator
	logger    *logger.Logger
}

func NewSession(auth adapter.AuthAdapter, calories adapter.CalorieAdapter, storages *store.ClientStorages, validator validators.Validator, logger *logger.Logger) *Session {
	return &Session{auth: auth, calories: calories, storages: storages, validator: validator, logger: logger}
}

func (s *Session) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.User{}, fmt.Errorf("%w: %v", ErrInvalidDataProvided, err)
	}

	envelope, err := s.auth.Register(ctx, req)
	if err != nil {
		return models.User{}, fmt.Errorf("register request failed: %w", err)
	}

	tokens, user := envelope.Normalize()
	if !tokens.HasAccess() {
		// This backend version defers token issuance to login.
		s.logger.Info().Str("func", "Session.Register").Msg("registration succeeded without tokens, login required")
		if user != nil {
			return *user, nil
		}
		return models.User{Email: req.Email, Name: req.FullName}, nil
	}

	saved, err := s.persistSession(ctx, tokens, user)
	if err != nil {
		return models.User{}, err
	}
	return saved, nil
}

func (s *Session) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	if err := s.validator.Validate(ctx, creds); err != nil {
		return models.User{}, fmt.Errorf("%w: %v", ErrInvalidDataProvided, err)
	}

	envelope, err := s.auth.Login(ctx, creds)
	if err != nil {
		return models.User{}, fmt.Errorf("login request failed: %w", err)
	}

	tokens, user := envelope.Normalize()
	if !tokens.HasAccess() {
		return models.User{}, ErrNoTokensInResponse
	}

	return s.persistSession(ctx, tokens, user)
}

func (s *Session) LoginWithGoogle(ctx context.Context, credential string) (models.User, error) {
	if credential == "" {
		return models.User{}, fmt.Errorf("%w: google credential is empty", ErrInvalidDataProvided)
	}

	envelope, err := s.auth.GoogleLogin(ctx, credential)
	if err != nil {
		return models.User{}, fmt.Errorf("google login request failed: %w", err)
	}

	tokens, user := envelope.Normalize()
	if !tokens.HasAccess() {
		return models.User{}, ErrNoTokensInResponse
	}

	return s.persistSession(ctx, tokens, user)
}

// Logout tells the backend to drop the server-side session and clears the
// local one. The network call is best effort: the local session is cleared
// even when the backend is unreachable, so the device never stays logged in
// against the user's will. Per-user caches survive logout; the namespace
// isolates them from whoever logs in next.
func (s *Session) Logout(ctx context.Context) error {
	tokens, _, err := s.storages.Tokens.Read(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Str("func", "Session.Logout").Msg("reading session before logout failed")
	}

	if tokens.RefreshToken != "" {
		if err := s.auth.Logout(ctx, tokens.RefreshToken); err != nil {
			s.logger.Warn().Err(err).Str("func", "Session.Logout").Msg("backend logout failed, clearing local session anyway")
		}
	}

	s.detachTokens()

	if err := s.storages.Tokens.Clear(ctx); err != nil {
		return fmt.Errorf("clear local session: %w", err)
	}
	return nil
}

// Refresh exchanges the stored refresh token for a new pair. A missing
// refresh token is a terminal state detected locally: no network call is
// made, the session is cleared, and [ErrAuthentication] is returned. The
// same cleanup runs when the backend rejects the token.
func (s *Session) Refresh(ctx context.Context) error {
	tokens, _, err := s.storages.Tokens.Read(ctx)
	if err != nil {
		return fmt.Errorf("read session: %w", err)
	}

	if tokens.RefreshToken == "" {
		s.expireSession(ctx)
		return ErrAuthentication
	}

	envelope, err := s.auth.Refresh(ctx, tokens.RefreshToken)
	if err != nil {
		s.logger.Warn().Err(err).Str("func", "Session.Refresh").Msg("token refresh rejected, session expired")
		s.expireSession(ctx)
		return ErrAuthentication
	}

	fresh, user := envelope.Normalize()
	if !fresh.HasAccess() {
		s.expireSession(ctx)
		return ErrAuthentication
	}
	if fresh.RefreshToken == "" {
		// Some backend versions rotate only the access token.
		fresh.RefreshToken = tokens.RefreshToken
	}

	if _, err := s.persistSession(ctx, fresh, user); err != nil {
		return err
	}
	return nil
}

// RestoreSession re-attaches a previously persisted session after a client
// restart: the stored access token is handed back to both adapters so
// authenticated calls work immediately. Returns nil when no session is
// stored.
func (s *Session) RestoreSession(ctx context.Context) (*models.User, error) {
	tokens, user, err := s.storages.Tokens.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}
	if !tokens.HasAccess() {
		return nil, nil
	}

	s.auth.SetToken(tokens.AccessToken)
	s.calories.SetToken(tokens.AccessToken)

	if user != nil {
		return user, nil
	}
	return s.userFromToken(tokens.AccessToken), nil
}

// IsAuthenticated checks token presence only. Expiry and signature are the
// backend's business: a stale token is discovered reactively when a request
// comes back 401.
func (s *Session) IsAuthenticated(ctx context.Context) bool {
	tokens, _, err := s.storages.Tokens.Read(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Str("func", "Session.IsAuthenticated").Msg("session read failed, treating as unauthenticated")
		return false
	}
	return tokens.HasAccess()
}

func (s *Session) CurrentUser(ctx context.Context) *models.User {
	tokens, user, err := s.storages.Tokens.Read(ctx)
	if err != nil || !tokens.HasAccess() {
		return nil
	}
	if user != nil {
		return user
	}
	return s.userFromToken(tokens.AccessToken)
}

// persistSession is the single write path for a new session. It resolves the
// incoming identity, evicts the previous user's domain caches when the
// identity changed, stores the tokens plus identity snapshot, and attaches
// the access token to both backend adapters.
func (s *Session) persistSession(ctx context.Context, tokens models.Tokens, serverUser *models.User) (models.User, error) {
	oldID := s.storages.Namespace.CurrentUserID(ctx)

	user := s.resolveIdentity(tokens.AccessToken, serverUser)
	if user.ID == "" {
		// Unresolvable identity falls back to the shared anonymous
		// namespace; better a working session than a refused login.
		s.logger.Warn().Str("func", "Session.persistSession").Msg("could not resolve user id from response or token claims")
	}

	if oldID != "" && user.ID != "" && oldID != user.ID {
		s.evictUserCaches(ctx, oldID)
	}

	if err := s.storages.Tokens.Save(ctx, tokens, &user); err != nil {
		return models.User{}, fmt.Errorf("persist session: %w", err)
	}

	s.auth.SetToken(tokens.AccessToken)
	s.calories.SetToken(tokens.AccessToken)

	s.logger.Info().Str("func", "Session.persistSession").Str("user_id", user.ID).Msg("session established")
	return user, nil
}

// resolveIdentity prefers the server-provided user object and fills the gaps
// from the unverified token claims. The token is the fallback, not the
// authority: it is decoded purely for display and cache-scoping purposes.
func (s *Session) resolveIdentity(accessToken string, serverUser *models.User) models.User {
	var user models.User
	if serverUser != nil {
		user = *serverUser
	}

	if user.ID == "" {
		user.ID = utils.UserIDFromToken(accessToken)
	}
	if user.Email == "" {
		user.Email = utils.EmailFromToken(accessToken)
	}
	if user.Name == "" {
		user.Name = utils.NameFromToken(accessToken)
	}

	return user
}

func (s *Session) userFromToken(accessToken string) *models.User {
	user := s.resolveIdentity(accessToken, nil)
	if user == (models.User{}) {
		return nil
	}
	return &user
}

// evictUserCaches deletes the previous user's domain caches. Eviction
// targets the explicit old id, not the current namespace: by the time this
// runs the token store may already describe the new user.
func (s *Session) evictUserCaches(ctx context.Context, userID string) {
	s.logger.Info().Str("func", "Session.evictUserCaches").Str("user_id", userID).Msg("identity changed, evicting previous user's caches")

	for _, domain := range []string{store.DomainMeals, store.DomainFavorites, store.DomainWater} {
		key := s.storages.Namespace.KeyFor(domain, userID)
		if err := s.storages.KV.Delete(ctx, key); err != nil {
			s.logger.Warn().Err(err).Str("key", key).Msg("cache eviction failed")
		}
	}
}

// expireSession clears local session state after a failed refresh so the
// client drops to the login screen instead of looping on a dead token.
func (s *Session) expireSession(ctx context.Context) {
	s.detachTokens()
	if err := s.storages.Tokens.Clear(ctx); err != nil {
		s.logger.Warn().Err(err).Str("func", "Session.expireSession").Msg("clearing expired session failed")
	}
}

func (s *Session) detachTokens() {
	s.auth.SetToken("")
	s.calories.SetToken("")
}
