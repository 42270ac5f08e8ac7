// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "context"

// Cache domains scoped per user. Preferences are deliberately not listed:
// they are device-level and never namespaced.
const (
	DomainMeals     = "meals"
	DomainFavorites = "favorites"
	DomainWater     = "water"
)

// NamespaceResolver derives the storage-key prefix for per-user domain
// caches so that multiple accounts can coexist on one device without data
// leakage. Keys are a pure function of the currently stored identity: two
// calls with no intervening identity change yield the same key, two
// different user ids always yield different keys, and the anonymous
// fallback key differs from every per-id key.
type NamespaceResolver struct {
	tokens *TokenStore
}

func NewNamespaceResolver(tokens *TokenStore) *NamespaceResolver {
	return &NamespaceResolver{tokens: tokens}
}

// CurrentUserID reads the stored identity and returns its id, or "" when no
// identity is stored or the stored snapshot is unparsable.
func (n *NamespaceResolver) CurrentUserID(ctx context.Context) string {
	_, user, err := n.tokens.Read(ctx)
	if err != nil || user == nil {
		return ""
	}
	return user.ID
}

// Key returns the storage key for domain scoped to the current user:
// "fit-tracker-<domain>-<userID>" when an identity is known, otherwise the
// shared anonymous key "fit-tracker-<domain>".
func (n *NamespaceResolver) Key(ctx context.Context, domain string) string {
	return n.KeyFor(domain, n.CurrentUserID(ctx))
}

// KeyFor builds the storage key for domain scoped to an explicit user id.
// The session service uses it to evict the previous user's caches during
// identity-change invalidation, when the id being evicted is no longer the
// one in the token store.
func (n *NamespaceResolver) KeyFor(domain, userID string) string {
	if userID == "" {
		return AppPrefix + "-" + domain
	}
	return AppPrefix + "-" + domain + "-" + userID
}
