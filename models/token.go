// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Tokens is the canonical internal token record every auth response is
// normalized into before any other session logic runs.
//
// AccessToken authorizes API calls and its presence alone defines the
// "authenticated" state of the client. RefreshToken is the longer-lived
// credential exchanged for a fresh access token without re-entering the
// password. Both are opaque bearer strings; the client never validates
// signatures or expiry locally — expiry is discovered reactively when a
// backend call fails with 401.
type Tokens struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// HasAccess reports whether an access token is present.
func (t Tokens) HasAccess() bool {
	return t.AccessToken != ""
}
