// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities used across the
// fit-tracker client: best-effort JWT claim extraction, tolerant JSON
// parsing, date keys for the daily logs, HTTP client initialization and
// UUID generation.
package utils

import (
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Long-form claim names issued by the ASP.NET auth backend. They are checked
// before the short aliases because the backend emits both and the long forms
// are authoritative there.
const (
	claimNameIdentifierURI = "http://schemas.xmlsoap.org/ws/2005/05/identity/claims/nameidentifier"
	claimEmailURI          = "http://schemas.xmlsoap.org/ws/2005/05/identity/claims/emailaddress"
	claimNameURI           = "http://schemas.xmlsoap.org/ws/2005/05/identity/claims/name"
)

var (
	idClaimOrder    = []string{claimNameIdentifierURI, "nameid", "sub", "userId", "id"}
	emailClaimOrder = []string{claimEmailURI, "email", "upn"}
	nameClaimOrder  = []string{claimNameURI, "name", "given_name", "unique_name"}
)

// DecodeTokenClaims extracts the payload claims of a compact JWT without
// verifying its signature. The trust boundary is the transport channel: the
// token came from the auth backend over TLS, and the claims are only used as
// a best-effort identity hint for local cache namespacing.
//
// Any structural problem — wrong segment count, broken base64url, non-JSON
// payload — yields nil. Callers must treat nil as "identity unknown", never
// as a failure.
func DecodeTokenClaims(tokenString string) jwt.MapClaims {
	if tokenString == "" {
		return nil
	}

	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return nil
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil
	}
	return claims
}

// UserIDFromToken returns the subject identifier claim of the token, trying
// the long-form WS-* URI first and then the short aliases in priority order.
// Returns "" when the token cannot be decoded or carries no identifier.
func UserIDFromToken(tokenString string) string {
	return firstClaim(DecodeTokenClaims(tokenString), idClaimOrder)
}

// EmailFromToken returns the e-mail claim of the token, or "".
func EmailFromToken(tokenString string) string {
	return firstClaim(DecodeTokenClaims(tokenString), emailClaimOrder)
}

// NameFromToken returns the display-name claim of the token, or "".
func NameFromToken(tokenString string) string {
	return firstClaim(DecodeTokenClaims(tokenString), nameClaimOrder)
}

func firstClaim(claims jwt.MapClaims, order []string) string {
	if claims == nil {
		return ""
	}

	for _, key := range order {
		if v, ok := claims[key]; ok {
			if s := claimString(v); s != "" {
				return s
			}
		}
	}
	return ""
}

// claimString renders a claim value as a string. Numeric subjects show up in
// the wild, so whole json numbers are accepted too.
func claimString(v any) string {
	switch value := v.(type) {
	case string:
		return value
	case float64:
		if value == float64(int64(value)) {
			return strconv.FormatInt(int64(value), 10)
		}
		return ""
	default:
		return ""
	}
}
