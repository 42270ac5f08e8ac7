package utils

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

// mintToken собирает подписанный HS256-токен с нужными claims
func mintToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	if err != nil {
		t.Fatalf("could not sign test token: %v", err)
	}
	return signed
}

func TestDecodeTokenClaims_Success(t *testing.T) {
	token := mintToken(t, jwt.MapClaims{"sub": "42", "email": "a@b.c"})

	claims := DecodeTokenClaims(token)
	if claims == nil {
		t.Fatal("expected claims, got nil")
	}
	if claims["sub"] != "42" {
		t.Errorf("expected sub '42', got %v", claims["sub"])
	}
}

func TestDecodeTokenClaims_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"empty string", ""},
		{"not a token", "not-a-token"},
		{"two segments", "abc.def"},
		{"broken base64", "a!.b!.c!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if claims := DecodeTokenClaims(tt.token); claims != nil {
				t.Errorf("expected nil claims, got %v", claims)
			}
		})
	}
}

func TestUserIDFromToken_ClaimPriority(t *testing.T) {
	tests := []struct {
		name   string
		claims jwt.MapClaims
		want   string
	}{
		{
			"long-form URI wins over short aliases",
			jwt.MapClaims{
				"http://schemas.xmlsoap.org/ws/2005/05/identity/claims/nameidentifier": "uri-id",
				"nameid": "short-id",
				"sub":    "sub-id",
			},
			"uri-id",
		},
		{"nameid wins over sub", jwt.MapClaims{"nameid": "short-id", "sub": "sub-id"}, "short-id"},
		{"sub fallback", jwt.MapClaims{"sub": "sub-id"}, "sub-id"},
		{"userId fallback", jwt.MapClaims{"userId": "u-1"}, "u-1"},
		{"numeric subject rendered as string", jwt.MapClaims{"sub": 123}, "123"},
		{"no identifier at all", jwt.MapClaims{"email": "a@b.c"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := UserIDFromToken(mintToken(t, tt.claims))
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestEmailFromToken(t *testing.T) {
	token := mintToken(t, jwt.MapClaims{
		"http://schemas.xmlsoap.org/ws/2005/05/identity/claims/emailaddress": "uri@example.com",
		"email": "short@example.com",
	})
	if got := EmailFromToken(token); got != "uri@example.com" {
		t.Errorf("expected long-form email claim to win, got %q", got)
	}

	token = mintToken(t, jwt.MapClaims{"upn": "upn@example.com"})
	if got := EmailFromToken(token); got != "upn@example.com" {
		t.Errorf("expected upn fallback, got %q", got)
	}
}

func TestNameFromToken(t *testing.T) {
	token := mintToken(t, jwt.MapClaims{"given_name": "Алиса"})
	if got := NameFromToken(token); got != "Алиса" {
		t.Errorf("expected given_name fallback, got %q", got)
	}

	if got := NameFromToken("garbage"); got != "" {
		t.Errorf("expected empty name for undecodable token, got %q", got)
	}
}

func TestUserIDFromToken_SkipsEmptyClaimValues(t *testing.T) {
	// Пустой приоритетный claim не должен затенять заполненный
	token := mintToken(t, jwt.MapClaims{"nameid": "", "sub": "real-id"})
	if got := UserIDFromToken(token); got != "real-id" {
		t.Errorf("expected fallback past empty claim, got %q", got)
	}
}
