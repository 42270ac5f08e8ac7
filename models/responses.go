package models

// AuthResponse is the union of token envelope shapes the auth backend has
// produced across its versions. Tokens have been observed top-level, nested
// under a data object, and (for register on some deployments) absent
// entirely when the service defers to a subsequent login call.
//
// Normalize is the single place that absorbs this variance; nothing outside
// it may inspect the raw envelope.
type AuthResponse struct {
	Token        string `json:"token"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	User         *User  `json:"user"`

	Data *authResponseData `json:"data"`

	Message string `json:"message"`
}

type authResponseData struct {
	Token        string `json:"token"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	User         *User  `json:"user"`
}

// Normalize maps the envelope to one canonical [Tokens] record plus the
// server-provided user object, if any. Nested fields win over top-level ones
// because newer backend versions wrap everything in data. An empty
// AccessToken in the result means the response carried no usable tokens.
func (r AuthResponse) Normalize() (Tokens, *User) {
	tokens := Tokens{
		AccessToken:  firstNonEmpty(r.AccessToken, r.Token),
		RefreshToken: r.RefreshToken,
	}
	user := r.User

	if r.Data != nil {
		if access := firstNonEmpty(r.Data.AccessToken, r.Data.Token); access != "" {
			tokens.AccessToken = access
		}
		if r.Data.RefreshToken != "" {
			tokens.RefreshToken = r.Data.RefreshToken
		}
		if r.Data.User != nil {
			user = r.Data.User
		}
	}

	return tokens, user
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
