package models

// Preferences are device-level UI settings. They are deliberately not
// namespaced per user: like the SPA's language switch they belong to the
// device, not the account.
type Preferences struct {
	// Language is a BCP-47-ish code, e.g. "ru" or "en".
	Language string `json:"language"`
	// Theme is "dark" or "light".
	Theme string `json:"theme"`
}

// DefaultPreferences returns the out-of-the-box settings.
func DefaultPreferences() Preferences {
	return Preferences{Language: "ru", Theme: "dark"}
}
