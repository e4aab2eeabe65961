package main

// Profile is a single business card record. Username is the public lookup
// key and URL component; it never changes after creation. A profile is
// either authored (created on this instance, stored in the profile
// collection) or published (served by the remote catalog, read-only).
type Profile struct {
	Username    string        `json:"username"`
	Name        string        `json:"name,omitempty"`
	Role        string        `json:"role,omitempty"`
	Description string        `json:"description,omitempty"`
	Image       string        `json:"image,omitempty"`
	Links       []ProfileLink `json:"links,omitempty"`
	VideoLink   string        `json:"videoLink,omitempty"`
	ThemeColors *Theme        `json:"themeColors,omitempty"`
}

// ProfileLink is one labeled URL on a card. Entries missing either field
// are kept in storage but excluded from rendering.
type ProfileLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Complete reports whether the link has both a label and a URL.
func (l ProfileLink) Complete() bool {
	return l.Label != "" && l.URL != ""
}

// Theme holds the five display colors of a card. A zero value in any field
// means "use the default" until resolved; rendering only ever sees fully
// resolved themes.
type Theme struct {
	Primary    string `json:"primary,omitempty"`
	Secondary  string `json:"secondary,omitempty"`
	Text       string `json:"text,omitempty"`
	AccentText string `json:"accentText,omitempty"`
	CardBg     string `json:"cardBg,omitempty"`
}

// Recency record types
const (
	RecencyViewed  = "viewed"
	RecencyCreated = "created"
)

// RecencyRecord is one entry in the recency ledger. The ledger keeps at
// most one record per username, most recent first.
type RecencyRecord struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Type     string `json:"type"`
}
