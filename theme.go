package main

// Default card palette. Matches the values pre-filled in the creation form
// so a card with no overrides renders identically to the form preview.
var defaultTheme = Theme{
	Primary:    "#0ea5e9",
	Secondary:  "#2dd4bf",
	Text:       "#e2e8f0",
	AccentText: "#67e8f9",
	CardBg:     "rgba(15, 23, 42, 0.7)",
}

// DefaultTheme returns a copy of the default palette.
func DefaultTheme() Theme {
	return defaultTheme
}

// ResolveTheme cascades a possibly-partial theme override onto the default
// palette. Every field of the result is non-empty. Color syntax is not
// validated; whatever the caller supplied passes through unchanged.
func ResolveTheme(partial *Theme) Theme {
	resolved := defaultTheme
	if partial == nil {
		return resolved
	}
	if partial.Primary != "" {
		resolved.Primary = partial.Primary
	}
	if partial.Secondary != "" {
		resolved.Secondary = partial.Secondary
	}
	if partial.Text != "" {
		resolved.Text = partial.Text
	}
	if partial.AccentText != "" {
		resolved.AccentText = partial.AccentText
	}
	if partial.CardBg != "" {
		resolved.CardBg = partial.CardBg
	}
	return resolved
}
