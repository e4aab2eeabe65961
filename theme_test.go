package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveThemeNil(t *testing.T) {
	resolved := ResolveTheme(nil)
	assert.Equal(t, DefaultTheme(), resolved)
}

func TestResolveThemePartial(t *testing.T) {
	resolved := ResolveTheme(&Theme{Primary: "#ff0000", CardBg: "black"})

	assert.Equal(t, "#ff0000", resolved.Primary)
	assert.Equal(t, "black", resolved.CardBg)
	// Unset fields fall back per-field, not whole-theme.
	assert.Equal(t, DefaultTheme().Secondary, resolved.Secondary)
	assert.Equal(t, DefaultTheme().Text, resolved.Text)
	assert.Equal(t, DefaultTheme().AccentText, resolved.AccentText)
}

func TestResolveThemeFullOverride(t *testing.T) {
	custom := Theme{
		Primary:    "#111111",
		Secondary:  "#222222",
		Text:       "#333333",
		AccentText: "#444444",
		CardBg:     "#555555",
	}
	assert.Equal(t, custom, ResolveTheme(&custom))
}

func TestResolveThemeNeverEmpty(t *testing.T) {
	for _, partial := range []*Theme{nil, {}, {Text: "white"}} {
		resolved := ResolveTheme(partial)
		assert.NotEmpty(t, resolved.Primary)
		assert.NotEmpty(t, resolved.Secondary)
		assert.NotEmpty(t, resolved.Text)
		assert.NotEmpty(t, resolved.AccentText)
		assert.NotEmpty(t, resolved.CardBg)
	}
}
