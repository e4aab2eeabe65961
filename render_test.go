package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sectionKinds(c Card) []SectionKind {
	kinds := make([]SectionKind, 0, len(c.Sections))
	for _, s := range c.Sections {
		kinds = append(kinds, s.Kind)
	}
	return kinds
}

func TestShareURLShape(t *testing.T) {
	assert.Equal(t, "https://cards.example.com/card/ben", ShareURL("https://cards.example.com", "ben"))
	assert.Equal(t, "http://localhost:8080/card/ben", ShareURL("http://localhost:8080", "ben"))
}

func TestBuildCardMinimalProfile(t *testing.T) {
	p := &Profile{Username: "ben"}
	card := BuildCard(p, DefaultTheme(), ImageRef{Kind: ImageNone}, "https://cards.example.com")

	assert.Equal(t, []SectionKind{SectionIdentity, SectionShare}, sectionKinds(card))

	identity := card.SectionByKind(SectionIdentity).Identity
	assert.Equal(t, placeholderName, identity.Name)
	assert.Equal(t, placeholderRole, identity.Role)
	assert.Equal(t, placeholderDescription, identity.Description)
	assert.Empty(t, identity.DescriptionHTML)

	share := card.SectionByKind(SectionShare).Share
	assert.Equal(t, "https://cards.example.com/card/ben", share.URL)
	assert.Equal(t, "/card/ben/qr.png", share.QRPath)
}

func TestBuildCardFullProfile(t *testing.T) {
	p := &Profile{
		Username:    "ben",
		Name:        "Ben Bourne",
		Role:        "Frontend Developer",
		Description: "I love **React**",
		Links: []ProfileLink{
			{Label: "GitHub", URL: "https://github.com/ben"},
			{Label: "", URL: "https://dangling.example.com"},
			{Label: "No URL", URL: ""},
		},
		VideoLink: "https://youtu.be/dQw4w9WgXcQ",
	}
	card := BuildCard(p, DefaultTheme(), ImageRef{Kind: ImageCatalog, Name: "ben.png"}, "https://cards.example.com")

	assert.Equal(t, []SectionKind{SectionIdentity, SectionLinks, SectionVideo, SectionShare}, sectionKinds(card))

	identity := card.SectionByKind(SectionIdentity).Identity
	assert.Equal(t, "Ben Bourne", identity.Name)
	assert.Contains(t, string(identity.DescriptionHTML), "<strong>React</strong>")

	// Incomplete link rows are dropped from rendering.
	links := card.SectionByKind(SectionLinks).Links
	require.Len(t, links, 1)
	assert.Equal(t, "GitHub", links[0].Label)

	video := card.SectionByKind(SectionVideo).Video
	assert.Equal(t, "dQw4w9WgXcQ", video.ID)
	assert.Equal(t, "https://www.youtube.com/embed/dQw4w9WgXcQ", video.EmbedURL)
}

func TestBuildCardGating(t *testing.T) {
	t.Run("no complete links means no links section", func(t *testing.T) {
		p := &Profile{
			Username: "ben",
			Links:    []ProfileLink{{Label: "half", URL: ""}},
		}
		card := BuildCard(p, DefaultTheme(), ImageRef{}, "http://localhost:8080")
		assert.Nil(t, card.SectionByKind(SectionLinks))
	})

	t.Run("unparseable video link means no video section", func(t *testing.T) {
		p := &Profile{Username: "ben", VideoLink: "not a url"}
		card := BuildCard(p, DefaultTheme(), ImageRef{}, "http://localhost:8080")
		assert.Nil(t, card.SectionByKind(SectionVideo))
	})

	t.Run("empty username means no share section", func(t *testing.T) {
		card := BuildCard(&Profile{Name: "Preview"}, DefaultTheme(), ImageRef{}, "http://localhost:8080")
		assert.Nil(t, card.SectionByKind(SectionShare))
	})
}

func TestBuildCardKeepsResolvedTheme(t *testing.T) {
	theme := ResolveTheme(&Theme{Primary: "#123456"})
	card := BuildCard(&Profile{Username: "ben"}, theme, ImageRef{}, "http://localhost:8080")
	assert.Equal(t, theme, card.Theme)
}

func TestRenderDescriptionHTMLSanitized(t *testing.T) {
	out := string(RenderDescriptionHTML("hello <script>alert(1)</script> *world*"))
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "<em>world</em>")
}

func TestRenderDescriptionHTMLHardWraps(t *testing.T) {
	out := string(RenderDescriptionHTML("line one\nline two"))
	assert.True(t, strings.Contains(out, "<br") || strings.Contains(out, "line one"))
	assert.Contains(t, out, "line two")
}
