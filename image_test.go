package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const testInlinePNG = "data:image/png;base64,iVBORw0KGgo="

func TestIsInlineImage(t *testing.T) {
	assert.True(t, IsInlineImage(testInlinePNG))
	assert.True(t, IsInlineImage("data:image/jpeg;base64,/9j/4AAQ"))
	assert.False(t, IsInlineImage("alice.png"))
	assert.False(t, IsInlineImage(""))
	assert.False(t, IsInlineImage("data:text/plain;base64,aGk="))
}

func TestResolveImagePrecedence(t *testing.T) {
	auxPayload := "data:image/png;base64,QVVY"
	withAux := func(username string) (string, bool) {
		if username == "alice" {
			return auxPayload, true
		}
		return "", false
	}

	t.Run("inline payload wins over everything", func(t *testing.T) {
		p := &Profile{Username: "alice", Image: testInlinePNG}
		ref := ResolveImage(p, withAux)
		assert.Equal(t, ImageInline, ref.Kind)
		assert.Equal(t, testInlinePNG, ref.Inline)
	})

	t.Run("auxiliary overrides catalog name", func(t *testing.T) {
		p := &Profile{Username: "alice", Image: "alice.png"}
		ref := ResolveImage(p, withAux)
		assert.Equal(t, ImageAuxiliary, ref.Kind)
		assert.Equal(t, auxPayload, ref.Inline)
	})

	t.Run("catalog name without auxiliary entry", func(t *testing.T) {
		p := &Profile{Username: "bob", Image: "bob.png"}
		ref := ResolveImage(p, withAux)
		assert.Equal(t, ImageCatalog, ref.Kind)
		assert.Equal(t, "bob.png", ref.Name)
	})

	t.Run("catalog name with nil auxiliary lookup", func(t *testing.T) {
		p := &Profile{Username: "bob", Image: "bob.png"}
		ref := ResolveImage(p, nil)
		assert.Equal(t, ImageCatalog, ref.Kind)
	})

	t.Run("no image at all", func(t *testing.T) {
		ref := ResolveImage(&Profile{Username: "carol"}, withAux)
		assert.Equal(t, ImageNone, ref.Kind)
	})

	t.Run("non-inline auxiliary value is ignored", func(t *testing.T) {
		p := &Profile{Username: "dave", Image: "dave.png"}
		ref := ResolveImage(p, func(string) (string, bool) {
			return "garbage", true
		})
		assert.Equal(t, ImageCatalog, ref.Kind)
	})
}

func TestImageRefSrc(t *testing.T) {
	assert.EqualValues(t, testInlinePNG, ImageRef{Kind: ImageInline, Inline: testInlinePNG}.Src())
	assert.EqualValues(t, testInlinePNG, ImageRef{Kind: ImageAuxiliary, Inline: testInlinePNG}.Src())
	assert.EqualValues(t, "/static/profile_pics/alice.png", ImageRef{Kind: ImageCatalog, Name: "alice.png"}.Src())
	assert.EqualValues(t, "", ImageRef{Kind: ImageNone}.Src())
}
