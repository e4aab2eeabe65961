package main

import (
	"html/template"
	"net/url"
	"strings"
)

// inlineImageMarker is the self-describing prefix of an inline-encoded
// image payload (a data URL). Any image value starting with it is treated
// as inline; anything else is a name in the static picture catalog.
const inlineImageMarker = "data:image"

// ImageRefKind tags the resolved source of a profile image.
type ImageRefKind int

const (
	// ImageNone means no image; the renderer substitutes a placeholder glyph.
	ImageNone ImageRefKind = iota
	// ImageInline is a self-contained data URL stored in the profile itself.
	ImageInline
	// ImageAuxiliary is a data URL from the per-username auxiliary store,
	// overriding a bare catalog name in the profile.
	ImageAuxiliary
	// ImageCatalog is a bare file name to load from the picture catalog.
	ImageCatalog
)

// ImageRef is the resolved image source for a profile. Kind decides which
// of the payload fields is meaningful.
type ImageRef struct {
	Kind   ImageRefKind
	Inline string // data URL, for ImageInline and ImageAuxiliary
	Name   string // catalog file name, for ImageCatalog
}

// Src returns the value for an <img> src attribute, or "" when there is
// no image. Inline payloads are returned as trusted URLs because data:
// URIs would otherwise be filtered out; they only reach the store through
// the marker check in SaveAuxiliaryImage.
func (r ImageRef) Src() template.URL {
	switch r.Kind {
	case ImageInline, ImageAuxiliary:
		return template.URL(r.Inline)
	case ImageCatalog:
		return template.URL("/static/profile_pics/" + url.PathEscape(r.Name))
	}
	return ""
}

// IsInlineImage reports whether a stored image value is an inline payload
// rather than a catalog name.
func IsInlineImage(v string) bool {
	return strings.HasPrefix(v, inlineImageMarker)
}

// ResolveImage determines the effective image source for a profile.
// Precedence, first match wins:
//
//  1. inline payload in the profile itself, already fully resolved
//  2. auxiliary inline image stored for this username: a locally captured
//     override of the named default, always preferred as the most recent
//     user intent
//  3. bare catalog name from the profile
//  4. no image
//
// aux looks up the auxiliary store; it may be nil when no store is
// available (published profiles have no auxiliary images).
func ResolveImage(p *Profile, aux func(username string) (string, bool)) ImageRef {
	if p.Image != "" && IsInlineImage(p.Image) {
		return ImageRef{Kind: ImageInline, Inline: p.Image}
	}
	if p.Image != "" {
		if aux != nil {
			if payload, ok := aux(p.Username); ok && IsInlineImage(payload) {
				return ImageRef{Kind: ImageAuxiliary, Inline: payload}
			}
		}
		return ImageRef{Kind: ImageCatalog, Name: p.Image}
	}
	return ImageRef{Kind: ImageNone}
}
