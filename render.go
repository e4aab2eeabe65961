package main

import (
	"html/template"

	"card-server/internal/util"
)

// Placeholder texts for missing identity fields.
const (
	placeholderName        = "Your Name"
	placeholderRole        = "Your Role"
	placeholderDescription = "A short description about you."
)

// SectionKind identifies one of the ordered card sections.
type SectionKind string

const (
	SectionIdentity SectionKind = "identity"
	SectionLinks    SectionKind = "links"
	SectionVideo    SectionKind = "video"
	SectionShare    SectionKind = "share"
)

// Card is the renderable description of a resolved profile: an ordered
// list of sections, each present only if its data is non-empty, with the
// already-resolved theme attached.
type Card struct {
	Username string
	Theme    Theme
	Sections []Section
}

// Section is one content block of a card. Kind decides which payload field
// is set.
type Section struct {
	Kind     SectionKind
	Identity *IdentitySection
	Links    []ProfileLink
	Video    *VideoEmbed
	Share    *ShareSection
}

// IdentitySection is the always-present head of a card.
type IdentitySection struct {
	Image           ImageRef
	Name            string
	Role            string
	Description     string
	DescriptionHTML template.HTML
}

// ShareSection carries the public share URL. Bitmap generation is
// delegated to the QR endpoint at QRPath.
type ShareSection struct {
	URL    string
	QRPath string
}

// ShareURL builds the public URL for a username. Its shape is embedded in
// generated QR codes and shown to users, so it must stay exactly
// {origin}/card/{username}.
func ShareURL(origin, username string) string {
	return origin + "/card/" + username
}

// BuildCard turns a resolved profile, theme, and image reference into a
// renderable card. Pure: no lookups happen here, and theme values are
// attached as-is, not re-derived.
func BuildCard(p *Profile, theme Theme, image ImageRef, origin string) Card {
	card := Card{
		Username: p.Username,
		Theme:    theme,
	}

	identity := &IdentitySection{
		Image:       image,
		Name:        p.Name,
		Role:        p.Role,
		Description: p.Description,
	}
	if identity.Name == "" {
		identity.Name = placeholderName
	}
	if identity.Role == "" {
		identity.Role = placeholderRole
	}
	if identity.Description == "" {
		identity.Description = placeholderDescription
	} else {
		identity.DescriptionHTML = RenderDescriptionHTML(p.Description)
	}
	card.Sections = append(card.Sections, Section{Kind: SectionIdentity, Identity: identity})

	links := util.FilterSlice(p.Links, ProfileLink.Complete)
	if len(links) > 0 {
		card.Sections = append(card.Sections, Section{Kind: SectionLinks, Links: links})
	}

	if embed := ParseVideoLink(p.VideoLink); embed != nil {
		card.Sections = append(card.Sections, Section{Kind: SectionVideo, Video: embed})
	}

	if p.Username != "" {
		share := &ShareSection{
			URL:    ShareURL(origin, p.Username),
			QRPath: "/card/" + p.Username + "/qr.png",
		}
		card.Sections = append(card.Sections, Section{Kind: SectionShare, Share: share})
	}

	return card
}

// SectionByKind returns the section of the given kind, or nil.
func (c Card) SectionByKind(kind SectionKind) *Section {
	for i := range c.Sections {
		if c.Sections[i].Kind == kind {
			return &c.Sections[i]
		}
	}
	return nil
}
