package main

import (
	"fmt"
	"regexp"
)

// youtubeRegex matches the recognized YouTube URL family and captures the
// 11-character video ID: watch URLs (v= anywhere in the query), short
// youtu.be links, and embed/v/shorts path forms.
var youtubeRegex = regexp.MustCompile(`(?i)(?:youtube\.com/(?:(?:v|embed|shorts)/|\S*?[?&]v=)|youtu\.be/)([A-Za-z0-9_-]{11})`)

// VideoEmbed is a canonical embeddable reference to a video, independent of
// which input form the profile's videoLink used.
type VideoEmbed struct {
	ID       string
	EmbedURL string
}

// ParseVideoLink extracts a canonical embed reference from a free-form URL.
// Returns nil when the URL is empty or matches no recognized form; video is
// optional, so an unrecognized link is not an error.
func ParseVideoLink(raw string) *VideoEmbed {
	if raw == "" {
		return nil
	}
	match := youtubeRegex.FindStringSubmatch(raw)
	if len(match) < 2 {
		return nil
	}
	id := match[1]
	return &VideoEmbed{
		ID:       id,
		EmbedURL: fmt.Sprintf("https://www.youtube.com/embed/%s", id),
	}
}
