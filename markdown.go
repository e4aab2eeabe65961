package main

import (
	"bytes"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
)

// Card descriptions are free text; render them as Markdown and sanitize
// the result so user-authored content cannot inject markup.
var (
	descriptionMarkdown = goldmark.New(
		goldmark.WithRendererOptions(goldmarkhtml.WithHardWraps()),
	)
	descriptionPolicy = bluemonday.UGCPolicy()
)

// RenderDescriptionHTML converts a description to sanitized HTML.
// Falls back to the escaped plain text if conversion fails.
func RenderDescriptionHTML(desc string) template.HTML {
	var buf bytes.Buffer
	if err := descriptionMarkdown.Convert([]byte(desc), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(desc))
	}
	return template.HTML(descriptionPolicy.SanitizeBytes(buf.Bytes()))
}
