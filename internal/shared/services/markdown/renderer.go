// Package markdown renders offer descriptions written in Markdown.
package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Renderer turns short Markdown descriptions into display text.
type Renderer interface {
	// ToHTML renders markdown and sanitizes the result for embedding in a page.
	ToHTML(markdown string) (string, error)
	// ToPlainText renders markdown and strips every tag.
	ToPlainText(markdown string) (string, error)
}

type renderer struct {
	md     goldmark.Markdown
	ugc    *bluemonday.Policy
	strict *bluemonday.Policy
}

// NewRenderer builds a Renderer with GFM inline extensions and a UGC sanitizer policy.
func NewRenderer() Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.Strikethrough,
			extension.Linkify,
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
		),
	)

	ugc := bluemonday.UGCPolicy()
	ugc.RequireNoFollowOnLinks(true)
	ugc.AddTargetBlankToFullyQualifiedLinks(true)

	return &renderer{
		md:     md,
		ugc:    ugc,
		strict: bluemonday.StrictPolicy(),
	}
}

func (r *renderer) render(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("failed to convert markdown to HTML: %w", err)
	}
	return buf.String(), nil
}

func (r *renderer) ToHTML(markdown string) (string, error) {
	if strings.TrimSpace(markdown) == "" {
		return "", nil
	}
	out, err := r.render(markdown)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(r.ugc.Sanitize(out)), nil
}

func (r *renderer) ToPlainText(markdown string) (string, error) {
	if strings.TrimSpace(markdown) == "" {
		return "", nil
	}
	out, err := r.render(markdown)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(r.strict.Sanitize(out)), nil
}
