// Package markdown turns markdown mail bodies into sanitized HTML.
package markdown

import (
	"bytes"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

type Service interface {
	ToHTML(source string) (string, error)
	Sanitize(htmlContent string) string
	ToSafeHTML(source string) (string, error)
}

type service struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func NewService() Service {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.Table,
			extension.Strikethrough,
			extension.Linkify,
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
			html.WithXHTML(),
		),
	)

	// Mail clients drop most styling anyway; keep the UGC set and allow
	// inline alignment on table cells.
	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("align").Matching(bluemonday.Paragraph).OnElements("td", "th")

	return &service{
		md:     md,
		policy: policy,
	}
}

func (s *service) ToHTML(source string) (string, error) {
	var buf bytes.Buffer
	if err := s.md.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("failed to convert markdown to HTML: %w", err)
	}
	return buf.String(), nil
}

func (s *service) Sanitize(htmlContent string) string {
	return s.policy.Sanitize(htmlContent)
}

func (s *service) ToSafeHTML(source string) (string, error) {
	out, err := s.ToHTML(source)
	if err != nil {
		return "", err
	}
	return s.Sanitize(out), nil
}
