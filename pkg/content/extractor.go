// Package content extracts plain transcript text from archived debate pages.
// Pages come from the presidency archive, which wraps the transcript in a
// well-known content div; older mirrors do not, so a readability fallback
// handles anything without the div.
package content

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
)

var errEmptyHTML = errors.New("empty HTML content")

// Extractor defines an interface for pulling transcript text out of a saved
// HTML page.
type Extractor interface {
	ExtractText(htmlContent string) (string, error)
}

// ArchiveExtractor extracts transcripts from presidency-archive pages: the
// transcript lives in a div with class "field-docs-content". When the div is
// missing the whole document's readable text is used instead.
type ArchiveExtractor struct {
	// ContentSelector overrides the default transcript div selector.
	ContentSelector string
}

// NewArchiveExtractor creates an extractor with the default selector.
func NewArchiveExtractor() *ArchiveExtractor {
	return &ArchiveExtractor{ContentSelector: "div.field-docs-content"}
}

// ExtractText returns the transcript text with block elements separated by
// newlines, ready for the segmenter.
func (e *ArchiveExtractor) ExtractText(htmlContent string) (string, error) {
	if strings.TrimSpace(htmlContent) == "" {
		return "", errEmptyHTML
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return "", fmt.Errorf("parse HTML: %w", err)
	}

	div := doc.Find(e.ContentSelector)
	if div.Length() > 0 {
		return blockText(div), nil
	}

	// No transcript div: fall back to the page's readable text.
	article, err := readability.FromReader(strings.NewReader(htmlContent), nil)
	if err != nil {
		return "", fmt.Errorf("readability fallback: %w", err)
	}
	text := strings.TrimSpace(article.TextContent)
	if text == "" {
		return "", fmt.Errorf("no transcript text found in page")
	}
	return text, nil
}

// blockText renders a selection's text with one line per block element,
// mirroring how the transcripts were originally saved (one paragraph per
// line, so line-oriented segmenters keep working).
func blockText(sel *goquery.Selection) string {
	var lines []string
	sel.Find("p, h1, h2, h3, li").Each(func(_ int, s *goquery.Selection) {
		if t := strings.TrimSpace(s.Text()); t != "" {
			lines = append(lines, t)
		}
	})
	if len(lines) == 0 {
		return strings.TrimSpace(sel.Text())
	}
	return strings.Join(lines, "\n")
}
