package listing

import (
	"log/slog"
	"strings"

	"codeberg.org/readeck/go-readability"
)

// ContentFallbackExtractor runs readability over the raw page and supplies
// title and description only. It sits below the heuristic extractor in
// merge priority: useful on pages whose long-form description never makes
// it into structured data or meta tags.
type ContentFallbackExtractor struct{}

func NewContentFallbackExtractor() *ContentFallbackExtractor {
	return &ContentFallbackExtractor{}
}

func (e *ContentFallbackExtractor) Run(html string) Fields {
	article, err := readability.FromReader(strings.NewReader(html), nil)
	if err != nil {
		slog.Debug("Readability extraction failed", "error", err)
		return Fields{}
	}

	out := Fields{Title: strings.TrimSpace(article.Title)}

	if excerpt := strings.TrimSpace(article.Excerpt); excerpt != "" {
		out.Description = excerpt
	}

	return out
}
