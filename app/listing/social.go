package listing

import (
	"cmp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// SocialMetaExtractor reads Open Graph and Twitter-card meta tags. It is a
// lower-priority fallback for title, description and a single image; it
// never touches pricing or location fields.
type SocialMetaExtractor struct{}

func NewSocialMetaExtractor() *SocialMetaExtractor {
	return &SocialMetaExtractor{}
}

func (e *SocialMetaExtractor) Run(doc *goquery.Document) Fields {
	meta := func(selector string) string {
		content, _ := doc.Find("meta" + selector).First().Attr("content")
		return strings.TrimSpace(content)
	}

	out := Fields{
		Title:       cmp.Or(meta(`[property="og:title"]`), meta(`[name="twitter:title"]`)),
		Description: cmp.Or(meta(`[property="og:description"]`), meta(`[name="twitter:description"]`)),
	}

	if img := cmp.Or(meta(`[property="og:image"]`), meta(`[name="twitter:image"]`)); img != "" {
		out.Images = []string{img}
	}

	return out
}
