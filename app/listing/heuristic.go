package listing

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// HeuristicExtractor scans the visible page text with market-specific
// patterns. It is the lowest-confidence structured signal and only fires
// where the machine-readable sources stay silent; a page with no matches
// simply yields no fields.
type HeuristicExtractor struct {
	market           string
	area             *regexp.Regexp
	price            *regexp.Regexp
	rooms            *regexp.Regexp
	locationSelector string
	locationHeading  string
}

// NewHeuristicExtractor compiles the pattern set. All regular expressions
// are made case-insensitive regardless of how the set spells them.
func NewHeuristicExtractor(set PatternSet) (*HeuristicExtractor, error) {
	compile := func(name, pattern string) (*regexp.Regexp, error) {
		re, err := regexp.Compile("(?i)" + pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid %s pattern: %w", name, err)
		}
		return re, nil
	}

	area, err := compile("area", set.Area)
	if err != nil {
		return nil, err
	}
	price, err := compile("price", set.Price)
	if err != nil {
		return nil, err
	}
	rooms, err := compile("rooms", set.Rooms)
	if err != nil {
		return nil, err
	}

	return &HeuristicExtractor{
		market:           set.Market,
		area:             area,
		price:            price,
		rooms:            rooms,
		locationSelector: set.LocationSelector,
		locationHeading:  strings.ToLower(set.LocationHeading),
	}, nil
}

// Market reports which market's patterns this extractor carries.
func (e *HeuristicExtractor) Market() string {
	return e.market
}

// Run applies each pattern to the lowercased body text. Every pattern
// yields at most one match; the first match per field wins.
func (e *HeuristicExtractor) Run(doc *goquery.Document) Fields {
	text := strings.ToLower(doc.Find("body").Text())
	out := Fields{}

	if m := e.area.FindStringSubmatch(text); len(m) > 1 {
		if n, ok := CoerceNumber(m[1]); ok {
			out.AreaM2 = &n
		}
	}

	if m := e.price.FindStringSubmatch(text); len(m) > 1 {
		if n, ok := CoerceNumber(m[1]); ok {
			out.Price = &n
		}
	}

	if m := e.rooms.FindStringSubmatch(text); len(m) > 1 {
		if n, ok := CoerceNumber(m[1]); ok {
			out.Rooms = &n
		}
	}

	out.LocationText = e.extractLocation(doc)

	return out
}

// extractLocation prefers an explicit map-link or location-labeled
// element, then falls back to the text following a "location" heading.
func (e *HeuristicExtractor) extractLocation(doc *goquery.Document) string {
	if e.locationSelector != "" {
		if loc := strings.TrimSpace(doc.Find(e.locationSelector).First().Text()); loc != "" {
			return loc
		}
	}

	if e.locationHeading == "" {
		return ""
	}

	var loc string
	doc.Find("h2, h3").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if strings.Contains(strings.ToLower(sel.Text()), e.locationHeading) {
			loc = strings.TrimSpace(sel.Next().Text())
			return false
		}
		return true
	})

	return loc
}
