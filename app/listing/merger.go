package listing

import (
	"math"
	"net/url"
)

// Merger combines extractor outputs into one canonical listing and
// normalizes the result.
type Merger struct {
	defaultCurrency string
}

func NewMerger(defaultCurrency string) *Merger {
	return &Merger{defaultCurrency: defaultCurrency}
}

// Run merges the extractor outputs by fixed priority: structured data
// beats social metadata beats heuristics beats the content fallback, per
// scalar field; an absent field never overwrites a present one. Images
// are the exception: a union across sources in priority order. The merged
// record is normalized before being returned.
func (m *Merger) Run(source Source, rawURL string, structured, social, heuristic, fallback Fields) Listing {
	l := Listing{
		Source: source,
		URL:    rawURL,
		Images: []string{},
	}

	// lowest priority first; later layers overwrite present fields
	for _, layer := range []Fields{fallback, heuristic, social, structured} {
		applyFields(&l, layer)
	}

	l.Images = append(l.Images, structured.Images...)
	l.Images = append(l.Images, social.Images...)
	l.Images = append(l.Images, heuristic.Images...)

	m.Normalize(&l)

	return l
}

func applyFields(l *Listing, f Fields) {
	if f.Title != "" {
		l.Title = f.Title
	}
	if f.Description != "" {
		l.Description = f.Description
	}
	if f.LocationText != "" {
		l.LocationText = f.LocationText
	}
	if f.Price != nil {
		l.Price = f.Price
	}
	if f.AreaM2 != nil {
		l.AreaM2 = f.AreaM2
	}
	if f.Rooms != nil {
		l.Rooms = f.Rooms
	}
	if f.Currency != "" {
		l.Currency = f.Currency
	}
	if f.Latitude != nil && f.Longitude != nil {
		l.Latitude = f.Latitude
		l.Longitude = f.Longitude
	}
}

// Normalize derives pricePerM2 when both inputs are present, defaults the
// currency and deduplicates images. It is idempotent: running it on an
// already-normalized listing changes nothing.
func (m *Merger) Normalize(l *Listing) {
	if l.PricePerM2 == nil && l.Price != nil && l.AreaM2 != nil && *l.AreaM2 > 0 {
		perM2 := math.Round(*l.Price / *l.AreaM2 * 100) / 100
		l.PricePerM2 = &perM2
	}

	if l.Currency == "" {
		l.Currency = m.defaultCurrency
	}

	l.Images = dedupeImages(l.Images)
}

// dedupeImages collapses URLs that differ only in query string, keeping
// first-seen order. Strings that do not parse as URLs are kept verbatim
// and compared literally.
func dedupeImages(images []string) []string {
	seen := make(map[string]struct{}, len(images))
	out := make([]string, 0, len(images))

	for _, raw := range images {
		key := raw
		if u, err := url.Parse(raw); err == nil {
			u.RawQuery = ""
			key = u.String()
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, key)
	}

	return out
}
