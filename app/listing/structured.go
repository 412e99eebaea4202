package listing

import (
	"encoding/json"
	"log/slog"
	"strconv"

	"github.com/PuerkitoBio/goquery"
	"github.com/kaptinlin/jsonrepair"
)

// StructuredDataExtractor reads schema.org-style JSON-LD blocks embedded
// in the page. Vocabularies vary per site, so each canonical field is
// resolved through a list of probes tried against every discovered object.
type StructuredDataExtractor struct{}

func NewStructuredDataExtractor() *StructuredDataExtractor {
	return &StructuredDataExtractor{}
}

// Run iterates every ld+json block in the document. For scalar fields the
// first non-empty value across all blocks wins; images are unioned across
// all blocks in discovery order. Malformed blocks are repaired when
// possible and skipped otherwise, never aborting the remaining blocks.
func (e *StructuredDataExtractor) Run(doc *goquery.Document) Fields {
	out := Fields{}
	seen := make(map[string]struct{})

	doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, sel *goquery.Selection) {
		objects, err := decodeBlock(sel.Text())
		if err != nil {
			slog.Debug("Skipping malformed structured data block", "error", err)
			return
		}
		for _, obj := range objects {
			e.probeObject(obj, &out)
			for _, img := range probeImages(obj) {
				if _, ok := seen[img]; !ok {
					seen[img] = struct{}{}
					out.Images = append(out.Images, img)
				}
			}
		}
	})

	return out
}

// decodeBlock parses one script block into a flat list of objects. A block
// may hold a single object or an array of objects. Invalid JSON gets one
// repair attempt before the block is given up on.
func decodeBlock(raw string) ([]map[string]any, error) {
	var node any
	if err := json.Unmarshal([]byte(raw), &node); err != nil {
		repaired, repairErr := jsonrepair.JSONRepair(raw)
		if repairErr != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(repaired), &node); err != nil {
			return nil, err
		}
	}

	switch v := node.(type) {
	case map[string]any:
		return []map[string]any{v}, nil
	case []any:
		objects := make([]map[string]any, 0, len(v))
		for _, item := range v {
			if obj, ok := item.(map[string]any); ok {
				objects = append(objects, obj)
			}
		}
		return objects, nil
	default:
		return nil, nil
	}
}

// probeObject fills any still-unset scalar field from the given object.
// Already-set fields are never overridden by later objects.
func (e *StructuredDataExtractor) probeObject(obj map[string]any, out *Fields) {
	if out.Title == "" {
		out.Title = textValue(firstValue(obj["name"], obj["headline"]))
	}
	if out.Description == "" {
		out.Description = textValue(obj["description"])
	}

	if out.Price == nil {
		if v := firstValue(dig(obj, "offers", "price"), obj["price"]); v != nil {
			if n, ok := CoerceNumber(textValue(v)); ok {
				out.Price = &n
			}
		}
	}
	if out.Currency == "" {
		out.Currency = textValue(firstValue(dig(obj, "offers", "priceCurrency"), obj["priceCurrency"]))
	}

	if out.AreaM2 == nil {
		if v := firstValue(dig(obj, "floorSize", "value"), obj["area"], obj["size"]); v != nil {
			if n, ok := CoerceNumber(textValue(v)); ok {
				out.AreaM2 = &n
			}
		}
	}

	if out.Rooms == nil {
		if v := firstValue(obj["numberOfRooms"], obj["rooms"]); v != nil {
			if n, ok := CoerceNumber(textValue(v)); ok {
				out.Rooms = &n
			}
		}
	}

	if out.Latitude == nil || out.Longitude == nil {
		lat := firstValue(dig(obj, "geo", "latitude"), dig(obj, "geo", "lat"))
		lng := firstValue(dig(obj, "geo", "longitude"), dig(obj, "geo", "lng"))
		if lat != nil && lng != nil {
			latN, latOK := CoerceNumber(textValue(lat))
			lngN, lngOK := CoerceNumber(textValue(lng))
			// coordinates only make sense as a pair
			if latOK && lngOK {
				out.Latitude = &latN
				out.Longitude = &lngN
			}
		}
	}

	if out.LocationText == "" {
		out.LocationText = textValue(firstValue(dig(obj, "address", "addressLocality"), obj["address"]))
	}
}

// probeImages collects image URLs from the object's image/images/photo
// fields, each of which may be a scalar or a list.
func probeImages(obj map[string]any) []string {
	v := firstValue(obj["image"], obj["images"], obj["photo"])
	if v == nil {
		return nil
	}

	var images []string
	switch img := v.(type) {
	case []any:
		for _, item := range img {
			if s := textValue(item); s != "" {
				images = append(images, s)
			}
		}
	default:
		if s := textValue(img); s != "" {
			images = append(images, s)
		}
	}
	return images
}

// dig walks nested objects along the given key path, returning nil as soon
// as the path breaks.
func dig(obj map[string]any, path ...string) any {
	var current any = obj
	for _, key := range path {
		m, ok := current.(map[string]any)
		if !ok {
			return nil
		}
		current = m[key]
	}
	return current
}

// firstValue returns the first non-nil, non-empty candidate.
func firstValue(candidates ...any) any {
	for _, c := range candidates {
		if c == nil {
			continue
		}
		if s, ok := c.(string); ok && s == "" {
			continue
		}
		return c
	}
	return nil
}

// textValue renders a JSON scalar as text. JSON numbers arrive as float64;
// integral values are formatted without a trailing ".0" so numeric
// coercion sees the same text a page author would have written.
func textValue(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(s)
	default:
		return ""
	}
}
