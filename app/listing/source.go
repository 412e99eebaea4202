package listing

import "strings"

// sourceRegistry is ordered: the first token found in the URL wins.
var sourceRegistry = []struct {
	token  string
	source Source
}{
	{"otodom", SourceOtodom},
	{"olx", SourceOlx},
	{"morizon", SourceMorizon},
	{"gratka", SourceGratka},
}

// ClassifySource maps a listing URL to a known site identifier by
// case-insensitive substring match. Unrecognized URLs classify as
// SourceUnknown; the function never fails.
func ClassifySource(rawURL string) Source {
	u := strings.ToLower(rawURL)
	for _, entry := range sourceRegistry {
		if strings.Contains(u, entry.token) {
			return entry.source
		}
	}
	return SourceUnknown
}
