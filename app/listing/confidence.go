package listing

import (
	"math"
	"unicode/utf8"
)

// ScoreConfidence computes a weighted completeness score over the final
// record. The weights sum to 1.00 at full completeness; the clamp guards
// against drift if weights are ever retuned. This is a heuristic metric,
// not a probability.
func ScoreConfidence(l Listing) float64 {
	score := 0.0

	if l.Title != "" {
		score += 0.10
	}
	if l.Price != nil {
		score += 0.15
	}
	if l.AreaM2 != nil {
		score += 0.15
	}
	// zero rooms still counts as known
	if l.Rooms != nil {
		score += 0.10
	}
	if l.LocationText != "" {
		score += 0.10
	}
	if len(l.Images) >= 2 {
		score += 0.10
	}
	if utf8.RuneCountInString(l.Description) > 150 {
		score += 0.05
	}
	if l.PricePerM2 != nil {
		score += 0.10
	}
	if l.Latitude != nil && l.Longitude != nil {
		score += 0.15
	}

	return math.Min(1, score)
}
