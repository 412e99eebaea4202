package listing

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// CoerceNumber parses loosely formatted numeric text as found on listing
// pages: thousands separated by spaces, a comma as decimal separator,
// currency symbols or unit suffixes appended ("1 234,5 m²", "450 000 zł").
// All whitespace is stripped, the first comma becomes a decimal point,
// every remaining non-digit/non-dot rune is dropped, and the result is
// parsed. Returns false when nothing parseable or non-finite remains.
func CoerceNumber(text string) (float64, bool) {
	var b strings.Builder
	for _, r := range text {
		if !unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}

	s := strings.Replace(b.String(), ",", ".", 1)

	var digits strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			digits.WriteRune(r)
		}
	}

	n, err := strconv.ParseFloat(digits.String(), 64)
	if err != nil || math.IsInf(n, 0) || math.IsNaN(n) {
		return 0, false
	}

	return n, true
}
