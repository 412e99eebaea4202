package listing

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// PatternSet holds the market-specific patterns driving the heuristic
// extractor. Regular expressions are matched case-insensitively against
// the lowercased visible page text; the first capture group carries the
// numeric value.
type PatternSet struct {
	Market           string `yaml:"market"`
	Area             string `yaml:"area"`
	Price            string `yaml:"price"`
	Rooms            string `yaml:"rooms"`
	LocationSelector string `yaml:"location_selector"`
	LocationHeading  string `yaml:"location_heading"`
}

// DefaultPatternSets returns the built-in pattern sets. The Polish market
// set is always present and doubles as the fallback when no configured
// market matches.
func DefaultPatternSets() []PatternSet {
	return []PatternSet{
		{
			Market:           "pl-PL",
			Area:             `(\d+[,.\s]?\d*)\s*(m2|m²)`,
			Price:            `(\d[\d\s]{3,})\s*zł`,
			Rooms:            `(\d+)\s*(pokoi|pokoje|pokój|pok\.)`,
			LocationSelector: `a[href*="map"], [data-cy="ad-location"]`,
			LocationHeading:  "lokalizacja",
		},
	}
}

// LoadPatternSets loads additional pattern sets from YAML files in dir,
// one set per file. A missing directory is not an error; an invalid file
// is, so misconfigured patterns surface at startup rather than as silent
// extraction gaps.
func LoadPatternSets(dir string) ([]PatternSet, error) {
	var sets []PatternSet

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return sets, nil
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("failed to find YAML files: %w", err)
	}
	ymlFiles, err := filepath.Glob(filepath.Join(dir, "*.yml"))
	if err != nil {
		return nil, fmt.Errorf("failed to find YML files: %w", err)
	}
	files = append(files, ymlFiles...)

	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", file, err)
		}

		var set PatternSet
		if err := yaml.Unmarshal(data, &set); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", file, err)
		}

		if set.Market == "" {
			return nil, fmt.Errorf("invalid pattern set %s: market is required", file)
		}

		sets = append(sets, set)
	}

	return sets, nil
}

// PatternRegistry resolves a market identifier (a BCP 47 tag such as
// "pl-PL") to a compiled heuristic extractor using language matching, so
// "pl" or "pl-u-co-phonebk" still find the Polish set.
type PatternRegistry struct {
	extractors []*HeuristicExtractor
	matcher    language.Matcher
}

// NewPatternRegistry compiles the given sets and builds the language
// matcher. At least one set is required; the first set is the fallback
// for unrecognized markets.
func NewPatternRegistry(sets []PatternSet) (*PatternRegistry, error) {
	if len(sets) == 0 {
		return nil, fmt.Errorf("at least one pattern set is required")
	}

	extractors := make([]*HeuristicExtractor, 0, len(sets))
	tags := make([]language.Tag, 0, len(sets))

	for _, set := range sets {
		tag, err := language.Parse(set.Market)
		if err != nil {
			return nil, fmt.Errorf("invalid market tag %q: %w", set.Market, err)
		}

		extractor, err := NewHeuristicExtractor(set)
		if err != nil {
			return nil, fmt.Errorf("pattern set %q: %w", set.Market, err)
		}

		tags = append(tags, tag)
		extractors = append(extractors, extractor)
	}

	return &PatternRegistry{
		extractors: extractors,
		matcher:    language.NewMatcher(tags),
	}, nil
}

// Lookup returns the extractor for the given market. Unparseable or
// unmatched markets fall back to the first registered set.
func (r *PatternRegistry) Lookup(market string) *HeuristicExtractor {
	tag, err := language.Parse(market)
	if err != nil {
		return r.extractors[0]
	}

	_, index, _ := r.matcher.Match(tag)
	return r.extractors[index]
}

// Count reports the number of registered pattern sets.
func (r *PatternRegistry) Count() int {
	return len(r.extractors)
}
