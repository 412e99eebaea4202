package listing

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPatternRegistryLookup(t *testing.T) {
	sets := append(DefaultPatternSets(), PatternSet{
		Market: "de-DE",
		Area:   `(\d+[,.\s]?\d*)\s*(m2|m²|qm)`,
		Price:  `(\d[\d\s]{3,})\s*(€|eur)`,
		Rooms:  `(\d+)\s*(zimmer)`,
	})

	registry, err := NewPatternRegistry(sets)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if registry.Count() != 2 {
		t.Errorf("Expected 2 pattern sets, got %d", registry.Count())
	}

	if got := registry.Lookup("pl-PL").Market(); got != "pl-PL" {
		t.Errorf("Expected pl-PL set, got %q", got)
	}
	if got := registry.Lookup("de").Market(); got != "de-DE" {
		t.Errorf("Expected de-DE set for 'de', got %q", got)
	}
	// unknown market falls back to the first registered set
	if got := registry.Lookup("ja-JP").Market(); got != "pl-PL" {
		t.Errorf("Expected fallback to first set, got %q", got)
	}
	if got := registry.Lookup("not a tag").Market(); got != "pl-PL" {
		t.Errorf("Expected fallback for unparseable market, got %q", got)
	}
}

func TestPatternRegistryRequiresSets(t *testing.T) {
	if _, err := NewPatternRegistry(nil); err == nil {
		t.Error("Expected error for empty set list")
	}
}

func TestPatternRegistryRejectsInvalidRegex(t *testing.T) {
	sets := []PatternSet{{Market: "pl-PL", Area: `([unclosed`}}
	if _, err := NewPatternRegistry(sets); err == nil {
		t.Error("Expected error for invalid area pattern")
	}
}

func TestLoadPatternSets(t *testing.T) {
	dir := t.TempDir()

	data := `market: cs-CZ
area: '(\d+[,.\s]?\d*)\s*(m2|m²)'
price: '(\d[\d\s]{3,})\s*(kč|czk)'
rooms: '(\d+)\s*\+?\s*(kk|pokoje)'
location_heading: lokalita
`
	if err := os.WriteFile(filepath.Join(dir, "cs.yaml"), []byte(data), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	sets, err := LoadPatternSets(dir)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(sets) != 1 {
		t.Fatalf("Expected 1 pattern set, got %d", len(sets))
	}
	if sets[0].Market != "cs-CZ" {
		t.Errorf("Expected market 'cs-CZ', got %q", sets[0].Market)
	}
	if sets[0].LocationHeading != "lokalita" {
		t.Errorf("Expected location heading 'lokalita', got %q", sets[0].LocationHeading)
	}
}

func TestLoadPatternSetsMissingDir(t *testing.T) {
	sets, err := LoadPatternSets("/nonexistent/patterns")
	if err != nil {
		t.Fatalf("Expected no error for missing directory, got: %v", err)
	}
	if len(sets) != 0 {
		t.Errorf("Expected no sets, got %d", len(sets))
	}
}

func TestLoadPatternSetsRequiresMarket(t *testing.T) {
	dir := t.TempDir()

	if err := os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte("area: '(\\d+)'\n"), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	if _, err := LoadPatternSets(dir); err == nil {
		t.Error("Expected error for pattern set without market")
	}
}
