package listing

import (
	"reflect"
	"testing"
)

func fptr(v float64) *float64 {
	return &v
}

func TestMergeStructuredDataWins(t *testing.T) {
	m := NewMerger("PLN")

	structured := Fields{AreaM2: fptr(60), Title: "Structured Title"}
	social := Fields{Title: "Social Title", Description: "Social Description"}
	heuristic := Fields{AreaM2: fptr(58), Price: fptr(400000)}

	l := m.Run(SourceOtodom, "https://otodom.pl/x", structured, social, heuristic, Fields{})

	if l.AreaM2 == nil || *l.AreaM2 != 60 {
		t.Errorf("Expected structured area 60 to win over heuristic, got %v", l.AreaM2)
	}
	if l.Title != "Structured Title" {
		t.Errorf("Expected structured title to win, got %q", l.Title)
	}
	if l.Description != "Social Description" {
		t.Errorf("Expected social description to fill the gap, got %q", l.Description)
	}
	if l.Price == nil || *l.Price != 400000 {
		t.Errorf("Expected heuristic price to survive, got %v", l.Price)
	}
}

func TestMergeSeedsSourceAndURL(t *testing.T) {
	m := NewMerger("PLN")

	l := m.Run(SourceOlx, "https://olx.pl/oferta/1", Fields{}, Fields{}, Fields{}, Fields{})

	if l.Source != SourceOlx {
		t.Errorf("Expected source %q, got %q", SourceOlx, l.Source)
	}
	if l.URL != "https://olx.pl/oferta/1" {
		t.Errorf("Expected URL preserved verbatim, got %q", l.URL)
	}
}

func TestNormalizeDerivesPricePerM2(t *testing.T) {
	m := NewMerger("PLN")

	l := Listing{Price: fptr(300000), AreaM2: fptr(50)}
	m.Normalize(&l)

	if l.PricePerM2 == nil || *l.PricePerM2 != 6000.00 {
		t.Errorf("Expected pricePerM2 6000.00, got %v", l.PricePerM2)
	}
}

func TestNormalizeRoundsPricePerM2(t *testing.T) {
	m := NewMerger("PLN")

	l := Listing{Price: fptr(500000), AreaM2: fptr(60)}
	m.Normalize(&l)

	if l.PricePerM2 == nil || *l.PricePerM2 != 8333.33 {
		t.Errorf("Expected pricePerM2 8333.33, got %v", l.PricePerM2)
	}
}

func TestNormalizeSkipsPricePerM2OnZeroArea(t *testing.T) {
	m := NewMerger("PLN")

	l := Listing{Price: fptr(300000), AreaM2: fptr(0)}
	m.Normalize(&l)

	if l.PricePerM2 != nil {
		t.Errorf("Expected no pricePerM2 for zero area, got %v", l.PricePerM2)
	}
}

func TestNormalizeDefaultsCurrency(t *testing.T) {
	m := NewMerger("PLN")

	l := Listing{}
	m.Normalize(&l)

	if l.Currency != "PLN" {
		t.Errorf("Expected default currency 'PLN', got %q", l.Currency)
	}

	l2 := Listing{Currency: "EUR"}
	m.Normalize(&l2)

	if l2.Currency != "EUR" {
		t.Errorf("Expected extracted currency to be kept, got %q", l2.Currency)
	}
}

func TestImageDeduplication(t *testing.T) {
	m := NewMerger("PLN")

	l := Listing{Images: []string{
		"https://img.example.com/a.jpg?w=100",
		"https://img.example.com/a.jpg?w=800",
		"https://img.example.com/b.jpg",
		"::not a url::",
		"::not a url::",
	}}
	m.Normalize(&l)

	expected := []string{
		"https://img.example.com/a.jpg",
		"https://img.example.com/b.jpg",
		"::not a url::",
	}
	if !reflect.DeepEqual(l.Images, expected) {
		t.Errorf("Expected images %v, got %v", expected, l.Images)
	}
}

func TestImageUnionOrderAcrossSources(t *testing.T) {
	m := NewMerger("PLN")

	structured := Fields{Images: []string{"https://img.example.com/1.jpg"}}
	social := Fields{Images: []string{"https://img.example.com/2.jpg", "https://img.example.com/1.jpg?v=2"}}
	heuristic := Fields{}

	l := m.Run(SourceUnknown, "https://example.com", structured, social, heuristic, Fields{})

	expected := []string{"https://img.example.com/1.jpg", "https://img.example.com/2.jpg"}
	if !reflect.DeepEqual(l.Images, expected) {
		t.Errorf("Expected first-seen order %v, got %v", expected, l.Images)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	m := NewMerger("PLN")

	l := Listing{
		Price:  fptr(300000),
		AreaM2: fptr(50),
		Images: []string{"https://img.example.com/a.jpg?w=100", "https://img.example.com/a.jpg"},
	}
	m.Normalize(&l)

	first := Listing{
		Price:      l.Price,
		AreaM2:     l.AreaM2,
		Currency:   l.Currency,
		PricePerM2: l.PricePerM2,
		Images:     append([]string(nil), l.Images...),
	}

	m.Normalize(&l)

	if *l.PricePerM2 != *first.PricePerM2 {
		t.Errorf("Expected stable pricePerM2, got %v then %v", *first.PricePerM2, *l.PricePerM2)
	}
	if l.Currency != first.Currency {
		t.Errorf("Expected stable currency, got %q then %q", first.Currency, l.Currency)
	}
	if !reflect.DeepEqual(l.Images, first.Images) {
		t.Errorf("Expected stable images, got %v then %v", first.Images, l.Images)
	}
}
