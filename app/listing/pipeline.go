package listing

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Pipeline runs one URL through the full extraction sequence: classify
// the source, fetch and parse the page, run the extractors against the
// shared document, merge by priority, normalize, stamp and score. Only
// fetch and parse failures abort; every extractor stage is total.
type Pipeline struct {
	fetcher    *Fetcher
	structured *StructuredDataExtractor
	social     *SocialMetaExtractor
	fallback   *ContentFallbackExtractor
	patterns   *PatternRegistry
	merger     *Merger
	market     string
	now        func() time.Time
}

func NewPipeline(fetcher *Fetcher, patterns *PatternRegistry, defaultCurrency, market string) *Pipeline {
	return &Pipeline{
		fetcher:    fetcher,
		structured: NewStructuredDataExtractor(),
		social:     NewSocialMetaExtractor(),
		fallback:   NewContentFallbackExtractor(),
		patterns:   patterns,
		merger:     NewMerger(defaultCurrency),
		market:     market,
		now:        time.Now,
	}
}

// Run extracts a listing from the page at rawURL. The returned record is
// final: normalized, stamped and scored.
func (p *Pipeline) Run(ctx context.Context, rawURL string) (*Listing, error) {
	source := ClassifySource(rawURL)

	html, err := p.fetcher.Run(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch listing page: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse listing page: %w", err)
	}

	structured := p.structured.Run(doc)
	social := p.social.Run(doc)
	heuristic := p.patterns.Lookup(p.market).Run(doc)
	fallback := p.fallback.Run(html)

	l := p.merger.Run(source, rawURL, structured, social, heuristic, fallback)
	l.FetchedAtISO = p.now().UTC().Format(time.RFC3339)
	l.ParseConfidence = ScoreConfidence(l)

	slog.Debug("Listing extracted",
		"url", rawURL,
		"source", l.Source,
		"images", len(l.Images),
		"confidence", l.ParseConfidence)

	return &l, nil
}
