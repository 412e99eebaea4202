package api

import (
	"context"

	"github.com/kzachski/domadvisor-api/app/listing"
)

type PipelineInterface interface {
	Run(ctx context.Context, url string) (*listing.Listing, error)
}

var _ PipelineInterface = (*listing.Pipeline)(nil)

type Handler struct {
	pipeline        PipelineInterface
	patternSetCount int
}

// IngestRequest is the POST /ingest body. Survey is caller-supplied data
// passed through to the response untouched.
type IngestRequest struct {
	URL    string         `json:"url"`
	Survey map[string]any `json:"survey"`
}

type IngestResponse struct {
	Data IngestData `json:"data"`
}

type IngestData struct {
	Listing *listing.Listing `json:"listing"`
	Survey  map[string]any   `json:"survey"`
	Scores  map[string]any   `json:"scores"`
}
