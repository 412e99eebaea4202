package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kzachski/domadvisor-api/app/cfg"
)

func NewHandler(pipeline PipelineInterface, patternSetCount int) *Handler {
	return &Handler{
		pipeline:        pipeline,
		patternSetCount: patternSetCount,
	}
}

func (h *Handler) Ingest(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read request body"})
		return
	}

	// A malformed JSON body degrades to an empty request; the missing-url
	// check below produces the actual client error.
	var req IngestRequest
	if len(body) > 0 {
		if err := json.Unmarshal(body, &req); err != nil {
			req = IngestRequest{}
		}
	}

	if req.URL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": `Missing "url" in body`})
		return
	}

	if req.Survey == nil {
		req.Survey = map[string]any{}
	}

	result, err := h.pipeline.Run(c.Request.Context(), req.URL)
	if err != nil {
		slog.Error("Listing extraction failed", "url", req.URL, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, IngestResponse{
		Data: IngestData{
			Listing: result,
			Survey:  req.Survey,
			Scores:  map[string]any{},
		},
	})
}

func (h *Handler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"timestamp":           time.Now().In(time.Local).Format(time.RFC3339),
		"version":             cfg.GetVersion(),
		"loaded_pattern_sets": h.patternSetCount,
	})
}
