package listing

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Fetcher retrieves a listing page over HTTP. Source sites vary content
// or block default clients, so requests carry a realistic browser
// user-agent and an accept-language preference. One attempt, no retries.
type Fetcher struct {
	client         *http.Client
	userAgent      string
	acceptLanguage string
}

func NewFetcher(client *http.Client, userAgent, acceptLanguage string) *Fetcher {
	return &Fetcher{
		client:         client,
		userAgent:      userAgent,
		acceptLanguage: acceptLanguage,
	}
}

// Run fetches the page body as text. A non-text response is an error;
// the status code is not checked because block pages and soft 404s still
// carry extractable markup.
func (f *Fetcher) Run(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept-Language", f.acceptLanguage)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch URL: %w", err)
	}
	defer resp.Body.Close()

	contentType := resp.Header.Get("Content-Type")
	if contentType != "" && !strings.Contains(strings.ToLower(contentType), "text") {
		return "", fmt.Errorf("content type is not text: %s", contentType)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	return string(body), nil
}
