package listing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestFetcherSendsBrowserHeaders(t *testing.T) {
	var gotUA, gotLang string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotLang = r.Header.Get("Accept-Language")
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte("<html><body>ok</body></html>"))
	}))
	defer server.Close()

	f := NewFetcher(server.Client(), "Mozilla/5.0 Test", "pl,en;q=0.9")

	body, err := f.Run(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if !strings.Contains(body, "ok") {
		t.Errorf("Expected response body, got %q", body)
	}
	if gotUA != "Mozilla/5.0 Test" {
		t.Errorf("Expected user-agent header, got %q", gotUA)
	}
	if gotLang != "pl,en;q=0.9" {
		t.Errorf("Expected accept-language header, got %q", gotLang)
	}
}

func TestFetcherRejectsNonTextResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write([]byte{0x89, 0x50, 0x4e, 0x47})
	}))
	defer server.Close()

	f := NewFetcher(server.Client(), "ua", "pl")

	if _, err := f.Run(context.Background(), server.URL); err == nil {
		t.Error("Expected error for non-text response")
	}
}

func TestFetcherNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	f := NewFetcher(&http.Client{}, "ua", "pl")

	if _, err := f.Run(context.Background(), url); err == nil {
		t.Error("Expected error when the server is unreachable")
	}
}
