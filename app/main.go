package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/kzachski/domadvisor-api/app/api"
	"github.com/kzachski/domadvisor-api/app/cfg"
	"github.com/kzachski/domadvisor-api/app/listing"
)

func main() {
	// Optional .env file; real environment takes precedence
	_ = godotenv.Load()

	appCfg, err := cfg.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	logLevel := slog.LevelInfo
	if appCfg.Debug {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))

	slog.Info("Starting DomAdvisor API server", "version", appCfg.Version)

	// Heuristic pattern sets: built-in defaults plus any configured extras
	patternSets := listing.DefaultPatternSets()
	extraSets, err := listing.LoadPatternSets(appCfg.PatternsDir)
	if err != nil {
		slog.Error("Failed to load pattern sets", "dir", appCfg.PatternsDir, "error", err)
		os.Exit(1)
	}
	patternSets = append(patternSets, extraSets...)

	patterns, err := listing.NewPatternRegistry(patternSets)
	if err != nil {
		slog.Error("Failed to build pattern registry", "error", err)
		os.Exit(1)
	}
	slog.Info("Pattern sets loaded", "count", patterns.Count(), "market", appCfg.Market)

	httpClient := &http.Client{
		Timeout: time.Duration(appCfg.FetchTimeout) * time.Second,
	}
	fetcher := listing.NewFetcher(httpClient, appCfg.UserAgent, appCfg.AcceptLanguage)
	pipeline := listing.NewPipeline(fetcher, patterns, appCfg.DefaultCurrency, appCfg.Market)

	handler := api.NewHandler(pipeline, patterns.Count())
	server := api.NewServer(handler, appCfg.APIAccessKey)

	httpServer := &http.Server{
		Addr:         ":" + appCfg.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "port", appCfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		slog.Info("Received signal", "signal", sig.String())
	case err := <-serverErrChan:
		slog.Error("Server error", "error", err)
	}

	slog.Info("Shutting down server gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	} else {
		slog.Info("HTTP server stopped")
	}
}
