package cfg

import (
	"cmp"
	"fmt"
	"time"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// HTTP server configuration
	Port         string `long:"port" env:"PORT" default:"8080" description:"HTTP server port"`
	APIAccessKey string `long:"api-key" env:"API_ACCESS_KEY" description:"API access key for the ingest endpoint (optional)"`

	// Outbound fetch configuration
	UserAgent      string `long:"user-agent" env:"USER_AGENT" default:"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124 Safari/537.36" description:"User agent string for outbound page fetches"`
	AcceptLanguage string `long:"accept-language" env:"ACCEPT_LANGUAGE" default:"pl,en;q=0.9" description:"Accept-Language header for outbound page fetches"`
	FetchTimeout   int    `long:"fetch-timeout" env:"FETCH_TIMEOUT" default:"30" description:"Outbound fetch timeout in seconds"`

	// Extraction configuration
	DefaultCurrency string `long:"default-currency" env:"DEFAULT_CURRENCY" default:"PLN" description:"Currency code assumed when no extractor finds one"`
	Market          string `long:"market" env:"MARKET" default:"pl-PL" description:"Market tag selecting the heuristic pattern set (BCP 47)"`
	PatternsDir     string `long:"patterns-dir" env:"PATTERNS_DIR" default:"./patterns" description:"Directory with additional heuristic pattern set files"`

	// Application metadata
	Timezone string `long:"timezone" env:"TZ" default:"UTC" description:"Timezone for timestamps (e.g., UTC, Europe/Warsaw)"`
	Debug    bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		Port:            raw.Port,
		APIAccessKey:    raw.APIAccessKey,
		UserAgent:       raw.UserAgent,
		AcceptLanguage:  raw.AcceptLanguage,
		FetchTimeout:    raw.FetchTimeout,
		DefaultCurrency: raw.DefaultCurrency,
		Market:          raw.Market,
		PatternsDir:     raw.PatternsDir,
		Timezone:        raw.Timezone,
		Debug:           raw.Debug,
		Version:         GetVersion(),
	}

	if err := applyTimezone(cfg.Timezone); err != nil {
		fmt.Printf("Warning: Invalid timezone '%s', using system default: %v\n", cfg.Timezone, err)
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}

func applyTimezone(timezone string) error {
	if timezone != "" {
		if loc, err := time.LoadLocation(timezone); err != nil {
			return err
		} else {
			time.Local = loc
		}
	}
	return nil
}
