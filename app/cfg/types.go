package cfg

type Cfg struct {
	// HTTP server configuration
	Port         string
	APIAccessKey string

	// Outbound fetch configuration
	UserAgent      string
	AcceptLanguage string
	FetchTimeout   int

	// Extraction configuration
	DefaultCurrency string
	Market          string
	PatternsDir     string

	// Application metadata
	Timezone string
	Debug    bool
	Version  string
}
