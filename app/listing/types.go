package listing

// Source identifies the listing site a URL belongs to.
type Source string

const (
	SourceOtodom  Source = "otodom"
	SourceOlx     Source = "olx"
	SourceMorizon Source = "morizon"
	SourceGratka  Source = "gratka"
	SourceUnknown Source = "unknown"
)

// Listing is the canonical extraction result for a single property page.
// Numeric fields are pointers: nil means the field could not be extracted
// from any source. After normalization and scoring the record is final.
type Listing struct {
	Source          Source   `json:"source"`
	URL             string   `json:"url"`
	Title           string   `json:"title,omitempty"`
	Description     string   `json:"description,omitempty"`
	LocationText    string   `json:"locationText,omitempty"`
	Price           *float64 `json:"price,omitempty"`
	AreaM2          *float64 `json:"areaM2,omitempty"`
	Rooms           *float64 `json:"rooms,omitempty"`
	Currency        string   `json:"currency,omitempty"`
	PricePerM2      *float64 `json:"pricePerM2,omitempty"`
	Latitude        *float64 `json:"latitude,omitempty"`
	Longitude       *float64 `json:"longitude,omitempty"`
	Images          []string `json:"images"`
	FetchedAtISO    string   `json:"fetchedAtISO"`
	ParseConfidence float64  `json:"parseConfidence"`
}

// Fields is one extractor's partial view of a listing. A zero value
// (empty string, nil pointer, empty slice) means the extractor had no
// signal for that field.
type Fields struct {
	Title        string
	Description  string
	LocationText string
	Price        *float64
	AreaM2       *float64
	Rooms        *float64
	Currency     string
	Latitude     *float64
	Longitude    *float64
	Images       []string
}
