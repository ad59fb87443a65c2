package model

// FastQuote carries the quick-access quote fields the market-trends prompt
// reasons about.
type FastQuote struct {
	LongName         string  `json:"longName,omitempty"`
	Currency         string  `json:"currency,omitempty"`
	LastPrice        float64 `json:"lastPrice"`
	PreviousClose    float64 `json:"previousClose"`
	DayHigh          float64 `json:"dayHigh"`
	DayLow           float64 `json:"dayLow"`
	FiftyTwoWeekHigh float64 `json:"fiftyTwoWeekHigh"`
	FiftyTwoWeekLow  float64 `json:"fiftyTwoWeekLow"`
	Volume           int64   `json:"volume"`
	AverageVolume    int64   `json:"averageVolume"`
	MarketCap        float64 `json:"marketCap,omitempty"`
}

// PricePoint is one daily bar of the six-month history series.
type PricePoint struct {
	Date   string  `json:"date"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume int64   `json:"volume"`
}

// NewsArticle is one headline attached to a snapshot.
type NewsArticle struct {
	Title       string `json:"title"`
	Publisher   string `json:"publisher,omitempty"`
	URL         string `json:"url,omitempty"`
	PublishedAt string `json:"published_at,omitempty"`
}

// Snapshot bundles everything the snapshot tool fetches for one ticker:
// fast quote fields, six months of price history, and news filtered to
// articles that mention the company. It is both fed to the model and
// exposed to the caller for charting.
type Snapshot struct {
	Ticker       string        `json:"ticker"`
	Quote        FastQuote     `json:"quote"`
	PriceHistory []PricePoint  `json:"price_history"`
	News         []NewsArticle `json:"news"`
}
