package model

// Holding is one position inside a portfolio document. The metadata fields
// (LongName, Sector, Industry) and WeightPercent are filled by enrichment
// before the portfolio branch calls the model.
type Holding struct {
	Ticker        string  `json:"ticker"`
	CurrentValue  float64 `json:"current_value"`
	LongName      string  `json:"longName,omitempty"`
	Sector        string  `json:"sector,omitempty"`
	Industry      string  `json:"industry,omitempty"`
	AssetClass    string  `json:"asset_class,omitempty"`
	Region        string  `json:"region,omitempty"`
	WeightPercent float64 `json:"weight_percent"`
}

// Portfolio is the document the UI uploads for the portfolio branch.
type Portfolio struct {
	BaseCurrency string    `json:"base_currency"`
	Holdings     []Holding `json:"holdings"`
	TotalValue   float64   `json:"total_value,omitempty"`
}
