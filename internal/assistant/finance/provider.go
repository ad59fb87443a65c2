package finance

import (
	"context"

	"github.com/finsight-core/server/internal/assistant/model"
)

// MarketData is the boundary to the external market-data provider. Calls
// are blocking; callers decide how failures degrade (tool layer converts
// them to inline error payloads, enrichment falls back to placeholders).
type MarketData interface {
	// TickerInfo returns the provider's market/fundamental field map for a
	// ticker (longName, sector, industry, marketCap, currentPrice, ...).
	TickerInfo(ctx context.Context, ticker string) (map[string]any, error)

	// Snapshot returns six months of daily price history, fast-access quote
	// fields, and recent news for a ticker. News is unfiltered here; the
	// market-trends branch filters it to articles mentioning the company.
	Snapshot(ctx context.Context, ticker string) (*model.Snapshot, error)
}
