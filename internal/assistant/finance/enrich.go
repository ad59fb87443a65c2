package finance

import (
	"context"
	"math"
	"strings"

	"github.com/finsight-core/server/internal/assistant/model"
	logx "github.com/finsight-core/server/pkg/logger"
)

const missingField = "N/A"

// EnrichPortfolio returns a copy of the portfolio with every holding
// augmented with security metadata and a recomputed weight percentage:
// value / total value * 100, rounded to 2 decimals. When the total value is
// zero all weights are zero. Metadata lookups that fail degrade to "N/A"
// placeholders instead of failing the request.
func EnrichPortfolio(ctx context.Context, md MarketData, p *model.Portfolio) *model.Portfolio {
	enriched := &model.Portfolio{
		BaseCurrency: p.BaseCurrency,
		Holdings:     make([]model.Holding, len(p.Holdings)),
	}

	var total float64
	for _, h := range p.Holdings {
		total += h.CurrentValue
	}
	enriched.TotalValue = total

	for i, h := range p.Holdings {
		out := h
		out.LongName, out.Sector, out.Industry = missingField, missingField, missingField
		if h.Ticker != "" && md != nil {
			info, err := md.TickerInfo(ctx, h.Ticker)
			if err != nil {
				logx.Warn().Err(err).Str("ticker", h.Ticker).Msg("ticker metadata lookup failed")
			} else {
				out.LongName = stringField(info, "longName")
				out.Sector = stringField(info, "sector")
				out.Industry = stringField(info, "industry")
			}
		}
		if total > 0 {
			out.WeightPercent = round2(h.CurrentValue / total * 100)
		} else {
			out.WeightPercent = 0
		}
		enriched.Holdings[i] = out
	}

	return enriched
}

// FilterNews keeps articles whose title mentions the company's display name
// or the ticker symbol, case-insensitive substring match.
func FilterNews(articles []model.NewsArticle, longName, ticker string) []model.NewsArticle {
	name := strings.ToLower(strings.TrimSpace(longName))
	sym := strings.ToLower(strings.TrimSpace(ticker))

	kept := make([]model.NewsArticle, 0, len(articles))
	for _, a := range articles {
		title := strings.ToLower(a.Title)
		if (name != "" && strings.Contains(title, name)) ||
			(sym != "" && strings.Contains(title, sym)) {
			kept = append(kept, a)
		}
	}
	return kept
}

func stringField(info map[string]any, key string) string {
	if v, ok := info[key].(string); ok && v != "" {
		return v
	}
	return missingField
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
