package finance

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finsight-core/server/internal/assistant/model"
)

type fakeMarketData struct {
	info map[string]map[string]any
	err  error
}

func (f *fakeMarketData) TickerInfo(_ context.Context, ticker string) (map[string]any, error) {
	if f.err != nil {
		return nil, f.err
	}
	if info, ok := f.info[ticker]; ok {
		return info, nil
	}
	return nil, fmt.Errorf("no data for %s", ticker)
}

func (f *fakeMarketData) Snapshot(_ context.Context, ticker string) (*model.Snapshot, error) {
	return nil, fmt.Errorf("not implemented")
}

func TestEnrichPortfolio_Weights(t *testing.T) {
	md := &fakeMarketData{info: map[string]map[string]any{
		"VOO":  {"longName": "Vanguard S&P 500 ETF", "sector": "N/A", "industry": "N/A"},
		"AAPL": {"longName": "Apple Inc.", "sector": "Technology", "industry": "Consumer Electronics"},
		"BND":  {"longName": "Vanguard Total Bond Market ETF"},
	}}

	p := &model.Portfolio{
		BaseCurrency: "USD",
		Holdings: []model.Holding{
			{Ticker: "VOO", CurrentValue: 25000},
			{Ticker: "AAPL", CurrentValue: 15000},
			{Ticker: "BND", CurrentValue: 10000},
		},
	}

	got := EnrichPortfolio(context.Background(), md, p)
	require.Len(t, got.Holdings, 3)

	assert.Equal(t, 50000.0, got.TotalValue)
	assert.Equal(t, 50.0, got.Holdings[0].WeightPercent)
	assert.Equal(t, 30.0, got.Holdings[1].WeightPercent)
	assert.Equal(t, 20.0, got.Holdings[2].WeightPercent)

	assert.Equal(t, "Apple Inc.", got.Holdings[1].LongName)
	assert.Equal(t, "Technology", got.Holdings[1].Sector)
	// field absent from provider data degrades to the placeholder
	assert.Equal(t, "N/A", got.Holdings[2].Sector)

	// input is not mutated
	assert.Zero(t, p.Holdings[0].WeightPercent)
	assert.Empty(t, p.Holdings[0].LongName)
}

func TestEnrichPortfolio_WeightRounding(t *testing.T) {
	p := &model.Portfolio{Holdings: []model.Holding{
		{Ticker: "A", CurrentValue: 1},
		{Ticker: "B", CurrentValue: 2},
	}}

	got := EnrichPortfolio(context.Background(), &fakeMarketData{}, p)
	assert.Equal(t, 33.33, got.Holdings[0].WeightPercent)
	assert.Equal(t, 66.67, got.Holdings[1].WeightPercent)
}

func TestEnrichPortfolio_ZeroTotal(t *testing.T) {
	p := &model.Portfolio{Holdings: []model.Holding{
		{Ticker: "A", CurrentValue: 0},
		{Ticker: "B", CurrentValue: 0},
	}}

	got := EnrichPortfolio(context.Background(), &fakeMarketData{}, p)
	assert.Equal(t, 0.0, got.TotalValue)
	for _, h := range got.Holdings {
		assert.Equal(t, 0.0, h.WeightPercent)
	}
}

func TestEnrichPortfolio_LookupFailureDegrades(t *testing.T) {
	md := &fakeMarketData{err: fmt.Errorf("upstream down")}
	p := &model.Portfolio{Holdings: []model.Holding{
		{Ticker: "AAPL", CurrentValue: 100},
	}}

	got := EnrichPortfolio(context.Background(), md, p)
	require.Len(t, got.Holdings, 1)
	assert.Equal(t, "N/A", got.Holdings[0].LongName)
	assert.Equal(t, "N/A", got.Holdings[0].Sector)
	assert.Equal(t, "N/A", got.Holdings[0].Industry)
	assert.Equal(t, 100.0, got.Holdings[0].WeightPercent)
}

func TestFilterNews(t *testing.T) {
	articles := []model.NewsArticle{
		{Title: "Foo Corp announces record earnings"},
		{Title: "Analysts weigh in on FOO after rally"},
		{Title: "Broad market slides on rate fears"},
		{Title: "foo corp CEO steps down"},
	}

	kept := FilterNews(articles, "Foo Corp", "FOO")
	require.Len(t, kept, 3)
	assert.Equal(t, "Foo Corp announces record earnings", kept[0].Title)
	assert.Equal(t, "Analysts weigh in on FOO after rally", kept[1].Title)
	assert.Equal(t, "foo corp CEO steps down", kept[2].Title)
}

func TestFilterNews_EmptyTerms(t *testing.T) {
	articles := []model.NewsArticle{{Title: "Anything at all"}}
	assert.Empty(t, FilterNews(articles, "", ""))
}
