package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/finsight-core/server/internal/assistant/model"
)

func TestPortfolioKey_OrderIndependent(t *testing.T) {
	a := &model.Portfolio{
		BaseCurrency: "USD",
		Holdings: []model.Holding{
			{Ticker: "AAPL", CurrentValue: 15000},
			{Ticker: "VOO", CurrentValue: 25000},
		},
	}
	b := &model.Portfolio{
		BaseCurrency: "USD",
		Holdings: []model.Holding{
			{Ticker: "VOO", CurrentValue: 25000},
			{Ticker: "AAPL", CurrentValue: 15000},
		},
	}

	assert.Equal(t, PortfolioKey(a, "retire early"), PortfolioKey(b, "retire early"))
}

func TestPortfolioKey_Discriminates(t *testing.T) {
	base := &model.Portfolio{
		BaseCurrency: "USD",
		Holdings:     []model.Holding{{Ticker: "AAPL", CurrentValue: 15000}},
	}

	otherValue := &model.Portfolio{
		BaseCurrency: "USD",
		Holdings:     []model.Holding{{Ticker: "AAPL", CurrentValue: 15000.5}},
	}
	otherCurrency := &model.Portfolio{
		BaseCurrency: "EUR",
		Holdings:     []model.Holding{{Ticker: "AAPL", CurrentValue: 15000}},
	}

	key := PortfolioKey(base, "goal")
	assert.NotEqual(t, key, PortfolioKey(otherValue, "goal"))
	assert.NotEqual(t, key, PortfolioKey(otherCurrency, "goal"))
	assert.NotEqual(t, key, PortfolioKey(base, "different goal"))
}

func TestPortfolioKey_IgnoresMetadata(t *testing.T) {
	bare := &model.Portfolio{
		BaseCurrency: "USD",
		Holdings:     []model.Holding{{Ticker: "AAPL", CurrentValue: 15000}},
	}
	enriched := &model.Portfolio{
		BaseCurrency: "USD",
		Holdings: []model.Holding{{
			Ticker:       "AAPL",
			CurrentValue: 15000,
			LongName:     "Apple Inc.",
			Sector:       "Technology",
		}},
		TotalValue: 15000,
	}

	assert.Equal(t, PortfolioKey(bare, "g"), PortfolioKey(enriched, "g"))
}

func TestMarketKey(t *testing.T) {
	assert.Equal(t, "market|AAPL", MarketKey("AAPL"))
	// raw ticker string, case preserved
	assert.NotEqual(t, MarketKey("aapl"), MarketKey("AAPL"))
}

func TestGoalPlanKey(t *testing.T) {
	in := &model.GoalPlanInput{
		GoalType:        "retirement",
		TargetAmount:    1000000,
		HorizonYears:    20,
		CurrentNetWorth: 150000,
		RiskTolerance:   "moderate",
		CurrentAge:      40,
		AnnualIncome:    120000,
		MonthlyExpenses: 5000,
		MonthlySavings:  2500,
	}

	same := *in
	assert.Equal(t, GoalPlanKey(in), GoalPlanKey(&same))

	changed := *in
	changed.MonthlySavings = 2600
	assert.NotEqual(t, GoalPlanKey(in), GoalPlanKey(&changed))
}
