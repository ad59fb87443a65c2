package cache

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/finsight-core/server/internal/assistant/model"
)

// Fingerprint builders. Each must be deterministic and order-independent
// with respect to semantically equivalent inputs, so that two requests
// carrying the same data in different order hit the same entry.

// PortfolioKey fingerprints a portfolio request: base currency, holdings as
// (ticker,value) pairs sorted by ticker, and the goal text.
func PortfolioKey(p *model.Portfolio, userGoal string) string {
	pairs := make([]string, 0, len(p.Holdings))
	for _, h := range p.Holdings {
		pairs = append(pairs, h.Ticker+":"+strconv.FormatFloat(h.CurrentValue, 'f', -1, 64))
	}
	sort.Strings(pairs)

	var b strings.Builder
	b.WriteString("portfolio|")
	b.WriteString(p.BaseCurrency)
	b.WriteString("|")
	b.WriteString(strings.Join(pairs, ","))
	b.WriteString("|")
	b.WriteString(userGoal)
	return b.String()
}

// MarketKey fingerprints a market-trends request by the raw ticker string,
// case-sensitive as provided.
func MarketKey(ticker string) string {
	return "market|" + ticker
}

// GoalPlanKey fingerprints a goal-planning request over all nine input
// fields in fixed order.
func GoalPlanKey(in *model.GoalPlanInput) string {
	return fmt.Sprintf("goals|%s|%s|%d|%s|%s|%d|%s|%s|%s",
		in.GoalType,
		strconv.FormatFloat(in.TargetAmount, 'f', -1, 64),
		in.HorizonYears,
		strconv.FormatFloat(in.CurrentNetWorth, 'f', -1, 64),
		in.RiskTolerance,
		in.CurrentAge,
		strconv.FormatFloat(in.AnnualIncome, 'f', -1, 64),
		strconv.FormatFloat(in.MonthlyExpenses, 'f', -1, 64),
		strconv.FormatFloat(in.MonthlySavings, 'f', -1, 64),
	)
}
