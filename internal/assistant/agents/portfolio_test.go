package agents

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finsight-core/server/internal/assistant/cache"
	"github.com/finsight-core/server/internal/assistant/graph/tools"
	"github.com/finsight-core/server/internal/assistant/model"
	errx "github.com/finsight-core/server/internal/core/error"
)

type fakeMarketData struct {
	info map[string]map[string]any
	snap *model.Snapshot
}

func (f *fakeMarketData) TickerInfo(_ context.Context, ticker string) (map[string]any, error) {
	if info, ok := f.info[ticker]; ok {
		return info, nil
	}
	return nil, fmt.Errorf("no data for %s", ticker)
}

func (f *fakeMarketData) Snapshot(_ context.Context, ticker string) (*model.Snapshot, error) {
	if f.snap != nil {
		return f.snap, nil
	}
	return nil, fmt.Errorf("no snapshot for %s", ticker)
}

const insightsJSON = `{
	"summary": "Balanced two-fund portfolio.",
	"risk_level": "moderate",
	"suitability_vs_time_horizon": {"qualitative_fit": "reasonable", "explanation": "ok"},
	"disclaimer": "Past performance does not guarantee future results."
}`

func portfolioRequest() *model.AssistantRequest {
	return &model.AssistantRequest{
		ThreadID: "t1",
		Context:  model.ContextPortfolio,
		UserGoal: "retire in 20 years",
		Portfolio: &model.Portfolio{
			BaseCurrency: "USD",
			Holdings: []model.Holding{
				{Ticker: "VOO", CurrentValue: 30000},
				{Ticker: "BND", CurrentValue: 10000},
			},
		},
	}
}

func newPortfolioAgentForTest(t *testing.T, cm ChatModel) *PortfolioAgent {
	t.Helper()
	md := &fakeMarketData{info: map[string]map[string]any{
		"VOO": {"longName": "Vanguard S&P 500 ETF"},
	}}
	reg, err := tools.NewPortfolioRegistry(context.Background(), md)
	require.NoError(t, err)
	memo := cache.NewMemo[PortfolioResult](cache.Config{MaxEntries: 8, TTL: time.Minute})
	return NewPortfolioAgent(cm, reg, md, memo)
}

func TestPortfolioAgent_EnrichesAndDecodes(t *testing.T) {
	ctx := context.Background()
	cm := &scriptedModel{responses: []*schema.Message{
		schema.AssistantMessage(insightsJSON, nil),
	}}
	a := newPortfolioAgentForTest(t, cm)

	resp, err := a.Run(ctx, portfolioRequest())
	require.NoError(t, err)

	assert.Equal(t, model.BranchPortfolio, resp.Branch)
	require.NotNil(t, resp.Insights)
	assert.Equal(t, "Balanced two-fund portfolio.", resp.Insights.Summary)

	require.NotNil(t, resp.Portfolio)
	assert.Equal(t, 40000.0, resp.Portfolio.TotalValue)
	assert.Equal(t, 75.0, resp.Portfolio.Holdings[0].WeightPercent)
	assert.Equal(t, "Vanguard S&P 500 ETF", resp.Portfolio.Holdings[0].LongName)
	assert.Equal(t, "N/A", resp.Portfolio.Holdings[1].LongName)

	// the model saw the enriched document, not the raw submission
	require.Len(t, cm.calls, 1)
	userTurn := cm.calls[0][len(cm.calls[0])-1]
	var payload struct {
		Holdings []model.Holding `json:"holdings"`
	}
	start := strings.Index(userTurn.Content, "{")
	end := strings.LastIndex(userTurn.Content, "}")
	require.True(t, start >= 0 && end > start)
	require.NoError(t, json.Unmarshal([]byte(userTurn.Content[start:end+1]), &payload))
	assert.Equal(t, 75.0, payload.Holdings[0].WeightPercent)
}

func TestPortfolioAgent_CachesOnFingerprint(t *testing.T) {
	ctx := context.Background()
	cm := &scriptedModel{responses: []*schema.Message{
		schema.AssistantMessage(insightsJSON, nil),
	}}
	a := newPortfolioAgentForTest(t, cm)

	first, err := a.Run(ctx, portfolioRequest())
	require.NoError(t, err)

	// same holdings in reversed order must hit the cache
	req := portfolioRequest()
	req.Portfolio.Holdings[0], req.Portfolio.Holdings[1] = req.Portfolio.Holdings[1], req.Portfolio.Holdings[0]
	second, err := a.Run(ctx, req)
	require.NoError(t, err)

	assert.Len(t, cm.calls, 1, "second run must not reach the model")
	assert.Equal(t, first.Insights, second.Insights)
	assert.Empty(t, second.Messages, "cached responses carry no fresh transcript")
}

func TestPortfolioAgent_BadStructuredOutputIsFatal(t *testing.T) {
	ctx := context.Background()
	cm := &scriptedModel{responses: []*schema.Message{
		schema.AssistantMessage("I cannot produce JSON right now.", nil),
	}}
	a := newPortfolioAgentForTest(t, cm)

	_, err := a.Run(ctx, portfolioRequest())
	require.Error(t, err)
	appErr := &errx.AppError{}
	assert.ErrorAs(t, err, &appErr)

	// failures are not cached; the next run computes again
	cm.responses = append(cm.responses, schema.AssistantMessage(insightsJSON, nil))
	resp, err := a.Run(ctx, portfolioRequest())
	require.NoError(t, err)
	assert.NotNil(t, resp.Insights)
}

func TestPortfolioAgent_RejectsEmptyPortfolio(t *testing.T) {
	a := newPortfolioAgentForTest(t, &scriptedModel{})
	_, err := a.Run(context.Background(), &model.AssistantRequest{
		ThreadID: "t1",
		Context:  model.ContextPortfolio,
	})
	assert.Error(t, err)
}
