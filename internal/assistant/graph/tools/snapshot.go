package tools

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/components/tool/utils"
	"github.com/cloudwego/eino/schema"

	"github.com/finsight-core/server/internal/assistant/finance"
	"github.com/finsight-core/server/internal/assistant/model"
)

type SnapshotInput struct {
	Ticker string `json:"ticker"`
}

// NewSnapshotTool fetches the market-trends data bundle for one ticker:
// fast quote, six months of price history and recent news. News is filtered
// to articles whose title mentions the company's display name or the ticker
// before it reaches the model.
func NewSnapshotTool(md finance.MarketData) tool.InvokableTool {
	return utils.NewTool(
		&schema.ToolInfo{
			Name: ToolSnapshot,
			Desc: "Fetches the latest market data for a stock ticker: fast-access quote fields, 6 months of daily price history, and recent news about the company. ALWAYS use this tool to ground market-trend analysis in current data.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"ticker": {
					Type:     "string",
					Desc:     "The stock ticker symbol to snapshot, e.g. AAPL.",
					Required: true,
				},
			}),
		},
		func(ctx context.Context, in *SnapshotInput) (*model.Snapshot, error) {
			if in.Ticker == "" {
				return nil, fmt.Errorf("ticker is required")
			}
			snap, err := md.Snapshot(ctx, in.Ticker)
			if err != nil {
				return nil, err
			}
			snap.News = finance.FilterNews(snap.News, snap.Quote.LongName, snap.Ticker)
			return snap, nil
		},
	)
}
