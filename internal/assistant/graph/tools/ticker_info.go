package tools

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/components/tool/utils"
	"github.com/cloudwego/eino/schema"

	"github.com/finsight-core/server/internal/assistant/finance"
)

type TickerInfoInput struct {
	Ticker string `json:"ticker"`
}

// NewTickerInfoTool exposes the market-data provider's per-ticker field map
// to the QA branch.
func NewTickerInfoTool(md finance.MarketData) tool.InvokableTool {
	return utils.NewTool(
		&schema.ToolInfo{
			Name: ToolTickerInfo,
			Desc: "Fetches basic market and fundamental information about a stock ticker: long name, sector, industry, market cap, current price, previous close and day range. Use this tool whenever the user asks about a specific stock.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"ticker": {
					Type:     "string",
					Desc:     "The stock ticker symbol to fetch information for, e.g. AAPL or MSFT.",
					Required: true,
				},
			}),
		},
		func(ctx context.Context, in *TickerInfoInput) (map[string]any, error) {
			if in.Ticker == "" {
				return nil, fmt.Errorf("ticker is required")
			}
			return md.TickerInfo(ctx, in.Ticker)
		},
	)
}
