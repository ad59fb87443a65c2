package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/components/tool/utils"
	"github.com/cloudwego/eino/schema"

	"github.com/finsight-core/server/internal/assistant/finance"
	"github.com/finsight-core/server/internal/assistant/model"
)

type EnrichPortfolioInput struct {
	PortfolioJSON string `json:"portfolio_json"`
}

// NewEnrichPortfolioTool lets the portfolio model re-run enrichment on a
// portfolio document. The branch already enriches before the first call;
// this stays registered so a model-initiated refresh degrades gracefully
// instead of hitting the unknown-tool path.
func NewEnrichPortfolioTool(md finance.MarketData) tool.InvokableTool {
	return utils.NewTool(
		&schema.ToolInfo{
			Name: ToolEnrichPortfolio,
			Desc: "Enriches a portfolio document: fetches long name, sector and industry for every holding and recomputes each holding's weight percentage from current values. Accepts the portfolio as a JSON string and returns the enhanced document.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"portfolio_json": {
					Type:     "string",
					Desc:     "The portfolio document as a JSON string with base_currency and holdings.",
					Required: true,
				},
			}),
		},
		func(ctx context.Context, in *EnrichPortfolioInput) (*model.Portfolio, error) {
			if in.PortfolioJSON == "" {
				return nil, fmt.Errorf("portfolio_json is required")
			}
			var p model.Portfolio
			if err := json.Unmarshal([]byte(in.PortfolioJSON), &p); err != nil {
				return nil, fmt.Errorf("invalid portfolio JSON: %w", err)
			}
			return finance.EnrichPortfolio(ctx, md, &p), nil
		},
	)
}
