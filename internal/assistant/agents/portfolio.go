package agents

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cloudwego/eino/schema"

	"github.com/finsight-core/server/internal/assistant/cache"
	"github.com/finsight-core/server/internal/assistant/finance"
	"github.com/finsight-core/server/internal/assistant/graph/tools"
	"github.com/finsight-core/server/internal/assistant/model"
	"github.com/finsight-core/server/internal/assistant/prompts"
	"github.com/finsight-core/server/internal/assistant/schemas"
	logx "github.com/finsight-core/server/pkg/logger"
)

// PortfolioResult is the memoized outcome of one portfolio analysis.
type PortfolioResult struct {
	Enriched *model.Portfolio
	Insights *schemas.PortfolioInsights
}

// PortfolioAgent enriches the submitted holdings with security metadata and
// recomputed weights, then asks the model for structured insights. Results
// are memoized on the portfolio fingerprint.
type PortfolioAgent struct {
	cm   ChatModel
	reg  *tools.Registry
	md   finance.MarketData
	memo *cache.Memo[PortfolioResult]
}

func NewPortfolioAgent(cm ChatModel, reg *tools.Registry, md finance.MarketData, memo *cache.Memo[PortfolioResult]) *PortfolioAgent {
	return &PortfolioAgent{cm: cm, reg: reg, md: md, memo: memo}
}

func (a *PortfolioAgent) Run(ctx context.Context, req *model.AssistantRequest) (*model.AssistantResponse, error) {
	if req.Portfolio == nil || len(req.Portfolio.Holdings) == 0 {
		return nil, fmt.Errorf("portfolio: no holdings provided")
	}

	key := cache.PortfolioKey(req.Portfolio, req.UserGoal)
	if hit, ok := a.memo.Get(key); ok {
		logx.Debug().Str("thread_id", req.ThreadID).Msg("Portfolio insights served from cache")
		return a.respond(req, hit, nil), nil
	}

	enriched := finance.EnrichPortfolio(ctx, a.md, req.Portfolio)
	enrichedJSON, err := json.Marshal(enriched)
	if err != nil {
		return nil, fmt.Errorf("portfolio: marshal enriched portfolio: %w", err)
	}

	msgs, err := prompts.Render(ctx,
		schema.SystemMessage(prompts.PortfolioSystem),
		prompts.PortfolioUserMessage(string(enrichedJSON), req.UserGoal),
	)
	if err != nil {
		return nil, err
	}

	final, transcript, err := completeWithTools(ctx, a.cm, a.reg, msgs)
	if err != nil {
		return nil, fmt.Errorf("portfolio: %w", err)
	}

	insights := &schemas.PortfolioInsights{}
	if err := schemas.Decode(final.Content, insights); err != nil {
		return nil, fmt.Errorf("portfolio insights: %w", err)
	}

	result := PortfolioResult{Enriched: enriched, Insights: insights}
	a.memo.Put(key, result)

	return a.respond(req, result, transcript), nil
}

func (a *PortfolioAgent) respond(req *model.AssistantRequest, r PortfolioResult, transcript []*schema.Message) *model.AssistantResponse {
	return &model.AssistantResponse{
		ThreadID:  req.ThreadID,
		Context:   req.Context,
		Branch:    model.BranchPortfolio,
		Messages:  transcript,
		Portfolio: r.Enriched,
		Insights:  r.Insights,
	}
}
