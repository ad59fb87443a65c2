package agents

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/schema"

	"github.com/finsight-core/server/internal/assistant/cache"
	"github.com/finsight-core/server/internal/assistant/graph/tools"
	"github.com/finsight-core/server/internal/assistant/model"
	"github.com/finsight-core/server/internal/assistant/prompts"
	logx "github.com/finsight-core/server/pkg/logger"
)

// MarketResult is the memoized outcome of one market-trends analysis.
type MarketResult struct {
	Report   string
	Snapshot *model.Snapshot
}

// MarketAgent produces a markdown market report for one ticker. The model
// fetches its data through the snapshot tool; the agent recovers the raw
// snapshot from the tool exchange so callers get both the report and the
// data it was built from. Results are memoized per ticker.
type MarketAgent struct {
	cm   ChatModel
	reg  *tools.Registry
	memo *cache.Memo[MarketResult]
}

func NewMarketAgent(cm ChatModel, reg *tools.Registry, memo *cache.Memo[MarketResult]) *MarketAgent {
	return &MarketAgent{cm: cm, reg: reg, memo: memo}
}

func (a *MarketAgent) Run(ctx context.Context, req *model.AssistantRequest) (*model.AssistantResponse, error) {
	ticker := strings.TrimSpace(req.Ticker)
	if ticker == "" {
		return nil, fmt.Errorf("market: empty ticker")
	}

	key := cache.MarketKey(req.Ticker)
	if hit, ok := a.memo.Get(key); ok {
		logx.Debug().Str("ticker", ticker).Msg("Market report served from cache")
		return a.respond(req, hit, nil), nil
	}

	msgs, err := prompts.Render(ctx,
		schema.SystemMessage(prompts.MarketSystem),
		prompts.MarketUserMessage(ticker),
	)
	if err != nil {
		return nil, err
	}

	final, transcript, err := completeWithTools(ctx, a.cm, a.reg, msgs)
	if err != nil {
		return nil, fmt.Errorf("market: %w", err)
	}

	result := MarketResult{
		Report:   final.Content,
		Snapshot: snapshotFromTranscript(transcript),
	}
	a.memo.Put(key, result)

	return a.respond(req, result, transcript), nil
}

func (a *MarketAgent) respond(req *model.AssistantRequest, r MarketResult, transcript []*schema.Message) *model.AssistantResponse {
	return &model.AssistantResponse{
		ThreadID:     req.ThreadID,
		Context:      req.Context,
		Branch:       model.BranchMarketTrends,
		Messages:     transcript,
		MarketReport: r.Report,
		Snapshot:     r.Snapshot,
	}
}

// snapshotFromTranscript finds the snapshot tool's result message and decodes
// it. Error payloads and absent tool calls yield nil; the report itself is
// still usable without the raw snapshot.
func snapshotFromTranscript(transcript []*schema.Message) *model.Snapshot {
	wanted := map[string]bool{}
	for _, msg := range transcript {
		if msg.Role == schema.Assistant {
			for _, tc := range msg.ToolCalls {
				if tc.Function.Name == tools.ToolSnapshot {
					wanted[tc.ID] = true
				}
			}
		}
	}
	for _, msg := range transcript {
		if msg.Role != schema.Tool || !wanted[msg.ToolCallID] {
			continue
		}
		var snap model.Snapshot
		if err := json.Unmarshal([]byte(msg.Content), &snap); err != nil || snap.Ticker == "" {
			continue
		}
		return &snap
	}
	return nil
}
