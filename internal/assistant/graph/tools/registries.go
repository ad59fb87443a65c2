package tools

import (
	"context"

	"github.com/finsight-core/server/internal/assistant/finance"
	"github.com/finsight-core/server/internal/assistant/retrieval"
)

// Per-branch tool registries. The sets are fixed by design: a branch can
// only reach the tools listed here.

func NewQARegistry(ctx context.Context, md finance.MarketData, r retrieval.Retriever, topK int) (*Registry, error) {
	return NewRegistry(ctx,
		NewTickerInfoTool(md),
		NewRetrieveDocumentsTool(r, topK),
	)
}

func NewMarketRegistry(ctx context.Context, md finance.MarketData) (*Registry, error) {
	return NewRegistry(ctx, NewSnapshotTool(md))
}

func NewPortfolioRegistry(ctx context.Context, md finance.MarketData) (*Registry, error) {
	return NewRegistry(ctx, NewEnrichPortfolioTool(md))
}
