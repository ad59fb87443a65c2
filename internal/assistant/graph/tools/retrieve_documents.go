package tools

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/components/tool/utils"
	"github.com/cloudwego/eino/schema"

	"github.com/finsight-core/server/internal/assistant/retrieval"
)

type RetrieveDocumentsInput struct {
	Query string `json:"query"`
}

type RetrieveDocumentsOutput struct {
	Documents []retrieval.Document `json:"documents"`
}

// NewRetrieveDocumentsTool exposes semantic search over the finance corpus
// to the QA branch. topK bounds the number of ranked results returned.
func NewRetrieveDocumentsTool(r retrieval.Retriever, topK int) tool.InvokableTool {
	if topK <= 0 {
		topK = retrieval.DefaultTopK
	}
	return utils.NewTool(
		&schema.ToolInfo{
			Name: ToolRetrieveDocuments,
			Desc: "Retrieve finance-related documents for a given query. Use this tool to look up information on finance and investing topics such as budgeting, diversification or dollar-cost averaging. Each result carries its source URL for citation.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"query": {
					Type:     "string",
					Desc:     "Natural-language search query describing the finance topic to look up.",
					Required: true,
				},
			}),
		},
		func(ctx context.Context, in *RetrieveDocumentsInput) (*RetrieveDocumentsOutput, error) {
			if in.Query == "" {
				return nil, fmt.Errorf("query is required")
			}
			docs, err := r.Search(ctx, in.Query, topK)
			if err != nil {
				return nil, err
			}
			return &RetrieveDocumentsOutput{Documents: docs}, nil
		},
	)
}
