package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/schema"

	logx "github.com/finsight-core/server/pkg/logger"
)

// Tool names shared between registries, prompts and bindings.
const (
	ToolTickerInfo        = "get_ticker_info"
	ToolRetrieveDocuments = "retrieve_documents"
	ToolSnapshot          = "yf_snapshot"
	ToolEnrichPortfolio   = "enhance_portfolio"
)

// Registry is a fixed set of tools available to one branch. Invoke never
// returns an error: unknown tools and tool failures are converted to a
// structured error payload the model can read, so the branch can still
// complete a degraded answer. No retries happen at this layer.
type Registry struct {
	tools map[string]tool.InvokableTool
	infos []*schema.ToolInfo
}

func NewRegistry(ctx context.Context, list ...tool.InvokableTool) (*Registry, error) {
	r := &Registry{tools: make(map[string]tool.InvokableTool, len(list))}
	for _, t := range list {
		info, err := t.Info(ctx)
		if err != nil {
			return nil, fmt.Errorf("tool info: %w", err)
		}
		r.tools[info.Name] = t
		r.infos = append(r.infos, info)
	}
	return r, nil
}

// Infos returns the tool descriptors for binding to a chat model.
func (r *Registry) Infos() []*schema.ToolInfo {
	return r.infos
}

// Invoke executes one named tool and returns its JSON result. Failures
// degrade to an error payload instead of propagating.
func (r *Registry) Invoke(ctx context.Context, name, arguments string) string {
	t, ok := r.tools[name]
	if !ok {
		logx.Warn().Str("tool_name", name).Str("arguments", arguments).
			Msg("Unknown or invalid tool call; returning fallback result")
		return errorPayload("unknown_tool", fmt.Sprintf("tool %q is not available", name))
	}

	out, err := t.InvokableRun(ctx, arguments)
	if err != nil {
		logx.Warn().Err(err).Str("tool_name", name).Msg("Tool call failed; degrading to error payload")
		return errorPayload("tool_error", err.Error())
	}
	return out
}

func errorPayload(kind, detail string) string {
	b, err := json.Marshal(map[string]string{"error": kind, "detail": detail})
	if err != nil {
		return fmt.Sprintf("{\"error\":%q}", kind)
	}
	return string(b)
}
