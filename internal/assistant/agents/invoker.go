package agents

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/schema"

	"github.com/finsight-core/server/internal/assistant/graph/tools"
	logx "github.com/finsight-core/server/pkg/logger"
)

// completeWithTools runs the two-phase tool protocol against one chat model.
//
// Phase one sends the prepared messages. If the model answers with tool
// calls, each call is executed sequentially in the order the model emitted
// them, the results are appended as tool messages, and the model is asked
// once more. The second answer is final: if it carries tool calls again they
// are logged and ignored, and its content stands as the answer.
//
// Tool failures never abort the exchange; the registry degrades them to
// error payloads the model can read. The returned transcript holds every
// message produced after the input: the tool-call assistant turn, the tool
// results, and the final answer.
func completeWithTools(ctx context.Context, cm ChatModel, reg *tools.Registry, msgs []*schema.Message) (*schema.Message, []*schema.Message, error) {
	first, err := cm.Generate(ctx, msgs)
	if err != nil {
		return nil, nil, fmt.Errorf("model generate: %w", err)
	}

	if len(first.ToolCalls) == 0 {
		return first, []*schema.Message{first}, nil
	}

	assignToolCallIDs(first.ToolCalls)

	transcript := []*schema.Message{first}
	round := append(copyMessages(msgs), first)

	logx.Debug().Int("tool_count", len(first.ToolCalls)).Msg("Calling tools")
	for _, tc := range first.ToolCalls {
		result := reg.Invoke(ctx, tc.Function.Name, tc.Function.Arguments)
		toolMsg := &schema.Message{
			Role:       schema.Tool,
			Content:    result,
			ToolCallID: tc.ID,
		}
		transcript = append(transcript, toolMsg)
		round = append(round, toolMsg)
	}

	final, err := cm.Generate(ctx, round)
	if err != nil {
		return nil, nil, fmt.Errorf("model generate after tools: %w", err)
	}
	if len(final.ToolCalls) > 0 {
		logx.Warn().Int("tool_count", len(final.ToolCalls)).
			Msg("Model requested tools on the final round; treating response as terminal")
	}

	transcript = append(transcript, final)
	return final, transcript, nil
}

// assignToolCallIDs fills in IDs Gemini sometimes omits, so tool result
// messages can reference their originating call.
func assignToolCallIDs(calls []schema.ToolCall) {
	for i := range calls {
		if strings.TrimSpace(calls[i].ID) == "" {
			calls[i].ID = fmt.Sprintf("call_%d", i+1)
		}
	}
}

func copyMessages(msgs []*schema.Message) []*schema.Message {
	out := make([]*schema.Message, len(msgs), len(msgs)+4)
	copy(out, msgs)
	return out
}
