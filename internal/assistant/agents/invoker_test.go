package agents

import (
	"context"
	"fmt"
	"testing"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finsight-core/server/internal/assistant/graph/tools"
)

// scriptedModel returns canned responses in order and records every input.
type scriptedModel struct {
	responses []*schema.Message
	calls     [][]*schema.Message
}

func (m *scriptedModel) Generate(_ context.Context, input []*schema.Message, _ ...einomodel.Option) (*schema.Message, error) {
	m.calls = append(m.calls, input)
	if len(m.calls) > len(m.responses) {
		return nil, fmt.Errorf("no scripted response for call %d", len(m.calls))
	}
	return m.responses[len(m.calls)-1], nil
}

// scriptedTool is a minimal InvokableTool for registry tests.
type scriptedTool struct {
	name string
	run  func(ctx context.Context, args string) (string, error)
}

func (s *scriptedTool) Info(context.Context) (*schema.ToolInfo, error) {
	return &schema.ToolInfo{Name: s.name, Desc: "test tool"}, nil
}

func (s *scriptedTool) InvokableRun(ctx context.Context, args string, _ ...tool.Option) (string, error) {
	return s.run(ctx, args)
}

func toolCall(id, name, args string) schema.ToolCall {
	return schema.ToolCall{
		ID:       id,
		Function: schema.FunctionCall{Name: name, Arguments: args},
	}
}

func TestCompleteWithTools_NoToolCalls(t *testing.T) {
	ctx := context.Background()
	reg, err := tools.NewRegistry(ctx)
	require.NoError(t, err)

	answer := schema.AssistantMessage("plain answer", nil)
	cm := &scriptedModel{responses: []*schema.Message{answer}}

	final, transcript, err := completeWithTools(ctx, cm, reg, []*schema.Message{schema.UserMessage("hi")})
	require.NoError(t, err)
	assert.Equal(t, "plain answer", final.Content)
	require.Len(t, transcript, 1)
	assert.Len(t, cm.calls, 1)
}

func TestCompleteWithTools_SequentialModelOrder(t *testing.T) {
	ctx := context.Background()

	var order []string
	reg, err := tools.NewRegistry(ctx,
		&scriptedTool{name: "alpha", run: func(context.Context, string) (string, error) {
			order = append(order, "alpha")
			return `{"from":"alpha"}`, nil
		}},
		&scriptedTool{name: "beta", run: func(context.Context, string) (string, error) {
			order = append(order, "beta")
			return `{"from":"beta"}`, nil
		}},
	)
	require.NoError(t, err)

	// model asks for beta first, then alpha; invocation must follow that order
	withCalls := &schema.Message{
		Role: schema.Assistant,
		ToolCalls: []schema.ToolCall{
			toolCall("", "beta", `{}`),
			toolCall("", "alpha", `{}`),
		},
	}
	answer := schema.AssistantMessage("final answer", nil)
	cm := &scriptedModel{responses: []*schema.Message{withCalls, answer}}

	input := []*schema.Message{schema.UserMessage("go")}
	final, transcript, err := completeWithTools(ctx, cm, reg, input)
	require.NoError(t, err)

	assert.Equal(t, []string{"beta", "alpha"}, order)
	assert.Equal(t, "final answer", final.Content)

	// transcript: tool-call turn, two tool results, final answer
	require.Len(t, transcript, 4)
	assert.Equal(t, `{"from":"beta"}`, transcript[1].Content)
	assert.Equal(t, `{"from":"alpha"}`, transcript[2].Content)

	// synthesized IDs tie each result to its call
	assert.Equal(t, "call_1", withCalls.ToolCalls[0].ID)
	assert.Equal(t, "call_2", withCalls.ToolCalls[1].ID)
	assert.Equal(t, "call_1", transcript[1].ToolCallID)
	assert.Equal(t, "call_2", transcript[2].ToolCallID)

	// second round saw input + tool-call turn + both results
	require.Len(t, cm.calls, 2)
	assert.Len(t, cm.calls[1], 4)
}

func TestCompleteWithTools_PreservesProvidedIDs(t *testing.T) {
	ctx := context.Background()
	reg, err := tools.NewRegistry(ctx,
		&scriptedTool{name: "alpha", run: func(context.Context, string) (string, error) {
			return `{}`, nil
		}},
	)
	require.NoError(t, err)

	withCalls := &schema.Message{
		Role:      schema.Assistant,
		ToolCalls: []schema.ToolCall{toolCall("provider-id-7", "alpha", `{}`)},
	}
	cm := &scriptedModel{responses: []*schema.Message{withCalls, schema.AssistantMessage("done", nil)}}

	_, transcript, err := completeWithTools(ctx, cm, reg, []*schema.Message{schema.UserMessage("go")})
	require.NoError(t, err)
	assert.Equal(t, "provider-id-7", transcript[1].ToolCallID)
}

func TestCompleteWithTools_ToolFailureDegrades(t *testing.T) {
	ctx := context.Background()
	reg, err := tools.NewRegistry(ctx,
		&scriptedTool{name: "alpha", run: func(context.Context, string) (string, error) {
			return "", fmt.Errorf("upstream timeout")
		}},
	)
	require.NoError(t, err)

	withCalls := &schema.Message{
		Role:      schema.Assistant,
		ToolCalls: []schema.ToolCall{toolCall("", "alpha", `{}`)},
	}
	answer := schema.AssistantMessage("degraded answer", nil)
	cm := &scriptedModel{responses: []*schema.Message{withCalls, answer}}

	final, transcript, err := completeWithTools(ctx, cm, reg, []*schema.Message{schema.UserMessage("go")})
	require.NoError(t, err, "tool failures must not abort the exchange")
	assert.Equal(t, "degraded answer", final.Content)
	assert.Contains(t, transcript[1].Content, "tool_error")
	assert.Contains(t, transcript[1].Content, "upstream timeout")
}

func TestCompleteWithTools_UnknownToolDegrades(t *testing.T) {
	ctx := context.Background()
	reg, err := tools.NewRegistry(ctx)
	require.NoError(t, err)

	withCalls := &schema.Message{
		Role:      schema.Assistant,
		ToolCalls: []schema.ToolCall{toolCall("", "made_up_tool", `{}`)},
	}
	cm := &scriptedModel{responses: []*schema.Message{withCalls, schema.AssistantMessage("ok", nil)}}

	_, transcript, err := completeWithTools(ctx, cm, reg, []*schema.Message{schema.UserMessage("go")})
	require.NoError(t, err)
	assert.Contains(t, transcript[1].Content, "unknown_tool")
}

func TestCompleteWithTools_SecondRoundIsTerminal(t *testing.T) {
	ctx := context.Background()
	reg, err := tools.NewRegistry(ctx,
		&scriptedTool{name: "alpha", run: func(context.Context, string) (string, error) {
			return `{}`, nil
		}},
	)
	require.NoError(t, err)

	firstRound := &schema.Message{
		Role:      schema.Assistant,
		ToolCalls: []schema.ToolCall{toolCall("", "alpha", `{}`)},
	}
	// the model asks for tools again; the exchange must still end here
	secondRound := &schema.Message{
		Role:      schema.Assistant,
		Content:   "partial answer",
		ToolCalls: []schema.ToolCall{toolCall("", "alpha", `{}`)},
	}
	cm := &scriptedModel{responses: []*schema.Message{firstRound, secondRound}}

	final, transcript, err := completeWithTools(ctx, cm, reg, []*schema.Message{schema.UserMessage("go")})
	require.NoError(t, err)
	assert.Equal(t, "partial answer", final.Content)
	assert.Len(t, transcript, 3)
	assert.Len(t, cm.calls, 2, "no third model round")
}
