package agents

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/schema"

	"github.com/finsight-core/server/internal/assistant/cache"
	"github.com/finsight-core/server/internal/assistant/model"
	"github.com/finsight-core/server/internal/assistant/prompts"
	"github.com/finsight-core/server/internal/assistant/schemas"
	logx "github.com/finsight-core/server/pkg/logger"
)

// GoalAgent turns a structured goal-planning form into a full plan. It is
// the only branch without tools: all nine inputs arrive in the request, so a
// single model round suffices. Plans are memoized on the input fingerprint.
type GoalAgent struct {
	cm   ChatModel
	memo *cache.Memo[*schemas.GoalPlanResult]
}

func NewGoalAgent(cm ChatModel, memo *cache.Memo[*schemas.GoalPlanResult]) *GoalAgent {
	return &GoalAgent{cm: cm, memo: memo}
}

func (a *GoalAgent) Run(ctx context.Context, req *model.AssistantRequest) (*model.AssistantResponse, error) {
	if req.GoalPlan == nil {
		return nil, fmt.Errorf("goals: no goal plan input provided")
	}

	key := cache.GoalPlanKey(req.GoalPlan)
	if hit, ok := a.memo.Get(key); ok {
		logx.Debug().Str("goal_type", req.GoalPlan.GoalType).Msg("Goal plan served from cache")
		return a.respond(req, hit, nil), nil
	}

	msgs, err := prompts.Render(ctx,
		schema.SystemMessage(prompts.GoalSystem),
		prompts.GoalPlanUserMessage(req.GoalPlan),
	)
	if err != nil {
		return nil, err
	}

	final, err := a.cm.Generate(ctx, msgs)
	if err != nil {
		return nil, fmt.Errorf("goals: model generate: %w", err)
	}

	plan := &schemas.GoalPlanResult{}
	if err := schemas.Decode(final.Content, plan); err != nil {
		return nil, fmt.Errorf("goal plan: %w", err)
	}

	a.memo.Put(key, plan)
	return a.respond(req, plan, []*schema.Message{final}), nil
}

func (a *GoalAgent) respond(req *model.AssistantRequest, plan *schemas.GoalPlanResult, transcript []*schema.Message) *model.AssistantResponse {
	return &model.AssistantResponse{
		ThreadID: req.ThreadID,
		Context:  req.Context,
		Branch:   model.BranchGoalPlanning,
		Messages: transcript,
		Plan:     plan,
	}
}
