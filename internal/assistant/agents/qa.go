package agents

import (
	"context"
	"fmt"

	"github.com/finsight-core/server/internal/assistant/conversations"
	"github.com/finsight-core/server/internal/assistant/graph/tools"
	"github.com/finsight-core/server/internal/assistant/model"
	"github.com/finsight-core/server/internal/assistant/prompts"
	logx "github.com/finsight-core/server/pkg/logger"
)

// QAAgent answers free-form finance questions over the thread's recent
// history, with ticker lookup and document retrieval tools available. It is
// the only branch that reads and extends the persisted conversation.
type QAAgent struct {
	cm  ChatModel
	reg *tools.Registry
	mgr *conversations.Manager
}

func NewQAAgent(cm ChatModel, reg *tools.Registry, mgr *conversations.Manager) *QAAgent {
	return &QAAgent{cm: cm, reg: reg, mgr: mgr}
}

func (a *QAAgent) Run(ctx context.Context, req *model.AssistantRequest) (*model.AssistantResponse, error) {
	if req.Query == "" {
		return nil, fmt.Errorf("qa: empty query")
	}

	if err := a.mgr.RecordUserQuery(ctx, req.ThreadID, req.Query); err != nil {
		return nil, fmt.Errorf("qa: record user query: %w", err)
	}

	msgs, err := a.mgr.BuildQAContext(ctx, req.ThreadID, prompts.QASystem)
	if err != nil {
		return nil, fmt.Errorf("qa: build context: %w", err)
	}
	msgs, err = prompts.Render(ctx, msgs...)
	if err != nil {
		return nil, err
	}

	final, transcript, err := completeWithTools(ctx, a.cm, a.reg, msgs)
	if err != nil {
		return nil, fmt.Errorf("qa: %w", err)
	}

	if err := a.mgr.SaveResponse(ctx, req.ThreadID, final.Content); err != nil {
		logx.Error().Err(err).Str("thread_id", req.ThreadID).
			Msg("Error saving assistant response")
	}

	return &model.AssistantResponse{
		ThreadID: req.ThreadID,
		Context:  req.Context,
		Branch:   model.BranchQA,
		Messages: transcript,
		Answer:   final.Content,
	}, nil
}
