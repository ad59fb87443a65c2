package conversations

import (
	"context"

	"github.com/cloudwego/eino/schema"

	"github.com/finsight-core/server/internal/assistant/model"
)

// Manager mediates between branches and the thread repository. Only the QA
// branch reads history; the other branches are stateless per request but
// still record their final answer on the thread.
type Manager struct {
	repo       model.ThreadRepository
	qaMaxTurns int
}

func NewManager(repo model.ThreadRepository, config model.ConversationConfig) *Manager {
	return &Manager{
		repo:       repo,
		qaMaxTurns: config.QA.MaxTurns,
	}
}

// RecordUserQuery appends the user's turn to the thread before the branch
// runs, so the thread log reflects the exchange even when the branch fails.
func (m *Manager) RecordUserQuery(ctx context.Context, threadID, query string) error {
	return m.repo.AddMessage(ctx, threadID, schema.UserMessage(query))
}

// BuildQAContext assembles the QA model input: the system prompt followed by
// the most recent turns of the thread. The user's current query must already
// have been recorded on the thread.
func (m *Manager) BuildQAContext(ctx context.Context, threadID, systemPrompt string) ([]*schema.Message, error) {
	history, err := m.repo.LoadHistory(ctx, threadID)
	if err != nil {
		return nil, err
	}

	recent := trimTail(history.Messages, m.qaMaxTurns)

	messages := make([]*schema.Message, 0, len(recent)+1)
	messages = append(messages, schema.SystemMessage(systemPrompt))
	messages = append(messages, recent...)
	return messages, nil
}

// SaveResponse appends the assistant's final answer to the thread.
func (m *Manager) SaveResponse(ctx context.Context, threadID, content string) error {
	return m.repo.AddMessage(ctx, threadID, schema.AssistantMessage(content, nil))
}

// MessageCount reports how many messages the thread currently holds.
func (m *Manager) MessageCount(ctx context.Context, threadID string) (int, error) {
	return m.repo.MessageCount(ctx, threadID)
}

// ClearThread drops the whole thread history.
func (m *Manager) ClearThread(ctx context.Context, threadID string) error {
	return m.repo.ClearHistory(ctx, threadID)
}

// trimTail keeps the newest maxTurns messages, copying so callers never alias
// the repository's slice.
func trimTail(messages []*schema.Message, maxTurns int) []*schema.Message {
	if maxTurns <= 0 || len(messages) <= maxTurns {
		result := make([]*schema.Message, len(messages))
		copy(result, messages)
		return result
	}
	source := messages[len(messages)-maxTurns:]
	result := make([]*schema.Message, len(source))
	copy(result, source)
	return result
}
