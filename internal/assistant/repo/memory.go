package repo

import (
	"context"
	"sync"

	"github.com/cloudwego/eino/schema"

	"github.com/finsight-core/server/internal/assistant/model"
)

// MemoryThreadRepository keeps thread histories in process memory. Used by
// tests and local runs without Redis. Histories live until process teardown.
type MemoryThreadRepository struct {
	mu      sync.RWMutex
	threads map[string][]*schema.Message
}

func NewMemoryThreadRepository() *MemoryThreadRepository {
	return &MemoryThreadRepository{threads: make(map[string][]*schema.Message)}
}

func (r *MemoryThreadRepository) AddMessage(_ context.Context, threadID string, message *schema.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.threads[threadID] = append(r.threads[threadID], message)
	return nil
}

func (r *MemoryThreadRepository) LoadHistory(_ context.Context, threadID string) (*model.ThreadHistory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	stored := r.threads[threadID]
	msgs := make([]*schema.Message, len(stored))
	copy(msgs, stored)
	return &model.ThreadHistory{ThreadID: threadID, Messages: msgs}, nil
}

func (r *MemoryThreadRepository) ClearHistory(_ context.Context, threadID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.threads, threadID)
	return nil
}

func (r *MemoryThreadRepository) MessageCount(_ context.Context, threadID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.threads[threadID]), nil
}

var _ model.ThreadRepository = (*MemoryThreadRepository)(nil)
