package model

import (
	"context"

	"github.com/cloudwego/eino/schema"
)

// ThreadRepository persists the append-only message history of one thread.
// Different thread IDs are fully isolated; messages are never reordered or
// truncated by the core.
type ThreadRepository interface {
	// AddMessage appends a message to the thread's history.
	AddMessage(ctx context.Context, threadID string, message *schema.Message) error

	// LoadHistory retrieves the full message history for a thread.
	LoadHistory(ctx context.Context, threadID string) (*ThreadHistory, error)

	// ClearHistory removes all history for a thread.
	ClearHistory(ctx context.Context, threadID string) error

	// MessageCount returns the number of messages stored for the thread.
	MessageCount(ctx context.Context, threadID string) (int, error)
}

// ThreadHistory represents loaded thread data with metadata.
type ThreadHistory struct {
	ThreadID string
	Messages []*schema.Message
}
