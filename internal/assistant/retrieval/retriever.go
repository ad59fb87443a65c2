package retrieval

import "context"

// Document is one ranked result from the external vector-search service.
type Document struct {
	Source  string `json:"source"`
	Content string `json:"content"`
}

// Retriever is the boundary to the semantic-search service over the fixed
// finance corpus. Corpus loading and embedding live on the other side of
// this interface.
type Retriever interface {
	Search(ctx context.Context, query string, k int) ([]Document, error)
}
