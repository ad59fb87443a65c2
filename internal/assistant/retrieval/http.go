package retrieval

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/finsight-core/server/internal/assistant/model"
)

const DefaultTopK = 5

// HTTPRetriever talks to the vector-search service's JSON API.
type HTTPRetriever struct {
	baseURL string
	topK    int
	client  *http.Client
}

func NewHTTPRetriever(cfg model.RetrievalConfig) *HTTPRetriever {
	topK := cfg.TopK
	if topK <= 0 {
		topK = DefaultTopK
	}
	return &HTTPRetriever{
		baseURL: cfg.BaseURL,
		topK:    topK,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

type searchRequest struct {
	Query string `json:"query"`
	K     int    `json:"k"`
}

type searchResponse struct {
	Results []Document `json:"results"`
}

func (r *HTTPRetriever) Search(ctx context.Context, query string, k int) ([]Document, error) {
	if k <= 0 {
		k = r.topK
	}
	body, err := json.Marshal(searchRequest{Query: query, K: k})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/search", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("retrieval search: status %d", resp.StatusCode)
	}

	var out searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return out.Results, nil
}

var _ Retriever = (*HTTPRetriever)(nil)
