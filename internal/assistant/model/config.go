package model

// ================ Config ================

type QAModelConfig struct {
	Model       string  `envconfig:"QA_MODEL" default:"gemini-2.0-flash"`
	MaxTokens   int     `envconfig:"QA_MAX_TOKENS" default:"4000"`
	Temperature float32 `envconfig:"QA_TEMPERATURE" default:"0.0"`
}

type PortfolioModelConfig struct {
	Model       string  `envconfig:"PORTFOLIO_MODEL" default:"gemini-2.0-flash"`
	MaxTokens   int     `envconfig:"PORTFOLIO_MAX_TOKENS" default:"8000"`
	Temperature float32 `envconfig:"PORTFOLIO_TEMPERATURE" default:"0.0"`
}

type MarketModelConfig struct {
	Model       string  `envconfig:"MARKET_MODEL" default:"gemini-2.0-flash"`
	MaxTokens   int     `envconfig:"MARKET_MAX_TOKENS" default:"8000"`
	Temperature float32 `envconfig:"MARKET_TEMPERATURE" default:"0.0"`
}

type GoalModelConfig struct {
	Model       string  `envconfig:"GOAL_MODEL" default:"gemini-2.0-flash"`
	MaxTokens   int     `envconfig:"GOAL_MAX_TOKENS" default:"8000"`
	Temperature float32 `envconfig:"GOAL_TEMPERATURE" default:"0.0"`
}

type ConversationConfig struct {
	TTL string `envconfig:"CONVERSATION_TTL" default:"15m"`
	QA  struct {
		MaxTurns int `envconfig:"CONVERSATION_QA_MAX_TURNS" default:"10"`
	}
}

// CacheConfig bounds the per-branch result memo. TTL guards staleness,
// MaxEntries guards memory.
type CacheConfig struct {
	MaxEntries int    `envconfig:"CACHE_MAX_ENTRIES" default:"256"`
	TTL        string `envconfig:"CACHE_TTL" default:"1h"`
}

type RetrievalConfig struct {
	BaseURL string `envconfig:"RETRIEVAL_BASE_URL" default:"http://localhost:8900"`
	TopK    int    `envconfig:"RETRIEVAL_TOP_K" default:"5"`
}

type MarketDataConfig struct {
	BaseURL        string `envconfig:"MARKET_DATA_BASE_URL" default:"https://query1.finance.yahoo.com"`
	TimeoutSeconds int    `envconfig:"MARKET_DATA_TIMEOUT_SECONDS" default:"15"`
}
