package model

import (
	"github.com/cloudwego/eino/schema"

	"github.com/finsight-core/server/internal/assistant/schemas"
)

// ContextTag declares which assistant surface a request came from.
type ContextTag string

const (
	ContextQA            ContextTag = "qa"
	ContextPortfolio     ContextTag = "portfolio"
	ContextMarketTrends  ContextTag = "market_trends"
	ContextGoalsPlanning ContextTag = "goals_planning"
)

// Branch node keys used by the router and the graph dispatch branch.
const (
	BranchQA           = "qa_agent"
	BranchPortfolio    = "portfolio_agent"
	BranchMarketTrends = "market_trends_agent"
	BranchGoalPlanning = "goal_planning_agent"
)

// AssistantRequest is the record the UI layer hands to the orchestration
// graph. Exactly one of the branch payloads is expected to be set, matching
// the declared Context; the router falls back to the QA branch otherwise.
type AssistantRequest struct {
	ThreadID  string         `json:"thread_id"`
	Context   ContextTag     `json:"context"`
	Query     string         `json:"query,omitempty"`
	Portfolio *Portfolio     `json:"portfolio,omitempty"`
	UserGoal  string         `json:"user_goal,omitempty"`
	Ticker    string         `json:"ticker,omitempty"`
	GoalPlan  *GoalPlanInput `json:"goal_plan,omitempty"`
}

// AssistantResponse mirrors the request shape extended with whichever output
// slot the selected branch populated. All other slots stay nil/empty.
// Messages carries the messages this request appended to the thread, in
// order: user input, any tool-call exchange, and the final assistant answer.
type AssistantResponse struct {
	ThreadID string            `json:"thread_id"`
	Context  ContextTag        `json:"context"`
	Branch   string            `json:"branch"`
	Messages []*schema.Message `json:"messages,omitempty"`

	// QA branch
	Answer string `json:"answer,omitempty"`

	// Portfolio branch
	Portfolio *Portfolio                 `json:"portfolio,omitempty"`
	Insights  *schemas.PortfolioInsights `json:"insights,omitempty"`

	// Market-trends branch
	MarketReport string    `json:"market_report,omitempty"`
	Snapshot     *Snapshot `json:"snapshot,omitempty"`

	// Goal-planning branch
	Plan *schemas.GoalPlanResult `json:"plan,omitempty"`

	// CostUSD is the model usage cost this request incurred. Cache hits
	// make no model calls and report zero.
	CostUSD float64 `json:"cost_usd,omitempty"`
}

// AssistantState stores per-invocation state for the Eino graph.
// Concurrency model follows the graph-local-state contract: all reads and
// writes happen inside Eino state handlers (WithStatePreHandler,
// WithStatePostHandler, compose.ProcessState), which Eino serializes per run.
type AssistantState struct {
	ThreadID   string
	Context    ContextTag
	NextBranch string // written by the router, read once by the dispatch branch

	History      []*schema.Message // mutated only inside Eino state handlers
	TotalCostUSD float64           // accumulated model usage cost for the run
}
