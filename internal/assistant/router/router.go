package router

import (
	"github.com/finsight-core/server/internal/assistant/model"
)

// Route maps a request's context tag to the branch that should handle it.
// Pure function over the fixed tag set; any unrecognized or missing tag
// falls open to the QA branch rather than erroring.
func Route(tag model.ContextTag) string {
	switch tag {
	case model.ContextPortfolio:
		return model.BranchPortfolio
	case model.ContextMarketTrends:
		return model.BranchMarketTrends
	case model.ContextGoalsPlanning:
		return model.BranchGoalPlanning
	default:
		return model.BranchQA
	}
}
