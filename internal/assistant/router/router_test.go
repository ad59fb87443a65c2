package router

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/finsight-core/server/internal/assistant/model"
)

func TestRoute(t *testing.T) {
	cases := []struct {
		name string
		tag  model.ContextTag
		want string
	}{
		{"qa", model.ContextQA, model.BranchQA},
		{"portfolio", model.ContextPortfolio, model.BranchPortfolio},
		{"market trends", model.ContextMarketTrends, model.BranchMarketTrends},
		{"goals planning", model.ContextGoalsPlanning, model.BranchGoalPlanning},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Route(tc.tag))
		})
	}
}

func TestRoute_FallsOpenToQA(t *testing.T) {
	assert.Equal(t, model.BranchQA, Route(""))
	assert.Equal(t, model.BranchQA, Route("unknown_surface"))
	assert.Equal(t, model.BranchQA, Route("Portfolio")) // tags are case-sensitive
}
