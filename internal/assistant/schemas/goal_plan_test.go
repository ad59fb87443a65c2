package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validGoalPlan() *GoalPlanResult {
	return &GoalPlanResult{
		UserProfile:       UserProfile{CurrentAge: 40, RiskTolerance: "moderate"},
		OverallAssessment: OverallAssessment{Summary: "On track."},
		Goals: []GoalPlan{
			{GoalType: "retirement", Status: "on_track", Priority: "high"},
		},
	}
}

func TestGoalPlanResultValidate(t *testing.T) {
	assert.NoError(t, validGoalPlan().Validate())
}

func TestGoalPlanResultValidate_NormalizesRiskTolerance(t *testing.T) {
	g := validGoalPlan()
	g.UserProfile.RiskTolerance = " Moderate "
	assert.NoError(t, g.Validate())
}

func TestGoalPlanResultValidate_Failures(t *testing.T) {
	t.Run("age out of range", func(t *testing.T) {
		g := validGoalPlan()
		g.UserProfile.CurrentAge = 0
		assert.Error(t, g.Validate())
	})

	t.Run("no goals", func(t *testing.T) {
		g := validGoalPlan()
		g.Goals = nil
		assert.Error(t, g.Validate())
	})

	t.Run("bad status", func(t *testing.T) {
		g := validGoalPlan()
		g.Goals[0].Status = "doing great"
		assert.Error(t, g.Validate())
	})

	t.Run("probability out of range", func(t *testing.T) {
		g := validGoalPlan()
		p := 1.5
		g.Goals[0].ProbabilityOfSuccess = &p
		assert.Error(t, g.Validate())
	})

	t.Run("health score out of range", func(t *testing.T) {
		g := validGoalPlan()
		s := 140.0
		g.OverallAssessment.OverallHealthScore = &s
		assert.Error(t, g.Validate())
	})

	t.Run("empty action", func(t *testing.T) {
		g := validGoalPlan()
		g.Goals[0].ActionRecommendations = []ActionRecommendation{{Action: ""}}
		assert.Error(t, g.Validate())
	})
}
