package schemas

import (
	"fmt"
	"strings"
)

// GoalPlanResult is the fixed schema the goal-planning branch must return.

type UserProfile struct {
	CurrentAge         int     `json:"current_age"`
	Currency           string  `json:"currency"`
	RiskTolerance      string  `json:"risk_tolerance"` // low | moderate | high
	AnnualIncome       float64 `json:"annual_income,omitempty"`
	MonthlyExpenses    float64 `json:"monthly_expenses,omitempty"`
	CurrentInvestments float64 `json:"current_investments,omitempty"`
}

type OverallAssessment struct {
	Summary            string   `json:"summary"`
	OverallHealthScore *float64 `json:"overall_health_score,omitempty"` // 0-100
	KeyStrengths       []string `json:"key_strengths,omitempty"`
	KeyRisks           []string `json:"key_risks,omitempty"`
}

type ActionRecommendation struct {
	Action          string `json:"action"`
	Priority        string `json:"priority,omitempty"` // high | medium | low
	EstimatedImpact string `json:"estimated_impact,omitempty"`
}

// GoalSpecific carries per-goal-type extras (home purchase, debt payoff).
type GoalSpecific struct {
	HouseCostFuture           float64 `json:"house_cost_future,omitempty"`
	TargetDownPayment         float64 `json:"target_down_payment,omitempty"`
	OutstandingBalance        float64 `json:"outstanding_balance,omitempty"`
	RecommendedMonthlyPayment float64 `json:"recommended_monthly_payment,omitempty"`
}

type GoalPlan struct {
	GoalType               string                 `json:"goal_type"`
	Status                 string                 `json:"status"` // on_track | slightly_behind | behind | ahead | unknown
	Priority               string                 `json:"priority,omitempty"`
	TimeHorizonYears       int                    `json:"time_horizon_years,omitempty"`
	TargetAge              int                    `json:"target_age,omitempty"`
	TargetAmountFuture     float64                `json:"target_amount_future,omitempty"`
	ProbabilityOfSuccess   *float64               `json:"probability_of_success,omitempty"` // 0-1
	RequiredMonthlySavings float64                `json:"required_monthly_savings,omitempty"`
	CurrentMonthlySavings  float64                `json:"current_monthly_savings,omitempty"`
	GapToClose             *float64               `json:"gap_to_close,omitempty"`
	ActionRecommendations  []ActionRecommendation `json:"action_recommendations,omitempty"`
	GoalSpecific           *GoalSpecific          `json:"goal_specific,omitempty"`
}

type ScenarioChanges struct {
	ExpectedReturn           *float64 `json:"expected_return,omitempty"`
	InflationRate            *float64 `json:"inflation_rate,omitempty"`
	AdditionalMonthlySavings *float64 `json:"additional_monthly_savings,omitempty"`
	RetirementAgeShift       *int     `json:"retirement_age_shift,omitempty"`
}

type Scenario struct {
	Name                 string           `json:"name"`
	Changes              *ScenarioChanges `json:"changes,omitempty"`
	Outcome              string           `json:"outcome,omitempty"`
	SuggestedAdjustments []string         `json:"suggested_adjustments,omitempty"`
}

type Explanations struct {
	Assumptions []string          `json:"assumptions,omitempty"`
	KeyTerms    map[string]string `json:"key_terms,omitempty"`
	Limitations []string          `json:"limitations,omitempty"`
	Disclaimers []string          `json:"disclaimers,omitempty"`
}

type GoalPlanResult struct {
	UserProfile            UserProfile       `json:"user_profile"`
	OverallAssessment      OverallAssessment `json:"overall_assessment"`
	Goals                  []GoalPlan        `json:"goals"`
	ScenarioAnalysis       []Scenario        `json:"scenario_analysis,omitempty"`
	Explanations           *Explanations     `json:"explanations,omitempty"`
	NaturalLanguageSummary string            `json:"natural_language_summary,omitempty"`
}

func (g *GoalPlanResult) Validate() error {
	if g.UserProfile.CurrentAge <= 0 || g.UserProfile.CurrentAge > 120 {
		return fmt.Errorf("user_profile.current_age %d out of range", g.UserProfile.CurrentAge)
	}
	if !oneOf(normalize(g.UserProfile.RiskTolerance), "low", "moderate", "high") {
		return fmt.Errorf("user_profile.risk_tolerance %q not in {low, moderate, high}", g.UserProfile.RiskTolerance)
	}
	if g.OverallAssessment.Summary == "" {
		return fmt.Errorf("overall_assessment.summary is empty")
	}
	if s := g.OverallAssessment.OverallHealthScore; s != nil && (*s < 0 || *s > 100) {
		return fmt.Errorf("overall_health_score %.1f out of [0,100]", *s)
	}
	if len(g.Goals) == 0 {
		return fmt.Errorf("goals is empty")
	}
	return validateGoals(g.Goals)
}

func validateGoals(goals []GoalPlan) error {
	for i, goal := range goals {
		if goal.GoalType == "" {
			return fmt.Errorf("goals[%d].goal_type is empty", i)
		}
		if !oneOf(goal.Status, "on_track", "slightly_behind", "behind", "ahead", "unknown") {
			return fmt.Errorf("goals[%d].status %q invalid", i, goal.Status)
		}
		if goal.Priority != "" && !oneOf(goal.Priority, "high", "medium", "low") {
			return fmt.Errorf("goals[%d].priority %q invalid", i, goal.Priority)
		}
		if p := goal.ProbabilityOfSuccess; p != nil && (*p < 0 || *p > 1) {
			return fmt.Errorf("goals[%d].probability_of_success %.2f out of [0,1]", i, *p)
		}
		for j, action := range goal.ActionRecommendations {
			if action.Action == "" {
				return fmt.Errorf("goals[%d].action_recommendations[%d].action is empty", i, j)
			}
			if action.Priority != "" && !oneOf(action.Priority, "high", "medium", "low") {
				return fmt.Errorf("goals[%d].action_recommendations[%d].priority %q invalid", i, j, action.Priority)
			}
		}
	}
	return nil
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
