package model

// GoalPlanInput is the fixed set of fields the goal-planning form collects.
// All nine fields participate in the branch cache fingerprint.
type GoalPlanInput struct {
	GoalType        string  `json:"goal_type"`
	TargetAmount    float64 `json:"goal_target_amount"`
	HorizonYears    int     `json:"goal_target_horizon"`
	CurrentNetWorth float64 `json:"current_net_worth"`
	RiskTolerance   string  `json:"risk_tolerance"`
	CurrentAge      int     `json:"current_age"`
	AnnualIncome    float64 `json:"annual_income"`
	MonthlyExpenses float64 `json:"monthly_expenses"`
	MonthlySavings  float64 `json:"monthly_savings"`
}
