package prompts

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/schema"

	"github.com/finsight-core/server/internal/assistant/model"
)

// Render passes prebuilt messages through the Eino prompt component so that
// prompt callbacks fire. The messages are already fully formatted; JSON
// payloads never go through template substitution.
func Render(ctx context.Context, msgs ...*schema.Message) ([]*schema.Message, error) {
	tpl := prompt.FromMessages(
		schema.FString,
		schema.MessagesPlaceholder("messages", false),
	)
	out, err := tpl.Format(ctx, map[string]any{"messages": msgs})
	if err != nil {
		return nil, fmt.Errorf("prompt render: %w", err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("prompt render: empty result")
	}
	return out, nil
}

// PortfolioUserMessage builds the portfolio branch's user turn around the
// already-enriched portfolio document.
func PortfolioUserMessage(enrichedJSON, userGoal string) *schema.Message {
	if userGoal == "" {
		userGoal = "(none)"
	}
	return schema.UserMessage(fmt.Sprintf(
		"Here is the user's portfolio, already enriched with security metadata and recomputed weights, as JSON:\n\n%s\n\nUser question or goal (if any):\n%s\n\nAnalyze this portfolio and return ONLY valid JSON that matches the PortfolioInsights schema. Answer the user question or goal in the summary field.",
		enrichedJSON, userGoal,
	))
}

// MarketUserMessage builds the market-trends branch's user turn.
func MarketUserMessage(ticker string) *schema.Message {
	return schema.UserMessage(fmt.Sprintf(
		"Here is the ticker the user is interested in:\n\n%s\n\nUse the %s tool to fetch the latest data for this ticker, then analyze it and produce structured market insights as per the specified sections.",
		ticker, "yf_snapshot",
	))
}

// GoalPlanUserMessage lays out all nine goal-planning inputs in fixed order.
func GoalPlanUserMessage(in *model.GoalPlanInput) *schema.Message {
	return schema.UserMessage(fmt.Sprintf(
		"Here is the user's goal planning context.\n\n"+
			"Goal Type: %s\n"+
			"Target Amount (in $): %.2f\n"+
			"Target Horizon (years): %d\n"+
			"Current Net Worth (in $): %.2f\n"+
			"Risk Tolerance: %s\n"+
			"Current Age: %d\n"+
			"Annual Income (in $): %.2f\n"+
			"Monthly Expenses (in $): %.2f\n"+
			"Monthly Savings (in $): %.2f\n\n"+
			"Based on this information, return ONLY valid JSON matching the GoalPlanResult schema with personalized financial advice to help the user achieve their goal.",
		in.GoalType, in.TargetAmount, in.HorizonYears, in.CurrentNetWorth,
		in.RiskTolerance, in.CurrentAge, in.AnnualIncome, in.MonthlyExpenses,
		in.MonthlySavings,
	))
}
