package schemas

import "fmt"

// PortfolioInsights is the fixed schema the portfolio branch must return.
// The model is prompted to emit JSON matching this shape; Validate rejects
// anything outside the enumerated/bounded fields.

type AllocationItem struct {
	Category      string  `json:"category"`
	WeightPercent float64 `json:"weight_percent"`
	Comment       string  `json:"comment,omitempty"`
}

type ConcentrationFlag struct {
	Label         string  `json:"label"`
	WeightPercent float64 `json:"weight_percent"`
	ConcernLevel  string  `json:"concern_level"` // low | moderate | high
	Explanation   string  `json:"explanation"`
}

type GapOrIssue struct {
	Topic           string `json:"topic"`
	Explanation     string `json:"explanation"`
	PotentialImpact string `json:"potential_impact,omitempty"`
}

type FeeComment struct {
	OverallFeeLevel string   `json:"overall_fee_level,omitempty"` // unknown | low | average | high
	Observations    []string `json:"observations,omitempty"`
}

type SuitabilityComment struct {
	AssumedHorizonYears  int    `json:"assumed_horizon_years,omitempty"`
	AssumedRiskTolerance string `json:"assumed_risk_tolerance,omitempty"`
	QualitativeFit       string `json:"qualitative_fit"` // poor | mixed | reasonable | good | unclear
	Explanation          string `json:"explanation"`
}

type PortfolioInsights struct {
	Summary string `json:"summary"`

	AllocationOverviewAssetClass []AllocationItem `json:"allocation_overview_asset_class"`
	AllocationOverviewRegion     []AllocationItem `json:"allocation_overview_region"`
	AllocationOverviewSector     []AllocationItem `json:"allocation_overview_sector"`

	RiskLevel          string              `json:"risk_level"` // low | moderate | high | unclear
	ConcentrationFlags []ConcentrationFlag `json:"concentration_flags"`

	DiversificationAndGaps []GapOrIssue `json:"diversification_and_gaps"`

	FeesAndEfficiency        FeeComment         `json:"fees_and_efficiency"`
	SuitabilityVsTimeHorizon SuitabilityComment `json:"suitability_vs_time_horizon"`

	QuestionsAndNextSteps []string `json:"questions_and_next_steps"`
	Disclaimer            string   `json:"disclaimer"`
}

func (p *PortfolioInsights) Validate() error {
	if p.Summary == "" {
		return fmt.Errorf("summary is empty")
	}
	if !oneOf(p.RiskLevel, "low", "moderate", "high", "unclear") {
		return fmt.Errorf("risk_level %q not in {low, moderate, high, unclear}", p.RiskLevel)
	}
	for _, group := range [][]AllocationItem{
		p.AllocationOverviewAssetClass,
		p.AllocationOverviewRegion,
		p.AllocationOverviewSector,
	} {
		for _, item := range group {
			if item.Category == "" {
				return fmt.Errorf("allocation item missing category")
			}
			if item.WeightPercent < 0 || item.WeightPercent > 100 {
				return fmt.Errorf("allocation weight %.2f for %q out of [0,100]", item.WeightPercent, item.Category)
			}
		}
	}
	for _, flag := range p.ConcentrationFlags {
		if !oneOf(flag.ConcernLevel, "low", "moderate", "high") {
			return fmt.Errorf("concern_level %q not in {low, moderate, high}", flag.ConcernLevel)
		}
		if flag.WeightPercent < 0 || flag.WeightPercent > 100 {
			return fmt.Errorf("concentration weight %.2f for %q out of [0,100]", flag.WeightPercent, flag.Label)
		}
	}
	if p.FeesAndEfficiency.OverallFeeLevel != "" &&
		!oneOf(p.FeesAndEfficiency.OverallFeeLevel, "unknown", "low", "average", "high") {
		return fmt.Errorf("overall_fee_level %q not in {unknown, low, average, high}", p.FeesAndEfficiency.OverallFeeLevel)
	}
	if !oneOf(p.SuitabilityVsTimeHorizon.QualitativeFit, "poor", "mixed", "reasonable", "good", "unclear") {
		return fmt.Errorf("qualitative_fit %q not in {poor, mixed, reasonable, good, unclear}", p.SuitabilityVsTimeHorizon.QualitativeFit)
	}
	if p.Disclaimer == "" {
		return fmt.Errorf("disclaimer is empty")
	}
	return nil
}

func oneOf(v string, allowed ...string) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}
