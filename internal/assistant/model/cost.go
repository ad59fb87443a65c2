package model

import (
	"github.com/cloudwego/eino/schema"
)

// Pricing defines USD cost per 1M tokens for input/output.
type Pricing struct {
	InputPerM  float64
	OutputPerM float64
}

// branchPricing provides hardcoded USD pricing per 1M tokens (text tokens).
var branchPricing = map[string]Pricing{
	// Source: Gemini pricing (Standard; text). Adjust for audio/image if needed.
	"gemini-2.0-flash":      {InputPerM: 0.10, OutputPerM: 0.40},
	"gemini-2.5-flash":      {InputPerM: 0.30, OutputPerM: 2.50},
	"gemini-2.5-flash-lite": {InputPerM: 0.10, OutputPerM: 0.40},
}

// ResolvePricing returns hardcoded pricing for a model. Unknown models price
// at zero so cost accounting degrades to a no-op instead of guessing.
func ResolvePricing(model string) Pricing {
	if p, ok := branchPricing[model]; ok {
		return p
	}
	return Pricing{}
}

// ComputeCost converts token usage to USD cost using per-1M Pricing.
func ComputeCost(usage *schema.TokenUsage, p Pricing) (inputCost, outputCost, total float64) {
	if usage == nil {
		return 0, 0, 0
	}
	inputCost = p.InputPerM * float64(usage.PromptTokens) / 1_000_000.0
	outputCost = p.OutputPerM * float64(usage.CompletionTokens) / 1_000_000.0
	total = inputCost + outputCost
	return
}

// TranscriptCost sums the USD cost of every model turn in a branch
// transcript. Only assistant messages carry provider usage metadata; tool and
// user turns contribute nothing.
func TranscriptCost(msgs []*schema.Message, p Pricing) (total float64) {
	for _, m := range msgs {
		if m == nil || m.ResponseMeta == nil || m.ResponseMeta.Usage == nil {
			continue
		}
		_, _, t := ComputeCost(m.ResponseMeta.Usage, p)
		total += t
	}
	return total
}
