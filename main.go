package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/finsight-core/server/internal/assistant/finance"
	"github.com/finsight-core/server/internal/assistant/graph"
	"github.com/finsight-core/server/internal/assistant/model"
	"github.com/finsight-core/server/internal/assistant/repo"
	"github.com/finsight-core/server/internal/assistant/retrieval"
	"github.com/finsight-core/server/internal/core"
	logx "github.com/finsight-core/server/pkg/logger"
	pkgredis "github.com/finsight-core/server/pkg/redis"
)

// AppConfig defines all configurable parameters for the assistant, sourced
// from environment variables (loaded from .env for local runs).
type AppConfig struct {
	Environment string `envconfig:"ENVIRONMENT" default:"development"`

	// Infrastructure
	Redis pkgredis.Config

	// LLM provider
	APIKey  string `envconfig:"GEMINI_API_KEY" required:"true"`
	BaseURL string `envconfig:"GEMINI_BASE_URL"`

	// Branch model configs
	QA        model.QAModelConfig
	Portfolio model.PortfolioModelConfig
	Market    model.MarketModelConfig
	Goal      model.GoalModelConfig

	Conversation model.ConversationConfig
	Cache        model.CacheConfig
	Retrieval    model.RetrievalConfig
	MarketData   model.MarketDataConfig
}

func main() {
	ctx := context.Background()

	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	var envCfg AppConfig
	if err := envconfig.Process("", &envCfg); err != nil {
		log.Fatalf("Failed to process environment config: %v", err)
	}

	logx.Init(core.ParseEnvironment(envCfg.Environment))

	rdb, err := envCfg.Redis.New()
	if err != nil {
		log.Fatalf("Failed to initialise Redis client: %v", err)
	}
	defer rdb.Close()

	logx.Info().Msg("Connected to Redis successfully")

	ttl, err := time.ParseDuration(envCfg.Conversation.TTL)
	if err != nil {
		log.Fatalf("Invalid CONVERSATION_TTL '%s': %v", envCfg.Conversation.TTL, err)
	}

	cfg := graph.Config{
		APIKey:  envCfg.APIKey,
		BaseURL: envCfg.BaseURL,

		QAModel:        envCfg.QA,
		PortfolioModel: envCfg.Portfolio,
		MarketModel:    envCfg.Market,
		GoalModel:      envCfg.Goal,

		Conversation: envCfg.Conversation,
		Cache:        envCfg.Cache,
		Retrieval:    envCfg.Retrieval,

		ThreadRepo: repo.NewRedisThreadRepository(rdb, ttl),
		MarketData: finance.NewYahooClient(envCfg.MarketData),
		Retriever:  retrieval.NewHTTPRetriever(envCfg.Retrieval),
	}

	runner, err := graph.BuildAssistantGraph(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to build graph: %v", err)
	}

	threadID := "demo-thread-1"

	requests := []struct {
		description string
		req         *model.AssistantRequest
	}{
		{
			description: "QA: general finance question",
			req: &model.AssistantRequest{
				ThreadID: threadID,
				Context:  model.ContextQA,
				Query:    "What is dollar cost averaging and when does it make sense?",
			},
		},
		{
			description: "Market trends: single ticker report",
			req: &model.AssistantRequest{
				ThreadID: threadID,
				Context:  model.ContextMarketTrends,
				Ticker:   "AAPL",
			},
		},
		{
			description: "Portfolio: insights over submitted holdings",
			req: &model.AssistantRequest{
				ThreadID: threadID,
				Context:  model.ContextPortfolio,
				UserGoal: "Retire in 20 years with moderate risk",
				Portfolio: &model.Portfolio{
					BaseCurrency: "USD",
					Holdings: []model.Holding{
						{Ticker: "VOO", CurrentValue: 25000},
						{Ticker: "AAPL", CurrentValue: 15000},
						{Ticker: "BND", CurrentValue: 10000},
					},
				},
			},
		},
		{
			description: "Goal planning: structured retirement plan",
			req: &model.AssistantRequest{
				ThreadID: threadID,
				Context:  model.ContextGoalsPlanning,
				GoalPlan: &model.GoalPlanInput{
					GoalType:        "retirement",
					TargetAmount:    1000000,
					HorizonYears:    20,
					CurrentNetWorth: 150000,
					RiskTolerance:   "moderate",
					CurrentAge:      40,
					AnnualIncome:    120000,
					MonthlyExpenses: 5000,
					MonthlySavings:  2500,
				},
			},
		},
	}

	for i, test := range requests {
		fmt.Printf("\nRequest %d: %s\n", i+1, test.description)

		resp, err := runner.Invoke(ctx, test.req)
		if err != nil {
			log.Fatalf("Failed to invoke graph for request %d: %v", i+1, err)
		}

		fmt.Printf("Branch: %s\n", resp.Branch)
		switch {
		case resp.Answer != "":
			fmt.Printf("Answer: %s\n", resp.Answer)
		case resp.Insights != nil:
			fmt.Printf("Portfolio summary: %s\n", resp.Insights.Summary)
		case resp.MarketReport != "":
			fmt.Printf("Market report:\n%s\n", resp.MarketReport)
		case resp.Plan != nil:
			fmt.Printf("Plan summary: %s\n", resp.Plan.NaturalLanguageSummary)
		}
		fmt.Println("────────────────────────────────────────────")
	}

	fmt.Println("All assistant requests completed successfully")
}
