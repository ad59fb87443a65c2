package graph

import (
	"context"
	"fmt"
	"time"

	"github.com/cloudwego/eino/compose"

	"github.com/finsight-core/server/internal/assistant/agents"
	"github.com/finsight-core/server/internal/assistant/cache"
	"github.com/finsight-core/server/internal/assistant/conversations"
	"github.com/finsight-core/server/internal/assistant/finance"
	"github.com/finsight-core/server/internal/assistant/graph/observers"
	"github.com/finsight-core/server/internal/assistant/graph/tools"
	"github.com/finsight-core/server/internal/assistant/model"
	"github.com/finsight-core/server/internal/assistant/retrieval"
	"github.com/finsight-core/server/internal/assistant/router"
	"github.com/finsight-core/server/internal/assistant/schemas"
	logx "github.com/finsight-core/server/pkg/logger"
)

// NodeRouter is the single dispatch node ahead of the four branch agents.
// Branch node keys are the model.Branch* constants.
const NodeRouter = "router"

// Runner executes the compiled assistant graph for one request.
type Runner interface {
	Invoke(ctx context.Context, req *model.AssistantRequest) (*model.AssistantResponse, error)
}

// Config holds everything needed to compose the assistant graph end-to-end.
type Config struct {
	APIKey  string
	BaseURL string

	QAModel        model.QAModelConfig
	PortfolioModel model.PortfolioModelConfig
	MarketModel    model.MarketModelConfig
	GoalModel      model.GoalModelConfig

	Conversation model.ConversationConfig
	Cache        model.CacheConfig
	Retrieval    model.RetrievalConfig

	ThreadRepo model.ThreadRepository
	MarketData finance.MarketData
	Retriever  retrieval.Retriever
}

// GraphConfig carries the constructed collaborators the builder wires into
// nodes. BuildAssistantGraph fills it from Config; tests can fill it with
// fakes directly.
type GraphConfig struct {
	QA        *agents.QAAgent
	Portfolio *agents.PortfolioAgent
	Market    *agents.MarketAgent
	Goal      *agents.GoalAgent

	// ModelNames maps branch node keys to the model serving them, for
	// usage-cost accounting. Unmapped branches price at zero.
	ModelNames map[string]string
}

// GraphBuilder assembles the routing graph: one router node fanning out to
// four branch agents, each terminating at END.
type GraphBuilder struct {
	config *GraphConfig
	graph  *compose.Graph[*model.AssistantRequest, *model.AssistantResponse]
}

type graphRunner struct {
	runnable compose.Runnable[*model.AssistantRequest, *model.AssistantResponse]
}

func (r *graphRunner) Invoke(ctx context.Context, req *model.AssistantRequest) (*model.AssistantResponse, error) {
	return r.runnable.Invoke(ctx, req, compose.WithCallbacks(observers.NewAllCallbacks()))
}

// BuildAssistantGraph constructs chat models, tool registries, caches and
// agents from the configuration, then compiles the routing graph.
func BuildAssistantGraph(ctx context.Context, cfg Config) (Runner, error) {
	if cfg.ThreadRepo == nil {
		return nil, fmt.Errorf("thread repo is nil")
	}
	if cfg.MarketData == nil {
		return nil, fmt.Errorf("market data provider is nil")
	}
	if cfg.Retriever == nil {
		return nil, fmt.Errorf("retriever is nil")
	}

	cms, err := agents.NewChatModels(ctx, agents.ChatModelConfig{
		APIKey:          cfg.APIKey,
		BaseURL:         cfg.BaseURL,
		QAConfig:        &cfg.QAModel,
		PortfolioConfig: &cfg.PortfolioModel,
		MarketConfig:    &cfg.MarketModel,
		GoalConfig:      &cfg.GoalModel,
	})
	if err != nil {
		return nil, err
	}

	qaReg, err := tools.NewQARegistry(ctx, cfg.MarketData, cfg.Retriever, cfg.Retrieval.TopK)
	if err != nil {
		return nil, fmt.Errorf("qa tool registry: %w", err)
	}
	marketReg, err := tools.NewMarketRegistry(ctx, cfg.MarketData)
	if err != nil {
		return nil, fmt.Errorf("market tool registry: %w", err)
	}
	portfolioReg, err := tools.NewPortfolioRegistry(ctx, cfg.MarketData)
	if err != nil {
		return nil, fmt.Errorf("portfolio tool registry: %w", err)
	}

	if err := agents.BindTools(cms.QA, qaReg.Infos()); err != nil {
		return nil, err
	}
	if err := agents.BindTools(cms.Market, marketReg.Infos()); err != nil {
		return nil, err
	}
	if err := agents.BindTools(cms.Portfolio, portfolioReg.Infos()); err != nil {
		return nil, err
	}

	cacheCfg, err := cacheConfig(cfg.Cache)
	if err != nil {
		return nil, err
	}

	mgr := conversations.NewManager(cfg.ThreadRepo, cfg.Conversation)

	gc := &GraphConfig{
		QA:        agents.NewQAAgent(cms.QA, qaReg, mgr),
		Portfolio: agents.NewPortfolioAgent(cms.Portfolio, portfolioReg, cfg.MarketData, cache.NewMemo[agents.PortfolioResult](cacheCfg)),
		Market:    agents.NewMarketAgent(cms.Market, marketReg, cache.NewMemo[agents.MarketResult](cacheCfg)),
		Goal:      agents.NewGoalAgent(cms.Goal, cache.NewMemo[*schemas.GoalPlanResult](cacheCfg)),
		ModelNames: map[string]string{
			model.BranchQA:           cms.QAModelName,
			model.BranchPortfolio:    cms.PortfolioModelName,
			model.BranchMarketTrends: cms.MarketModelName,
			model.BranchGoalPlanning: cms.GoalModelName,
		},
	}

	runnable, err := BuildGraph(ctx, gc)
	if err != nil {
		return nil, err
	}

	logx.Debug().Msg("Assistant graph built successfully")
	return &graphRunner{runnable: runnable}, nil
}

// BuildGraph constructs and compiles the routing graph from ready agents.
func BuildGraph(ctx context.Context, config *GraphConfig) (compose.Runnable[*model.AssistantRequest, *model.AssistantResponse], error) {
	if config == nil {
		return nil, fmt.Errorf("graph config is nil")
	}
	if config.QA == nil || config.Portfolio == nil || config.Market == nil || config.Goal == nil {
		return nil, fmt.Errorf("branch agents are not properly initialized")
	}

	builder := &GraphBuilder{
		config: config,
		graph: compose.NewGraph[*model.AssistantRequest, *model.AssistantResponse](
			compose.WithGenLocalState(func(ctx context.Context) *model.AssistantState {
				return &model.AssistantState{}
			}),
		),
	}

	builder.addNodes()
	builder.addEdges()

	if err := builder.addBranches(); err != nil {
		return nil, err
	}

	return builder.compile(ctx)
}

// addNodes registers the router and the four branch agents. The router is a
// pass-through lambda; its post-handler records the routing decision in
// state so the dispatch branch can read it. Each branch post-handler folds
// the branch's message transcript into the run history.
func (b *GraphBuilder) addNodes() {
	b.graph.AddLambdaNode(NodeRouter,
		compose.InvokableLambda(func(ctx context.Context, req *model.AssistantRequest) (*model.AssistantRequest, error) {
			return req, nil
		}),
		compose.WithStatePostHandler(func(ctx context.Context, req *model.AssistantRequest, state *model.AssistantState) (*model.AssistantRequest, error) {
			state.ThreadID = req.ThreadID
			state.Context = req.Context
			state.NextBranch = router.Route(req.Context)
			logx.Debug().
				Str("thread_id", req.ThreadID).
				Str("context", string(req.Context)).
				Str("branch", state.NextBranch).
				Msg("Routing request")
			return req, nil
		}),
	)

	b.graph.AddLambdaNode(model.BranchQA,
		compose.InvokableLambda(b.config.QA.Run),
		compose.WithStatePostHandler(b.newBranchPostHandler(model.BranchQA)),
	)
	b.graph.AddLambdaNode(model.BranchPortfolio,
		compose.InvokableLambda(b.config.Portfolio.Run),
		compose.WithStatePostHandler(b.newBranchPostHandler(model.BranchPortfolio)),
	)
	b.graph.AddLambdaNode(model.BranchMarketTrends,
		compose.InvokableLambda(b.config.Market.Run),
		compose.WithStatePostHandler(b.newBranchPostHandler(model.BranchMarketTrends)),
	)
	b.graph.AddLambdaNode(model.BranchGoalPlanning,
		compose.InvokableLambda(b.config.Goal.Run),
		compose.WithStatePostHandler(b.newBranchPostHandler(model.BranchGoalPlanning)),
	)
}

// newBranchPostHandler folds the branch transcript into the run history and
// accounts the model usage cost of the transcript against the branch's model.
func (b *GraphBuilder) newBranchPostHandler(branch string) func(context.Context, *model.AssistantResponse, *model.AssistantState) (*model.AssistantResponse, error) {
	modelName := b.config.ModelNames[branch]
	pricing := model.ResolvePricing(modelName)

	return func(ctx context.Context, out *model.AssistantResponse, state *model.AssistantState) (*model.AssistantResponse, error) {
		if out == nil {
			return out, nil
		}
		state.History = append(state.History, out.Messages...)

		if cost := model.TranscriptCost(out.Messages, pricing); cost > 0 {
			state.TotalCostUSD += cost
			out.CostUSD = cost
			logx.Debug().
				Str("thread_id", state.ThreadID).
				Str("node", branch).
				Str("model", modelName).
				Float64("cost_usd", cost).
				Float64("run_total_cost_usd", state.TotalCostUSD).
				Msg("LLM usage")
		}
		return out, nil
	}
}

func (b *GraphBuilder) addEdges() {
	edges := [][2]string{
		{compose.START, NodeRouter},
		{model.BranchQA, compose.END},
		{model.BranchPortfolio, compose.END},
		{model.BranchMarketTrends, compose.END},
		{model.BranchGoalPlanning, compose.END},
	}

	for _, edge := range edges {
		b.graph.AddEdge(edge[0], edge[1])
	}
}

// addBranches wires the dispatch branch after the router. The condition
// reads the routing decision from state; it never fails, because the router
// falls back to the QA branch for any unrecognized context.
func (b *GraphBuilder) addBranches() error {
	dispatch := compose.NewGraphBranch(
		func(ctx context.Context, req *model.AssistantRequest) (string, error) {
			next := model.BranchQA
			err := compose.ProcessState(ctx, func(_ context.Context, state *model.AssistantState) error {
				if state.NextBranch != "" {
					next = state.NextBranch
				}
				return nil
			})
			if err != nil {
				return "", fmt.Errorf("failed to access state: %w", err)
			}
			return next, nil
		},
		map[string]bool{
			model.BranchQA:           true,
			model.BranchPortfolio:    true,
			model.BranchMarketTrends: true,
			model.BranchGoalPlanning: true,
		},
	)
	if err := b.graph.AddBranch(NodeRouter, dispatch); err != nil {
		logx.Error().Err(err).Msg("Error adding dispatch branch")
		return fmt.Errorf("error adding dispatch branch: %w", err)
	}
	return nil
}

func (b *GraphBuilder) compile(ctx context.Context) (compose.Runnable[*model.AssistantRequest, *model.AssistantResponse], error) {
	runnable, err := b.graph.Compile(ctx, compose.WithMaxRunSteps(10))
	if err != nil {
		logx.Error().Err(err).Msg("Error compiling graph")
		return nil, fmt.Errorf("error compiling graph: %w", err)
	}

	logx.Debug().Msg("Graph compiled successfully")
	return runnable, nil
}

func cacheConfig(cfg model.CacheConfig) (cache.Config, error) {
	ttl, err := time.ParseDuration(cfg.TTL)
	if err != nil {
		return cache.Config{}, fmt.Errorf("invalid cache ttl %q: %w", cfg.TTL, err)
	}
	return cache.Config{MaxEntries: cfg.MaxEntries, TTL: ttl}, nil
}
