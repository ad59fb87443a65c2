package agents

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino-ext/components/model/gemini"
	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"google.golang.org/genai"

	"github.com/finsight-core/server/internal/assistant/model"
	logx "github.com/finsight-core/server/pkg/logger"
)

// ChatModel is the slice of the Eino chat model surface the agents use.
// gemini.ChatModel satisfies it; tests substitute a scripted fake.
type ChatModel interface {
	Generate(ctx context.Context, input []*schema.Message, opts ...einomodel.Option) (*schema.Message, error)
}

// ChatModelConfig holds everything needed to build the four branch models.
type ChatModelConfig struct {
	APIKey          string
	BaseURL         string
	QAConfig        *model.QAModelConfig
	PortfolioConfig *model.PortfolioModelConfig
	MarketConfig    *model.MarketModelConfig
	GoalConfig      *model.GoalModelConfig
}

// ChatModels holds one chat model per branch, sharing a single Gemini client.
type ChatModels struct {
	QA        *gemini.ChatModel
	Portfolio *gemini.ChatModel
	Market    *gemini.ChatModel
	Goal      *gemini.ChatModel

	QAModelName        string
	PortfolioModelName string
	MarketModelName    string
	GoalModelName      string
}

// NewChatModels creates the four branch chat models on one shared client.
func NewChatModels(ctx context.Context, config ChatModelConfig) (*ChatModels, error) {
	clientCfg := &genai.ClientConfig{
		APIKey:  config.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if config.BaseURL != "" {
		clientCfg.HTTPOptions.BaseURL = config.BaseURL
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		logx.Error().Err(err).Msg("Error creating Gemini client")
		return nil, fmt.Errorf("error creating Gemini client: %w", err)
	}

	qa, err := newBranchModel(ctx, client, config.QAConfig.Model, config.QAConfig.Temperature, config.QAConfig.MaxTokens)
	if err != nil {
		return nil, fmt.Errorf("error creating QA model: %w", err)
	}
	portfolio, err := newBranchModel(ctx, client, config.PortfolioConfig.Model, config.PortfolioConfig.Temperature, config.PortfolioConfig.MaxTokens)
	if err != nil {
		return nil, fmt.Errorf("error creating portfolio model: %w", err)
	}
	market, err := newBranchModel(ctx, client, config.MarketConfig.Model, config.MarketConfig.Temperature, config.MarketConfig.MaxTokens)
	if err != nil {
		return nil, fmt.Errorf("error creating market model: %w", err)
	}
	goal, err := newBranchModel(ctx, client, config.GoalConfig.Model, config.GoalConfig.Temperature, config.GoalConfig.MaxTokens)
	if err != nil {
		return nil, fmt.Errorf("error creating goal model: %w", err)
	}

	return &ChatModels{
		QA:        qa,
		Portfolio: portfolio,
		Market:    market,
		Goal:      goal,

		QAModelName:        config.QAConfig.Model,
		PortfolioModelName: config.PortfolioConfig.Model,
		MarketModelName:    config.MarketConfig.Model,
		GoalModelName:      config.GoalConfig.Model,
	}, nil
}

func newBranchModel(ctx context.Context, client *genai.Client, name string, temperature float32, maxTokens int) (*gemini.ChatModel, error) {
	return gemini.NewChatModel(ctx, &gemini.Config{
		Client:      client,
		Model:       name,
		Temperature: &temperature,
		MaxTokens:   &maxTokens,
	})
}

// BindTools attaches the branch tool set to one chat model.
func BindTools(cm *gemini.ChatModel, tools []*schema.ToolInfo) error {
	if err := cm.BindTools(tools); err != nil {
		logx.Error().Err(err).Msg("Failed to bind tools")
		return fmt.Errorf("failed to bind tools: %w", err)
	}
	logx.Debug().Int("tool_count", len(tools)).Msg("Successfully bound tools to chat model")
	return nil
}
