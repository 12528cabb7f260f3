package setup

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/povarna/generative-ai-agents/code-analyzer/internal/aggregator"
	"github.com/povarna/generative-ai-agents/code-analyzer/internal/analyzer"
	"github.com/povarna/generative-ai-agents/code-analyzer/internal/llm"
	"github.com/povarna/generative-ai-agents/code-analyzer/internal/llm/bedrock"
	"github.com/povarna/generative-ai-agents/code-analyzer/internal/llm/together"
	"github.com/povarna/generative-ai-agents/code-analyzer/internal/models"
	"github.com/povarna/generative-ai-agents/code-analyzer/internal/prechecks"
	"github.com/rs/zerolog"
)

const (
	ProviderTogether = "together"
	ProviderBedrock  = "bedrock"
)

var ErrMissingAPIKey = errors.New("TOGETHER_API_KEY is required")

type Config struct {
	Provider         string
	TogetherAPIKey   string
	TogetherBaseURL  string
	AWSRegion        string
	Language         models.Language
	PrechecksEnabled bool
	LogLevel         string
}

type Dependencies struct {
	Analyzer   *analyzer.Analyzer
	Prechecks  *prechecks.Runner
	Aggregator *aggregator.Aggregator
	Logger     *zerolog.Logger
}

func LoadConfig() *Config {
	return &Config{
		Provider:         strings.ToLower(getEnv("LLM_PROVIDER", ProviderTogether)),
		TogetherAPIKey:   getEnv("TOGETHER_API_KEY", ""),
		TogetherBaseURL:  getEnv("TOGETHER_BASE_URL", together.DefaultBaseURL),
		AWSRegion:        getEnv("AWS_REGION", "us-east-1"),
		Language:         models.Language(strings.ToLower(getEnv("CODE_LANGUAGE", ""))),
		PrechecksEnabled: getEnvBool("PRECHECKS_ENABLED", true),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
	}
}

// Validate fails fast on settings that would make every request fail.
func (c *Config) Validate() error {
	switch c.Provider {
	case ProviderTogether:
		if c.TogetherAPIKey == "" {
			return ErrMissingAPIKey
		}
	case ProviderBedrock:
		if c.AWSRegion == "" {
			return fmt.Errorf("AWS_REGION is required for provider %s", ProviderBedrock)
		}
	default:
		return fmt.Errorf("unknown LLM_PROVIDER %q", c.Provider)
	}

	if c.Language != "" && !slices.Contains(models.SupportedLanguages, c.Language) {
		return fmt.Errorf("unsupported CODE_LANGUAGE %q", c.Language)
	}

	return nil
}

func Wire(ctx context.Context, cfg *Config, logger *zerolog.Logger) (*Dependencies, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	llmClient, err := createLLMClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s client: %w", cfg.Provider, err)
	}

	deps := &Dependencies{
		Analyzer: analyzer.NewAnalyzer(llmClient, logger),
		Logger:   logger,
	}

	if cfg.PrechecksEnabled {
		deps.Prechecks = prechecks.NewRunner(prechecks.ForLanguage(cfg.Language))
		deps.Aggregator = aggregator.NewAggregator(logger)
	}

	return deps, nil
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		value = defaultValue
	}

	return value
}

func createLLMClient(ctx context.Context, cfg *Config) (llm.LLMClient, error) {
	switch cfg.Provider {
	case ProviderBedrock:
		return bedrock.NewClient(ctx, cfg.AWSRegion)
	default:
		return together.NewClient(cfg.TogetherAPIKey, cfg.TogetherBaseURL)
	}
}
