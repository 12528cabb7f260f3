// Package analyzer dispatches a single code review prompt to the model.
package analyzer

import (
	"context"
	"errors"
	"time"

	"github.com/povarna/generative-ai-agents/code-analyzer/internal/llm"
	"github.com/rs/zerolog"
)

var errEmptyCompletion = errors.New("empty completion content")

type Analyzer struct {
	llmClient llm.LLMClient
	logger    *zerolog.Logger
}

func NewAnalyzer(llmClient llm.LLMClient, logger *zerolog.Logger) *Analyzer {
	return &Analyzer{
		llmClient: llmClient,
		logger:    logger,
	}
}

// Analyze issues exactly one completion request. It never returns an error:
// failures come back as a Result carrying RequestFailed.
func (a *Analyzer) Analyze(ctx context.Context, prompt string) Result {
	now := time.Now()

	resp, err := a.llmClient.InvokeModel(ctx, llm.LLMRequest{
		Prompt:      prompt,
		MaxTokens:   llm.MaxTokens,
		Temperature: llm.Temperature,
	})
	if err != nil {
		a.logger.Error().
			Err(err).
			Dur("duration", time.Since(now)).
			Msg("LLM call failed")
		return failure(err)
	}

	if resp == nil || resp.Content == "" {
		a.logger.Error().
			Dur("duration", time.Since(now)).
			Msg("LLM returned no content")
		return failure(errEmptyCompletion)
	}

	a.logger.Debug().
		Str("stopReason", resp.StopReason).
		Int("chars", len(resp.Content)).
		Dur("duration", time.Since(now)).
		Msg("analysis completed")

	return success(resp.Content)
}
