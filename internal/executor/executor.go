package executor

import (
	"context"
	"fmt"
	"io"

	"github.com/povarna/generative-ai-agents/code-analyzer/internal/aggregator"
	"github.com/povarna/generative-ai-agents/code-analyzer/internal/analyzer"
	"github.com/povarna/generative-ai-agents/code-analyzer/internal/console"
	"github.com/povarna/generative-ai-agents/code-analyzer/internal/models"
	"github.com/povarna/generative-ai-agents/code-analyzer/internal/prechecks"
	"github.com/povarna/generative-ai-agents/code-analyzer/internal/prompt"
	"github.com/rs/zerolog"
)

// Executor drives one run: read input, check locally, dispatch, print.
type Executor struct {
	analyzer   *analyzer.Analyzer
	prechecks  *prechecks.Runner
	aggregator *aggregator.Aggregator
	language   models.Language
	logger     *zerolog.Logger
}

// NewExecutor wires the stages. prechecks and agg may be nil to skip local checks.
func NewExecutor(a *analyzer.Analyzer, pre *prechecks.Runner, agg *aggregator.Aggregator, language models.Language, logger *zerolog.Logger) *Executor {
	return &Executor{
		analyzer:   a,
		prechecks:  pre,
		aggregator: agg,
		language:   language,
		logger:     logger,
	}
}

// Execute runs exactly once. The only errors returned are terminal I/O failures.
func (e *Executor) Execute(ctx context.Context, in io.Reader, out io.Writer) error {
	code, err := console.ReadInput(in, out)
	if err != nil {
		return err
	}

	e.runPrechecks(code)

	e.logger.Debug().Int("chars", len(code)).Msg("dispatching analysis")
	result := e.analyzer.Analyze(ctx, prompt.Build(code))

	if err := console.WriteResult(out, result.String()); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}

func (e *Executor) runPrechecks(code string) {
	if e.prechecks == nil || e.aggregator == nil {
		return
	}

	source := models.Source{Code: code, Language: e.language}
	findings := e.prechecks.Run(source)
	for _, f := range findings {
		e.logger.Warn().
			Int("line", f.Line).
			Str("rule", f.Rule).
			Str("severity", string(f.Severity)).
			Msg(f.Message)
	}

	explanations := e.prechecks.Explain(source)
	for _, ex := range explanations {
		e.logger.Info().
			Int("line", ex.Line).
			Str("code", ex.Code).
			Strs("concepts", ex.Concepts).
			Msg(ex.Text)
	}

	report := e.aggregator.Aggregate(findings, explanations)
	for _, adv := range report.Advice {
		e.logger.Info().Str("quality", string(report.Quality)).Msg(adv)
	}
}
