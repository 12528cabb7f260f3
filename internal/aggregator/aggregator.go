package aggregator

import (
	"github.com/povarna/generative-ai-agents/code-analyzer/internal/models"
	"github.com/povarna/generative-ai-agents/code-analyzer/internal/prechecks"
	"github.com/rs/zerolog"
)

type Aggregator struct {
	logger *zerolog.Logger
}

func NewAggregator(logger *zerolog.Logger) *Aggregator {
	return &Aggregator{
		logger: logger,
	}
}

type adviceRule struct {
	rule string
	text string
}

// Rule advice is emitted once per rule present, in this order.
var (
	styleAdvice = []adviceRule{
		{prechecks.RuleVar, "Modernize variable declarations by using let and const instead of var"},
		{prechecks.RuleConsole, "Remove console statements and implement proper logging for production"},
		{prechecks.RuleEquality, "Use strict equality (===) to avoid type coercion issues"},
		{prechecks.RuleSemicolon, "Add explicit semicolons for better code clarity and consistency"},
		{prechecks.RuleNullCheck, "Add null checks or use optional chaining to prevent runtime errors"},
	}
	followUpAdvice = []adviceRule{
		{prechecks.RuleInefficientIteration, "Use more Pythonic iteration patterns for better performance and readability"},
		{prechecks.RuleTodo, "Address TODO comments and incomplete code sections"},
	}
)

const (
	structureAdvice = "Good code structure detected with proper use of functions and control flow"
	cleanAdvice     = "Excellent code quality! No issues detected - keep up the good work"
)

func (a *Aggregator) Aggregate(findings []models.Finding, explanations []models.Explanation) models.Report {
	report := models.Report{
		Findings:     findings,
		Explanations: explanations,
		Advice:       []string{},
	}

	rules := map[string]bool{}
	for _, f := range findings {
		rules[f.Rule] = true
		switch f.Kind {
		case models.KindError:
			report.Errors++
		case models.KindWarning:
			report.Warnings++
		case models.KindSuggestion:
			report.Suggestions++
		}
	}

	report.Quality = calculateQuality(report.Errors, report.Warnings, report.Suggestions)

	report.Advice = appendAdvice(report.Advice, styleAdvice, rules)
	if len(explanations) > 0 {
		report.Advice = append(report.Advice, structureAdvice)
	}
	if len(findings) == 0 {
		report.Advice = append(report.Advice, cleanAdvice)
	}
	report.Advice = appendAdvice(report.Advice, followUpAdvice, rules)

	a.logger.
		Info().
		Int("errors", report.Errors).
		Int("warnings", report.Warnings).
		Int("suggestions", report.Suggestions).
		Int("explanations", len(report.Explanations)).
		Str("quality", string(report.Quality)).
		Msg("local checks complete")
	return report
}

func calculateQuality(errors, warnings, suggestions int) models.Quality {
	if errors == 0 && warnings == 0 && suggestions <= 1 {
		return models.QualityExcellent
	}
	if errors == 0 && warnings <= 2 && suggestions <= 3 {
		return models.QualityGood
	}
	if errors <= 1 && warnings <= 4 {
		return models.QualityFair
	}
	return models.QualityPoor
}

func appendAdvice(out []string, rules []adviceRule, present map[string]bool) []string {
	for _, adv := range rules {
		if present[adv.rule] {
			out = append(out, adv.text)
		}
	}
	return out
}
