package prechecks

import (
	"sort"

	"github.com/povarna/generative-ai-agents/code-analyzer/internal/models"
)

type Runner struct {
	Checkers  []Checker
	Explainer *Explainer
}

func NewRunner(checkers []Checker) *Runner {
	return &Runner{
		Checkers:  checkers,
		Explainer: NewExplainer(),
	}
}

// Run collects findings from every checker, ordered by line then id.
func (r *Runner) Run(source models.Source) []models.Finding {
	findings := []models.Finding{}

	for _, checker := range r.Checkers {
		findings = append(findings, checker.Check(source)...)
	}

	sort.SliceStable(findings, func(i, j int) bool {
		if findings[i].Line != findings[j].Line {
			return findings[i].Line < findings[j].Line
		}
		return findings[i].ID < findings[j].ID
	})

	return findings
}

// Explain returns nil when the runner has no explainer.
func (r *Runner) Explain(source models.Source) []models.Explanation {
	if r.Explainer == nil {
		return nil
	}
	return r.Explainer.Explain(source)
}
