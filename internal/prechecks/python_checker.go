package prechecks

import (
	"strings"

	"github.com/povarna/generative-ai-agents/code-analyzer/internal/models"
)

const (
	RulePrint                = "print"
	RuleTypeHints            = "type-hints"
	RuleInefficientIteration = "inefficient-iteration"
)

type PythonChecker struct {
}

func NewPythonChecker() *PythonChecker {
	return &PythonChecker{}
}

func (c *PythonChecker) Check(source models.Source) []models.Finding {
	var findings []models.Finding

	for _, l := range splitLines(source.Code) {
		t := l.trimmed

		if strings.Contains(t, "print(") && !strings.Contains(t, "#") {
			f := newFinding(l.number, RulePrint, models.KindSuggestion, models.SeverityLow,
				"Print statement in code",
				"Replace print with the logging module for control over levels and destinations.")
			f.Fix = &models.Fix{Title: "Use logging instead of print", Code: strings.Replace(t, "print(", "logging.info(", 1)}
			findings = append(findings, f)
		}

		if strings.HasPrefix(t, "def ") && !strings.Contains(t, "->") && !strings.Contains(t, ":") {
			findings = append(findings, newFinding(l.number, RuleTypeHints, models.KindSuggestion, models.SeverityLow,
				"Missing type hints",
				"Parameter and return annotations improve readability and catch errors early."))
		}

		if strings.Contains(t, "range(len(") && strings.Contains(t, "))") {
			f := newFinding(l.number, RuleInefficientIteration, models.KindWarning, models.SeverityMedium,
				"Inefficient iteration pattern",
				"range(len()) is less Pythonic than iterating over the collection directly.")
			f.Fix = &models.Fix{Title: "Use direct iteration", Code: "# Use: for item in collection: instead of for i in range(len(collection)):"}
			findings = append(findings, f)
		}
	}

	return findings
}
