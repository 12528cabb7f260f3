package prechecks

import (
	"fmt"
	"strings"

	"github.com/povarna/generative-ai-agents/code-analyzer/internal/models"
)

type Checker interface {
	Check(source models.Source) []models.Finding
}

// ForLanguage returns the checkers that apply to lang. The general checker always applies.
func ForLanguage(lang models.Language) []Checker {
	checkers := []Checker{}

	switch lang {
	case models.LanguageJavaScript, models.LanguageTypeScript:
		checkers = append(checkers, NewJavaScriptChecker())
	case models.LanguagePython:
		checkers = append(checkers, NewPythonChecker())
	}

	return append(checkers, NewGeneralChecker())
}

type line struct {
	number  int
	trimmed string
}

func splitLines(code string) []line {
	raw := strings.Split(code, "\n")
	lines := make([]line, 0, len(raw))
	for i, l := range raw {
		lines = append(lines, line{number: i + 1, trimmed: strings.TrimSpace(l)})
	}
	return lines
}

func newFinding(lineNumber int, rule string, kind models.FindingKind, severity models.Severity, message, description string) models.Finding {
	return models.Finding{
		ID:          fmt.Sprintf("bug-%d-%s", lineNumber, rule),
		Rule:        rule,
		Line:        lineNumber,
		Kind:        kind,
		Severity:    severity,
		Message:     message,
		Description: description,
	}
}
