package prechecks

import (
	"strings"
	"unicode/utf16"

	"github.com/povarna/generative-ai-agents/code-analyzer/internal/models"
)

const (
	RuleTodo     = "todo"
	RuleLongLine = "long-line"
)

type GeneralChecker struct {
	MaxLineLength int
}

func NewGeneralChecker() *GeneralChecker {
	return &GeneralChecker{MaxLineLength: 120}
}

func (c *GeneralChecker) Check(source models.Source) []models.Finding {
	var findings []models.Finding

	for _, l := range splitLines(source.Code) {
		t := l.trimmed

		if strings.Contains(t, "TODO") || strings.Contains(t, "FIXME") || strings.Contains(t, "HACK") {
			findings = append(findings, newFinding(l.number, RuleTodo, models.KindSuggestion, models.SeverityLow,
				"TODO/FIXME comment found",
				"This line is marked as incomplete or problematic."))
		}

		if utf16Len(t) > c.MaxLineLength {
			findings = append(findings, newFinding(l.number, RuleLongLine, models.KindSuggestion, models.SeverityLow,
				"Line too long",
				"Consider breaking this line up for readability."))
		}
	}

	return findings
}

// utf16Len counts UTF-16 code units, so astral-plane characters count twice.
func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		if l := utf16.RuneLen(r); l > 0 {
			n += l
		} else {
			n++
		}
	}
	return n
}
