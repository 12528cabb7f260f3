package prechecks

import (
	"regexp"
	"strings"

	"github.com/povarna/generative-ai-agents/code-analyzer/internal/models"
)

const (
	RuleVar       = "var"
	RuleEquality  = "equality"
	RuleConsole   = "console"
	RuleSemicolon = "semicolon"
	RuleNullCheck = "null-check"
)

type JavaScriptChecker struct {
}

func NewJavaScriptChecker() *JavaScriptChecker {
	return &JavaScriptChecker{}
}

var memberAccess = regexp.MustCompile(`(\w+)\.`)

// Check flags common JavaScript/TypeScript pitfalls line by line.
func (c *JavaScriptChecker) Check(source models.Source) []models.Finding {
	var findings []models.Finding

	for _, l := range splitLines(source.Code) {
		t := l.trimmed

		if strings.Contains(t, "var ") {
			f := newFinding(l.number, RuleVar, models.KindWarning, models.SeverityMedium,
				`Use of "var" keyword`,
				`"var" is function scoped and hoisted. Prefer "let" for reassigned variables and "const" otherwise.`)
			f.Fix = &models.Fix{Title: "Replace var with let/const", Code: strings.Replace(t, "var ", "const ", 1)}
			findings = append(findings, f)
		}

		if strings.Contains(t, "==") && !strings.Contains(t, "===") {
			f := newFinding(l.number, RuleEquality, models.KindWarning, models.SeverityMedium,
				"Use of loose equality (==)",
				`Loose equality coerces types, so "0" == 0 is true. Use strict equality (===).`)
			f.Fix = &models.Fix{Title: "Use strict equality", Code: strings.ReplaceAll(t, "==", "===")}
			findings = append(findings, f)
		}

		if strings.Contains(t, "console.log") {
			f := newFinding(l.number, RuleConsole, models.KindSuggestion, models.SeverityLow,
				"Console statement in code",
				"Console statements should be removed before production deployment.")
			f.Fix = &models.Fix{Title: "Remove console statement", Code: "// " + t + " // TODO: Remove debug statement"}
			findings = append(findings, f)
		}

		if missingSemicolon(t) {
			f := newFinding(l.number, RuleSemicolon, models.KindSuggestion, models.SeverityLow,
				"Missing semicolon",
				"Automatic semicolon insertion exists, but explicit semicolons avoid surprises.")
			f.Fix = &models.Fix{Title: "Add semicolon", Code: t + ";"}
			findings = append(findings, f)
		}

		if strings.Contains(t, ".") && !strings.Contains(t, "?.") &&
			(strings.Contains(t, "getElementById") || strings.Contains(t, "querySelector")) {
			f := newFinding(l.number, RuleNullCheck, models.KindWarning, models.SeverityMedium,
				"Potential null reference",
				"DOM queries can return null. Add a null check or use optional chaining.")
			f.Fix = &models.Fix{Title: "Add null check", Code: optionalChain(t)}
			findings = append(findings, f)
		}
	}

	return findings
}

func missingSemicolon(t string) bool {
	if t == "" || strings.HasPrefix(t, "//") {
		return false
	}
	if strings.HasSuffix(t, ";") || strings.HasSuffix(t, "{") || strings.HasSuffix(t, "}") {
		return false
	}
	for _, kw := range []string{"if", "for", "while", "function"} {
		if strings.Contains(t, kw) {
			return false
		}
	}
	return true
}

// optionalChain rewrites only the first member access.
func optionalChain(t string) string {
	loc := memberAccess.FindStringSubmatchIndex(t)
	if loc == nil {
		return t
	}
	return t[:loc[3]] + "?." + t[loc[1]:]
}
