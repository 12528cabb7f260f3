package prechecks

import (
	"fmt"
	"strings"
	"testing"

	"github.com/povarna/generative-ai-agents/code-analyzer/internal/models"
)

func TestExplainer(t *testing.T) {
	explainer := NewExplainer()

	tests := []struct {
		name    string
		code    string
		wantIDs []string
	}{
		{name: "js function", code: "function add(a, b) {", wantIDs: []string{"explanation-1-function"}},
		{name: "python def", code: "def add(a, b):", wantIDs: []string{"explanation-1-function"}},
		{name: "conditional", code: "if (x > 1) {", wantIDs: []string{"explanation-1-conditional"}},
		{name: "conditional without space", code: "if(x) {", wantIDs: []string{"explanation-1-conditional"}},
		{name: "while loop", code: "while (true) {", wantIDs: []string{"explanation-1-loop"}},
		{name: "declaration", code: "const total = 0;", wantIDs: []string{"explanation-1-variable"}},
		{name: "class", code: "class Cart:", wantIDs: []string{"explanation-1-class"}},
		{name: "require", code: "const fs = require('fs');", wantIDs: []string{"explanation-1-variable", "explanation-1-import"}},
		{name: "python import", code: "from os import path", wantIDs: []string{"explanation-1-import"}},
		{name: "for loop in body", code: "x = 1\nfor i in xs:", wantIDs: []string{"explanation-2-loop"}},
		{name: "js comment skipped", code: "// function old() {}", wantIDs: nil},
		{name: "python comment skipped", code: "# def old():", wantIDs: nil},
		{name: "plain statement", code: "x = 1", wantIDs: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := explainer.Explain(models.Source{Code: tt.code})

			if len(got) != len(tt.wantIDs) {
				t.Fatalf("expected %d explanations, got %+v", len(tt.wantIDs), got)
			}
			for i, id := range tt.wantIDs {
				if got[i].ID != id {
					t.Errorf("explanation %d: got %s, want %s", i, got[i].ID, id)
				}
				if got[i].Text == "" || len(got[i].Concepts) == 0 {
					t.Errorf("explanation %s missing text or concepts", got[i].ID)
				}
			}
		})
	}
}

func TestExplainer_CarriesTrimmedCode(t *testing.T) {
	got := NewExplainer().Explain(models.Source{Code: "    let count = 0;   "})
	if len(got) != 1 {
		t.Fatalf("expected 1 explanation, got %d", len(got))
	}
	if got[0].Code != "let count = 0;" {
		t.Errorf("expected trimmed code, got %q", got[0].Code)
	}
	if got[0].Concepts[0] != "Variables" {
		t.Errorf("expected Variables concept, got %v", got[0].Concepts)
	}
}

func TestExplainer_Cap(t *testing.T) {
	var lines []string
	for i := 0; i < 20; i++ {
		lines = append(lines, fmt.Sprintf("const v%d = %d;", i, i))
	}

	got := NewExplainer().Explain(models.Source{Code: strings.Join(lines, "\n")})
	if len(got) != 15 {
		t.Fatalf("expected 15 explanations, got %d", len(got))
	}
	if got[14].Line != 15 {
		t.Errorf("expected the first 15 lines to be kept, last line is %d", got[14].Line)
	}
}

func TestRunner_Explain(t *testing.T) {
	runner := NewRunner(ForLanguage(models.LanguagePython))
	if got := runner.Explain(models.Source{Code: "def f(): pass"}); len(got) != 1 {
		t.Errorf("expected 1 explanation, got %d", len(got))
	}

	runner.Explainer = nil
	if got := runner.Explain(models.Source{Code: "def f(): pass"}); got != nil {
		t.Errorf("expected nil without an explainer, got %+v", got)
	}
}
