package prompt

import (
	"strings"
	"testing"
)

func TestBuild(t *testing.T) {
	tests := []struct {
		name string
		code string
	}{
		{name: "python one-liner", code: "def f(): pass"},
		{name: "empty input", code: ""},
		{name: "template-looking content", code: "{{.Code}} %s %v {code}"},
		{name: "multi-line", code: "for i in range(len(xs)):\n    print(xs[i])"},
		{name: "unicode", code: "print('héllo wörld ✓')"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Build(tt.code)

			if !strings.HasPrefix(got, preamble) {
				t.Errorf("prompt does not start with the preamble: %q", got)
			}
			if !strings.Contains(got, tt.code) {
				t.Errorf("prompt does not contain input %q", tt.code)
			}
			if got[len(preamble):len(preamble)+len(tt.code)] != tt.code {
				t.Errorf("input not embedded verbatim after preamble")
			}
		})
	}
}

func TestBuild_Trailer(t *testing.T) {
	got := Build("x = 1")
	if !strings.HasSuffix(got, "x = 1\n    ") {
		t.Errorf("expected code followed by newline and four spaces, got %q", got)
	}
}

func TestBuild_Deterministic(t *testing.T) {
	code := "const x = 1"
	if Build(code) != Build(code) {
		t.Error("expected identical prompts for identical input")
	}
}

func TestBuild_EmptyInputIsPreambleOnly(t *testing.T) {
	got := Build("")
	if strings.TrimSpace(got) != strings.TrimSpace(preamble) {
		t.Errorf("expected preamble only, got %q", got)
	}
	if !strings.Contains(got, "Here is the code to analyze:") {
		t.Error("preamble missing instruction line")
	}
}
