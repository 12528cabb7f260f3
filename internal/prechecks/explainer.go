package prechecks

import (
	"fmt"
	"strings"

	"github.com/povarna/generative-ai-agents/code-analyzer/internal/models"
)

const (
	TopicFunction    = "function"
	TopicConditional = "conditional"
	TopicLoop        = "loop"
	TopicVariable    = "variable"
	TopicClass       = "class"
	TopicImport      = "import"
)

type topic struct {
	name     string
	markers  []string
	text     string
	concepts []string
}

// Checked in this order for every line; one line may match several topics.
var topics = []topic{
	{
		name:     TopicFunction,
		markers:  []string{"function", "def "},
		text:     "This line defines a function, a reusable block of code that performs a specific task.",
		concepts: []string{"Functions", "Code Organization", "Reusability", "Modularity"},
	},
	{
		name:     TopicConditional,
		markers:  []string{"if ", "if("},
		text:     "This is a conditional statement that picks a code path based on whether a condition is true.",
		concepts: []string{"Conditional Logic", "Control Flow", "Boolean Logic", "Decision Making"},
	},
	{
		name:     TopicLoop,
		markers:  []string{"for ", "while "},
		text:     "This is a loop that repeats a block of code, typically over a collection of data.",
		concepts: []string{"Loops", "Iteration", "Control Flow", "Repetition"},
	},
	{
		name:     TopicVariable,
		markers:  []string{"const ", "let ", "var "},
		text:     "This line declares a variable, a named storage location that holds a value.",
		concepts: []string{"Variables", "Data Storage", "Memory Management", "Scope"},
	},
	{
		name:     TopicClass,
		markers:  []string{"class "},
		text:     "This line defines a class, a blueprint for creating objects that bundle data and behavior.",
		concepts: []string{"Classes", "Object-Oriented Programming", "Encapsulation", "Objects"},
	},
	{
		name:     TopicImport,
		markers:  []string{"import ", "from ", "require("},
		text:     "This line imports an external module so its code can be reused here.",
		concepts: []string{"Modules", "Imports", "Code Reuse", "Dependencies"},
	},
}

type Explainer struct {
	MaxExplanations int
}

func NewExplainer() *Explainer {
	return &Explainer{MaxExplanations: 15}
}

// Explain annotates function, control flow, declaration and import lines.
// Comment lines are skipped and the output is capped at MaxExplanations.
func (e *Explainer) Explain(source models.Source) []models.Explanation {
	explanations := []models.Explanation{}

	for _, l := range splitLines(source.Code) {
		t := l.trimmed
		if t == "" || strings.HasPrefix(t, "//") || strings.HasPrefix(t, "#") {
			continue
		}

		for _, tp := range topics {
			if !containsAny(t, tp.markers) {
				continue
			}
			if len(explanations) >= e.MaxExplanations {
				return explanations
			}
			explanations = append(explanations, models.Explanation{
				ID:       fmt.Sprintf("explanation-%d-%s", l.number, tp.name),
				Line:     l.number,
				Code:     t,
				Text:     tp.text,
				Concepts: tp.concepts,
			})
		}
	}

	return explanations
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}
