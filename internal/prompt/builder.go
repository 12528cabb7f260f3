// Package prompt builds the code review prompt sent to the model.
package prompt

const preamble = `
You are an AI assistant for debugging and optimizing code.
Your tasks:
- Check for correctness
- Suggest actionable improvements
- Provide an optimized version if possible

Here is the code to analyze:
`

const trailer = "\n    "

// Build embeds code verbatim after the fixed instructions.
func Build(code string) string {
	return preamble + code + trailer
}
