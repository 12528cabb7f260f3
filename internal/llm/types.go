package llm

const (
	// MaxTokens and Temperature are fixed for every analysis request.
	MaxTokens   = 1000
	Temperature = 0.7
)

type LLMRequest struct {
	Prompt      string
	MaxTokens   int
	Temperature float64
}

type LLMResponse struct {
	Content    string
	StopReason string
}
