package together

import (
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const (
	DefaultBaseURL = "https://api.together.xyz/v1"
	DefaultModelID = "meta-llama/Llama-3.3-70B-Instruct-Turbo"
)

// Client talks to Together's OpenAI-compatible chat completions endpoint.
type Client struct {
	Client  openai.Client
	ModelID string
}

func NewClient(apiKey string, baseURL string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Together API key is required")
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	togetherClient := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL(baseURL),
		option.WithMaxRetries(0),
	)

	return &Client{
		Client:  togetherClient,
		ModelID: DefaultModelID,
	}, nil
}
