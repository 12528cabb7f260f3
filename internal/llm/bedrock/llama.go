package bedrock

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"
	"github.com/povarna/generative-ai-agents/code-analyzer/internal/llm"
)

func (c *Client) InvokeModel(ctx context.Context, request llm.LLMRequest) (*llm.LLMResponse, error) {
	input := &bedrockruntime.ConverseInput{
		ModelId: aws.String(c.ModelID),
		Messages: []types.Message{
			{
				Role: types.ConversationRoleUser,
				Content: []types.ContentBlock{
					&types.ContentBlockMemberText{Value: request.Prompt},
				},
			},
		},
		InferenceConfig: &types.InferenceConfiguration{
			MaxTokens:   aws.Int32(int32(request.MaxTokens)),
			Temperature: aws.Float32(float32(request.Temperature)),
		},
	}

	output, err := c.Client.Converse(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("Unable to invoke llama model. Error: %w", err)
	}

	message, ok := output.Output.(*types.ConverseOutputMemberMessage)
	if !ok {
		return nil, fmt.Errorf("unexpected bedrock output type %T", output.Output)
	}

	// First text block wins
	for _, block := range message.Value.Content {
		if text, ok := block.(*types.ContentBlockMemberText); ok {
			return &llm.LLMResponse{
				Content:    text.Value,
				StopReason: string(output.StopReason),
			}, nil
		}
	}

	return nil, fmt.Errorf("no text content in response")
}
