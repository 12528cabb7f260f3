package bedrock

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"
	"github.com/povarna/generative-ai-agents/code-analyzer/internal/llm"
)

type fakeConverse struct {
	input  *bedrockruntime.ConverseInput
	output *bedrockruntime.ConverseOutput
	err    error
}

func (f *fakeConverse) Converse(_ context.Context, params *bedrockruntime.ConverseInput, _ ...func(*bedrockruntime.Options)) (*bedrockruntime.ConverseOutput, error) {
	f.input = params
	return f.output, f.err
}

func textOutput(blocks ...types.ContentBlock) *bedrockruntime.ConverseOutput {
	return &bedrockruntime.ConverseOutput{
		Output: &types.ConverseOutputMemberMessage{
			Value: types.Message{Role: types.ConversationRoleAssistant, Content: blocks},
		},
		StopReason: types.StopReasonEndTurn,
	}
}

func TestInvokeModel_Success(t *testing.T) {
	fake := &fakeConverse{output: textOutput(&types.ContentBlockMemberText{Value: "Looks correct."})}
	c := &Client{Client: fake, ModelID: DefaultModelID}

	resp, err := c.InvokeModel(context.Background(), llm.LLMRequest{
		Prompt:      "def f(): pass",
		MaxTokens:   llm.MaxTokens,
		Temperature: llm.Temperature,
	})
	if err != nil {
		t.Fatalf("InvokeModel failed: %v", err)
	}
	if resp.Content != "Looks correct." {
		t.Errorf("expected 'Looks correct.', got %q", resp.Content)
	}
	if resp.StopReason != "end_turn" {
		t.Errorf("expected stop reason end_turn, got %q", resp.StopReason)
	}

	in := fake.input
	if aws.ToString(in.ModelId) != DefaultModelID {
		t.Errorf("expected model %s, got %s", DefaultModelID, aws.ToString(in.ModelId))
	}
	if aws.ToInt32(in.InferenceConfig.MaxTokens) != 1000 {
		t.Errorf("expected max tokens 1000, got %d", aws.ToInt32(in.InferenceConfig.MaxTokens))
	}
	if aws.ToFloat32(in.InferenceConfig.Temperature) != float32(0.7) {
		t.Errorf("expected temperature 0.7, got %f", aws.ToFloat32(in.InferenceConfig.Temperature))
	}
	if len(in.Messages) != 1 || in.Messages[0].Role != types.ConversationRoleUser {
		t.Fatalf("expected a single user message, got %+v", in.Messages)
	}
	text, ok := in.Messages[0].Content[0].(*types.ContentBlockMemberText)
	if !ok || text.Value != "def f(): pass" {
		t.Errorf("unexpected message content %+v", in.Messages[0].Content)
	}
}

func TestInvokeModel_Error(t *testing.T) {
	fake := &fakeConverse{err: errors.New("ThrottlingException")}
	c := &Client{Client: fake, ModelID: DefaultModelID}

	_, err := c.InvokeModel(context.Background(), llm.LLMRequest{Prompt: "x"})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "ThrottlingException") {
		t.Errorf("expected wrapped cause, got %v", err)
	}
}

func TestInvokeModel_NoText(t *testing.T) {
	fake := &fakeConverse{output: textOutput()}
	c := &Client{Client: fake, ModelID: DefaultModelID}

	_, err := c.InvokeModel(context.Background(), llm.LLMRequest{Prompt: "x"})
	if err == nil {
		t.Fatal("expected error for empty content")
	}
	if !strings.Contains(err.Error(), "no text content") {
		t.Errorf("expected 'no text content' error, got %v", err)
	}
}
