package openai

import (
	"context"
	"errors"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/nabobery/google-adk-experiments/core"
)

// OpenAI implements core.LLM over the chat completions API.
type OpenAI struct {
	Model string
	opts  []option.RequestOption
}

func NewOpenAI(apiKey string, model string, baseURL string) (*OpenAI, error) {
	if apiKey == "" {
		return nil, errors.New("openai api key missing")
	}
	if model == "" {
		return nil, errors.New("openai model is required")
	}
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &OpenAI{Model: model, opts: opts}, nil
}

func (o *OpenAI) Generate(ctx context.Context, systemContext string, history []core.ChatContent, input core.LLMInput) (core.LLMOutput, error) {
	client := openai.NewClient(o.opts...)

	var msgs []openai.ChatCompletionMessageParamUnion
	if systemContext != "" {
		msgs = append(msgs, openai.SystemMessage(systemContext))
	}
	for _, h := range history {
		switch h.Role {
		case "assistant":
			msgs = append(msgs, openai.ChatCompletionMessageParamOfAssistant(h.Content))
		default:
			msgs = append(msgs, openai.UserMessage(h.Content))
		}
	}
	if input.Text != "" {
		msgs = append(msgs, openai.UserMessage(input.Text))
	}

	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(o.Model),
		Messages: msgs,
	})
	if err != nil {
		return core.LLMOutput{}, err
	}
	if len(resp.Choices) == 0 {
		return core.LLMOutput{}, errors.New("openai: empty choices")
	}

	return core.LLMOutput{
		Text: resp.Choices[0].Message.Content,
		Stats: core.Stats{
			InputTokenCount:  int32(resp.Usage.PromptTokens),
			OutputTokenCount: int32(resp.Usage.CompletionTokens),
			TotalTokenCount:  int32(resp.Usage.TotalTokens),
		},
	}, nil
}
