package core

import "context"

type LLMInput struct {
	SessionKey string
	Text       string
	Labels     map[string]string
}

type LLMOutput struct {
	Text  string
	Stats Stats
}

type Stats struct {
	InputTokenCount  int32 `json:"input_token_count,omitempty"`
	OutputTokenCount int32 `json:"output_token_count,omitempty"`
	TotalTokenCount  int32 `json:"total_token_count,omitempty"`
}

type ChatContent struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

func NewContent(role string, content string) ChatContent {
	return ChatContent{
		Role:    role,
		Content: content,
	}
}

// LLM is the judgment oracle behind every agent and pipeline step. The
// implementation may be remote; cancelling the context must abort the call
// without corrupting any caller state.
type LLM interface {
	Generate(ctx context.Context, systemContext string, history []ChatContent, input LLMInput) (LLMOutput, error)
}
