package gemini

import (
	"context"

	"google.golang.org/genai"

	"github.com/nabobery/google-adk-experiments/core"
)

// Gemini implements core.LLM over the Gemini API.
type Gemini struct {
	ModelName string
	client    *genai.Client
}

func NewGemini(apiKey string, modelName string) (*Gemini, error) {
	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}

	return &Gemini{
		ModelName: modelName,
		client:    client,
	}, nil
}

func (g *Gemini) Generate(ctx context.Context, systemContext string, history []core.ChatContent, input core.LLMInput) (core.LLMOutput, error) {
	var contents []*genai.Content
	for _, content := range history {
		switch content.Role {
		case "user":
			contents = append(contents, &genai.Content{Role: "user", Parts: []*genai.Part{{Text: content.Content}}})
		case "assistant":
			contents = append(contents, &genai.Content{Role: "model", Parts: []*genai.Part{{Text: content.Content}}})
		}
	}
	if input.Text != "" {
		contents = append(contents, &genai.Content{Role: "user", Parts: []*genai.Part{{Text: input.Text}}})
	}

	var config *genai.GenerateContentConfig
	if systemContext != "" {
		config = &genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemContext}}},
		}
	}

	result, err := g.client.Models.GenerateContent(ctx, g.ModelName, contents, config)
	if err != nil {
		return core.LLMOutput{}, err
	}

	stats := core.Stats{}
	if result.UsageMetadata != nil {
		stats = core.Stats{
			InputTokenCount:  result.UsageMetadata.PromptTokenCount,
			OutputTokenCount: result.UsageMetadata.CandidatesTokenCount,
			TotalTokenCount:  result.UsageMetadata.TotalTokenCount,
		}
	}

	return core.LLMOutput{Text: result.Text(), Stats: stats}, nil
}
