package refine

import (
	"context"
	"errors"
	"fmt"

	"github.com/nabobery/google-adk-experiments/core"
)

// NewDrafter returns an LLM-backed Drafter.
func NewDrafter(llm core.LLM) Drafter {
	return &llmDrafter{llm: llm}
}

type llmDrafter struct {
	llm core.LLM
}

func (d *llmDrafter) Draft(ctx context.Context, goal string, contextKey string, cr ContextResult) (Candidate, error) {
	prompt := renderDrafterPrompt(goal, contextKey, cr)

	cand, err := completeCandidate(ctx, d.llm, prompt)
	if err != nil {
		return Candidate{}, err
	}
	cand.Version = 0
	if err := cand.checkStructure(); err != nil {
		return Candidate{}, err
	}
	return cand, nil
}

// completeCandidate runs one oracle call expecting Title/Body output, with a
// single clarifying retry when the reply is malformed.
func completeCandidate(ctx context.Context, llm core.LLM, prompt string) (Candidate, error) {
	out, err := llm.Generate(ctx, "", nil, core.LLMInput{Text: prompt})
	if err != nil {
		return Candidate{}, fmt.Errorf("oracle call: %w", err)
	}

	cand, perr := ParseCandidate(out.Text)
	if perr == nil {
		return cand, nil
	}
	if !errors.Is(perr, ErrMalformedResponse) {
		return Candidate{}, perr
	}

	out, err = llm.Generate(ctx, "", nil, core.LLMInput{Text: prompt + retryHint})
	if err != nil {
		return Candidate{}, fmt.Errorf("oracle call: %w", err)
	}
	return ParseCandidate(out.Text)
}
