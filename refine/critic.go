package refine

import (
	"context"
	"fmt"
	"strings"

	"github.com/nabobery/google-adk-experiments/core"
)

// NewCritic returns an LLM-backed Critic. The Accept/Reject boundary is the
// single place a model sentinel is matched: exactly the completion phrase
// means Accept, "Feedback:" lines mean Reject, anything else is malformed.
// A malformed reply is never treated as acceptance.
func NewCritic(llm core.LLM) Critic {
	return &llmCritic{llm: llm}
}

type llmCritic struct {
	llm core.LLM
}

func (c *llmCritic) Evaluate(ctx context.Context, cand Candidate, contextKey string, cr ContextResult) (Verdict, error) {
	prompt := renderCriticPrompt(cand, contextKey, cr)

	verdict, ok, err := c.complete(ctx, prompt)
	if err != nil {
		return Verdict{}, err
	}
	if ok {
		return verdict, nil
	}

	verdict, ok, err = c.complete(ctx, prompt+retryHint)
	if err != nil {
		return Verdict{}, err
	}
	if !ok {
		return Verdict{}, ErrMalformedResponse
	}
	return verdict, nil
}

func (c *llmCritic) complete(ctx context.Context, prompt string) (Verdict, bool, error) {
	out, err := c.llm.Generate(ctx, "", nil, core.LLMInput{Text: prompt})
	if err != nil {
		return Verdict{}, false, fmt.Errorf("oracle call: %w", err)
	}
	verdict, ok := parseVerdict(out.Text)
	return verdict, ok, nil
}

func parseVerdict(raw string) (Verdict, bool) {
	text := strings.TrimSpace(raw)
	if text == CompletionPhraseOK {
		return Verdict{Accept: true}, true
	}

	var items []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if after, found := strings.CutPrefix(line, "Feedback:"); found {
			if item := strings.TrimSpace(after); item != "" {
				items = append(items, item)
			}
		}
	}
	if len(items) == 0 {
		return Verdict{}, false
	}
	return Verdict{Items: items}, true
}
