package refine

import (
	"context"

	"github.com/nabobery/google-adk-experiments/core"
)

// NewReviser returns an LLM-backed Reviser. An accepting verdict terminates
// the loop without an oracle call; a rejecting verdict's items are applied via
// the model to produce the successor candidate.
func NewReviser(llm core.LLM) Reviser {
	return &llmReviser{llm: llm}
}

type llmReviser struct {
	llm core.LLM
}

func (r *llmReviser) Revise(ctx context.Context, cand Candidate, verdict Verdict) (RevisionResult, error) {
	if verdict.Accept {
		return RevisionResult{Terminate: true}, nil
	}

	prompt := renderReviserPrompt(cand, verdict.Items)
	updated, err := completeCandidate(ctx, r.llm, prompt)
	if err != nil {
		return RevisionResult{}, err
	}
	updated.Version = cand.Version + 1
	if err := updated.checkStructure(); err != nil {
		return RevisionResult{}, err
	}
	return RevisionResult{Updated: updated}, nil
}
