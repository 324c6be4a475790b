package refine

import (
	"context"
	"fmt"
	"log"

	"github.com/nabobery/google-adk-experiments/core"
)

// Controller owns the refinement loop state: the current candidate, the
// iteration counter and the terminal flag. State is run-scoped; a Controller
// is safe for concurrent use because Run keeps everything on the stack.
type Controller struct {
	Provider      ContextProvider
	Drafter       Drafter
	Critic        Critic
	Reviser       Reviser
	MaxIterations int
}

// NewController wires the LLM-backed pipeline steps around a context provider.
func NewController(provider ContextProvider, llm core.LLM, maxIterations int) *Controller {
	if maxIterations < 1 {
		maxIterations = DefaultMaxIterations
	}
	return &Controller{
		Provider:      provider,
		Drafter:       NewDrafter(llm),
		Critic:        NewCritic(llm),
		Reviser:       NewReviser(llm),
		MaxIterations: maxIterations,
	}
}

// Run executes one full pipeline: context fetch, initial draft, then at most
// MaxIterations critique/revise rounds. It returns either a complete terminal
// Outcome or a StepError; never a partially updated candidate.
//
// Round n evaluates the candidate produced before it, so an immediate accept
// returns the drafter's version 0 untouched. Only the reviser's Terminate is
// trusted as a stop signal; an exhausted budget forces StateExhausted with the
// last candidate.
// maxIterations <= 0 falls back to the controller's configured budget.
func (c *Controller) Run(ctx context.Context, goal string, contextKey string, maxIterations int) (Outcome, error) {
	if goal == "" {
		return Outcome{}, stepErr(StepDraft, fmt.Errorf("goal is required"))
	}
	if maxIterations < 1 {
		maxIterations = c.MaxIterations
	}
	if maxIterations < 1 {
		maxIterations = DefaultMaxIterations
	}

	cr := c.Provider.Fetch(ctx, contextKey)
	if !cr.Available {
		log.Printf("refine: no context for %q (%s), using generic policies", contextKey, cr.Reason)
	}

	cand, err := c.Drafter.Draft(ctx, goal, contextKey, cr)
	if err != nil {
		return Outcome{}, stepErr(StepDraft, err)
	}

	for n := 0; n < maxIterations; n++ {
		verdict, err := c.Critic.Evaluate(ctx, cand, contextKey, cr)
		if err != nil {
			return Outcome{}, stepErr(StepCritique, err)
		}

		rr, err := c.Reviser.Revise(ctx, cand, verdict)
		if err != nil {
			return Outcome{}, stepErr(StepRevise, err)
		}

		if rr.Terminate {
			state := StateExhausted
			// Terminate without an accepting verdict ends the loop too,
			// but must not be reported as acceptance.
			if verdict.Accept {
				state = StateAccepted
			}
			return Outcome{Candidate: cand, State: state, Rounds: n + 1, Context: cr}, nil
		}

		cand = rr.Updated
	}

	return Outcome{Candidate: cand, State: StateExhausted, Rounds: maxIterations, Context: cr}, nil
}
