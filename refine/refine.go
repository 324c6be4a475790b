// Package refine drives an iterative draft/critique/revise pipeline for
// subreddit-tailored posts: a context provider supplies the target community's
// rules, a drafter produces an initial candidate, then a critic and reviser
// alternate until the critic accepts the post or the iteration budget runs out.
package refine

import (
	"context"
	"errors"
	"fmt"
)

// Completion phrases exchanged with the model. The critic must answer with
// exactly CompletionPhraseOK to accept a draft; the drafter is told about
// missing community info via CompletionPhraseUnavailable.
const (
	CompletionPhraseOK          = "POST_OK"
	CompletionPhraseUnavailable = "SUBREDDIT_INFO_UNAVAILABLE"
)

// DefaultMaxIterations bounds the critique/revise loop when the caller does
// not choose a budget.
const DefaultMaxIterations = 5

// Candidate is the post draft under refinement. A candidate is never mutated;
// revision produces a successor with the next version number.
type Candidate struct {
	Title   string `json:"title"`
	Body    string `json:"body"`
	Version int    `json:"version"`
}

// ContextResult carries the reference material used to judge a candidate.
// Absence of context is a normal outcome, not an error.
type ContextResult struct {
	Available bool     `json:"available"`
	Guidance  string   `json:"guidance,omitempty"`
	Exemplars []string `json:"exemplars,omitempty"`
	Reason    string   `json:"reason,omitempty"`
}

func Unavailable(reason string) ContextResult {
	return ContextResult{Available: false, Reason: reason}
}

// Verdict is the critic's judgment: Accept, or a non-empty ordered list of
// actionable feedback items.
type Verdict struct {
	Accept bool
	Items  []string
}

// RevisionResult is the reviser's decision: Terminate the loop, or continue
// with an updated candidate.
type RevisionResult struct {
	Terminate bool
	Updated   Candidate
}

// TerminalState distinguishes a post the critic accepted from one that merely
// ran out of refinement budget.
type TerminalState string

const (
	StateAccepted  TerminalState = "accepted"
	StateExhausted TerminalState = "exhausted"
)

// Outcome is the pipeline's terminal result.
type Outcome struct {
	Candidate Candidate     `json:"candidate"`
	State     TerminalState `json:"state"`
	Rounds    int           `json:"rounds"`
	Context   ContextResult `json:"context"`
}

// ContextProvider looks up reference material for a key. Lookup failures fold
// into an Unavailable result; Fetch never returns an error.
type ContextProvider interface {
	Fetch(ctx context.Context, key string) ContextResult
}

// Drafter produces the initial candidate for a goal, degrading to a generic
// draft when context is unavailable.
type Drafter interface {
	Draft(ctx context.Context, goal string, contextKey string, cr ContextResult) (Candidate, error)
}

// Critic judges a candidate against the available context.
type Critic interface {
	Evaluate(ctx context.Context, cand Candidate, contextKey string, cr ContextResult) (Verdict, error)
}

// Reviser applies critic feedback to a candidate, or terminates the loop on an
// accepting verdict. It acts only on the items it is given.
type Reviser interface {
	Revise(ctx context.Context, cand Candidate, verdict Verdict) (RevisionResult, error)
}

// Step names the pipeline stage a failure originated from.
type Step string

const (
	StepContext  Step = "context"
	StepDraft    Step = "draft"
	StepCritique Step = "critique"
	StepRevise   Step = "revise"
)

// StepError tags a pipeline-aborting error with its originating step.
type StepError struct {
	Step Step
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

func stepErr(step Step, err error) error {
	return &StepError{Step: step, Err: err}
}

// ErrMalformedResponse marks a model reply that did not match the expected
// shape for the step, after the in-step retry was spent.
var ErrMalformedResponse = errors.New("model response did not match expected format")

// ErrStructuralViolation marks a draft or revision missing required fields.
// This is an internal contract breach, never user-facing feedback.
var ErrStructuralViolation = errors.New("candidate missing required fields")
