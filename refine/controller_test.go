package refine

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/nabobery/google-adk-experiments/core"
)

// scriptedLLM replays a fixed sequence of replies, one per Generate call.
type scriptedLLM struct {
	t       *testing.T
	replies []string
	calls   int
}

func (s *scriptedLLM) Generate(ctx context.Context, systemContext string, history []core.ChatContent, input core.LLMInput) (core.LLMOutput, error) {
	if s.calls >= len(s.replies) {
		s.t.Fatalf("unexpected Generate call %d (scripted %d)", s.calls+1, len(s.replies))
	}
	reply := s.replies[s.calls]
	s.calls++
	return core.LLMOutput{Text: reply}, nil
}

type staticProvider struct {
	result ContextResult
}

func (p staticProvider) Fetch(ctx context.Context, key string) ContextResult {
	return p.result
}

func availableContext() ContextResult {
	return ContextResult{
		Available: true,
		Guidance:  "Be technical and cite sources.",
		Exemplars: []string{"Title: A solid post"},
	}
}

func draftReply(version int) string {
	return fmt.Sprintf("Title: Draft v%d\nBody: Body text for version %d.", version, version)
}

func TestRunExhaustsBudgetOnRepeatedRejection(t *testing.T) {
	llm := &scriptedLLM{t: t, replies: []string{
		draftReply(0),
		"Feedback: too vague", draftReply(1),
		"Feedback: still too vague", draftReply(2),
		"Feedback: needs examples", draftReply(3),
	}}
	c := NewController(staticProvider{availableContext()}, llm, DefaultMaxIterations)

	outcome, err := c.Run(context.Background(), "announce a library", "r/python", 3)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if outcome.State != StateExhausted {
		t.Fatalf("expected exhausted, got %s", outcome.State)
	}
	if outcome.Rounds != 3 {
		t.Fatalf("expected 3 rounds, got %d", outcome.Rounds)
	}
	if outcome.Candidate.Version != 3 {
		t.Fatalf("expected the last revision (v3), got v%d", outcome.Candidate.Version)
	}
	if llm.calls != 7 {
		t.Fatalf("expected 7 oracle calls, got %d", llm.calls)
	}
}

func TestRunAcceptsOnFirstRound(t *testing.T) {
	llm := &scriptedLLM{t: t, replies: []string{
		draftReply(0),
		CompletionPhraseOK,
	}}
	c := NewController(staticProvider{availableContext()}, llm, DefaultMaxIterations)

	outcome, err := c.Run(context.Background(), "announce a library", "r/python", 0)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if outcome.State != StateAccepted {
		t.Fatalf("expected accepted, got %s", outcome.State)
	}
	if outcome.Rounds != 1 {
		t.Fatalf("expected 1 round, got %d", outcome.Rounds)
	}
	// The accepted candidate is the one the critic judged, untouched.
	if outcome.Candidate.Version != 0 {
		t.Fatalf("expected the original draft (v0), got v%d", outcome.Candidate.Version)
	}
	// An accepting verdict ends the loop without a reviser oracle call.
	if llm.calls != 2 {
		t.Fatalf("expected 2 oracle calls, got %d", llm.calls)
	}
}

func TestRunCompletesWithoutContext(t *testing.T) {
	llm := &scriptedLLM{t: t, replies: []string{
		draftReply(0),
		"Feedback: generic quality issue",
		draftReply(1),
		CompletionPhraseOK,
	}}
	c := NewController(staticProvider{Unavailable("scrape failed")}, llm, DefaultMaxIterations)

	outcome, err := c.Run(context.Background(), "announce a library", "r/obscure", 5)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if outcome.State != StateAccepted {
		t.Fatalf("expected accepted, got %s", outcome.State)
	}
	if outcome.Context.Available {
		t.Fatal("expected unavailable context to be reported in the outcome")
	}
	if outcome.Context.Reason != "scrape failed" {
		t.Fatalf("unexpected reason: %q", outcome.Context.Reason)
	}
}

func TestRunRetriesMalformedCriticReplyOnce(t *testing.T) {
	llm := &scriptedLLM{t: t, replies: []string{
		draftReply(0),
		"The post looks mostly fine I guess.", // no sentinel, no Feedback lines
		CompletionPhraseOK,
	}}
	c := NewController(staticProvider{availableContext()}, llm, DefaultMaxIterations)

	outcome, err := c.Run(context.Background(), "announce a library", "r/python", 5)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if outcome.State != StateAccepted {
		t.Fatalf("expected accepted after retry, got %s", outcome.State)
	}
	if llm.calls != 3 {
		t.Fatalf("expected 3 oracle calls, got %d", llm.calls)
	}
}

func TestRunFailsAfterSecondMalformedCriticReply(t *testing.T) {
	llm := &scriptedLLM{t: t, replies: []string{
		draftReply(0),
		"Sounds good to me!",
		"Yeah this is fine.",
	}}
	c := NewController(staticProvider{availableContext()}, llm, DefaultMaxIterations)

	_, err := c.Run(context.Background(), "announce a library", "r/python", 5)
	if err == nil {
		t.Fatal("expected an error, a malformed verdict must never pass as acceptance")
	}
	var stepErr *StepError
	if !errors.As(err, &stepErr) {
		t.Fatalf("expected a StepError, got %T: %v", err, err)
	}
	if stepErr.Step != StepCritique {
		t.Fatalf("expected the critique step, got %s", stepErr.Step)
	}
	if !errors.Is(err, ErrMalformedResponse) {
		t.Fatalf("expected ErrMalformedResponse, got %v", err)
	}
}

func TestRunRejectsEmptyGoal(t *testing.T) {
	c := NewController(staticProvider{availableContext()}, &scriptedLLM{t: t}, DefaultMaxIterations)

	_, err := c.Run(context.Background(), "", "r/python", 5)
	if err == nil {
		t.Fatal("expected an error for an empty goal")
	}
}

func TestRunRoundsNeverExceedBudget(t *testing.T) {
	for budget := 1; budget <= 4; budget++ {
		replies := []string{draftReply(0)}
		for i := 0; i < budget; i++ {
			replies = append(replies, "Feedback: not there yet", draftReply(i+1))
		}
		llm := &scriptedLLM{t: t, replies: replies}
		c := NewController(staticProvider{availableContext()}, llm, DefaultMaxIterations)

		outcome, err := c.Run(context.Background(), "announce a library", "r/python", budget)
		if err != nil {
			t.Fatalf("budget %d: Run: %v", budget, err)
		}
		if outcome.Rounds != budget {
			t.Fatalf("budget %d: got %d rounds", budget, outcome.Rounds)
		}
		if outcome.State != StateExhausted {
			t.Fatalf("budget %d: expected exhausted, got %s", budget, outcome.State)
		}
	}
}
