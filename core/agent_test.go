package core

import (
	"context"
	"fmt"
	"strings"
	"testing"
)

func TestExtractTagContent(t *testing.T) {
	cases := []struct {
		in   string
		tag  string
		want string
	}{
		{"<response>hello</response>", "response", "hello"},
		{"<thinking>x</thinking><response>a</response><response>b</response>", "response", "a\nb"},
		{"no tags at all", "response", ""},
		{"<response>unclosed", "response", ""},
		{"<task_status>completed</task_status>", "task_status", "completed"},
	}
	for _, tc := range cases {
		if got := extractTagContent(tc.in, tc.tag); got != tc.want {
			t.Fatalf("extractTagContent(%q, %q) = %q, want %q", tc.in, tc.tag, got, tc.want)
		}
	}
}

type replayLLM struct {
	t       *testing.T
	replies []string
	inputs  []string
}

func (r *replayLLM) Generate(ctx context.Context, systemContext string, history []ChatContent, input LLMInput) (LLMOutput, error) {
	r.inputs = append(r.inputs, input.Text)
	if len(r.replies) == 0 {
		r.t.Fatal("unexpected Generate call")
	}
	reply := r.replies[0]
	r.replies = r.replies[1:]
	return LLMOutput{Text: reply}, nil
}

func TestAgentRunPlainResponse(t *testing.T) {
	llm := &replayLLM{t: t, replies: []string{
		"<response>hi there</response>\n<task_status>completed</task_status>",
	}}
	agent := NewAgent("helper", "a helper", "You help.", llm)

	history := NewTaskHistory()
	out, err := agent.Run(context.Background(), history, LLMInput{Text: "hello"})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if out.Text != "hi there" {
		t.Fatalf("got %q", out.Text)
	}
	if history.Status != "completed" {
		t.Fatalf("got status %q", history.Status)
	}
	if len(history.Contents) != 2 {
		t.Fatalf("expected user+assistant turns, got %d", len(history.Contents))
	}
	if !strings.Contains(history.Contents[0].Content, "<user_input>hello</user_input>") {
		t.Fatalf("user turn missing input wrapper: %q", history.Contents[0].Content)
	}
}

func TestAgentRunToolLoop(t *testing.T) {
	llm := &replayLLM{t: t, replies: []string{
		`<tool_call><tool_name>double</tool_name><parameters>{"n": 21}</parameters></tool_call>`,
		"<response>the answer is 42</response>\n<task_status>completed</task_status>",
	}}
	agent := NewAgent("calc", "a calculator", "You calculate.", llm)

	registry := NewToolRegistry()
	type doubleInput struct {
		N int `json:"n"`
	}
	err := registry.RegisterFunc("double", "doubles a number", func(ctx context.Context, in doubleInput) (int, error) {
		return in.N * 2, nil
	})
	if err != nil {
		t.Fatalf("RegisterFunc: %v", err)
	}
	if err := agent.RegisterTool(registry, "double"); err != nil {
		t.Fatalf("RegisterTool: %v", err)
	}

	history := NewTaskHistory()
	out, err := agent.Run(context.Background(), history, LLMInput{Text: "double 21"})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if out.Text != "the answer is 42" {
		t.Fatalf("got %q", out.Text)
	}

	var sawToolResult bool
	for _, c := range history.Contents {
		if strings.Contains(c.Content, "<tool_result>") && strings.Contains(c.Content, "42") {
			sawToolResult = true
		}
	}
	if !sawToolResult {
		t.Fatal("tool result turn missing from history")
	}
}

func TestAgentRunDelegates(t *testing.T) {
	subLLM := &replayLLM{t: t, replies: []string{
		"<response>sub says hi</response>\n<task_status>completed</task_status>",
	}}
	sub := NewAgent("sub_agent", "a sub agent", "You are the sub.", subLLM)

	mainLLM := &replayLLM{t: t, replies: []string{
		"<agent_call><agent_name>sub_agent</agent_name><input>say hi</input></agent_call>",
		"<response>done</response>\n<task_status>completed</task_status>",
	}}
	agent := NewAgent("main", "the coordinator", "You coordinate.", mainLLM)
	agent.RegisterAgent(sub)

	history := NewTaskHistory()
	out, err := agent.Run(context.Background(), history, LLMInput{Text: "go"})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if out.Text != "done" {
		t.Fatalf("got %q", out.Text)
	}
	if history.AgentsHistory["sub_agent"] == nil {
		t.Fatal("sub-agent history not recorded")
	}
	if fmt.Sprint(history.AgentsHistory["sub_agent"].Status) != "completed" {
		t.Fatalf("sub status %q", history.AgentsHistory["sub_agent"].Status)
	}
}

func TestAgentRunRetriesMissingResponseTag(t *testing.T) {
	llm := &replayLLM{t: t, replies: []string{
		"I forgot the tags, oops",
		"<response>fixed</response>\n<task_status>in_progress</task_status>",
	}}
	agent := NewAgent("helper", "a helper", "You help.", llm)

	out, err := agent.Run(context.Background(), NewTaskHistory(), LLMInput{Text: "hello"})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if out.Text != "fixed" {
		t.Fatalf("got %q", out.Text)
	}
	if len(llm.inputs) != 2 {
		t.Fatalf("expected one corrective round trip, got %d calls", len(llm.inputs))
	}
}

func TestAgentRunFailsAfterSecondMalformedReply(t *testing.T) {
	llm := &replayLLM{t: t, replies: []string{
		"still no tags",
		"and again no tags",
	}}
	agent := NewAgent("helper", "a helper", "You help.", llm)

	if _, err := agent.Run(context.Background(), NewTaskHistory(), LLMInput{Text: "hello"}); err == nil {
		t.Fatal("expected an error after the corrective retry failed")
	}
}
