package core

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
)

var systemAgentContext = `
You are an AI assistant designed to process user input and maintain task-specific chat history. Your goal is to provide appropriate responses while keeping track of the current task status.

You will receive one input variables:
<user_input>
{{USER_INPUT}}
</user_input>

agent specific system context as follows
<agent_system_context>
{{agent_system_context}}
</agent_system_context>

Follow these steps to process the input and instruction and generate the appropriate output:

1. Read and understand the user input provided in the <user_input> tags.

2. Process the user input and think step by step to formulate right response.

3. generate an appropriate response based on the thinking and current task .

4. put your thinking between the <thinking></thinking> tag

5. After generating your response, you must include a task status update. The task status should be one of the following:
   - "in_progress": If the current task is ongoing and requires further interaction.
   - "completed": If the current task has been finished and no further interaction is needed.

6. Format your output as follows:
   <response>
   [Your response to the user input goes here]
   </response>

   <task_status>[task status: either "in_progress" or "completed"]</task_status>

Remember to always include both the <response> and <task_status> tags in your output. The task status will help determine when to reset the chat history for the next task.
`

const correctionPrompt = "it look like response tag not properly completed.correct the error silently."

type ToolResult struct {
	ToolName string
	Output   string
}

type AgentResult struct {
	AgentName string
	Output    string
}

func NewTaskHistory() *TaskHistory {
	return &TaskHistory{AgentsHistory: make(map[string]*TaskHistory)}
}

type TaskHistory struct {
	ID            string                  `json:"id"`
	TaskID        int64                   `json:"taskId"`
	Contents      []ChatContent           `json:"contents"`
	Status        string                  `json:"status"`
	Stats         Stats                   `json:"stats"`
	AgentsHistory map[string]*TaskHistory `json:"agentsHistory"`
}

// Agent runs a tool-calling conversation loop against an LLM. Tools come from
// an explicit registry subset; sub-agents are other in-process agents the model
// can delegate to.
type Agent struct {
	Name          string
	Description   string
	SystemContext string
	LLM           LLM

	tools     map[string]ToolExecutor
	subAgents map[string]*Agent
}

func NewAgent(name string, description string, systemContext string, llm LLM) *Agent {
	return &Agent{
		Name:          name,
		Description:   description,
		SystemContext: systemContext,
		LLM:           llm,
		tools:         make(map[string]ToolExecutor),
		subAgents:     make(map[string]*Agent),
	}
}

func (agent *Agent) RegisterTool(registry *ToolRegistry, name string) error {
	tool := registry.Get(name)
	if tool == nil {
		return fmt.Errorf("tool %s not found", name)
	}
	agent.tools[name] = tool
	return nil
}

func (agent *Agent) RegisterAgent(sub *Agent) {
	agent.subAgents[sub.Name] = sub
}

func (agent *Agent) toolDescriptors() []ToolDescriptor {
	var list []ToolDescriptor
	for _, t := range agent.tools {
		list = append(list, t.GetToolDescriptor())
	}
	return list
}

func (agent *Agent) agentDescriptors() []AgentDescriptor {
	var list []AgentDescriptor
	for _, a := range agent.subAgents {
		list = append(list, AgentDescriptor{Name: a.Name, Description: a.Description})
	}
	return list
}

func (agent *Agent) Run(ctx context.Context, taskHistory *TaskHistory, input LLMInput) (LLMOutput, error) {
	systemContext := ReplaceLabels(systemAgentContext, map[string]string{"agent_system_context": ReplaceLabels(agent.SystemContext, input.Labels)})

	tools := agent.toolDescriptors()
	agents := agent.agentDescriptors()
	if len(tools) > 0 || len(agents) > 0 {
		systemContext = systemContext + "\n" + GetToolPrompt(tools, agents)
	}

	input.Text = fmt.Sprintf("<user_input>%s</user_input>", input.Text)
	out, err := agent.run(ctx, systemContext, taskHistory, input)
	if err != nil {
		return LLMOutput{}, err
	}

	taskHistory.Stats = out.Stats
	return out, nil
}

func (agent *Agent) run(ctx context.Context, systemContext string, taskHistory *TaskHistory, input LLMInput) (LLMOutput, error) {
	output, err := agent.LLM.Generate(ctx, systemContext, taskHistory.Contents, input)
	if err != nil {
		return LLMOutput{}, err
	}
	if input.Text != "" {
		taskHistory.Contents = append(taskHistory.Contents, NewContent("user", input.Text))
	}

	toolCalls, err := ExtractToolCalls(output.Text)
	if err != nil {
		return LLMOutput{}, err
	}
	var results []ToolResult
	for _, toolCall := range toolCalls {
		log.Printf("agent %s: tool call %s", agent.Name, toolCall.ToolName)
		ret, err := agent.executeTool(ctx, toolCall.ToolName, toolCall.Parameters)
		var out = ""
		if err != nil {
			out = err.Error()
		} else {
			out = ret
		}
		results = append(results, ToolResult{
			ToolName: toolCall.ToolName,
			Output:   out,
		})
	}

	agentCalls, err := ExtractAgentCalls(output.Text)
	if err != nil {
		return LLMOutput{}, err
	}
	var agentResults []AgentResult
	for _, agentCall := range agentCalls {
		log.Printf("agent %s: delegate to %s", agent.Name, agentCall.AgentName)
		ret, err := agent.executeAgent(ctx, agentCall.AgentName, taskHistory, LLMInput{
			SessionKey: input.SessionKey,
			Text:       agentCall.Input,
		})
		var out = ""
		if err != nil {
			out = err.Error()
		} else {
			out = ret.Text
		}
		agentResults = append(agentResults, AgentResult{
			AgentName: agentCall.AgentName,
			Output:    out,
		})
	}

	taskHistory.Contents = append(taskHistory.Contents, NewContent("assistant", output.Text))
	if len(results) > 0 {
		resultsStr, err := json.Marshal(results)
		if err != nil {
			return LLMOutput{}, err
		}
		taskHistory.Contents = append(taskHistory.Contents, NewContent("user", "<tool_result>"+string(resultsStr)+"</tool_result>"))
		return agent.run(ctx, systemContext, taskHistory, LLMInput{})
	}

	if len(agentResults) > 0 {
		resultsStr, err := json.Marshal(agentResults)
		if err != nil {
			return LLMOutput{}, err
		}
		taskHistory.Contents = append(taskHistory.Contents, NewContent("user", "<agent_result>"+string(resultsStr)+"</agent_result>"))
		return agent.run(ctx, systemContext, taskHistory, LLMInput{})
	}

	response := extractTagContent(strings.TrimSpace(output.Text), "response")
	if response == "" {
		// One corrective round trip; a second malformed reply is a hard error.
		if input.Text == correctionPrompt {
			return LLMOutput{}, fmt.Errorf("error processing your request,please try again later")
		}
		log.Printf("agent %s: response tag missing, requesting correction", agent.Name)
		return agent.run(ctx, systemContext, taskHistory, LLMInput{Text: correctionPrompt})
	}
	status := extractTagContent(strings.TrimSpace(output.Text), "task_status")
	if status == "" {
		return LLMOutput{}, fmt.Errorf("error processing your request,please try again later")
	}
	taskHistory.Status = strings.TrimSpace(status)

	output.Text = response
	return output, nil
}

func (agent *Agent) executeTool(ctx context.Context, name string, input map[string]any) (string, error) {
	executor := agent.tools[name]
	if executor == nil {
		return "", fmt.Errorf("tool %s not found", name)
	}
	b, err := json.Marshal(input)
	if err != nil {
		return "", err
	}
	return executor.Execute(ctx, string(b))
}

func (agent *Agent) executeAgent(ctx context.Context, name string, taskHistory *TaskHistory, input LLMInput) (LLMOutput, error) {
	sub := agent.subAgents[name]
	if sub == nil {
		return LLMOutput{}, fmt.Errorf("agent %s not found", name)
	}
	subHistory := taskHistory.AgentsHistory[name]
	if subHistory == nil {
		subHistory = NewTaskHistory()
		taskHistory.AgentsHistory[name] = subHistory
	}
	return sub.Run(ctx, subHistory, input)
}

// extractTagContent joins the inner text of every occurrence of the given tag.
func extractTagContent(s, tag string) string {
	var results []string
	openTag := fmt.Sprintf("<%s>", tag)
	closeTag := fmt.Sprintf("</%s>", tag)

	for {
		start := strings.Index(s, openTag)
		if start == -1 {
			break
		}
		end := strings.Index(s[start:], closeTag)
		if end == -1 {
			break
		}
		results = append(results, s[start+len(openTag):start+end])
		s = s[start+end+len(closeTag):]
	}

	return strings.Join(results, "\n")
}
