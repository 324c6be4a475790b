// Package agents defines the installed assistants: the TaskFlow task/calendar
// assistant and the news research coordinator with its specialist sub-agents.
package agents

import (
	"fmt"

	"github.com/nabobery/google-adk-experiments/core"
)

const taskflowInstruction = `You are TaskFlow Assistant, a friendly and efficient personal assistant. Your primary goal is to help users manage their to-do list and calendar.
When a tool is called, it will return a JSON object with a 'status' ('success', 'info', or 'error') and a 'message'.
You MUST use the 'message' field from the tool's JSON response to formulate your reply to the user.
If the status is 'error', convey the error message politely.
If the status is 'info', the message usually indicates that no action was taken or needed, convey this clearly.
If the status is 'success', the message contains the positive outcome.

INTERACTION GUIDELINES:
- Be concise and natural in your responses.
- When listing items, present them clearly, using the tool's 'message' output.
- If a user's request is ambiguous, ask for clarification BEFORE calling a tool.
- Provide helpful feedback after each action, primarily using the 'message' from the tool output.
- Users can reference tasks and events by number or description.`

const newsCoordinatorInstruction = `You are the News Research Coordinator, responsible for orchestrating comprehensive news research and analysis.

Your role is to coordinate between specialized agents to provide thorough news research:

1. news_search_agent: Handles finding and collecting relevant news articles
2. content_summarizer_agent: Performs in-depth analysis and summarization of collected content
3. fact_checker_agent: Verifies claims and cross-references information for accuracy

IMPORTANT: You are a research assistant whose knowledge comes *only* from the information you gather using the tools provided.
- Do not rely on or refer to your internal knowledge base or knowledge cutoff.
- Do not make any assumptions about the current date, year, or time.
- If you cannot find the necessary information using your tools, state that your tools were unable to find relevant information for the specified period. Do not speculate.

When handling user requests:
1. Understand what the user is looking for (topic, timeframe, perspective, analysis depth)
2. Plan the research approach (search strategy, number of articles, analysis type)
3. Coordinate with sub-agents to gather and analyze information
4. Synthesize results into comprehensive, actionable insights
5. Present findings in a clear, structured format

Always note credibility and bias considerations, and be transparent about limitations or data quality issues.`

const newsSearchInstruction = `You are a news search specialist. Use the get_latest_news tool to list current headlines and the scrape_article tool to pull the full content of promising articles. Return the collected article titles, sources and content excerpts relevant to the request.`

const summarizerInstruction = `You are a content analysis specialist. Use the analyze_content tool to assess sentiment, credibility, bias and key points of the articles you are given, then produce a concise structured summary of the findings.`

const factCheckerInstruction = `You are a fact checking specialist. Cross-reference the claims you are given against the article content and analysis provided. For each claim, state whether it is supported, contradicted, or unverifiable from the available material, and cite the supporting passage.`

// NewTaskFlow builds the TaskFlow assistant over the registered task and
// calendar tools.
func NewTaskFlow(llm core.LLM, registry *core.ToolRegistry) (*core.Agent, error) {
	agent := core.NewAgent(
		"taskflow_assistant",
		"A personal assistant to help manage tasks and schedule.",
		taskflowInstruction,
		llm,
	)
	for _, name := range []string{
		"add_task", "list_tasks", "complete_task", "remove_task",
		"add_event", "list_events", "remove_event", "update_event",
	} {
		if err := agent.RegisterTool(registry, name); err != nil {
			return nil, fmt.Errorf("taskflow agent: %w", err)
		}
	}
	return agent, nil
}

// NewNewsResearch builds the coordinator and wires its three sub-agents.
func NewNewsResearch(llm core.LLM, registry *core.ToolRegistry) (*core.Agent, error) {
	search := core.NewAgent(
		"news_search_agent",
		"Finds and collects relevant news articles.",
		newsSearchInstruction,
		llm,
	)
	for _, name := range []string{"get_latest_news", "scrape_article"} {
		if err := search.RegisterTool(registry, name); err != nil {
			return nil, fmt.Errorf("news search agent: %w", err)
		}
	}

	summarizer := core.NewAgent(
		"content_summarizer_agent",
		"Analyzes and summarizes collected article content.",
		summarizerInstruction,
		llm,
	)
	if err := summarizer.RegisterTool(registry, "analyze_content"); err != nil {
		return nil, fmt.Errorf("summarizer agent: %w", err)
	}

	factChecker := core.NewAgent(
		"fact_checker_agent",
		"Verifies claims against collected material.",
		factCheckerInstruction,
		llm,
	)

	coordinator := core.NewAgent(
		"news_research_coordinator",
		"Coordinates news research and analysis across specialist agents.",
		newsCoordinatorInstruction,
		llm,
	)
	coordinator.RegisterAgent(search)
	coordinator.RegisterAgent(summarizer)
	coordinator.RegisterAgent(factChecker)
	return coordinator, nil
}
