package refine

import (
	"strings"

	"github.com/nabobery/google-adk-experiments/core"
)

var drafterPrompt = `You are a Reddit content creator.
User's topic/URL: '{{user_topic_or_url}}'
Target Subreddit: '{{target_subreddit}}'
Subreddit Guidelines: '{{subreddit_rules_and_tone}}'
Status from info gathering: '{{info_status}}'

Task: Generate a first draft of a Reddit post (Title and Body) based on the user's topic/URL.

If '{{info_status}}' is '` + CompletionPhraseUnavailable + `' or if 'Subreddit Guidelines' are minimal/empty, create a general, high-quality Reddit post draft.
Otherwise (if guidelines are available), try to incorporate them loosely in this initial draft.

Output *only* the draft text in the format:
Title: [Your Title]
Body: [Your Body content, can be multi-line]

Do not add any conversational fluff, explanations, or markdown formatting for the title/body tags themselves.`

var criticPrompt = `You are a meticulous Reddit Quality Assurance Bot for the subreddit: '{{target_subreddit}}'.
Current Draft:
---
{{current_draft}}
---
Subreddit Guidelines (may be empty or indicate unavailability):
---
{{subreddit_rules_and_tone}}
---
Examples of Good Posts (may be empty):
---
{{good_post_examples}}
---

**Task:**
Evaluate the 'Current Draft'.

1.  If 'Subreddit Guidelines' are available and detailed:
    *   **Rule Adherence:** Check against explicit rules (character limits, flair needs, prohibited topics, post type).
    *   **Tone and Style:** Align with prevalent tone from guidelines/examples.
    *   **Content Appropriateness:** Relevance to subreddit theme.
    *   **Readability/Formatting:** Reddit-friendly (paragraphs, Markdown use).
2.  If 'Subreddit Guidelines' are unavailable or very generic:
    *   Perform a general check: clear title/body, reasonable length, no spam, basic Reddit formatting.

**Output:**
- IF the draft meets criteria (specific or general, as applicable) and is suitable:
  Respond *exactly* with the phrase: "` + CompletionPhraseOK + `"
- ELSE (if issues exist):
  Provide concise, actionable feedback, one item per line. Prefix each with "Feedback: ".
  Examples:
  Feedback: Post exceeds character limit by X characters. (If rule known)
  Feedback: Tone is too formal for {{target_subreddit}}. (If style known)
  Feedback: Missing required [Flair]. (If rule known)
  Feedback: Content seems off-topic for {{target_subreddit}}. (If guidelines known)
  Feedback: Consider breaking up long paragraphs.

Output *only* the feedback OR the exact completion phrase. Do not add explanations.`

var reviserPrompt = `You are a Reddit Content Refinement Assistant.
Current Draft:
---
{{current_draft}}
---
Feedback:
---
{{feedback_items}}
---

**Task:**
Carefully apply ALL the feedback items to improve the 'Current Draft'.
Output *only* the refined document text in the format:
Title: [Your Title]
Body: [Your Body content, can be multi-line]
Do not add explanations or conversational fluff.`

// retryHint is appended on the single in-step retry after a malformed reply.
var retryHint = "\n\nYour previous reply did not match the required output format. Reply again following the format exactly, with no extra commentary."

func renderDrafterPrompt(goal, contextKey string, cr ContextResult) string {
	status := ""
	if !cr.Available {
		status = CompletionPhraseUnavailable
	}
	return core.ReplaceLabels(drafterPrompt, map[string]string{
		"user_topic_or_url":        goal,
		"target_subreddit":         contextKey,
		"subreddit_rules_and_tone": cr.Guidance,
		"info_status":              status,
	})
}

func renderCriticPrompt(cand Candidate, contextKey string, cr ContextResult) string {
	examples := "No examples available"
	if len(cr.Exemplars) > 0 {
		examples = strings.Join(cr.Exemplars, "\n")
	}
	guidance := cr.Guidance
	if !cr.Available {
		guidance = CompletionPhraseUnavailable
	}
	return core.ReplaceLabels(criticPrompt, map[string]string{
		"target_subreddit":         contextKey,
		"current_draft":            cand.Render(),
		"subreddit_rules_and_tone": guidance,
		"good_post_examples":       examples,
	})
}

func renderReviserPrompt(cand Candidate, items []string) string {
	return core.ReplaceLabels(reviserPrompt, map[string]string{
		"current_draft":  cand.Render(),
		"feedback_items": strings.Join(items, "\n"),
	})
}
