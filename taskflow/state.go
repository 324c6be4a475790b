// Package taskflow implements the task and calendar management behind the
// TaskFlow assistant. Every operation takes the session state explicitly and
// reports a structured result the agent relays to the user; there is no
// ambient shared state.
package taskflow

import (
	"strconv"
	"strings"
)

type Task struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Done        bool   `json:"done"`
}

type Event struct {
	ID       string `json:"id"`
	Summary  string `json:"summary"`
	DateTime string `json:"date_time"`
}

// State is one session's task list and calendar.
type State struct {
	Tasks  []Task  `json:"tasks"`
	Events []Event `json:"events"`
}

// Result statuses understood by the assistant's instruction: success means the
// action happened, info means nothing needed doing, error means it failed.
const (
	StatusSuccess = "success"
	StatusInfo    = "info"
	StatusError   = "error"
)

// Result is the structured outcome every tool hands back to the model.
type Result struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// findByReference resolves a user reference that is either a 1-based item
// number or a case-insensitive substring of the item's text.
func findByReference(count int, text func(int) string, reference string) int {
	if n, err := strconv.Atoi(strings.TrimSpace(reference)); err == nil {
		if n >= 1 && n <= count {
			return n - 1
		}
	}

	lower := strings.ToLower(reference)
	for i := 0; i < count; i++ {
		if strings.Contains(strings.ToLower(text(i)), lower) {
			return i
		}
	}
	return -1
}
