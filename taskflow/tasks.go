package taskflow

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// AddTask appends a new pending task to the state.
func AddTask(state *State, description string) Result {
	description = strings.TrimSpace(description)
	if description == "" {
		return Result{Status: StatusError, Message: "Please provide a valid task description."}
	}

	state.Tasks = append(state.Tasks, Task{
		ID:          uuid.NewString(),
		Description: description,
	})
	return Result{
		Status:  StatusSuccess,
		Message: fmt.Sprintf("Added task #%d: '%s' to your to-do list.", len(state.Tasks), description),
	}
}

// ListTasks formats the current task list with a pending/completed summary.
func ListTasks(state State) Result {
	if len(state.Tasks) == 0 {
		return Result{Status: StatusInfo, Message: "Your to-do list is empty. Add some tasks to get started!"}
	}

	var b strings.Builder
	b.WriteString("Your Tasks:")
	completed := 0
	for i, task := range state.Tasks {
		marker := "[ ]"
		if task.Done {
			marker = "[x]"
			completed++
		}
		fmt.Fprintf(&b, "\n  %d. %s %s", i+1, marker, task.Description)
	}
	pending := len(state.Tasks) - completed
	fmt.Fprintf(&b, "\n\nSummary: %d pending, %d completed (%d total)", pending, completed, len(state.Tasks))

	return Result{Status: StatusSuccess, Message: b.String()}
}

// CompleteTask marks the referenced task done.
func CompleteTask(state *State, reference string) Result {
	if len(state.Tasks) == 0 {
		return Result{Status: StatusInfo, Message: "No tasks available to complete. Add some tasks first!"}
	}

	index := findTask(state.Tasks, reference)
	if index == -1 {
		return Result{
			Status:  StatusError,
			Message: fmt.Sprintf("Couldn't find task '%s'. Try using the task number (1-%d) or part of the description.", reference, len(state.Tasks)),
		}
	}

	task := &state.Tasks[index]
	if task.Done {
		return Result{Status: StatusInfo, Message: fmt.Sprintf("Task '%s' is already completed!", task.Description)}
	}

	task.Done = true
	return Result{Status: StatusSuccess, Message: fmt.Sprintf("Completed task #%d: '%s'", index+1, task.Description)}
}

// RemoveTask deletes the referenced task.
func RemoveTask(state *State, reference string) Result {
	if len(state.Tasks) == 0 {
		return Result{Status: StatusInfo, Message: "No tasks available to remove. Your to-do list is empty!"}
	}

	index := findTask(state.Tasks, reference)
	if index == -1 {
		return Result{
			Status:  StatusError,
			Message: fmt.Sprintf("Couldn't find task '%s'. Try using the task number (1-%d) or part of the description.", reference, len(state.Tasks)),
		}
	}

	removed := state.Tasks[index].Description
	state.Tasks = append(state.Tasks[:index], state.Tasks[index+1:]...)
	return Result{Status: StatusSuccess, Message: fmt.Sprintf("Removed task: '%s'", removed)}
}

func findTask(tasks []Task, reference string) int {
	return findByReference(len(tasks), func(i int) string { return tasks[i].Description }, reference)
}
