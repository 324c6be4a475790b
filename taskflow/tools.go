package taskflow

import (
	"context"
	"time"

	"github.com/nabobery/google-adk-experiments/core"
	"github.com/nabobery/google-adk-experiments/session"
)

const stateCollection = "taskflow:state"

type AddTaskInput struct {
	TaskDescription string `json:"task_description" jsonschema:"required" jsonschema_description:"Description of the task to add"`
}

type ListTasksInput struct {
}

type TaskReferenceInput struct {
	TaskReference string `json:"task_reference" jsonschema:"required" jsonschema_description:"Task number (e.g. '1') or part of the task description"`
}

type AddEventInput struct {
	Summary  string `json:"summary" jsonschema:"required" jsonschema_description:"Event summary"`
	DateTime string `json:"date_time" jsonschema:"required" jsonschema_description:"Date and time, natural language is fine (e.g. 'tomorrow morning')"`
}

type ListEventsInput struct {
	Timeframe string `json:"timeframe,omitempty" jsonschema_description:"Optional timeframe filter, default 'all'"`
}

type EventReferenceInput struct {
	EventReference string `json:"event_reference" jsonschema:"required" jsonschema_description:"Event number (e.g. '1') or part of the event summary"`
}

type UpdateEventInput struct {
	EventReference string `json:"event_reference" jsonschema:"required" jsonschema_description:"Event number (e.g. '1') or part of the event summary"`
	NewSummary     string `json:"new_summary,omitempty" jsonschema_description:"New event summary"`
	NewDateTime    string `json:"new_date_time,omitempty" jsonschema_description:"New date and time, natural language is fine"`
}

// Tools binds the task and calendar operations to per-session persisted
// state. Each invocation loads the caller's state, applies one operation and
// writes the state back.
type Tools struct {
	store *session.Store
	now   func() time.Time
}

func NewTools(store *session.Store) *Tools {
	return &Tools{store: store, now: time.Now}
}

func (t *Tools) withState(ctx context.Context, op func(state *State) Result) (Result, error) {
	collection := t.store.Collection(stateCollection)
	key := session.Key(ctx)

	var state State
	if _, err := collection.GetOne(key, &state); err != nil {
		return Result{}, err
	}

	result := op(&state)
	if result.Status == StatusSuccess {
		if err := collection.UpsertOne(key, state); err != nil {
			return Result{}, err
		}
	}
	return result, nil
}

func (t *Tools) addTask(ctx context.Context, input AddTaskInput) (Result, error) {
	return t.withState(ctx, func(state *State) Result {
		return AddTask(state, input.TaskDescription)
	})
}

func (t *Tools) listTasks(ctx context.Context, input ListTasksInput) (Result, error) {
	return t.withState(ctx, func(state *State) Result {
		return ListTasks(*state)
	})
}

func (t *Tools) completeTask(ctx context.Context, input TaskReferenceInput) (Result, error) {
	return t.withState(ctx, func(state *State) Result {
		return CompleteTask(state, input.TaskReference)
	})
}

func (t *Tools) removeTask(ctx context.Context, input TaskReferenceInput) (Result, error) {
	return t.withState(ctx, func(state *State) Result {
		return RemoveTask(state, input.TaskReference)
	})
}

func (t *Tools) addEvent(ctx context.Context, input AddEventInput) (Result, error) {
	return t.withState(ctx, func(state *State) Result {
		return AddEvent(state, t.now(), input.Summary, input.DateTime)
	})
}

func (t *Tools) listEvents(ctx context.Context, input ListEventsInput) (Result, error) {
	return t.withState(ctx, func(state *State) Result {
		return ListEvents(*state, input.Timeframe)
	})
}

func (t *Tools) removeEvent(ctx context.Context, input EventReferenceInput) (Result, error) {
	return t.withState(ctx, func(state *State) Result {
		return RemoveEvent(state, input.EventReference)
	})
}

func (t *Tools) updateEvent(ctx context.Context, input UpdateEventInput) (Result, error) {
	return t.withState(ctx, func(state *State) Result {
		return UpdateEvent(state, t.now(), input.EventReference, input.NewSummary, input.NewDateTime)
	})
}

// RegisterTools adds the TaskFlow tools to the registry, bound to store.
func RegisterTools(registry *core.ToolRegistry, store *session.Store) error {
	t := NewTools(store)
	for _, reg := range []struct {
		name        string
		description string
		handler     any
	}{
		{"add_task", "add a new task to the to-do list", t.addTask},
		{"list_tasks", "list all current tasks", t.listTasks},
		{"complete_task", "mark a task as completed", t.completeTask},
		{"remove_task", "remove a task from the to-do list", t.removeTask},
		{"add_event", "add a new calendar event", t.addEvent},
		{"list_events", "list calendar events", t.listEvents},
		{"remove_event", "remove a calendar event", t.removeEvent},
		{"update_event", "update an existing calendar event", t.updateEvent},
	} {
		if err := registry.RegisterFunc(reg.name, reg.description, reg.handler); err != nil {
			return err
		}
	}
	return nil
}
