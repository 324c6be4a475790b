package taskflow

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/nabobery/google-adk-experiments/core"
	"github.com/nabobery/google-adk-experiments/session"
)

func newTestTools(t *testing.T) *Tools {
	t.Helper()
	store, err := session.Open(filepath.Join(t.TempDir(), "sessions.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	tools := NewTools(store)
	tools.now = func() time.Time { return fixedNow }
	return tools
}

func TestToolsPersistAcrossInvocations(t *testing.T) {
	tools := newTestTools(t)
	ctx := session.WithKey(context.Background(), "alice")

	res, err := tools.addTask(ctx, AddTaskInput{TaskDescription: "buy milk"})
	if err != nil {
		t.Fatalf("addTask: %v", err)
	}
	if res.Status != StatusSuccess {
		t.Fatalf("got %+v", res)
	}

	res, err = tools.listTasks(ctx, ListTasksInput{})
	if err != nil {
		t.Fatalf("listTasks: %v", err)
	}
	if !strings.Contains(res.Message, "buy milk") {
		t.Fatalf("state did not persist: %q", res.Message)
	}
}

func TestToolsIsolateSessions(t *testing.T) {
	tools := newTestTools(t)
	alice := session.WithKey(context.Background(), "alice")
	bob := session.WithKey(context.Background(), "bob")

	if _, err := tools.addTask(alice, AddTaskInput{TaskDescription: "alice's task"}); err != nil {
		t.Fatalf("addTask: %v", err)
	}

	res, err := tools.listTasks(bob, ListTasksInput{})
	if err != nil {
		t.Fatalf("listTasks: %v", err)
	}
	if res.Status != StatusInfo {
		t.Fatalf("bob sees alice's tasks: %+v", res)
	}
}

func TestToolsDoNotPersistFailures(t *testing.T) {
	tools := newTestTools(t)
	ctx := session.WithKey(context.Background(), "alice")

	if _, err := tools.addTask(ctx, AddTaskInput{TaskDescription: "   "}); err != nil {
		t.Fatalf("addTask: %v", err)
	}

	res, err := tools.listTasks(ctx, ListTasksInput{})
	if err != nil {
		t.Fatalf("listTasks: %v", err)
	}
	if res.Status != StatusInfo {
		t.Fatalf("rejected task was persisted: %+v", res)
	}
}

func TestToolsCalendarUsesInjectedClock(t *testing.T) {
	tools := newTestTools(t)
	ctx := session.WithKey(context.Background(), "alice")

	if _, err := tools.addEvent(ctx, AddEventInput{Summary: "dentist", DateTime: "tomorrow"}); err != nil {
		t.Fatalf("addEvent: %v", err)
	}

	res, err := tools.listEvents(ctx, ListEventsInput{})
	if err != nil {
		t.Fatalf("listEvents: %v", err)
	}
	if !strings.Contains(res.Message, "2026-01-08") {
		t.Fatalf("date not normalized with the injected clock: %q", res.Message)
	}
}

func TestRegisterTools(t *testing.T) {
	store, err := session.Open(filepath.Join(t.TempDir(), "sessions.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	registry := core.NewToolRegistry()
	if err := RegisterTools(registry, store); err != nil {
		t.Fatalf("RegisterTools: %v", err)
	}

	for _, name := range []string{
		"add_task", "list_tasks", "complete_task", "remove_task",
		"add_event", "list_events", "remove_event", "update_event",
	} {
		if registry.Get(name) == nil {
			t.Fatalf("tool %s not registered", name)
		}
	}
}
