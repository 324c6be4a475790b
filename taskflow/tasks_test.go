package taskflow

import (
	"strings"
	"testing"
)

func TestAddTask(t *testing.T) {
	var state State

	res := AddTask(&state, "buy milk")
	if res.Status != StatusSuccess {
		t.Fatalf("got %+v", res)
	}
	if len(state.Tasks) != 1 || state.Tasks[0].Description != "buy milk" {
		t.Fatalf("state: %+v", state)
	}
	if state.Tasks[0].ID == "" {
		t.Fatal("task got no id")
	}

	if res := AddTask(&state, "   "); res.Status != StatusError {
		t.Fatalf("blank description accepted: %+v", res)
	}
	if len(state.Tasks) != 1 {
		t.Fatal("failed add must not change state")
	}
}

func TestListTasks(t *testing.T) {
	if res := ListTasks(State{}); res.Status != StatusInfo {
		t.Fatalf("empty list: %+v", res)
	}

	state := State{Tasks: []Task{
		{Description: "buy milk"},
		{Description: "walk the dog", Done: true},
	}}
	res := ListTasks(state)
	if res.Status != StatusSuccess {
		t.Fatalf("got %+v", res)
	}
	if !strings.Contains(res.Message, "1. [ ] buy milk") {
		t.Fatalf("message: %q", res.Message)
	}
	if !strings.Contains(res.Message, "2. [x] walk the dog") {
		t.Fatalf("message: %q", res.Message)
	}
	if !strings.Contains(res.Message, "1 pending, 1 completed (2 total)") {
		t.Fatalf("message: %q", res.Message)
	}
}

func TestCompleteTask(t *testing.T) {
	state := State{Tasks: []Task{
		{Description: "buy milk"},
		{Description: "walk the dog"},
	}}

	// By 1-based number.
	if res := CompleteTask(&state, "2"); res.Status != StatusSuccess {
		t.Fatalf("got %+v", res)
	}
	if !state.Tasks[1].Done {
		t.Fatal("task 2 not marked done")
	}

	// By case-insensitive substring.
	if res := CompleteTask(&state, "MILK"); res.Status != StatusSuccess {
		t.Fatalf("got %+v", res)
	}
	if !state.Tasks[0].Done {
		t.Fatal("task 1 not marked done")
	}

	// Already done is informational, not an error.
	if res := CompleteTask(&state, "milk"); res.Status != StatusInfo {
		t.Fatalf("got %+v", res)
	}

	if res := CompleteTask(&state, "no such task"); res.Status != StatusError {
		t.Fatalf("got %+v", res)
	}
	if res := CompleteTask(&State{}, "1"); res.Status != StatusInfo {
		t.Fatalf("empty state: %+v", res)
	}
}

func TestRemoveTask(t *testing.T) {
	state := State{Tasks: []Task{
		{Description: "buy milk"},
		{Description: "walk the dog"},
	}}

	res := RemoveTask(&state, "1")
	if res.Status != StatusSuccess {
		t.Fatalf("got %+v", res)
	}
	if len(state.Tasks) != 1 || state.Tasks[0].Description != "walk the dog" {
		t.Fatalf("state: %+v", state)
	}

	if res := RemoveTask(&state, "99"); res.Status != StatusError {
		t.Fatalf("got %+v", res)
	}
	if res := RemoveTask(&State{}, "1"); res.Status != StatusInfo {
		t.Fatalf("empty state: %+v", res)
	}
}

func TestFindByReference(t *testing.T) {
	items := []string{"alpha one", "beta two", "gamma three"}
	text := func(i int) string { return items[i] }

	cases := []struct {
		ref  string
		want int
	}{
		{"1", 0},
		{"3", 2},
		{" 2 ", 1},
		{"0", -1},
		{"4", -1},
		{"BETA", 1},
		{"gamma", 2},
		{"missing", -1},
	}
	for _, tc := range cases {
		if got := findByReference(len(items), text, tc.ref); got != tc.want {
			t.Fatalf("findByReference(%q) = %d, want %d", tc.ref, got, tc.want)
		}
	}
}
