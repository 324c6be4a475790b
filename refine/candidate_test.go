package refine

import (
	"errors"
	"testing"
)

func TestParseCandidate(t *testing.T) {
	cases := []struct {
		name  string
		raw   string
		title string
		body  string
		err   bool
	}{
		{
			name:  "simple",
			raw:   "Title: Hello\nBody: World",
			title: "Hello",
			body:  "World",
		},
		{
			name:  "multiline body",
			raw:   "Title: Announcing mylib\nBody: First paragraph.\n\nSecond paragraph.",
			title: "Announcing mylib",
			body:  "First paragraph.\n\nSecond paragraph.",
		},
		{
			name:  "leading chatter before markers",
			raw:   "Here is the post:\nTitle: Hi\nBody: There",
			title: "Hi",
			body:  "There",
		},
		{name: "empty", raw: "", err: true},
		{name: "missing body marker", raw: "Title: Only a title", err: true},
		{name: "missing title marker", raw: "Body: Only a body", err: true},
		{name: "body before title", raw: "Body: b\nTitle: t", err: true},
		{name: "empty title", raw: "Title:\nBody: something", err: true},
		{name: "empty body", raw: "Title: something\nBody:", err: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cand, err := ParseCandidate(tc.raw)
			if tc.err {
				if !errors.Is(err, ErrMalformedResponse) {
					t.Fatalf("expected ErrMalformedResponse, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCandidate: %v", err)
			}
			if cand.Title != tc.title || cand.Body != tc.body {
				t.Fatalf("got %q / %q", cand.Title, cand.Body)
			}
		})
	}
}

func TestRenderRoundTrips(t *testing.T) {
	cand := Candidate{Title: "A title", Body: "A body", Version: 2}
	parsed, err := ParseCandidate(cand.Render())
	if err != nil {
		t.Fatalf("ParseCandidate: %v", err)
	}
	if parsed.Title != cand.Title || parsed.Body != cand.Body {
		t.Fatalf("round trip lost content: %+v", parsed)
	}
}
