package refine

import "testing"

func TestParseVerdict(t *testing.T) {
	cases := []struct {
		name   string
		raw    string
		accept bool
		items  int
		ok     bool
	}{
		{name: "exact phrase", raw: "POST_OK", accept: true, ok: true},
		{name: "phrase with whitespace", raw: "  POST_OK\n", accept: true, ok: true},
		{name: "single feedback", raw: "Feedback: add a code sample", items: 1, ok: true},
		{
			name:  "multiple feedback lines",
			raw:   "Feedback: tone down the marketing\nFeedback: mention the license",
			items: 2,
			ok:    true,
		},
		{
			name:  "feedback amid chatter",
			raw:   "Here is my review.\nFeedback: shorten the title\nThanks.",
			items: 1,
			ok:    true,
		},
		// The phrase embedded in prose must not count as acceptance.
		{name: "phrase inside prose", raw: "I would say POST_OK overall", ok: false},
		{name: "freeform reply", raw: "Looks good to me!", ok: false},
		{name: "empty feedback item", raw: "Feedback:   ", ok: false},
		{name: "empty reply", raw: "", ok: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			verdict, ok := parseVerdict(tc.raw)
			if ok != tc.ok {
				t.Fatalf("ok = %v, want %v", ok, tc.ok)
			}
			if !tc.ok {
				return
			}
			if verdict.Accept != tc.accept {
				t.Fatalf("accept = %v, want %v", verdict.Accept, tc.accept)
			}
			if len(verdict.Items) != tc.items {
				t.Fatalf("got %d items: %v", len(verdict.Items), verdict.Items)
			}
			if verdict.Accept && len(verdict.Items) > 0 {
				t.Fatal("an accepting verdict must carry no feedback items")
			}
		})
	}
}
