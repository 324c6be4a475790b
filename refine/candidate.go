package refine

import (
	"fmt"
	"strings"
)

// ParseCandidate extracts a Title/Body pair from model output in the form
//
//	Title: ...
//	Body: ... (may span multiple lines)
//
// It returns ErrMalformedResponse when the markers are absent or a required
// field comes back empty.
func ParseCandidate(raw string) (Candidate, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return Candidate{}, ErrMalformedResponse
	}

	titleIdx := strings.Index(text, "Title:")
	bodyIdx := strings.Index(text, "Body:")
	if titleIdx == -1 || bodyIdx == -1 || bodyIdx < titleIdx {
		return Candidate{}, ErrMalformedResponse
	}

	title := strings.TrimSpace(text[titleIdx+len("Title:") : bodyIdx])
	body := strings.TrimSpace(text[bodyIdx+len("Body:"):])
	if title == "" || body == "" {
		return Candidate{}, ErrMalformedResponse
	}

	return Candidate{Title: title, Body: body}, nil
}

// Render formats the candidate back into the Title/Body wire form used in
// prompts.
func (c Candidate) Render() string {
	return fmt.Sprintf("Title: %s\nBody: %s", c.Title, c.Body)
}

// checkStructure enforces the minimal structural contract every drafter and
// reviser output must satisfy.
func (c Candidate) checkStructure() error {
	if strings.TrimSpace(c.Title) == "" {
		return fmt.Errorf("%w: empty title", ErrStructuralViolation)
	}
	if strings.TrimSpace(c.Body) == "" {
		return fmt.Errorf("%w: empty body", ErrStructuralViolation)
	}
	return nil
}
