package taskflow

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ParseNaturalDate normalizes natural-language date phrases (today, tomorrow,
// next week, morning/afternoon/evening) relative to now. Anything it does not
// recognize is returned verbatim.
func ParseNaturalDate(now time.Time, input string) string {
	lower := strings.ToLower(strings.TrimSpace(input))

	timeStr := ""
	switch {
	case strings.Contains(lower, "morning"):
		timeStr = " at 9:00 AM"
	case strings.Contains(lower, "afternoon"):
		timeStr = " at 2:00 PM"
	case strings.Contains(lower, "evening"):
		timeStr = " at 6:00 PM"
	}

	switch {
	case strings.Contains(lower, "today"):
		return fmt.Sprintf("Today%s (%s%s)", timeStr, now.Format("2006-01-02"), strings.Replace(timeStr, " at ", " ", 1))
	case strings.Contains(lower, "tomorrow"):
		tomorrow := now.AddDate(0, 0, 1)
		return fmt.Sprintf("Tomorrow%s (%s%s)", timeStr, tomorrow.Format("2006-01-02"), strings.Replace(timeStr, " at ", " ", 1))
	case strings.Contains(lower, "next week"):
		daysUntilMonday := (8 - int(now.Weekday())) % 7
		if daysUntilMonday == 0 {
			daysUntilMonday = 7
		}
		nextWeekDay := now.AddDate(0, 0, daysUntilMonday)
		return fmt.Sprintf("Next week (around %s)%s", nextWeekDay.Format("Monday, 2006-01-02"), timeStr)
	}

	return input
}

// AddEvent schedules a new event, normalizing the date phrase with now.
func AddEvent(state *State, now time.Time, summary, dateTime string) Result {
	summary = strings.TrimSpace(summary)
	if summary == "" {
		return Result{Status: StatusError, Message: "Please provide a valid event summary."}
	}
	if strings.TrimSpace(dateTime) == "" {
		return Result{Status: StatusError, Message: "Please provide a date and time for the event."}
	}

	formatted := ParseNaturalDate(now, dateTime)
	state.Events = append(state.Events, Event{
		ID:       uuid.NewString(),
		Summary:  summary,
		DateTime: formatted,
	})
	return Result{
		Status:  StatusSuccess,
		Message: fmt.Sprintf("Added event #%d: '%s' scheduled for %s", len(state.Events), summary, formatted),
	}
}

// ListEvents formats the calendar. The timeframe filter is accepted but all
// events are shown until stored dates become machine-comparable.
func ListEvents(state State, timeframe string) Result {
	if len(state.Events) == 0 {
		return Result{Status: StatusInfo, Message: "Your calendar is empty. Add some events to get started!"}
	}

	var b strings.Builder
	b.WriteString("Your Calendar Events:")
	for i, event := range state.Events {
		fmt.Fprintf(&b, "\n  %d. %s - %s", i+1, event.Summary, event.DateTime)
	}
	fmt.Fprintf(&b, "\n\nTotal events: %d", len(state.Events))
	if timeframe != "" && timeframe != "all" {
		fmt.Fprintf(&b, "\n(Timeframe filter '%s' applied - currently shows all)", timeframe)
	}

	return Result{Status: StatusSuccess, Message: b.String()}
}

// RemoveEvent deletes the referenced event.
func RemoveEvent(state *State, reference string) Result {
	if len(state.Events) == 0 {
		return Result{Status: StatusInfo, Message: "No events available to remove. Your calendar is empty!"}
	}

	index := findEvent(state.Events, reference)
	if index == -1 {
		return Result{
			Status:  StatusError,
			Message: fmt.Sprintf("Couldn't find event '%s'. Try using the event number (1-%d) or part of the summary.", reference, len(state.Events)),
		}
	}

	removed := state.Events[index].Summary
	state.Events = append(state.Events[:index], state.Events[index+1:]...)
	return Result{Status: StatusSuccess, Message: fmt.Sprintf("Removed event: '%s'", removed)}
}

// UpdateEvent changes the referenced event's summary and/or date.
func UpdateEvent(state *State, now time.Time, reference, newSummary, newDateTime string) Result {
	if len(state.Events) == 0 {
		return Result{Status: StatusInfo, Message: "No events available to update. Your calendar is empty!"}
	}

	index := findEvent(state.Events, reference)
	if index == -1 {
		return Result{
			Status:  StatusError,
			Message: fmt.Sprintf("Couldn't find event '%s'. Try using the event number (1-%d) or part of the summary.", reference, len(state.Events)),
		}
	}

	if strings.TrimSpace(newSummary) == "" && strings.TrimSpace(newDateTime) == "" {
		return Result{Status: StatusInfo, Message: "No changes specified. Please provide a new summary or date/time to update."}
	}

	event := &state.Events[index]
	if s := strings.TrimSpace(newSummary); s != "" {
		event.Summary = s
	}
	if d := strings.TrimSpace(newDateTime); d != "" {
		event.DateTime = ParseNaturalDate(now, d)
	}
	return Result{
		Status:  StatusSuccess,
		Message: fmt.Sprintf("Updated event #%d: '%s' scheduled for %s", index+1, event.Summary, event.DateTime),
	}
}

func findEvent(events []Event, reference string) int {
	return findByReference(len(events), func(i int) string { return events[i].Summary }, reference)
}
