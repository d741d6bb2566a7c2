package planner

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// EventType labels where a schedule event belongs in the day.
type EventType string

const (
	EventWork     EventType = "Work"
	EventPersonal EventType = "Personal"
	EventHealth   EventType = "Health"
	EventSocial   EventType = "Social"
)

// EventTypes returns the supported event types.
func EventTypes() []EventType {
	return []EventType{EventWork, EventPersonal, EventHealth, EventSocial}
}

// ParseEventType converts a string to an EventType. The empty string maps
// to the default, EventPersonal.
func ParseEventType(raw string) (EventType, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return EventPersonal, nil
	}
	for _, t := range EventTypes() {
		if strings.EqualFold(s, string(t)) {
			return t, nil
		}
	}
	return EventPersonal, fmt.Errorf("planner: unknown event type %q", raw)
}

const clockLayout = "15:04"

// ValidClock reports whether v is a zero-padded 24-hour HH:MM string.
// Zero padding matters: the schedule is ordered by plain string compare.
func ValidClock(v string) bool {
	if len(v) != len(clockLayout) {
		return false
	}
	_, err := time.Parse(clockLayout, v)
	return err == nil
}

// ScheduleEvent is a timed entry in the daily schedule. Immutable after
// creation; reordering happens by delete and re-add.
type ScheduleEvent struct {
	ID    string    `json:"id"`
	Time  string    `json:"time"`
	Title string    `json:"title"`
	Type  EventType `json:"type"`
}

// EventDraft is user input destined to become a ScheduleEvent.
type EventDraft struct {
	Time  string
	Title string
	Type  EventType
}

// NewEvent validates a draft and mints the record. Drafts with an empty
// title or a malformed time are dropped (ok=false).
func NewEvent(d EventDraft) (ScheduleEvent, bool) {
	if strings.TrimSpace(d.Title) == "" || !ValidClock(d.Time) {
		return ScheduleEvent{}, false
	}
	e := ScheduleEvent{
		ID:    NewID(),
		Time:  d.Time,
		Title: d.Title,
		Type:  d.Type,
	}
	if e.Type == "" {
		e.Type = EventPersonal
	}
	return e, true
}

// SortEvents orders events ascending by time. Lexicographic compare is
// correct for zero-padded HH:MM.
func SortEvents(events []ScheduleEvent) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Time < events[j].Time
	})
}

// SeedEvents is the schedule a brand-new planner starts with.
func SeedEvents() []ScheduleEvent {
	return []ScheduleEvent{
		{ID: "1", Time: "08:00", Title: "Morning Yoga", Type: EventHealth},
		{ID: "2", Time: "10:30", Title: "Deep Work Session", Type: EventWork},
		{ID: "3", Time: "13:00", Title: "Healthy Lunch", Type: EventHealth},
	}
}
