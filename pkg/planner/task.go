// Package planner defines the planner's record types and their
// creation-time validation rules.
package planner

import (
	"fmt"
	"strings"
)

// Priority ranks how urgent a task is.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Priorities returns the supported priorities in ascending order.
func Priorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh}
}

// ParsePriority converts a string to a Priority. The empty string maps to
// the default, PriorityMedium.
func ParsePriority(raw string) (Priority, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return PriorityMedium, nil
	}
	for _, p := range Priorities() {
		if strings.EqualFold(s, string(p)) {
			return p, nil
		}
	}
	return PriorityMedium, fmt.Errorf("planner: unknown priority %q", raw)
}

// DefaultCategory is assigned when a task draft carries no category.
const DefaultCategory = "Personal"

// Categories is the suggested category set. Storage accepts any free-form
// category; this list only feeds pickers and filters.
func Categories() []string {
	return []string{"Personal", "Work", "Health", "Social", "Admin"}
}

// Task is a single to-do item. Only Completed changes after creation.
type Task struct {
	ID        string   `json:"id"`
	Text      string   `json:"text"`
	Completed bool     `json:"completed"`
	Priority  Priority `json:"priority"`
	Category  string   `json:"category"`
}

// TaskDraft is user input destined to become a Task.
type TaskDraft struct {
	Text     string
	Priority Priority
	Category string
}

// NewTask validates a draft and mints the record. ok is false when the
// trimmed text is empty; the caller must then drop the draft silently.
func NewTask(d TaskDraft) (Task, bool) {
	if strings.TrimSpace(d.Text) == "" {
		return Task{}, false
	}
	t := Task{
		ID:       NewID(),
		Text:     d.Text,
		Priority: d.Priority,
		Category: d.Category,
	}
	if t.Priority == "" {
		t.Priority = PriorityMedium
	}
	if strings.TrimSpace(t.Category) == "" {
		t.Category = DefaultCategory
	}
	return t, true
}
