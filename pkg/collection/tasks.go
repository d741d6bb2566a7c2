package collection

import (
	"strings"

	"tableflip.dev/melon/pkg/planner"
	"tableflip.dev/melon/pkg/store"
)

// TaskStore owns the to-do list. New tasks go to the head of the list.
type TaskStore struct {
	*Store[planner.Task]
}

// NewTasks builds the task store against the given gateway.
func NewTasks(gw store.Gateway) *TaskStore {
	return &TaskStore{Store: newStore(gw, store.KeyTasks, options[planner.Task]{
		id:    func(t planner.Task) string { return t.ID },
		place: prepend[planner.Task],
		restore: func(items []planner.Task) []planner.Task {
			kept := items[:0]
			for _, t := range items {
				if t.ID == "" || strings.TrimSpace(t.Text) == "" {
					continue
				}
				if t.Priority == "" {
					t.Priority = planner.PriorityMedium
				}
				if t.Category == "" {
					t.Category = planner.DefaultCategory
				}
				kept = append(kept, t)
			}
			return kept
		},
		defaults: func() []planner.Task { return nil },
	})}
}

// Add validates the draft and prepends the new task. Invalid drafts are
// dropped without persisting.
func (ts *TaskStore) Add(d planner.TaskDraft) {
	if t, ok := planner.NewTask(d); ok {
		ts.add(t)
	}
}

// ToggleCompleted flips the completed flag of the matching task.
func (ts *TaskStore) ToggleCompleted(id string) {
	ts.update(id, func(t planner.Task) planner.Task {
		t.Completed = !t.Completed
		return t
	})
}

// FilterByCategory is a pure read-side projection. The empty string and
// "All" select every task.
func (ts *TaskStore) FilterByCategory(category string) []planner.Task {
	if category == "" || category == "All" {
		return ts.Snapshot()
	}
	out := make([]planner.Task, 0)
	for _, t := range ts.Snapshot() {
		if t.Category == category {
			out = append(out, t)
		}
	}
	return out
}

// FilterByCompletion returns the tasks whose completed flag matches.
func (ts *TaskStore) FilterByCompletion(completed bool) []planner.Task {
	out := make([]planner.Task, 0)
	for _, t := range ts.Snapshot() {
		if t.Completed == completed {
			out = append(out, t)
		}
	}
	return out
}
