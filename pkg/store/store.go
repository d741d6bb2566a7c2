// Package store is the durable key-value boundary for planner state.
package store

import (
	"context"

	"tableflip.dev/melon/pkg/planner"
)

// Key names one persisted entry. Each collection and the theme flag live
// under their own key and are written whole on every change.
type Key string

const (
	KeyTasks  Key = "planner_tasks"
	KeyNotes  Key = "planner_notes"
	KeyEvents Key = "planner_events"
	KeyTheme  Key = "planner_theme"
)

// CollectionKeys lists the keys holding record collections (not the theme).
func CollectionKeys() []Key {
	return []Key{KeyTasks, KeyNotes, KeyEvents}
}

// Gateway defines the persistence contract for planner collections.
//
// Load reports absent=false when the key was never saved; callers treat
// undecodable payloads the same way. Save overwrites the prior value and
// is durable once it returns.
type Gateway interface {
	Load(key Key) (data []byte, present bool, err error)
	Save(key Key, data []byte) error

	LoadTheme() planner.Theme
	SaveTheme(theme planner.Theme) error

	Watch(ctx context.Context) (<-chan Event, error)
}

// Event is emitted by Gateway.Watch when underlying storage changes
// outside the running process (another instance, a manual edit).
type Event struct {
	Key Key
}
