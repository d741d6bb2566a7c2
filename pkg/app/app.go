// Package app wires the planner's stores behind one service so the CLI
// and the TUI share the same lifecycle and theme handling.
package app

import (
	"context"
	"errors"

	"tableflip.dev/melon/pkg/collection"
	"tableflip.dev/melon/pkg/planner"
	"tableflip.dev/melon/pkg/store"
)

// Service owns the three collection stores and the theme flag. Construct
// it once at process start and pass it down; there are no package-level
// singletons.
type Service struct {
	Gateway store.Gateway

	Tasks  *collection.TaskStore
	Notes  *collection.NoteStore
	Events *collection.EventStore

	theme planner.Theme
}

// New builds a Service over the given gateway.
func New(gw store.Gateway) (*Service, error) {
	if gw == nil {
		return nil, errors.New("app: no gateway configured")
	}
	return &Service{
		Gateway: gw,
		Tasks:   collection.NewTasks(gw),
		Notes:   collection.NewNotes(gw),
		Events:  collection.NewEvents(gw),
	}, nil
}

// Initialize loads every collection and the theme flag. It runs to
// completion before any UI or command can dispatch a mutation, so the
// stores are always ready by the time they are reachable.
func (s *Service) Initialize() {
	s.Tasks.Initialize()
	s.Notes.Initialize()
	s.Events.Initialize()
	s.theme = s.Gateway.LoadTheme()
}

// Theme returns the active theme flag.
func (s *Service) Theme() planner.Theme {
	return s.theme
}

// SetTheme persists and activates the given theme.
func (s *Service) SetTheme(theme planner.Theme) {
	s.theme = theme
	if err := s.Gateway.SaveTheme(theme); err != nil {
		// Keep the in-memory flag; the session stays usable.
		logErr("app: save theme: %v", err)
	}
}

// ReloadTheme re-reads the persisted theme flag without writing it
// back, for picking up a change made by another process.
func (s *Service) ReloadTheme() planner.Theme {
	s.theme = s.Gateway.LoadTheme()
	return s.theme
}

// ToggleTheme flips light/dark and persists the result.
func (s *Service) ToggleTheme() planner.Theme {
	s.SetTheme(s.theme.Toggle())
	return s.theme
}

// Watch subscribes to external storage change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	return s.Gateway.Watch(ctx)
}
