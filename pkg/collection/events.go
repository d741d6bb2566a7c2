package collection

import (
	"tableflip.dev/melon/pkg/planner"
	"tableflip.dev/melon/pkg/store"
)

// EventStore owns the daily schedule. The sequence is kept sorted
// ascending by time across every insertion and load.
type EventStore struct {
	*Store[planner.ScheduleEvent]
}

// NewEvents builds the event store against the given gateway. A planner
// that never persisted events (or persisted an empty schedule) starts
// with the three seed events.
func NewEvents(gw store.Gateway) *EventStore {
	return &EventStore{Store: newStore(gw, store.KeyEvents, options[planner.ScheduleEvent]{
		id: func(e planner.ScheduleEvent) string { return e.ID },
		place: func(items []planner.ScheduleEvent, rec planner.ScheduleEvent) []planner.ScheduleEvent {
			items = append(items, rec)
			planner.SortEvents(items)
			return items
		},
		restore: func(items []planner.ScheduleEvent) []planner.ScheduleEvent {
			kept := items[:0]
			for _, e := range items {
				if e.ID == "" || e.Title == "" || !planner.ValidClock(e.Time) {
					continue
				}
				if e.Type == "" {
					e.Type = planner.EventPersonal
				}
				kept = append(kept, e)
			}
			planner.SortEvents(kept)
			return kept
		},
		defaults: planner.SeedEvents,
	})}
}

// Add validates the draft and inserts the event at its sorted position.
// Drafts with an empty title or malformed time are dropped without
// persisting.
func (es *EventStore) Add(d planner.EventDraft) {
	if e, ok := planner.NewEvent(d); ok {
		es.add(e)
	}
}
