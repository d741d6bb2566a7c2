package collection

import (
	"tableflip.dev/melon/pkg/planner"
	"tableflip.dev/melon/pkg/store"
)

// NoteStore owns the journal. Insertion order is significant: newest
// first, and that order is what gets persisted and displayed.
type NoteStore struct {
	*Store[planner.Note]
}

// NewNotes builds the note store against the given gateway.
func NewNotes(gw store.Gateway) *NoteStore {
	return &NoteStore{Store: newStore(gw, store.KeyNotes, options[planner.Note]{
		id:    func(n planner.Note) string { return n.ID },
		place: prepend[planner.Note],
		restore: func(items []planner.Note) []planner.Note {
			kept := items[:0]
			for _, n := range items {
				if n.ID == "" {
					continue
				}
				if n.Title == "" {
					n.Title = planner.PlaceholderTitle
				}
				kept = append(kept, n)
			}
			return kept
		},
		defaults: func() []planner.Note { return nil },
	})}
}

// Add validates the draft and prepends the new note. Drafts with neither
// title nor content are dropped without persisting.
func (ns *NoteStore) Add(d planner.NoteDraft) {
	if n, ok := planner.NewNote(d); ok {
		ns.add(n)
	}
}
