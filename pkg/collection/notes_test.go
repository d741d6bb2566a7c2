package collection

import (
	"testing"

	"tableflip.dev/melon/pkg/planner"
	"tableflip.dev/melon/pkg/store"
)

func newNoteStore(t *testing.T) (*NoteStore, *memGateway) {
	t.Helper()
	gw := newMemGateway()
	ns := NewNotes(gw)
	ns.Initialize()
	return ns, gw
}

func TestNotesAreMostRecentFirst(t *testing.T) {
	ns, _ := newNoteStore(t)
	ns.Add(planner.NoteDraft{Title: "first"})
	ns.Add(planner.NoteDraft{Title: "second"})

	snap := ns.Snapshot()
	if snap[0].Title != "second" || snap[1].Title != "first" {
		t.Fatalf("notes must be prepended, got %+v", snap)
	}
}

func TestEmptyTitleGetsPlaceholder(t *testing.T) {
	ns, _ := newNoteStore(t)
	ns.Add(planner.NoteDraft{Content: "hello"})

	snap := ns.Snapshot()
	if len(snap) != 1 {
		t.Fatalf("expected 1 note, got %d", len(snap))
	}
	if snap[0].Title != planner.PlaceholderTitle {
		t.Fatalf("expected placeholder title, got %q", snap[0].Title)
	}
}

func TestEmptyNoteDraftIsSilentNoop(t *testing.T) {
	ns, gw := newNoteStore(t)
	writes := gw.saves[store.KeyNotes]

	ns.Add(planner.NoteDraft{})

	if ns.Len() != 0 {
		t.Fatalf("empty draft must not create a note")
	}
	if gw.saves[store.KeyNotes] != writes {
		t.Fatalf("empty draft must not trigger a persistence write")
	}
}

func TestRemoveNote(t *testing.T) {
	ns, _ := newNoteStore(t)
	ns.Add(planner.NoteDraft{Title: "keep"})
	ns.Add(planner.NoteDraft{Title: "drop"})
	id := ns.Snapshot()[0].ID

	ns.Remove(id)
	if ns.Len() != 1 || ns.Snapshot()[0].Title != "keep" {
		t.Fatalf("unexpected notes after remove: %+v", ns.Snapshot())
	}
}

func TestNoteOrderSurvivesRestart(t *testing.T) {
	gw := newMemGateway()
	ns := NewNotes(gw)
	ns.Initialize()
	ns.Add(planner.NoteDraft{Title: "older"})
	ns.Add(planner.NoteDraft{Title: "newer"})

	reloaded := NewNotes(gw)
	reloaded.Initialize()
	snap := reloaded.Snapshot()
	if snap[0].Title != "newer" || snap[1].Title != "older" {
		t.Fatalf("persisted order must be most-recent-first, got %+v", snap)
	}
}
