// Package remove implements `melon remove`.
package remove

import (
	"context"
	"errors"

	"tableflip.dev/melon/pkg/app"
	"tableflip.dev/melon/pkg/printers"
)

// Kind selects which collection a removal targets.
type Kind string

const (
	KindTask  Kind = "task"
	KindNote  Kind = "note"
	KindEvent Kind = "event"
)

// Remove deletes one record by id from the chosen collection.
type Remove struct {
	Service *app.Service

	Kind Kind
	ID   string
}

func (r *Remove) Do(ctx context.Context) error {
	if r.Service == nil {
		return errors.New("remove: no service configured")
	}

	pp := printers.PrettyPrint{ShowID: true}
	switch r.Kind {
	case KindTask:
		r.Service.Tasks.Remove(r.ID)
		pp.TitleWithCount("To-Do", r.Service.Tasks.Len())
		pp.Tasks(r.Service.Tasks.Snapshot())
	case KindNote:
		r.Service.Notes.Remove(r.ID)
		pp.TitleWithCount("Notes", r.Service.Notes.Len())
		pp.Notes(r.Service.Notes.Snapshot())
	case KindEvent:
		r.Service.Events.Remove(r.ID)
		pp.TitleWithCount("Daily Schedule", r.Service.Events.Len())
		pp.Events(r.Service.Events.Snapshot())
	default:
		return errors.New("remove: unknown kind " + string(r.Kind))
	}
	return nil
}
