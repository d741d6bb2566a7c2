// Package toggle implements `melon toggle`.
package toggle

import (
	"context"
	"errors"

	"tableflip.dev/melon/pkg/app"
	"tableflip.dev/melon/pkg/printers"
)

// Toggle flips the completed flag of one task.
type Toggle struct {
	Service *app.Service

	ID string
}

func (t *Toggle) Do(ctx context.Context) error {
	if t.Service == nil {
		return errors.New("toggle: no service configured")
	}

	found := false
	for _, task := range t.Service.Tasks.Snapshot() {
		if task.ID == t.ID {
			found = true
			break
		}
	}
	if !found {
		return errors.New("toggle: no task with id " + t.ID)
	}

	t.Service.Tasks.ToggleCompleted(t.ID)

	pp := printers.PrettyPrint{ShowID: true}
	pp.TitleWithCount("To-Do", t.Service.Tasks.Len())
	pp.Tasks(t.Service.Tasks.Snapshot())
	return nil
}
