// Package get implements the `melon get` verbs.
package get

import (
	"context"
	"errors"

	"tableflip.dev/melon/pkg/app"
	"tableflip.dev/melon/pkg/printers"
)

// Tasks lists the to-do collection, optionally filtered.
type Tasks struct {
	Service *app.Service

	ShowID   bool
	Category string
	Pending  bool
}

func (g *Tasks) Do(ctx context.Context) error {
	if g.Service == nil {
		return errors.New("get: no service configured")
	}

	tasks := g.Service.Tasks.FilterByCategory(g.Category)
	if g.Pending {
		filtered := tasks[:0]
		for _, t := range tasks {
			if !t.Completed {
				filtered = append(filtered, t)
			}
		}
		tasks = filtered
	}

	pp := printers.PrettyPrint{ShowID: g.ShowID}
	title := "To-Do"
	if g.Category != "" && g.Category != "All" {
		title += " / " + g.Category
	}
	pp.TitleWithCount(title, len(tasks))
	pp.Tasks(tasks)
	return nil
}

// Notes lists the journal, newest first.
type Notes struct {
	Service *app.Service

	ShowID bool
}

func (g *Notes) Do(ctx context.Context) error {
	if g.Service == nil {
		return errors.New("get: no service configured")
	}
	notes := g.Service.Notes.Snapshot()
	pp := printers.PrettyPrint{ShowID: g.ShowID}
	pp.TitleWithCount("Notes", len(notes))
	pp.Notes(notes)
	return nil
}

// Events lists the daily schedule in time order.
type Events struct {
	Service *app.Service

	ShowID bool
}

func (g *Events) Do(ctx context.Context) error {
	if g.Service == nil {
		return errors.New("get: no service configured")
	}
	events := g.Service.Events.Snapshot()
	pp := printers.PrettyPrint{ShowID: g.ShowID}
	pp.TitleWithCount("Daily Schedule", len(events))
	pp.Events(events)
	return nil
}
