// Package add implements the `melon add` verbs.
package add

import (
	"context"
	"errors"

	"tableflip.dev/melon/pkg/app"
	"tableflip.dev/melon/pkg/planner"
	"tableflip.dev/melon/pkg/printers"
)

// Task adds a to-do item and echoes the updated list.
type Task struct {
	Service *app.Service

	Text     string
	Priority planner.Priority
	Category string
}

func (a *Task) Do(ctx context.Context) error {
	if a.Service == nil {
		return errors.New("add: no service configured")
	}
	before := a.Service.Tasks.Len()
	a.Service.Tasks.Add(planner.TaskDraft{
		Text:     a.Text,
		Priority: a.Priority,
		Category: a.Category,
	})
	if a.Service.Tasks.Len() == before {
		return errors.New("add: task text must not be empty")
	}

	pp := printers.PrettyPrint{}
	pp.TitleWithCount("To-Do", a.Service.Tasks.Len())
	pp.Tasks(a.Service.Tasks.Snapshot())
	return nil
}

// Note adds a journal note and echoes the updated journal.
type Note struct {
	Service *app.Service

	Title   string
	Content string
	Color   string
}

func (a *Note) Do(ctx context.Context) error {
	if a.Service == nil {
		return errors.New("add: no service configured")
	}
	color := a.Color
	if color == "" {
		// First token of the active palette, so dark sessions get dark paper.
		color = planner.NoteColors(a.Service.Theme())[0]
	}

	before := a.Service.Notes.Len()
	a.Service.Notes.Add(planner.NoteDraft{
		Title:   a.Title,
		Content: a.Content,
		Color:   color,
	})
	if a.Service.Notes.Len() == before {
		return errors.New("add: a note needs a title or content")
	}

	pp := printers.PrettyPrint{}
	pp.TitleWithCount("Notes", a.Service.Notes.Len())
	pp.Notes(a.Service.Notes.Snapshot())
	return nil
}

// Event adds a schedule entry and echoes the updated schedule.
type Event struct {
	Service *app.Service

	Time  string
	Title string
	Type  planner.EventType
}

func (a *Event) Do(ctx context.Context) error {
	if a.Service == nil {
		return errors.New("add: no service configured")
	}
	before := a.Service.Events.Len()
	a.Service.Events.Add(planner.EventDraft{
		Time:  a.Time,
		Title: a.Title,
		Type:  a.Type,
	})
	if a.Service.Events.Len() == before {
		return errors.New("add: an event needs a title and an HH:MM time")
	}

	pp := printers.PrettyPrint{}
	pp.TitleWithCount("Daily Schedule", a.Service.Events.Len())
	pp.Events(a.Service.Events.Snapshot())
	return nil
}
