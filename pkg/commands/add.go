package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/melon/pkg/commands/options"
	"tableflip.dev/melon/pkg/planner"
	"tableflip.dev/melon/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a task, note, or event",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addAddTask(cmd)
	addAddNote(cmd)
	addAddEvent(cmd)

	topLevel.AddCommand(cmd)
}

func addAddTask(topLevel *cobra.Command) {
	to := &options.TaskOptions{}
	var text string

	cmd := &cobra.Command{
		Use:   "task",
		Short: "Add a to-do item",
		Example: `
melon add task water the plants
melon add task -p High -c Work finish the report
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires the task text")
			}
			text = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			priority, err := planner.ParsePriority(to.Priority)
			if err != nil {
				return err
			}
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := add.Task{
				Service:  svc,
				Text:     text,
				Priority: priority,
				Category: to.Category,
			}
			return s.Do(context.Background())
		},
	}

	options.AddTaskArgs(cmd, to)
	topLevel.AddCommand(cmd)
}

func addAddNote(topLevel *cobra.Command) {
	no := &options.NoteOptions{}
	var title string

	cmd := &cobra.Command{
		Use:   "note [title]",
		Short: "Add a journal note",
		Example: `
melon add note Groceries --content "milk, eggs, watermelon"
melon add note --content "a title-less fresh thought"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			title = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := add.Note{
				Service: svc,
				Title:   title,
				Content: no.Content,
				Color:   no.Color,
			}
			return s.Do(context.Background())
		},
	}

	options.AddNoteArgs(cmd, no)
	topLevel.AddCommand(cmd)
}

func addAddEvent(topLevel *cobra.Command) {
	eo := &options.EventOptions{}
	var title string

	cmd := &cobra.Command{
		Use:   "event <title>",
		Short: "Add a schedule event",
		Example: `
melon add event Standup --time 09:30 --type Work
melon add event "Evening run" -t 18:00 --type Health
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires the event title")
			}
			title = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			typ, err := planner.ParseEventType(eo.Type)
			if err != nil {
				return err
			}
			if !planner.ValidClock(eo.Time) {
				return errors.New("time must be zero-padded 24-hour HH:MM")
			}
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := add.Event{
				Service: svc,
				Time:    eo.Time,
				Title:   title,
				Type:    typ,
			}
			return s.Do(context.Background())
		},
	}

	options.AddEventArgs(cmd, eo)
	topLevel.AddCommand(cmd)
}
