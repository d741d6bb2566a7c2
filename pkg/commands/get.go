package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/melon/pkg/commands/options"
	"tableflip.dev/melon/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "get",
		Short: "List tasks, notes, or events",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addGetTasks(cmd)
	addGetNotes(cmd)
	addGetEvents(cmd)

	topLevel.AddCommand(cmd)
}

func addGetTasks(topLevel *cobra.Command) {
	fo := &options.FilterOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "tasks",
		Aliases: []string{"task", "todo", "todos"},
		Short:   "List the to-do collection",
		Example: `
melon get tasks
melon get tasks --category Work --pending
melon get tasks --show-id
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := get.Tasks{
				Service:  svc,
				ShowID:   io.ShowID,
				Category: fo.Category,
				Pending:  fo.Pending,
			}
			return s.Do(context.Background())
		},
	}

	options.AddFilterArgs(cmd, fo)
	options.AddShowIDArgs(cmd, io)
	topLevel.AddCommand(cmd)
}

func addGetNotes(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "notes",
		Aliases: []string{"note"},
		Short:   "List journal notes, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := get.Notes{Service: svc, ShowID: io.ShowID}
			return s.Do(context.Background())
		},
	}

	options.AddShowIDArgs(cmd, io)
	topLevel.AddCommand(cmd)
}

func addGetEvents(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "events",
		Aliases: []string{"event", "schedule"},
		Short:   "List the daily schedule in time order",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := get.Events{Service: svc, ShowID: io.ShowID}
			return s.Do(context.Background())
		},
	}

	options.AddShowIDArgs(cmd, io)
	topLevel.AddCommand(cmd)
}
