package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/melon/pkg/runner/remove"
)

func addRemove(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "remove <task|note|event> <id>",
		Aliases: []string{"rm", "delete"},
		Short:   "Delete a record by id",
		Example: `
melon remove task 1756402897000000000
melon remove event 2
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) != 2 {
				return errors.New("requires a kind (task, note, event) and an id")
			}
			switch remove.Kind(args[0]) {
			case remove.KindTask, remove.KindNote, remove.KindEvent:
				return nil
			}
			return errors.New("kind must be one of: task, note, event")
		},
		ValidArgs: []string{"task", "note", "event"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := remove.Remove{Service: svc, Kind: remove.Kind(args[0]), ID: args[1]}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
