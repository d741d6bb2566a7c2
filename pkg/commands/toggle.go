package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/melon/pkg/runner/toggle"
)

func addToggle(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "toggle <task-id>",
		Short: "Flip a task between pending and done",
		Example: `
melon toggle 1756402897000000000
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) != 1 {
				return errors.New("requires exactly one task id")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := toggle.Toggle{Service: svc, ID: args[0]}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
