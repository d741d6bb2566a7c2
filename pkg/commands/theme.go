package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/melon/pkg/planner"
)

func addTheme(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "theme [light|dark]",
		Short: "Show or set the planner theme",
		Example: `
melon theme
melon theme dark
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) > 1 {
				return errors.New("accepts at most one theme name")
			}
			if len(args) == 1 && args[0] != string(planner.ThemeLight) && args[0] != string(planner.ThemeDark) {
				return errors.New("theme must be light or dark")
			}
			return nil
		},
		ValidArgs: []string{string(planner.ThemeLight), string(planner.ThemeDark)},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService()
			if err != nil {
				return err
			}
			if len(args) == 1 {
				svc.SetTheme(planner.ParseTheme(args[0]))
			}
			fmt.Println(svc.Theme())
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
