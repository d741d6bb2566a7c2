// Package commands assembles the melon CLI.
package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/melon/pkg/app"
	"tableflip.dev/melon/pkg/store"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "melon",
		Short: "A fresh daily planner for the command line.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addAdd(topLevel)
	addGet(topLevel)
	addToggle(topLevel)
	addRemove(topLevel)
	addTheme(topLevel)
	addVersion(topLevel)
}

// loadService builds an initialized Service over the configured data dir.
// Every command goes through here so stores are ready before any verb runs.
func loadService() (*app.Service, error) {
	gw, err := store.Load(nil)
	if err != nil {
		return nil, err
	}
	svc, err := app.New(gw)
	if err != nil {
		return nil, err
	}
	svc.Initialize()
	return svc, nil
}
