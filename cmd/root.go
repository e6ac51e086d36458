package cmd

import (
	"github.com/bnema/actionitems/internal/logging"
	"github.com/spf13/cobra"
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "actionitems",
		Short:         "Action items: configurable items that run commands and timed effects",
		Long:          "actionitems manages item definitions, grants tagged items to players and simulates activations (cooldowns, scheduled commands and timed effects) in a local sandbox.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		app.logger = logging.NewLogger(cmd.ErrOrStderr(), app.cfg.Log)
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newItemsCmd(app),
		newGiveCmd(app),
		newUseCmd(app),
		newHistoryCmd(app),
	)

	return rootCmd
}
