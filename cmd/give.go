package cmd

import (
	"fmt"

	itemsrender "github.com/bnema/actionitems/internal/adapters/render/items"
	"github.com/bnema/actionitems/internal/domain"
	"github.com/spf13/cobra"
)

func newGiveCmd(app *app) *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "give <player> <itemId>",
		Short: "Build an item for a player and show the resulting stack",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			gameMode, err := parseGameMode(mode)
			if err != nil {
				return err
			}

			box := app.newSandbox(cmd.OutOrStdout(), nil)
			box.world.Join(args[0], gameMode)

			stack, actor, err := box.items.Give(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Gave %s to %s\n", stack.Tag, actor.Name)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), itemsrender.RenderStack(stack))
			return err
		},
	}

	cmd.Flags().StringVar(&mode, "mode", string(domain.GameModeSurvival), "Player game mode")

	return cmd
}

func parseGameMode(raw string) (domain.GameMode, error) {
	mode, ok := domain.ParseGameMode(raw)
	if !ok {
		return "", fmt.Errorf("unknown game mode %q", raw)
	}
	return mode, nil
}
