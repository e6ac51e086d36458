package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bnema/actionitems/internal/domain"
	"github.com/spf13/cobra"
)

func newItemsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "items",
		Short: "Manage item definitions",
	}

	cmd.AddCommand(
		newItemsListCmd(app),
		newItemsShowCmd(app),
		newItemsAddCmd(app),
	)

	return cmd
}

func newItemsListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List configured item definitions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			defs, err := app.itemService().List(cmd.Context())
			if err != nil {
				return err
			}

			return writeDefinitionsOutput(cmd, app, defs, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newItemsShowCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one item definition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := app.itemService().Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return writeDefinitionsOutput(cmd, app, []domain.ItemDefinition{def}, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newItemsAddCmd(app *app) *cobra.Command {
	var (
		def            domain.ItemDefinition
		actions        []string
		commands       []string
		effectName     string
		effectDuration int
	)

	cmd := &cobra.Command{
		Use:   "add <id>",
		Short: "Create or replace an item definition",
		Long: "Create or replace an item definition.\n\n" +
			"Actions are console commands run when the item is used; %player% is replaced with the player's name. " +
			"Prefix an action with <ticks>: to delay it, e.g. --action '40:say %player% landed'. " +
			"--command takes a plain command list instead, where a sudo command in second place runs 3 ticks late.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(actions) > 0 && len(commands) > 0 {
				return fmt.Errorf("--action and --command cannot be combined")
			}

			def.ID = domain.ItemID(args[0])
			def.Actions = domain.ActionsFromCommands(commands)
			if len(actions) > 0 {
				parsed, err := parseActions(actions)
				if err != nil {
					return err
				}
				def.Actions = parsed
			}
			if effectDuration != 0 || effectName != "" {
				def.TimedEffect = &domain.TimedEffect{Name: effectName, DurationSeconds: effectDuration}
			}

			service := app.itemService()
			if err := service.Define(cmd.Context(), def); err != nil {
				return err
			}

			saved, err := service.Get(cmd.Context(), string(def.ID))
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Saved item %s (%d actions)\n", saved.ID, len(saved.Actions))
			return nil
		},
	}

	cmd.Flags().StringVar(&def.Material, "material", "", "Item material (default STONE)")
	cmd.Flags().StringVar(&def.DisplayName, "name", "", "Display name, & colour codes allowed")
	cmd.Flags().StringArrayVar(&def.Lore, "lore", nil, "Lore line (repeatable)")
	cmd.Flags().IntVar(&def.ModelData, "model-data", 0, "Custom model data")
	cmd.Flags().IntVar(&def.CooldownSeconds, "cooldown", 0, "Cooldown in seconds")
	cmd.Flags().BoolVar(&def.ConsumeOnUse, "consume", false, "Consume one item per use")
	cmd.Flags().StringArrayVar(&actions, "action", nil, "Action as [ticks:]command (repeatable)")
	cmd.Flags().StringArrayVar(&commands, "command", nil, "Plain command (repeatable)")
	cmd.Flags().StringVar(&effectName, "effect-name", "", "Timed effect name (default flight)")
	cmd.Flags().IntVar(&effectDuration, "effect-duration", 0, "Timed effect duration in seconds")

	return cmd
}

func parseActions(raw []string) ([]domain.Action, error) {
	actions := make([]domain.Action, 0, len(raw))
	for _, value := range raw {
		action := domain.Action{Text: value}
		if prefix, rest, found := strings.Cut(value, ":"); found {
			if ticks, err := strconv.ParseInt(prefix, 10, 64); err == nil {
				if ticks < 0 {
					return nil, fmt.Errorf("action %q: delay must not be negative", value)
				}
				action = domain.Action{Text: strings.TrimSpace(rest), DelayTicks: domain.Ticks(ticks)}
			}
		}
		actions = append(actions, action)
	}
	return actions, nil
}

func writeDefinitionsOutput(cmd *cobra.Command, app *app, defs []domain.ItemDefinition, asJSON bool) error {
	if asJSON {
		return writeJSON(cmd.OutOrStdout(), defs)
	}

	rendered, err := app.catalogRenderer(defs)
	if err != nil {
		return fmt.Errorf("render items: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}

func writeJSON(out io.Writer, value any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}
