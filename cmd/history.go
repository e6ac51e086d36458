package cmd

import (
	"fmt"

	itemsrender "github.com/bnema/actionitems/internal/adapters/render/items"
	"github.com/bnema/actionitems/internal/domain"
	"github.com/bnema/actionitems/internal/ports"
	"github.com/spf13/cobra"
)

func newHistoryCmd(app *app) *cobra.Command {
	var (
		query  ports.JournalQuery
		itemID string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded item activations, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if query.Limit < 0 {
				return fmt.Errorf("--limit must not be negative")
			}
			query.ItemID = domain.NormalizeItemID(itemID)

			journal, err := app.openJournal()
			if err != nil {
				return err
			}
			defer journal.Close()

			records, err := journal.List(cmd.Context(), query)
			if err != nil {
				return fmt.Errorf("list activations: %w", err)
			}

			if asJSON {
				if records == nil {
					records = []domain.ActivationRecord{}
				}
				return writeJSON(cmd.OutOrStdout(), records)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), itemsrender.RenderHistory(records))
			return err
		},
	}

	cmd.Flags().StringVar(&query.ActorName, "player", "", "Only show this player's activations")
	cmd.Flags().StringVar(&itemID, "item", "", "Only show activations of this item")
	cmd.Flags().IntVar(&query.Limit, "limit", 20, "Maximum number of records")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}
