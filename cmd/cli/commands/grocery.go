package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/davidmoltin/command-center/internal/grocery"
	"github.com/davidmoltin/command-center/internal/models"
	"github.com/spf13/cobra"
)

func newGroceryCmd(env *cliEnv) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grocery",
		Short: "Browse the household pantry",
	}

	inv := grocery.NewInventory(env.engine.Catalog().Pantry)
	cmd.AddCommand(newGroceryInventoryCmd(env, inv), newGrocerySuggestionsCmd(env, inv))
	return cmd
}

func newGroceryInventoryCmd(env *cliEnv, inv *grocery.Inventory) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "inventory",
		Short: "List pantry items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			items := inv.InCategory(category)
			return env.render(cmd.OutOrStdout(), items, func(w io.Writer) {
				printInventory(w, items)
			})
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Only list items of this category")
	return cmd
}

func newGrocerySuggestionsCmd(env *cliEnv, inv *grocery.Inventory) *cobra.Command {
	return &cobra.Command{
		Use:   "suggestions",
		Short: "List items that are running low or about to expire",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			items := inv.Suggestions()
			return env.render(cmd.OutOrStdout(), items, func(w io.Writer) {
				if len(items) == 0 {
					fmt.Fprintln(w, "Nothing to restock")
					return
				}
				printInventory(w, items)
			})
		},
	}
}

func printInventory(w io.Writer, items []models.InventoryItem) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tSTOCK\tFRESHNESS\tEXPIRES\tPRICE")
	for _, it := range items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d%%\t%s\t%dd\t%.2f\n",
			it.ID, it.Name, it.Category, it.StockLevel, it.Freshness, it.ExpiryDays, it.Price)
	}
	tw.Flush()
}
