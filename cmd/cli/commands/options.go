package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/davidmoltin/command-center/internal/models"
	"github.com/spf13/cobra"
)

// filterFlags are the facet flags shared by options, dashboard and alerts
type filterFlags struct {
	product  string
	region   string
	plant    string
	sku      string
	supplier string
}

func (f *filterFlags) register(cmd *cobra.Command, dependents bool) {
	cmd.Flags().StringVar(&f.product, "product", models.AllProducts, "Product filter")
	cmd.Flags().StringVar(&f.region, "region", models.AllRegions, "Region filter")
	if dependents {
		cmd.Flags().StringVar(&f.plant, "plant", models.AllPlants, "Plant filter")
		cmd.Flags().StringVar(&f.sku, "sku", models.AllSKUs, "SKU filter")
		cmd.Flags().StringVar(&f.supplier, "supplier", models.AllSuppliers, "Supplier filter")
	}
}

// selection applies the flags in cascade order so dependent facets survive
func (f *filterFlags) selection() models.FilterSelection {
	sel := models.DefaultFilterSelection()
	for _, kv := range []struct {
		facet models.Facet
		value string
	}{
		{models.FacetProduct, f.product},
		{models.FacetRegion, f.region},
		{models.FacetPlant, f.plant},
		{models.FacetSKU, f.sku},
		{models.FacetSupplier, f.supplier},
	} {
		if kv.value != "" {
			sel = sel.Set(kv.facet, kv.value)
		}
	}
	return sel
}

func newOptionsCmd(env *cliEnv) *cobra.Command {
	var filters filterFlags

	cmd := &cobra.Command{
		Use:   "options",
		Short: "Show plant, SKU and supplier options for a product and region",
		Long: `Show the dependent facet options for a product and region.

Examples:
  ccenter options
  ccenter options --product "Motor Oil (2710.19)" --region EMEA`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := env.engine.Options(filters.product, filters.region)
			return env.render(cmd.OutOrStdout(), opts, func(w io.Writer) {
				printOptions(w, opts)
			})
		},
	}

	filters.register(cmd, false)
	return cmd
}

func printOptions(w io.Writer, opts models.FilterOptions) {
	fmt.Fprintf(w, "Plants:    %s\n", strings.Join(opts.Plants, ", "))
	fmt.Fprintf(w, "SKUs:      %s\n", strings.Join(opts.SKUs, ", "))
	fmt.Fprintf(w, "Suppliers: %s\n", strings.Join(opts.Suppliers, ", "))
}
