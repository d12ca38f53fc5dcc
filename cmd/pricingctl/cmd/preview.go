package cmd

import (
	"context"
	"fmt"

	"github.com/saragoldblat100/br-sales/internal/core/domain"
	"github.com/saragoldblat100/br-sales/internal/platform/bootstrap"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	previewItemID       string
	previewPort         string
	previewContainer    int
	previewSupplier     string
	previewFreight      string
	previewMargin       string
	previewUSDRate      string
	previewBoxCBM       string
	previewQtyPerCarton int
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview a price with overridden inputs",
	Long: `Run the cost buildup with any input overridden.

Override money values are in USD. No special price and no last-sale floor apply.
The output reports whether each input came from an override or the database.`,
	RunE: runPreview,
}

func init() {
	f := previewCmd.Flags()
	f.StringVarP(&previewItemID, "item", "i", "", "item ID [REQUIRED]")
	f.StringVar(&previewPort, "port", "", "port of origin")
	f.IntVar(&previewContainer, "container", 0, "container size in CBM (33, 57 or 68)")
	f.StringVar(&previewSupplier, "supplier-price", "", "supplier price per carton (USD)")
	f.StringVar(&previewFreight, "freight", "", "freight cost per container (USD)")
	f.StringVar(&previewMargin, "margin", "", "margin percentage")
	f.StringVar(&previewUSDRate, "usd-rate", "", "USD to ILS rate")
	f.StringVar(&previewBoxCBM, "box-cbm", "", "carton volume in CBM")
	f.IntVar(&previewQtyPerCarton, "qty-per-carton", 0, "units per carton")

	_ = previewCmd.MarkFlagRequired("item")
}

func runPreview(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	req := domain.PreviewRequest{ItemID: previewItemID}
	if flags.Changed("port") {
		req.PortOfOrigin = &previewPort
	}
	if flags.Changed("container") {
		req.ContainerSizeCBM = &previewContainer
	}
	if flags.Changed("qty-per-carton") {
		req.Overrides.QtyPerCarton = &previewQtyPerCarton
	}

	decimalFlags := []struct {
		name   string
		value  string
		target **decimal.Decimal
	}{
		{"supplier-price", previewSupplier, &req.Overrides.SupplierPrice},
		{"freight", previewFreight, &req.Overrides.FreightCostPerContainer},
		{"margin", previewMargin, &req.Overrides.MarginPercentage},
		{"usd-rate", previewUSDRate, &req.Overrides.USDToILS},
		{"box-cbm", previewBoxCBM, &req.Overrides.BoxCBM},
	}
	for _, df := range decimalFlags {
		if !flags.Changed(df.name) {
			continue
		}
		d, err := decimal.NewFromString(df.value)
		if err != nil {
			return fmt.Errorf("invalid --%s value %q: %w", df.name, df.value, err)
		}
		*df.target = &d
	}

	return withApp(cmd.Context(), func(ctx context.Context, app *bootstrap.App) error {
		result, err := app.Services.Pricing.PreviewPrice(ctx, req)
		if err != nil {
			return err
		}
		return printPricing(cmd.OutOrStdout(), result)
	})
}
