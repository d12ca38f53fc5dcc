package cmd

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/saragoldblat100/br-sales/internal/core/domain"
	"github.com/saragoldblat100/br-sales/internal/dto"
	"github.com/saragoldblat100/br-sales/internal/platform/bootstrap"
	"github.com/spf13/cobra"
)

var (
	quoteItemID    string
	quoteCustomer  string
	quoteQuantity  int
	quotePort      string
	quoteContainer int
)

var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Calculate the selling price of an item",
	Long: `Calculate the price actually charged for an item.

A customer special price wins when one exists. Otherwise the cost buildup is
used, floored by the item's last sale.`,
	RunE: runQuote,
}

func init() {
	quoteCmd.Flags().StringVarP(&quoteItemID, "item", "i", "", "item ID [REQUIRED]")
	quoteCmd.Flags().StringVarP(&quoteCustomer, "customer", "c", "", "customer code")
	quoteCmd.Flags().IntVarP(&quoteQuantity, "qty", "q", 0, "requested quantity in units (default one carton)")
	quoteCmd.Flags().StringVar(&quotePort, "port", "", "port of origin")
	quoteCmd.Flags().IntVar(&quoteContainer, "container", 0, "container size in CBM (33, 57 or 68)")

	_ = quoteCmd.MarkFlagRequired("item")
}

func runQuote(cmd *cobra.Command, args []string) error {
	req := domain.PricingRequest{ItemID: quoteItemID}
	flags := cmd.Flags()
	if flags.Changed("customer") {
		req.CustomerCode = &quoteCustomer
	}
	if flags.Changed("qty") {
		req.RequestedQuantity = &quoteQuantity
	}
	if flags.Changed("port") {
		req.PortOfOrigin = &quotePort
	}
	if flags.Changed("container") {
		req.ContainerSizeCBM = &quoteContainer
	}

	return withApp(cmd.Context(), func(ctx context.Context, app *bootstrap.App) error {
		result, err := app.Services.Pricing.CalculatePrice(ctx, req)
		if err != nil {
			return err
		}
		return printPricing(cmd.OutOrStdout(), result)
	})
}

func printPricing(out io.Writer, result *domain.PricingResult) error {
	resp := dto.ToPricingResponse(result)
	if jsonOut {
		return printJSON(out, resp)
	}

	p := resp.Pricing
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Item\t%s (%s)\n", resp.Item.ItemCode, resp.Item.Description)
	fmt.Fprintf(w, "Price source\t%s\n", p.PriceSource)
	if p.PriceSource != domain.PriceSourceSpecialPrice {
		fmt.Fprintf(w, "Supplier / carton (USD)\t%s\n", p.SupplierPricePerCarton.StringFixed(2))
		fmt.Fprintf(w, "Freight / carton (USD)\t%s\n", p.FreightCostPerCarton.StringFixed(2))
		fmt.Fprintf(w, "Total cost / carton (USD)\t%s\n", p.TotalCostPerCarton.StringFixed(2))
		fmt.Fprintf(w, "Margin (%%)\t%s\n", p.MarginPercentage.String())
		fmt.Fprintf(w, "Calculated / carton (USD | ILS)\t%s | %s\n", p.CalculatedPricePerCartonUSD.StringFixed(2), p.CalculatedPricePerCartonILS.StringFixed(2))
	}
	fmt.Fprintf(w, "USD to ILS\t%s\n", p.USDToILS.String())
	fmt.Fprintf(w, "Selling / carton (USD | ILS)\t%s | %s\n", p.SellingPricePerCartonUSD.StringFixed(2), p.SellingPricePerCartonILS.StringFixed(2))
	fmt.Fprintf(w, "Selling / unit (USD | ILS)\t%s | %s\n", p.SellingPricePerUnitUSD.StringFixed(2), p.SellingPricePerUnitILS.StringFixed(2))
	fmt.Fprintf(w, "Quantity\t%d units, %d cartons, %s CBM\n", p.RequestedQuantity, p.NumberOfCartons, p.TotalCBM.StringFixed(3))
	if p.LastSalesOrderPrice != nil && p.LastSalesOrderCurrency != nil {
		fmt.Fprintf(w, "Last sale\t%s %s\n", p.LastSalesOrderPrice.StringFixed(2), *p.LastSalesOrderCurrency)
	}
	if p.MarginSource != "" {
		fmt.Fprintf(w, "Sources\tsupplier=%s freight=%s margin=%s rate=%s box=%s qty=%s\n",
			p.SupplierPriceSource, p.FreightSource, p.MarginSource, p.USDRateSource, p.BoxCBMSource, p.QtyPerCartonSource)
	}
	return w.Flush()
}
