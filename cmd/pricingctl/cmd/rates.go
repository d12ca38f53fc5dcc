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

var ratesLimit int

var ratesCmd = &cobra.Command{
	Use:   "rates",
	Short: "Inspect and refresh the daily USD to ILS rate",
}

var ratesCurrentCmd = &cobra.Command{
	Use:   "current",
	Short: "Show the rate in effect today",
	Long: `Show the rate in effect today.

When no rate is stored for today it is fetched from the bank and stored. If the
bank is unreachable the most recent stored rate is shown.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd.Context(), func(ctx context.Context, app *bootstrap.App) error {
			rate, err := app.Services.CurrencyRate.CurrentRate(ctx)
			if err != nil {
				return err
			}
			return printRates(cmd.OutOrStdout(), []domain.CurrencyRate{*rate})
		})
	},
}

var ratesRefreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Fetch today's rate from the bank",
	Long: `Fetch today's rate from the bank and store it.

An existing record for today is kept and shown instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd.Context(), func(ctx context.Context, app *bootstrap.App) error {
			rate, err := app.Services.CurrencyRate.RefreshToday(ctx)
			if err != nil {
				return err
			}
			return printRates(cmd.OutOrStdout(), []domain.CurrencyRate{*rate})
		})
	},
}

var ratesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored rates, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd.Context(), func(ctx context.Context, app *bootstrap.App) error {
			rates, _, err := app.Services.CurrencyRate.ListRates(ctx, ratesLimit, nil)
			if err != nil {
				return err
			}
			return printRates(cmd.OutOrStdout(), rates)
		})
	},
}

func init() {
	ratesListCmd.Flags().IntVarP(&ratesLimit, "limit", "n", 10, "number of rates to show")

	ratesCmd.AddCommand(ratesCurrentCmd)
	ratesCmd.AddCommand(ratesRefreshCmd)
	ratesCmd.AddCommand(ratesListCmd)
}

func printRates(out io.Writer, rates []domain.CurrencyRate) error {
	if jsonOut {
		return printJSON(out, dto.ToListCurrencyRatesResponse(rates, nil).Rates)
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tBANK RATE\tMARGIN %\tRATE WITH MARGIN\tSOURCE")
	for _, r := range rates {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			r.RateDate.Format("2006-01-02"),
			r.USDRate.StringFixed(4),
			r.MarginPercentage.String(),
			r.USDRateWithMargin.StringFixed(4),
			r.Source)
	}
	return w.Flush()
}
