// Package cmd provides the commands of pricingctl.
package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/saragoldblat100/br-sales/internal/apperrors"
	"github.com/saragoldblat100/br-sales/internal/platform/bootstrap"
	"github.com/saragoldblat100/br-sales/internal/platform/config"
	"github.com/saragoldblat100/br-sales/internal/utils/i18n"
	"github.com/spf13/cobra"
)

var (
	verbose  bool
	jsonOut  bool
	language string
)

var rootCmd = &cobra.Command{
	Use:   "pricingctl",
	Short: "Resolve wholesale prices and manage currency rates",
	Long: `pricingctl runs the pricing engine against the configured database.

It reads the same environment (.env, PGSQL_URL, BANK_RATE_URL, ...) as the API server.

Examples:
  pricingctl quote --item 5b0e... --customer C-1042 --qty 120
  pricingctl preview --item 5b0e... --margin 25 --usd-rate 3.65
  pricingctl rates current
  pricingctl rates refresh`,
	SilenceUsage: true,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "print results as JSON")
	rootCmd.PersistentFlags().StringVar(&language, "lang", "en", "language for missing field names (en, he)")

	rootCmd.AddCommand(quoteCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(ratesCmd)
}

func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// withApp loads the configuration, connects and runs fn with the wired services.
func withApp(ctx context.Context, fn func(ctx context.Context, app *bootstrap.App) error) error {
	logger := newLogger()
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	app, err := bootstrap.New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer app.Close()

	return describeError(fn(ctx, app))
}

// describeError turns a missing-data error into a readable list of fields.
func describeError(err error) error {
	var missing *apperrors.MissingPricingDataError
	if errors.As(err, &missing) {
		labels := i18n.FieldLabels(i18n.Match(language), missing.Fields)
		return fmt.Errorf("missing pricing data: %s", strings.Join(labels, ", "))
	}
	return err
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
