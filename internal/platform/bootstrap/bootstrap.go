// Package bootstrap assembles the pricing core from configuration. The HTTP
// server and the pricingctl CLI share it.
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/saragoldblat100/br-sales/internal/adapters/bankrate"
	"github.com/saragoldblat100/br-sales/internal/core/ports/gateways"
	portssvc "github.com/saragoldblat100/br-sales/internal/core/ports/services"
	"github.com/saragoldblat100/br-sales/internal/core/services"
	"github.com/saragoldblat100/br-sales/internal/platform/config"
	"github.com/saragoldblat100/br-sales/internal/repositories/database/pgsql"
	"github.com/saragoldblat100/br-sales/pkg/database"
)

// App holds the long-lived dependencies of a running process.
type App struct {
	Pool     *pgxpool.Pool
	Services *portssvc.ServiceContainer
}

// Close releases the database pool.
func (a *App) Close() {
	database.ClosePgxPool(a.Pool)
}

// New connects to the database and wires repositories, the bank rate source
// and the services.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database pool: %w", err)
	}

	repos := pgsql.NewRepositoryProvider(pool)

	var bankSource gateways.BankRateSource
	if cfg.BankRateEnabled && cfg.BankRateURL != "" {
		bankSource = bankrate.NewBOIClient(cfg.BankRateURL, cfg.BankRateTimeout, bankrate.WithLogger(logger))
		logger.Info("Bank rate source enabled", slog.String("url", cfg.BankRateURL))
	} else {
		logger.Warn("Bank rate source disabled, only stored currency rates will be used")
	}

	return &App{
		Pool:     pool,
		Services: services.NewServiceContainer(cfg, repos, bankSource),
	}, nil
}
