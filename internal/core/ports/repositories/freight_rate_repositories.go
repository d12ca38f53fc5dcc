package repositories

import (
	"context"

	"github.com/saragoldblat100/br-sales/internal/core/domain"
)

// FreightRateReader defines read operations for port and container freight rates.
type FreightRateReader interface {
	VersionedRuleReader[domain.FreightKey, domain.FreightRate]
}

// FreightRateWriter defines write operations for freight rates.
type FreightRateWriter interface {
	SaveFreightRate(ctx context.Context, rate domain.FreightRate) error
}

// FreightRateRepositoryFacade combines all freight rate repository interfaces.
type FreightRateRepositoryFacade interface {
	FreightRateReader
	FreightRateWriter
}
