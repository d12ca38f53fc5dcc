package pgsql

import (
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/saragoldblat100/br-sales/internal/core/domain"
)

// versionCandidates bounds how many versions a rule query returns. The rows
// come back in selection order, so the first one is the winner and the rest
// are only there for the in-memory selection to re-check.
const versionCandidates = 5

// versionOrder is the ORDER BY / LIMIT tail shared by every versioned rule
// query. validCol is the column versions become effective on and idCol the
// primary key used for the final tie-break.
func versionOrder(validCol, idCol string) string {
	return fmt.Sprintf("ORDER BY %s DESC, created_at DESC, %s DESC LIMIT %d", validCol, idCol, versionCandidates)
}

// collectVersions scans rows with scan and converts them to rule versions.
func collectVersions[V domain.Versioned[V]](rows pgx.Rows, scan func(pgx.CollectableRow) (V, error)) ([]domain.RuleVersion[V], error) {
	records, err := pgx.CollectRows[V](rows, scan)
	if err != nil {
		return nil, err
	}
	return domain.Versions(records), nil
}
