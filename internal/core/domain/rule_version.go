package domain

import "time"

// RuleVersion is one time-stamped record of a versioned rule series.
type RuleVersion[V any] struct {
	ID        string
	ValidFrom time.Time
	IsActive  bool
	CreatedAt time.Time
	Value     V
}

// Versioned is implemented by records that belong to a versioned rule series.
type Versioned[V any] interface {
	Version() RuleVersion[V]
}

// Versions converts records into their rule versions.
func Versions[V Versioned[V]](records []V) []RuleVersion[V] {
	out := make([]RuleVersion[V], len(records))
	for i, r := range records {
		out[i] = r.Version()
	}
	return out
}

// SelectActiveVersion picks the version in effect at asOf: the active record
// with the latest ValidFrom not after asOf. Equal ValidFrom values are broken
// by the later CreatedAt, then by the greater ID.
func SelectActiveVersion[V any](versions []RuleVersion[V], asOf time.Time) (RuleVersion[V], bool) {
	var (
		best  RuleVersion[V]
		found bool
	)
	for _, v := range versions {
		if !v.IsActive || v.ValidFrom.After(asOf) {
			continue
		}
		if !found || supersedes(v, best) {
			best = v
			found = true
		}
	}
	return best, found
}

func supersedes[V any](a, b RuleVersion[V]) bool {
	if !a.ValidFrom.Equal(b.ValidFrom) {
		return a.ValidFrom.After(b.ValidFrom)
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID > b.ID
}
