package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Supported shipping container volumes, in CBM.
const (
	Container20ft   = 33
	Container40ft   = 57
	Container40ftHC = 68
)

// IsValidContainerSize reports whether cbm is one of the supported container volumes.
func IsValidContainerSize(cbm int) bool {
	switch cbm {
	case Container20ft, Container40ft, Container40ftHC:
		return true
	}
	return false
}

// FreightKey identifies a freight rate series.
type FreightKey struct {
	PortOfOrigin     string
	ContainerSizeCBM int
}

func (k FreightKey) String() string {
	return fmt.Sprintf("%s/%dcbm", k.PortOfOrigin, k.ContainerSizeCBM)
}

// FreightRate is a time-versioned shipping cost for one container from a port.
type FreightRate struct {
	RateID           string
	PortOfOrigin     string
	ContainerSizeCBM int
	FreightCost      decimal.Decimal
	ValidFrom        time.Time
	IsActive         bool
	AuditFields
}

// Key returns the series this rate belongs to.
func (r FreightRate) Key() FreightKey {
	return FreightKey{PortOfOrigin: r.PortOfOrigin, ContainerSizeCBM: r.ContainerSizeCBM}
}

// Version exposes the rate to the generic version selection.
func (r FreightRate) Version() RuleVersion[FreightRate] {
	return RuleVersion[FreightRate]{
		ID:        r.RateID,
		ValidFrom: r.ValidFrom,
		IsActive:  r.IsActive,
		CreatedAt: r.CreatedAt,
		Value:     r,
	}
}
