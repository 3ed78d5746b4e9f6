// Package domain contains the core data types for the skip catalog service.
// This package has zero business logic dependencies and is imported by every
// other internal package (repo, service, client, filter, handler).
package domain

import (
	"github.com/shopspring/decimal"
)

// Skip represents a single rentable skip offering at a location.
// Field names on the wire follow the upstream provider's snake_case schema so
// payloads round-trip unchanged through the by-location proxy endpoint.
type Skip struct {
	ID               int              `json:"id"`
	Size             int              `json:"size"` // capacity in yards
	HirePeriodDays   int              `json:"hire_period_days"`
	TransportCost    *decimal.Decimal `json:"transport_cost"` // nil when the provider quotes no transport charge
	PerTonneCost     *decimal.Decimal `json:"per_tonne_cost"`
	PriceBeforeVAT   decimal.Decimal  `json:"price_before_vat"`
	VAT              decimal.Decimal  `json:"vat"` // percentage, applied for display only
	Postcode         string           `json:"postcode"`
	Area             string           `json:"area"`
	Forbidden        bool             `json:"forbidden"`
	AllowedOnRoad    bool             `json:"allowed_on_road"`
	AllowsHeavyWaste bool             `json:"allows_heavy_waste"`
	CreatedAt        string           `json:"created_at"`
	UpdatedAt        string           `json:"updated_at"`
}

// NewSkip carries the caller-supplied fields for repo.Create.
// ID and timestamps are assigned by the store.
type NewSkip struct {
	Size             int
	HirePeriodDays   int
	TransportCost    *decimal.Decimal
	PerTonneCost     *decimal.Decimal
	PriceBeforeVAT   decimal.Decimal
	VAT              decimal.Decimal
	Postcode         string
	Area             string
	Forbidden        bool
	AllowedOnRoad    bool
	AllowsHeavyWaste bool
}

// SizeCategory is the derived bucket used for filtering.
type SizeCategory string

const (
	SizeSmall  SizeCategory = "small"  // up to 6 yards
	SizeMedium SizeCategory = "medium" // 7 to 12 yards
	SizeLarge  SizeCategory = "large"  // 13 yards and up
)

// Category derives the size bucket from yard capacity.
// Boundary values: 6 is small, 12 is medium.
func (s Skip) Category() SizeCategory {
	switch {
	case s.Size <= 6:
		return SizeSmall
	case s.Size <= 12:
		return SizeMedium
	default:
		return SizeLarge
	}
}
