package domain

import "github.com/shopspring/decimal"

// Property is a boolean attribute the user can require of a skip.
type Property string

const (
	PropRoadAllowed Property = "road-allowed"
	PropHeavyWaste  Property = "heavy-waste"
)

// SortOrder names the orderings the filter engine supports.
type SortOrder string

const (
	SortSizeAsc   SortOrder = "size-asc"
	SortSizeDesc  SortOrder = "size-desc"
	SortPriceAsc  SortOrder = "price-asc"
	SortPriceDesc SortOrder = "price-desc"

	// SortPopular floats 4-yard skips (the most commonly hired size)
	// to the front; relative order is otherwise unchanged.
	SortPopular SortOrder = "popular"
)

// FilterConfig is the transient filter/sort state owned by the caller of the
// filter engine. Empty category and property sets mean "no restriction".
type FilterConfig struct {
	SizeCategories []SizeCategory
	MaxPrice       decimal.Decimal // inclusive upper bound on PriceBeforeVAT
	Properties     []Property
	SortBy         SortOrder
}

// DefaultFilterConfig returns the configuration a fresh retrieval session
// starts with: everything visible, cheapest-to-largest by size.
// MaxPrice sits above the highest known offering so it hides nothing.
func DefaultFilterConfig() FilterConfig {
	return FilterConfig{
		SizeCategories: nil,
		MaxPrice:       decimal.NewFromInt(2000),
		Properties:     nil,
		SortBy:         SortSizeAsc,
	}
}

// HasCategory reports whether c restricts by size and includes cat.
func (c FilterConfig) HasCategory(cat SizeCategory) bool {
	for _, sc := range c.SizeCategories {
		if sc == cat {
			return true
		}
	}
	return false
}

// HasProperty reports whether p is among the required properties.
func (c FilterConfig) HasProperty(p Property) bool {
	for _, prop := range c.Properties {
		if prop == p {
			return true
		}
	}
	return false
}
