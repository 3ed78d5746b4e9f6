// Package filter derives the displayed subset and ordering of a result set
// from a filter configuration. Apply is a pure function: deterministic for
// fixed inputs, no side effects, and the input slice is never mutated.
package filter

import (
	"sort"

	"github.com/remwaste/skip-catalog/internal/domain"
)

// Apply filters skips against cfg and sorts the surviving subset.
// Empty input yields empty output; an all-default config only reorders.
func Apply(skips []domain.Skip, cfg domain.FilterConfig) []domain.Skip {
	out := make([]domain.Skip, 0, len(skips))
	for _, s := range skips {
		if matches(s, cfg) {
			out = append(out, s)
		}
	}
	sortSkips(out, cfg.SortBy)
	return out
}

// matches evaluates the filter predicate; every clause must hold.
func matches(s domain.Skip, cfg domain.FilterConfig) bool {
	if len(cfg.SizeCategories) > 0 && !cfg.HasCategory(s.Category()) {
		return false
	}
	if s.PriceBeforeVAT.GreaterThan(cfg.MaxPrice) {
		return false
	}
	if cfg.HasProperty(domain.PropRoadAllowed) && !s.AllowedOnRoad {
		return false
	}
	if cfg.HasProperty(domain.PropHeavyWaste) && !s.AllowsHeavyWaste {
		return false
	}
	return true
}

// sortSkips orders in place, stable with respect to input order on ties.
func sortSkips(skips []domain.Skip, by domain.SortOrder) {
	switch by {
	case domain.SortSizeAsc:
		sort.SliceStable(skips, func(i, j int) bool { return skips[i].Size < skips[j].Size })
	case domain.SortSizeDesc:
		sort.SliceStable(skips, func(i, j int) bool { return skips[i].Size > skips[j].Size })
	case domain.SortPriceAsc:
		sort.SliceStable(skips, func(i, j int) bool {
			return skips[i].PriceBeforeVAT.LessThan(skips[j].PriceBeforeVAT)
		})
	case domain.SortPriceDesc:
		sort.SliceStable(skips, func(i, j int) bool {
			return skips[i].PriceBeforeVAT.GreaterThan(skips[j].PriceBeforeVAT)
		})
	case domain.SortPopular:
		// 4-yard skips first; both partitions keep input order.
		sort.SliceStable(skips, func(i, j int) bool {
			return skips[i].Size == 4 && skips[j].Size != 4
		})
	}
}
