package store

import (
	"fmt"
	"sort"
)

// SortKey selects the comparator for the derived projection
type SortKey string

const (
	SortMarketCapDesc SortKey = "market_cap_desc"
	SortMarketCapAsc  SortKey = "market_cap_asc"
	SortPriceDesc     SortKey = "price_desc"
	SortPriceAsc      SortKey = "price_asc"
	SortNameAsc       SortKey = "name_asc"
	SortNameDesc      SortKey = "name_desc"
)

// ParseSortKey validates a sort key arriving from the UI collaborator
func ParseSortKey(value string) (SortKey, error) {
	switch key := SortKey(value); key {
	case SortMarketCapDesc, SortMarketCapAsc,
		SortPriceDesc, SortPriceAsc,
		SortNameAsc, SortNameDesc:
		return key, nil
	default:
		return "", fmt.Errorf("unknown sort key %q", value)
	}
}

// sortAssets sorts in place with a stable sort so equal keys keep the
// arrival order of the last fetch. Names compare with locale-aware
// collation, numeric keys compare numerically.
func (s *Store) sortAssets(assets []Asset) {
	var less func(a, b *Asset) bool

	switch s.sortKey {
	case SortMarketCapAsc:
		less = func(a, b *Asset) bool { return a.MarketCap < b.MarketCap }
	case SortPriceDesc:
		less = func(a, b *Asset) bool { return a.CurrentPrice > b.CurrentPrice }
	case SortPriceAsc:
		less = func(a, b *Asset) bool { return a.CurrentPrice < b.CurrentPrice }
	case SortNameAsc:
		less = func(a, b *Asset) bool { return s.collator.CompareString(a.Name, b.Name) < 0 }
	case SortNameDesc:
		less = func(a, b *Asset) bool { return s.collator.CompareString(a.Name, b.Name) > 0 }
	default: // SortMarketCapDesc
		less = func(a, b *Asset) bool { return a.MarketCap > b.MarketCap }
	}

	sort.SliceStable(assets, func(i, j int) bool {
		return less(&assets[i], &assets[j])
	})
}
