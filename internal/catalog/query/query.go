package query

import (
	"math"
	"slices"
)

// SortKey selects the ordering of the filtered view
type SortKey string

const (
	SortName      SortKey = "name"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortRating    SortKey = "rating"
	SortNewest    SortKey = "newest"
)

// DefaultSortKey is applied at startup and by ClearAll
const DefaultSortKey = SortName

// Valid reports whether the key names a known ordering
func (k SortKey) Valid() bool {
	switch k {
	case SortName, SortPriceLow, SortPriceHigh, SortRating, SortNewest:
		return true
	}
	return false
}

// PriceRange is an inclusive [Min, Max] price bound
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// DefaultPriceRange spans every non-negative price
func DefaultPriceRange() PriceRange {
	return PriceRange{Min: 0, Max: math.MaxFloat64}
}

// Contains reports min <= price <= max. An inverted range contains nothing.
func (r PriceRange) Contains(price float64) bool {
	return r.Min <= price && price <= r.Max
}

// Query is the transient, session-owned filter state
type Query struct {
	Search     string     `json:"search"`
	Categories []string   `json:"categories"`
	Brands     []string   `json:"brands"`
	Price      PriceRange `json:"price"`
	Sort       SortKey    `json:"sort"`
}

// Default returns the query every session starts with
func Default() Query {
	return Query{
		Categories: []string{},
		Brands:     []string{},
		Price:      DefaultPriceRange(),
		Sort:       DefaultSortKey,
	}
}

// Clone returns a deep copy so callers cannot alias the engine's sets
func (q Query) Clone() Query {
	q.Categories = cloneSet(q.Categories)
	q.Brands = cloneSet(q.Brands)
	return q
}

func cloneSet(s []string) []string {
	if s == nil {
		return []string{}
	}
	return slices.Clone(s)
}

// toggle adds v when absent and removes it when present, keeping selection order
func toggle(set []string, v string) []string {
	if i := slices.Index(set, v); i >= 0 {
		return slices.Delete(slices.Clone(set), i, i+1)
	}
	return append(slices.Clone(set), v)
}
