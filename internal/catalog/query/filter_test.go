package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/storefront/internal/catalog/domain"
)

func ids(products []domain.Product) []int {
	out := make([]int, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func sampleCatalog() []domain.Product {
	return []domain.Product{
		{ID: 1, Title: "Smartphone X", Description: "A phone", Category: "electronics", Brand: "Acme", Price: 99, Rating: 4.1},
		{ID: 2, Title: "Laptop Pro", Description: "Portable computer", Category: "electronics", Brand: "Globex", Price: 1499, Rating: 4.8},
		{ID: 3, Title: "Desk Lamp", Description: "Warm light", Category: "home", Brand: "Acme", Price: 25, Rating: 3.9},
		{ID: 4, Title: "Headphones", Description: "Noise cancelling", Category: "electronics", Brand: "Acme", Price: 150, Rating: 4.5},
		{ID: 5, Title: "Mystery Box", Price: 10},
	}
}

func TestApplyDefaultQueryKeepsEverythingSortedByName(t *testing.T) {
	v := Apply(sampleCatalog(), Default())

	assert.Equal(t, 5, v.Total)
	assert.Equal(t, 5, v.Matched)
	assert.Equal(t, []int{3, 4, 2, 5, 1}, ids(v.Products))
}

func TestApplyNilCatalog(t *testing.T) {
	v := Apply(nil, Default())
	require.NotNil(t, v.Products)
	assert.Empty(t, v.Products)
	assert.Zero(t, v.Total)
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	q := Default()
	q.Search = "PHONE"

	v := Apply(sampleCatalog(), q)
	assert.ElementsMatch(t, []int{1, 4}, ids(v.Products))
}

func TestSearchMatchesEveryTextField(t *testing.T) {
	tests := []struct {
		search string
		want   []int
	}{
		{"portable", []int{2}},
		{"globex", []int{2}},
		{"HOME", []int{3}},
		{"  lamp  ", []int{3}},
		{"nothing-like-this", []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.search, func(t *testing.T) {
			q := Default()
			q.Search = tt.search
			assert.Equal(t, tt.want, ids(Apply(sampleCatalog(), q).Products))
		})
	}
}

func TestSearchToleratesMissingFields(t *testing.T) {
	q := Default()
	q.Search = "box"

	v := Apply(sampleCatalog(), q)
	assert.Equal(t, []int{5}, ids(v.Products))
}

func TestWhitespaceOnlySearchIsIgnored(t *testing.T) {
	q := Default()
	q.Search = "   "
	assert.Len(t, Apply(sampleCatalog(), q).Products, 5)
}

func TestFiltersAreConjunctive(t *testing.T) {
	q := Default()
	q.Categories = []string{"electronics"}
	q.Brands = []string{"Acme"}
	q.Price = PriceRange{Min: 0, Max: 100}

	v := Apply(sampleCatalog(), q)
	assert.Equal(t, []int{1}, ids(v.Products))
	assert.Equal(t, 1, v.Matched)
	assert.Equal(t, 5, v.Total)
}

func TestCategorySetIsAUnion(t *testing.T) {
	q := Default()
	q.Categories = []string{"home", "electronics"}
	q.Sort = SortNewest

	assert.Equal(t, []int{4, 3, 2, 1}, ids(Apply(sampleCatalog(), q).Products))
}

func TestPriceRangeIsInclusive(t *testing.T) {
	q := Default()
	q.Price = PriceRange{Min: 25, Max: 99}
	q.Sort = SortPriceLow

	assert.Equal(t, []int{3, 1}, ids(Apply(sampleCatalog(), q).Products))
}

func TestInvertedPriceRangeMatchesNothing(t *testing.T) {
	q := Default()
	q.Price = PriceRange{Min: 200, Max: 100}

	v := Apply(sampleCatalog(), q)
	assert.Empty(t, v.Products)
	assert.Equal(t, 5, v.Total)
}

func TestSortKeys(t *testing.T) {
	catalog := []domain.Product{
		{ID: 1, Title: "b", Price: 10, Rating: 2},
		{ID: 2, Title: "a", Price: 5, Rating: 5},
		{ID: 3, Title: "c", Price: 20, Rating: 3},
	}

	tests := []struct {
		key  SortKey
		want []int
	}{
		{SortPriceHigh, []int{3, 1, 2}},
		{SortPriceLow, []int{2, 1, 3}},
		{SortRating, []int{2, 3, 1}},
		{SortNewest, []int{3, 2, 1}},
		{SortName, []int{2, 1, 3}},
		{SortKey("popularity"), []int{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			q := Default()
			q.Sort = tt.key
			assert.Equal(t, tt.want, ids(Apply(catalog, q).Products))
		})
	}
}

func TestPriceHighOnExamplePrices(t *testing.T) {
	catalog := []domain.Product{{ID: 1, Price: 10}, {ID: 2, Price: 5}, {ID: 3, Price: 20}}
	q := Default()
	q.Sort = SortPriceHigh

	var prices []float64
	for _, p := range Apply(catalog, q).Products {
		prices = append(prices, p.Price)
	}
	assert.Equal(t, []float64{20, 10, 5}, prices)
}

func TestNameSortIsStableForEqualTitles(t *testing.T) {
	catalog := []domain.Product{
		{ID: 10, Title: "Widget"},
		{ID: 11, Title: "Gadget"},
		{ID: 12, Title: "Widget"},
		{ID: 13, Title: "Widget"},
	}

	assert.Equal(t, []int{11, 10, 12, 13}, ids(Apply(catalog, Default()).Products))
}

func TestNameSortIsLocaleAware(t *testing.T) {
	catalog := []domain.Product{
		{ID: 1, Title: "banana"},
		{ID: 2, Title: "Apple"},
		{ID: 3, Title: "apple"},
		{ID: 4, Title: "Éclair"},
		{ID: 5, Title: "cherry"},
	}

	got := ids(Apply(catalog, Default()).Products)
	// Accents and case do not push words to the end as a byte-wise sort would.
	assert.Equal(t, []int{1, 5, 4}, got[2:])
	assert.ElementsMatch(t, []int{2, 3}, got[:2])
}

func TestApplyDoesNotMutateCatalog(t *testing.T) {
	catalog := sampleCatalog()
	q := Default()
	q.Sort = SortPriceHigh

	Apply(catalog, q)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, ids(catalog))
}

func TestFacetsOf(t *testing.T) {
	f := FacetsOf(sampleCatalog())

	assert.Equal(t, []string{"", "electronics", "home"}, f.Categories)
	assert.Equal(t, []string{"", "Acme", "Globex"}, f.Brands)
}

func TestFacetsDoNotDependOnQuery(t *testing.T) {
	catalog := sampleCatalog()
	before := FacetsOf(catalog)

	q := Default()
	q.Brands = []string{"Globex"}
	filtered := Apply(catalog, q)
	require.Len(t, filtered.Products, 1)

	assert.Equal(t, before, FacetsOf(catalog))
}

func TestEndToEndExample(t *testing.T) {
	catalog := []domain.Product{
		{ID: 1, Title: "First", Category: "A", Price: 50},
		{ID: 2, Title: "Second", Category: "B", Price: 150},
		{ID: 3, Title: "Third", Category: "A", Price: 300},
	}

	q := Default()
	q.Price = PriceRange{Min: 0, Max: 200}
	q.Categories = []string{"A"}
	q.Sort = SortPriceLow

	v := Apply(catalog, q)
	require.Len(t, v.Products, 1)
	assert.Equal(t, 50.0, v.Products[0].Price)
}
