package query

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/tair/storefront/internal/catalog/domain"
)

// View is the filtered, sorted product sequence plus the counts shown next to it
type View struct {
	Products []domain.Product `json:"products"`
	Matched  int              `json:"matched"`
	Total    int              `json:"total"`
}

// Facets are the selectable category and brand values of a catalog
type Facets struct {
	Categories []string `json:"categories"`
	Brands     []string `json:"brands"`
}

// Apply runs the search, facet, price and sort stages over catalog.
// It never mutates catalog and never fails; a nil catalog yields an empty view.
func Apply(catalog []domain.Product, q Query) View {
	search := strings.ToLower(strings.TrimSpace(q.Search))

	products := make([]domain.Product, 0, len(catalog))
	for _, p := range catalog {
		if search != "" && !matchesSearch(p, search) {
			continue
		}
		if len(q.Categories) > 0 && !slices.Contains(q.Categories, p.Category.String()) {
			continue
		}
		if len(q.Brands) > 0 && !slices.Contains(q.Brands, p.Brand.String()) {
			continue
		}
		if !q.Price.Contains(p.Price) {
			continue
		}
		products = append(products, p)
	}

	sortProducts(products, q.Sort)

	return View{
		Products: products,
		Matched:  len(products),
		Total:    len(catalog),
	}
}

func matchesSearch(p domain.Product, search string) bool {
	return strings.Contains(p.Title.Lower(), search) ||
		strings.Contains(p.Description.Lower(), search) ||
		strings.Contains(p.Brand.Lower(), search) ||
		strings.Contains(p.Category.Lower(), search)
}

// sortProducts orders in place with a stable sort; unknown keys keep catalog order
func sortProducts(products []domain.Product, key SortKey) {
	var compare func(a, b domain.Product) int

	switch key {
	case SortName:
		// Collators keep internal buffers, one per call.
		c := collate.New(language.English)
		compare = func(a, b domain.Product) int {
			return c.CompareString(a.Title.String(), b.Title.String())
		}
	case SortPriceLow:
		compare = func(a, b domain.Product) int { return cmp.Compare(a.Price, b.Price) }
	case SortPriceHigh:
		compare = func(a, b domain.Product) int { return cmp.Compare(b.Price, a.Price) }
	case SortRating:
		compare = func(a, b domain.Product) int { return cmp.Compare(b.Rating, a.Rating) }
	case SortNewest:
		compare = func(a, b domain.Product) int { return cmp.Compare(b.ID, a.ID) }
	default:
		return
	}

	slices.SortStableFunc(products, compare)
}

// FacetsOf derives the distinct, ascending category and brand values of the
// full catalog. The result does not depend on any query.
func FacetsOf(catalog []domain.Product) Facets {
	categories := make(map[string]struct{})
	brands := make(map[string]struct{})
	for _, p := range catalog {
		categories[p.Category.String()] = struct{}{}
		brands[p.Brand.String()] = struct{}{}
	}
	return Facets{
		Categories: sortedKeys(categories),
		Brands:     sortedKeys(brands),
	}
}

func sortedKeys(m map[string]struct{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
