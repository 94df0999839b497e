package usecase

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/storefront/backend/internal/domain"
)

// QueryProducts filters, sorts and paginates the catalog. Facets are always
// taken from the full catalog so the client can offer every filter option.
func QueryProducts(products []domain.Product, query domain.ProductQuery) domain.ProductPage {
	query = normalizeQuery(query)

	filtered := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if matchesQuery(p, query) {
			filtered = append(filtered, p)
		}
	}

	sortProducts(filtered, query.SortBy)

	return domain.ProductPage{
		Data:       paginate(filtered, query.Page, query.Limit),
		Total:      len(filtered),
		Categories: distinct(products, func(p domain.Product) string { return p.Category }),
		Materials:  distinct(products, func(p domain.Product) string { return p.Material }),
	}
}

// normalizeQuery fills defaults for a zero page or limit
func normalizeQuery(q domain.ProductQuery) domain.ProductQuery {
	if q.Page < 1 {
		q.Page = domain.DefaultPage
	}
	if q.Limit < 1 {
		q.Limit = domain.DefaultLimit
	}
	return q
}

func matchesQuery(p domain.Product, q domain.ProductQuery) bool {
	return matchesAny(p.Category, q.Categories) &&
		matchesAny(p.Material, q.Materials) &&
		p.Price >= q.MinPrice && p.Price <= q.MaxPrice
}

// matchesAny is true for an empty filter or a case-insensitive hit
func matchesAny(value string, filters []string) bool {
	if len(filters) == 0 {
		return true
	}
	for _, f := range filters {
		if strings.EqualFold(value, f) {
			return true
		}
	}
	return false
}

func sortProducts(products []domain.Product, sortBy string) {
	switch sortBy {
	case domain.SortPriceLowHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case domain.SortPriceHighLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case domain.SortPopularity:
		// No popularity signal exists yet; name order stands in for it.
		col := collate.New(language.Und)
		sort.SliceStable(products, func(i, j int) bool {
			return col.CompareString(products[i].Name, products[j].Name) < 0
		})
	}
}

// paginate slices one page without computing (page-1)*limit for pages past
// the end, so huge page or limit values cannot overflow.
func paginate(products []domain.Product, page, limit int) []domain.Product {
	if page < 1 || limit < 1 || len(products) == 0 || page-1 > (len(products)-1)/limit {
		return []domain.Product{}
	}
	start := (page - 1) * limit
	end := start + min(limit, len(products)-start)
	return products[start:end]
}

// distinct returns the distinct values of key in first-seen order
func distinct(products []domain.Product, key func(domain.Product) string) []string {
	seen := make(map[string]struct{}, len(products))
	values := make([]string, 0)
	for _, p := range products {
		v := key(p)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	return values
}
