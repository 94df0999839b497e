package usecase

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storefront/backend/internal/domain"
)

func testCatalog() []domain.Product {
	return []domain.Product{
		{ID: "1", Name: "Sabonete", Price: 9.9, Category: "Skincare", Material: "Herbal", Provider: domain.ProviderBrazilian},
		{ID: "2", Name: "Chair", Price: 150, Category: "Furniture", Material: "Wood", Provider: domain.ProviderEuropean},
		{ID: "3", Name: "Almofada", Price: 45, Category: "Furniture", Material: "Cotton", Provider: domain.ProviderBrazilian},
		{ID: "4", Name: "Lotion", Price: 22.5, Category: "skincare", Material: "Herbal", Provider: domain.ProviderEuropean},
		{ID: "5", Name: "Table", Price: 3200, Category: "Furniture", Material: "Wood", Provider: domain.ProviderEuropean},
	}
}

func defaultQuery() domain.ProductQuery {
	return domain.ProductQuery{
		MinPrice: domain.DefaultMinPrice,
		MaxPrice: domain.DefaultMaxPrice,
		Page:     domain.DefaultPage,
		Limit:    domain.DefaultLimit,
	}
}

func ids(products []domain.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestQueryProducts_EmptyFilterIsNoOp(t *testing.T) {
	catalog := testCatalog()
	q := defaultQuery()
	q.Categories = []string{}
	q.MaxPrice = 10000

	page := QueryProducts(catalog, q)

	assert.Equal(t, catalog, page.Data)
	assert.Equal(t, len(catalog), page.Total)
}

func TestQueryProducts_CaseInsensitiveFilter(t *testing.T) {
	q := defaultQuery()
	q.Categories = []string{"SKINCARE"}

	page := QueryProducts(testCatalog(), q)

	assert.Equal(t, []string{"1", "4"}, ids(page.Data))
	assert.Equal(t, 2, page.Total)
}

func TestQueryProducts_CombinedFilters(t *testing.T) {
	q := defaultQuery()
	q.Categories = []string{"furniture", "toys"}
	q.Materials = []string{"wood"}

	page := QueryProducts(testCatalog(), q)

	// Table is above the default max price
	assert.Equal(t, []string{"2"}, ids(page.Data))
}

func TestQueryProducts_PriceRangeInclusive(t *testing.T) {
	q := defaultQuery()
	q.MinPrice = 22.5
	q.MaxPrice = 150

	page := QueryProducts(testCatalog(), q)

	assert.Equal(t, []string{"2", "3", "4"}, ids(page.Data))
}

func TestQueryProducts_FacetsFromFullCatalog(t *testing.T) {
	q := defaultQuery()
	q.Categories = []string{"furniture"}

	page := QueryProducts(testCatalog(), q)

	assert.Equal(t, []string{"Skincare", "Furniture", "skincare"}, page.Categories)
	assert.Equal(t, []string{"Herbal", "Wood", "Cotton"}, page.Materials)
}

func TestQueryProducts_Pagination(t *testing.T) {
	catalog := make([]domain.Product, 25)
	for i := range catalog {
		catalog[i] = domain.Product{ID: fmt.Sprintf("p%02d", i), Price: float64(i)}
	}

	q := defaultQuery()
	q.Page = 3
	q.Limit = 10
	page := QueryProducts(catalog, q)

	assert.Equal(t, catalog[20:25], page.Data)
	assert.Equal(t, 25, page.Total)

	q.Page = 1
	page = QueryProducts(catalog, q)
	assert.Len(t, page.Data, 10)
	assert.Equal(t, 25, page.Total)

	q.Page = 4
	page = QueryProducts(catalog, q)
	assert.NotNil(t, page.Data)
	assert.Empty(t, page.Data)
	assert.Equal(t, 25, page.Total)
}

func TestQueryProducts_HugePageAndLimit(t *testing.T) {
	catalog := make([]domain.Product, 10)
	for i := range catalog {
		catalog[i] = domain.Product{ID: fmt.Sprint(i)}
	}

	tests := []struct {
		name    string
		page    int
		limit   int
		wantIDs []string
	}{
		{"both at max", math.MaxInt - 1, math.MaxInt, []string{}},
		{"product wraps around", 4, 6148914691236517207, []string{}},
		{"huge page", math.MaxInt, 10, []string{}},
		{"huge limit first page", 1, math.MaxInt, []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"}},
		{"last partial page", 4, 3, []string{"9"}},
		{"exact last page", 2, 5, []string{"5", "6", "7", "8", "9"}},
		{"one past the end", 3, 5, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := defaultQuery()
			q.Page = tt.page
			q.Limit = tt.limit

			var page domain.ProductPage
			require.NotPanics(t, func() { page = QueryProducts(catalog, q) })

			assert.Equal(t, tt.wantIDs, ids(page.Data))
			assert.Equal(t, 10, page.Total)
		})
	}
}

func TestQueryProducts_DefaultsForZeroPageAndLimit(t *testing.T) {
	catalog := make([]domain.Product, 30)
	for i := range catalog {
		catalog[i] = domain.Product{ID: fmt.Sprint(i)}
	}

	page := QueryProducts(catalog, domain.ProductQuery{MaxPrice: domain.DefaultMaxPrice})

	assert.Len(t, page.Data, domain.DefaultLimit)
	assert.Equal(t, "0", page.Data[0].ID)
}

func TestQueryProducts_SortByPrice(t *testing.T) {
	q := defaultQuery()
	q.MaxPrice = 10000

	q.SortBy = domain.SortPriceLowHigh
	asc := ids(QueryProducts(testCatalog(), q).Data)
	assert.Equal(t, []string{"1", "4", "3", "2", "5"}, asc)

	q.SortBy = domain.SortPriceHighLow
	desc := ids(QueryProducts(testCatalog(), q).Data)

	require.Len(t, desc, len(asc))
	for i := range asc {
		assert.Equal(t, asc[i], desc[len(desc)-1-i])
	}
}

func TestQueryProducts_SortByPopularity(t *testing.T) {
	q := defaultQuery()
	q.MaxPrice = 10000
	q.SortBy = domain.SortPopularity

	page := QueryProducts(testCatalog(), q)

	names := make([]string, len(page.Data))
	for i, p := range page.Data {
		names[i] = p.Name
	}
	assert.Equal(t, []string{"Almofada", "Chair", "Lotion", "Sabonete", "Table"}, names)
}

func TestQueryProducts_UnknownSortKeepsOrder(t *testing.T) {
	q := defaultQuery()
	q.MaxPrice = 10000
	q.SortBy = "newest"

	page := QueryProducts(testCatalog(), q)

	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, ids(page.Data))
}

func TestQueryProducts_DoesNotReorderInput(t *testing.T) {
	catalog := testCatalog()
	q := defaultQuery()
	q.SortBy = domain.SortPriceHighLow

	QueryProducts(catalog, q)

	assert.Equal(t, testCatalog(), catalog)
}

func TestQueryProducts_EmptyCatalog(t *testing.T) {
	page := QueryProducts(nil, defaultQuery())

	assert.NotNil(t, page.Data)
	assert.Empty(t, page.Data)
	assert.Equal(t, 0, page.Total)
	assert.NotNil(t, page.Categories)
	assert.NotNil(t, page.Materials)
}
