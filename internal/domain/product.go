package domain

// Provider identifies the vendor feed a product came from
type Provider string

const (
	ProviderBrazilian Provider = "brazilian"
	ProviderEuropean  Provider = "european"
)

// Providers lists every vendor feed in aggregation order
var Providers = []Provider{ProviderBrazilian, ProviderEuropean}

// RawRecord is an untyped vendor payload as decoded from JSON
type RawRecord map[string]any

// VendorKind is the result of classifying a raw record
type VendorKind int

const (
	VendorUnrecognized VendorKind = iota
	VendorBrazilian
	VendorEuropean
)

func (k VendorKind) String() string {
	switch k {
	case VendorBrazilian:
		return string(ProviderBrazilian)
	case VendorEuropean:
		return string(ProviderEuropean)
	default:
		return "unrecognized"
	}
}

// Product is the canonical, vendor-agnostic product representation.
// (Provider, ID) is the uniqueness key; IDs are not unique across vendors.
type Product struct {
	ID            string   `json:"id" validate:"required"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Price         float64  `json:"price" validate:"gte=0"`
	Category      string   `json:"category"`
	Material      string   `json:"material"`
	Department    *string  `json:"department,omitempty"`
	Gallery       []string `json:"gallery"`
	Provider      Provider `json:"provider" validate:"required,oneof=brazilian european"`
	HasDiscount   bool     `json:"hasDiscount"`
	DiscountValue *float64 `json:"discountValue,omitempty" validate:"omitempty,gte=0"`
}

// Sort keys accepted by the product query
const (
	SortPriceLowHigh = "price_low_high"
	SortPriceHighLow = "price_high_low"
	SortPopularity   = "popularity"
)

// Query defaults
const (
	DefaultPage     = 1
	DefaultLimit    = 20
	DefaultMinPrice = 0
	DefaultMaxPrice = 3000
)

// ProductQuery holds filter, sort and pagination options for the catalog
type ProductQuery struct {
	Categories []string
	Materials  []string
	MinPrice   float64
	MaxPrice   float64
	SortBy     string
	Page       int
	Limit      int
}

// ProductPage is one page of the filtered catalog plus facets of the full catalog
type ProductPage struct {
	Data       []Product `json:"data"`
	Total      int       `json:"total"`
	Categories []string  `json:"categories"`
	Materials  []string  `json:"materials"`
}

// StandardizeReport counts what happened to a raw batch during standardization
type StandardizeReport struct {
	Input            int `json:"input"`
	NonObject        int `json:"nonObject"`
	Flattened        int `json:"flattened"`
	Unrecognized     int `json:"unrecognized"`
	Invalid          int `json:"invalid"`
	Accepted         int `json:"accepted"`
	DiscountsIgnored int `json:"discountsIgnored"`
}

// Dropped counts inputs lost to bad data: records that failed validation and
// array entries that were not objects. Non-product noise is not included.
func (r StandardizeReport) Dropped() int {
	return r.Invalid + r.NonObject
}
