package usecase

import (
	"fmt"

	"github.com/storefront/backend/internal/domain"
)

// Classify decides which vendor transform applies to a raw record.
// An explicit provider tag wins; otherwise the vendor-specific name key decides.
func Classify(record domain.RawRecord) domain.VendorKind {
	provider, _ := record["provider"].(string)
	switch {
	case provider == string(domain.ProviderBrazilian) || Truthy(record["nome"]):
		return domain.VendorBrazilian
	case provider == string(domain.ProviderEuropean) || Truthy(record["name"]):
		return domain.VendorEuropean
	default:
		return domain.VendorUnrecognized
	}
}

// Normalize maps a classified record onto the canonical product shape
func Normalize(kind domain.VendorKind, record domain.RawRecord) (*domain.Product, error) {
	switch kind {
	case domain.VendorBrazilian:
		return FromBrazilian(record)
	case domain.VendorEuropean:
		return FromEuropean(record)
	default:
		return nil, fmt.Errorf("%w: unrecognized vendor record", domain.ErrInvalidProduct)
	}
}

// FromBrazilian maps a brazilian feed record
func FromBrazilian(record domain.RawRecord) (*domain.Product, error) {
	id, err := recordID(record)
	if err != nil {
		return nil, err
	}

	price, err := ParseNumber(record["preco"])
	if err != nil {
		return nil, fmt.Errorf("%w: brazilian %s preco: %v", domain.ErrInvalidProduct, id, err)
	}

	product := &domain.Product{
		ID:          id,
		Name:        stringOr(record["nome"], ""),
		Description: stringOr(record["descricao"], ""),
		Price:       price,
		Category:    stringOr(record["categoria"], ""),
		Material:    stringOr(record["material"], ""),
		Gallery:     []string{},
		Provider:    domain.ProviderBrazilian,
		HasDiscount: false,
	}

	if dept, ok := CoerceString(record["departamento"]); ok {
		product.Department = &dept
	}
	if Truthy(record["imagem"]) {
		if img, ok := CoerceString(record["imagem"]); ok {
			product.Gallery = []string{img}
		}
	}

	return product, nil
}

// FromEuropean maps a european feed record. A truthy discountValue that does
// not parse leaves DiscountValue nil; see DiscountIgnored.
func FromEuropean(record domain.RawRecord) (*domain.Product, error) {
	id, err := recordID(record)
	if err != nil {
		return nil, err
	}

	price, err := ParseNumber(record["price"])
	if err != nil {
		return nil, fmt.Errorf("%w: european %s price: %v", domain.ErrInvalidProduct, id, err)
	}

	product := &domain.Product{
		ID:          id,
		Name:        stringOr(record["name"], ""),
		Description: stringOr(record["description"], ""),
		Price:       price,
		Gallery:     []string{},
		Provider:    domain.ProviderEuropean,
		HasDiscount: Truthy(record["hasDiscount"]),
	}

	if details, ok := asObject(record["details"]); ok {
		if Truthy(details["adjective"]) {
			product.Category = stringOr(details["adjective"], "")
		}
		if Truthy(details["material"]) {
			product.Material = stringOr(details["material"], "")
		}
	}

	if gallery, ok := record["gallery"].([]any); ok {
		for _, entry := range gallery {
			if url, ok := entry.(string); ok {
				product.Gallery = append(product.Gallery, url)
			}
		}
	}

	// an unparseable discount only loses the discount, not the product
	if Truthy(record["discountValue"]) {
		if discount, err := ParseNumber(record["discountValue"]); err == nil {
			product.DiscountValue = &discount
		}
	}

	return product, nil
}

func recordID(record domain.RawRecord) (string, error) {
	id, ok := CoerceString(record["id"])
	if !ok || id == "" {
		return "", fmt.Errorf("%w: missing id", domain.ErrInvalidProduct)
	}
	return id, nil
}

// DiscountIgnored reports whether FromEuropean had to drop the record's discountValue
func DiscountIgnored(record domain.RawRecord, product *domain.Product) bool {
	return product.Provider == domain.ProviderEuropean &&
		Truthy(record["discountValue"]) &&
		product.DiscountValue == nil
}
