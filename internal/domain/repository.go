package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// VendorClient fetches the raw product feed of one provider
type VendorClient interface {
	FetchProducts(ctx context.Context, provider Provider) ([]RawRecord, error)
}

// CustomerFilter narrows customer listings
type CustomerFilter struct {
	Email string
}

// CustomerRepository defines persistence for customers
type CustomerRepository interface {
	Create(ctx context.Context, customer *Customer) error
	FindByID(ctx context.Context, id uuid.UUID) (*Customer, error)
	FindByEmail(ctx context.Context, email string) (*Customer, error)
	FindAll(ctx context.Context, filter CustomerFilter) ([]Customer, error)
	Update(ctx context.Context, customer *Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// OrderFilter narrows order listings; a nil CustomerID lists all orders
type OrderFilter struct {
	CustomerID *uuid.UUID
}

// OrderRepository defines persistence for orders
type OrderRepository interface {
	Create(ctx context.Context, order *Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)
	FindAll(ctx context.Context, filter OrderFilter) ([]Order, error)
}
