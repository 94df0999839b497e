package usecase

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/storefront/backend/internal/domain"
)

// MockCacheRepository is a mock implementation of domain.CacheRepository
type MockCacheRepository struct {
	mu       sync.Mutex
	data     map[string]interface{}
	getError error
	setError error
	gets     int
	sets     int
}

func NewMockCacheRepository() *MockCacheRepository {
	return &MockCacheRepository{data: make(map[string]interface{})}
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) (interface{}, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gets++
	if m.getError != nil {
		return nil, m.getError
	}
	if value, ok := m.data[key]; ok {
		return value, nil
	}
	return nil, domain.ErrCacheMiss
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sets++
	if m.setError != nil {
		return m.setError
	}
	m.data[key] = value
	return nil
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *MockCacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.data[key]
	return ok, nil
}

// MockVendorClient is a mock implementation of domain.VendorClient
type MockVendorClient struct {
	mu     sync.Mutex
	feeds  map[domain.Provider][]domain.RawRecord
	errors map[domain.Provider]error
	delay  map[domain.Provider]time.Duration
	calls  map[domain.Provider]int
}

func NewMockVendorClient() *MockVendorClient {
	return &MockVendorClient{
		feeds:  make(map[domain.Provider][]domain.RawRecord),
		errors: make(map[domain.Provider]error),
		delay:  make(map[domain.Provider]time.Duration),
		calls:  make(map[domain.Provider]int),
	}
}

func (m *MockVendorClient) FetchProducts(ctx context.Context, provider domain.Provider) ([]domain.RawRecord, error) {
	m.mu.Lock()
	m.calls[provider]++
	feed, err, delay := m.feeds[provider], m.errors[provider], m.delay[provider]
	m.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if err != nil {
		return nil, err
	}
	return feed, nil
}

func (m *MockVendorClient) callCount(provider domain.Provider) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[provider]
}

// MockCustomerRepository is an in-memory domain.CustomerRepository
type MockCustomerRepository struct {
	customers map[uuid.UUID]domain.Customer
	createErr error
}

func NewMockCustomerRepository() *MockCustomerRepository {
	return &MockCustomerRepository{customers: make(map[uuid.UUID]domain.Customer)}
}

func (m *MockCustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	if m.createErr != nil {
		return m.createErr
	}
	customer.CreatedAt = time.Now()
	customer.UpdatedAt = customer.CreatedAt
	m.customers[customer.ID] = *customer
	return nil
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	c, ok := m.customers[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &c, nil
}

func (m *MockCustomerRepository) FindByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	for _, c := range m.customers {
		if c.Email == email {
			return &c, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *MockCustomerRepository) FindAll(ctx context.Context, filter domain.CustomerFilter) ([]domain.Customer, error) {
	out := make([]domain.Customer, 0, len(m.customers))
	for _, c := range m.customers {
		if filter.Email == "" || c.Email == filter.Email {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Email < out[j].Email })
	return out, nil
}

func (m *MockCustomerRepository) Update(ctx context.Context, customer *domain.Customer) error {
	if _, ok := m.customers[customer.ID]; !ok {
		return domain.ErrNotFound
	}
	customer.UpdatedAt = time.Now()
	m.customers[customer.ID] = *customer
	return nil
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := m.customers[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.customers, id)
	return nil
}

// MockOrderRepository is an in-memory domain.OrderRepository
type MockOrderRepository struct {
	orders []domain.Order
}

func (m *MockOrderRepository) Create(ctx context.Context, order *domain.Order) error {
	order.CreatedAt = time.Now()
	m.orders = append(m.orders, *order)
	return nil
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	for _, o := range m.orders {
		if o.ID == id {
			return &o, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *MockOrderRepository) FindAll(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error) {
	out := make([]domain.Order, 0, len(m.orders))
	for _, o := range m.orders {
		if filter.CustomerID == nil || o.Customer.ID == *filter.CustomerID {
			out = append(out, o)
		}
	}
	return out, nil
}
