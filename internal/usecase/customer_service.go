package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/storefront/backend/internal/domain"
)

// CustomerService handles customer registration and the email lookup used as login
type CustomerService struct {
	repo   domain.CustomerRepository
	logger *zap.Logger
}

// NewCustomerService creates a new customer service
func NewCustomerService(repo domain.CustomerRepository, logger *zap.Logger) *CustomerService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CustomerService{repo: repo, logger: logger.Named("customers")}
}

// CreateCustomerInput holds the fields of a new customer
type CreateCustomerInput struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

// Create registers a customer
func (s *CustomerService) Create(ctx context.Context, input CreateCustomerInput) (*domain.Customer, error) {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Email) == "" {
		return nil, fmt.Errorf("%w: name and email are required", domain.ErrInvalidRequest)
	}

	customer := &domain.Customer{
		ID:      uuid.New(),
		Name:    strings.TrimSpace(input.Name),
		Email:   normalizeEmail(input.Email),
		Phone:   input.Phone,
		Address: input.Address,
	}
	if err := s.repo.Create(ctx, customer); err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}

	s.logger.Info("Customer created", zap.String("customer_id", customer.ID.String()))
	return customer, nil
}

// FindAll lists customers
func (s *CustomerService) FindAll(ctx context.Context) ([]domain.Customer, error) {
	return s.repo.FindAll(ctx, domain.CustomerFilter{})
}

// FindOne returns a customer or domain.ErrNotFound
func (s *CustomerService) FindOne(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	return s.repo.FindByID(ctx, id)
}

// FindByEmail returns the customer with the email, or nil when there is none
func (s *CustomerService) FindByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	if strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrInvalidRequest)
	}
	customer, err := s.repo.FindByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return customer, nil
}

// Update applies a partial update
func (s *CustomerService) Update(ctx context.Context, id uuid.UUID, update domain.CustomerUpdate) (*domain.Customer, error) {
	customer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Email != nil {
		email := normalizeEmail(*update.Email)
		update.Email = &email
	}
	update.Apply(customer)

	if err := s.repo.Update(ctx, customer); err != nil {
		return nil, fmt.Errorf("update customer: %w", err)
	}
	return customer, nil
}

// Remove deletes a customer or returns domain.ErrNotFound
func (s *CustomerService) Remove(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
