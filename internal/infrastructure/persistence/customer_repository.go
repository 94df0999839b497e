package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/storefront/backend/internal/domain"
)

// GormCustomerRepository implements domain.CustomerRepository using GORM
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GormCustomerRepository
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// Create inserts a customer and copies generated timestamps back
func (r *GormCustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	model := CustomerModelFromDomain(customer)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}
	customer.CreatedAt = model.CreatedAt
	customer.UpdatedAt = model.UpdatedAt
	return nil
}

// FindByID finds a customer by its ID
func (r *GormCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	var model CustomerModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByEmail finds a customer by email
func (r *GormCustomerRepository) FindByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	var model CustomerModel
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all customers matching the filter, oldest first
func (r *GormCustomerRepository) FindAll(ctx context.Context, filter domain.CustomerFilter) ([]domain.Customer, error) {
	query := r.db.WithContext(ctx).Model(&CustomerModel{})
	if filter.Email != "" {
		query = query.Where("email = ?", filter.Email)
	}

	var customerModels []CustomerModel
	if err := query.Order("created_at ASC").Find(&customerModels).Error; err != nil {
		return nil, err
	}

	customers := make([]domain.Customer, len(customerModels))
	for i := range customerModels {
		customers[i] = *customerModels[i].ToDomain()
	}
	return customers, nil
}

// Update saves all customer fields
func (r *GormCustomerRepository) Update(ctx context.Context, customer *domain.Customer) error {
	model := CustomerModelFromDomain(customer)
	result := r.db.WithContext(ctx).Model(&CustomerModel{}).Where("id = ?", customer.ID).Updates(map[string]any{
		"name":    model.Name,
		"email":   model.Email,
		"phone":   model.Phone,
		"address": model.Address,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a customer
func (r *GormCustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&CustomerModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
