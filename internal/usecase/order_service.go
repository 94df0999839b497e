package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/storefront/backend/internal/domain"
)

// OrderService places and lists orders
type OrderService struct {
	orders    domain.OrderRepository
	customers domain.CustomerRepository
	logger    *zap.Logger
}

// NewOrderService creates a new order service
func NewOrderService(orders domain.OrderRepository, customers domain.CustomerRepository, logger *zap.Logger) *OrderService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderService{orders: orders, customers: customers, logger: logger.Named("orders")}
}

// OrderItemInput is one cart line submitted at checkout
type OrderItemInput struct {
	ProductID   string
	ProductName string
	Price       decimal.Decimal
	Quantity    int
}

// CreateOrderInput is a checkout request
type CreateOrderInput struct {
	CustomerID uuid.UUID
	Items      []OrderItemInput
}

// Create places an order for an existing customer; the total is the sum of
// price * quantity over the items.
func (s *OrderService) Create(ctx context.Context, input CreateOrderInput) (*domain.Order, error) {
	if len(input.Items) == 0 {
		return nil, fmt.Errorf("%w: order has no items", domain.ErrInvalidRequest)
	}

	customer, err := s.customers.FindByID(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}

	items := make([]domain.OrderItem, 0, len(input.Items))
	for i, in := range input.Items {
		if !in.Price.IsPositive() || in.Quantity <= 0 {
			return nil, fmt.Errorf("%w: item %d must have positive price and quantity", domain.ErrInvalidRequest, i)
		}
		items = append(items, domain.OrderItem{
			ID:          uuid.New(),
			ProductID:   in.ProductID,
			ProductName: in.ProductName,
			Price:       in.Price,
			Quantity:    in.Quantity,
		})
	}

	order := &domain.Order{
		ID:          uuid.New(),
		Customer:    *customer,
		Items:       items,
		TotalAmount: domain.OrderTotal(items),
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	s.logger.Info("Order placed",
		zap.String("order_id", order.ID.String()),
		zap.String("customer_id", customer.ID.String()),
		zap.String("total", order.TotalAmount.StringFixed(2)),
	)
	return order, nil
}

// FindAll lists orders, optionally for one customer
func (s *OrderService) FindAll(ctx context.Context, customerID *uuid.UUID) ([]domain.Order, error) {
	return s.orders.FindAll(ctx, domain.OrderFilter{CustomerID: customerID})
}
