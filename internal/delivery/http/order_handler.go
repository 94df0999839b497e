package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/storefront/backend/internal/domain"
	"github.com/storefront/backend/internal/usecase"
)

type orderItemRequest struct {
	ProductID   string  `json:"productId" binding:"required"`
	ProductName string  `json:"productName" binding:"required"`
	Price       float64 `json:"price" binding:"gt=0"`
	Quantity    int     `json:"quantity" binding:"gt=0"`
}

type createOrderRequest struct {
	CustomerID string             `json:"customerId" binding:"required,uuid"`
	Items      []orderItemRequest `json:"items" binding:"required,min=1,dive"`
}

type orderItemResponse struct {
	ID          uuid.UUID `json:"id"`
	ProductID   string    `json:"productId"`
	ProductName string    `json:"productName"`
	Price       float64   `json:"price"`
	Quantity    int       `json:"quantity"`
}

// orderResponse renders money as JSON numbers, which is what the browser client expects
type orderResponse struct {
	ID          uuid.UUID           `json:"id"`
	Customer    domain.Customer     `json:"customer"`
	Items       []orderItemResponse `json:"items"`
	TotalAmount float64             `json:"totalAmount"`
	CreatedAt   time.Time           `json:"createdAt"`
}

func toOrderResponse(o domain.Order) orderResponse {
	items := make([]orderItemResponse, len(o.Items))
	for i, item := range o.Items {
		items[i] = orderItemResponse{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Price:       item.Price.InexactFloat64(),
			Quantity:    item.Quantity,
		}
	}
	return orderResponse{
		ID:          o.ID,
		Customer:    o.Customer,
		Items:       items,
		TotalAmount: o.TotalAmount.InexactFloat64(),
		CreatedAt:   o.CreatedAt,
	}
}

// CreateOrder places an order for an existing customer
func (h *Handler) CreateOrder(c *gin.Context) {
	if h.orders == nil {
		serviceUnavailable(c, "order")
		return
	}

	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	input := usecase.CreateOrderInput{
		CustomerID: uuid.MustParse(req.CustomerID),
		Items:      make([]usecase.OrderItemInput, len(req.Items)),
	}
	for i, item := range req.Items {
		input.Items[i] = usecase.OrderItemInput{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Price:       decimal.NewFromFloat(item.Price),
			Quantity:    item.Quantity,
		}
	}

	order, err := h.orders.Create(c.Request.Context(), input)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toOrderResponse(*order))
}

// ListOrders lists orders, optionally filtered by ?customerId=
func (h *Handler) ListOrders(c *gin.Context) {
	if h.orders == nil {
		serviceUnavailable(c, "order")
		return
	}

	var customerID *uuid.UUID
	if raw := c.Query("customerId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			badRequest(c, fmt.Errorf("invalid customerId %q: must be a UUID", raw))
			return
		}
		customerID = &id
	}

	orders, err := h.orders.FindAll(c.Request.Context(), customerID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	resp := make([]orderResponse, len(orders))
	for i, o := range orders {
		resp[i] = toOrderResponse(o)
	}
	c.JSON(http.StatusOK, resp)
}
