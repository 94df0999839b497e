package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/storefront/backend/internal/domain"
	"github.com/storefront/backend/internal/usecase"
)

type createCustomerRequest struct {
	Name    string `json:"name" binding:"required,max=200"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"max=50"`
	Address string `json:"address" binding:"max=500"`
}

type updateCustomerRequest struct {
	Name    *string `json:"name" binding:"omitempty,min=1,max=200"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Phone   *string `json:"phone" binding:"omitempty,max=50"`
	Address *string `json:"address" binding:"omitempty,max=500"`
}

type checkEmailRequest struct {
	Email string `json:"email" binding:"required"`
}

// CreateCustomer registers a customer
func (h *Handler) CreateCustomer(c *gin.Context) {
	if h.customers == nil {
		serviceUnavailable(c, "customer")
		return
	}

	var req createCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	customer, err := h.customers.Create(c.Request.Context(), usecase.CreateCustomerInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, customer)
}

// CheckEmail reports whether a customer with the email exists; the client uses it to log in
func (h *Handler) CheckEmail(c *gin.Context) {
	if h.customers == nil {
		serviceUnavailable(c, "customer")
		return
	}

	var req checkEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	customer, err := h.customers.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"exists": customer != nil, "customer": customer})
}

// ListCustomers lists every customer
func (h *Handler) ListCustomers(c *gin.Context) {
	if h.customers == nil {
		serviceUnavailable(c, "customer")
		return
	}

	customers, err := h.customers.FindAll(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customers)
}

// GetCustomer returns one customer
func (h *Handler) GetCustomer(c *gin.Context) {
	if h.customers == nil {
		serviceUnavailable(c, "customer")
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	customer, err := h.customers.FindOne(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

// UpdateCustomer applies a partial update
func (h *Handler) UpdateCustomer(c *gin.Context) {
	if h.customers == nil {
		serviceUnavailable(c, "customer")
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req updateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	customer, err := h.customers.Update(c.Request.Context(), id, domain.CustomerUpdate{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

// DeleteCustomer removes a customer
func (h *Handler) DeleteCustomer(c *gin.Context) {
	if h.customers == nil {
		serviceUnavailable(c, "customer")
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.customers.Remove(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// parseIDParam parses the :id path parameter as a UUID, answering 400 when it is not one
func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, fmt.Errorf("invalid id %q: must be a UUID", c.Param("id")))
		return uuid.Nil, false
	}
	return id, true
}
