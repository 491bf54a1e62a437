package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"jewelry_shop/internal/middleware"
	"jewelry_shop/internal/models"
	"jewelry_shop/internal/services"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderService services.OrderService
	pageSize     int
}

func NewOrderHandler(orderService services.OrderService, pageSize int) *OrderHandler {
	return &OrderHandler{orderService: orderService, pageSize: pageSize}
}

type CreateOrderRequest struct {
	Items           []services.OrderLine `json:"items" binding:"required,min=1"`
	Phone           string               `json:"phone" binding:"required"`
	DeliveryAddress string               `json:"delivery_address"`
	Comment         string               `json:"comment"`
	PaymentMethod   models.PaymentMethod `json:"payment_method"`
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

type SetPaidRequest struct {
	IsPaid *bool `json:"is_paid" binding:"required"`
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization required"})
		return
	}

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	order, err := h.orderService.Create(user.ID, services.CreateOrderInput{
		Items:           req.Items,
		Phone:           req.Phone,
		DeliveryAddress: req.DeliveryAddress,
		Comment:         req.Comment,
		PaymentMethod:   req.PaymentMethod,
	})
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	case errors.Is(err, services.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
		return
	}

	c.JSON(http.StatusCreated, toOrderResponse(order))
}

// ListOrders returns the authenticated user's orders, newest first. An
// unauthenticated caller gets an empty page, not an error.
func (h *OrderHandler) ListOrders(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusOK, PageResponse{
			Count:    0,
			Page:     1,
			PageSize: h.pageSize,
			Results:  []OrderResponse{},
		})
		return
	}

	page := 1
	if v := c.Query("page"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page"})
			return
		}
		page = parsed
	}

	orders, count, err := h.orderService.ListByUser(user.ID, page, h.pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load orders"})
		return
	}

	c.JSON(http.StatusOK, PageResponse{
		Count:    count,
		Page:     page,
		PageSize: h.pageSize,
		Results:  toOrderResponses(orders),
	})
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization required"})
		return
	}

	orderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	order, err := h.orderService.GetOwned(uint(orderID), user.ID)
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load order"})
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(order))
}

// SetPaid flips the payment flag; routed through the admin group only, the
// flag is read-only on the storefront.
func (h *OrderHandler) SetPaid(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	var req SetPaidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.orderService.SetPaid(uint(orderID), *req.IsPaid); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": orderID, "is_paid": *req.IsPaid})
}

// UpdateStatus serves the admin dashboard; the status change triggers a user
// notification.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	order, err := h.orderService.UpdateStatus(uint(orderID), req.Status)
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	case errors.Is(err, services.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(order))
}
