package handlers

import (
	"net/http"

	"jewelry_shop/internal/services"

	"github.com/gin-gonic/gin"
)

// DashboardHandler backs the admin dashboard badges.
type DashboardHandler struct {
	orderService services.OrderService
	userService  services.UserService
}

func NewDashboardHandler(orderService services.OrderService, userService services.UserService) *DashboardHandler {
	return &DashboardHandler{orderService: orderService, userService: userService}
}

type DashboardResponse struct {
	PendingOrders int64 `json:"pending_orders"`
	ActiveUsers   int64 `json:"active_users"`
}

func (h *DashboardHandler) Stats(c *gin.Context) {
	pending, err := h.orderService.CountPending()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load stats"})
		return
	}

	users, err := h.userService.CountActive()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load stats"})
		return
	}

	c.JSON(http.StatusOK, DashboardResponse{
		PendingOrders: pending,
		ActiveUsers:   users,
	})
}
