package handlers

import (
	"errors"
	"net/http"
	"time"

	"jewelry_shop/internal/middleware"
	"jewelry_shop/internal/models"
	"jewelry_shop/internal/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

type UserResponse struct {
	ID         uint      `json:"id"`
	TelegramID int64     `json:"telegram_id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Username   string    `json:"username"`
	Phone      string    `json:"phone"`
	Language   string    `json:"language"`
	FullName   string    `json:"full_name"`
	CreatedAt  time.Time `json:"created_at"`
}

type UpdateProfileRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Phone     *string `json:"phone"`
	Language  *string `json:"language"`
}

func toUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:         user.ID,
		TelegramID: user.TelegramID,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		Username:   user.Username,
		Phone:      user.Phone,
		Language:   user.Language,
		FullName:   user.FullName(),
		CreatedAt:  user.CreatedAt,
	}
}

func (h *UserHandler) GetMe(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization required"})
		return
	}
	c.JSON(http.StatusOK, toUserResponse(user))
}

// UpdateMe changes the caller's own profile. The Telegram ID cannot be
// touched through this endpoint.
func (h *UserHandler) UpdateMe(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization required"})
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	updated, err := h.userService.UpdateProfile(user.ID, services.ProfileUpdate{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Language:  req.Language,
	})
	if errors.Is(err, services.ErrInvalidInput) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid profile fields"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, toUserResponse(updated))
}
