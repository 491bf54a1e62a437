package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"jewelry_shop/internal/models"
	"jewelry_shop/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type mockCartService struct {
	getOrCreateFunc func(userID uint) (*models.Cart, error)
	addFunc         func(userID, productID uint, quantity int, size string) (*models.Cart, error)
	updateItemFunc  func(userID, itemID uint, quantity int) (*models.Cart, error)
	removeItemFunc  func(userID, itemID uint) (*models.Cart, error)
	clearFunc       func(userID uint) (*models.Cart, error)
}

func (m *mockCartService) GetOrCreate(userID uint) (*models.Cart, error) {
	return m.getOrCreateFunc(userID)
}
func (m *mockCartService) Add(userID, productID uint, quantity int, size string) (*models.Cart, error) {
	return m.addFunc(userID, productID, quantity, size)
}
func (m *mockCartService) UpdateItem(userID, itemID uint, quantity int) (*models.Cart, error) {
	return m.updateItemFunc(userID, itemID, quantity)
}
func (m *mockCartService) RemoveItem(userID, itemID uint) (*models.Cart, error) {
	return m.removeItemFunc(userID, itemID)
}
func (m *mockCartService) Clear(userID uint) (*models.Cart, error) { return m.clearFunc(userID) }

func asUser(user *models.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		if user != nil {
			c.Set("current_user", user)
		}
		c.Next()
	}
}

func cartRouter(svc services.CartService, user *models.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewCartHandler(svc)

	router := gin.New()
	router.Use(asUser(user))
	router.GET("/cart/", h.GetCart)
	router.POST("/cart/add/", h.AddToCart)
	router.PATCH("/cart/items/:id/", h.UpdateItem)
	router.DELETE("/cart/items/:id/", h.RemoveItem)
	return router
}

func TestCartHandler_RequiresIdentity(t *testing.T) {
	router := cartRouter(&mockCartService{}, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/cart/", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Authorization required")
}

func TestCartHandler_AddToCart(t *testing.T) {
	svc := &mockCartService{
		addFunc: func(userID, productID uint, quantity int, size string) (*models.Cart, error) {
			assert.Equal(t, uint(1), userID)
			assert.Equal(t, uint(10), productID)
			assert.Equal(t, 2, quantity)
			assert.Equal(t, "17", size)
			return &models.Cart{ID: 7, UserID: userID, Items: []models.CartItem{
				{ID: 3, ProductID: 10, Quantity: 2, Size: "17", Product: models.Product{ID: 10, Price: 1500000}},
			}}, nil
		},
	}
	router := cartRouter(svc, &models.User{ID: 1})

	body := `{"product_id":10,"quantity":2,"size":"17"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/cart/add/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"items_count":2`)
	assert.Contains(t, w.Body.String(), `"total":3000000`)
}

func TestCartHandler_AddToCart_DefaultsQuantity(t *testing.T) {
	var gotQuantity int
	svc := &mockCartService{
		addFunc: func(userID, productID uint, quantity int, size string) (*models.Cart, error) {
			gotQuantity = quantity
			return &models.Cart{ID: 7, UserID: userID}, nil
		},
	}
	router := cartRouter(svc, &models.User{ID: 1})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/cart/add/", strings.NewReader(`{"product_id":10}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 1, gotQuantity)
}

func TestCartHandler_AddToCart_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"missing product", services.ErrNotFound, http.StatusNotFound, "Product not found"},
		{"out of stock", services.ErrOutOfStock, http.StatusBadRequest, "Product is out of stock"},
		{"storage failure", assert.AnError, http.StatusInternalServerError, "Failed to add to cart"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockCartService{
				addFunc: func(userID, productID uint, quantity int, size string) (*models.Cart, error) {
					return nil, tt.err
				},
			}
			router := cartRouter(svc, &models.User{ID: 1})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/cart/add/", strings.NewReader(`{"product_id":10}`))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}

func TestCartHandler_UpdateItem_RequiresQuantityField(t *testing.T) {
	router := cartRouter(&mockCartService{}, &models.User{ID: 1})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/cart/items/3/", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCartHandler_UpdateItem_ZeroIsValid(t *testing.T) {
	var gotQuantity int
	svc := &mockCartService{
		updateItemFunc: func(userID, itemID uint, quantity int) (*models.Cart, error) {
			gotQuantity = quantity
			return &models.Cart{ID: 7, UserID: userID}, nil
		},
	}
	router := cartRouter(svc, &models.User{ID: 1})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/cart/items/3/", strings.NewReader(`{"quantity":0}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, gotQuantity)
}

func TestCartHandler_RemoveItem_NotFound(t *testing.T) {
	svc := &mockCartService{
		removeItemFunc: func(userID, itemID uint) (*models.Cart, error) {
			return nil, services.ErrNotFound
		},
	}
	router := cartRouter(svc, &models.User{ID: 1})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/cart/items/99/", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
