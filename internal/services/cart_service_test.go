package services

import (
	"errors"
	"testing"

	"jewelry_shop/internal/models"
	"jewelry_shop/internal/repository"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type mockCartRepository struct {
	getByUserIDFunc  func(userID uint) (*models.Cart, error)
	createFunc       func(cart *models.Cart) error
	getItemFunc      func(cartID, productID uint, size string) (*models.CartItem, error)
	getOwnedItemFunc func(itemID, userID uint) (*models.CartItem, error)
	createItemFunc   func(item *models.CartItem) error
	updateItemFunc   func(item *models.CartItem) error
	deleteItemFunc   func(itemID uint) error
	deleteItemsFunc  func(cartID uint) error
}

func (m *mockCartRepository) GetByUserID(userID uint) (*models.Cart, error) {
	return m.getByUserIDFunc(userID)
}
func (m *mockCartRepository) Create(cart *models.Cart) error { return m.createFunc(cart) }
func (m *mockCartRepository) GetItem(cartID, productID uint, size string) (*models.CartItem, error) {
	return m.getItemFunc(cartID, productID, size)
}
func (m *mockCartRepository) GetOwnedItem(itemID, userID uint) (*models.CartItem, error) {
	return m.getOwnedItemFunc(itemID, userID)
}
func (m *mockCartRepository) CreateItem(item *models.CartItem) error { return m.createItemFunc(item) }
func (m *mockCartRepository) UpdateItem(item *models.CartItem) error { return m.updateItemFunc(item) }
func (m *mockCartRepository) DeleteItem(itemID uint) error           { return m.deleteItemFunc(itemID) }
func (m *mockCartRepository) DeleteItems(cartID uint) error          { return m.deleteItemsFunc(cartID) }

type mockProductRepository struct {
	getActiveByIDFunc func(id uint) (*models.Product, error)
	setMainImageFunc  func(imageID uint) error
	getFeaturedFunc   func(limit int) ([]models.Product, error)
	getNewArrivalsFunc func(limit int) ([]models.Product, error)
}

func (m *mockProductRepository) List(filter repository.ProductFilter) ([]models.Product, int64, error) {
	return nil, 0, nil
}
func (m *mockProductRepository) GetActiveByID(id uint) (*models.Product, error) {
	return m.getActiveByIDFunc(id)
}
func (m *mockProductRepository) GetFeatured(limit int) ([]models.Product, error) {
	if m.getFeaturedFunc != nil {
		return m.getFeaturedFunc(limit)
	}
	return nil, nil
}
func (m *mockProductRepository) GetNewArrivals(limit int) ([]models.Product, error) {
	if m.getNewArrivalsFunc != nil {
		return m.getNewArrivalsFunc(limit)
	}
	return nil, nil
}
func (m *mockProductRepository) Create(product *models.Product) error { return nil }
func (m *mockProductRepository) Update(product *models.Product) error { return nil }
func (m *mockProductRepository) SetMainImage(imageID uint) error {
	if m.setMainImageFunc != nil {
		return m.setMainImageFunc(imageID)
	}
	return nil
}
func (m *mockProductRepository) GetImages(productID uint) ([]models.ProductImage, error) {
	return nil, nil
}
func (m *mockProductRepository) AddImage(image *models.ProductImage) error { return nil }

func activeProduct(id uint, price int64) *models.Product {
	return &models.Product{ID: id, Name: "Oltin uzuk", Price: price, InStock: true, IsActive: true}
}

func TestCartService_Add_NewLine(t *testing.T) {
	var created *models.CartItem
	cartRepo := &mockCartRepository{
		getByUserIDFunc: func(userID uint) (*models.Cart, error) {
			return &models.Cart{ID: 7, UserID: userID}, nil
		},
		getItemFunc: func(cartID, productID uint, size string) (*models.CartItem, error) {
			return nil, gorm.ErrRecordNotFound
		},
		createItemFunc: func(item *models.CartItem) error {
			created = item
			return nil
		},
	}
	productRepo := &mockProductRepository{
		getActiveByIDFunc: func(id uint) (*models.Product, error) {
			return activeProduct(id, 1500000), nil
		},
	}

	svc := NewCartService(cartRepo, productRepo)
	cart, err := svc.Add(1, 10, 3, "17")

	assert.NoError(t, err)
	assert.NotNil(t, cart)
	assert.NotNil(t, created)
	assert.Equal(t, uint(7), created.CartID)
	assert.Equal(t, uint(10), created.ProductID)
	assert.Equal(t, 3, created.Quantity)
	assert.Equal(t, "17", created.Size)
}

func TestCartService_Add_MergesExistingLine(t *testing.T) {
	var updated *models.CartItem
	cartRepo := &mockCartRepository{
		getByUserIDFunc: func(userID uint) (*models.Cart, error) {
			return &models.Cart{ID: 7, UserID: userID}, nil
		},
		getItemFunc: func(cartID, productID uint, size string) (*models.CartItem, error) {
			return &models.CartItem{ID: 3, CartID: cartID, ProductID: productID, Quantity: 1, Size: size}, nil
		},
		updateItemFunc: func(item *models.CartItem) error {
			updated = item
			return nil
		},
	}
	productRepo := &mockProductRepository{
		getActiveByIDFunc: func(id uint) (*models.Product, error) {
			return activeProduct(id, 1500000), nil
		},
	}

	svc := NewCartService(cartRepo, productRepo)
	_, err := svc.Add(1, 10, 2, "17")

	// add qty=1 then qty=2 yields a single line with quantity 3
	assert.NoError(t, err)
	assert.NotNil(t, updated)
	assert.Equal(t, 3, updated.Quantity)
}

func TestCartService_Add_SizeMakesDistinctLines(t *testing.T) {
	var requestedSize string
	var created *models.CartItem
	cartRepo := &mockCartRepository{
		getByUserIDFunc: func(userID uint) (*models.Cart, error) {
			return &models.Cart{ID: 7, UserID: userID}, nil
		},
		getItemFunc: func(cartID, productID uint, size string) (*models.CartItem, error) {
			requestedSize = size
			// A line exists for size "M", but "L" is asked for
			return nil, gorm.ErrRecordNotFound
		},
		createItemFunc: func(item *models.CartItem) error {
			created = item
			return nil
		},
	}
	productRepo := &mockProductRepository{
		getActiveByIDFunc: func(id uint) (*models.Product, error) {
			return activeProduct(id, 1000), nil
		},
	}

	svc := NewCartService(cartRepo, productRepo)
	_, err := svc.Add(1, 10, 1, "L")

	assert.NoError(t, err)
	assert.Equal(t, "L", requestedSize)
	assert.Equal(t, "L", created.Size)
}

func TestCartService_Add_OutOfStock(t *testing.T) {
	productRepo := &mockProductRepository{
		getActiveByIDFunc: func(id uint) (*models.Product, error) {
			p := activeProduct(id, 1000)
			p.InStock = false
			return p, nil
		},
	}

	svc := NewCartService(&mockCartRepository{}, productRepo)
	_, err := svc.Add(1, 10, 1, "")

	// business-rule rejection, distinguishable from not-found
	assert.ErrorIs(t, err, ErrOutOfStock)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestCartService_Add_MissingProduct(t *testing.T) {
	productRepo := &mockProductRepository{
		getActiveByIDFunc: func(id uint) (*models.Product, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	svc := NewCartService(&mockCartRepository{}, productRepo)
	_, err := svc.Add(1, 999, 1, "")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCartService_Add_RejectsZeroQuantity(t *testing.T) {
	svc := NewCartService(&mockCartRepository{}, &mockProductRepository{})
	_, err := svc.Add(1, 10, 0, "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCartService_UpdateItem_ZeroDeletesLine(t *testing.T) {
	deleted := uint(0)
	cartRepo := &mockCartRepository{
		getOwnedItemFunc: func(itemID, userID uint) (*models.CartItem, error) {
			return &models.CartItem{ID: itemID, CartID: 7, Quantity: 2}, nil
		},
		deleteItemFunc: func(itemID uint) error {
			deleted = itemID
			return nil
		},
		getByUserIDFunc: func(userID uint) (*models.Cart, error) {
			return &models.Cart{ID: 7, UserID: userID}, nil
		},
	}

	svc := NewCartService(cartRepo, &mockProductRepository{})
	cart, err := svc.UpdateItem(1, 3, 0)

	assert.NoError(t, err)
	assert.Equal(t, uint(3), deleted)
	assert.Equal(t, int64(0), cart.Total())
	assert.Equal(t, 0, cart.ItemsCount())
}

func TestCartService_UpdateItem_OverwritesQuantity(t *testing.T) {
	var updated *models.CartItem
	cartRepo := &mockCartRepository{
		getOwnedItemFunc: func(itemID, userID uint) (*models.CartItem, error) {
			return &models.CartItem{ID: itemID, CartID: 7, Quantity: 5}, nil
		},
		updateItemFunc: func(item *models.CartItem) error {
			updated = item
			return nil
		},
		getByUserIDFunc: func(userID uint) (*models.Cart, error) {
			return &models.Cart{ID: 7, UserID: userID}, nil
		},
	}

	svc := NewCartService(cartRepo, &mockProductRepository{})
	_, err := svc.UpdateItem(1, 3, 2)

	// overwrite, not merge
	assert.NoError(t, err)
	assert.Equal(t, 2, updated.Quantity)
}

func TestCartService_UpdateItem_NotOwned(t *testing.T) {
	cartRepo := &mockCartRepository{
		getOwnedItemFunc: func(itemID, userID uint) (*models.CartItem, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	svc := NewCartService(cartRepo, &mockProductRepository{})
	_, err := svc.UpdateItem(1, 3, 2)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCartService_UpdateItem_NegativeQuantity(t *testing.T) {
	svc := NewCartService(&mockCartRepository{}, &mockProductRepository{})
	_, err := svc.UpdateItem(1, 3, -1)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCartService_RemoveItem_NotOwned(t *testing.T) {
	cartRepo := &mockCartRepository{
		getOwnedItemFunc: func(itemID, userID uint) (*models.CartItem, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	svc := NewCartService(cartRepo, &mockProductRepository{})
	_, err := svc.RemoveItem(1, 99)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCartService_Clear(t *testing.T) {
	cleared := uint(0)
	cartRepo := &mockCartRepository{
		getByUserIDFunc: func(userID uint) (*models.Cart, error) {
			return &models.Cart{ID: 7, UserID: userID}, nil
		},
		deleteItemsFunc: func(cartID uint) error {
			cleared = cartID
			return nil
		},
	}

	svc := NewCartService(cartRepo, &mockProductRepository{})
	cart, err := svc.Clear(1)

	assert.NoError(t, err)
	assert.Equal(t, uint(7), cleared)
	assert.NotNil(t, cart)
}

func TestCartService_GetOrCreate_CreatesLazily(t *testing.T) {
	calls := 0
	var createdCart *models.Cart
	cartRepo := &mockCartRepository{
		getByUserIDFunc: func(userID uint) (*models.Cart, error) {
			calls++
			if calls == 1 {
				return nil, gorm.ErrRecordNotFound
			}
			return createdCart, nil
		},
		createFunc: func(cart *models.Cart) error {
			cart.ID = 11
			createdCart = cart
			return nil
		},
	}

	svc := NewCartService(cartRepo, &mockProductRepository{})
	cart, err := svc.GetOrCreate(5)

	assert.NoError(t, err)
	assert.Equal(t, uint(11), cart.ID)
	assert.Equal(t, uint(5), cart.UserID)
}

func TestCartService_GetOrCreate_PropagatesErrors(t *testing.T) {
	boom := errors.New("connection refused")
	cartRepo := &mockCartRepository{
		getByUserIDFunc: func(userID uint) (*models.Cart, error) {
			return nil, boom
		},
	}

	svc := NewCartService(cartRepo, &mockProductRepository{})
	_, err := svc.GetOrCreate(5)

	assert.ErrorIs(t, err, boom)
}
