package services

import (
	"errors"

	"jewelry_shop/internal/models"
	"jewelry_shop/internal/repository"

	"gorm.io/gorm"
)

type CartService interface {
	GetOrCreate(userID uint) (*models.Cart, error)
	Add(userID, productID uint, quantity int, size string) (*models.Cart, error)
	UpdateItem(userID, itemID uint, quantity int) (*models.Cart, error)
	RemoveItem(userID, itemID uint) (*models.Cart, error)
	Clear(userID uint) (*models.Cart, error)
}

type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) CartService {
	return &cartService{cartRepo: cartRepo, productRepo: productRepo}
}

// GetOrCreate returns the user's cart, creating an empty one on first access.
func (s *cartService) GetOrCreate(userID uint) (*models.Cart, error) {
	cart, err := s.cartRepo.GetByUserID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cart = &models.Cart{UserID: userID}
		if err := s.cartRepo.Create(cart); err != nil {
			return nil, err
		}
		return s.cartRepo.GetByUserID(userID)
	}
	return cart, err
}

// Add puts quantity of a product into the cart. When a line with the same
// (product, size) key exists its quantity is incremented, not replaced.
func (s *cartService) Add(userID, productID uint, quantity int, size string) (*models.Cart, error) {
	if quantity < 1 {
		return nil, ErrInvalidInput
	}

	product, err := s.productRepo.GetActiveByID(productID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if !product.InStock {
		return nil, ErrOutOfStock
	}

	cart, err := s.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}

	item, err := s.cartRepo.GetItem(cart.ID, productID, size)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		item = &models.CartItem{
			CartID:    cart.ID,
			ProductID: productID,
			Quantity:  quantity,
			Size:      size,
		}
		if err := s.cartRepo.CreateItem(item); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	default:
		item.Quantity += quantity
		if err := s.cartRepo.UpdateItem(item); err != nil {
			return nil, err
		}
	}

	return s.cartRepo.GetByUserID(userID)
}

// UpdateItem overwrites a line's quantity. Zero deletes the line; that is
// the removal path, not a validation error.
func (s *cartService) UpdateItem(userID, itemID uint, quantity int) (*models.Cart, error) {
	if quantity < 0 {
		return nil, ErrInvalidInput
	}

	item, err := s.cartRepo.GetOwnedItem(itemID, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if quantity == 0 {
		if err := s.cartRepo.DeleteItem(item.ID); err != nil {
			return nil, err
		}
	} else {
		item.Quantity = quantity
		if err := s.cartRepo.UpdateItem(item); err != nil {
			return nil, err
		}
	}

	return s.cartRepo.GetByUserID(userID)
}

func (s *cartService) RemoveItem(userID, itemID uint) (*models.Cart, error) {
	item, err := s.cartRepo.GetOwnedItem(itemID, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := s.cartRepo.DeleteItem(item.ID); err != nil {
		return nil, err
	}
	return s.cartRepo.GetByUserID(userID)
}

// Clear removes every line from the user's cart. Idempotent.
func (s *cartService) Clear(userID uint) (*models.Cart, error) {
	cart, err := s.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}
	if err := s.cartRepo.DeleteItems(cart.ID); err != nil {
		return nil, err
	}
	return s.cartRepo.GetByUserID(userID)
}
