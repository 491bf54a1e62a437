package services

import (
	"errors"
	"fmt"

	"jewelry_shop/internal/models"
	"jewelry_shop/internal/repository"

	"gorm.io/gorm"
)

// OrderLine is one requested line of a new order.
type OrderLine struct {
	ProductID uint   `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Size      string `json:"size"`
}

type CreateOrderInput struct {
	Items           []OrderLine
	Phone           string
	DeliveryAddress string
	Comment         string
	PaymentMethod   models.PaymentMethod
}

type OrderService interface {
	Create(userID uint, input CreateOrderInput) (*models.Order, error)
	ListByUser(userID uint, page, pageSize int) ([]models.Order, int64, error)
	GetOwned(orderID, userID uint) (*models.Order, error)
	UpdateStatus(orderID uint, status models.OrderStatus) (*models.Order, error)
	SetPaid(orderID uint, paid bool) error
	CountPending() (int64, error)
}

type orderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	notifier    Notifier
}

func NewOrderService(orderRepo repository.OrderRepository, productRepo repository.ProductRepository, notifier Notifier) OrderService {
	return &orderService{orderRepo: orderRepo, productRepo: productRepo, notifier: notifier}
}

// Create validates every line up front and persists the order atomically:
// either the whole order with all its items and total exists afterwards, or
// nothing does. Item prices are snapshotted from the current product prices.
func (s *orderService) Create(userID uint, input CreateOrderInput) (*models.Order, error) {
	if len(input.Items) == 0 {
		return nil, fmt.Errorf("%w: order needs at least one item", ErrInvalidInput)
	}
	if input.Phone == "" {
		return nil, fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}
	if input.PaymentMethod == "" {
		input.PaymentMethod = models.PaymentCash
	}
	if input.PaymentMethod != models.PaymentCash && input.PaymentMethod != models.PaymentTransfer {
		return nil, fmt.Errorf("%w: unknown payment method %q", ErrInvalidInput, input.PaymentMethod)
	}

	items := make([]models.OrderItem, 0, len(input.Items))
	for _, line := range input.Items {
		if line.Quantity < 1 {
			return nil, fmt.Errorf("%w: quantity must be positive", ErrInvalidInput)
		}
		product, err := s.productRepo.GetActiveByID(line.ProductID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product #%d", ErrNotFound, line.ProductID)
		}
		if err != nil {
			return nil, err
		}
		items = append(items, models.OrderItem{
			ProductID: product.ID,
			Quantity:  line.Quantity,
			Price:     product.Price, // snapshot, immutable from here on
			Size:      line.Size,
		})
	}

	order := &models.Order{
		UserID:          userID,
		Status:          models.OrderPending,
		Phone:           input.Phone,
		DeliveryAddress: input.DeliveryAddress,
		Comment:         input.Comment,
		PaymentMethod:   input.PaymentMethod,
		Items:           items,
	}

	if err := s.orderRepo.CreateWithItems(order); err != nil {
		return nil, err
	}

	created, err := s.orderRepo.GetByID(order.ID)
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.OrderCreated(created)
	}
	return created, nil
}

func (s *orderService) ListByUser(userID uint, page, pageSize int) ([]models.Order, int64, error) {
	return s.orderRepo.ListByUser(userID, page, pageSize)
}

func (s *orderService) GetOwned(orderID, userID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetOwnedByID(orderID, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return order, err
}

// UpdateStatus is the admin surface's entry point. Any known status may be
// set from any other; the lifecycle order is not enforced. The owning user
// gets a best-effort notification that never blocks or reverts the change.
func (s *orderService) UpdateStatus(orderID uint, status models.OrderStatus) (*models.Order, error) {
	if !models.ValidOrderStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, status)
	}

	if _, err := s.orderRepo.GetByID(orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := s.orderRepo.UpdateStatus(orderID, status); err != nil {
		return nil, err
	}

	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.StatusChanged(order, status)
	}
	return order, nil
}

func (s *orderService) SetPaid(orderID uint, paid bool) error {
	err := s.orderRepo.SetPaid(orderID, paid)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *orderService) CountPending() (int64, error) {
	return s.orderRepo.CountPending()
}
