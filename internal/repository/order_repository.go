package repository

import (
	"jewelry_shop/internal/models"

	"gorm.io/gorm"
)

type OrderRepository interface {
	CreateWithItems(order *models.Order) error
	GetByID(id uint) (*models.Order, error)
	GetOwnedByID(id, userID uint) (*models.Order, error)
	ListByUser(userID uint, page, pageSize int) ([]models.Order, int64, error)
	UpdateStatus(id uint, status models.OrderStatus) error
	SetPaid(id uint, paid bool) error
	CountPending() (int64, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) preloaded() *gorm.DB {
	return r.db.Preload("Items").
		Preload("Items.Product").
		Preload("Items.Product.Category").
		Preload("Items.Product.Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("product_images.sort_order ASC")
		})
}

// CreateWithItems persists the order and its items, then computes and stores
// the total from the persisted items. Runs in one transaction so a failure
// at any step leaves no partial order behind.
func (r *orderRepository) CreateWithItems(order *models.Order) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}

		var total int64
		err := tx.Model(&models.OrderItem{}).
			Where("order_id = ?", order.ID).
			Select("COALESCE(SUM(price * quantity), 0)").
			Scan(&total).Error
		if err != nil {
			return err
		}

		order.Total = total
		return tx.Model(&models.Order{}).
			Where("id = ?", order.ID).
			Update("total", total).Error
	})
}

func (r *orderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	err := r.preloaded().Preload("User").First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetOwnedByID(id, userID uint) (*models.Order, error) {
	var order models.Order
	err := r.preloaded().Where("user_id = ?", userID).First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) ListByUser(userID uint, page, pageSize int) ([]models.Order, int64, error) {
	var count int64
	err := r.db.Model(&models.Order{}).Where("user_id = ?", userID).Count(&count).Error
	if err != nil {
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}

	var orders []models.Order
	err = r.preloaded().
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&orders).Error
	return orders, count, err
}

func (r *orderRepository) UpdateStatus(id uint, status models.OrderStatus) error {
	return r.db.Model(&models.Order{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *orderRepository) SetPaid(id uint, paid bool) error {
	result := r.db.Model(&models.Order{}).
		Where("id = ?", id).
		Update("is_paid", paid)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountPending backs the admin dashboard badge.
func (r *orderRepository) CountPending() (int64, error) {
	var count int64
	err := r.db.Model(&models.Order{}).
		Where("status = ?", models.OrderPending).
		Count(&count).Error
	return count, err
}
