package models

import "time"

type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderConfirmed  OrderStatus = "confirmed"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "cash"
	PaymentTransfer PaymentMethod = "transfer"
)

// ValidOrderStatus reports whether s is a known status value. The lifecycle
// itself is not enforced: the admin surface may set any status.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

type Order struct {
	ID              uint          `json:"id" gorm:"primaryKey"`
	UserID          uint          `json:"user_id" gorm:"index;not null"`
	User            User          `json:"-" gorm:"constraint:OnDelete:RESTRICT"`
	Status          OrderStatus   `json:"status" gorm:"size:20;default:'pending'"`
	Total           int64         `json:"total" gorm:"default:0"` // snapshot, not derived live
	Phone           string        `json:"phone" gorm:"size:20;not null"`
	DeliveryAddress string        `json:"delivery_address" gorm:"type:text"`
	Comment         string        `json:"comment" gorm:"type:text"`
	PaymentMethod   PaymentMethod `json:"payment_method" gorm:"size:20;default:'cash'"`
	IsPaid          bool          `json:"is_paid" gorm:"default:false"`
	Items           []OrderItem   `json:"items"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}
