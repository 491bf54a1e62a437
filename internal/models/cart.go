package models

import "time"

// Cart is the single mutable cart of a user, created lazily on first access.
type Cart struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	UserID    uint       `json:"user_id" gorm:"uniqueIndex;not null"`
	Items     []CartItem `json:"items" gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Total sums item subtotals at current product prices. Items and their
// products must be preloaded.
func (c *Cart) Total() int64 {
	var total int64
	for _, item := range c.Items {
		total += item.Subtotal()
	}
	return total
}

// ItemsCount sums item quantities.
func (c *Cart) ItemsCount() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}
