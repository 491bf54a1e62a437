package models

// OrderItem is one order line. Price is snapshotted from the product at
// creation time and never changes afterwards, regardless of catalog edits.
type OrderItem struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	OrderID   uint    `json:"order_id" gorm:"index;not null"`
	ProductID uint    `json:"product_id" gorm:"not null"`
	Product   Product `json:"product" gorm:"constraint:OnDelete:RESTRICT"`
	Quantity  int     `json:"quantity" gorm:"default:1"`
	Price     int64   `json:"price" gorm:"not null"` // price at time of order
	Size      string  `json:"size" gorm:"size:50"`
}

func (i *OrderItem) Subtotal() int64 {
	return i.Price * int64(i.Quantity)
}
