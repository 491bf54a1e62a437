package models

// CartItem is one cart line. The (cart, product, size) triple is unique:
// the same product in a different size is an independent line.
type CartItem struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	CartID    uint    `json:"cart_id" gorm:"uniqueIndex:idx_cart_product_size;not null"`
	ProductID uint    `json:"product_id" gorm:"uniqueIndex:idx_cart_product_size;not null"`
	Product   Product `json:"product"`
	Quantity  int     `json:"quantity" gorm:"default:1"`
	Size      string  `json:"size" gorm:"size:50;uniqueIndex:idx_cart_product_size"`
}

// Subtotal floats with the current product price, unlike OrderItem.
func (i *CartItem) Subtotal() int64 {
	return i.Product.Price * int64(i.Quantity)
}
