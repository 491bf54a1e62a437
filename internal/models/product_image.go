package models

// ProductImage holds one image of a product. At most one image per product
// carries IsMain; assigning a new main image unsets the previous one
// (see ProductRepository.SetMainImage).
type ProductImage struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	ProductID uint   `json:"product_id" gorm:"index;not null"`
	ImageURL  string `json:"image" gorm:"size:500"`
	IsMain    bool   `json:"is_main" gorm:"default:false"`
	SortOrder int    `json:"order" gorm:"default:0"`
}
