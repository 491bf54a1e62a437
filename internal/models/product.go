package models

import "time"

type MetalType string

const (
	MetalGold      MetalType = "gold"
	MetalSilver    MetalType = "silver"
	MetalPlatinum  MetalType = "platinum"
	MetalWhiteGold MetalType = "white_gold"
)

type Product struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Name        string         `json:"name" gorm:"size:255;not null"`
	Description string         `json:"description" gorm:"type:text"`
	Price       int64          `json:"price" gorm:"not null"`
	OldPrice    *int64         `json:"old_price"`
	CategoryID  uint           `json:"category_id" gorm:"not null"`
	Category    Category       `json:"category" gorm:"constraint:OnDelete:RESTRICT"`
	MetalType   MetalType      `json:"metal_type" gorm:"size:20;default:'gold'"`
	Weight      float64        `json:"weight"` // grams
	Size        string         `json:"size" gorm:"size:50"`
	Proba       string         `json:"proba" gorm:"size:10;default:'585'"` // purity marking: 585, 750, 925
	InStock     bool           `json:"in_stock" gorm:"default:true"`
	IsFeatured  bool           `json:"is_featured" gorm:"default:false"`
	IsActive    bool           `json:"is_active" gorm:"default:true"`
	Images      []ProductImage `json:"images" gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// DiscountPercent is the markdown relative to the old price, truncated to a
// whole percent. Zero when there is no old price or the old price is not
// higher.
func (p *Product) DiscountPercent() int {
	if p.OldPrice == nil || *p.OldPrice <= p.Price {
		return 0
	}
	return int((*p.OldPrice - p.Price) * 100 / *p.OldPrice)
}

// MainImage returns the URL of the image flagged as main, else the first
// image by sort order, else an empty string. Images must be preloaded.
func (p *Product) MainImage() string {
	for _, img := range p.Images {
		if img.IsMain {
			return img.ImageURL
		}
	}
	if len(p.Images) > 0 {
		return p.Images[0].ImageURL
	}
	return ""
}
