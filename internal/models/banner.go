package models

import "time"

// Banner is a promotional carousel entry on the storefront home page.
type Banner struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"size:100;not null"`
	Subtitle  string    `json:"subtitle" gorm:"size:200"`
	Emoji     string    `json:"emoji" gorm:"size:10;default:'💎'"`
	Gradient  string    `json:"gradient" gorm:"size:200"`
	Link      string    `json:"link" gorm:"size:200"`
	ImageURL  string    `json:"image" gorm:"size:500"`
	SortOrder int       `json:"order" gorm:"default:0"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
}
