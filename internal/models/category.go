package models

import (
	"strings"

	"gorm.io/gorm"
)

type Category struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	Name      string `json:"name" gorm:"size:100;not null"`
	Slug      string `json:"slug" gorm:"size:100;uniqueIndex"`
	Icon      string `json:"icon" gorm:"size:10"`
	ImageURL  string `json:"image" gorm:"size:500"`
	SortOrder int    `json:"order" gorm:"default:0"`
	IsActive  bool   `json:"is_active" gorm:"default:true"`
}

// BeforeSave derives the slug from the name when none is set.
func (c *Category) BeforeSave(tx *gorm.DB) error {
	if c.Slug == "" {
		c.Slug = Slugify(c.Name)
	}
	return nil
}

// Slugify lowercases and replaces non-alphanumeric runs with single hyphens.
func Slugify(name string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
