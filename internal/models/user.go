package models

import (
	"strings"
	"time"
)

type User struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	TelegramID int64     `json:"telegram_id" gorm:"uniqueIndex;not null"`
	FirstName  string    `json:"first_name" gorm:"size:150;not null"`
	LastName   string    `json:"last_name" gorm:"size:150"`
	Username   string    `json:"username" gorm:"size:150"`
	Phone      string    `json:"phone" gorm:"size:20"`
	Language   string    `json:"language" gorm:"size:2;default:'uz'"` // uz, ru
	IsActive   bool      `json:"is_active" gorm:"default:true"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

const (
	LanguageUzbek   = "uz"
	LanguageRussian = "ru"
)

func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}
