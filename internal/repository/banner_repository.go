package repository

import (
	"jewelry_shop/internal/models"

	"gorm.io/gorm"
)

type BannerRepository interface {
	GetActive() ([]models.Banner, error)
	Create(banner *models.Banner) error
}

type bannerRepository struct {
	db *gorm.DB
}

func NewBannerRepository(db *gorm.DB) BannerRepository {
	return &bannerRepository{db: db}
}

func (r *bannerRepository) GetActive() ([]models.Banner, error) {
	var banners []models.Banner
	err := r.db.Where("is_active = ?", true).
		Order("sort_order ASC, created_at DESC").
		Find(&banners).Error
	return banners, err
}

func (r *bannerRepository) Create(banner *models.Banner) error {
	return r.db.Create(banner).Error
}
