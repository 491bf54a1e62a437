package services

import (
	"context"
	"errors"
	"log"
	"time"

	"jewelry_shop/internal/models"
	"jewelry_shop/internal/redis"
	"jewelry_shop/internal/repository"

	"gorm.io/gorm"
)

const hotListLimit = 10

type CatalogService interface {
	ListCategories() ([]models.Category, error)
	ListBanners() ([]models.Banner, error)
	ListProducts(filter repository.ProductFilter) ([]models.Product, int64, error)
	GetProduct(id uint) (*models.Product, error)
	GetFeatured(ctx context.Context) ([]models.Product, error)
	GetNewArrivals(ctx context.Context) ([]models.Product, error)
	SetMainImage(imageID uint) error
}

type catalogService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	bannerRepo   repository.BannerRepository
	cache        *redis.Client
	cacheTTL     time.Duration
}

func NewCatalogService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	bannerRepo repository.BannerRepository,
	cache *redis.Client,
	cacheTTL time.Duration,
) CatalogService {
	return &catalogService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		bannerRepo:   bannerRepo,
		cache:        cache,
		cacheTTL:     cacheTTL,
	}
}

func (s *catalogService) ListCategories() ([]models.Category, error) {
	return s.categoryRepo.GetActive()
}

func (s *catalogService) ListBanners() ([]models.Banner, error) {
	return s.bannerRepo.GetActive()
}

func (s *catalogService) ListProducts(filter repository.ProductFilter) ([]models.Product, int64, error) {
	return s.productRepo.List(filter)
}

func (s *catalogService) GetProduct(id uint) (*models.Product, error) {
	product, err := s.productRepo.GetActiveByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return product, err
}

func (s *catalogService) GetFeatured(ctx context.Context) ([]models.Product, error) {
	return s.cachedList(ctx, redis.KeyFeaturedProducts, func() ([]models.Product, error) {
		return s.productRepo.GetFeatured(hotListLimit)
	})
}

func (s *catalogService) GetNewArrivals(ctx context.Context) ([]models.Product, error) {
	return s.cachedList(ctx, redis.KeyNewArrivals, func() ([]models.Product, error) {
		return s.productRepo.GetNewArrivals(hotListLimit)
	})
}

// cachedList serves from Redis when possible. Cache trouble degrades to a
// direct query; the catalog must never fail because the cache is down.
func (s *catalogService) cachedList(ctx context.Context, key string, load func() ([]models.Product, error)) ([]models.Product, error) {
	if s.cache != nil {
		cached, err := s.cache.GetProducts(ctx, key)
		if err != nil {
			log.Printf("catalog cache read failed for %s: %v", key, err)
		} else if cached != nil {
			return cached, nil
		}
	}

	products, err := load()
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetProducts(ctx, key, products, s.cacheTTL); err != nil {
			log.Printf("catalog cache write failed for %s: %v", key, err)
		}
	}
	return products, nil
}

// SetMainImage promotes one image to main and drops the cached hot lists.
func (s *catalogService) SetMainImage(imageID uint) error {
	err := s.productRepo.SetMainImage(imageID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	if s.cache != nil {
		if err := s.cache.InvalidateCatalog(context.Background()); err != nil {
			log.Printf("catalog cache invalidation failed: %v", err)
		}
	}
	return nil
}
