package repository

import (
	"jewelry_shop/internal/models"

	"gorm.io/gorm"
)

// ProductFilter narrows the product listing. Zero values mean "no filter".
type ProductFilter struct {
	CategorySlug string
	MinPrice     *int64
	MaxPrice     *int64
	MetalType    string
	IsFeatured   *bool
	InStock      *bool
	Search       string
	Ordering     string // price, -price, created_at, -created_at, weight, -weight
	Page         int
	PageSize     int
}

type ProductRepository interface {
	List(filter ProductFilter) ([]models.Product, int64, error)
	GetActiveByID(id uint) (*models.Product, error)
	GetFeatured(limit int) ([]models.Product, error)
	GetNewArrivals(limit int) ([]models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	SetMainImage(imageID uint) error
	GetImages(productID uint) ([]models.ProductImage, error)
	AddImage(image *models.ProductImage) error
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) activeQuery() *gorm.DB {
	return r.db.Model(&models.Product{}).
		Where("products.is_active = ?", true).
		Preload("Category").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("product_images.sort_order ASC")
		})
}

var orderingColumns = map[string]string{
	"price":       "price ASC",
	"-price":      "price DESC",
	"created_at":  "created_at ASC",
	"-created_at": "created_at DESC",
	"weight":      "weight ASC",
	"-weight":     "weight DESC",
}

func (r *productRepository) List(filter ProductFilter) ([]models.Product, int64, error) {
	query := r.activeQuery()

	if filter.CategorySlug != "" {
		query = query.Joins("JOIN categories ON categories.id = products.category_id").
			Where("categories.slug = ?", filter.CategorySlug)
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}
	if filter.MetalType != "" {
		query = query.Where("metal_type = ?", filter.MetalType)
	}
	if filter.IsFeatured != nil {
		query = query.Where("is_featured = ?", *filter.IsFeatured)
	}
	if filter.InStock != nil {
		query = query.Where("in_stock = ?", *filter.InStock)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("products.name ILIKE ? OR products.description ILIKE ?", pattern, pattern)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	ordering, ok := orderingColumns[filter.Ordering]
	if !ok {
		ordering = "created_at DESC"
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = 20
	}

	var products []models.Product
	err := query.Order(ordering).
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&products).Error
	return products, count, err
}

func (r *productRepository) GetActiveByID(id uint) (*models.Product, error) {
	var product models.Product
	err := r.activeQuery().Where("products.id = ?", id).First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) GetFeatured(limit int) ([]models.Product, error) {
	var products []models.Product
	err := r.activeQuery().
		Where("is_featured = ?", true).
		Order("created_at DESC").
		Limit(limit).
		Find(&products).Error
	return products, err
}

func (r *productRepository) GetNewArrivals(limit int) ([]models.Product, error) {
	var products []models.Product
	err := r.activeQuery().
		Order("created_at DESC").
		Limit(limit).
		Find(&products).Error
	return products, err
}

func (r *productRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepository) Update(product *models.Product) error {
	return r.db.Save(product).Error
}

// SetMainImage flags one image as main and unsets any previous main flag of
// the same product. Read-then-bulk-update, no row locking: concurrent calls
// on one product are last-write-wins.
func (r *productRepository) SetMainImage(imageID uint) error {
	var image models.ProductImage
	if err := r.db.First(&image, imageID).Error; err != nil {
		return err
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.ProductImage{}).
			Where("product_id = ? AND is_main = ?", image.ProductID, true).
			Update("is_main", false).Error; err != nil {
			return err
		}
		return tx.Model(&models.ProductImage{}).
			Where("id = ?", imageID).
			Update("is_main", true).Error
	})
}

func (r *productRepository) GetImages(productID uint) ([]models.ProductImage, error) {
	var images []models.ProductImage
	err := r.db.Where("product_id = ?", productID).
		Order("sort_order ASC").
		Find(&images).Error
	return images, err
}

func (r *productRepository) AddImage(image *models.ProductImage) error {
	return r.db.Create(image).Error
}
