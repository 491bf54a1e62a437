package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"jewelry_shop/internal/repository"
	"jewelry_shop/internal/services"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogService services.CatalogService
	pageSize       int
}

func NewCatalogHandler(catalogService services.CatalogService, pageSize int) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService, pageSize: pageSize}
}

func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.catalogService.ListCategories()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load categories"})
		return
	}

	out := make([]CategoryResponse, 0, len(categories))
	for i := range categories {
		out = append(out, toCategoryResponse(&categories[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler) ListBanners(c *gin.Context) {
	banners, err := h.catalogService.ListBanners()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load banners"})
		return
	}
	c.JSON(http.StatusOK, banners)
}

func (h *CatalogHandler) ListProducts(c *gin.Context) {
	filter := repository.ProductFilter{
		CategorySlug: c.Query("category"),
		MetalType:    c.Query("metal_type"),
		Search:       c.Query("search"),
		Ordering:     c.Query("ordering"),
		PageSize:     h.pageSize,
	}

	if v := c.Query("min_price"); v != "" {
		price, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_price"})
			return
		}
		filter.MinPrice = &price
	}
	if v := c.Query("max_price"); v != "" {
		price, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_price"})
			return
		}
		filter.MaxPrice = &price
	}
	if v := c.Query("is_featured"); v != "" {
		featured := v == "true" || v == "1"
		filter.IsFeatured = &featured
	}
	if v := c.Query("in_stock"); v != "" {
		inStock := v == "true" || v == "1"
		filter.InStock = &inStock
	}
	if v := c.Query("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil || page < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page"})
			return
		}
		filter.Page = page
	}

	products, count, err := h.catalogService.ListProducts(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load products"})
		return
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	c.JSON(http.StatusOK, PageResponse{
		Count:    count,
		Page:     page,
		PageSize: h.pageSize,
		Results:  toProductResponses(products),
	})
}

func (h *CatalogHandler) GetProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	product, err := h.catalogService.GetProduct(uint(id))
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load product"})
		return
	}

	c.JSON(http.StatusOK, toProductResponse(product))
}

func (h *CatalogHandler) Featured(c *gin.Context) {
	products, err := h.catalogService.GetFeatured(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load featured products"})
		return
	}
	c.JSON(http.StatusOK, toProductResponses(products))
}

func (h *CatalogHandler) NewArrivals(c *gin.Context) {
	products, err := h.catalogService.GetNewArrivals(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load new arrivals"})
		return
	}
	c.JSON(http.StatusOK, toProductResponses(products))
}
