package handlers

import (
	"time"

	"jewelry_shop/internal/models"
	"jewelry_shop/internal/services"
)

// Wire representations. Derived fields (discount percent, main image, cart
// totals, subtotals) are computed here at the serialization boundary rather
// than stored.

type CategoryResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
	Icon string `json:"icon"`
	Image string `json:"image"`
}

type ProductImageResponse struct {
	ID     uint   `json:"id"`
	Image  string `json:"image"`
	IsMain bool   `json:"is_main"`
}

type ProductResponse struct {
	ID              uint                   `json:"id"`
	Name            string                 `json:"name"`
	Description     string                 `json:"description,omitempty"`
	Price           int64                  `json:"price"`
	OldPrice        *int64                 `json:"old_price"`
	DiscountPercent int                    `json:"discount_percent"`
	MainImage       string                 `json:"main_image"`
	Images          []ProductImageResponse `json:"images"`
	Category        CategoryResponse       `json:"category"`
	MetalType       models.MetalType       `json:"metal_type"`
	Weight          float64                `json:"weight"`
	Size            string                 `json:"size,omitempty"`
	Proba           string                 `json:"proba,omitempty"`
	InStock         bool                   `json:"in_stock"`
	IsFeatured      bool                   `json:"is_featured"`
	CreatedAt       time.Time              `json:"created_at"`
}

type CartItemResponse struct {
	ID       uint            `json:"id"`
	Product  ProductResponse `json:"product"`
	Quantity int             `json:"quantity"`
	Size     string          `json:"size"`
	Subtotal int64           `json:"subtotal"`
}

type CartResponse struct {
	ID         uint               `json:"id"`
	Items      []CartItemResponse `json:"items"`
	Total      int64              `json:"total"`
	ItemsCount int                `json:"items_count"`
}

type OrderItemResponse struct {
	ID       uint            `json:"id"`
	Product  ProductResponse `json:"product"`
	Quantity int             `json:"quantity"`
	Price    int64           `json:"price"`
	Size     string          `json:"size"`
	Subtotal int64           `json:"subtotal"`
}

type OrderResponse struct {
	ID                   uint                 `json:"id"`
	Status               models.OrderStatus   `json:"status"`
	StatusDisplay        string               `json:"status_display"`
	Total                int64                `json:"total"`
	Phone                string               `json:"phone"`
	DeliveryAddress      string               `json:"delivery_address"`
	Comment              string               `json:"comment"`
	PaymentMethod        models.PaymentMethod `json:"payment_method"`
	PaymentMethodDisplay string               `json:"payment_method_display"`
	IsPaid               bool                 `json:"is_paid"`
	Items                []OrderItemResponse  `json:"items"`
	CreatedAt            time.Time            `json:"created_at"`
}

// PageResponse is the paginated list envelope.
type PageResponse struct {
	Count    int64       `json:"count"`
	Page     int         `json:"page"`
	PageSize int         `json:"page_size"`
	Results  interface{} `json:"results"`
}

func toCategoryResponse(c *models.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name, Slug: c.Slug, Icon: c.Icon, Image: c.ImageURL}
}

func toProductResponse(p *models.Product) ProductResponse {
	images := make([]ProductImageResponse, 0, len(p.Images))
	for _, img := range p.Images {
		images = append(images, ProductImageResponse{ID: img.ID, Image: img.ImageURL, IsMain: img.IsMain})
	}
	return ProductResponse{
		ID:              p.ID,
		Name:            p.Name,
		Description:     p.Description,
		Price:           p.Price,
		OldPrice:        p.OldPrice,
		DiscountPercent: p.DiscountPercent(),
		MainImage:       p.MainImage(),
		Images:          images,
		Category:        toCategoryResponse(&p.Category),
		MetalType:       p.MetalType,
		Weight:          p.Weight,
		Size:            p.Size,
		Proba:           p.Proba,
		InStock:         p.InStock,
		IsFeatured:      p.IsFeatured,
		CreatedAt:       p.CreatedAt,
	}
}

func toProductResponses(products []models.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, toProductResponse(&products[i]))
	}
	return out
}

func toCartResponse(cart *models.Cart) CartResponse {
	items := make([]CartItemResponse, 0, len(cart.Items))
	for i := range cart.Items {
		item := &cart.Items[i]
		items = append(items, CartItemResponse{
			ID:       item.ID,
			Product:  toProductResponse(&item.Product),
			Quantity: item.Quantity,
			Size:     item.Size,
			Subtotal: item.Subtotal(),
		})
	}
	return CartResponse{
		ID:         cart.ID,
		Items:      items,
		Total:      cart.Total(),
		ItemsCount: cart.ItemsCount(),
	}
}

func toOrderResponse(order *models.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(order.Items))
	for i := range order.Items {
		item := &order.Items[i]
		items = append(items, OrderItemResponse{
			ID:       item.ID,
			Product:  toProductResponse(&item.Product),
			Quantity: item.Quantity,
			Price:    item.Price,
			Size:     item.Size,
			Subtotal: item.Subtotal(),
		})
	}
	return OrderResponse{
		ID:                   order.ID,
		Status:               order.Status,
		StatusDisplay:        services.StatusLabel(order.Status),
		Total:                order.Total,
		Phone:                order.Phone,
		DeliveryAddress:      order.DeliveryAddress,
		Comment:              order.Comment,
		PaymentMethod:        order.PaymentMethod,
		PaymentMethodDisplay: services.PaymentLabel(order.PaymentMethod),
		IsPaid:               order.IsPaid,
		Items:                items,
		CreatedAt:            order.CreatedAt,
	}
}

func toOrderResponses(orders []models.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, toOrderResponse(&orders[i]))
	}
	return out
}
