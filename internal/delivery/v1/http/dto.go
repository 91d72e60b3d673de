package http

import (
	"time"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/shopspring/decimal"
)

// PRODUCTS

type ProductResponse struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price" swaggertype:"string"`
	Image         string          `json:"image"`
	Category      string          `json:"category"`
	Rating        float64         `json:"rating"`
	Reviews       int             `json:"reviews"`
	StockQuantity *int            `json:"stock_quantity,omitempty"`
	IsFeatured    bool            `json:"is_featured"`
	CreatedAt     *time.Time      `json:"created_at,omitempty"`
}

// CreateProductRequest — JSON-тело POST /products. Цена принимается числом или строкой.
type CreateProductRequest struct {
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price" swaggertype:"string"`
	Image         string          `json:"image"`
	Category      string          `json:"category"`
	Rating        float64         `json:"rating"`
	Reviews       int             `json:"reviews"`
	StockQuantity *int            `json:"stock_quantity"`
	IsFeatured    bool            `json:"is_featured"`
}

type UpdateProductRequest struct {
	Name          *string          `json:"name"`
	Description   *string          `json:"description"`
	Price         *decimal.Decimal `json:"price" swaggertype:"string"`
	Image         *string          `json:"image"`
	Category      *string          `json:"category"`
	Rating        *float64         `json:"rating"`
	Reviews       *int             `json:"reviews"`
	StockQuantity *int             `json:"stock_quantity"`
	IsFeatured    *bool            `json:"is_featured"`
}

// CATEGORIES

type CategoryResponse struct {
	ID   int64  `json:"id"`
	Slug string `json:"slug"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

type CreateCategoryRequest struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

type UpdateCategoryRequest struct {
	Slug *string `json:"slug"`
	Name *string `json:"name"`
	Icon *string `json:"icon"`
}

// ORDERS

type OrderItemResponse struct {
	ID        int64            `json:"id"`
	ProductID int64            `json:"product_id"`
	Quantity  int              `json:"quantity"`
	Price     decimal.Decimal  `json:"price" swaggertype:"string"`
	Product   *ProductResponse `json:"product,omitempty"`
}

type OrderResponse struct {
	ID          int64               `json:"id"`
	UserID      string              `json:"user_id"`
	Status      string              `json:"status"`
	TotalAmount decimal.Decimal     `json:"total_amount" swaggertype:"string"`
	Items       []OrderItemResponse `json:"items"`
	CreatedAt   *time.Time          `json:"created_at,omitempty"`
}

type OrderLineRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

type CreateOrderRequest struct {
	UserID string             `json:"user_id"`
	Items  []OrderLineRequest `json:"items"`
}

type UpdateOrderRequest struct {
	Status *string `json:"status"`
}

// IMAGES / STATUS

type ImageResponse struct {
	URL  string `json:"url"`
	Path string `json:"path"`
}

type StatusResponse struct {
	Configured   bool   `json:"configured"`
	Reachable    bool   `json:"reachable"`
	ProductCount int64  `json:"product_count"`
	Error        string `json:"error,omitempty"`
}

// MAPPERS

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func toProductResponse(p domain.Product) ProductResponse {
	return ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price,
		Image:         p.Image,
		Category:      p.Category,
		Rating:        p.Rating,
		Reviews:       p.Reviews,
		StockQuantity: p.StockQuantity,
		IsFeatured:    p.IsFeatured,
		CreatedAt:     timePtr(p.CreatedAt),
	}
}

func toProductResponses(products []domain.Product) []ProductResponse {
	res := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		res = append(res, toProductResponse(p))
	}
	return res
}

func (r *CreateProductRequest) toUsecase() *usecase.CreateProductReq {
	return &usecase.CreateProductReq{
		Name:          r.Name,
		Description:   r.Description,
		Price:         r.Price,
		Image:         r.Image,
		Category:      r.Category,
		Rating:        r.Rating,
		Reviews:       r.Reviews,
		StockQuantity: r.StockQuantity,
		IsFeatured:    r.IsFeatured,
	}
}

func (r *UpdateProductRequest) toPatch() domain.ProductPatch {
	return domain.ProductPatch{
		Name:          r.Name,
		Description:   r.Description,
		Price:         r.Price,
		Image:         r.Image,
		Category:      r.Category,
		Rating:        r.Rating,
		Reviews:       r.Reviews,
		StockQuantity: r.StockQuantity,
		IsFeatured:    r.IsFeatured,
	}
}

func toCategoryResponse(c domain.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Slug: c.Slug, Name: c.Name, Icon: c.Icon}
}

func toCategoryResponses(categories []domain.Category) []CategoryResponse {
	res := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		res = append(res, toCategoryResponse(c))
	}
	return res
}

func toOrderResponse(o domain.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		item := OrderItemResponse{
			ID:        it.ID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.Price,
		}
		if it.Product != nil {
			pr := toProductResponse(*it.Product)
			item.Product = &pr
		}
		items = append(items, item)
	}

	return OrderResponse{
		ID:          o.ID,
		UserID:      o.UserID,
		Status:      string(o.Status),
		TotalAmount: o.TotalAmount,
		Items:       items,
		CreatedAt:   timePtr(o.CreatedAt),
	}
}

func toOrderResponses(orders []domain.Order) []OrderResponse {
	res := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		res = append(res, toOrderResponse(o))
	}
	return res
}

func (r *CreateOrderRequest) toUsecase() *usecase.CreateOrderReq {
	items := make([]usecase.OrderLineReq, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, usecase.OrderLineReq{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return &usecase.CreateOrderReq{UserID: r.UserID, Items: items}
}

func (r *UpdateOrderRequest) toPatch() domain.OrderPatch {
	if r.Status == nil {
		return domain.OrderPatch{}
	}
	status := domain.OrderStatus(*r.Status)
	return domain.OrderPatch{Status: &status}
}

func toStatusResponse(s usecase.StoreStatus) StatusResponse {
	return StatusResponse{
		Configured:   s.Configured,
		Reachable:    s.Reachable,
		ProductCount: s.ProductCount,
		Error:        s.Error,
	}
}
