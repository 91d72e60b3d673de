// Package static содержит встроенный резервный каталог, который отдаётся,
// когда удалённое хранилище не настроено или недоступно.
package static

import (
	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/shopspring/decimal"
)

var products = []domain.Product{
	{
		ID:          1,
		Name:        "Modern Sofa Set",
		Price:       decimal.RequireFromString("899.99"),
		Image:       "https://images.unsplash.com/photo-1555041469-a586c61ea9bc?w=500&q=80",
		Category:    "furniture",
		Description: "Comfortable 3-piece sofa set perfect for modern living rooms",
		Rating:      4.5,
		Reviews:     128,
	},
	{
		ID:          2,
		Name:        "Coffee Table",
		Price:       decimal.RequireFromString("299.99"),
		Image:       "https://images.unsplash.com/photo-1549497538-303791108f95?w=500&q=80",
		Category:    "furniture",
		Description: "Elegant wooden coffee table with storage compartments",
		Rating:      4.3,
		Reviews:     89,
	},
	{
		ID:          3,
		Name:        "Table Lamp",
		Price:       decimal.RequireFromString("79.99"),
		Image:       "https://images.unsplash.com/photo-1507473885765-e6ed057f782c?w=500&q=80",
		Category:    "lighting",
		Description: "Modern minimalist table lamp with adjustable brightness",
		Rating:      4.7,
		Reviews:     203,
	},
	{
		ID:          4,
		Name:        "Decorative Vase",
		Price:       decimal.RequireFromString("49.99"),
		Image:       "https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=500&q=80",
		Category:    "decor",
		Description: "Handcrafted ceramic vase perfect for fresh flowers",
		Rating:      4.4,
		Reviews:     156,
	},
	{
		ID:          5,
		Name:        "Throw Pillows Set",
		Price:       decimal.RequireFromString("39.99"),
		Image:       "https://images.unsplash.com/photo-1586023492125-27b2c045efd7?w=500&q=80",
		Category:    "decor",
		Description: "Set of 4 comfortable throw pillows in various colors",
		Rating:      4.6,
		Reviews:     312,
	},
	{
		ID:          6,
		Name:        "Wall Art Canvas",
		Price:       decimal.RequireFromString("129.99"),
		Image:       "https://images.unsplash.com/photo-1513475382585-d06e58bcb0e0?w=500&q=80",
		Category:    "decor",
		Description: "Beautiful abstract canvas art to enhance your walls",
		Rating:      4.2,
		Reviews:     95,
	},
}

var categories = []domain.Category{
	{ID: 1, Slug: "furniture", Name: "Furniture", Icon: "🪑"},
	{ID: 2, Slug: "lighting", Name: "Lighting", Icon: "💡"},
	{ID: 3, Slug: "decor", Name: "Decor", Icon: "🏺"},
	{ID: 4, Slug: "textiles", Name: "Textiles", Icon: "🛏️"},
}

// Products возвращает копию резервного списка товаров в исходном порядке.
func Products() []domain.Product {
	res := make([]domain.Product, len(products))
	for i, p := range products {
		res[i] = p.Clone()
	}
	return res
}

// Categories возвращает копию резервного списка категорий.
func Categories() []domain.Category {
	res := make([]domain.Category, len(categories))
	copy(res, categories)
	return res
}

// Orders — у заказов резервных данных нет.
func Orders() []domain.Order {
	return nil
}
