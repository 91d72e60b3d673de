package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product описывает товар витрины
type Product struct {
	ID            ID
	Name          string
	Description   string
	Price         decimal.Decimal
	Image         string // URL изображения
	Category      string // slug категории
	Rating        float64
	Reviews       int
	StockQuantity *int // nil — количество неизвестно
	IsFeatured    bool
	CreatedAt     time.Time
}

// ProductPatch — частичное обновление товара; nil-поля не меняются.
type ProductPatch struct {
	Name          *string
	Description   *string
	Price         *decimal.Decimal
	Image         *string
	Category      *string
	Rating        *float64
	Reviews       *int
	StockQuantity *int
	IsFeatured    *bool
}

// Empty сообщает, что патч не содержит ни одного изменения.
func (p ProductPatch) Empty() bool {
	return p.Name == nil && p.Description == nil && p.Price == nil && p.Image == nil &&
		p.Category == nil && p.Rating == nil && p.Reviews == nil && p.StockQuantity == nil &&
		p.IsFeatured == nil
}

// Clone возвращает копию товара, не разделяющую указатели с оригиналом.
func (p Product) Clone() Product {
	if p.StockQuantity != nil {
		q := *p.StockQuantity
		p.StockQuantity = &q
	}
	return p
}
