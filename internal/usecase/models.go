package usecase

import (
	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/shopspring/decimal"
)

// PRODUCT USECASE

// CreateProductReq — запрос на добавление товара из админ-панели.
// Изображение задаётся либо ссылкой Image, либо файлом ImageFile.
type CreateProductReq struct {
	Name          string
	Description   string
	Price         decimal.Decimal
	Image         string
	ImageFile     *domain.ImageFile
	Category      string
	Rating        float64
	Reviews       int
	StockQuantity *int
	IsFeatured    bool
}

// CATEGORY USECASE

type CreateCategoryReq struct {
	Slug string
	Name string
	Icon string
}

// ORDER USECASE

type CreateOrderReq struct {
	UserID string
	Items  []OrderLineReq
}

type OrderLineReq struct {
	ProductID domain.ID
	Quantity  int
}

// STATUS

// StoreStatus — состояние подключения к удалённому хранилищу.
type StoreStatus struct {
	Configured   bool
	Reachable    bool
	ProductCount int64
	Error        string
}

// INFRASTRUCTURE

// UploadImageReq — запрос на загрузку изображения в хранилище.
type UploadImageReq struct {
	Folder string
	File   domain.ImageFile
}

// MAPPERS

func NewUploadImageReq(folder string, file domain.ImageFile) *UploadImageReq {
	return &UploadImageReq{
		Folder: folder,
		File:   file,
	}
}

func (r *CreateProductReq) ToEntity() domain.Product {
	return domain.Product{
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
