package usecase

import (
	"context"

	"github.com/DRSN-tech/storefront/internal/domain"
)

type ProductUC interface {
	ListProducts(ctx context.Context) []domain.Product
	GetProduct(ctx context.Context, id any) (domain.Product, bool)
	ListProductsByCategory(ctx context.Context, category string) []domain.Product
	FeaturedProducts(ctx context.Context, limit int) []domain.Product
	CreateProduct(ctx context.Context, req *CreateProductReq) (domain.Product, error)
	UpdateProduct(ctx context.Context, id any, patch domain.ProductPatch) (domain.Product, error)
	DeleteProduct(ctx context.Context, id any) error
	UploadProductImage(ctx context.Context, file domain.ImageFile, folder string) (*domain.StoredImage, error)
	DeleteProductImage(ctx context.Context, path string) error
}

type CategoryUC interface {
	ListCategories(ctx context.Context) []domain.Category
	GetCategory(ctx context.Context, id any) (domain.Category, bool)
	CreateCategory(ctx context.Context, req *CreateCategoryReq) (domain.Category, error)
	UpdateCategory(ctx context.Context, id any, patch domain.CategoryPatch) (domain.Category, error)
	DeleteCategory(ctx context.Context, id any) error
}

type OrderUC interface {
	CreateOrder(ctx context.Context, req *CreateOrderReq) (domain.Order, error)
	GetOrder(ctx context.Context, id any) (domain.Order, bool)
	ListUserOrders(ctx context.Context, userID string) []domain.Order
	UpdateOrder(ctx context.Context, id any, patch domain.OrderPatch) (domain.Order, error)
	DeleteOrder(ctx context.Context, id any) error
}

type StatusUC interface {
	Check(ctx context.Context) StoreStatus
}
