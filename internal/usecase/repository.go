package usecase

import (
	"context"

	"github.com/DRSN-tech/storefront/internal/domain"
)

// Поля, по которым допускается фильтрация.
const (
	FieldCategory = "category"
	FieldUserID   = "user_id"
)

// Filter — условие равенства по одному полю.
type Filter struct {
	Field string
	Value string
}

// Store — набор возможностей удалённой коллекции сущностей.
// FetchByID, Update и Delete возвращают e.ErrNotFound, если записи нет.
type Store[T any, P any] interface {
	FetchAll(ctx context.Context) ([]T, error)
	FetchByID(ctx context.Context, id domain.ID) (T, error)
	FetchBy(ctx context.Context, filter Filter) ([]T, error)
	Insert(ctx context.Context, entity T) (T, error)
	Update(ctx context.Context, id domain.ID, patch P) (T, error)
	Delete(ctx context.Context, id domain.ID) error
}

type ProductRepository interface {
	Store[domain.Product, domain.ProductPatch]
	Count(ctx context.Context) (int64, error)
}

type CategoryRepository interface {
	Store[domain.Category, domain.CategoryPatch]
}

type OrderRepository interface {
	Store[domain.Order, domain.OrderPatch]
}

type ImageRepository interface {
	Upload(ctx context.Context, image *domain.Image) (string, error)
	Delete(ctx context.Context, key string) error
}

// TxManager выполняет fn в транзакции удалённого хранилища.
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
