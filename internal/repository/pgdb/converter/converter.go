package converter

import (
	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/shopspring/decimal"
)

// ProductConverter преобразует сущности Product между domain и моделью PostgreSQL.
type ProductConverter interface {
	ToModel(entity *domain.Product) *ProductModel
	ToEntity(model *ProductModel) (*domain.Product, error)
}

// CategoryConverter преобразует сущности Category между domain и моделью PostgreSQL.
type CategoryConverter interface {
	ToModel(entity *domain.Category) *CategoryModel
	ToEntity(model *CategoryModel) *domain.Category
}

// OrderConverter преобразует заказ и его строки между domain и моделями PostgreSQL.
type OrderConverter interface {
	ToModel(entity *domain.Order) (*OrderModel, []*OrderItemModel)
	ToEntity(model *OrderModel, items []*OrderItemModel) (*domain.Order, error)
}

type productConv struct{}

func NewProductConverter() ProductConverter { return productConv{} }

func (productConv) ToModel(entity *domain.Product) *ProductModel {
	if entity == nil {
		return nil
	}

	return &ProductModel{
		ID:            entity.ID,
		Name:          entity.Name,
		Description:   entity.Description,
		Price:         ConvertDecimal(entity.Price),
		Image:         entity.Image,
		Category:      entity.Category,
		Rating:        entity.Rating,
		Reviews:       int32(entity.Reviews),
		StockQuantity: ConvertIntPtr(entity.StockQuantity),
		IsFeatured:    entity.IsFeatured,
		CreatedAt:     entity.CreatedAt,
	}
}

func (productConv) ToEntity(model *ProductModel) (*domain.Product, error) {
	if model == nil {
		return nil, nil
	}

	price, err := ParseDecimal(model.Price)
	if err != nil {
		return nil, e.Wrap("converter.Product", err)
	}

	return &domain.Product{
		ID:            model.ID,
		Name:          model.Name,
		Description:   model.Description,
		Price:         price,
		Image:         model.Image,
		Category:      model.Category,
		Rating:        model.Rating,
		Reviews:       int(model.Reviews),
		StockQuantity: ConvertInt32Ptr(model.StockQuantity),
		IsFeatured:    model.IsFeatured,
		CreatedAt:     model.CreatedAt,
	}, nil
}

type categoryConv struct{}

func NewCategoryConverter() CategoryConverter { return categoryConv{} }

func (categoryConv) ToModel(entity *domain.Category) *CategoryModel {
	if entity == nil {
		return nil
	}
	return &CategoryModel{ID: entity.ID, Slug: entity.Slug, Name: entity.Name, Icon: entity.Icon}
}

func (categoryConv) ToEntity(model *CategoryModel) *domain.Category {
	if model == nil {
		return nil
	}
	return &domain.Category{ID: model.ID, Slug: model.Slug, Name: model.Name, Icon: model.Icon}
}

type orderConv struct{}

func NewOrderConverter() OrderConverter { return orderConv{} }

func (orderConv) ToModel(entity *domain.Order) (*OrderModel, []*OrderItemModel) {
	if entity == nil {
		return nil, nil
	}

	items := make([]*OrderItemModel, 0, len(entity.Items))
	for _, it := range entity.Items {
		items = append(items, &OrderItemModel{
			ID:        it.ID,
			OrderID:   entity.ID,
			ProductID: it.ProductID,
			Quantity:  int32(it.Quantity),
			Price:     ConvertDecimal(it.Price),
		})
	}

	return &OrderModel{
		ID:          entity.ID,
		UserID:      entity.UserID,
		Status:      string(entity.Status),
		TotalAmount: ConvertDecimal(entity.TotalAmount),
		CreatedAt:   entity.CreatedAt,
	}, items
}

func (orderConv) ToEntity(model *OrderModel, items []*OrderItemModel) (*domain.Order, error) {
	if model == nil {
		return nil, nil
	}

	total, err := ParseDecimal(model.TotalAmount)
	if err != nil {
		return nil, e.Wrap("converter.Order", err)
	}

	order := &domain.Order{
		ID:          model.ID,
		UserID:      model.UserID,
		Status:      domain.OrderStatus(model.Status),
		TotalAmount: total,
		Items:       make([]domain.OrderItem, 0, len(items)),
		CreatedAt:   model.CreatedAt,
	}

	for _, it := range items {
		price, err := ParseDecimal(it.Price)
		if err != nil {
			return nil, e.Wrap("converter.OrderItem", err)
		}

		order.Items = append(order.Items, domain.OrderItem{
			ID:        it.ID,
			OrderID:   it.OrderID,
			ProductID: it.ProductID,
			Quantity:  int(it.Quantity),
			Price:     price,
		})
	}

	return order, nil
}

// ConvertDecimal возвращает текстовое представление суммы для параметра $n::numeric.
func ConvertDecimal(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// ParseDecimal разбирает текстовое значение NUMERIC. Пустая строка считается нулём.
func ParseDecimal(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

func ConvertIntPtr(v *int) *int32 {
	if v == nil {
		return nil
	}
	n := int32(*v)
	return &n
}

func ConvertInt32Ptr(v *int32) *int {
	if v == nil {
		return nil
	}
	n := int(*v)
	return &n
}
