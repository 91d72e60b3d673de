package usecase

import (
	"context"
	"strings"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/repository/static"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
)

// ProductReader — источник цен для строк заказа. Строка заказа ссылается на товар
// внешним ключом, поэтому товар ищется только в удалённом хранилище.
type ProductReader interface {
	StoredProduct(ctx context.Context, id domain.ID) (domain.Product, error)
}

// OrderUseCase реализует оформление и чтение заказов.
type OrderUseCase struct {
	orders    *Resolver[domain.Order, domain.OrderPatch]
	products  ProductReader
	txManager TxManager
	logger    logger.Logger
}

func NewOrderUC(orderRepo OrderRepository, products ProductReader, txManager TxManager, logger logger.Logger) *OrderUseCase {
	var remote Store[domain.Order, domain.OrderPatch]
	if orderRepo != nil {
		remote = orderRepo
	}

	return &OrderUseCase{
		orders:    NewResolver("order", remote, static.Orders, orderID, matchOrder, logger),
		products:  products,
		txManager: txManager,
		logger:    logger,
	}
}

// CreateOrder оформляет заказ. Заказ и его строки сохраняются в одной транзакции,
// цена строки фиксируется по текущей цене товара.
func (o *OrderUseCase) CreateOrder(ctx context.Context, req *CreateOrderReq) (domain.Order, error) {
	const op = "OrderUseCase.CreateOrder"

	if err := validateOrder(req); err != nil {
		return domain.Order{}, e.Wrap(op, err)
	}

	order := domain.Order{
		UserID: strings.TrimSpace(req.UserID),
		Status: domain.OrderPending,
		Items:  make([]domain.OrderItem, 0, len(req.Items)),
	}

	if !o.orders.Configured() {
		return o.orders.Create(ctx, order)
	}

	priced := make(map[domain.ID]domain.Product, len(req.Items))
	for _, line := range req.Items {
		pr, err := o.products.StoredProduct(ctx, line.ProductID)
		if err != nil {
			return domain.Order{}, e.Wrap(op, err)
		}
		priced[pr.ID] = pr

		order.Items = append(order.Items, domain.OrderItem{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Price:     pr.Price,
		})
	}
	order.TotalAmount = order.Total()

	var (
		created   domain.Order
		insertErr error
	)
	err := o.txManager.Do(ctx, func(ctx context.Context) error {
		created, insertErr = o.orders.Create(ctx, order)
		return insertErr
	})
	if err != nil {
		// ошибку вставки уже залогировал резолвер
		if insertErr == nil {
			o.logger.Errorf(err, "order transaction failed, user_id: %s", order.UserID)
		}
		return domain.Order{}, e.Wrap(op, err)
	}

	for i := range created.Items {
		if pr, ok := priced[created.Items[i].ProductID]; ok {
			created.Items[i].Product = &pr
		}
	}

	return created, nil
}

func (o *OrderUseCase) GetOrder(ctx context.Context, id any) (domain.Order, bool) {
	return o.orders.GetByID(ctx, id)
}

// ListUserOrders возвращает заказы пользователя, новые первыми.
func (o *OrderUseCase) ListUserOrders(ctx context.Context, userID string) []domain.Order {
	return o.orders.ListBy(ctx, Filter{Field: FieldUserID, Value: userID})
}

func (o *OrderUseCase) UpdateOrder(ctx context.Context, id any, patch domain.OrderPatch) (domain.Order, error) {
	const op = "OrderUseCase.UpdateOrder"

	orderID, err := domain.ParseID(id)
	if err != nil {
		return domain.Order{}, e.Wrap(op, err)
	}

	if patch.Empty() {
		return domain.Order{}, e.Wrap(op, e.ErrNoChanges)
	}

	if !patch.Status.Valid() {
		return domain.Order{}, e.Wrap(op, e.ErrStatusBadRequest)
	}

	updated, err := o.orders.Update(ctx, orderID, patch)
	if err != nil {
		return domain.Order{}, e.Wrap(op, err)
	}

	return updated, nil
}

func (o *OrderUseCase) DeleteOrder(ctx context.Context, id any) error {
	const op = "OrderUseCase.DeleteOrder"

	orderID, err := domain.ParseID(id)
	if err != nil {
		return e.Wrap(op, err)
	}

	if err := o.orders.Delete(ctx, orderID); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

func validateOrder(req *CreateOrderReq) error {
	if strings.TrimSpace(req.UserID) == "" {
		return e.ErrUserRequired
	}

	if len(req.Items) == 0 {
		return e.ErrEmptyOrder
	}

	for _, item := range req.Items {
		if item.ProductID <= 0 {
			return e.ErrInvalidID
		}
		if item.Quantity <= 0 {
			return e.ErrInvalidQuantity
		}
	}

	return nil
}

func orderID(o domain.Order) domain.ID {
	return o.ID
}

func matchOrder(o domain.Order, f Filter) bool {
	return f.Field == FieldUserID && o.UserID == f.Value
}
