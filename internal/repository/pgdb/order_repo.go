package pgdb

import (
	"context"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/tr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

const (
	orderColumns     = `id, user_id, status, total_amount::text AS total_amount, created_at`
	orderItemColumns = `id, order_id, product_id, quantity, price::text AS price`
)

var orderFilters = map[string]string{
	usecase.FieldUserID: "user_id",
}

// OrderRepo реализует репозиторий заказов поверх PostgreSQL.
// Заказ читается и сохраняется вместе со строками из order_items,
// при чтении к строкам подгружаются товары.
type OrderRepo struct {
	pool        tr.Querier
	conv        converter.OrderConverter
	productConv converter.ProductConverter
}

var _ usecase.OrderRepository = (*OrderRepo)(nil)

func NewOrderRepo(pool *pgxpool.Pool, conv converter.OrderConverter, productConv converter.ProductConverter) *OrderRepo {
	return &OrderRepo{pool: pool, conv: conv, productConv: productConv}
}

func (o *OrderRepo) FetchAll(ctx context.Context) ([]domain.Order, error) {
	return o.list(ctx, `SELECT `+orderColumns+` FROM orders ORDER BY created_at DESC, id DESC`)
}

func (o *OrderRepo) FetchByID(ctx context.Context, id domain.ID) (domain.Order, error) {
	orders, err := o.list(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)
	if err != nil {
		return domain.Order{}, err
	}

	if len(orders) == 0 {
		return domain.Order{}, e.Wrap(whereami.WhereAmI(), e.ErrNotFound)
	}

	return orders[0], nil
}

func (o *OrderRepo) FetchBy(ctx context.Context, filter usecase.Filter) ([]domain.Order, error) {
	col, err := filterColumn(orderFilters, filter.Field)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return o.list(ctx, `SELECT `+orderColumns+` FROM orders WHERE `+col+` = $1 ORDER BY created_at DESC, id DESC`, filter.Value)
}

// Insert сохраняет заказ и его строки. Атомарность обеспечивает транзакция из контекста.
func (o *OrderRepo) Insert(ctx context.Context, order domain.Order) (domain.Order, error) {
	q := tr.QuerierFromCtx(ctx, o.pool)
	m, items := o.conv.ToModel(&order)

	// VALUES ($1, $2, $3) user_id, status, total_amount
	query := `
		INSERT INTO orders (user_id, status, total_amount)
		VALUES ($1, $2, $3::numeric)
		RETURNING ` + orderColumns

	rows, err := q.Query(ctx, query, m.UserID, m.Status, m.TotalAmount)
	if err != nil {
		return domain.Order{}, e.Wrap(whereami.WhereAmI(), err)
	}

	created, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[converter.OrderModel])
	if err != nil {
		return domain.Order{}, e.Wrap(whereami.WhereAmI(), err)
	}

	// VALUES ($1, $2, $3, $4) order_id, product_id, quantity, price
	itemQuery := `
		INSERT INTO order_items (order_id, product_id, quantity, price)
		VALUES ($1, $2, $3, $4::numeric)
		RETURNING id`

	for _, it := range items {
		it.OrderID = created.ID
		if err := q.QueryRow(ctx, itemQuery, it.OrderID, it.ProductID, it.Quantity, it.Price).Scan(&it.ID); err != nil {
			return domain.Order{}, e.Wrap(whereami.WhereAmI(), err)
		}
	}

	res, err := o.conv.ToEntity(created, items)
	if err != nil {
		return domain.Order{}, e.Wrap(whereami.WhereAmI(), err)
	}

	return *res, nil
}

func (o *OrderRepo) Update(ctx context.Context, id domain.ID, patch domain.OrderPatch) (domain.Order, error) {
	var b setBuilder
	if patch.Status != nil {
		b.add("status", string(*patch.Status))
	}

	if b.empty() {
		return domain.Order{}, e.Wrap(whereami.WhereAmI(), e.ErrNoChanges)
	}

	query, args := b.update("orders", id, orderColumns)
	return o.one(ctx, query, args...)
}

// Delete удаляет заказ; строки удаляются каскадно.
func (o *OrderRepo) Delete(ctx context.Context, id domain.ID) error {
	tag, err := tr.QuerierFromCtx(ctx, o.pool).Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if tag.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrNotFound)
	}

	return nil
}

func (o *OrderRepo) one(ctx context.Context, query string, args ...any) (domain.Order, error) {
	q := tr.QuerierFromCtx(ctx, o.pool)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return domain.Order{}, e.Wrap(whereami.WhereAmI(), err)
	}

	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[converter.OrderModel])
	if err != nil {
		return domain.Order{}, e.Wrap(whereami.WhereAmI(), notFound(err))
	}

	items, err := o.items(ctx, q, []int64{m.ID})
	if err != nil {
		return domain.Order{}, err
	}

	res, err := o.conv.ToEntity(m, items[m.ID])
	if err != nil {
		return domain.Order{}, e.Wrap(whereami.WhereAmI(), err)
	}

	orders := []domain.Order{*res}
	if err := o.attachProducts(ctx, q, orders); err != nil {
		return domain.Order{}, err
	}

	return orders[0], nil
}

func (o *OrderRepo) list(ctx context.Context, query string, args ...any) ([]domain.Order, error) {
	q := tr.QuerierFromCtx(ctx, o.pool)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	models, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[converter.OrderModel])
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	ids := make([]int64, 0, len(models))
	for _, m := range models {
		ids = append(ids, m.ID)
	}

	items, err := o.items(ctx, q, ids)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Order, 0, len(models))
	for _, m := range models {
		order, err := o.conv.ToEntity(m, items[m.ID])
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		result = append(result, *order)
	}

	if err := o.attachProducts(ctx, q, result); err != nil {
		return nil, err
	}

	return result, nil
}

// items загружает строки заказов одним запросом и группирует их по order_id.
func (o *OrderRepo) items(ctx context.Context, q tr.Querier, orderIDs []int64) (map[int64][]*converter.OrderItemModel, error) {
	grouped := make(map[int64][]*converter.OrderItemModel, len(orderIDs))
	if len(orderIDs) == 0 {
		return grouped, nil
	}

	query := `SELECT ` + orderItemColumns + ` FROM order_items WHERE order_id = ANY($1) ORDER BY id`

	rows, err := q.Query(ctx, query, orderIDs)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	models, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[converter.OrderItemModel])
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	for _, m := range models {
		grouped[m.OrderID] = append(grouped[m.OrderID], m)
	}

	return grouped, nil
}

// attachProducts подгружает товары всех строк одним запросом.
// Строка, чей товар уже удалён, остаётся без Product.
func (o *OrderRepo) attachProducts(ctx context.Context, q tr.Querier, orders []domain.Order) error {
	ids := lineProductIDs(orders)
	if len(ids) == 0 {
		return nil
	}

	query := `SELECT ` + productColumns + ` FROM products WHERE id = ANY($1)`

	rows, err := q.Query(ctx, query, ids)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	models, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[converter.ProductModel])
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	byID := make(map[int64]domain.Product, len(models))
	for _, m := range models {
		pr, err := o.productConv.ToEntity(m)
		if err != nil {
			return e.Wrap(whereami.WhereAmI(), err)
		}
		byID[pr.ID] = *pr
	}

	fillLineProducts(orders, byID)
	return nil
}

// lineProductIDs собирает уникальные product_id строк в порядке появления.
func lineProductIDs(orders []domain.Order) []int64 {
	seen := make(map[int64]struct{})
	ids := make([]int64, 0)
	for _, order := range orders {
		for _, it := range order.Items {
			if _, ok := seen[it.ProductID]; ok {
				continue
			}
			seen[it.ProductID] = struct{}{}
			ids = append(ids, it.ProductID)
		}
	}
	return ids
}

func fillLineProducts(orders []domain.Order, products map[int64]domain.Product) {
	for i := range orders {
		for j := range orders[i].Items {
			if pr, ok := products[orders[i].Items[j].ProductID]; ok {
				orders[i].Items[j].Product = &pr
			}
		}
	}
}
