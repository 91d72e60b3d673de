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

const productColumns = `id, name, description, price::text AS price, image, category,
	rating, reviews, stock_quantity, is_featured, created_at`

var productFilters = map[string]string{
	usecase.FieldCategory: "category",
}

// ProductRepo реализует репозиторий продуктов поверх PostgreSQL.
type ProductRepo struct {
	pool tr.Querier
	conv converter.ProductConverter
}

var _ usecase.ProductRepository = (*ProductRepo)(nil)

func NewProductRepo(pool *pgxpool.Pool, conv converter.ProductConverter) *ProductRepo {
	return &ProductRepo{
		pool: pool,
		conv: conv,
	}
}

// FetchAll возвращает все товары, новые первыми.
func (p *ProductRepo) FetchAll(ctx context.Context) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC, id DESC`
	return p.list(ctx, query)
}

func (p *ProductRepo) FetchByID(ctx context.Context, id domain.ID) (domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return p.one(ctx, query, id)
}

// FetchBy возвращает товары, у которых поле filter.Field равно filter.Value.
func (p *ProductRepo) FetchBy(ctx context.Context, filter usecase.Filter) ([]domain.Product, error) {
	col, err := filterColumn(productFilters, filter.Field)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `SELECT ` + productColumns + ` FROM products WHERE ` + col + ` = $1 ORDER BY created_at DESC, id DESC`
	return p.list(ctx, query, filter.Value)
}

func (p *ProductRepo) Insert(ctx context.Context, product domain.Product) (domain.Product, error) {
	m := p.conv.ToModel(&product)

	// VALUES ($1 ... $9) name, description, price, image, category, rating, reviews, stock_quantity, is_featured
	query := `
		INSERT INTO products (name, description, price, image, category, rating, reviews, stock_quantity, is_featured)
		VALUES ($1, $2, $3::numeric, $4, $5, $6, $7, $8, $9)
		RETURNING ` + productColumns

	return p.one(ctx, query,
		m.Name, m.Description, m.Price, m.Image, m.Category,
		m.Rating, m.Reviews, m.StockQuantity, m.IsFeatured,
	)
}

// Update изменяет только заданные в патче поля.
func (p *ProductRepo) Update(ctx context.Context, id domain.ID, patch domain.ProductPatch) (domain.Product, error) {
	var b setBuilder
	if patch.Name != nil {
		b.add("name", *patch.Name)
	}
	if patch.Description != nil {
		b.add("description", *patch.Description)
	}
	if patch.Price != nil {
		b.addNumeric("price", converter.ConvertDecimal(*patch.Price))
	}
	if patch.Image != nil {
		b.add("image", *patch.Image)
	}
	if patch.Category != nil {
		b.add("category", *patch.Category)
	}
	if patch.Rating != nil {
		b.add("rating", *patch.Rating)
	}
	if patch.Reviews != nil {
		b.add("reviews", int32(*patch.Reviews))
	}
	if patch.StockQuantity != nil {
		b.add("stock_quantity", converter.ConvertIntPtr(patch.StockQuantity))
	}
	if patch.IsFeatured != nil {
		b.add("is_featured", *patch.IsFeatured)
	}

	if b.empty() {
		return domain.Product{}, e.Wrap(whereami.WhereAmI(), e.ErrNoChanges)
	}

	query, args := b.update("products", id, productColumns)
	return p.one(ctx, query, args...)
}

func (p *ProductRepo) Delete(ctx context.Context, id domain.ID) error {
	tag, err := tr.QuerierFromCtx(ctx, p.pool).Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if tag.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrNotFound)
	}

	return nil
}

// Count возвращает количество товаров; используется для проверки подключения.
func (p *ProductRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := tr.QuerierFromCtx(ctx, p.pool).QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}
	return count, nil
}

func (p *ProductRepo) list(ctx context.Context, query string, args ...any) ([]domain.Product, error) {
	rows, err := tr.QuerierFromCtx(ctx, p.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	models, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[converter.ProductModel])
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	result := make([]domain.Product, 0, len(models))
	for _, m := range models {
		product, err := p.conv.ToEntity(m)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		result = append(result, *product)
	}

	return result, nil
}

func (p *ProductRepo) one(ctx context.Context, query string, args ...any) (domain.Product, error) {
	rows, err := tr.QuerierFromCtx(ctx, p.pool).Query(ctx, query, args...)
	if err != nil {
		return domain.Product{}, e.Wrap(whereami.WhereAmI(), err)
	}

	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[converter.ProductModel])
	if err != nil {
		return domain.Product{}, e.Wrap(whereami.WhereAmI(), notFound(err))
	}

	product, err := p.conv.ToEntity(m)
	if err != nil {
		return domain.Product{}, e.Wrap(whereami.WhereAmI(), err)
	}

	return *product, nil
}
