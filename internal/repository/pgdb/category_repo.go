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

const categoryColumns = `id, slug, name, icon`

var categoryFilters = map[string]string{
	"slug": "slug",
}

// CategoryRepo реализует репозиторий категорий поверх PostgreSQL.
type CategoryRepo struct {
	pool tr.Querier
	conv converter.CategoryConverter
}

var _ usecase.CategoryRepository = (*CategoryRepo)(nil)

func NewCategoryRepo(pool *pgxpool.Pool, conv converter.CategoryConverter) *CategoryRepo {
	return &CategoryRepo{pool: pool, conv: conv}
}

// FetchAll возвращает категории в алфавитном порядке.
func (c *CategoryRepo) FetchAll(ctx context.Context) ([]domain.Category, error) {
	return c.list(ctx, `SELECT `+categoryColumns+` FROM categories ORDER BY name ASC`)
}

func (c *CategoryRepo) FetchByID(ctx context.Context, id domain.ID) (domain.Category, error) {
	return c.one(ctx, `SELECT `+categoryColumns+` FROM categories WHERE id = $1`, id)
}

func (c *CategoryRepo) FetchBy(ctx context.Context, filter usecase.Filter) ([]domain.Category, error) {
	col, err := filterColumn(categoryFilters, filter.Field)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.list(ctx, `SELECT `+categoryColumns+` FROM categories WHERE `+col+` = $1 ORDER BY name ASC`, filter.Value)
}

// Insert создаёт категорию. Повторный slug нарушает уникальность и возвращает ошибку.
func (c *CategoryRepo) Insert(ctx context.Context, category domain.Category) (domain.Category, error) {
	m := c.conv.ToModel(&category)

	query := `
		INSERT INTO categories (slug, name, icon) VALUES ($1, $2, $3)
		RETURNING ` + categoryColumns

	return c.one(ctx, query, m.Slug, m.Name, m.Icon)
}

func (c *CategoryRepo) Update(ctx context.Context, id domain.ID, patch domain.CategoryPatch) (domain.Category, error) {
	var b setBuilder
	if patch.Slug != nil {
		b.add("slug", *patch.Slug)
	}
	if patch.Name != nil {
		b.add("name", *patch.Name)
	}
	if patch.Icon != nil {
		b.add("icon", *patch.Icon)
	}

	if b.empty() {
		return domain.Category{}, e.Wrap(whereami.WhereAmI(), e.ErrNoChanges)
	}

	query, args := b.update("categories", id, categoryColumns)
	return c.one(ctx, query, args...)
}

func (c *CategoryRepo) Delete(ctx context.Context, id domain.ID) error {
	tag, err := tr.QuerierFromCtx(ctx, c.pool).Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if tag.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrNotFound)
	}

	return nil
}

func (c *CategoryRepo) list(ctx context.Context, query string, args ...any) ([]domain.Category, error) {
	rows, err := tr.QuerierFromCtx(ctx, c.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	models, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[converter.CategoryModel])
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	result := make([]domain.Category, 0, len(models))
	for _, m := range models {
		result = append(result, *c.conv.ToEntity(m))
	}

	return result, nil
}

func (c *CategoryRepo) one(ctx context.Context, query string, args ...any) (domain.Category, error) {
	rows, err := tr.QuerierFromCtx(ctx, c.pool).Query(ctx, query, args...)
	if err != nil {
		return domain.Category{}, e.Wrap(whereami.WhereAmI(), err)
	}

	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[converter.CategoryModel])
	if err != nil {
		return domain.Category{}, e.Wrap(whereami.WhereAmI(), notFound(err))
	}

	return *c.conv.ToEntity(m), nil
}
