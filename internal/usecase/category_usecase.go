package usecase

import (
	"context"
	"regexp"
	"strings"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/repository/static"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// CategoryUseCase реализует работу с категориями.
type CategoryUseCase struct {
	categories *Resolver[domain.Category, domain.CategoryPatch]
}

func NewCategoryUC(categoryRepo CategoryRepository, logger logger.Logger) *CategoryUseCase {
	var remote Store[domain.Category, domain.CategoryPatch]
	if categoryRepo != nil {
		remote = categoryRepo
	}

	return &CategoryUseCase{
		categories: NewResolver("category", remote, static.Categories, categoryID, matchCategory, logger),
	}
}

// ListCategories возвращает категории, упорядоченные по имени.
func (c *CategoryUseCase) ListCategories(ctx context.Context) []domain.Category {
	return c.categories.ListAll(ctx)
}

func (c *CategoryUseCase) GetCategory(ctx context.Context, id any) (domain.Category, bool) {
	return c.categories.GetByID(ctx, id)
}

// CreateCategory добавляет категорию. Если slug не задан, он строится из имени.
func (c *CategoryUseCase) CreateCategory(ctx context.Context, req *CreateCategoryReq) (domain.Category, error) {
	const op = "CategoryUseCase.CreateCategory"

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Category{}, e.Wrap(op, e.ErrCategoryNameRequired)
	}

	slug := Slugify(req.Slug)
	if slug == "" {
		slug = Slugify(name)
	}
	if slug == "" {
		return domain.Category{}, e.Wrap(op, e.ErrMissingFields)
	}

	created, err := c.categories.Create(ctx, domain.Category{Slug: slug, Name: name, Icon: req.Icon})
	if err != nil {
		return domain.Category{}, e.Wrap(op, err)
	}

	return created, nil
}

func (c *CategoryUseCase) UpdateCategory(ctx context.Context, id any, patch domain.CategoryPatch) (domain.Category, error) {
	const op = "CategoryUseCase.UpdateCategory"

	categoryID, err := domain.ParseID(id)
	if err != nil {
		return domain.Category{}, e.Wrap(op, err)
	}

	if patch.Empty() {
		return domain.Category{}, e.Wrap(op, e.ErrNoChanges)
	}

	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return domain.Category{}, e.Wrap(op, e.ErrCategoryNameRequired)
	}

	if patch.Slug != nil {
		slug := Slugify(*patch.Slug)
		if slug == "" {
			return domain.Category{}, e.Wrap(op, e.ErrMissingFields)
		}
		patch.Slug = &slug
	}

	updated, err := c.categories.Update(ctx, categoryID, patch)
	if err != nil {
		return domain.Category{}, e.Wrap(op, err)
	}

	return updated, nil
}

func (c *CategoryUseCase) DeleteCategory(ctx context.Context, id any) error {
	const op = "CategoryUseCase.DeleteCategory"

	categoryID, err := domain.ParseID(id)
	if err != nil {
		return e.Wrap(op, err)
	}

	if err := c.categories.Delete(ctx, categoryID); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// Slugify приводит строку к виду «home-decor».
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = nonSlugChars.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

func categoryID(c domain.Category) domain.ID {
	return c.ID
}

func matchCategory(c domain.Category, f Filter) bool {
	return f.Field == "slug" && c.Slug == f.Value
}
