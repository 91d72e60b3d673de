package domain

// Category описывает категорию товаров.
// Товары ссылаются на категорию по Slug.
type Category struct {
	ID   ID
	Slug string
	Name string
	Icon string
}

type CategoryPatch struct {
	Slug *string
	Name *string
	Icon *string
}

func (p CategoryPatch) Empty() bool {
	return p.Slug == nil && p.Name == nil && p.Icon == nil
}
