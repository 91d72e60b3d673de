package http

import (
	"net/http"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type CategoryHandler struct {
	categoryUsecase usecase.CategoryUC
	logger          logger.Logger
}

func NewCategoryHandler(categoryUsecase usecase.CategoryUC, logger logger.Logger) *CategoryHandler {
	return &CategoryHandler{categoryUsecase: categoryUsecase, logger: logger}
}

// listCategories
//
//	@Summary	Список категорий
//	@Tags		categories
//	@Produce	json
//	@Success	200	{array}	CategoryResponse
//	@Router		/categories [get]
func (c *CategoryHandler) listCategories(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, http.StatusOK, toCategoryResponses(c.categoryUsecase.ListCategories(r.Context())))
}

// getCategory
//
//	@Summary	Категория по идентификатору
//	@Tags		categories
//	@Produce	json
//	@Param		id	path		int	true	"Идентификатор категории"
//	@Success	200	{object}	CategoryResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/categories/{id} [get]
func (c *CategoryHandler) getCategory(w http.ResponseWriter, r *http.Request) {
	category, ok := c.categoryUsecase.GetCategory(r.Context(), chi.URLParam(r, "id"))
	if !ok {
		WriteError(w, e.ErrNotFound)
		return
	}

	WriteSuccess(w, http.StatusOK, toCategoryResponse(category))
}

// createCategory
//
//	@Summary	Добавление категории
//	@Tags		categories
//	@Accept		json
//	@Produce	json
//	@Param		category	body		CreateCategoryRequest	true	"Категория"
//	@Success	201			{object}	CategoryResponse
//	@Failure	400			{object}	ErrorResponse
//	@Failure	503			{object}	ErrorResponse
//	@Router		/categories [post]
func (c *CategoryHandler) createCategory(w http.ResponseWriter, r *http.Request) {
	var body CreateCategoryRequest
	if err := decodeJSON(w, r, &body); err != nil {
		writeLoggedError(c.logger, w, r, err)
		return
	}

	category, err := c.categoryUsecase.CreateCategory(r.Context(), &usecase.CreateCategoryReq{
		Slug: body.Slug,
		Name: body.Name,
		Icon: body.Icon,
	})
	if err != nil {
		writeLoggedError(c.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toCategoryResponse(category))
}

// updateCategory
//
//	@Summary	Частичное обновление категории
//	@Tags		categories
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int						true	"Идентификатор категории"
//	@Param		patch	body		UpdateCategoryRequest	true	"Изменяемые поля"
//	@Success	200		{object}	CategoryResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Failure	503		{object}	ErrorResponse
//	@Router		/categories/{id} [patch]
func (c *CategoryHandler) updateCategory(w http.ResponseWriter, r *http.Request) {
	var body UpdateCategoryRequest
	if err := decodeJSON(w, r, &body); err != nil {
		writeLoggedError(c.logger, w, r, err)
		return
	}

	category, err := c.categoryUsecase.UpdateCategory(r.Context(), chi.URLParam(r, "id"), domain.CategoryPatch{
		Slug: body.Slug,
		Name: body.Name,
		Icon: body.Icon,
	})
	if err != nil {
		writeLoggedError(c.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCategoryResponse(category))
}

// deleteCategory
//
//	@Summary	Удаление категории
//	@Tags		categories
//	@Param		id	path	int	true	"Идентификатор категории"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Failure	503	{object}	ErrorResponse
//	@Router		/categories/{id} [delete]
func (c *CategoryHandler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := c.categoryUsecase.DeleteCategory(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeLoggedError(c.logger, w, r, err)
		return
	}

	WriteNoContent(w)
}
