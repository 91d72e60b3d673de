package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/go-chi/chi/v5"
)

// defaultFeaturedLimit — сколько товаров показывает витрина по умолчанию.
const defaultFeaturedLimit = 4

type ProductHandler struct {
	productUsecase usecase.ProductUC
	logger         logger.Logger
}

func NewProductHandler(productUsecase usecase.ProductUC, logger logger.Logger) *ProductHandler {
	return &ProductHandler{productUsecase: productUsecase, logger: logger}
}

// listProducts
//
//	@Summary		Список товаров
//	@Description	Возвращает все товары или товары категории. Без удалённого хранилища отдаётся встроенный каталог
//	@Tags			products
//	@Produce		json
//	@Param			category	query		string	false	"Slug категории"
//	@Success		200			{array}		ProductResponse
//	@Router			/products [get]
func (p *ProductHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	if category := strings.TrimSpace(r.URL.Query().Get("category")); category != "" {
		WriteSuccess(w, http.StatusOK, toProductResponses(p.productUsecase.ListProductsByCategory(r.Context(), category)))
		return
	}

	WriteSuccess(w, http.StatusOK, toProductResponses(p.productUsecase.ListProducts(r.Context())))
}

// featuredProducts
//
//	@Summary		Рекомендуемые товары
//	@Tags			products
//	@Produce		json
//	@Param			limit	query		int	false	"Максимальное количество"	default(4)
//	@Success		200		{array}		ProductResponse
//	@Failure		400		{object}	ErrorResponse
//	@Router			/products/featured [get]
func (p *ProductHandler) featuredProducts(w http.ResponseWriter, r *http.Request) {
	limit := defaultFeaturedLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeLoggedError(p.logger, w, r, e.Wrap("limit", e.ErrStatusBadRequest))
			return
		}
		limit = n
	}

	WriteSuccess(w, http.StatusOK, toProductResponses(p.productUsecase.FeaturedProducts(r.Context(), limit)))
}

// getProduct
//
//	@Summary		Товар по идентификатору
//	@Tags			products
//	@Produce		json
//	@Param			id	path		int	true	"Идентификатор товара"
//	@Success		200	{object}	ProductResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/products/{id} [get]
func (p *ProductHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	product, ok := p.productUsecase.GetProduct(r.Context(), chi.URLParam(r, "id"))
	if !ok {
		WriteError(w, e.ErrNotFound)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductResponse(product))
}

// createProduct
//
//	@Summary		Добавление товара
//	@Description	Принимает JSON или multipart/form-data с файлом изображения в поле file
//	@Tags			products
//	@Accept			json,mpfd
//	@Produce		json
//	@Param			product	body		CreateProductRequest	true	"Товар"
//	@Success		201		{object}	ProductResponse
//	@Failure		400		{object}	ErrorResponse	"Ошибка валидации"
//	@Failure		413		{object}	ErrorResponse
//	@Failure		415		{object}	ErrorResponse
//	@Failure		503		{object}	ErrorResponse	"Хранилище не настроено"
//	@Router			/products [post]
func (p *ProductHandler) createProduct(w http.ResponseWriter, r *http.Request) {
	var (
		req *usecase.CreateProductReq
		err error
	)

	if isMultipart(r) {
		req, err = parseProductForm(w, r)
	} else {
		var body CreateProductRequest
		if err = decodeJSON(w, r, &body); err == nil {
			req = body.toUsecase()
		}
	}
	if err != nil {
		writeLoggedError(p.logger, w, r, err)
		return
	}

	product, err := p.productUsecase.CreateProduct(r.Context(), req)
	if err != nil {
		writeLoggedError(p.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toProductResponse(product))
}

// updateProduct
//
//	@Summary		Частичное обновление товара
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Идентификатор товара"
//	@Param			patch	body		UpdateProductRequest	true	"Изменяемые поля"
//	@Success		200		{object}	ProductResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		503		{object}	ErrorResponse
//	@Router			/products/{id} [patch]
func (p *ProductHandler) updateProduct(w http.ResponseWriter, r *http.Request) {
	var body UpdateProductRequest
	if err := decodeJSON(w, r, &body); err != nil {
		writeLoggedError(p.logger, w, r, err)
		return
	}

	product, err := p.productUsecase.UpdateProduct(r.Context(), chi.URLParam(r, "id"), body.toPatch())
	if err != nil {
		writeLoggedError(p.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductResponse(product))
}

// deleteProduct
//
//	@Summary	Удаление товара
//	@Tags		products
//	@Param		id	path	int	true	"Идентификатор товара"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Failure	503	{object}	ErrorResponse
//	@Router		/products/{id} [delete]
func (p *ProductHandler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := p.productUsecase.DeleteProduct(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeLoggedError(p.logger, w, r, err)
		return
	}

	WriteNoContent(w)
}

// parseProductForm собирает запрос на добавление товара из multipart-формы.
func parseProductForm(w http.ResponseWriter, r *http.Request) (*usecase.CreateProductReq, error) {
	if err := ensureMultipartForm(w, r); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(r.FormValue("name"))
	if name == "" {
		return nil, e.ErrProductNameRequired
	}

	price, err := parsePrice(r.FormValue("price"))
	if err != nil {
		return nil, err
	}

	rating, err := formFloat(r, "rating")
	if err != nil {
		return nil, err
	}

	reviews, err := formInt(r, "reviews")
	if err != nil {
		return nil, err
	}

	stock, err := formInt(r, "stock_quantity")
	if err != nil {
		return nil, err
	}

	featured, err := formBool(r, "is_featured")
	if err != nil {
		return nil, err
	}

	file, err := formFile(r, "file")
	if err != nil {
		return nil, err
	}

	req := &usecase.CreateProductReq{
		Name:          name,
		Description:   r.FormValue("description"),
		Price:         price,
		Image:         r.FormValue("image"),
		ImageFile:     file,
		Category:      r.FormValue("category"),
		Rating:        rating,
		StockQuantity: stock,
		IsFeatured:    featured,
	}
	if reviews != nil {
		req.Reviews = *reviews
	}

	return req, nil
}
