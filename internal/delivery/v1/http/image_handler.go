package http

import (
	"net/http"

	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
)

type ImageHandler struct {
	productUsecase usecase.ProductUC
	logger         logger.Logger
}

func NewImageHandler(productUsecase usecase.ProductUC, logger logger.Logger) *ImageHandler {
	return &ImageHandler{productUsecase: productUsecase, logger: logger}
}

// uploadImage
//
//	@Summary		Загрузка изображения товара
//	@Description	JPEG, PNG или WebP размером до 5 МБ
//	@Tags			images
//	@Accept			mpfd
//	@Produce		json
//	@Param			file	formData	file	true	"Изображение"
//	@Param			folder	formData	string	false	"Папка в бакете"
//	@Success		201		{object}	ImageResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		413		{object}	ErrorResponse
//	@Failure		415		{object}	ErrorResponse
//	@Failure		503		{object}	ErrorResponse	"Хранилище изображений не настроено"
//	@Router			/images [post]
func (i *ImageHandler) uploadImage(w http.ResponseWriter, r *http.Request) {
	if err := ensureMultipartForm(w, r); err != nil {
		writeLoggedError(i.logger, w, r, err)
		return
	}

	file, err := formFile(r, "file")
	if err != nil {
		writeLoggedError(i.logger, w, r, err)
		return
	}
	if file == nil {
		writeLoggedError(i.logger, w, r, e.ErrNoImages)
		return
	}

	img, err := i.productUsecase.UploadProductImage(r.Context(), *file, r.FormValue("folder"))
	if err != nil {
		writeLoggedError(i.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, ImageResponse{URL: img.URL, Path: img.Path})
}

// deleteImage
//
//	@Summary	Удаление изображения
//	@Tags		images
//	@Param		path	query	string	true	"Путь объекта в бакете"
//	@Success	204
//	@Failure	400	{object}	ErrorResponse
//	@Failure	503	{object}	ErrorResponse
//	@Router		/images [delete]
func (i *ImageHandler) deleteImage(w http.ResponseWriter, r *http.Request) {
	if err := i.productUsecase.DeleteProductImage(r.Context(), r.URL.Query().Get("path")); err != nil {
		writeLoggedError(i.logger, w, r, err)
		return
	}

	WriteNoContent(w)
}
