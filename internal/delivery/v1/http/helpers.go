package http

import (
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jimlawless/whereami"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

const (
	// maxJSONBodySize — предел тела JSON-запроса.
	maxJSONBodySize = 1 << 20
	// maxUploadRequestSize — предел multipart-запроса с одним изображением.
	maxUploadRequestSize = domain.MaxImageSize + 1<<20
	maxMemory            = 8 << 20
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

// badRequestErrs — ошибки валидации, сообщение которых отдаётся клиенту как есть.
var badRequestErrs = []error{
	e.ErrInvalidID,
	e.ErrMissingFields,
	e.ErrProductNameRequired,
	e.ErrCategoryNameRequired,
	e.ErrInvalidPrice,
	e.ErrPricePrecision,
	e.ErrInvalidRating,
	e.ErrNegativeCount,
	e.ErrEmptyOrder,
	e.ErrInvalidQuantity,
	e.ErrUserRequired,
	e.ErrNoChanges,
	e.ErrExpectedMultipart,
	e.ErrNoImages,
	e.ErrStatusBadRequest,
}

func ToHTTPResponse(err error) (int, string) {
	switch {
	case errors.Is(err, e.ErrRemoteNotConfigured):
		return http.StatusServiceUnavailable, e.ErrRemoteNotConfigured.Error()
	case errors.Is(err, e.ErrStorageNotConfigured):
		return http.StatusServiceUnavailable, e.ErrStorageNotConfigured.Error()
	case errors.Is(err, e.ErrNotFound):
		return http.StatusNotFound, e.ErrNotFound.Error()
	case errors.Is(err, e.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, e.ErrFileTooLarge.Error()
	case errors.Is(err, e.ErrUnsupportedMediaType):
		return http.StatusUnsupportedMediaType, e.ErrUnsupportedMediaType.Error()
	}

	for _, target := range badRequestErrs {
		if errors.Is(err, target) {
			return http.StatusBadRequest, target.Error()
		}
	}

	return http.StatusInternalServerError, e.ErrInternalServerError.Error()
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func WriteNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// decodeJSON читает тело запроса в dst, отклоняя неизвестные поля.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodySize)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return e.Wrap(err.Error(), e.ErrStatusBadRequest)
	}

	return nil
}

func isMultipart(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data")
}

func ensureMultipartForm(w http.ResponseWriter, r *http.Request) error {
	if !isMultipart(r) {
		return e.Wrap(whereami.WhereAmI(), e.ErrExpectedMultipart)
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadRequestSize)
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return e.Wrap(whereami.WhereAmI(), e.ErrFileTooLarge)
		}
		return e.Wrap(err.Error(), e.ErrStatusBadRequest)
	}

	return nil
}

// parsePrice разбирает цену вида "599.99". Отрицательные значения и больше двух знаков после точки отклоняются.
func parsePrice(s string) (decimal.Decimal, error) {
	if strings.TrimSpace(s) == "" {
		return decimal.Decimal{}, e.ErrMissingFields
	}

	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Decimal{}, e.ErrInvalidPrice
	}

	if d.IsNegative() {
		return decimal.Decimal{}, e.ErrInvalidPrice
	}

	if !d.Equal(d.Round(2)) {
		return decimal.Decimal{}, e.ErrPricePrecision
	}

	return d, nil
}

// formFile возвращает файл из поля field или nil, если поле не передано.
func formFile(r *http.Request, field string) (*domain.ImageFile, error) {
	if r.MultipartForm == nil {
		return nil, nil
	}

	files := r.MultipartForm.File[field]
	if len(files) == 0 {
		return nil, nil
	}

	return readImageFile(files[0])
}

// readImageFile читает загруженный файл. Тип берётся из заголовка части,
// иначе определяется по содержимому.
func readImageFile(fh *multipart.FileHeader) (*domain.ImageFile, error) {
	if fh.Size > domain.MaxImageSize {
		return nil, e.Wrap(fh.Filename, e.ErrFileTooLarge)
	}

	src, err := fh.Open()
	if err != nil {
		return nil, e.ErrInternalServerError
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, domain.MaxImageSize+1))
	if err != nil {
		return nil, e.ErrInternalServerError
	}

	mimeType := fh.Header.Get("Content-Type")
	if mimeType == "" || mimeType == "application/octet-stream" {
		mimeType = http.DetectContentType(data[:min(len(data), 512)])
	}

	return &domain.ImageFile{
		Name:        fh.Filename,
		ContentType: mimeType,
		Size:        int64(len(data)),
		Data:        data,
	}, nil
}

// formInt разбирает необязательное целое поле формы.
func formInt(r *http.Request, field string) (*int, error) {
	v := strings.TrimSpace(r.FormValue(field))
	if v == "" {
		return nil, nil
	}

	n, err := cast.ToIntE(v)
	if err != nil {
		return nil, e.Wrap(field, e.ErrStatusBadRequest)
	}

	return &n, nil
}

func formFloat(r *http.Request, field string) (float64, error) {
	v := strings.TrimSpace(r.FormValue(field))
	if v == "" {
		return 0, nil
	}

	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, e.Wrap(field, e.ErrStatusBadRequest)
	}

	return f, nil
}

func formBool(r *http.Request, field string) (bool, error) {
	v := strings.TrimSpace(r.FormValue(field))
	if v == "" {
		return false, nil
	}

	b, err := cast.ToBoolE(v)
	if err != nil {
		return false, e.Wrap(field, e.ErrStatusBadRequest)
	}

	return b, nil
}

// writeLoggedError отправляет ответ через WriteError. Причину сбоя записи уже залогировал
// слой сценариев, здесь остаётся только отладочная трассировка запроса.
func writeLoggedError(log logger.Logger, w http.ResponseWriter, r *http.Request, err error) {
	code, _ := ToHTTPResponse(err)
	log.Debugf("%d %s %s: %v request_id=%s", code, r.Method, r.URL.Path, err, middleware.GetReqID(r.Context()))
	WriteError(w, err)
}
