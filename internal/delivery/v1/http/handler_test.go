package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"sync"
	"testing"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubImages struct {
	uploaded []usecase.UploadImageReq
	deleted  []string
}

func (s *stubImages) UploadImage(_ context.Context, req *usecase.UploadImageReq) (*domain.StoredImage, error) {
	s.uploaded = append(s.uploaded, *req)
	folder := req.Folder
	if folder == "" {
		folder = "products"
	}
	path := folder + "/" + req.File.Name
	return &domain.StoredImage{URL: "http://cdn/product-images/" + path, Path: path}, nil
}

func (s *stubImages) DeleteImage(_ context.Context, path string) error {
	s.deleted = append(s.deleted, path)
	return nil
}

func (s *stubImages) CleanupImages([]string) {}

func (s *stubImages) KeyFromURL(string) (string, bool) { return "", false }

// newTestServer собирает роутер поверх сценариев без удалённого хранилища.
func newTestServer(t *testing.T, images usecase.ImagesInfra) *httptest.Server {
	t.Helper()
	return newTestServerWithLogger(t, images, logger.Nop())
}

func newTestServerWithLogger(t *testing.T, images usecase.ImagesInfra, log logger.Logger) *httptest.Server {
	t.Helper()

	products := usecase.NewProductUC(nil, images, log)

	mux := chi.NewRouter()
	NewRouter(mux, log).Init(UseCases{
		Products:   products,
		Categories: usecase.NewCategoryUC(nil, log),
		Orders:     usecase.NewOrderUC(nil, products, nil, log),
		Status:     usecase.NewStatusUC(nil, log),
	}, "")

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url, body string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func multipartBody(t *testing.T, fields map[string]string, fileName, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()

	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}

	if fileName != "" {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, fileName))
		h.Set("Content-Type", contentType)
		part, err := mw.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}

	require.NoError(t, mw.Close())
	return buf, mw.FormDataContentType()
}

func postMultipart(t *testing.T, url string, body *bytes.Buffer, contentType string) *http.Response {
	t.Helper()

	resp, err := http.Post(url, contentType, body)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()

	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestListProductsFallback(t *testing.T) {
	srv := newTestServer(t, nil)

	resp := doJSON(t, http.MethodGet, srv.URL+"/api/v1/products", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	products := decodeBody[[]ProductResponse](t, resp)
	require.Len(t, products, 6)
	assert.Equal(t, "Modern Sofa Set", products[0].Name)
	assert.Equal(t, "899.99", products[0].Price.StringFixed(2))
	assert.Nil(t, products[0].CreatedAt)
}

func TestListProductsByCategory(t *testing.T) {
	srv := newTestServer(t, nil)

	resp := doJSON(t, http.MethodGet, srv.URL+"/api/v1/products?category=decor", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	products := decodeBody[[]ProductResponse](t, resp)
	ids := make([]int64, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []int64{4, 5, 6}, ids)

	resp = doJSON(t, http.MethodGet, srv.URL+"/api/v1/products?category=unknown", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, decodeBody[[]ProductResponse](t, resp))
}

func TestFeaturedProducts(t *testing.T) {
	srv := newTestServer(t, nil)

	resp := doJSON(t, http.MethodGet, srv.URL+"/api/v1/products/featured", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decodeBody[[]ProductResponse](t, resp), defaultFeaturedLimit)

	resp = doJSON(t, http.MethodGet, srv.URL+"/api/v1/products/featured?limit=2", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decodeBody[[]ProductResponse](t, resp), 2)

	resp = doJSON(t, http.MethodGet, srv.URL+"/api/v1/products/featured?limit=zero", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetProduct(t *testing.T) {
	srv := newTestServer(t, nil)

	resp := doJSON(t, http.MethodGet, srv.URL+"/api/v1/products/3", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Table Lamp", decodeBody[ProductResponse](t, resp).Name)

	for _, id := range []string{"999", "abc"} {
		resp = doJSON(t, http.MethodGet, srv.URL+"/api/v1/products/"+id, "")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, id)
	}
}

func TestCreateProductJSON(t *testing.T) {
	srv := newTestServer(t, nil)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/v1/products", `{"name":"Lamp","price":"10.50","category":"lighting"}`)
	require.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, e.ErrRemoteNotConfigured.Error(), decodeBody[ErrorResponse](t, resp).Message)

	resp = doJSON(t, http.MethodPost, srv.URL+"/api/v1/products", `{"name":"","price":1}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, e.ErrProductNameRequired.Error(), decodeBody[ErrorResponse](t, resp).Message)

	resp = doJSON(t, http.MethodPost, srv.URL+"/api/v1/products", `{"name":"Lamp","price":1.005}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, http.MethodPost, srv.URL+"/api/v1/products", `{"title":"Lamp"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreateProductMultipart(t *testing.T) {
	srv := newTestServer(t, &stubImages{})

	body, ct := multipartBody(t, map[string]string{"name": "Lamp", "price": "10"}, "lamp.gif", "image/gif", []byte("GIF89a"))
	resp := postMultipart(t, srv.URL+"/api/v1/products", body, ct)
	require.Equal(t, http.StatusUnsupportedMediaType, resp.StatusCode)
	assert.Equal(t, e.ErrUnsupportedMediaType.Error(), decodeBody[ErrorResponse](t, resp).Message)

	body, ct = multipartBody(t, map[string]string{"name": "Lamp", "price": "-1"}, "", "", nil)
	resp = postMultipart(t, srv.URL+"/api/v1/products", body, ct)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body, ct = multipartBody(t, map[string]string{"name": "Lamp", "price": "10", "reviews": "many"}, "", "", nil)
	resp = postMultipart(t, srv.URL+"/api/v1/products", body, ct)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body, ct = multipartBody(t, map[string]string{"name": "Lamp", "price": "10", "is_featured": "true"}, "lamp.png", "image/png", []byte("png"))
	resp = postMultipart(t, srv.URL+"/api/v1/products", body, ct)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestWritesWithoutRemote(t *testing.T) {
	srv := newTestServer(t, nil)

	tests := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodPatch, "/api/v1/products/1", `{"name":"New"}`},
		{http.MethodDelete, "/api/v1/products/1", ""},
		{http.MethodPost, "/api/v1/categories", `{"name":"Outdoor"}`},
		{http.MethodPatch, "/api/v1/categories/1", `{"icon":"x"}`},
		{http.MethodDelete, "/api/v1/categories/1", ""},
		{http.MethodPost, "/api/v1/orders", `{"user_id":"u1","items":[{"product_id":1,"quantity":2}]}`},
		{http.MethodPatch, "/api/v1/orders/1", `{"status":"paid"}`},
		{http.MethodDelete, "/api/v1/orders/1", ""},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			resp := doJSON(t, tt.method, srv.URL+tt.path, tt.body)
			assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		})
	}

	resp := doJSON(t, http.MethodGet, srv.URL+"/api/v1/products", "")
	assert.Len(t, decodeBody[[]ProductResponse](t, resp), 6)
}

// syncBuffer — буфер логов, в который пишет горутина сервера.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) count(substr string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return strings.Count(b.buf.String(), substr)
}

func TestFailedWriteLoggedOnce(t *testing.T) {
	logs := &syncBuffer{}
	srv := newTestServerWithLogger(t, nil, logger.NewSlogLoggerWithWriter(logs, slog.LevelDebug))

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/v1/orders", `{"user_id":"u1","items":[{"product_id":1,"quantity":2}]}`)
	require.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	assert.Equal(t, 1, logs.count(`"level":"ERROR"`))
	assert.Equal(t, 1, logs.count(`"level":"DEBUG","msg":"503 POST /api/v1/orders`))
}

func TestCategories(t *testing.T) {
	srv := newTestServer(t, nil)

	resp := doJSON(t, http.MethodGet, srv.URL+"/api/v1/categories", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	categories := decodeBody[[]CategoryResponse](t, resp)
	require.Len(t, categories, 4)
	assert.Equal(t, "furniture", categories[0].Slug)

	resp = doJSON(t, http.MethodGet, srv.URL+"/api/v1/categories/2", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "lighting", decodeBody[CategoryResponse](t, resp).Slug)

	resp = doJSON(t, http.MethodGet, srv.URL+"/api/v1/categories/42", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, http.MethodPost, srv.URL+"/api/v1/categories", `{"name":""}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestOrders(t *testing.T) {
	srv := newTestServer(t, nil)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/v1/orders", `{"user_id":"u1","items":[]}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, e.ErrEmptyOrder.Error(), decodeBody[ErrorResponse](t, resp).Message)

	resp = doJSON(t, http.MethodPatch, srv.URL+"/api/v1/orders/1", `{"status":"lost"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, http.MethodGet, srv.URL+"/api/v1/users/u1/orders", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, decodeBody[[]OrderResponse](t, resp))

	resp = doJSON(t, http.MethodGet, srv.URL+"/api/v1/orders/1", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUploadImage(t *testing.T) {
	images := &stubImages{}
	srv := newTestServer(t, images)

	body, ct := multipartBody(t, map[string]string{"folder": "banners"}, "hero.webp", "image/webp", []byte("RIFF....WEBP"))
	resp := postMultipart(t, srv.URL+"/api/v1/images", body, ct)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	img := decodeBody[ImageResponse](t, resp)
	assert.Equal(t, "banners/hero.webp", img.Path)
	assert.Equal(t, "http://cdn/product-images/banners/hero.webp", img.URL)
	require.Len(t, images.uploaded, 1)
	assert.Equal(t, int64(12), images.uploaded[0].File.Size)

	body, ct = multipartBody(t, nil, "", "", nil)
	resp = postMultipart(t, srv.URL+"/api/v1/images", body, ct)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body, ct = multipartBody(t, nil, "doc.pdf", "application/pdf", []byte("%PDF"))
	resp = postMultipart(t, srv.URL+"/api/v1/images", body, ct)
	assert.Equal(t, http.StatusUnsupportedMediaType, resp.StatusCode)
	assert.Len(t, images.uploaded, 1)

	resp = doJSON(t, http.MethodPost, srv.URL+"/api/v1/images", `{}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUploadImageWithoutStorage(t *testing.T) {
	srv := newTestServer(t, nil)

	body, ct := multipartBody(t, nil, "a.png", "image/png", []byte("png"))
	resp := postMultipart(t, srv.URL+"/api/v1/images", body, ct)
	require.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, e.ErrStorageNotConfigured.Error(), decodeBody[ErrorResponse](t, resp).Message)
}

func TestDeleteImage(t *testing.T) {
	images := &stubImages{}
	srv := newTestServer(t, images)

	resp := doJSON(t, http.MethodDelete, srv.URL+"/api/v1/images?path=products/a.png", "")
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, []string{"products/a.png"}, images.deleted)

	resp = doJSON(t, http.MethodDelete, srv.URL+"/api/v1/images", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestStatus(t *testing.T) {
	srv := newTestServer(t, nil)

	resp := doJSON(t, http.MethodGet, srv.URL+"/api/v1/status", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, StatusResponse{}, decodeBody[StatusResponse](t, resp))
}

func TestToHTTPResponse(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{e.Wrap("op", e.ErrRemoteNotConfigured), http.StatusServiceUnavailable},
		{e.Wrap("op", e.ErrStorageNotConfigured), http.StatusServiceUnavailable},
		{e.Wrap("op", e.ErrNotFound), http.StatusNotFound},
		{e.Wrap("op", e.ErrFileTooLarge), http.StatusRequestEntityTooLarge},
		{e.Wrap("op", e.ErrUnsupportedMediaType), http.StatusUnsupportedMediaType},
		{e.Wrap("op", e.ErrInvalidRating), http.StatusBadRequest},
		{e.Wrap("op", e.ErrNoChanges), http.StatusBadRequest},
		{errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		code, msg := ToHTTPResponse(tt.err)
		assert.Equal(t, tt.code, code, tt.err.Error())
		assert.NotEmpty(t, msg)
	}

	_, msg := ToHTTPResponse(e.Wrap("op", e.ErrInvalidRating))
	assert.Equal(t, e.ErrInvalidRating.Error(), msg)
}

func TestParsePrice(t *testing.T) {
	p, err := parsePrice(" 599.99 ")
	require.NoError(t, err)
	assert.Equal(t, "599.99", p.String())

	p, err = parsePrice("600.10")
	require.NoError(t, err)
	assert.Equal(t, "600.1", p.String())

	_, err = parsePrice("")
	assert.ErrorIs(t, err, e.ErrMissingFields)
	_, err = parsePrice("abc")
	assert.ErrorIs(t, err, e.ErrInvalidPrice)
	_, err = parsePrice("-5")
	assert.ErrorIs(t, err, e.ErrInvalidPrice)
	_, err = parsePrice("1.234")
	assert.ErrorIs(t, err, e.ErrPricePrecision)
}

func TestOrderResponseEmbedsLineProduct(t *testing.T) {
	lamp := domain.Product{ID: 3, Name: "Table Lamp", Price: decimal.RequireFromString("79.99")}
	order := domain.Order{
		ID:     7,
		UserID: "u1",
		Status: domain.OrderPending,
		Items: []domain.OrderItem{
			{ID: 1, ProductID: 3, Quantity: 1, Price: lamp.Price, Product: &lamp},
			{ID: 2, ProductID: 99, Quantity: 2, Price: decimal.RequireFromString("5.00")},
		},
	}

	raw, err := json.Marshal(toOrderResponse(order))
	require.NoError(t, err)

	var got struct {
		Items []map[string]json.RawMessage `json:"items"`
	}
	require.NoError(t, json.Unmarshal(raw, &got))
	require.Len(t, got.Items, 2)

	var product ProductResponse
	require.NoError(t, json.Unmarshal(got.Items[0]["product"], &product))
	assert.Equal(t, "Table Lamp", product.Name)
	assert.NotContains(t, got.Items[1], "product")
}
