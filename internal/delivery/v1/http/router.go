package http

import (
	"net/http"
	"time"

	_ "github.com/DRSN-tech/storefront/docs" // Импорт сгенерированных файлов
	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// UseCases — набор сценариев, которые обслуживает HTTP API.
type UseCases struct {
	Products   usecase.ProductUC
	Categories usecase.CategoryUC
	Orders     usecase.OrderUC
	Status     usecase.StatusUC
}

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(uc UseCases, swaggerURL string) {
	r.router.Use(middleware.RequestID, middleware.Recoverer, r.accessLog)

	if swaggerURL != "" {
		r.router.Get("/swagger/*", httpSwagger.Handler(
			httpSwagger.URL(swaggerURL), // ссылка на JSON
		))
	}

	r.router.Route("/api/v1", func(v1 chi.Router) {
		registerProductRoutes(v1, NewProductHandler(uc.Products, r.logger))
		registerCategoryRoutes(v1, NewCategoryHandler(uc.Categories, r.logger))
		registerOrderRoutes(v1, NewOrderHandler(uc.Orders, r.logger))
		registerImageRoutes(v1, NewImageHandler(uc.Products, r.logger))
		v1.Get("/status", NewStatusHandler(uc.Status).storeStatus)
	})
}

func registerProductRoutes(router chi.Router, prHandler *ProductHandler) {
	router.Route("/products", func(pr chi.Router) {
		pr.Get("/", prHandler.listProducts)
		pr.Post("/", prHandler.createProduct)
		pr.Get("/featured", prHandler.featuredProducts)
		pr.Get("/{id}", prHandler.getProduct)
		pr.Patch("/{id}", prHandler.updateProduct)
		pr.Delete("/{id}", prHandler.deleteProduct)
	})
}

func registerCategoryRoutes(router chi.Router, catHandler *CategoryHandler) {
	router.Route("/categories", func(cat chi.Router) {
		cat.Get("/", catHandler.listCategories)
		cat.Post("/", catHandler.createCategory)
		cat.Get("/{id}", catHandler.getCategory)
		cat.Patch("/{id}", catHandler.updateCategory)
		cat.Delete("/{id}", catHandler.deleteCategory)
	})
}

func registerOrderRoutes(router chi.Router, orderHandler *OrderHandler) {
	router.Route("/orders", func(o chi.Router) {
		o.Post("/", orderHandler.createOrder)
		o.Get("/{id}", orderHandler.getOrder)
		o.Patch("/{id}", orderHandler.updateOrder)
		o.Delete("/{id}", orderHandler.deleteOrder)
	})
	router.Get("/users/{userID}/orders", orderHandler.listUserOrders)
}

func registerImageRoutes(router chi.Router, imgHandler *ImageHandler) {
	router.Post("/images", imgHandler.uploadImage)
	router.Delete("/images", imgHandler.deleteImage)
}

// accessLog пишет строку на каждый обработанный запрос.
func (r *Router) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, req.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, req)

		r.logger.Debugf("%s %s %d %s request_id=%s",
			req.Method, req.URL.Path, ww.Status(), time.Since(start), middleware.GetReqID(req.Context()))
	})
}
