package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/DRSN-tech/storefront/internal/cfg"
	v1Http "github.com/DRSN-tech/storefront/internal/delivery/v1/http"
	minioInfra "github.com/DRSN-tech/storefront/internal/infrastructure/minio"
	s3Repo "github.com/DRSN-tech/storefront/internal/repository/minio"
	"github.com/DRSN-tech/storefront/internal/repository/pgdb"
	pgdbConv "github.com/DRSN-tech/storefront/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/clients"
	"github.com/DRSN-tech/storefront/pkg/closer"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/DRSN-tech/storefront/pkg/postgres"
	"github.com/DRSN-tech/storefront/pkg/tr"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
)

const bucketInitTimeout = 10 * time.Second

// App собирает зависимости сервиса и управляет его жизненным циклом.
// Удалённое хранилище и хранилище изображений необязательны: без них чтение
// обслуживается встроенным каталогом, а запись возвращает ошибку конфигурации.
type App struct {
	cfg     *config.Config
	logger  logger.Logger
	closer  *closer.Closer
	router  *chi.Mux
	httpSrv *v1Http.Server
}

// stores — репозитории удалённого хранилища. Все поля nil, если хранилище не настроено.
type stores struct {
	products   usecase.ProductRepository
	categories usecase.CategoryRepository
	orders     usecase.OrderRepository
	txManager  usecase.TxManager
}

func NewApp(cfg *config.Config, logger logger.Logger) (*App, error) {
	a := &App{
		cfg:    cfg,
		logger: logger,
		closer: closer.NewCloser(0),
	}

	st := a.initStore()
	imagesInfra := a.initImages()

	productUC := usecase.NewProductUC(st.products, imagesInfra, logger)
	uc := v1Http.UseCases{
		Products:   productUC,
		Categories: usecase.NewCategoryUC(st.categories, logger),
		Orders:     usecase.NewOrderUC(st.orders, productUC, st.txManager, logger),
		Status:     usecase.NewStatusUC(st.products, logger),
	}

	a.router = chi.NewRouter()
	v1Http.NewRouter(a.router, logger).Init(uc, cfg.Http.SwaggerURL)

	a.httpSrv = v1Http.NewServer(a.router, cfg.Http)
	a.closer.Add("http server", a.httpSrv.Stop)

	return a, nil
}

// Handler возвращает корневой обработчик HTTP API.
func (a *App) Handler() http.Handler {
	return a.router
}

// Run запускает HTTP-сервер и блокируется до сигнала завершения или ошибки сервера.
func (a *App) Run() error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Errorf(err, "HTTP server failed")
			errCh <- err
		}
	}()

	// === Ожидание сигнала или ошибки ===
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	if err := a.Shutdown(); err != nil {
		a.logger.Errorf(err, "shutdown finished with errors")
	}

	a.logger.Infof("Application shutdown complete")
	return appErr
}

// Shutdown освобождает ресурсы в порядке, обратном их созданию.
func (a *App) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()

	return a.closer.Close(ctx)
}

// initStore подключает удалённое хранилище. Ошибки подключения и миграций не фатальны:
// пул подключается лениво, а чтение при недоступном хранилище переходит на встроенный каталог.
func (a *App) initStore() stores {
	if !a.cfg.Store.Configured() {
		a.logger.Warnf("remote store is not configured, serving built-in catalog; writes are disabled")
		return stores{}
	}

	db, err := postgres.Connect(a.cfg.Store)
	if err != nil {
		a.logger.Errorf(e.Wrap(whereami.WhereAmI(), err), "failed to create store pool, serving built-in catalog")
		return stores{}
	}
	a.closer.AddFunc("store pool", db.Close)

	if a.cfg.Store.RunMigrations {
		if err := db.RunMigrations(a.logger); err != nil {
			a.logger.Warnf("failed to run migrations: %v", err)
		}
	}

	if err := db.Ping(context.Background()); err != nil {
		a.logger.Warnf("remote store is unreachable, reads will fall back: %v", err)
	}

	return stores{
		products:   pgdb.NewProductRepo(db.Pool, pgdbConv.NewProductConverter()),
		categories: pgdb.NewCategoryRepo(db.Pool, pgdbConv.NewCategoryConverter()),
		orders:     pgdb.NewOrderRepo(db.Pool, pgdbConv.NewOrderConverter(), pgdbConv.NewProductConverter()),
		txManager:  tr.NewManager(db.Pool),
	}
}

// initImages подключает хранилище изображений, если заданы адрес и учётные данные MinIO.
func (a *App) initImages() usecase.ImagesInfra {
	if !a.cfg.Minio.Configured() {
		a.logger.Warnf("image storage is not configured, uploads are disabled")
		return nil
	}

	minioClient, err := clients.NewMinIOClient(a.cfg.Minio)
	if err != nil {
		a.logger.Errorf(err, "failed to initialize minio client, uploads are disabled")
		return nil
	}

	bucketCtx, bucketCancel := context.WithTimeout(context.Background(), bucketInitTimeout)
	defer bucketCancel()
	if err := clients.EnsureBucket(bucketCtx, minioClient, a.cfg.Minio.BucketName); err != nil {
		a.logger.Warnf("failed to ensure MinIO bucket %s: %v", a.cfg.Minio.BucketName, err)
	}

	// Фоновая очистка прерывается после ожидания в WaitForCleanup.
	cleanupCtx, stopCleanup := context.WithCancel(context.Background())
	a.closer.AddFunc("image cleanup context", stopCleanup)

	infra := minioInfra.NewMinioInfrastructure(s3Repo.NewImageRepo(minioClient, a.cfg.Minio), a.cfg.Minio, a.logger, cleanupCtx)
	a.closer.Add("image cleanup", infra.WaitForCleanup)

	return infra
}
