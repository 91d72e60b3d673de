package cfg

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/jimlawless/whereami"
	"github.com/joho/godotenv"
)

// Значения-заглушки из примера .env, при которых удалённое хранилище считается ненастроенным.
const (
	PlaceholderStoreURL       = "your_store_url"
	PlaceholderStoreAccessKey = "your_store_access_key"
)

type Config struct {
	Store           *StoreCfg
	Minio           *MinIOCfg
	Http            *HTTPConfig
	ShutdownTimeout time.Duration
}

// StoreCfg описывает подключение к удалённому хранилищу строк.
type StoreCfg struct {
	URL            string // Адрес хранилища (postgres URL)
	AccessKey      string // Ключ доступа
	MaxConns       int32
	RunMigrations  bool
	MigrationsPath string
}

// Configured сообщает, можно ли пользоваться удалённым хранилищем:
// оба параметра заданы и не совпадают со значениями-заглушками.
func (s *StoreCfg) Configured() bool {
	if s == nil {
		return false
	}

	url := strings.TrimSpace(s.URL)
	key := strings.TrimSpace(s.AccessKey)

	return url != "" && key != "" &&
		url != PlaceholderStoreURL &&
		key != PlaceholderStoreAccessKey
}

type MinIOCfg struct {
	MinioEndpoint     string // Адрес конечной точки Minio
	BucketName        string // Название бакета с изображениями товаров
	MinioRootUser     string // Имя пользователя для доступа к Minio
	MinioRootPassword string // Пароль для доступа к Minio
	MinioUseSSL       bool
	PublicURL         string // Базовый адрес, по которому объекты доступны публично
	DefaultFolder     string // Папка по умолчанию для загружаемых изображений
	CacheControl      string
}

// Configured сообщает, заданы ли адрес и учётные данные хранилища изображений.
func (m *MinIOCfg) Configured() bool {
	if m == nil {
		return false
	}

	return m.MinioEndpoint != "" && m.MinioRootUser != "" && m.MinioRootPassword != "" && m.BucketName != ""
}

// ObjectURL возвращает публичный адрес объекта по его ключу.
func (m *MinIOCfg) ObjectURL(key string) string {
	base := strings.TrimRight(m.PublicURL, "/")
	if base == "" {
		scheme := "http"
		if m.MinioUseSSL {
			scheme = "https"
		}
		base = fmt.Sprintf("%s://%s", scheme, m.MinioEndpoint)
	}

	return fmt.Sprintf("%s/%s/%s", base, m.BucketName, strings.TrimLeft(key, "/"))
}

// ObjectKey извлекает ключ объекта из публичного адреса.
// Возвращает false, если адрес не указывает на бакет.
func (m *MinIOCfg) ObjectKey(url string) (string, bool) {
	if m == nil || url == "" {
		return "", false
	}

	prefix := m.ObjectURL("")
	if !strings.HasPrefix(url, prefix) {
		return "", false
	}

	key := strings.TrimPrefix(url, prefix)
	return key, key != ""
}

type HTTPConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	SwaggerURL   string
}

// Load безопасно загружает конфигурацию и возвращает ошибку в случае неудачи.
// Отсутствие настроек удалённого хранилища ошибкой не является.
func Load(log logger.Logger) (*Config, error) {
	loadEnvFile(log)

	store, err := loadStoreCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	http, err := loadHTTPConfig(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	minio, err := loadMinIOCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	shutdownTimeout, err := parseDurationEnv("SHUTDOWN_TIMEOUT", 10*time.Second)
	if err != nil {
		log.Errorf(err, "invalid SHUTDOWN_TIMEOUT")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &Config{
		Store:           store,
		Minio:           minio,
		Http:            http,
		ShutdownTimeout: shutdownTimeout,
	}, nil
}

// loadEnvFile подгружает .env.local для локальной разработки (APP_ENV=local).
// Уже заданные переменные окружения не перезаписываются.
func loadEnvFile(log logger.Logger) {
	if getEnv("APP_ENV") != "local" {
		return
	}

	file := getEnvOrDefault("ENV_FILE", ".env.local")
	if err := godotenv.Load(file); err != nil {
		log.Warnf("%s not loaded, relying on process environment: %v", file, err)
		return
	}

	log.Infof("loaded %s for local development", file)
}

func loadStoreCfg(log logger.Logger) (*StoreCfg, error) {
	const (
		defaultMaxConns       = 10
		defaultRunMigrations  = true
		defaultMigrationsPath = "db/migrations"
	)

	maxConns, err := parseIntEnv("STORE_MAX_CONNS", defaultMaxConns)
	if err != nil {
		log.Errorf(err, "invalid STORE_MAX_CONNS")
		return nil, err
	}

	runMigrations, err := strconv.ParseBool(getEnvOrDefault("STORE_RUN_MIGRATIONS", strconv.FormatBool(defaultRunMigrations)))
	if err != nil {
		log.Errorf(err, "invalid STORE_RUN_MIGRATIONS")
		return nil, err
	}

	return &StoreCfg{
		URL:            getEnv("STORE_URL"),
		AccessKey:      getEnv("STORE_ACCESS_KEY"),
		MaxConns:       int32(maxConns),
		RunMigrations:  runMigrations,
		MigrationsPath: getEnvOrDefault("STORE_MIGRATIONS_PATH", defaultMigrationsPath),
	}, nil
}

func loadMinIOCfg(log logger.Logger) (*MinIOCfg, error) {
	const (
		defaultUseSSL       = false
		defaultBucket       = "product-images"
		defaultFolder       = "products"
		defaultCacheControl = "max-age=3600"
	)

	useSSL, err := strconv.ParseBool(getEnvOrDefault("MINIO_USE_SSL", strconv.FormatBool(defaultUseSSL)))
	if err != nil {
		log.Errorf(err, "invalid MINIO_USE_SSL")
		return nil, err
	}

	return &MinIOCfg{
		MinioEndpoint:     getEnv("MINIO_ENDPOINT"),
		BucketName:        getEnvOrDefault("BUCKET_NAME", defaultBucket),
		MinioRootUser:     getEnv("MINIO_ROOT_USER"),
		MinioRootPassword: getEnv("MINIO_ROOT_PASSWORD"),
		MinioUseSSL:       useSSL,
		PublicURL:         getEnv("MINIO_PUBLIC_URL"),
		DefaultFolder:     getEnvOrDefault("IMAGE_FOLDER", defaultFolder),
		CacheControl:      getEnvOrDefault("IMAGE_CACHE_CONTROL", defaultCacheControl),
	}, nil
}

func loadHTTPConfig(log logger.Logger) (*HTTPConfig, error) {
	const (
		defaultPort         = "8080"
		defaultReadTimeout  = 5 * time.Second
		defaultWriteTimeout = 10 * time.Second
		defaultIdleTimeout  = 60 * time.Second
	)

	port := getEnvOrDefault("HTTP_PORT", defaultPort)

	readTimeout, err := parseDurationEnv("HTTP_READ_TIMEOUT", defaultReadTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_READ_TIMEOUT")
		return nil, err
	}

	writeTimeout, err := parseDurationEnv("HTTP_WRITE_TIMEOUT", defaultWriteTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_WRITE_TIMEOUT")
		return nil, err
	}

	idleTimeout, err := parseDurationEnv("KEEP_ALIVE", defaultIdleTimeout)
	if err != nil {
		log.Errorf(err, "invalid KEEP_ALIVE")
		return nil, err
	}

	return &HTTPConfig{
		Port:         port,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
		SwaggerURL:   getEnvOrDefault("SWAGGER_URL", "http://localhost:"+port+"/swagger/doc.json"),
	}, nil
}

// getEnv возвращает значение переменной окружения.
// Возвращает пустую строку, если переменная не задана.
func getEnv(key string) string {
	return os.Getenv(key)
}

// getEnvOrDefault возвращает значение переменной окружения или значение по умолчанию.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

// parseDurationEnv считывает длительность или возвращает значение по умолчанию.
func parseDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	if v := os.Getenv(key); v != "" {
		return time.ParseDuration(v)
	}

	return defaultValue, nil
}

func parseIntEnv(key string, defaultValue int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}

	intValue, err := strconv.Atoi(v)
	if err != nil {
		return defaultValue, e.Wrap(key, e.ErrIncorrectEnvVariable)
	}

	return intValue, nil
}
