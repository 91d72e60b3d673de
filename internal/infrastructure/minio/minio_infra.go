package minio

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/DRSN-tech/storefront/internal/cfg"
	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/infrastructure"
	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/jitter"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/google/uuid"
)

const (
	cleanupAttempts   = 3
	cleanupTimeout    = 30 * time.Second
	cleanupBaseDelay  = time.Second
	cleanupMaxBackoff = 8 * time.Second
)

var _ usecase.ImagesInfra = (*MinioInfrastructure)(nil)

// MinioInfrastructure управляет загрузкой и очисткой изображений товаров в MinIO.
type MinioInfrastructure struct {
	minioRepo   usecase.ImageRepository
	cfg         *cfg.MinIOCfg
	logger      logger.Logger
	shutdownCtx context.Context
	wg          sync.WaitGroup

	now        func() time.Time
	newID      func() string
	retryDelay time.Duration
}

func NewMinioInfrastructure(minioRepo usecase.ImageRepository, cfg *cfg.MinIOCfg, logger logger.Logger, shutdownCtx context.Context) *MinioInfrastructure {
	return &MinioInfrastructure{
		minioRepo:   minioRepo,
		cfg:         cfg,
		logger:      logger,
		shutdownCtx: shutdownCtx,
		now:         time.Now,
		newID:       uuid.NewString,
		retryDelay:  cleanupBaseDelay,
	}
}

// UploadImage загружает одно изображение под уникальным ключом folder/<millis>_<random>.<ext>
// и возвращает его публичный адрес и путь в бакете.
func (m *MinioInfrastructure) UploadImage(ctx context.Context, req *usecase.UploadImageReq) (*domain.StoredImage, error) {
	const op = "MinioInfrastructure.UploadImage"

	ext, err := infrastructure.ImageExtension(req.File.Name, req.File.ContentType)
	if err != nil {
		return nil, e.Wrap(op, fmt.Errorf("invalid mime type %s for %s: %w", req.File.ContentType, req.File.Name, err))
	}

	folder := req.Folder
	if strings.TrimSpace(folder) == "" {
		folder = m.cfg.DefaultFolder
	}

	key := infrastructure.BuildObjectKey(folder, m.now(), m.newID(), ext)
	image := &domain.Image{
		ObjectKey:    key,
		Data:         req.File.Data,
		Size:         req.File.Size,
		ContentType:  req.File.ContentType,
		CacheControl: m.cfg.CacheControl,
	}

	stored, err := m.minioRepo.Upload(ctx, image)
	if err != nil {
		return nil, e.Wrap(op, fmt.Errorf("upload %s failed: %w", req.File.Name, err))
	}

	m.logger.Debugf("image uploaded. name: %s, key: %s", req.File.Name, stored)

	return &domain.StoredImage{
		URL:  m.cfg.ObjectURL(stored),
		Path: stored,
	}, nil
}

// DeleteImage удаляет объект по пути в бакете.
func (m *MinioInfrastructure) DeleteImage(ctx context.Context, path string) error {
	const op = "MinioInfrastructure.DeleteImage"

	key := strings.TrimLeft(strings.TrimSpace(path), "/")
	if key == "" {
		return e.Wrap(op, e.ErrMissingFields)
	}

	if err := m.minioRepo.Delete(ctx, key); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// KeyFromURL возвращает ключ объекта, если url указывает на бакет изображений.
func (m *MinioInfrastructure) KeyFromURL(url string) (string, bool) {
	return m.cfg.ObjectKey(url)
}

// CleanupImages запускает фоновую очистку указанных ключей MinIO
func (m *MinioInfrastructure) CleanupImages(keys []string) {
	if len(keys) == 0 {
		return
	}
	m.wg.Add(1)
	go m.cleanupKeys(keys)
}

// cleanupKeys удаляет объекты с экспоненциальной задержкой и jitter между попытками.
func (m *MinioInfrastructure) cleanupKeys(keys []string) {
	defer m.wg.Done()
	const op = "MinioInfrastructure.cleanupKeys"
	m.logger.Infof("%s: cleaning up %d key(s)", op, len(keys))

	ctx, cancel := context.WithTimeout(m.shutdownCtx, cleanupTimeout)
	defer cancel()

	for _, key := range keys {
		for attempt := 0; attempt < cleanupAttempts; attempt++ {
			err := m.minioRepo.Delete(ctx, key)
			if err == nil {
				break
			}

			if ctx.Err() != nil {
				m.logger.Warnf("cleanup interrupted by shutdown, key=%v", key)
				return
			}

			if attempt == cleanupAttempts-1 {
				m.logger.Errorf(err, "%s: giving up on key %s", op, key)
				break
			}

			delay := jitter.ExponentialBackoff(m.retryDelay, cleanupMaxBackoff, attempt, jitter.DefaultJitter)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				m.logger.Warnf("cleanup interrupted by shutdown during backoff, key=%v", key)
				return
			}
		}
	}
}

// WaitForCleanup ожидает завершения всех фоновых задач очистки с учётом таймаута завершения приложения.
func (m *MinioInfrastructure) WaitForCleanup(shutdownTimeoutCtx context.Context) error {
	done := make(chan struct{})
	go func() {
		m.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-shutdownTimeoutCtx.Done():
		return fmt.Errorf("minio cleanup timeout during shutdown: %w", shutdownTimeoutCtx.Err())
	}
}
