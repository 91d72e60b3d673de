package usecase

import (
	"context"

	"github.com/DRSN-tech/storefront/internal/domain"
)

type ImagesInfra interface {
	UploadImage(ctx context.Context, req *UploadImageReq) (*domain.StoredImage, error)
	DeleteImage(ctx context.Context, path string) error
	CleanupImages(keys []string)
	KeyFromURL(url string) (string, bool)
}
