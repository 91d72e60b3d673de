package usecase

import (
	"context"
	"testing"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/repository/static"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateReq() *CreateProductReq {
	stock := 10
	return &CreateProductReq{
		Name:          "Floor Lamp",
		Description:   "Tall lamp",
		Price:         decimal.RequireFromString("149.99"),
		Image:         "https://images.example.com/lamp.jpg",
		Category:      "lighting",
		Rating:        4.5,
		Reviews:       3,
		StockQuantity: &stock,
	}
}

func TestProductUCReadsWithoutRemote(t *testing.T) {
	uc := NewProductUC(nil, nil, logger.Nop())
	ctx := context.Background()

	assert.Equal(t, static.Products(), uc.ListProducts(ctx))
	assert.Equal(t, []int64{4, 5, 6}, productIDs(uc.ListProductsByCategory(ctx, "decor")))

	p, ok := uc.GetProduct(ctx, "2")
	require.True(t, ok)
	assert.Equal(t, "Coffee Table", p.Name)
}

func TestProductUCFeaturedFallsBackToFirstProducts(t *testing.T) {
	uc := NewProductUC(nil, nil, logger.Nop())

	assert.Equal(t, []int64{1, 2, 3, 4}, productIDs(uc.FeaturedProducts(context.Background(), 4)))
	assert.Len(t, uc.FeaturedProducts(context.Background(), 0), 6)
	assert.Len(t, uc.FeaturedProducts(context.Background(), 100), 6)
}

func TestProductUCFeaturedPrefersFlagged(t *testing.T) {
	repo := newFakeProductRepo(
		domain.Product{ID: 10, Name: "a"},
		domain.Product{ID: 11, Name: "b", IsFeatured: true},
		domain.Product{ID: 12, Name: "c", IsFeatured: true},
		domain.Product{ID: 13, Name: "d", IsFeatured: true},
	)
	uc := NewProductUC(repo, nil, logger.Nop())

	assert.Equal(t, []int64{11, 12}, productIDs(uc.FeaturedProducts(context.Background(), 2)))
}

func TestProductUCCreateValidation(t *testing.T) {
	uc := NewProductUC(newFakeProductRepo(), nil, logger.Nop())
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(r *CreateProductReq)
		err    error
	}{
		{"empty name", func(r *CreateProductReq) { r.Name = "  " }, e.ErrProductNameRequired},
		{"negative price", func(r *CreateProductReq) { r.Price = decimal.RequireFromString("-1") }, e.ErrInvalidPrice},
		{"price precision", func(r *CreateProductReq) { r.Price = decimal.RequireFromString("1.999") }, e.ErrPricePrecision},
		{"rating too high", func(r *CreateProductReq) { r.Rating = 5.1 }, e.ErrInvalidRating},
		{"negative reviews", func(r *CreateProductReq) { r.Reviews = -1 }, e.ErrNegativeCount},
		{"negative stock", func(r *CreateProductReq) { s := -2; r.StockQuantity = &s }, e.ErrNegativeCount},
		{"gif image", func(r *CreateProductReq) {
			r.ImageFile = &domain.ImageFile{Name: "a.gif", ContentType: "image/gif", Size: 10}
		}, e.ErrUnsupportedMediaType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateReq()
			tt.mutate(req)
			_, err := uc.CreateProduct(ctx, req)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestProductUCCreateWithoutRemote(t *testing.T) {
	uc := NewProductUC(nil, nil, logger.Nop())

	_, err := uc.CreateProduct(context.Background(), validCreateReq())
	assert.ErrorIs(t, err, e.ErrRemoteNotConfigured)
	assert.Equal(t, static.Products(), uc.ListProducts(context.Background()))
}

func TestProductUCCreateUploadsImage(t *testing.T) {
	repo := newFakeProductRepo()
	images := &fakeImages{}
	uc := NewProductUC(repo, images, logger.Nop())

	req := validCreateReq()
	req.Image = ""
	req.ImageFile = &domain.ImageFile{Name: "lamp.png", ContentType: "image/png", Size: 1024}

	created, err := uc.CreateProduct(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "http://minio/product-images/products/lamp.png", created.Image)
	require.Len(t, images.uploads, 1)
	assert.Empty(t, images.cleaned)
}

func TestProductUCCreateCleansUpImageOnInsertFailure(t *testing.T) {
	repo := newFakeProductRepo()
	repo.fail = true
	images := &fakeImages{}
	uc := NewProductUC(repo, images, logger.Nop())

	req := validCreateReq()
	req.ImageFile = &domain.ImageFile{Name: "lamp.png", ContentType: "image/png", Size: 1024}

	_, err := uc.CreateProduct(context.Background(), req)
	require.ErrorIs(t, err, errRemoteDown)
	assert.Equal(t, []string{"products/lamp.png"}, images.cleaned)
}

func TestProductUCCreateImageUploadFailure(t *testing.T) {
	repo := newFakeProductRepo()
	images := &fakeImages{failNext: true}
	uc := NewProductUC(repo, images, logger.Nop())

	req := validCreateReq()
	req.ImageFile = &domain.ImageFile{Name: "lamp.png", ContentType: "image/png", Size: 1024}

	_, err := uc.CreateProduct(context.Background(), req)
	require.ErrorIs(t, err, errRemoteDown)
	assert.Zero(t, repo.calls)
}

func TestProductUCUpdate(t *testing.T) {
	repo := newFakeProductRepo(domain.Product{ID: 7, Name: "Chair", Price: decimal.NewFromInt(10)})
	uc := NewProductUC(repo, nil, logger.Nop())
	ctx := context.Background()

	price := decimal.RequireFromString("12.50")
	updated, err := uc.UpdateProduct(ctx, "7", domain.ProductPatch{Price: &price})
	require.NoError(t, err)
	assert.True(t, price.Equal(updated.Price))

	_, err = uc.UpdateProduct(ctx, "x", domain.ProductPatch{Price: &price})
	assert.ErrorIs(t, err, e.ErrInvalidID)

	_, err = uc.UpdateProduct(ctx, 7, domain.ProductPatch{})
	assert.ErrorIs(t, err, e.ErrNoChanges)

	bad := 6.0
	_, err = uc.UpdateProduct(ctx, 7, domain.ProductPatch{Rating: &bad})
	assert.ErrorIs(t, err, e.ErrInvalidRating)
}

func TestProductUCDeleteRemovesOwnImage(t *testing.T) {
	repo := newFakeProductRepo(
		domain.Product{ID: 7, Name: "Chair", Image: "http://minio/product-images/products/chair.webp"},
		domain.Product{ID: 8, Name: "Stool", Image: "https://images.unsplash.com/stool.jpg"},
	)
	images := &fakeImages{}
	uc := NewProductUC(repo, images, logger.Nop())
	ctx := context.Background()

	require.NoError(t, uc.DeleteProduct(ctx, 7))
	require.NoError(t, uc.DeleteProduct(ctx, "8"))

	assert.Equal(t, []string{"products/chair.webp"}, images.cleaned)
	assert.ErrorIs(t, uc.DeleteProduct(ctx, 7), e.ErrNotFound)
}

func TestProductUCDeleteWithoutRemote(t *testing.T) {
	uc := NewProductUC(nil, &fakeImages{}, logger.Nop())

	assert.ErrorIs(t, uc.DeleteProduct(context.Background(), 1), e.ErrRemoteNotConfigured)
	_, ok := uc.GetProduct(context.Background(), 1)
	assert.True(t, ok)
}

func TestProductUCUploadImage(t *testing.T) {
	ctx := context.Background()

	withoutStorage := NewProductUC(nil, nil, logger.Nop())
	_, err := withoutStorage.UploadProductImage(ctx, domain.ImageFile{Name: "a.png", ContentType: "image/png", Size: 1}, "")
	assert.ErrorIs(t, err, e.ErrStorageNotConfigured)

	images := &fakeImages{}
	uc := NewProductUC(nil, images, logger.Nop())

	_, err = uc.UploadProductImage(ctx, domain.ImageFile{Name: "a.png", ContentType: "image/png", Size: domain.MaxImageSize + 1}, "")
	assert.ErrorIs(t, err, e.ErrFileTooLarge)
	assert.Empty(t, images.uploads)

	img, err := uc.UploadProductImage(ctx, domain.ImageFile{Name: "a.png", ContentType: "image/png", Size: domain.MaxImageSize}, "banners")
	require.NoError(t, err)
	assert.Equal(t, "products/a.png", img.Path)
	require.Len(t, images.uploads, 1)
	assert.Equal(t, "banners", images.uploads[0].Folder)
}

func TestProductUCDeleteImage(t *testing.T) {
	ctx := context.Background()

	images := &fakeImages{}
	uc := NewProductUC(nil, images, logger.Nop())

	assert.ErrorIs(t, uc.DeleteProductImage(ctx, " "), e.ErrMissingFields)
	require.NoError(t, uc.DeleteProductImage(ctx, "products/a.png"))
	assert.Equal(t, []string{"products/a.png"}, images.deleted)

	withoutStorage := NewProductUC(nil, nil, logger.Nop())
	assert.ErrorIs(t, withoutStorage.DeleteProductImage(ctx, "products/a.png"), e.ErrStorageNotConfigured)
}
