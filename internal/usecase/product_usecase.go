package usecase

import (
	"context"
	"strings"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/repository/static"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/shopspring/decimal"
)

const maxRating = 5.0

// ProductUseCase реализует чтение и администрирование каталога товаров.
type ProductUseCase struct {
	products    *Resolver[domain.Product, domain.ProductPatch]
	imagesInfra ImagesInfra
	logger      logger.Logger
}

// NewProductUC создаёт usecase товаров.
// При productRepo == nil удалённое хранилище не настроено, при imagesInfra == nil нет хранилища изображений.
func NewProductUC(productRepo ProductRepository, imagesInfra ImagesInfra, logger logger.Logger) *ProductUseCase {
	var remote Store[domain.Product, domain.ProductPatch]
	if productRepo != nil {
		remote = productRepo
	}

	return &ProductUseCase{
		products:    NewResolver("product", remote, static.Products, productID, matchProduct, logger),
		imagesInfra: imagesInfra,
		logger:      logger,
	}
}

// ListProducts возвращает все товары, новые первыми.
func (p *ProductUseCase) ListProducts(ctx context.Context) []domain.Product {
	return p.products.ListAll(ctx)
}

// GetProduct возвращает товар по идентификатору.
func (p *ProductUseCase) GetProduct(ctx context.Context, id any) (domain.Product, bool) {
	return p.products.GetByID(ctx, id)
}

// StoredProduct возвращает товар из удалённого хранилища без подмены резервными данными.
func (p *ProductUseCase) StoredProduct(ctx context.Context, id domain.ID) (domain.Product, error) {
	return p.products.GetRemote(ctx, id)
}

// ListProductsByCategory возвращает товары категории category.
func (p *ProductUseCase) ListProductsByCategory(ctx context.Context, category string) []domain.Product {
	return p.products.ListBy(ctx, Filter{Field: FieldCategory, Value: category})
}

// FeaturedProducts возвращает до limit отмеченных товаров.
// Если отмеченных нет, витрина показывает первые товары списка.
func (p *ProductUseCase) FeaturedProducts(ctx context.Context, limit int) []domain.Product {
	all := p.products.ListAll(ctx)
	if limit <= 0 || limit > len(all) {
		limit = len(all)
	}

	featured := make([]domain.Product, 0, limit)
	for _, pr := range all {
		if pr.IsFeatured {
			featured = append(featured, pr)
		}
		if len(featured) == limit {
			break
		}
	}

	if len(featured) == 0 {
		return all[:limit]
	}

	return featured
}

// CreateProduct валидирует и добавляет товар. Если передан файл изображения,
// он сначала загружается в хранилище, а при неудачной вставке удаляется.
func (p *ProductUseCase) CreateProduct(ctx context.Context, req *CreateProductReq) (domain.Product, error) {
	const op = "ProductUseCase.CreateProduct"

	if err := validateProduct(req); err != nil {
		return domain.Product{}, e.Wrap(op, err)
	}

	if req.ImageFile != nil {
		if err := req.ImageFile.Validate(); err != nil {
			return domain.Product{}, e.Wrap(op, err)
		}
	}

	if !p.products.Configured() {
		return p.products.Create(ctx, req.ToEntity())
	}

	product := req.ToEntity()

	var uploaded *domain.StoredImage
	if req.ImageFile != nil {
		img, err := p.UploadProductImage(ctx, *req.ImageFile, "")
		if err != nil {
			return domain.Product{}, e.Wrap(op, err)
		}
		uploaded = img
		product.Image = img.URL
	}

	created, err := p.products.Create(ctx, product)
	if err != nil {
		if uploaded != nil {
			p.logger.Warnf("Cleaning up orphaned image after failed insert. product_name: %s, path: %s", req.Name, uploaded.Path)
			p.imagesInfra.CleanupImages([]string{uploaded.Path})
		}
		return domain.Product{}, e.Wrap(op, err)
	}

	return created, nil
}

// UpdateProduct применяет частичное обновление к товару.
func (p *ProductUseCase) UpdateProduct(ctx context.Context, id any, patch domain.ProductPatch) (domain.Product, error) {
	const op = "ProductUseCase.UpdateProduct"

	productID, err := domain.ParseID(id)
	if err != nil {
		return domain.Product{}, e.Wrap(op, err)
	}

	if err := validateProductPatch(patch); err != nil {
		return domain.Product{}, e.Wrap(op, err)
	}

	updated, err := p.products.Update(ctx, productID, patch)
	if err != nil {
		return domain.Product{}, e.Wrap(op, err)
	}

	return updated, nil
}

// DeleteProduct удаляет товар. Изображение из собственного бакета удаляется в фоне.
func (p *ProductUseCase) DeleteProduct(ctx context.Context, id any) error {
	const op = "ProductUseCase.DeleteProduct"

	productID, err := domain.ParseID(id)
	if err != nil {
		return e.Wrap(op, err)
	}

	var imageURL string
	if p.products.Configured() && p.imagesInfra != nil {
		if pr, ok := p.products.GetByID(ctx, productID); ok {
			imageURL = pr.Image
		}
	}

	if err := p.products.Delete(ctx, productID); err != nil {
		return e.Wrap(op, err)
	}

	if imageURL != "" {
		if key, ok := p.imagesInfra.KeyFromURL(imageURL); ok {
			p.imagesInfra.CleanupImages([]string{key})
		}
	}

	return nil
}

// UploadProductImage проверяет файл и загружает его в хранилище изображений.
// Проверка выполняется до любого обращения к хранилищу.
func (p *ProductUseCase) UploadProductImage(ctx context.Context, file domain.ImageFile, folder string) (*domain.StoredImage, error) {
	const op = "ProductUseCase.UploadProductImage"

	if err := file.Validate(); err != nil {
		return nil, e.Wrap(op, err)
	}

	if p.imagesInfra == nil {
		p.logger.Errorf(e.ErrStorageNotConfigured, "cannot upload image %s", file.Name)
		return nil, e.Wrap(op, e.ErrStorageNotConfigured)
	}

	img, err := p.imagesInfra.UploadImage(ctx, NewUploadImageReq(folder, file))
	if err != nil {
		p.logger.Errorf(err, "failed to upload image %s", file.Name)
		return nil, e.Wrap(op, err)
	}

	return img, nil
}

// DeleteProductImage удаляет изображение по пути в хранилище.
func (p *ProductUseCase) DeleteProductImage(ctx context.Context, path string) error {
	const op = "ProductUseCase.DeleteProductImage"

	if strings.TrimSpace(path) == "" {
		return e.Wrap(op, e.ErrMissingFields)
	}

	if p.imagesInfra == nil {
		p.logger.Errorf(e.ErrStorageNotConfigured, "cannot delete image %s", path)
		return e.Wrap(op, e.ErrStorageNotConfigured)
	}

	if err := p.imagesInfra.DeleteImage(ctx, path); err != nil {
		p.logger.Errorf(err, "failed to delete image %s", path)
		return e.Wrap(op, err)
	}

	return nil
}

// validateProduct проверяет корректность входных данных запроса на добавление товара.
func validateProduct(req *CreateProductReq) error {
	if strings.TrimSpace(req.Name) == "" {
		return e.ErrProductNameRequired
	}

	if err := validatePrice(req.Price); err != nil {
		return err
	}

	if err := validateRating(req.Rating); err != nil {
		return err
	}

	if req.Reviews < 0 || (req.StockQuantity != nil && *req.StockQuantity < 0) {
		return e.ErrNegativeCount
	}

	return nil
}

func validateProductPatch(patch domain.ProductPatch) error {
	if patch.Empty() {
		return e.ErrNoChanges
	}

	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return e.ErrProductNameRequired
	}

	if patch.Price != nil {
		if err := validatePrice(*patch.Price); err != nil {
			return err
		}
	}

	if patch.Rating != nil {
		if err := validateRating(*patch.Rating); err != nil {
			return err
		}
	}

	if (patch.Reviews != nil && *patch.Reviews < 0) || (patch.StockQuantity != nil && *patch.StockQuantity < 0) {
		return e.ErrNegativeCount
	}

	return nil
}

func validatePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return e.ErrInvalidPrice
	}

	if price.Exponent() < -2 && !price.Equal(price.Round(2)) {
		return e.ErrPricePrecision
	}

	return nil
}

func validateRating(rating float64) error {
	if rating < 0 || rating > maxRating {
		return e.ErrInvalidRating
	}
	return nil
}

func productID(p domain.Product) domain.ID {
	return p.ID
}

func matchProduct(p domain.Product, f Filter) bool {
	switch f.Field {
	case FieldCategory:
		return p.Category == f.Value
	default:
		return false
	}
}
