package usecase

import (
	"context"
	"errors"
	"sync"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/e"
)

var errRemoteDown = errors.New("connection refused")

// fakeStore — удалённое хранилище в памяти; fail включает отказ всех вызовов.
type fakeStore[T any, P any] struct {
	mu      sync.Mutex
	items   []T
	idOf    func(T) domain.ID
	setID   func(*T, domain.ID)
	apply   func(*T, P)
	match   func(T, Filter) bool
	fail    bool
	nextID  domain.ID
	calls   int
	lastCtx context.Context
}

func (f *fakeStore[T, P]) hit(ctx context.Context) error {
	f.calls++
	f.lastCtx = ctx
	if f.fail {
		return errRemoteDown
	}
	return nil
}

func (f *fakeStore[T, P]) FetchAll(ctx context.Context) ([]T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.hit(ctx); err != nil {
		return nil, err
	}
	return append([]T(nil), f.items...), nil
}

func (f *fakeStore[T, P]) FetchByID(ctx context.Context, id domain.ID) (T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var zero T
	if err := f.hit(ctx); err != nil {
		return zero, err
	}
	for _, it := range f.items {
		if f.idOf(it) == id {
			return it, nil
		}
	}
	return zero, e.ErrNotFound
}

func (f *fakeStore[T, P]) FetchBy(ctx context.Context, filter Filter) ([]T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.hit(ctx); err != nil {
		return nil, err
	}
	var res []T
	for _, it := range f.items {
		if f.match(it, filter) {
			res = append(res, it)
		}
	}
	return res, nil
}

func (f *fakeStore[T, P]) Insert(ctx context.Context, entity T) (T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var zero T
	if err := f.hit(ctx); err != nil {
		return zero, err
	}
	f.nextID++
	f.setID(&entity, 100+f.nextID)
	f.items = append([]T{entity}, f.items...)
	return entity, nil
}

func (f *fakeStore[T, P]) Update(ctx context.Context, id domain.ID, patch P) (T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var zero T
	if err := f.hit(ctx); err != nil {
		return zero, err
	}
	for i := range f.items {
		if f.idOf(f.items[i]) == id {
			f.apply(&f.items[i], patch)
			return f.items[i], nil
		}
	}
	return zero, e.ErrNotFound
}

func (f *fakeStore[T, P]) Delete(ctx context.Context, id domain.ID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.hit(ctx); err != nil {
		return err
	}
	for i := range f.items {
		if f.idOf(f.items[i]) == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return e.ErrNotFound
}

type fakeProductRepo struct {
	*fakeStore[domain.Product, domain.ProductPatch]
}

func (f fakeProductRepo) Count(ctx context.Context) (int64, error) {
	items, err := f.FetchAll(ctx)
	return int64(len(items)), err
}

func newFakeProductRepo(items ...domain.Product) fakeProductRepo {
	return fakeProductRepo{&fakeStore[domain.Product, domain.ProductPatch]{
		items: items,
		idOf:  productID,
		setID: func(p *domain.Product, id domain.ID) { p.ID = id },
		apply: func(p *domain.Product, patch domain.ProductPatch) {
			if patch.Name != nil {
				p.Name = *patch.Name
			}
			if patch.Price != nil {
				p.Price = *patch.Price
			}
			if patch.Image != nil {
				p.Image = *patch.Image
			}
		},
		match: matchProduct,
	}}
}

func newFakeCategoryRepo(items ...domain.Category) *fakeStore[domain.Category, domain.CategoryPatch] {
	return &fakeStore[domain.Category, domain.CategoryPatch]{
		items: items,
		idOf:  categoryID,
		setID: func(c *domain.Category, id domain.ID) { c.ID = id },
		apply: func(c *domain.Category, patch domain.CategoryPatch) {
			if patch.Name != nil {
				c.Name = *patch.Name
			}
			if patch.Slug != nil {
				c.Slug = *patch.Slug
			}
		},
		match: matchCategory,
	}
}

func newFakeOrderRepo(items ...domain.Order) *fakeStore[domain.Order, domain.OrderPatch] {
	return &fakeStore[domain.Order, domain.OrderPatch]{
		items: items,
		idOf:  orderID,
		setID: func(o *domain.Order, id domain.ID) { o.ID = id },
		apply: func(o *domain.Order, patch domain.OrderPatch) {
			if patch.Status != nil {
				o.Status = *patch.Status
			}
		},
		match: matchOrder,
	}
}

type txKeyForTest struct{}

// fakeTx помечает контекст и запоминает исход транзакции.
type fakeTx struct {
	committed  int
	rolledBack int
	fail       error
}

func (f *fakeTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if f.fail != nil {
		return f.fail
	}
	if err := fn(context.WithValue(ctx, txKeyForTest{}, true)); err != nil {
		f.rolledBack++
		return err
	}
	f.committed++
	return nil
}

// fakeImages — хранилище изображений в памяти.
type fakeImages struct {
	mu       sync.Mutex
	uploads  []UploadImageReq
	deleted  []string
	cleaned  []string
	failNext bool
}

func (f *fakeImages) UploadImage(_ context.Context, req *UploadImageReq) (*domain.StoredImage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failNext {
		f.failNext = false
		return nil, errRemoteDown
	}
	f.uploads = append(f.uploads, *req)
	path := "products/" + req.File.Name
	return &domain.StoredImage{URL: "http://minio/product-images/" + path, Path: path}, nil
}

func (f *fakeImages) DeleteImage(_ context.Context, path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, path)
	return nil
}

func (f *fakeImages) CleanupImages(keys []string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cleaned = append(f.cleaned, keys...)
}

func (f *fakeImages) KeyFromURL(url string) (string, bool) {
	const prefix = "http://minio/product-images/"
	if len(url) > len(prefix) && url[:len(prefix)] == prefix {
		return url[len(prefix):], true
	}
	return "", false
}
