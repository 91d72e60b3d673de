package usecase

import (
	"context"
	"errors"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
)

// Resolver направляет операции над сущностью в удалённое хранилище,
// а при его отсутствии или сбое в резервный набор данных.
// Чтение сбоев не возвращает. Запись возможна только в удалённое хранилище.
type Resolver[T any, P any] struct {
	name     string
	remote   Store[T, P]
	fallback func() []T
	idOf     func(T) domain.ID
	match    func(T, Filter) bool
	logger   logger.Logger
}

// NewResolver создаёт резолвер. remote == nil означает, что хранилище не настроено.
// fallback обязан возвращать свежую копию резервных данных.
func NewResolver[T any, P any](
	name string,
	remote Store[T, P],
	fallback func() []T,
	idOf func(T) domain.ID,
	match func(T, Filter) bool,
	logger logger.Logger,
) *Resolver[T, P] {
	if fallback == nil {
		fallback = func() []T { return nil }
	}

	return &Resolver[T, P]{
		name:     name,
		remote:   remote,
		fallback: fallback,
		idOf:     idOf,
		match:    match,
		logger:   logger,
	}
}

// Configured сообщает, подключено ли удалённое хранилище.
func (r *Resolver[T, P]) Configured() bool {
	return r.remote != nil
}

// ListAll возвращает все сущности. При ошибке удалённого хранилища отдаются резервные данные.
func (r *Resolver[T, P]) ListAll(ctx context.Context) []T {
	if !r.Configured() {
		return r.local()
	}

	items, err := r.remote.FetchAll(ctx)
	if err != nil {
		r.logger.Warnf("failed to fetch %s, serving fallback data: %v", r.name, err)
		return r.local()
	}

	return nonNil(items)
}

// GetByID ищет сущность по идентификатору в числовой или строковой форме.
// Любая ошибка удалённого хранилища, включая «не найдено», приводит к поиску в резервных данных.
func (r *Resolver[T, P]) GetByID(ctx context.Context, rawID any) (T, bool) {
	var zero T

	id, err := domain.ParseID(rawID)
	if err != nil {
		r.logger.Debugf("%s lookup with invalid id %v", r.name, rawID)
		return zero, false
	}

	if r.Configured() {
		item, err := r.remote.FetchByID(ctx, id)
		if err == nil {
			return item, true
		}

		if errors.Is(err, e.ErrNotFound) {
			r.logger.Debugf("%s %d not found remotely, checking fallback data", r.name, id)
		} else {
			r.logger.Warnf("failed to fetch %s %d, checking fallback data: %v", r.name, id, err)
		}
	}

	for _, item := range r.local() {
		if r.idOf(item) == id {
			return item, true
		}
	}

	return zero, false
}

// GetRemote ищет сущность только в удалённом хранилище, без резервных данных.
// Нужен там, где запись ссылается на сущность по внешнему ключу.
func (r *Resolver[T, P]) GetRemote(ctx context.Context, id domain.ID) (T, error) {
	const op = "Resolver.GetRemote"
	var zero T

	if !r.Configured() {
		return zero, e.Wrap(op, e.ErrRemoteNotConfigured)
	}

	item, err := r.remote.FetchByID(ctx, id)
	if err != nil {
		if !errors.Is(err, e.ErrNotFound) {
			r.logger.Errorf(err, "failed to fetch %s %d", r.name, id)
		}
		return zero, e.Wrap(op, err)
	}

	return item, nil
}

// ListBy возвращает сущности, у которых поле filter.Field равно filter.Value.
// Порядок резервных данных сохраняется.
func (r *Resolver[T, P]) ListBy(ctx context.Context, filter Filter) []T {
	if r.Configured() {
		items, err := r.remote.FetchBy(ctx, filter)
		if err == nil {
			return nonNil(items)
		}
		r.logger.Warnf("failed to fetch %s by %s=%q, serving fallback data: %v", r.name, filter.Field, filter.Value, err)
	}

	res := make([]T, 0)
	for _, item := range r.local() {
		if r.match(item, filter) {
			res = append(res, item)
		}
	}

	return res
}

// Create сохраняет сущность в удалённом хранилище.
func (r *Resolver[T, P]) Create(ctx context.Context, entity T) (T, error) {
	const op = "Resolver.Create"
	var zero T

	if !r.Configured() {
		r.logger.Errorf(e.ErrRemoteNotConfigured, "cannot create %s", r.name)
		return zero, e.Wrap(op, e.ErrRemoteNotConfigured)
	}

	created, err := r.remote.Insert(ctx, entity)
	if err != nil {
		r.logger.Errorf(err, "failed to create %s", r.name)
		return zero, e.Wrap(op, err)
	}

	return created, nil
}

// Update частично обновляет сущность в удалённом хранилище.
func (r *Resolver[T, P]) Update(ctx context.Context, id domain.ID, patch P) (T, error) {
	const op = "Resolver.Update"
	var zero T

	if !r.Configured() {
		r.logger.Errorf(e.ErrRemoteNotConfigured, "cannot update %s %d", r.name, id)
		return zero, e.Wrap(op, e.ErrRemoteNotConfigured)
	}

	updated, err := r.remote.Update(ctx, id, patch)
	if err != nil {
		r.logger.Errorf(err, "failed to update %s %d", r.name, id)
		return zero, e.Wrap(op, err)
	}

	return updated, nil
}

// Delete удаляет сущность из удалённого хранилища.
func (r *Resolver[T, P]) Delete(ctx context.Context, id domain.ID) error {
	const op = "Resolver.Delete"

	if !r.Configured() {
		r.logger.Errorf(e.ErrRemoteNotConfigured, "cannot delete %s %d", r.name, id)
		return e.Wrap(op, e.ErrRemoteNotConfigured)
	}

	if err := r.remote.Delete(ctx, id); err != nil {
		r.logger.Errorf(err, "failed to delete %s %d", r.name, id)
		return e.Wrap(op, err)
	}

	return nil
}

func (r *Resolver[T, P]) local() []T {
	return nonNil(r.fallback())
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return make([]T, 0)
	}
	return items
}
