package usecase

import (
	"context"

	"github.com/DRSN-tech/storefront/pkg/logger"
)

// StatusUseCase проверяет подключение к удалённому хранилищу.
type StatusUseCase struct {
	productRepo ProductRepository
	logger      logger.Logger
}

func NewStatusUC(productRepo ProductRepository, logger logger.Logger) *StatusUseCase {
	return &StatusUseCase{productRepo: productRepo, logger: logger}
}

// Check сообщает, настроено ли хранилище и отвечает ли оно на запрос количества товаров.
func (s *StatusUseCase) Check(ctx context.Context) StoreStatus {
	if s.productRepo == nil {
		return StoreStatus{Configured: false}
	}

	count, err := s.productRepo.Count(ctx)
	if err != nil {
		s.logger.Warnf("store connection check failed: %v", err)
		return StoreStatus{Configured: true, Error: err.Error()}
	}

	return StoreStatus{Configured: true, Reachable: true, ProductCount: count}
}
