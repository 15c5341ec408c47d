package usecase

import (
	"context"

	"go.uber.org/zap"

	"comanda/internal/domain"
)

type ListOrdersUseCase struct {
	orderRepo OrderRepository
	logger    *zap.Logger
}

func NewListOrdersUseCase(orderRepo OrderRepository, logger *zap.Logger) *ListOrdersUseCase {
	return &ListOrdersUseCase{
		orderRepo: orderRepo,
		logger:    logger,
	}
}

// ListForClient returns the client's orders newest first. An unknown client
// yields an empty list rather than an error.
func (uc *ListOrdersUseCase) ListForClient(ctx context.Context, clientID uint) ([]domain.Order, error) {
	return uc.orderRepo.FindByClientID(ctx, clientID)
}
