package usecase

import (
	"context"

	"go.uber.org/zap"

	"comanda/internal/domain"
)

type ListClientsUseCase struct {
	clientRepo ClientRepository
	logger     *zap.Logger
}

func NewListClientsUseCase(clientRepo ClientRepository, logger *zap.Logger) *ListClientsUseCase {
	return &ListClientsUseCase{
		clientRepo: clientRepo,
		logger:     logger,
	}
}

// List returns every registered client, newest first.
func (uc *ListClientsUseCase) List(ctx context.Context) ([]domain.Client, error) {
	return uc.clientRepo.FindAll(ctx)
}
