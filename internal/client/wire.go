package client

import (
	"database/sql"

	"go.uber.org/zap"

	"comanda/internal/client/controller"
	"comanda/internal/client/repository"
	"comanda/internal/client/usecase"
)

func NewModule(db *sql.DB, logger *zap.Logger) *controller.ClientController {
	repo := repository.NewMySQLClientRepository(db)
	registerUC := usecase.NewRegisterClientUseCase(repo, logger)
	listUC := usecase.NewListClientsUseCase(repo, logger)
	return controller.NewClientController(registerUC, listUC, logger)
}
