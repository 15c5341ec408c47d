package order

import (
	"database/sql"

	"go.uber.org/zap"

	clientrepo "comanda/internal/client/repository"
	"comanda/internal/order/controller"
	orderrepo "comanda/internal/order/repository"
	"comanda/internal/order/usecase"
)

func NewModule(db *sql.DB, logger *zap.Logger) *controller.OrderController {
	orderRepo := orderrepo.NewMySQLOrderRepository(db)
	clientRepo := clientrepo.NewMySQLClientRepository(db)

	placeUC := usecase.NewPlaceOrderUseCase(orderRepo, clientRepo, logger)
	listUC := usecase.NewListOrdersUseCase(orderRepo, logger)
	advanceUC := usecase.NewAdvanceOrderUseCase(orderRepo, logger)

	return controller.NewOrderController(placeUC, listUC, advanceUC, logger)
}
