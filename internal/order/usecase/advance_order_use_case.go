package usecase

import (
	"context"

	"go.uber.org/zap"

	"comanda/internal/domain"
)

type AdvanceOrderUseCase struct {
	orderRepo OrderRepository
	logger    *zap.Logger
}

func NewAdvanceOrderUseCase(orderRepo OrderRepository, logger *zap.Logger) *AdvanceOrderUseCase {
	return &AdvanceOrderUseCase{
		orderRepo: orderRepo,
		logger:    logger,
	}
}

// Advance moves the order one step along pending -> in_progress -> done.
// Advancing a done order is a no-op that returns the order unchanged.
//
// The transition is a compare-and-set against the persisted status: the
// write only lands when the status is still the one just read. A failed set
// means a concurrent call committed first, so the loop re-reads and derives
// the next transition from the newer status. The loop terminates because the
// status only moves forward and done absorbs.
func (uc *AdvanceOrderUseCase) Advance(ctx context.Context, orderID uint) (*domain.Order, error) {
	for {
		order, err := uc.orderRepo.FindByID(ctx, orderID)
		if err != nil {
			return nil, err
		}

		if order.Status.IsTerminal() {
			return order, nil
		}

		next := order.Status.Next()
		applied, err := uc.orderRepo.UpdateStatusFrom(ctx, orderID, order.Status, next)
		if err != nil {
			return nil, err
		}

		if applied {
			uc.logger.Info("order advanced",
				zap.Uint("orderId", orderID),
				zap.String("from", string(order.Status)),
				zap.String("to", string(next)),
			)
			order.Status = next
			return order, nil
		}

		uc.logger.Debug("concurrent status change detected, retrying", zap.Uint("orderId", orderID))
	}
}
