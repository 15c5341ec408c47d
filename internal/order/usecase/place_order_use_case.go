package usecase

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"comanda/internal/domain"
	apperrors "comanda/internal/errors"
)

type OrderRepository interface {
	Insert(ctx context.Context, order domain.Order) (*domain.Order, error)
	FindByID(ctx context.Context, id uint) (*domain.Order, error)
	FindByClientID(ctx context.Context, clientID uint) ([]domain.Order, error)
	UpdateStatusFrom(ctx context.Context, id uint, expected, next domain.Status) (bool, error)
}

type ClientRepository interface {
	ExistsByID(ctx context.Context, id uint) (bool, error)
}

type PlaceOrderUseCase struct {
	orderRepo  OrderRepository
	clientRepo ClientRepository
	logger     *zap.Logger
}

func NewPlaceOrderUseCase(orderRepo OrderRepository, clientRepo ClientRepository, logger *zap.Logger) *PlaceOrderUseCase {
	return &PlaceOrderUseCase{
		orderRepo:  orderRepo,
		clientRepo: clientRepo,
		logger:     logger,
	}
}

// Place creates a pending order for an existing client. The existence check
// and the insert are not one transaction; the foreign key inside the
// repository covers the narrow window where the client check races another
// request, so no order ever references a client that never existed.
func (uc *PlaceOrderUseCase) Place(ctx context.Context, clientID uint, dishName string, notes *string) (*domain.Order, error) {
	if err := validatePlacement(clientID, dishName); err != nil {
		return nil, err
	}

	exists, err := uc.clientRepo.ExistsByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("client with id %d not found", clientID))
	}

	created, err := uc.orderRepo.Insert(ctx, domain.Order{
		ClientID: clientID,
		DishName: dishName,
		Notes:    notes,
		Status:   domain.StatusPending,
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("order placed",
		zap.Uint("orderId", created.ID),
		zap.Uint("clientId", created.ClientID),
		zap.String("dishName", created.DishName),
	)
	return created, nil
}

func validatePlacement(clientID uint, dishName string) error {
	var details []apperrors.ValidationDetail

	if clientID == 0 {
		details = append(details, apperrors.ValidationDetail{Field: "client_id", Message: "client_id is required"})
	}
	if strings.TrimSpace(dishName) == "" {
		details = append(details, apperrors.ValidationDetail{Field: "dish_name", Message: "dish_name is required"})
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("client_id and dish_name are required", details...)
	}

	return nil
}
