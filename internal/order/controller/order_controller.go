package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"comanda/internal/domain"
	"comanda/internal/dto"
	apperrors "comanda/internal/errors"
)

type PlaceOrderUseCase interface {
	Place(ctx context.Context, clientID uint, dishName string, notes *string) (*domain.Order, error)
}

type ListOrdersUseCase interface {
	ListForClient(ctx context.Context, clientID uint) ([]domain.Order, error)
}

type AdvanceOrderUseCase interface {
	Advance(ctx context.Context, orderID uint) (*domain.Order, error)
}

type OrderController struct {
	placeUC   PlaceOrderUseCase
	listUC    ListOrdersUseCase
	advanceUC AdvanceOrderUseCase
	logger    *zap.Logger
}

func NewOrderController(placeUC PlaceOrderUseCase, listUC ListOrdersUseCase, advanceUC AdvanceOrderUseCase, logger *zap.Logger) *OrderController {
	return &OrderController{
		placeUC:   placeUC,
		listUC:    listUC,
		advanceUC: advanceUC,
		logger:    logger,
	}
}

func (c *OrderController) HandleCreateOrder(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeError(w, http.StatusBadRequest, "request body must be valid JSON")
		return
	}

	order, err := c.placeUC.Place(r.Context(), req.ClientID, req.DishName, req.Notes)
	if err != nil {
		c.handleError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusCreated, toOrderResponse(order))
}

func (c *OrderController) HandleListOrders(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	clientID, err := parseIDParam(r, "clientId")
	if err != nil {
		logger.Warn("invalid clientId in path", zap.Error(err))
		c.writeError(w, http.StatusBadRequest, "clientId must be a positive integer")
		return
	}

	orders, err := c.listUC.ListForClient(r.Context(), clientID)
	if err != nil {
		c.handleError(w, err, logger)
		return
	}

	responses := make([]dto.OrderResponse, len(orders))
	for i, order := range orders {
		responses[i] = toOrderResponse(&order)
	}

	c.writeJSON(w, http.StatusOK, responses)
}

func (c *OrderController) HandleAdvanceStatus(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	orderID, err := parseIDParam(r, "id")
	if err != nil {
		logger.Warn("invalid order id in path", zap.Error(err))
		c.writeError(w, http.StatusBadRequest, "id must be a positive integer")
		return
	}

	order, err := c.advanceUC.Advance(r.Context(), orderID)
	if err != nil {
		c.handleError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, toOrderResponse(order))
}

func parseIDParam(r *http.Request, name string) (uint, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func toOrderResponse(order *domain.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID:        order.ID,
		ClientID:  order.ClientID,
		DishName:  order.DishName,
		Notes:     order.Notes,
		Status:    string(order.Status),
		CreatedAt: order.CreatedAt,
	}
}

func (c *OrderController) handleError(w http.ResponseWriter, err error, logger *zap.Logger) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		c.writeError(w, http.StatusBadRequest, ve.Message)
		return
	}
	if nfe, ok := apperrors.IsNotFoundError(err); ok {
		c.writeError(w, http.StatusNotFound, nfe.Message)
		return
	}
	if ce, ok := apperrors.IsConflictError(err); ok {
		c.writeError(w, http.StatusConflict, ce.Message)
		return
	}

	logger.Error("unexpected error", zap.Error(err))
	c.writeError(w, http.StatusInternalServerError, "an unexpected error occurred")
}

func (c *OrderController) writeError(w http.ResponseWriter, status int, message string) {
	c.writeJSON(w, status, dto.ErrorResponse{Error: message})
}

func (c *OrderController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
