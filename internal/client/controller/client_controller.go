package controller

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"comanda/internal/domain"
	"comanda/internal/dto"
	apperrors "comanda/internal/errors"
)

type RegisterClientUseCase interface {
	Register(ctx context.Context, name, email, phone string) (*domain.Client, error)
}

type ListClientsUseCase interface {
	List(ctx context.Context) ([]domain.Client, error)
}

type ClientController struct {
	registerUC RegisterClientUseCase
	listUC     ListClientsUseCase
	logger     *zap.Logger
}

func NewClientController(registerUC RegisterClientUseCase, listUC ListClientsUseCase, logger *zap.Logger) *ClientController {
	return &ClientController{
		registerUC: registerUC,
		listUC:     listUC,
		logger:     logger,
	}
}

func (c *ClientController) HandleCreateClient(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.CreateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeError(w, http.StatusBadRequest, "request body must be valid JSON")
		return
	}

	client, err := c.registerUC.Register(r.Context(), req.Name, req.Email, req.Phone)
	if err != nil {
		c.handleError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusCreated, toClientResponse(client))
}

func (c *ClientController) HandleListClients(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	clients, err := c.listUC.List(r.Context())
	if err != nil {
		c.handleError(w, err, logger)
		return
	}

	responses := make([]dto.ClientResponse, len(clients))
	for i, client := range clients {
		responses[i] = toClientResponse(&client)
	}

	c.writeJSON(w, http.StatusOK, responses)
}

func toClientResponse(client *domain.Client) dto.ClientResponse {
	return dto.ClientResponse{
		ID:    client.ID,
		Name:  client.Name,
		Email: client.Email,
		Phone: client.Phone,
	}
}

func (c *ClientController) handleError(w http.ResponseWriter, err error, logger *zap.Logger) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		c.writeError(w, http.StatusBadRequest, ve.Message)
		return
	}
	if ce, ok := apperrors.IsConflictError(err); ok {
		c.writeError(w, http.StatusConflict, ce.Message)
		return
	}
	if nfe, ok := apperrors.IsNotFoundError(err); ok {
		c.writeError(w, http.StatusNotFound, nfe.Message)
		return
	}

	logger.Error("unexpected error", zap.Error(err))
	c.writeError(w, http.StatusInternalServerError, "an unexpected error occurred")
}

func (c *ClientController) writeError(w http.ResponseWriter, status int, message string) {
	c.writeJSON(w, status, dto.ErrorResponse{Error: message})
}

func (c *ClientController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
