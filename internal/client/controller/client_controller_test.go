package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"comanda/internal/domain"
	"comanda/internal/dto"
	apperrors "comanda/internal/errors"
)

// Mock implementations

type mockRegisterUseCase struct {
	RegisterFunc func(ctx context.Context, name, email, phone string) (*domain.Client, error)
}

func (m *mockRegisterUseCase) Register(ctx context.Context, name, email, phone string) (*domain.Client, error) {
	return m.RegisterFunc(ctx, name, email, phone)
}

type mockListUseCase struct {
	ListFunc func(ctx context.Context) ([]domain.Client, error)
}

func (m *mockListUseCase) List(ctx context.Context) ([]domain.Client, error) {
	return m.ListFunc(ctx)
}

// Tests

func TestHandleCreateClient_Created(t *testing.T) {
	registerUC := &mockRegisterUseCase{
		RegisterFunc: func(ctx context.Context, name, email, phone string) (*domain.Client, error) {
			return &domain.Client{ID: 1, Name: name, Email: email, Phone: phone}, nil
		},
	}
	ctrl := NewClientController(registerUC, &mockListUseCase{}, zap.NewNop())

	body := `{"name":"Ana","email":"ana@x.com","phone":"555"}`
	req := httptest.NewRequest(http.MethodPost, "/clients", strings.NewReader(body))
	rec := httptest.NewRecorder()

	ctrl.HandleCreateClient(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp dto.ClientResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, uint(1), resp.ID)
	assert.Equal(t, "Ana", resp.Name)
	assert.Equal(t, "ana@x.com", resp.Email)
	assert.Equal(t, "555", resp.Phone)
}

func TestHandleCreateClient_InvalidJSON(t *testing.T) {
	ctrl := NewClientController(&mockRegisterUseCase{}, &mockListUseCase{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/clients", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	ctrl.HandleCreateClient(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.NotEmpty(t, resp.Error)
}

func TestHandleCreateClient_MissingFields(t *testing.T) {
	registerUC := &mockRegisterUseCase{
		RegisterFunc: func(ctx context.Context, name, email, phone string) (*domain.Client, error) {
			return nil, apperrors.NewValidationError("name, email and phone are required")
		},
	}
	ctrl := NewClientController(registerUC, &mockListUseCase{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/clients", strings.NewReader(`{"name":"Ana"}`))
	rec := httptest.NewRecorder()

	ctrl.HandleCreateClient(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "name, email and phone are required", resp.Error)
}

func TestHandleCreateClient_DuplicateEmail(t *testing.T) {
	registerUC := &mockRegisterUseCase{
		RegisterFunc: func(ctx context.Context, name, email, phone string) (*domain.Client, error) {
			return nil, apperrors.NewConflictError("client with email ana@x.com already exists")
		},
	}
	ctrl := NewClientController(registerUC, &mockListUseCase{}, zap.NewNop())

	body := `{"name":"Ana","email":"ana@x.com","phone":"555"}`
	req := httptest.NewRequest(http.MethodPost, "/clients", strings.NewReader(body))
	rec := httptest.NewRecorder()

	ctrl.HandleCreateClient(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandleCreateClient_StoreFailure(t *testing.T) {
	registerUC := &mockRegisterUseCase{
		RegisterFunc: func(ctx context.Context, name, email, phone string) (*domain.Client, error) {
			return nil, apperrors.NewInternalError("inserting client", assert.AnError)
		},
	}
	ctrl := NewClientController(registerUC, &mockListUseCase{}, zap.NewNop())

	body := `{"name":"Ana","email":"ana@x.com","phone":"555"}`
	req := httptest.NewRequest(http.MethodPost, "/clients", strings.NewReader(body))
	rec := httptest.NewRecorder()

	ctrl.HandleCreateClient(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	// Internal detail must not leak to the caller.
	var resp dto.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "an unexpected error occurred", resp.Error)
}

func TestHandleListClients_OK(t *testing.T) {
	listUC := &mockListUseCase{
		ListFunc: func(ctx context.Context) ([]domain.Client, error) {
			return []domain.Client{
				{ID: 2, Name: "Bruno", Email: "bruno@x.com", Phone: "556"},
				{ID: 1, Name: "Ana", Email: "ana@x.com", Phone: "555"},
			}, nil
		},
	}
	ctrl := NewClientController(&mockRegisterUseCase{}, listUC, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/clients", nil)
	rec := httptest.NewRecorder()

	ctrl.HandleListClients(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp []dto.ClientResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp, 2)
	assert.Equal(t, uint(2), resp[0].ID)
	assert.Equal(t, uint(1), resp[1].ID)
}

func TestHandleListClients_EmptyIsJSONArray(t *testing.T) {
	listUC := &mockListUseCase{
		ListFunc: func(ctx context.Context) ([]domain.Client, error) {
			return []domain.Client{}, nil
		},
	}
	ctrl := NewClientController(&mockRegisterUseCase{}, listUC, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/clients", nil)
	rec := httptest.NewRecorder()

	ctrl.HandleListClients(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}
