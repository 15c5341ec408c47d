package usecase

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"comanda/internal/domain"
	apperrors "comanda/internal/errors"
)

// Mock implementations

type mockClientRepository struct {
	InsertFunc  func(ctx context.Context, client domain.Client) (*domain.Client, error)
	FindAllFunc func(ctx context.Context) ([]domain.Client, error)
}

func (m *mockClientRepository) Insert(ctx context.Context, client domain.Client) (*domain.Client, error) {
	return m.InsertFunc(ctx, client)
}

func (m *mockClientRepository) FindAll(ctx context.Context) ([]domain.Client, error) {
	return m.FindAllFunc(ctx)
}

// Tests

func TestRegister_Success(t *testing.T) {
	ctx := context.Background()

	repo := &mockClientRepository{
		InsertFunc: func(ctx context.Context, client domain.Client) (*domain.Client, error) {
			client.ID = 1
			return &client, nil
		},
	}

	uc := NewRegisterClientUseCase(repo, zap.NewNop())

	client, err := uc.Register(ctx, "Ana", "ana@x.com", "555")

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if client.ID != 1 {
		t.Errorf("expected assigned id 1, got %d", client.ID)
	}
	if client.Email != "ana@x.com" {
		t.Errorf("expected email ana@x.com, got %s", client.Email)
	}
}

func TestRegister_MissingFields(t *testing.T) {
	ctx := context.Background()

	inserted := false
	repo := &mockClientRepository{
		InsertFunc: func(ctx context.Context, client domain.Client) (*domain.Client, error) {
			inserted = true
			return &client, nil
		},
	}

	uc := NewRegisterClientUseCase(repo, zap.NewNop())

	cases := []struct {
		name  string
		args  [3]string
		field string
	}{
		{"empty name", [3]string{"", "ana@x.com", "555"}, "name"},
		{"empty email", [3]string{"Ana", "", "555"}, "email"},
		{"empty phone", [3]string{"Ana", "ana@x.com", ""}, "phone"},
		{"whitespace name", [3]string{"   ", "ana@x.com", "555"}, "name"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Register(ctx, tc.args[0], tc.args[1], tc.args[2])

			ve, ok := apperrors.IsValidationError(err)
			if !ok {
				t.Fatalf("expected ValidationError, got %T", err)
			}
			if len(ve.Details) == 0 || ve.Details[0].Field != tc.field {
				t.Errorf("expected detail for field %s, got %+v", tc.field, ve.Details)
			}
		})
	}

	if inserted {
		t.Errorf("expected no insert on validation failure")
	}
}

func TestRegister_AllFieldsMissing(t *testing.T) {
	ctx := context.Background()

	repo := &mockClientRepository{
		InsertFunc: func(ctx context.Context, client domain.Client) (*domain.Client, error) {
			t.Fatal("insert must not be called")
			return nil, nil
		},
	}

	uc := NewRegisterClientUseCase(repo, zap.NewNop())

	_, err := uc.Register(ctx, "", "", "")

	ve, ok := apperrors.IsValidationError(err)
	if !ok {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if len(ve.Details) != 3 {
		t.Errorf("expected 3 details, got %d", len(ve.Details))
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	ctx := context.Background()

	repo := &mockClientRepository{
		InsertFunc: func(ctx context.Context, client domain.Client) (*domain.Client, error) {
			return nil, apperrors.NewConflictError("client with email ana@x.com already exists")
		},
	}

	uc := NewRegisterClientUseCase(repo, zap.NewNop())

	_, err := uc.Register(ctx, "Ana", "ana@x.com", "555")

	if _, ok := apperrors.IsConflictError(err); !ok {
		t.Errorf("expected ConflictError, got %T", err)
	}
}

func TestRegister_StoreFailure(t *testing.T) {
	ctx := context.Background()

	repo := &mockClientRepository{
		InsertFunc: func(ctx context.Context, client domain.Client) (*domain.Client, error) {
			return nil, errors.New("connection refused")
		},
	}

	uc := NewRegisterClientUseCase(repo, zap.NewNop())

	_, err := uc.Register(ctx, "Ana", "ana@x.com", "555")

	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if _, ok := apperrors.IsConflictError(err); ok {
		t.Errorf("store failure must not surface as ConflictError")
	}
	if _, ok := apperrors.IsValidationError(err); ok {
		t.Errorf("store failure must not surface as ValidationError")
	}
}

func TestList_ReturnsRepositoryOrder(t *testing.T) {
	ctx := context.Background()

	repo := &mockClientRepository{
		FindAllFunc: func(ctx context.Context) ([]domain.Client, error) {
			return []domain.Client{
				{ID: 3, Name: "Carla", Email: "carla@x.com", Phone: "557"},
				{ID: 2, Name: "Bruno", Email: "bruno@x.com", Phone: "556"},
				{ID: 1, Name: "Ana", Email: "ana@x.com", Phone: "555"},
			}, nil
		},
	}

	uc := NewListClientsUseCase(repo, zap.NewNop())

	clients, err := uc.List(ctx)

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(clients) != 3 {
		t.Fatalf("expected 3 clients, got %d", len(clients))
	}
	if clients[0].ID != 3 || clients[2].ID != 1 {
		t.Errorf("expected newest-first order, got %+v", clients)
	}
}

func TestList_Empty(t *testing.T) {
	ctx := context.Background()

	repo := &mockClientRepository{
		FindAllFunc: func(ctx context.Context) ([]domain.Client, error) {
			return []domain.Client{}, nil
		},
	}

	uc := NewListClientsUseCase(repo, zap.NewNop())

	clients, err := uc.List(ctx)

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if clients == nil || len(clients) != 0 {
		t.Errorf("expected empty non-nil slice, got %v", clients)
	}
}
