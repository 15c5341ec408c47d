package usecase

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"comanda/internal/domain"
	apperrors "comanda/internal/errors"
)

type ClientRepository interface {
	Insert(ctx context.Context, client domain.Client) (*domain.Client, error)
	FindAll(ctx context.Context) ([]domain.Client, error)
}

type RegisterClientUseCase struct {
	clientRepo ClientRepository
	logger     *zap.Logger
}

func NewRegisterClientUseCase(clientRepo ClientRepository, logger *zap.Logger) *RegisterClientUseCase {
	return &RegisterClientUseCase{
		clientRepo: clientRepo,
		logger:     logger,
	}
}

// Register validates the registration fields and persists the client. There
// is deliberately no prior SELECT on the email: the store's unique index
// decides uniqueness, so a duplicate surfaces as a ConflictError even when
// two registrations race on the same email.
func (uc *RegisterClientUseCase) Register(ctx context.Context, name, email, phone string) (*domain.Client, error) {
	if err := validateRegistration(name, email, phone); err != nil {
		return nil, err
	}

	created, err := uc.clientRepo.Insert(ctx, domain.Client{
		Name:  name,
		Email: email,
		Phone: phone,
	})
	if err != nil {
		if _, ok := apperrors.IsConflictError(err); ok {
			uc.logger.Warn("duplicate client email", zap.String("email", email))
		}
		return nil, err
	}

	uc.logger.Info("client registered", zap.Uint("clientId", created.ID), zap.String("email", created.Email))
	return created, nil
}

func validateRegistration(name, email, phone string) error {
	var details []apperrors.ValidationDetail

	if strings.TrimSpace(name) == "" {
		details = append(details, apperrors.ValidationDetail{Field: "name", Message: "name is required"})
	}
	if strings.TrimSpace(email) == "" {
		details = append(details, apperrors.ValidationDetail{Field: "email", Message: "email is required"})
	}
	if strings.TrimSpace(phone) == "" {
		details = append(details, apperrors.ValidationDetail{Field: "phone", Message: "phone is required"})
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("name, email and phone are required", details...)
	}

	return nil
}
