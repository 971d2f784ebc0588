package repository

import (
	"context"

	"github.com/TATR0/bot-service/internal/domain"
	"github.com/google/uuid"
)

// IRequestRepo заявки клиентов
type IRequestRepo interface {
	Create(ctx context.Context, request *domain.Request) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Request, error)
	// UpdateStatus перезаписывает статус без проверки перехода; domain.ErrRequestNotFound если заявки нет
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.RequestStatus) error
	// GetByServiceID заявки сервиса, новые первыми
	GetByServiceID(ctx context.Context, serviceID uuid.UUID, limit int) ([]*domain.Request, error)
}
