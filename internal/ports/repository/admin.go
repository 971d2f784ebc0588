package repository

import (
	"context"

	"github.com/TATR0/bot-service/internal/domain"
	"github.com/TATR0/bot-service/internal/ports/persistence"
	"github.com/google/uuid"
)

// IAdminRepo привязки администраторов к сервисам
type IAdminRepo interface {
	CreateTx(ctx context.Context, tx persistence.Transaction, binding *domain.AdminBinding) error
	GetByServiceID(ctx context.Context, serviceID uuid.UUID) ([]*domain.AdminBinding, error)
}
