package repository

import (
	"context"

	"github.com/TATR0/bot-service/internal/domain"
	"github.com/TATR0/bot-service/internal/ports/persistence"
)

// IServiceRepo автосервисы
type IServiceRepo interface {
	GetByOwnerID(ctx context.Context, ownerID int64) ([]*domain.Service, error)
	// GetByCity поиск без учёта регистра, сортировка по названию
	GetByCity(ctx context.Context, city string) ([]*domain.Service, error)
	ListCities(ctx context.Context) ([]string, error)
	// GetByAdminID сервисы, к которым привязан администратор
	GetByAdminID(ctx context.Context, adminID int64) ([]*domain.Service, error)

	WithTransaction(ctx context.Context, fn func(context.Context, persistence.Transaction) error) error
	CreateTx(ctx context.Context, tx persistence.Transaction, service *domain.Service) error
}
