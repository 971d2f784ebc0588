package adminRepo

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/TATR0/bot-service/internal/domain"
	"github.com/TATR0/bot-service/internal/ports/persistence"
	ports "github.com/TATR0/bot-service/internal/ports/repository"
	"github.com/google/uuid"
)

type adminColumns struct {
	TableName  string
	ID         string
	ServiceID  string
	TelegramID string
	CreatedAt  string
}

type Repository struct {
	db      persistence.Persistence
	Log     *slog.Logger
	columns adminColumns
}

// New создаёт репозиторий привязок администраторов
func New(db persistence.Persistence, log *slog.Logger) ports.IAdminRepo {
	return &Repository{
		db:  db,
		Log: log,
		columns: adminColumns{
			TableName:  "admins",
			ID:         "id",
			ServiceID:  "service_id",
			TelegramID: "admin_tg_id",
			CreatedAt:  "created_at",
		},
	}
}

func (r *Repository) allColumns() string {
	return fmt.Sprintf("%s, %s, %s, %s",
		r.columns.ID,
		r.columns.ServiceID,
		r.columns.TelegramID,
		r.columns.CreatedAt)
}

// CreateTx добавляет администратора в транзакции
func (r *Repository) CreateTx(ctx context.Context, tx persistence.Transaction, binding *domain.AdminBinding) error {
	return r.create(ctx, tx, binding)
}

func (r *Repository) create(ctx context.Context, q persistence.Querier, binding *domain.AdminBinding) error {
	if binding.ID == uuid.Nil {
		binding.ID = uuid.New()
	}
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, $3)`,
		r.columns.TableName,
		r.columns.ID,
		r.columns.ServiceID,
		r.columns.TelegramID)
	if err := q.Exec(ctx, query, binding.ID, binding.ServiceID, binding.AdminID); err != nil {
		r.Log.Error("failed to create admin binding",
			"error", err,
			"service_id", binding.ServiceID,
			"admin_tg_id", binding.AdminID)
		return fmt.Errorf("failed to create admin binding: %w", err)
	}
	r.Log.Debug("admin binding created",
		"id", binding.ID,
		"service_id", binding.ServiceID,
		"admin_tg_id", binding.AdminID)
	return nil
}

// GetByServiceID все привязки сервиса, включая дубли
func (r *Repository) GetByServiceID(ctx context.Context, serviceID uuid.UUID) ([]*domain.AdminBinding, error) {
	bindings := make([]*domain.AdminBinding, 0)
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s`,
		r.allColumns(),
		r.columns.TableName,
		r.columns.ServiceID,
		r.columns.CreatedAt)
	if err := r.db.Select(ctx, &bindings, query, serviceID); err != nil {
		r.Log.Error("failed to get admins by service",
			"error", err,
			"service_id", serviceID)
		return nil, fmt.Errorf("failed to get admins by service: %w", err)
	}
	r.Log.Debug("admins retrieved by service", "service_id", serviceID, "count", len(bindings))
	return bindings, nil
}
