package requestRepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/TATR0/bot-service/internal/domain"
	"github.com/TATR0/bot-service/internal/ports/persistence"
	ports "github.com/TATR0/bot-service/internal/ports/repository"
	"github.com/google/uuid"
)

type requestColumns struct {
	TableName   string
	ID          string
	ServiceID   string
	ClientName  string
	Phone       string
	Brand       string
	Model       string
	Plate       string
	ServiceType string
	Urgency     string
	Comment     string
	ClientID    string
	Status      string
	CreatedAt   string
}

type Repository struct {
	db      persistence.Persistence
	Log     *slog.Logger
	columns requestColumns
}

// New создаёт новый репозиторий для работы с заявками
func New(db persistence.Persistence, log *slog.Logger) ports.IRequestRepo {
	cols := requestColumns{
		TableName:   "requests",
		ID:          "id",
		ServiceID:   "service_id",
		ClientName:  "client_name",
		Phone:       "phone",
		Brand:       "brand",
		Model:       "model",
		Plate:       "plate",
		ServiceType: "service_type",
		Urgency:     "urgency",
		Comment:     "comment",
		ClientID:    "client_tg_id",
		Status:      "status",
		CreatedAt:   "created_at",
	}
	return &Repository{
		db:      db,
		Log:     log,
		columns: cols,
	}
}

// insertColumns все колонки кроме created_at, его выставляет БД
func (r *Repository) insertColumns() string {
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s",
		r.columns.ID,
		r.columns.ServiceID,
		r.columns.ClientName,
		r.columns.Phone,
		r.columns.Brand,
		r.columns.Model,
		r.columns.Plate,
		r.columns.ServiceType,
		r.columns.Urgency,
		r.columns.Comment,
		r.columns.ClientID,
		r.columns.Status)
}

func (r *Repository) allColumns() string {
	return r.insertColumns() + ", " + r.columns.CreatedAt
}

// Create сохраняет заявку со статусом new и заполняет CreatedAt из БД
func (r *Repository) Create(ctx context.Context, request *domain.Request) error {
	if request.ID == uuid.Nil {
		request.ID = uuid.New()
	}
	request.Status = domain.RequestStatusNew

	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12) RETURNING %s`,
		r.columns.TableName,
		r.insertColumns(),
		r.columns.CreatedAt)
	err := r.db.Get(ctx, &request.CreatedAt, query,
		request.ID,
		request.ServiceID,
		request.ClientName,
		request.Phone,
		request.Brand,
		request.Model,
		request.Plate,
		request.ServiceType,
		request.Urgency,
		request.Comment,
		request.ClientID,
		request.Status)
	if err != nil {
		r.Log.Error("failed to create request",
			"error", err,
			"request_id", request.ID,
			"client_tg_id", request.ClientID)
		return fmt.Errorf("failed to create request: %w", err)
	}
	r.Log.Debug("request created successfully",
		"request_id", request.ID,
		"client_tg_id", request.ClientID)
	return nil
}

// GetByID получает заявку по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Request, error) {
	var request domain.Request
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		r.allColumns(),
		r.columns.TableName,
		r.columns.ID)
	err := r.db.Get(ctx, &request, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.Log.Warn("request not found", "request_id", id)
			return nil, fmt.Errorf("%w: %s", domain.ErrRequestNotFound, id)
		}
		r.Log.Error("failed to get request by id",
			"error", err,
			"request_id", id)
		return nil, fmt.Errorf("failed to get request by id: %w", err)
	}
	r.Log.Debug("request retrieved successfully", "request_id", id)
	return &request, nil
}

// UpdateStatus перезаписывает статус заявки
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.RequestStatus) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $1 WHERE %s = $2`,
		r.columns.TableName,
		r.columns.Status,
		r.columns.ID)
	affected, err := r.db.ExecWithResult(ctx, query, status, id)
	if err != nil {
		r.Log.Error("failed to update request status",
			"error", err,
			"request_id", id,
			"status", status)
		return fmt.Errorf("failed to update request status: %w", err)
	}
	if affected == 0 {
		r.Log.Warn("request not found for status update", "request_id", id)
		return fmt.Errorf("%w: %s", domain.ErrRequestNotFound, id)
	}
	r.Log.Debug("request status updated", "request_id", id, "status", status)
	return nil
}

// GetByServiceID заявки сервиса от новых к старым; limit <= 0 без ограничения
func (r *Repository) GetByServiceID(ctx context.Context, serviceID uuid.UUID, limit int) ([]*domain.Request, error) {
	requests := make([]*domain.Request, 0)
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s DESC`,
		r.allColumns(),
		r.columns.TableName,
		r.columns.ServiceID,
		r.columns.CreatedAt)
	args := []interface{}{serviceID}
	if limit > 0 {
		query += " LIMIT $2"
		args = append(args, limit)
	}
	if err := r.db.Select(ctx, &requests, query, args...); err != nil {
		r.Log.Error("failed to get requests by service",
			"error", err,
			"service_id", serviceID)
		return nil, fmt.Errorf("failed to get requests by service: %w", err)
	}
	r.Log.Debug("requests retrieved by service",
		"service_id", serviceID,
		"count", len(requests))
	return requests, nil
}
