package serviceRepo

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/TATR0/bot-service/internal/domain"
	"github.com/TATR0/bot-service/internal/ports/persistence"
	ports "github.com/TATR0/bot-service/internal/ports/repository"
	"github.com/google/uuid"
)

type serviceColumns struct {
	TableName string
	ID        string
	Name      string
	Phone     string
	Address   string
	City      string
	OwnerID   string
	CreatedAt string

	AdminsTable     string
	AdminServiceID  string
	AdminTelegramID string
}

type Repository struct {
	db      persistence.Persistence
	Log     *slog.Logger
	columns serviceColumns
}

// New создаёт репозиторий автосервисов
func New(db persistence.Persistence, log *slog.Logger) ports.IServiceRepo {
	cols := serviceColumns{
		TableName: "services",
		ID:        "id",
		Name:      "name",
		Phone:     "phone",
		Address:   "address",
		City:      "city",
		OwnerID:   "owner_id",
		CreatedAt: "created_at",

		AdminsTable:     "admins",
		AdminServiceID:  "service_id",
		AdminTelegramID: "admin_tg_id",
	}
	return &Repository{
		db:      db,
		Log:     log,
		columns: cols,
	}
}

// selectColumns колонки для чтения; phone и address могут быть NULL
func (r *Repository) selectColumns(alias string) string {
	p := ""
	if alias != "" {
		p = alias + "."
	}
	return fmt.Sprintf("%[1]s%[2]s, %[1]s%[3]s, COALESCE(%[1]s%[4]s, '') AS %[4]s, COALESCE(%[1]s%[5]s, '') AS %[5]s, %[1]s%[6]s, %[1]s%[7]s, %[1]s%[8]s",
		p,
		r.columns.ID,
		r.columns.Name,
		r.columns.Phone,
		r.columns.Address,
		r.columns.City,
		r.columns.OwnerID,
		r.columns.CreatedAt)
}

func (r *Repository) insertQuery() string {
	return fmt.Sprintf(`INSERT INTO %s (%s, %s, %s, %s, %s, %s) VALUES ($1, $2, $3, $4, $5, $6)`,
		r.columns.TableName,
		r.columns.ID,
		r.columns.Name,
		r.columns.Phone,
		r.columns.Address,
		r.columns.City,
		r.columns.OwnerID)
}

// CreateTx создаёт сервис в транзакции
func (r *Repository) CreateTx(ctx context.Context, tx persistence.Transaction, service *domain.Service) error {
	return r.create(ctx, tx, service)
}

func (r *Repository) create(ctx context.Context, q persistence.Querier, service *domain.Service) error {
	if service.ID == uuid.Nil {
		service.ID = uuid.New()
	}
	err := q.Exec(ctx, r.insertQuery(),
		service.ID,
		service.Name,
		service.Phone,
		service.Address,
		service.City,
		service.OwnerID)
	if err != nil {
		r.Log.Error("failed to create service",
			"error", err,
			"service_id", service.ID,
			"owner_id", service.OwnerID)
		return fmt.Errorf("failed to create service: %w", err)
	}
	r.Log.Debug("service created successfully",
		"service_id", service.ID,
		"owner_id", service.OwnerID)
	return nil
}

// GetByOwnerID сервисы, зарегистрированные пользователем
func (r *Repository) GetByOwnerID(ctx context.Context, ownerID int64) ([]*domain.Service, error) {
	services := make([]*domain.Service, 0)
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s`,
		r.selectColumns(""),
		r.columns.TableName,
		r.columns.OwnerID,
		r.columns.Name)
	if err := r.db.Select(ctx, &services, query, ownerID); err != nil {
		r.Log.Error("failed to get services by owner",
			"error", err,
			"owner_id", ownerID)
		return nil, fmt.Errorf("failed to get services by owner: %w", err)
	}
	r.Log.Debug("services retrieved by owner", "owner_id", ownerID, "count", len(services))
	return services, nil
}

// GetByCity сервисы города без учёта регистра, по названию
func (r *Repository) GetByCity(ctx context.Context, city string) ([]*domain.Service, error) {
	services := make([]*domain.Service, 0)
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE LOWER(%s) = LOWER($1) ORDER BY %s`,
		r.selectColumns(""),
		r.columns.TableName,
		r.columns.City,
		r.columns.Name)
	if err := r.db.Select(ctx, &services, query, city); err != nil {
		r.Log.Error("failed to get services by city",
			"error", err,
			"city", city)
		return nil, fmt.Errorf("failed to get services by city: %w", err)
	}
	r.Log.Debug("services retrieved by city", "city", city, "count", len(services))
	return services, nil
}

// ListCities непустые города, в которых есть сервисы
func (r *Repository) ListCities(ctx context.Context) ([]string, error) {
	cities := make([]string, 0)
	query := fmt.Sprintf(`SELECT DISTINCT %[1]s FROM %[2]s WHERE %[1]s IS NOT NULL AND %[1]s <> '' ORDER BY %[1]s`,
		r.columns.City,
		r.columns.TableName)
	if err := r.db.Select(ctx, &cities, query); err != nil {
		r.Log.Error("failed to list cities", "error", err)
		return nil, fmt.Errorf("failed to list cities: %w", err)
	}
	r.Log.Debug("cities listed", "count", len(cities))
	return cities, nil
}

// GetByAdminID сервисы, к которым привязан администратор. Дубли привязок не дают дублей сервисов
func (r *Repository) GetByAdminID(ctx context.Context, adminID int64) ([]*domain.Service, error) {
	services := make([]*domain.Service, 0)
	query := fmt.Sprintf(`SELECT %[1]s FROM %[2]s s WHERE EXISTS (SELECT 1 FROM %[3]s a WHERE a.%[4]s = s.%[5]s AND a.%[6]s = $1) ORDER BY s.%[7]s`,
		r.selectColumns("s"),
		r.columns.TableName,
		r.columns.AdminsTable,
		r.columns.AdminServiceID,
		r.columns.ID,
		r.columns.AdminTelegramID,
		r.columns.Name)
	if err := r.db.Select(ctx, &services, query, adminID); err != nil {
		r.Log.Error("failed to get services by admin",
			"error", err,
			"admin_tg_id", adminID)
		return nil, fmt.Errorf("failed to get services by admin: %w", err)
	}
	r.Log.Debug("services retrieved by admin", "admin_tg_id", adminID, "count", len(services))
	return services, nil
}

// WithTransaction выполняет функцию в транзакции с автоматическим commit/rollback
func (r *Repository) WithTransaction(ctx context.Context, fn func(context.Context, persistence.Transaction) error) error {
	return r.db.WithTransaction(ctx, fn)
}
