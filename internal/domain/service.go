package domain

import (
	"time"

	"github.com/google/uuid"
)

// Service зарегистрированный автосервис
type Service struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Phone     string    `json:"phone" db:"phone"`
	Address   string    `json:"address" db:"address"`
	City      string    `json:"city" db:"city"`
	OwnerID   int64     `json:"owner_id" db:"owner_id"` // tg id того, кто регистрировал
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// AdminBinding связь администратора (tg id) с сервисом.
// Уникальность пары (service, admin) не гарантируется
type AdminBinding struct {
	ID        uuid.UUID `json:"id" db:"id"`
	ServiceID uuid.UUID `json:"service_id" db:"service_id"`
	AdminID   int64     `json:"admin_id" db:"admin_tg_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
