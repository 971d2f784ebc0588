package domain

import (
	"time"

	"github.com/google/uuid"
)

// Request заявка клиента на обслуживание
type Request struct {
	ID          uuid.UUID     `json:"id" db:"id"`
	ServiceID   *uuid.UUID    `json:"service_id,omitempty" db:"service_id"` // nil если сервис неизвестен
	ClientName  string        `json:"client_name" db:"client_name"`
	Phone       string        `json:"phone" db:"phone"`
	Brand       string        `json:"brand" db:"brand"`
	Model       string        `json:"model" db:"model"`
	Plate       string        `json:"plate" db:"plate"`
	ServiceType string        `json:"service_type" db:"service_type"`
	Urgency     string        `json:"urgency" db:"urgency"`
	Comment     string        `json:"comment" db:"comment"`
	ClientID    int64         `json:"client_id" db:"client_tg_id"`
	Status      RequestStatus `json:"status" db:"status"`
	CreatedAt   time.Time     `json:"created_at" db:"created_at"` // выставляется БД
}

// RequestIndexEntry запись эфемерного индекса заявок: кого уведомлять о смене статуса
type RequestIndexEntry struct {
	ClientID  int64      `json:"client_id"`
	Name      string     `json:"name"`
	Phone     string     `json:"phone"`
	ServiceID *uuid.UUID `json:"service_id,omitempty"`
}
