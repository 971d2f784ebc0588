package domain

import (
	"time"

	"github.com/google/uuid"
)

type RequestEventType string

const (
	RequestEventCreated       RequestEventType = "request.created"
	RequestEventStatusChanged RequestEventType = "request.status_changed"
)

// RequestEvent событие по заявке для внешних потребителей
type RequestEvent struct {
	Type           RequestEventType `json:"type"`
	RequestID      uuid.UUID        `json:"request_id"`
	ServiceID      *uuid.UUID       `json:"service_id,omitempty"`
	ClientID       int64            `json:"client_id"`
	Status         RequestStatus    `json:"status"`
	PreviousStatus RequestStatus    `json:"previous_status,omitempty"`
	OccurredAt     time.Time        `json:"occurred_at"`
}
