package cache

import (
	"context"

	"github.com/TATR0/bot-service/internal/domain"
	"github.com/google/uuid"
)

// IRequestIndex эфемерный индекс заявок: по id заявки находим клиента.
// Записи не гарантированы: после рестарта или вытеснения Get вернёт false
type IRequestIndex interface {
	Put(ctx context.Context, requestID uuid.UUID, entry domain.RequestIndexEntry) error
	Get(ctx context.Context, requestID uuid.UUID) (domain.RequestIndexEntry, bool, error)
}

// ISessionStore сессии регистрации по chat id
type ISessionStore interface {
	Get(chatID int64) (*domain.RegistrationSession, bool)
	Set(chatID int64, session *domain.RegistrationSession)
	Clear(chatID int64)
}
