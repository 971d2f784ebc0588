package inmemory

import (
	"context"
	"time"

	"github.com/TATR0/bot-service/internal/domain"
	"github.com/TATR0/bot-service/internal/ports/cache"
	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	defaultIndexCapacity = 10000
	defaultIndexTTL      = 7 * 24 * time.Hour
)

var _ cache.IRequestIndex = (*RequestIndex)(nil)

// RequestIndex индекс заявок в памяти процесса: LRU с ограничением по размеру и TTL.
// Истёкшие записи удаляет сам expirable.LRU. После рестарта пуст
type RequestIndex struct {
	lru *expirable.LRU[uuid.UUID, domain.RequestIndexEntry]
}

// NewRequestIndex capacity <= 0 и ttl <= 0 заменяются значениями по умолчанию
func NewRequestIndex(capacity int, ttl time.Duration) *RequestIndex {
	if capacity <= 0 {
		capacity = defaultIndexCapacity
	}
	if ttl <= 0 {
		ttl = defaultIndexTTL
	}
	return &RequestIndex{
		lru: expirable.NewLRU[uuid.UUID, domain.RequestIndexEntry](capacity, nil, ttl),
	}
}

// Put добавляет запись, при переполнении вытесняет самую давнюю
func (i *RequestIndex) Put(_ context.Context, requestID uuid.UUID, entry domain.RequestIndexEntry) error {
	i.lru.Add(requestID, entry)
	return nil
}

// Get false, если записи нет или она истекла
func (i *RequestIndex) Get(_ context.Context, requestID uuid.UUID) (domain.RequestIndexEntry, bool, error) {
	entry, ok := i.lru.Get(requestID)
	return entry, ok, nil
}

// Len текущее число записей
func (i *RequestIndex) Len() int {
	return i.lru.Len()
}
