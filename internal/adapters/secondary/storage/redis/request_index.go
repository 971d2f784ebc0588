package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/TATR0/bot-service/internal/domain"
	"github.com/TATR0/bot-service/internal/ports/cache"
	"github.com/google/uuid"
)

var _ cache.IRequestIndex = (*RequestIndex)(nil)

// RequestIndex индекс заявок в Redis: переживает рестарт и общий для нескольких реплик
type RequestIndex struct {
	cache  cache.Cache
	prefix string
	ttl    time.Duration
	log    *slog.Logger
}

func NewRequestIndex(c cache.Cache, prefix string, ttl time.Duration, log *slog.Logger) *RequestIndex {
	if prefix == "" {
		prefix = "autoservice"
	}
	return &RequestIndex{cache: c, prefix: prefix, ttl: ttl, log: log}
}

func (i *RequestIndex) key(requestID uuid.UUID) string {
	return fmt.Sprintf("%s:request:%s", i.prefix, requestID)
}

// Put сохраняет запись с TTL
func (i *RequestIndex) Put(ctx context.Context, requestID uuid.UUID, entry domain.RequestIndexEntry) error {
	raw, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal index entry: %w", err)
	}
	if err := i.cache.Set(ctx, i.key(requestID), string(raw), i.ttl); err != nil {
		return fmt.Errorf("put request %s to index: %w", requestID, err)
	}
	i.log.Debug("request indexed", "request_id", requestID)
	return nil
}

// Get false без ошибки, если записи нет
func (i *RequestIndex) Get(ctx context.Context, requestID uuid.UUID) (domain.RequestIndexEntry, bool, error) {
	raw, err := i.cache.Get(ctx, i.key(requestID))
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return domain.RequestIndexEntry{}, false, nil
		}
		return domain.RequestIndexEntry{}, false, fmt.Errorf("get request %s from index: %w", requestID, err)
	}

	var entry domain.RequestIndexEntry
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		return domain.RequestIndexEntry{}, false, fmt.Errorf("unmarshal index entry: %w", err)
	}
	return entry, true, nil
}
