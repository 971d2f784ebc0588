package kafka

import (
	"context"

	"github.com/TATR0/bot-service/internal/domain"
)

// IEventProducer публикация событий по заявкам
type IEventProducer interface {
	PublishRequestEvent(ctx context.Context, event domain.RequestEvent) error
	Close() error
}
