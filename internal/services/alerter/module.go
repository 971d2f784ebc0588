package alerter

import (
	"context"
	"fmt"

	"github.com/TATR0/bot-service/internal/adapters/secondary/alerter"
	"github.com/TATR0/bot-service/internal/ports/service"
)

// Service общий чат: алерты планировщика и заявки без сервиса
type Service struct {
	client *alerter.Client
}

// New возвращает nil, если общий чат не настроен: получатели трактуют nil как "некуда слать"
func New(client *alerter.Client) service.IAlerterService {
	if client == nil {
		return nil
	}
	return &Service{
		client: client,
	}
}

// SendAlert отправляет HTML-сообщение в общий чат
func (s *Service) SendAlert(ctx context.Context, message string) error {
	if s.client == nil {
		return fmt.Errorf("alerter client is not initialized")
	}

	return s.client.SendAlert(ctx, message)
}
