package service

import (
	"context"
)

// IAlerterService интерфейс для отправки алертов и заявок без сервиса в общий чат
type IAlerterService interface {
	SendAlert(ctx context.Context, message string) error
}
