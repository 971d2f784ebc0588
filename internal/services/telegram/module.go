package telegram

import (
	"log/slog"

	"github.com/TATR0/bot-service/internal/ports/service"
	"github.com/TATR0/bot-service/internal/ports/telegram"
)

// Service точка входа для update из webhook и long polling
type Service struct {
	Bot            service.IBotService
	TelegramClient telegram.IClient
	Log            *slog.Logger
}

func New(
	bot service.IBotService,
	telegramClient telegram.IClient,
	log *slog.Logger,
) *Service {
	return &Service{
		Bot:            bot,
		TelegramClient: telegramClient,
		Log:            log,
	}
}
