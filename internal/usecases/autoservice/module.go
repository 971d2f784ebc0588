package autoservice

import (
	"log/slog"
	"time"

	"github.com/TATR0/bot-service/internal/pkg/metrics"
	"github.com/TATR0/bot-service/internal/ports/cache"
	"github.com/TATR0/bot-service/internal/ports/kafka"
	"github.com/TATR0/bot-service/internal/ports/repository"
	"github.com/TATR0/bot-service/internal/ports/service"
	"github.com/TATR0/bot-service/internal/ports/telegram"
)

// Service бизнес-логика бота записи в автосервис:
// регистрация сервиса, приём заявок, смена статуса, меню администратора
type Service struct {
	ServiceRepo    repository.IServiceRepo
	AdminRepo      repository.IAdminRepo
	RequestRepo    repository.IRequestRepo
	TelegramClient telegram.IClient
	Directory      service.IDirectory
	Sessions       cache.ISessionStore
	Index          cache.IRequestIndex

	// Необязательные зависимости, nil - выключено
	Fallback service.IAlerterService
	Events   kafka.IEventProducer
	Metrics  *metrics.Metrics

	WebAppURL   string
	BotUsername string
	Log         *slog.Logger

	now func() time.Time
}

// New создаёт сервис с обязательными зависимостями
func New(
	serviceRepo repository.IServiceRepo,
	adminRepo repository.IAdminRepo,
	requestRepo repository.IRequestRepo,
	telegramClient telegram.IClient,
	directory service.IDirectory,
	sessions cache.ISessionStore,
	index cache.IRequestIndex,
	webAppURL string,
	botUsername string,
	log *slog.Logger,
) *Service {
	return &Service{
		ServiceRepo:    serviceRepo,
		AdminRepo:      adminRepo,
		RequestRepo:    requestRepo,
		TelegramClient: telegramClient,
		Directory:      directory,
		Sessions:       sessions,
		Index:          index,
		WebAppURL:      webAppURL,
		BotUsername:    botUsername,
		Log:            log,
		now:            time.Now,
	}
}
