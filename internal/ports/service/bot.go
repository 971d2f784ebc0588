package service

import (
	"context"

	"github.com/TATR0/bot-service/internal/domain"
)

// IBotService сценарии бота, в которые роутятся входящие события
type IBotService interface {
	HandleStart(ctx context.Context, actor domain.Actor, token string) error
	HandleMenu(ctx context.Context, actor domain.Actor, item string) error
	HandleUnknown(ctx context.Context, actor domain.Actor) error

	StartRegistration(ctx context.Context, actor domain.Actor) error
	ActiveRegistration(chatID int64) (*domain.RegistrationSession, bool)
	HandleRegistrationInput(ctx context.Context, actor domain.Actor, session *domain.RegistrationSession, text string) error

	HandleWebAppData(ctx context.Context, actor domain.Actor, payload string) error
	HandleStatusAction(ctx context.Context, action domain.EventAction) error
}
