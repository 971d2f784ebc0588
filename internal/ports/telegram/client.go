package telegram

import (
	"context"

	"github.com/TATR0/bot-service/internal/domain"
)

// IClient интерфейс для клиента Telegram API. Тексты уходят с parse_mode=HTML
type IClient interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
	SendMessageWithKeyboard(ctx context.Context, chatID int64, text string, keyboard map[string]interface{}) error
	EditMessageText(ctx context.Context, chatID int64, messageID int64, text string) error
	AnswerCallbackQuery(ctx context.Context, callbackID string, text string, showAlert bool) error
	GetChat(ctx context.Context, chatRef string) (*domain.ChatInfo, error)
	GetMe(ctx context.Context) (*domain.BotInfo, error)
}
