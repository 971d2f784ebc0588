package autoservice

import (
	"context"
	"fmt"

	"github.com/TATR0/bot-service/internal/domain"
)

// sendMessage отправляет сообщение пользователю через Telegram Client
func (s *Service) sendMessage(ctx context.Context, chatID int64, text string) error {
	if err := s.TelegramClient.SendMessage(ctx, chatID, text); err != nil {
		s.Log.Error("failed to send message",
			"error", err,
			"chat_id", chatID,
		)
		return fmt.Errorf("failed to send message: %w", err)
	}

	return nil
}

// sendMessageWithKeyboard отправляет сообщение с клавиатурой
func (s *Service) sendMessageWithKeyboard(ctx context.Context, chatID int64, text string, keyboard map[string]interface{}) error {
	if err := s.TelegramClient.SendMessageWithKeyboard(ctx, chatID, text, keyboard); err != nil {
		s.Log.Error("failed to send message with keyboard",
			"error", err,
			"chat_id", chatID,
		)
		return fmt.Errorf("failed to send message with keyboard: %w", err)
	}

	return nil
}

// replyError сообщает пользователю об ошибке и помечает её как уже обработанную
func (s *Service) replyError(ctx context.Context, chatID int64, text string, cause error) error {
	_ = s.sendMessage(ctx, chatID, text)
	return domain.WrapBusinessError(cause)
}

func (s *Service) answerCallback(ctx context.Context, callbackID, text string, showAlert bool) {
	if err := s.TelegramClient.AnswerCallbackQuery(ctx, callbackID, text, showAlert); err != nil {
		s.Log.Warn("failed to answer callback query",
			"error", err,
			"callback_id", callbackID,
		)
	}
}

// publish best-effort отправка события по заявке
func (s *Service) publish(ctx context.Context, event domain.RequestEvent) {
	if s.Events == nil {
		return
	}
	if err := s.Events.PublishRequestEvent(ctx, event); err != nil {
		s.Log.Warn("failed to publish request event",
			"error", err,
			"event_type", event.Type,
			"request_id", event.RequestID,
		)
	}
}
