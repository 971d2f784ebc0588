package telegram

import (
	"context"
	"fmt"

	"github.com/TATR0/bot-service/internal/domain"
)

// HandleUpdate разбирает update в событие и роутит в usecase.
// Ошибки, о которых пользователь уже уведомлён, не возвращаются
func (s *Service) HandleUpdate(ctx context.Context, update *domain.Update) error {
	if update == nil {
		return fmt.Errorf("update is nil")
	}

	if skip, reason := s.shouldSkip(update); skip {
		s.Log.Debug("ignoring update",
			"update_id", update.UpdateID,
			"reason", reason,
		)
		return nil
	}

	event, ok := domain.ParseEvent(update)
	if !ok {
		s.Log.Debug("unsupported update", "update_id", update.UpdateID)
		return nil
	}

	err := s.dispatch(ctx, event)
	if err != nil && domain.IsBusinessError(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to handle update %d: %w", update.UpdateID, err)
	}
	return nil
}

func (s *Service) dispatch(ctx context.Context, event domain.Event) error {
	actor := event.Actor()

	switch e := event.(type) {
	case domain.EventStart:
		return s.Bot.HandleStart(ctx, actor, e.Token)

	case domain.EventCommand:
		if e.Name == domain.CommandRegisterService {
			return s.Bot.StartRegistration(ctx, actor)
		}
		return s.Bot.HandleUnknown(ctx, actor)

	case domain.EventMenu:
		// во время регистрации текст кнопки - это ответ на вопрос
		if session, ok := s.Bot.ActiveRegistration(actor.ChatID); ok {
			return s.Bot.HandleRegistrationInput(ctx, actor, session, e.Item)
		}
		return s.Bot.HandleMenu(ctx, actor, e.Item)

	case domain.EventText:
		if session, ok := s.Bot.ActiveRegistration(actor.ChatID); ok {
			return s.Bot.HandleRegistrationInput(ctx, actor, session, e.Text)
		}
		return s.Bot.HandleUnknown(ctx, actor)

	case domain.EventWebAppData:
		return s.Bot.HandleWebAppData(ctx, actor, e.Payload)

	case domain.EventAction:
		if domain.IsStatusAction(e.Data) {
			return s.Bot.HandleStatusAction(ctx, e)
		}
		// остальные кнопки гасим пустым ответом
		if err := s.TelegramClient.AnswerCallbackQuery(ctx, e.CallbackID, "", false); err != nil {
			s.Log.Warn("failed to answer callback query",
				"error", err,
				"callback_id", e.CallbackID,
			)
		}
		return nil

	default:
		return fmt.Errorf("unknown event type %T", event)
	}
}

// shouldSkip сообщения от ботов и из групп не обрабатываются
func (s *Service) shouldSkip(update *domain.Update) (bool, string) {
	msg := update.Message
	if msg == nil {
		return false, ""
	}
	if msg.From != nil && msg.From.IsBot {
		return true, "message from bot"
	}
	if msg.Chat != nil && msg.Chat.Type != "" && msg.Chat.Type != "private" {
		return true, "non-private chat"
	}
	return false, ""
}
