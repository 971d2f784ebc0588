package autoservice

import (
	"context"
	"errors"

	"github.com/TATR0/bot-service/internal/domain"
	"github.com/TATR0/bot-service/internal/pkg/metrics"
	"github.com/TATR0/bot-service/internal/pkg/tghtml"
	"github.com/TATR0/bot-service/internal/usecases/autoservice/texts"
)

// HandleStatusAction нажатие кнопки статуса под уведомлением о заявке.
// Статус перезаписывается без проверки перехода
func (s *Service) HandleStatusAction(ctx context.Context, action domain.EventAction) error {
	actor := action.Actor()

	disposition, requestID, err := domain.ParseStatusAction(action.Data)
	if err != nil {
		s.Log.Warn("malformed status action",
			"error", err,
			"data", action.Data,
			"user_id", actor.UserID,
		)
		s.answerCallback(ctx, action.CallbackID, texts.StatusUpdateError, true)
		return domain.WrapBusinessError(err)
	}

	var previous domain.RequestStatus
	request, err := s.RequestRepo.GetByID(ctx, requestID)
	if err != nil && !errors.Is(err, domain.ErrRequestNotFound) {
		s.Log.Warn("failed to load request before status update",
			"error", err,
			"request_id", requestID,
		)
	}
	if request != nil {
		previous = request.Status
	}

	if err := s.RequestRepo.UpdateStatus(ctx, requestID, disposition.Status()); err != nil {
		text := texts.StatusUpdateError
		if errors.Is(err, domain.ErrRequestNotFound) {
			text = texts.StatusNotFound
		}
		s.Log.Error("failed to update request status",
			"error", err,
			"request_id", requestID,
			"status", disposition,
		)
		s.answerCallback(ctx, action.CallbackID, text, true)
		return domain.WrapBusinessError(err)
	}

	s.Metrics.StatusChanged(string(disposition))
	s.editAdminMessage(ctx, action.Message, disposition)
	s.answerCallback(ctx, action.CallbackID, texts.StatusUpdated, false)

	entry, found, err := s.Index.Get(ctx, requestID)
	if err != nil {
		s.Log.Warn("failed to look up request index",
			"error", err,
			"request_id", requestID,
		)
	}
	if found {
		err := s.sendMessage(ctx, entry.ClientID, texts.FormatClientStatus(requestID, disposition))
		s.Metrics.Notification(metrics.TargetClient, err)
	} else {
		s.Log.Info("request not in index, client not notified",
			"request_id", requestID,
		)
	}

	event := domain.RequestEvent{
		Type:           domain.RequestEventStatusChanged,
		RequestID:      requestID,
		Status:         disposition.Status(),
		PreviousStatus: previous,
		OccurredAt:     s.now(),
	}
	switch {
	case request != nil:
		event.ClientID, event.ServiceID = request.ClientID, request.ServiceID
	case found:
		event.ClientID, event.ServiceID = entry.ClientID, entry.ServiceID
	}
	s.publish(ctx, event)

	s.Log.Info("request status updated",
		"request_id", requestID,
		"status", disposition,
		"previous_status", previous,
		"admin_id", actor.UserID,
	)
	return nil
}

// editAdminMessage дописывает статус к исходному сообщению. Ошибка правки не фатальна
func (s *Service) editAdminMessage(ctx context.Context, message *domain.Message, disposition domain.Disposition) {
	if message == nil || message.Chat == nil || message.Text == nil {
		s.Log.Warn("status action without editable message")
		return
	}

	html := tghtml.FromEntities(*message.Text, message.Entities)
	if err := s.TelegramClient.EditMessageText(ctx, message.Chat.ID, message.MessageID, texts.AppendStatus(html, disposition)); err != nil {
		s.Log.Warn("failed to edit admin message",
			"error", err,
			"chat_id", message.Chat.ID,
			"message_id", message.MessageID,
		)
	}
}
