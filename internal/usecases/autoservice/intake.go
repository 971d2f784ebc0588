package autoservice

import (
	"context"

	"github.com/TATR0/bot-service/internal/domain"
	"github.com/TATR0/bot-service/internal/pkg/metrics"
	"github.com/TATR0/bot-service/internal/usecases/autoservice/texts"
)

// Delivery результат отправки заявки одному администратору
type Delivery struct {
	AdminID int64
	Err     error
}

// HandleWebAppData принимает заявку из веб-формы.
// После сохранения каждый шаг best-effort: ошибка логируется и не мешает следующим
func (s *Service) HandleWebAppData(ctx context.Context, actor domain.Actor, payload string) error {
	submission, err := domain.ParseWebAppSubmission(payload)
	if err != nil {
		s.Log.Warn("failed to parse web app data",
			"error", err,
			"chat_id", actor.ChatID,
		)
		return s.replyError(ctx, actor.ChatID, texts.RequestParseError, err)
	}

	request := submission.ToRequest(actor.UserID)
	if err := s.RequestRepo.Create(ctx, request); err != nil {
		s.Log.Error("failed to save request",
			"error", err,
			"client_id", actor.UserID,
		)
		return s.replyError(ctx, actor.ChatID, texts.RequestSaveError, err)
	}

	if err := s.Index.Put(ctx, request.ID, domain.RequestIndexEntry{
		ClientID:  actor.UserID,
		Name:      request.ClientName,
		Phone:     request.Phone,
		ServiceID: request.ServiceID,
	}); err != nil {
		s.Log.Warn("failed to index request",
			"error", err,
			"request_id", request.ID,
		)
	}

	body := texts.FormatRequestNotification(request, s.now())
	route := s.routeRequest(ctx, request, body)
	s.Metrics.RequestRouted(route)

	err = s.sendMessage(ctx, actor.ChatID, texts.FormatRequestAccepted(request.ID))
	s.Metrics.Notification(metrics.TargetClient, err)

	s.publish(ctx, domain.RequestEvent{
		Type:       domain.RequestEventCreated,
		RequestID:  request.ID,
		ServiceID:  request.ServiceID,
		ClientID:   request.ClientID,
		Status:     request.Status,
		OccurredAt: s.now(),
	})

	s.Log.Info("request accepted",
		"request_id", request.ID,
		"service_id", request.ServiceID,
		"route", route,
	)
	return nil
}

// routeRequest рассылает заявку администраторам сервиса, иначе в общий чат
func (s *Service) routeRequest(ctx context.Context, request *domain.Request, body string) string {
	if request.ServiceID != nil {
		bindings, err := s.AdminRepo.GetByServiceID(ctx, *request.ServiceID)
		if err != nil {
			s.Log.Error("failed to get service admins",
				"error", err,
				"service_id", *request.ServiceID,
			)
		}

		if admins := uniqueAdmins(bindings); len(admins) > 0 {
			deliveries := s.notifyAdmins(ctx, admins, body, statusKeyboard(request.ID))
			failed := 0
			for _, d := range deliveries {
				if d.Err != nil {
					failed++
				}
			}
			s.Log.Info("request sent to admins",
				"request_id", request.ID,
				"admins", len(deliveries),
				"failed", failed,
			)
			return metrics.RouteAdmins
		}

		s.Log.Warn("service has no admins",
			"service_id", *request.ServiceID,
			"request_id", request.ID,
		)
	}

	if s.Fallback == nil {
		s.Log.Warn("request left unrouted: no fallback chat configured",
			"request_id", request.ID,
		)
		return metrics.RouteUnrouted
	}

	err := s.Fallback.SendAlert(ctx, texts.NoServicePrefix+body)
	s.Metrics.Notification(metrics.TargetFallback, err)
	if err != nil {
		s.Log.Error("failed to send request to fallback chat",
			"error", err,
			"request_id", request.ID,
		)
	}
	return metrics.RouteFallback
}

// notifyAdmins отправляет каждому отдельно; ошибка одного не останавливает остальных
func (s *Service) notifyAdmins(ctx context.Context, admins []int64, body string, keyboard map[string]interface{}) []Delivery {
	deliveries := make([]Delivery, 0, len(admins))
	for _, adminID := range admins {
		err := s.TelegramClient.SendMessageWithKeyboard(ctx, adminID, body, keyboard)
		s.Metrics.Notification(metrics.TargetAdmin, err)
		if err != nil {
			s.Log.Error("failed to send request to admin",
				"error", err,
				"admin_id", adminID,
			)
		}
		deliveries = append(deliveries, Delivery{AdminID: adminID, Err: err})
	}
	return deliveries
}

// uniqueAdmins id администраторов без повторов, в порядке привязок
func uniqueAdmins(bindings []*domain.AdminBinding) []int64 {
	seen := make(map[int64]struct{}, len(bindings))
	admins := make([]int64, 0, len(bindings))
	for _, b := range bindings {
		if _, ok := seen[b.AdminID]; ok {
			continue
		}
		seen[b.AdminID] = struct{}{}
		admins = append(admins, b.AdminID)
	}
	return admins
}
