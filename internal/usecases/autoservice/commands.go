package autoservice

import (
	"context"
	"fmt"

	"github.com/TATR0/bot-service/internal/domain"
	"github.com/TATR0/bot-service/internal/usecases/autoservice/texts"
	"github.com/google/uuid"
)

// MaxRequestsPerService сколько последних заявок показывать по каждому сервису
const MaxRequestsPerService = 5

// HandleStart обрабатывает /start. Токен SVC_<id> открывает форму конкретного сервиса.
// Любой /start прерывает незавершённую регистрацию
func (s *Service) HandleStart(ctx context.Context, actor domain.Actor, token string) error {
	s.Sessions.Clear(actor.ChatID)

	if serviceID, ok := domain.ParseServiceToken(token); ok {
		s.Log.Info("start with service link",
			"chat_id", actor.ChatID,
			"service_id", serviceID,
		)
		return s.sendMessageWithKeyboard(ctx, actor.ChatID, texts.StartServiceLink, s.serviceKeyboard(serviceID))
	}

	services, err := s.managedServices(ctx, actor.UserID)
	if err != nil {
		// без списка сервисов показываем клиентское меню
		s.Log.Error("failed to load managed services on start",
			"error", err,
			"user_id", actor.UserID,
		)
	}

	if len(services) > 0 {
		return s.sendMessageWithKeyboard(ctx, actor.ChatID, texts.StartAdmin, adminMenuKeyboard())
	}
	return s.sendMessageWithKeyboard(ctx, actor.ChatID, texts.StartClient, s.startKeyboard())
}

// HandleMenu кнопки меню администратора
func (s *Service) HandleMenu(ctx context.Context, actor domain.Actor, item string) error {
	switch item {
	case domain.MenuMyRequests:
		return s.HandleMyRequests(ctx, actor)
	case domain.MenuRegisterService:
		return s.StartRegistration(ctx, actor)
	case domain.MenuAboutService:
		return s.HandleAboutService(ctx, actor)
	default:
		return s.HandleUnknown(ctx, actor)
	}
}

// HandleMyRequests последние заявки по каждому сервису администратора
func (s *Service) HandleMyRequests(ctx context.Context, actor domain.Actor) error {
	services, err := s.managedServices(ctx, actor.UserID)
	if err != nil {
		return s.replyError(ctx, actor.ChatID, texts.LoadError, err)
	}
	if len(services) == 0 {
		return s.sendMessageWithKeyboard(ctx, actor.ChatID, texts.NoServices, s.startKeyboard())
	}

	items := make([]texts.ServiceRequests, 0, len(services))
	for _, svc := range services {
		requests, err := s.RequestRepo.GetByServiceID(ctx, svc.ID, MaxRequestsPerService)
		if err != nil {
			return s.replyError(ctx, actor.ChatID, texts.LoadError, err)
		}
		items = append(items, texts.ServiceRequests{Service: svc, Requests: requests})
	}

	return s.sendMessage(ctx, actor.ChatID, texts.FormatMyRequests(items))
}

// HandleAboutService карточки сервисов администратора со ссылкой для клиентов
func (s *Service) HandleAboutService(ctx context.Context, actor domain.Actor) error {
	services, err := s.managedServices(ctx, actor.UserID)
	if err != nil {
		return s.replyError(ctx, actor.ChatID, texts.LoadError, err)
	}
	if len(services) == 0 {
		return s.sendMessage(ctx, actor.ChatID, texts.NoServicesShort)
	}

	return s.sendMessage(ctx, actor.ChatID, texts.FormatAboutServices(services, s.serviceLink))
}

// HandleUnknown подсказка на непонятный ввод
func (s *Service) HandleUnknown(ctx context.Context, actor domain.Actor) error {
	return s.sendMessageWithKeyboard(ctx, actor.ChatID, texts.UnknownCommand, s.startKeyboard())
}

func (s *Service) serviceLink(serviceID uuid.UUID) string {
	return domain.ServiceDeepLink(s.BotUsername, serviceID)
}

// managedServices сервисы, где пользователь администратор или владелец, без повторов
func (s *Service) managedServices(ctx context.Context, userID int64) ([]*domain.Service, error) {
	administered, err := s.ServiceRepo.GetByAdminID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get services by admin: %w", err)
	}
	owned, err := s.ServiceRepo.GetByOwnerID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get services by owner: %w", err)
	}

	seen := make(map[uuid.UUID]struct{}, len(administered)+len(owned))
	result := make([]*domain.Service, 0, len(administered)+len(owned))
	for _, list := range [][]*domain.Service{administered, owned} {
		for _, svc := range list {
			if _, ok := seen[svc.ID]; ok {
				continue
			}
			seen[svc.ID] = struct{}{}
			result = append(result, svc)
		}
	}
	return result, nil
}
