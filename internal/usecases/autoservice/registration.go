package autoservice

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/TATR0/bot-service/internal/domain"
	"github.com/TATR0/bot-service/internal/pkg/metrics"
	"github.com/TATR0/bot-service/internal/ports/persistence"
	"github.com/TATR0/bot-service/internal/usecases/autoservice/texts"
	"github.com/google/uuid"
)

var adminHandleRe = regexp.MustCompile(`^@(\w+)$`)

// StartRegistration начинает диалог регистрации сервиса с первого шага
func (s *Service) StartRegistration(ctx context.Context, actor domain.Actor) error {
	s.Sessions.Set(actor.ChatID, domain.NewRegistrationSession())
	return s.sendMessage(ctx, actor.ChatID, texts.RegisterStart)
}

// ActiveRegistration сессия регистрации чата, если она идёт
func (s *Service) ActiveRegistration(chatID int64) (*domain.RegistrationSession, bool) {
	return s.Sessions.Get(chatID)
}

type fieldStep struct {
	minLen  int
	invalid string
	prompt  string
	next    domain.RegistrationState
	store   func(*domain.RegistrationSession, string)
}

var fieldSteps = map[domain.RegistrationState]fieldStep{
	domain.StateWaitingName: {
		minLen:  domain.MinServiceNameLen,
		invalid: texts.InvalidName,
		prompt:  texts.AskPhone,
		next:    domain.StateWaitingPhone,
		store:   func(rs *domain.RegistrationSession, v string) { rs.ServiceName = v },
	},
	domain.StateWaitingPhone: {
		minLen:  domain.MinPhoneLen,
		invalid: texts.InvalidPhone,
		prompt:  texts.AskCity,
		next:    domain.StateWaitingCity,
		store:   func(rs *domain.RegistrationSession, v string) { rs.Phone = v },
	},
	domain.StateWaitingCity: {
		minLen:  domain.MinCityLen,
		invalid: texts.InvalidCity,
		prompt:  texts.AskLocation,
		next:    domain.StateWaitingLocation,
		store:   func(rs *domain.RegistrationSession, v string) { rs.City = v },
	},
	domain.StateWaitingLocation: {
		minLen:  domain.MinLocationLen,
		invalid: texts.InvalidLocation,
		prompt:  texts.AskAdmin,
		next:    domain.StateWaitingAdminID,
		store:   func(rs *domain.RegistrationSession, v string) { rs.Location = v },
	},
}

// HandleRegistrationInput очередной ответ в диалоге регистрации.
// Невалидный ввод переспрашивается без смены состояния
func (s *Service) HandleRegistrationInput(ctx context.Context, actor domain.Actor, session *domain.RegistrationSession, text string) error {
	input := strings.TrimSpace(text)

	if session.State == domain.StateWaitingAdminID {
		return s.handleAdminInput(ctx, actor, session, input)
	}

	step, ok := fieldSteps[session.State]
	if !ok {
		s.Log.Warn("unknown registration state, session dropped",
			"chat_id", actor.ChatID,
			"state", session.State,
		)
		s.Sessions.Clear(actor.ChatID)
		return s.HandleUnknown(ctx, actor)
	}

	if utf8.RuneCountInString(input) < step.minLen {
		return s.sendMessage(ctx, actor.ChatID, step.invalid)
	}

	step.store(session, input)
	session.State = step.next
	s.Sessions.Set(actor.ChatID, session)

	return s.sendMessage(ctx, actor.ChatID, step.prompt)
}

func (s *Service) handleAdminInput(ctx context.Context, actor domain.Actor, session *domain.RegistrationSession, input string) error {
	adminID, rejection := s.resolveAdmin(ctx, input)
	if rejection != "" {
		return s.sendMessage(ctx, actor.ChatID, rejection)
	}

	return s.commitRegistration(ctx, actor, session, adminID)
}

// resolveAdmin проверяет @username или числовой id через getChat.
// Непустая строка - текст отказа для пользователя
func (s *Service) resolveAdmin(ctx context.Context, input string) (int64, string) {
	if m := adminHandleRe.FindStringSubmatch(input); m != nil {
		id, err := s.Directory.ResolveActor(ctx, "@"+m[1])
		if err != nil {
			s.Log.Warn("failed to resolve admin username",
				"error", err,
				"username", m[1],
			)
			return 0, texts.FormatAdminNotFound(m[1])
		}
		return id, ""
	}

	if !isDigits(input) {
		return 0, texts.InvalidAdmin
	}

	id, err := strconv.ParseInt(input, 10, 64)
	if err != nil {
		return 0, texts.InvalidAdmin
	}

	resolved, err := s.Directory.ResolveActor(ctx, input)
	if err != nil {
		s.Log.Warn("failed to resolve admin id",
			"error", err,
			"admin_id", id,
		)
		return 0, texts.FormatAdminIDNotFound(id)
	}
	return resolved, ""
}

// commitRegistration сервис и первая привязка администратора пишутся одной транзакцией.
// Сессия сбрасывается при любом исходе
func (s *Service) commitRegistration(ctx context.Context, actor domain.Actor, session *domain.RegistrationSession, adminID int64) error {
	defer s.Sessions.Clear(actor.ChatID)

	svc := &domain.Service{
		ID:      uuid.New(),
		Name:    session.ServiceName,
		Phone:   session.Phone,
		Address: session.Location,
		City:    session.City,
		OwnerID: actor.UserID,
	}
	binding := &domain.AdminBinding{
		ID:        uuid.New(),
		ServiceID: svc.ID,
		AdminID:   adminID,
	}

	err := s.ServiceRepo.WithTransaction(ctx, func(ctx context.Context, tx persistence.Transaction) error {
		if err := s.ServiceRepo.CreateTx(ctx, tx, svc); err != nil {
			return err
		}
		if err := s.AdminRepo.CreateTx(ctx, tx, binding); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		s.Log.Error("failed to register service",
			"error", err,
			"chat_id", actor.ChatID,
			"owner_id", actor.UserID,
		)
		return s.replyError(ctx, actor.ChatID, texts.FormatRegistrationError(err), err)
	}

	s.Log.Info("service registered",
		"service_id", svc.ID,
		"owner_id", svc.OwnerID,
		"admin_id", adminID,
	)

	if err := s.sendMessageWithKeyboard(ctx, actor.ChatID,
		texts.FormatRegistrationSuccess(svc, adminID, s.serviceLink(svc.ID)),
		s.startKeyboard(),
	); err != nil {
		return err
	}

	err = s.TelegramClient.SendMessage(ctx, adminID, texts.FormatAdminWelcome(svc))
	s.Metrics.Notification(metrics.TargetAdmin, err)
	if err != nil {
		s.Log.Warn("failed to notify new admin",
			"error", err,
			"admin_id", adminID,
			"service_id", svc.ID,
		)
	}

	return nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
