package autoservice

import (
	"context"
	"strings"
	"testing"

	"github.com/TATR0/bot-service/internal/domain"
	"github.com/TATR0/bot-service/internal/usecases/autoservice/texts"
)

func TestRegistration_ShortInputsArePromptedAgain(t *testing.T) {
	cases := []struct {
		state   domain.RegistrationState
		input   string
		wantMsg string
	}{
		{domain.StateWaitingName, "  Аб  ", texts.InvalidName},
		{domain.StateWaitingPhone, "123456789", texts.InvalidPhone},
		{domain.StateWaitingCity, "М", texts.InvalidCity},
		{domain.StateWaitingLocation, "ул.1", texts.InvalidLocation},
	}

	for _, tc := range cases {
		t.Run(string(tc.state), func(t *testing.T) {
			env := newTestEnv()
			session := &domain.RegistrationSession{State: tc.state}
			env.sessions.Set(1, session)

			if err := env.svc.HandleRegistrationInput(context.Background(), actor(1), session, tc.input); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			got, ok := env.sessions.Get(1)
			if !ok || got.State != tc.state {
				t.Fatalf("state = %+v; want %s", got, tc.state)
			}
			if len(env.tg.sent) != 1 || env.tg.sent[0].Text != tc.wantMsg {
				t.Fatalf("sent = %+v; want %q", env.tg.sent, tc.wantMsg)
			}
			if len(env.services.created) != 0 {
				t.Fatal("nothing must be persisted on invalid input")
			}
		})
	}
}

func feed(t *testing.T, env *testEnv, chatID int64, inputs ...string) {
	t.Helper()
	for _, in := range inputs {
		session, ok := env.svc.ActiveRegistration(chatID)
		if !ok {
			t.Fatalf("no active session before %q", in)
		}
		_ = env.svc.HandleRegistrationInput(context.Background(), actor(chatID), session, in)
	}
}

func TestRegistration_HappyPath(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	if err := env.svc.StartRegistration(ctx, actor(1)); err != nil {
		t.Fatalf("start: %v", err)
	}
	feed(t, env, 1, "Мастер Авто", "+7 999 123-45-67", "Москва", "ул. Ленина, 1", "@mechanic")

	if len(env.services.created) != 1 || len(env.admins.created) != 1 {
		t.Fatalf("created services=%d bindings=%d; want 1/1", len(env.services.created), len(env.admins.created))
	}
	svc := env.services.created[0]
	if svc.Name != "Мастер Авто" || svc.City != "Москва" || svc.Address != "ул. Ленина, 1" || svc.OwnerID != 1 {
		t.Fatalf("unexpected service: %+v", svc)
	}
	binding := env.admins.created[0]
	if binding.ServiceID != svc.ID || binding.AdminID != 555 {
		t.Fatalf("unexpected binding: %+v", binding)
	}
	if _, ok := env.sessions.Get(1); ok {
		t.Fatal("session must be cleared after commit")
	}

	registrant := env.tg.sentTo(1)
	last := registrant[len(registrant)-1].Text
	wantLink := "https://t.me/autoservice_bot?start=SVC_" + svc.ID.String()
	if !strings.Contains(last, wantLink) {
		t.Fatalf("confirmation %q does not contain %q", last, wantLink)
	}

	if notices := env.tg.sentTo(555); len(notices) != 1 || !strings.Contains(notices[0].Text, "Вас добавили администратором") {
		t.Fatalf("admin notices = %+v", notices)
	}
}

func TestRegistration_AdminResolution(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		wantMsg string
	}{
		{"unknown handle", "@ghost", texts.FormatAdminNotFound("ghost")},
		{"unknown id", "12345", texts.FormatAdminIDNotFound(12345)},
		{"bad format", "mechanic", texts.InvalidAdmin},
		{"handle with spaces", "@me chanic", texts.InvalidAdmin},
		{"id overflow", "99999999999999999999", texts.InvalidAdmin},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv()
			session := &domain.RegistrationSession{State: domain.StateWaitingAdminID, ServiceName: "Сервис"}
			env.sessions.Set(1, session)

			if err := env.svc.HandleRegistrationInput(context.Background(), actor(1), session, tc.input); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got, ok := env.sessions.Get(1); !ok || got.State != domain.StateWaitingAdminID {
				t.Fatal("session must stay in waiting_admin_id")
			}
			if len(env.tg.sent) != 1 || env.tg.sent[0].Text != tc.wantMsg {
				t.Fatalf("sent = %+v; want %q", env.tg.sent, tc.wantMsg)
			}
		})
	}
}

func TestRegistration_NumericAdminID(t *testing.T) {
	env := newTestEnv()
	session := &domain.RegistrationSession{State: domain.StateWaitingAdminID, ServiceName: "Сервис"}
	env.sessions.Set(1, session)

	if err := env.svc.HandleRegistrationInput(context.Background(), actor(1), session, " 777 "); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(env.admins.created) != 1 || env.admins.created[0].AdminID != 777 {
		t.Fatalf("bindings = %+v", env.admins.created)
	}
}

func TestRegistration_CommitFailureClearsSession(t *testing.T) {
	env := newTestEnv()
	env.admins.createErr = errBoom
	session := &domain.RegistrationSession{
		State:       domain.StateWaitingAdminID,
		ServiceName: "Сервис",
		Phone:       "+79991234567",
		City:        "Москва",
		Location:    "ул. Ленина, 1",
	}
	env.sessions.Set(1, session)

	err := env.svc.HandleRegistrationInput(context.Background(), actor(1), session, "@mechanic")
	if !domain.IsBusinessError(err) {
		t.Fatalf("err = %v; want business error", err)
	}
	if len(env.services.created) != 0 || env.services.rollbacks != 1 {
		t.Fatalf("service must be rolled back: created=%d rollbacks=%d", len(env.services.created), env.services.rollbacks)
	}
	if _, ok := env.sessions.Get(1); ok {
		t.Fatal("session must be cleared even when commit fails")
	}
	msg := env.tg.sentTo(1)[0].Text
	if !strings.Contains(msg, "Ошибка при регистрации сервиса") || !strings.Contains(msg, "boom") {
		t.Fatalf("unexpected error text %q", msg)
	}
	if len(env.tg.sentTo(555)) != 0 {
		t.Fatal("admin must not be notified when commit fails")
	}
}

func TestRegistration_AdminNoticeFailureIsNotFatal(t *testing.T) {
	env := newTestEnv()
	env.tg.failFor[555] = errBoom
	session := &domain.RegistrationSession{State: domain.StateWaitingAdminID, ServiceName: "Сервис"}
	env.sessions.Set(1, session)

	if err := env.svc.HandleRegistrationInput(context.Background(), actor(1), session, "@mechanic"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(env.services.created) != 1 || env.services.commits != 1 {
		t.Fatal("commit must stay in place")
	}
}
