package autoservice

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/TATR0/bot-service/internal/domain"
	"github.com/TATR0/bot-service/internal/usecases/autoservice/texts"
	"github.com/google/uuid"
)

const clientID = 42

func submissionJSON(t *testing.T, serviceID string) string {
	t.Helper()
	payload := map[string]string{
		"client_name": "Иван",
		"phone":       "+79990000000",
		"brand":       "Lada",
		"model":       "Vesta",
		"plate":       "А123ВС77",
		"service":     "diagnostic",
		"urgency":     "high",
		"comment":     "стучит <подвеска>",
	}
	if serviceID != "" {
		payload["service_id"] = serviceID
	}
	b, err := json.Marshal(payload)
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}

func onlyRequest(t *testing.T, repo *fakeRequestRepo) *domain.Request {
	t.Helper()
	if len(repo.requests) != 1 {
		t.Fatalf("requests = %d; want 1", len(repo.requests))
	}
	for _, r := range repo.requests {
		return r
	}
	return nil
}

func TestIntake_FanOutToUniqueAdmins(t *testing.T) {
	env := newTestEnv()
	producer := &fakeProducer{}
	env.svc.Events = producer
	serviceID := uuid.New()
	env.admins.bind(serviceID, 10, 20, 20)
	env.tg.failFor[10] = errBoom

	err := env.svc.HandleWebAppData(context.Background(), actor(clientID), submissionJSON(t, serviceID.String()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := onlyRequest(t, env.requests)
	if req.ServiceID == nil || *req.ServiceID != serviceID || req.Status != domain.RequestStatusNew {
		t.Fatalf("unexpected request: %+v", req)
	}

	for _, adminID := range []int64{10, 20} {
		msgs := env.tg.sentTo(adminID)
		if len(msgs) != 1 {
			t.Fatalf("admin %d got %d messages; want 1", adminID, len(msgs))
		}
		if msgs[0].Keyboard["inline_keyboard"] == nil {
			t.Fatalf("admin %d message has no status buttons", adminID)
		}
		body := msgs[0].Text
		for _, want := range []string{"Иван", "Диагностика", "Срочный (1-2 дня)", "14.03.2025 09:05", req.ID.String(), "стучит &lt;подвеска&gt;"} {
			if !strings.Contains(body, want) {
				t.Fatalf("admin body misses %q:\n%s", want, body)
			}
		}
	}

	confirmations := env.tg.sentTo(clientID)
	if len(confirmations) != 1 || confirmations[0].Text != texts.FormatRequestAccepted(req.ID) {
		t.Fatalf("client confirmations = %+v", confirmations)
	}

	entry, ok, _ := env.index.Get(context.Background(), req.ID)
	if !ok || entry.ClientID != clientID || entry.Name != "Иван" {
		t.Fatalf("index entry = %+v, %v", entry, ok)
	}

	if len(producer.events) != 1 || producer.events[0].Type != domain.RequestEventCreated {
		t.Fatalf("events = %+v", producer.events)
	}
}

func TestIntake_NoAdminsNoFallbackIsUnrouted(t *testing.T) {
	env := newTestEnv()

	err := env.svc.HandleWebAppData(context.Background(), actor(clientID), submissionJSON(t, uuid.NewString()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := onlyRequest(t, env.requests)
	if len(env.tg.sent) != 1 || env.tg.sent[0].ChatID != clientID {
		t.Fatalf("only the client confirmation expected, got %+v", env.tg.sent)
	}
	if env.tg.sent[0].Text != texts.FormatRequestAccepted(req.ID) {
		t.Fatalf("unexpected confirmation %q", env.tg.sent[0].Text)
	}
}

func TestIntake_FallbackBroadcast(t *testing.T) {
	cases := []struct {
		name      string
		serviceID string
	}{
		{"no service reference", ""},
		{"service without admins", uuid.NewString()},
		{"unparseable service reference", "not-a-uuid"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv()
			fallback := &fakeAlerter{}
			env.svc.Fallback = fallback

			if err := env.svc.HandleWebAppData(context.Background(), actor(clientID), submissionJSON(t, tc.serviceID)); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(fallback.messages) != 1 || !strings.HasPrefix(fallback.messages[0], texts.NoServicePrefix) {
				t.Fatalf("fallback messages = %q", fallback.messages)
			}
			if len(env.tg.sentTo(clientID)) != 1 {
				t.Fatal("client must be confirmed")
			}
		})
	}
}

func TestIntake_FallbackFailureStillConfirms(t *testing.T) {
	env := newTestEnv()
	env.svc.Fallback = &fakeAlerter{err: errBoom}

	if err := env.svc.HandleWebAppData(context.Background(), actor(clientID), submissionJSON(t, "")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(env.tg.sentTo(clientID)) != 1 {
		t.Fatal("client must be confirmed")
	}
}

func TestIntake_AdminLookupFailureFallsBack(t *testing.T) {
	env := newTestEnv()
	fallback := &fakeAlerter{}
	env.svc.Fallback = fallback
	env.admins.getErr = errBoom

	if err := env.svc.HandleWebAppData(context.Background(), actor(clientID), submissionJSON(t, uuid.NewString())); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fallback.messages) != 1 {
		t.Fatalf("fallback messages = %d; want 1", len(fallback.messages))
	}
}

func TestIntake_MalformedPayload(t *testing.T) {
	env := newTestEnv()

	err := env.svc.HandleWebAppData(context.Background(), actor(clientID), "{not json")
	if !domain.IsBusinessError(err) {
		t.Fatalf("err = %v; want business error", err)
	}
	if len(env.requests.requests) != 0 {
		t.Fatal("nothing must be persisted")
	}
	if len(env.tg.sent) != 1 || env.tg.sent[0].Text != texts.RequestParseError {
		t.Fatalf("sent = %+v", env.tg.sent)
	}
}

func TestIntake_PersistFailureStops(t *testing.T) {
	env := newTestEnv()
	fallback := &fakeAlerter{}
	env.svc.Fallback = fallback
	env.requests.createErr = errBoom

	err := env.svc.HandleWebAppData(context.Background(), actor(clientID), submissionJSON(t, ""))
	if !domain.IsBusinessError(err) {
		t.Fatalf("err = %v; want business error", err)
	}
	if len(fallback.messages) != 0 {
		t.Fatal("nothing must be routed when persistence fails")
	}
	if len(env.tg.sent) != 1 || env.tg.sent[0].Text != texts.RequestSaveError {
		t.Fatalf("sent = %+v", env.tg.sent)
	}
}

func TestIntake_DefaultsForMissingFields(t *testing.T) {
	env := newTestEnv()

	if err := env.svc.HandleWebAppData(context.Background(), actor(clientID), `{}`); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	req := onlyRequest(t, env.requests)
	if req.ClientName != domain.DefaultClientName || req.Phone != domain.Placeholder || req.Comment != "" {
		t.Fatalf("defaults not applied: %+v", req)
	}
}

func TestIntake_NumericFieldsAreAccepted(t *testing.T) {
	env := newTestEnv()

	payload := `{"client_name":"Иван","phone":79991234567,"brand":"Lada","plate":123}`
	if err := env.svc.HandleWebAppData(context.Background(), actor(clientID), payload); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := onlyRequest(t, env.requests)
	if req.Phone != "79991234567" || req.Plate != "123" || req.Brand != "Lada" {
		t.Fatalf("unexpected request: %+v", req)
	}

	confirmations := env.tg.sentTo(clientID)
	if len(confirmations) != 1 || !strings.Contains(confirmations[0].Text, req.ID.String()) {
		t.Fatalf("client confirmation = %+v", confirmations)
	}
}
