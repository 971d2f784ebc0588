package autoservice

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/TATR0/bot-service/internal/adapters/secondary/storage/inmemory"
	"github.com/TATR0/bot-service/internal/domain"
	"github.com/TATR0/bot-service/internal/ports/persistence"
	"github.com/google/uuid"
)

var errBoom = errors.New("boom")

type sentMessage struct {
	ChatID   int64
	Text     string
	Keyboard map[string]interface{}
}

type editedMessage struct {
	ChatID    int64
	MessageID int64
	Text      string
}

type callbackAnswer struct {
	ID        string
	Text      string
	ShowAlert bool
}

type fakeTelegram struct {
	mu      sync.Mutex
	sent    []sentMessage
	edits   []editedMessage
	answers []callbackAnswer
	failFor map[int64]error
	editErr error
}

func (f *fakeTelegram) SendMessage(ctx context.Context, chatID int64, text string) error {
	return f.SendMessageWithKeyboard(ctx, chatID, text, nil)
}

func (f *fakeTelegram) SendMessageWithKeyboard(_ context.Context, chatID int64, text string, keyboard map[string]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, sentMessage{ChatID: chatID, Text: text, Keyboard: keyboard})
	return f.failFor[chatID]
}

func (f *fakeTelegram) EditMessageText(_ context.Context, chatID, messageID int64, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.edits = append(f.edits, editedMessage{ChatID: chatID, MessageID: messageID, Text: text})
	return f.editErr
}

func (f *fakeTelegram) AnswerCallbackQuery(_ context.Context, callbackID, text string, showAlert bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.answers = append(f.answers, callbackAnswer{ID: callbackID, Text: text, ShowAlert: showAlert})
	return nil
}

func (f *fakeTelegram) GetChat(context.Context, string) (*domain.ChatInfo, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeTelegram) GetMe(context.Context) (*domain.BotInfo, error) {
	return &domain.BotInfo{Username: "autoservice_bot"}, nil
}

func (f *fakeTelegram) sentTo(chatID int64) []sentMessage {
	var out []sentMessage
	for _, m := range f.sent {
		if m.ChatID == chatID {
			out = append(out, m)
		}
	}
	return out
}

type fakeServiceRepo struct {
	byAdmin   map[int64][]*domain.Service
	byOwner   map[int64][]*domain.Service
	created   []*domain.Service
	createErr error
	listErr   error
	commits   int
	rollbacks int
}

func (f *fakeServiceRepo) CreateTx(_ context.Context, _ persistence.Transaction, s *domain.Service) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, s)
	return nil
}

func (f *fakeServiceRepo) GetByOwnerID(_ context.Context, ownerID int64) ([]*domain.Service, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]*domain.Service{}, f.byOwner[ownerID]...), nil
}

func (f *fakeServiceRepo) GetByCity(context.Context, string) ([]*domain.Service, error) {
	return []*domain.Service{}, nil
}

func (f *fakeServiceRepo) ListCities(context.Context) ([]string, error) {
	return []string{}, nil
}

func (f *fakeServiceRepo) GetByAdminID(_ context.Context, adminID int64) ([]*domain.Service, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]*domain.Service{}, f.byAdmin[adminID]...), nil
}

// WithTransaction откатывает всё, что создано внутри fn, если fn вернула ошибку
func (f *fakeServiceRepo) WithTransaction(ctx context.Context, fn func(context.Context, persistence.Transaction) error) error {
	before := len(f.created)
	if err := fn(ctx, nil); err != nil {
		f.created = f.created[:before]
		f.rollbacks++
		return err
	}
	f.commits++
	return nil
}

type fakeAdminRepo struct {
	bindings  map[uuid.UUID][]*domain.AdminBinding
	created   []*domain.AdminBinding
	createErr error
	getErr    error
}

func (f *fakeAdminRepo) CreateTx(_ context.Context, _ persistence.Transaction, b *domain.AdminBinding) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, b)
	return nil
}

func (f *fakeAdminRepo) GetByServiceID(_ context.Context, serviceID uuid.UUID) ([]*domain.AdminBinding, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return append([]*domain.AdminBinding{}, f.bindings[serviceID]...), nil
}

func (f *fakeAdminRepo) bind(serviceID uuid.UUID, adminIDs ...int64) {
	if f.bindings == nil {
		f.bindings = map[uuid.UUID][]*domain.AdminBinding{}
	}
	for _, id := range adminIDs {
		f.bindings[serviceID] = append(f.bindings[serviceID], &domain.AdminBinding{ID: uuid.New(), ServiceID: serviceID, AdminID: id})
	}
}

type fakeRequestRepo struct {
	requests  map[uuid.UUID]*domain.Request
	createErr error
	updateErr error
	limits    []int
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{requests: map[uuid.UUID]*domain.Request{}}
}

func (f *fakeRequestRepo) Create(_ context.Context, r *domain.Request) error {
	if f.createErr != nil {
		return f.createErr
	}
	r.Status = domain.RequestStatusNew
	f.requests[r.ID] = r
	return nil
}

func (f *fakeRequestRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Request, error) {
	r, ok := f.requests[id]
	if !ok {
		return nil, domain.ErrRequestNotFound
	}
	cp := *r
	return &cp, nil
}

func (f *fakeRequestRepo) UpdateStatus(_ context.Context, id uuid.UUID, status domain.RequestStatus) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	r, ok := f.requests[id]
	if !ok {
		return domain.ErrRequestNotFound
	}
	r.Status = status
	return nil
}

func (f *fakeRequestRepo) GetByServiceID(_ context.Context, serviceID uuid.UUID, limit int) ([]*domain.Request, error) {
	f.limits = append(f.limits, limit)
	out := []*domain.Request{}
	for _, r := range f.requests {
		if r.ServiceID != nil && *r.ServiceID == serviceID {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeDirectory map[string]int64

func (d fakeDirectory) ResolveActor(_ context.Context, ref string) (int64, error) {
	if id, ok := d[ref]; ok {
		return id, nil
	}
	return 0, domain.ErrActorNotFound
}

type fakeAlerter struct {
	messages []string
	err      error
}

func (f *fakeAlerter) SendAlert(_ context.Context, message string) error {
	f.messages = append(f.messages, message)
	return f.err
}

type fakeProducer struct {
	events []domain.RequestEvent
	err    error
}

func (f *fakeProducer) PublishRequestEvent(_ context.Context, e domain.RequestEvent) error {
	f.events = append(f.events, e)
	return f.err
}

func (f *fakeProducer) Close() error { return nil }

type testEnv struct {
	svc      *Service
	tg       *fakeTelegram
	services *fakeServiceRepo
	admins   *fakeAdminRepo
	requests *fakeRequestRepo
	index    *inmemory.RequestIndex
	sessions *inmemory.SessionStore
}

var fixedNow = time.Date(2025, 3, 14, 9, 5, 0, 0, time.UTC)

func newTestEnv() *testEnv {
	tg := &fakeTelegram{failFor: map[int64]error{}}
	services := &fakeServiceRepo{byAdmin: map[int64][]*domain.Service{}, byOwner: map[int64][]*domain.Service{}}
	admins := &fakeAdminRepo{}
	requests := newFakeRequestRepo()
	index := inmemory.NewRequestIndex(100, time.Hour)
	sessions := inmemory.NewSessionStore()
	directory := fakeDirectory{"@mechanic": 555, "777": 777}

	svc := New(services, admins, requests, tg, directory, sessions, index,
		"https://form.example.com/", "autoservice_bot",
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
	svc.now = func() time.Time { return fixedNow }

	return &testEnv{svc: svc, tg: tg, services: services, admins: admins, requests: requests, index: index, sessions: sessions}
}

func actor(id int64) domain.Actor {
	return domain.Actor{UserID: id, ChatID: id}
}
