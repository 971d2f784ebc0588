package domain

import "strings"

// Кнопки меню администратора
const (
	MenuMyRequests      = "📋 Мои заявки"
	MenuRegisterService = "📝 Зарегистрировать новый сервис"
	MenuAboutService    = "ℹ️ О моем сервисе"
)

// Команды бота
const (
	CommandStart           = "start"
	CommandRegisterService = "register_service"
)

// Actor - кто прислал событие и куда отвечать
type Actor struct {
	UserID   int64
	ChatID   int64
	Username string
}

// Event - входящее событие, разобранное один раз на границе.
// Конкретные типы: EventStart, EventCommand, EventMenu, EventText, EventWebAppData, EventAction
type Event interface {
	Actor() Actor
	isEvent()
}

type baseEvent struct {
	actor Actor
}

func (e baseEvent) Actor() Actor { return e.actor }
func (baseEvent) isEvent()       {}

// EventStart - /start с необязательным параметром
type EventStart struct {
	baseEvent
	Token string
}

// EventCommand - любая команда кроме /start
type EventCommand struct {
	baseEvent
	Name string
	Args string
}

// EventMenu - нажатие кнопки меню администратора
type EventMenu struct {
	baseEvent
	Item string
}

// EventText - произвольный текст
type EventText struct {
	baseEvent
	Text string
}

// EventWebAppData - данные из веб-формы (JSON)
type EventWebAppData struct {
	baseEvent
	Payload string
}

// EventAction - нажатие inline-кнопки
type EventAction struct {
	baseEvent
	CallbackID string
	Data       string
	Message    *Message
}

// ParseEvent классифицирует update. false - событие не поддерживается
func ParseEvent(update *Update) (Event, bool) {
	if update == nil {
		return nil, false
	}

	if cb := update.CallbackQuery; cb != nil {
		if cb.Data == nil {
			return nil, false
		}
		actor := Actor{}
		if cb.From != nil {
			actor = actorFromUser(cb.From)
			actor.ChatID = cb.From.ID
		}
		if cb.Message != nil && cb.Message.Chat != nil {
			actor.ChatID = cb.Message.Chat.ID
		}
		return EventAction{
			baseEvent:  baseEvent{actor: actor},
			CallbackID: cb.ID,
			Data:       *cb.Data,
			Message:    cb.Message,
		}, true
	}

	msg := update.Message
	if msg == nil || msg.Chat == nil {
		return nil, false
	}

	actor := Actor{ChatID: msg.Chat.ID}
	if msg.From != nil {
		a := actorFromUser(msg.From)
		actor.UserID, actor.Username = a.UserID, a.Username
	}
	base := baseEvent{actor: actor}

	if msg.WebAppData != nil {
		return EventWebAppData{baseEvent: base, Payload: msg.WebAppData.Data}, true
	}

	if msg.Text == nil {
		return nil, false
	}
	text := *msg.Text

	if name, args, ok := parseCommand(text); ok {
		if name == CommandStart {
			return EventStart{baseEvent: base, Token: firstField(args)}, true
		}
		return EventCommand{baseEvent: base, Name: name, Args: args}, true
	}

	switch strings.TrimSpace(text) {
	case MenuMyRequests, MenuRegisterService, MenuAboutService:
		return EventMenu{baseEvent: base, Item: strings.TrimSpace(text)}, true
	}

	return EventText{baseEvent: base, Text: text}, true
}

func actorFromUser(u *TelegramUser) Actor {
	a := Actor{UserID: u.ID}
	if u.Username != nil {
		a.Username = *u.Username
	}
	return a
}

// parseCommand разбирает "/cmd@bot args"
func parseCommand(text string) (string, string, bool) {
	if !strings.HasPrefix(text, "/") {
		return "", "", false
	}

	head, args, _ := strings.Cut(strings.TrimSpace(text[1:]), " ")
	name, _, _ := strings.Cut(head, "@")
	if name == "" {
		return "", "", false
	}

	return strings.ToLower(name), strings.TrimSpace(args), true
}

func firstField(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
