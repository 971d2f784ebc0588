package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const DefaultClientName = "Не указано"

// WebAppSubmission - заявка, присланная веб-формой
type WebAppSubmission struct {
	ServiceID  *uuid.UUID
	ClientName string
	Phone      string
	Brand      string
	Model      string
	Plate      string
	Service    string // ключ типа работ
	Urgency    string // ключ срочности
	Comment    string
}

// ParseWebAppSubmission разбирает JSON формы и подставляет значения по умолчанию.
// Поле может прийти любым скаляром: числа и bool берутся как есть, null и пустые строки
// заменяются значением по умолчанию. service_id, который не является uuid, считается отсутствующим
func ParseWebAppSubmission(data string) (*WebAppSubmission, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(data), &fields); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSubmission, err)
	}

	field := func(name, def string) string {
		if v, ok := scalarText(fields[name]); ok {
			return v
		}
		return def
	}

	s := &WebAppSubmission{
		ClientName: field("client_name", DefaultClientName),
		Phone:      field("phone", Placeholder),
		Brand:      field("brand", Placeholder),
		Model:      field("model", Placeholder),
		Plate:      field("plate", Placeholder),
		Service:    field("service", Placeholder),
		Urgency:    field("urgency", Placeholder),
		Comment:    field("comment", ""),
	}

	if raw, ok := scalarText(fields["service_id"]); ok {
		if id, err := uuid.Parse(raw); err == nil {
			s.ServiceID = &id
		}
	}

	return s, nil
}

// scalarText текст скалярного значения. false - поля нет, null, пустая строка, объект или массив
func scalarText(raw json.RawMessage) (string, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return "", false
	}

	var text string
	switch raw[0] {
	case '"':
		if err := json.Unmarshal(raw, &text); err != nil {
			return "", false
		}
	case '{', '[', 'n':
		return "", false
	default:
		text = string(raw)
	}

	text = strings.TrimSpace(text)
	return text, text != ""
}

// ToRequest заявка со статусом new для сохранения
func (s *WebAppSubmission) ToRequest(clientID int64) *Request {
	return &Request{
		ID:          uuid.New(),
		ServiceID:   s.ServiceID,
		ClientName:  s.ClientName,
		Phone:       s.Phone,
		Brand:       s.Brand,
		Model:       s.Model,
		Plate:       s.Plate,
		ServiceType: s.Service,
		Urgency:     s.Urgency,
		Comment:     s.Comment,
		ClientID:    clientID,
		Status:      RequestStatusNew,
	}
}
