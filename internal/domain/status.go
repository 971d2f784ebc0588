package domain

import "fmt"

type RequestStatus string

const (
	RequestStatusNew      RequestStatus = "new"
	RequestStatusAccepted RequestStatus = "accepted"
	RequestStatusCalled   RequestStatus = "called"
	RequestStatusRejected RequestStatus = "rejected"
)

func (s RequestStatus) String() string {
	return string(s)
}

// Disposition решение администратора по заявке, закрытый набор
type Disposition string

const (
	DispositionAccepted Disposition = "accepted"
	DispositionCalled   Disposition = "called"
	DispositionRejected Disposition = "rejected"
)

var dispositionLabels = map[Disposition]string{
	DispositionAccepted: "✅ Принято",
	DispositionCalled:   "📞 Связались",
	DispositionRejected: "❌ Отказ",
}

// Dispositions порядок кнопок в уведомлении администратору
var Dispositions = []Disposition{DispositionAccepted, DispositionCalled, DispositionRejected}

func ParseDisposition(s string) (Disposition, error) {
	d := Disposition(s)
	if _, ok := dispositionLabels[d]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidDisposition, s)
	}
	return d, nil
}

func (d Disposition) Label() string {
	return dispositionLabels[d]
}

func (d Disposition) Status() RequestStatus {
	return RequestStatus(d)
}

// Label подпись статуса для списков
func (s RequestStatus) Label() string {
	if s == RequestStatusNew {
		return "🆕 Новая"
	}
	if label, ok := dispositionLabels[Disposition(s)]; ok {
		return label
	}
	return string(s)
}
