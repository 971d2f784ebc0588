package domain

const Placeholder = "—"

var serviceTypeLabels = map[string]string{
	"diagnostic":   "Диагностика",
	"oil-change":   "Замена масла",
	"tires":        "Шины и диски",
	"brake":        "Тормозная система",
	"engine":       "Ремонт двигателя",
	"transmission": "Коробка передач",
	"suspension":   "Подвеска",
	"body":         "Кузовные работы",
	"other":        "Другое",
}

var urgencyLabels = map[string]string{
	"low":    "Обычный (7+ дней)",
	"medium": "Средний (3-5 дней)",
	"high":   "Срочный (1-2 дня)",
	"urgent": "Очень срочный (сегодня)",
}

// ServiceTypeLabel название типа работ; неизвестный ключ возвращается как есть
func ServiceTypeLabel(key string) string {
	return labelOrKey(serviceTypeLabels, key)
}

// UrgencyLabel название срочности; неизвестный ключ возвращается как есть
func UrgencyLabel(key string) string {
	return labelOrKey(urgencyLabels, key)
}

func labelOrKey(labels map[string]string, key string) string {
	if label, ok := labels[key]; ok {
		return label
	}
	if key == "" {
		return Placeholder
	}
	return key
}
