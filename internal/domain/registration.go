package domain

type RegistrationState string

// Состояния регистрации строго по порядку, без возврата назад
const (
	StateWaitingName     RegistrationState = "waiting_name"
	StateWaitingPhone    RegistrationState = "waiting_phone"
	StateWaitingCity     RegistrationState = "waiting_city"
	StateWaitingLocation RegistrationState = "waiting_location"
	StateWaitingAdminID  RegistrationState = "waiting_admin_id"
)

// Минимальные длины полей (в символах, после trim)
const (
	MinServiceNameLen = 3
	MinPhoneLen       = 10
	MinCityLen        = 2
	MinLocationLen    = 5
)

func (s RegistrationState) String() string {
	return string(s)
}

// RegistrationSession состояние диалога регистрации сервиса для одного чата
type RegistrationSession struct {
	State       RegistrationState
	ServiceName string
	Phone       string
	City        string
	Location    string
}

// NewRegistrationSession новая сессия в начальном состоянии
func NewRegistrationSession() *RegistrationSession {
	return &RegistrationSession{State: StateWaitingName}
}
