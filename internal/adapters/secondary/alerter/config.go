package alerter

type Config struct {
	BotToken        string `envconfig:"BOT_TOKEN"` // если пусто, используется токен основного бота
	ChatID          int64  `envconfig:"CHAT_ID"`
	MessageThreadID int64  `envconfig:"MESSAGE_THREAD_ID"` // 0 - без топика
}

// Enabled общий чат задан
func (c *Config) Enabled() bool {
	return c != nil && c.ChatID != 0
}
