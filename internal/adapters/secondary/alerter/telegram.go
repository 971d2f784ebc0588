package alerter

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/TATR0/bot-service/internal/adapters/secondary/telegram"
)

//согл, что чистота нарушена, но тут выбор в пользу делегирования ответственности другому адаптеру

// Client отправляет сообщения в общий чат (или топик форума)
type Client struct {
	telegramClient  *telegram.Client
	chatID          int64
	messageThreadID int64
	log             *slog.Logger
}

// NewClient nil, если общий чат не настроен
func NewClient(cfg *Config, tgCfg *telegram.Config, log *slog.Logger) *Client {
	if !cfg.Enabled() {
		return nil
	}

	token := cfg.BotToken
	if token == "" {
		token = tgCfg.BotToken
	}

	return &Client{
		telegramClient:  telegram.NewClientWithURL(tgCfg.APIURL, token, log),
		chatID:          cfg.ChatID,
		messageThreadID: cfg.MessageThreadID,
		log:             log,
	}
}

// SendAlert отправляет HTML-сообщение в общий чат
func (c *Client) SendAlert(ctx context.Context, message string) error {
	if c == nil || c.telegramClient == nil {
		return fmt.Errorf("alerter client is not initialized")
	}

	if err := c.telegramClient.SendToThread(ctx, c.chatID, c.messageThreadID, message); err != nil {
		c.log.Warn("failed to send alert",
			"error", err,
			"chat_id", c.chatID,
			"message_thread_id", c.messageThreadID,
		)
		return fmt.Errorf("failed to send alert: %w", err)
	}

	c.log.Debug("alert sent successfully",
		"chat_id", c.chatID,
		"message_thread_id", c.messageThreadID,
	)
	return nil
}
