package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/TATR0/bot-service/internal/domain"
	"github.com/TATR0/bot-service/internal/ports/telegram"
)

const (
	defaultAPIURL = "https://api.telegram.org"
	apiTimeout    = 30 * time.Second
	parseModeHTML = "HTML"
)

var _ telegram.IClient = (*Client)(nil)

// Client клиент для работы с Telegram Bot API
type Client struct {
	httpClient *http.Client
	baseURL    string
	log        *slog.Logger
}

// NewClient создаёт новый клиент для Telegram Bot API
func NewClient(token string, log *slog.Logger) *Client {
	return NewClientWithURL(defaultAPIURL, token, log)
}

// NewClientWithURL клиент для своего Bot API сервера (или httptest в тестах)
func NewClientWithURL(apiURL string, token string, log *slog.Logger) *Client {
	if apiURL == "" {
		apiURL = defaultAPIURL
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: apiTimeout,
		},
		baseURL: strings.TrimSuffix(apiURL, "/") + "/bot" + token,
		log:     log,
	}
}

// SendMessageRequest запрос на отправку сообщения
type SendMessageRequest struct {
	ChatID                int64                  `json:"chat_id"`
	MessageThreadID       int64                  `json:"message_thread_id,omitempty"`
	Text                  string                 `json:"text"`
	ParseMode             string                 `json:"parse_mode,omitempty"`
	DisableWebPagePreview bool                   `json:"disable_web_page_preview,omitempty"`
	ReplyMarkup           map[string]interface{} `json:"reply_markup,omitempty"`
}

// SendMessageResult результат отправки сообщения
type SendMessageResult struct {
	MessageID int64 `json:"message_id"`
}

// SendMessage отправляет текстовое сообщение
func (c *Client) SendMessage(ctx context.Context, chatID int64, text string) error {
	return c.sendMessage(ctx, SendMessageRequest{
		ChatID: chatID,
		Text:   text,
	})
}

// SendMessageWithKeyboard отправляет сообщение с клавиатурой
func (c *Client) SendMessageWithKeyboard(ctx context.Context, chatID int64, text string, keyboard map[string]interface{}) error {
	return c.sendMessage(ctx, SendMessageRequest{
		ChatID:      chatID,
		Text:        text,
		ReplyMarkup: keyboard,
	})
}

// SendToThread отправляет сообщение в тему форума (threadID 0 - в общий чат)
func (c *Client) SendToThread(ctx context.Context, chatID int64, threadID int64, text string) error {
	return c.sendMessage(ctx, SendMessageRequest{
		ChatID:          chatID,
		MessageThreadID: threadID,
		Text:            text,
	})
}

func (c *Client) sendMessage(ctx context.Context, req SendMessageRequest) error {
	req.ParseMode = parseModeHTML
	req.DisableWebPagePreview = true

	var result SendMessageResult
	if err := c.call(ctx, c.httpClient, "sendMessage", req, &result); err != nil {
		c.log.Error("failed to send message",
			"error", err,
			"chat_id", req.ChatID,
		)
		return err
	}

	c.log.Debug("message sent successfully",
		"chat_id", req.ChatID,
		"message_id", result.MessageID,
	)
	return nil
}

// EditMessageTextRequest запрос на редактирование текста сообщения
type EditMessageTextRequest struct {
	ChatID                int64  `json:"chat_id"`
	MessageID             int64  `json:"message_id"`
	Text                  string `json:"text"`
	ParseMode             string `json:"parse_mode,omitempty"`
	DisableWebPagePreview bool   `json:"disable_web_page_preview,omitempty"`
}

// EditMessageText заменяет текст сообщения; inline-клавиатура при этом убирается
func (c *Client) EditMessageText(ctx context.Context, chatID int64, messageID int64, text string) error {
	req := EditMessageTextRequest{
		ChatID:                chatID,
		MessageID:             messageID,
		Text:                  text,
		ParseMode:             parseModeHTML,
		DisableWebPagePreview: true,
	}
	if err := c.call(ctx, c.httpClient, "editMessageText", req, nil); err != nil {
		c.log.Error("failed to edit message",
			"error", err,
			"chat_id", chatID,
			"message_id", messageID,
		)
		return err
	}

	c.log.Debug("message edited successfully", "chat_id", chatID, "message_id", messageID)
	return nil
}

// AnswerCallbackQueryRequest запрос на ответ callback query
type AnswerCallbackQueryRequest struct {
	CallbackQueryID string `json:"callback_query_id"`
	Text            string `json:"text,omitempty"`
	ShowAlert       bool   `json:"show_alert,omitempty"`
}

// AnswerCallbackQuery отправляет ответ на callback query
func (c *Client) AnswerCallbackQuery(ctx context.Context, callbackID string, text string, showAlert bool) error {
	req := AnswerCallbackQueryRequest{
		CallbackQueryID: callbackID,
		Text:            text,
		ShowAlert:       showAlert,
	}
	if err := c.call(ctx, c.httpClient, "answerCallbackQuery", req, nil); err != nil {
		c.log.Error("failed to answer callback query",
			"error", err,
			"callback_id", callbackID,
		)
		return err
	}

	c.log.Debug("callback query answered successfully", "callback_id", callbackID)
	return nil
}

// GetChat информация о чате; chatRef - "@username" или числовой id
func (c *Client) GetChat(ctx context.Context, chatRef string) (*domain.ChatInfo, error) {
	req := struct {
		ChatID string `json:"chat_id"`
	}{ChatID: chatRef}

	var info domain.ChatInfo
	if err := c.call(ctx, c.httpClient, "getChat", req, &info); err != nil {
		c.log.Warn("getChat failed", "error", err, "chat_ref", chatRef)
		return nil, fmt.Errorf("get chat %s: %w", chatRef, err)
	}
	return &info, nil
}

// GetMe получает информацию о боте
func (c *Client) GetMe(ctx context.Context) (*domain.BotInfo, error) {
	var info domain.BotInfo
	if err := c.call(ctx, c.httpClient, "getMe", nil, &info); err != nil {
		c.log.Error("getMe failed", "error", err)
		return nil, fmt.Errorf("getMe: %w", err)
	}

	c.log.Info("bot info retrieved successfully", "username", info.Username)
	return &info, nil
}

// BotCommand представляет команду бота
type BotCommand struct {
	Command     string `json:"command"`
	Description string `json:"description"`
}

// SetMyCommands регистрирует команды бота в меню
func (c *Client) SetMyCommands(ctx context.Context, commands []BotCommand) error {
	req := struct {
		Commands []BotCommand `json:"commands"`
	}{Commands: commands}

	if err := c.call(ctx, c.httpClient, "setMyCommands", req, nil); err != nil {
		c.log.Error("failed to register bot commands", "error", err)
		return err
	}

	c.log.Info("bot commands registered successfully", "commands_count", len(commands))
	return nil
}

// SetWebhook включает webhook; secret придёт в X-Telegram-Bot-Api-Secret-Token
func (c *Client) SetWebhook(ctx context.Context, url string, secret string) error {
	req := struct {
		URL            string   `json:"url"`
		SecretToken    string   `json:"secret_token,omitempty"`
		AllowedUpdates []string `json:"allowed_updates"`
	}{
		URL:            url,
		SecretToken:    secret,
		AllowedUpdates: allowedUpdates,
	}

	if err := c.call(ctx, c.httpClient, "setWebhook", req, nil); err != nil {
		c.log.Error("failed to set webhook", "error", err, "url", url)
		return err
	}

	c.log.Info("webhook set successfully", "url", url)
	return nil
}

// DeleteWebhook удаляет webhook (нужно вызывать перед запуском polling)
func (c *Client) DeleteWebhook(ctx context.Context) error {
	req := struct {
		DropPendingUpdates bool `json:"drop_pending_updates"`
	}{DropPendingUpdates: true}

	if err := c.call(ctx, c.httpClient, "deleteWebhook", req, nil); err != nil {
		c.log.Warn("deleteWebhook failed", "error", err)
		return err
	}

	c.log.Info("webhook deleted successfully")
	return nil
}
