package alerter

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/TATR0/bot-service/internal/adapters/secondary/telegram"
)

func TestNewClient_DisabledWithoutChat(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	if NewClient(nil, &telegram.Config{BotToken: "T"}, log) != nil {
		t.Error("nil config must disable alerter")
	}
	if NewClient(&Config{}, &telegram.Config{BotToken: "T"}, log) != nil {
		t.Error("zero chat id must disable alerter")
	}
}

func TestSendAlert_ToTopicWithMainToken(t *testing.T) {
	var path string
	var body map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&body)
		_, _ = io.WriteString(w, `{"ok":true,"result":{"message_id":1}}`)
	}))
	defer srv.Close()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := NewClient(&Config{ChatID: -1001, MessageThreadID: 7}, &telegram.Config{BotToken: "MAIN", APIURL: srv.URL}, log)

	if err := client.SendAlert(context.Background(), "⚠️ <b>ЗАЯВКА БЕЗ СЕРВИСА</b>"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != "/botMAIN/sendMessage" {
		t.Errorf("unexpected path %s", path)
	}
	if body["chat_id"] != float64(-1001) || body["message_thread_id"] != float64(7) {
		t.Errorf("unexpected body %v", body)
	}
}
