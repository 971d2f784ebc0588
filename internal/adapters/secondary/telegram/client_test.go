package telegram

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/TATR0/bot-service/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type capturedCall struct {
	path string
	body map[string]interface{}
}

func newTestServer(t *testing.T, respond func(method string) string) (*httptest.Server, *[]capturedCall) {
	t.Helper()
	calls := &[]capturedCall{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body := map[string]interface{}{}
		raw, _ := io.ReadAll(r.Body)
		if len(raw) > 0 {
			_ = json.Unmarshal(raw, &body)
		}
		*calls = append(*calls, capturedCall{path: r.URL.Path, body: body})
		method := r.URL.Path[strings.LastIndex(r.URL.Path, "/")+1:]
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, respond(method))
	}))
	t.Cleanup(srv.Close)
	return srv, calls
}

func TestSendMessage_UsesHTMLParseMode(t *testing.T) {
	srv, calls := newTestServer(t, func(string) string {
		return `{"ok":true,"result":{"message_id":11}}`
	})
	client := NewClientWithURL(srv.URL, "TOKEN", testLogger())

	keyboard := map[string]interface{}{"inline_keyboard": [][]map[string]string{{{"text": "x", "callback_data": "y"}}}}
	if err := client.SendMessageWithKeyboard(context.Background(), 42, "<b>hi</b>", keyboard); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(*calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(*calls))
	}
	call := (*calls)[0]
	if call.path != "/botTOKEN/sendMessage" {
		t.Errorf("unexpected path %s", call.path)
	}
	if call.body["parse_mode"] != "HTML" || call.body["text"] != "<b>hi</b>" {
		t.Errorf("unexpected body %v", call.body)
	}
	if call.body["chat_id"] != float64(42) {
		t.Errorf("unexpected chat id %v", call.body["chat_id"])
	}
	if _, ok := call.body["reply_markup"]; !ok {
		t.Error("keyboard must be sent")
	}
}

func TestCall_APIError(t *testing.T) {
	srv, _ := newTestServer(t, func(string) string {
		return `{"ok":false,"error_code":400,"description":"Bad Request: chat not found"}`
	})
	client := NewClientWithURL(srv.URL, "TOKEN", testLogger())

	err := client.SendMessage(context.Background(), 1, "x")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Code != 400 || apiErr.Method != "sendMessage" {
		t.Errorf("unexpected api error %+v", apiErr)
	}
}

func TestDirectory_ResolveActor(t *testing.T) {
	srv, calls := newTestServer(t, func(string) string {
		return `{"ok":true,"result":{"id":777,"type":"private","username":"petr"}}`
	})
	dir := NewDirectory(NewClientWithURL(srv.URL, "TOKEN", testLogger()))

	id, err := dir.ResolveActor(context.Background(), "@petr")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 777 {
		t.Errorf("expected 777, got %d", id)
	}
	if (*calls)[0].body["chat_id"] != "@petr" {
		t.Errorf("unexpected chat ref %v", (*calls)[0].body["chat_id"])
	}
}

func TestDirectory_ResolveActorNotFound(t *testing.T) {
	srv, _ := newTestServer(t, func(string) string {
		return `{"ok":false,"error_code":400,"description":"Bad Request: chat not found"}`
	})
	dir := NewDirectory(NewClientWithURL(srv.URL, "TOKEN", testLogger()))

	_, err := dir.ResolveActor(context.Background(), "123456")
	if !errors.Is(err, domain.ErrActorNotFound) {
		t.Fatalf("expected ErrActorNotFound, got %v", err)
	}
}

func TestPoller_HandlesUpdatesAndAdvancesOffset(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	served := 0
	srv, calls := newTestServer(t, func(method string) string {
		if method != "getUpdates" {
			return `{"ok":true}`
		}
		served++
		if served == 1 {
			return `{"ok":true,"result":[{"update_id":5,"message":{"message_id":1,"chat":{"id":9},"text":"hi"}}]}`
		}
		cancel()
		return `{"ok":true,"result":[]}`
	})
	client := NewClientWithURL(srv.URL, "TOKEN", testLogger())

	var handled []int64
	poller := NewPoller(client, &Config{PollingTimeout: 1}, func(_ context.Context, u *domain.Update) error {
		handled = append(handled, u.UpdateID)
		return nil
	}, testLogger())

	if err := poller.Start(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(handled) != 1 || handled[0] != 5 {
		t.Fatalf("unexpected handled updates %v", handled)
	}
	if (*calls)[1].body["offset"] != float64(6) {
		t.Errorf("offset must advance to 6, got %v", (*calls)[1].body["offset"])
	}
}
