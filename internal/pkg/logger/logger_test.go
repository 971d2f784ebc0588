package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
)

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		cfg     *Config
		wantErr bool
	}{
		{"nil", nil, false},
		{"defaults", &Config{}, false},
		{"json debug", &Config{Encoding: "json", Level: "DEBUG"}, false},
		{"warning alias", &Config{Encoding: "console", Level: "warning"}, false},
		{"bad level", &Config{Level: "trace"}, true},
		{"bad encoding", &Config{Encoding: "xml"}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.cfg.Validate(); (err != nil) != tc.wantErr {
				t.Fatalf("Validate() = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestNewHandlerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	h, err := newHandler(&buf, &Config{Encoding: "json", Level: "warn"})
	if err != nil {
		t.Fatal(err)
	}
	log := slog.New(h).With("app", "autoservice_bot")

	log.Info("skipped")
	log.Warn("kept", "chat_id", 42)

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("expected exactly one json record, got %q: %v", buf.String(), err)
	}
	if record["msg"] != "kept" || record["app"] != "autoservice_bot" || record["chat_id"] != float64(42) {
		t.Fatalf("unexpected record: %v", record)
	}
}
