package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

const (
	encodingJSON    = "json"
	encodingConsole = "console"
)

type Config struct {
	Encoding string `envconfig:"ENCODING" default:"console"`
	Level    string `envconfig:"LEVEL" default:"info"`
}

// Validate пустые значения допустимы, подставляются значения по умолчанию
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	if _, err := parseLevel(c.Level); err != nil {
		return err
	}
	switch c.Encoding {
	case "", encodingJSON, encodingConsole:
		return nil
	default:
		return fmt.Errorf("invalid logger config: encoding %s is not supported", c.Encoding)
	}
}

// New json пишет в stdout, console - в stderr. Некорректный конфиг - паника
func New(app string, cfg *Config) *slog.Logger {
	out := io.Writer(os.Stderr)
	if cfg != nil && cfg.Encoding == encodingJSON {
		out = os.Stdout
	}

	handler, err := newHandler(out, cfg)
	if err != nil {
		panic(err)
	}

	return slog.New(handler).With(
		"app", app,
	)
}

func newHandler(w io.Writer, cfg *Config) (slog.Handler, error) {
	if cfg == nil {
		cfg = &Config{}
	}

	level, err := parseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: true,
	}

	switch cfg.Encoding {
	case encodingJSON:
		return slog.NewJSONHandler(w, opts), nil
	case encodingConsole, "":
		return slog.NewTextHandler(w, opts), nil
	default:
		return nil, fmt.Errorf("invalid logger config: encoding %s is not supported", cfg.Encoding)
	}
}

// parseLevel парсит строковый уровень в slog.Level
func parseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid logger config: level %s is not supported", level)
	}
}
