package app

import (
	"fmt"
	"strings"
	"time"

	server "github.com/TATR0/bot-service/internal/adapters/primary/http"
	webappController "github.com/TATR0/bot-service/internal/adapters/primary/http/controllers/webapp"
	alerterAdapter "github.com/TATR0/bot-service/internal/adapters/secondary/alerter"
	kafkaAdapter "github.com/TATR0/bot-service/internal/adapters/secondary/kafka"
	"github.com/TATR0/bot-service/internal/adapters/secondary/storage/pg"
	redisAdapter "github.com/TATR0/bot-service/internal/adapters/secondary/storage/redis"
	s3Adapter "github.com/TATR0/bot-service/internal/adapters/secondary/storage/s3"
	"github.com/TATR0/bot-service/internal/adapters/secondary/telegram"
	"github.com/TATR0/bot-service/internal/pkg/logger"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Postgres     *pg.Config               `envconfig:"POSTGRES"`
	Log          *logger.Config           `envconfig:"LOG"`
	Server       *server.Config           `envconfig:"APISERVER"`
	Telegram     *telegram.Config         `envconfig:"TELEGRAM"`
	WebApp       *webappController.Config `envconfig:"WEBAPP"`
	Fallback     *alerterAdapter.Config   `envconfig:"FALLBACK"`
	RequestIndex *RequestIndexConfig      `envconfig:"REQUEST_INDEX"`

	// необязательные секции: Redis и S3 включаются флагом, Kafka - списком брокеров
	Redis        *redisAdapter.Config `envconfig:"REDIS"`
	RedisEnabled bool                 `envconfig:"REDIS_ENABLED" default:"false"`
	S3           *s3Adapter.Config    `envconfig:"S3"`
	S3Enabled    bool                 `envconfig:"S3_ENABLED" default:"false"`
	Kafka        *kafkaAdapter.Config `envconfig:"KAFKA"`
}

// RequestIndexConfig индекс заявок в памяти (при включённом Redis используется только TTL)
type RequestIndexConfig struct {
	Capacity       int           `envconfig:"CAPACITY" default:"10000"`
	TTL            time.Duration `envconfig:"TTL" default:"168h"`
	ReportInterval time.Duration `envconfig:"REPORT_INTERVAL" default:"1m"`
}

func NewEnvConfig(envPrefix string) (*Config, error) {
	cfg := &Config{}

	_ = godotenv.Load("deployments/local/.env")

	if err := envconfig.Process(envPrefix, cfg); err != nil {
		return nil, err
	}

	// envconfig заполняет вложенные указатели всегда, поэтому выключенные секции обнуляем
	if !cfg.RedisEnabled {
		cfg.Redis = nil
	}
	if !cfg.S3Enabled {
		cfg.S3 = nil
	}
	if !cfg.Kafka.Enabled() {
		cfg.Kafka = nil
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if err := c.Log.Validate(); err != nil {
		return err
	}
	if c.WebApp == nil || strings.TrimSpace(c.WebApp.BaseURL) == "" {
		return fmt.Errorf("webapp base_url is required")
	}
	if c.Telegram.IsWebhookEnabled() && c.Telegram.WebhookURL == "" {
		return fmt.Errorf("webhook_url is required when use_webhook is true")
	}
	if c.S3 != nil && (c.S3.Host == "" || c.S3.AccessKey == "") {
		return fmt.Errorf("s3 host and access_key are required when s3 is enabled")
	}
	return nil
}
