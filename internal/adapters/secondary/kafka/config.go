package kafka

import (
	"strings"
)

// Config конфигурация Kafka producer для событий по заявкам
type Config struct {
	Brokers          string `envconfig:"BROKERS"`                                  // "broker1:9092,broker2:9092"
	Topic            string `envconfig:"TOPIC" default:"autoservice.request-events"` // название топика
	SecurityProtocol string `envconfig:"SECURITY_PROTOCOL"`                        // "SASL_SSL", "PLAINTEXT"
	SASLMechanism    string `envconfig:"SASL_MECHANISM"`                           // "PLAIN", "SCRAM-SHA-256"
	SASLUsername     string `envconfig:"SASL_USERNAME"`
	SASLPassword     string `envconfig:"SASL_PASSWORD"`
}

// Enabled producer нужен только если заданы брокеры
func (c *Config) Enabled() bool {
	return c != nil && strings.TrimSpace(c.Brokers) != ""
}

// GetBrokers возвращает список брокеров из строки
func (c *Config) GetBrokers() []string {
	var brokers []string
	for _, b := range strings.Split(c.Brokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	if len(brokers) == 0 {
		return []string{"localhost:9092"}
	}
	return brokers
}
