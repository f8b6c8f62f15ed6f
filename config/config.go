package config

import (
	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port      int    `env:"PORT" envDefault:"3000"`
	PgURL     string `env:"PG_URL" required:"true"`
	PgPoolMax int    `env:"PG_POOL_MAX" envDefault:"10"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`

	// Dispatch mode: "sync" (deliver inline on creation) or "kafka"
	// (queue and deliver from a consumer worker)
	DispatchMode string `env:"DISPATCH_MODE" envDefault:"sync"`

	// Kafka configuration
	KafkaBrokers               []string `env:"KAFKA_BROKERS" envSeparator:","`
	KafkaDispatchTopic         string   `env:"KAFKA_DISPATCH_TOPIC" envDefault:"pos.orders.dispatch"`
	KafkaDispatchConsumerGroup string   `env:"KAFKA_DISPATCH_CONSUMER_GROUP" envDefault:"posbridge-dispatch"`
	KafkaDispatchDLQTopic      string   `env:"KAFKA_DISPATCH_DLQ_TOPIC" envDefault:"pos.orders.dispatch.dlq"`
	KafkaKitchenTopic          string   `env:"KAFKA_KITCHEN_TOPIC" envDefault:"pos.kitchen.status"`

	// OpenSearch dispatch audit sink; leave URLs empty to disable
	OpensearchUrls          []string `env:"OPENSEARCH_URLS" envSeparator:","`
	OpensearchIndexDispatch string   `env:"OPENSEARCH_INDEX_DISPATCH" envDefault:"pos-dispatch-audit"`
}

func New() (Config, error) {
	c, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
