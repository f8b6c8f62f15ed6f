package app

import (
	"context"

	"PosBridge/config"
	"PosBridge/internal/controller/message"
	"PosBridge/internal/domain/order"
	"PosBridge/internal/external/kafka"
	"PosBridge/internal/messaging"
	"PosBridge/pkg/logger"
)

// StartDispatchWorker starts the Kafka consumer that delivers queued
// dispatch requests. deliveryService must dispatch inline, not re-enqueue.
// The worker stops when ctx is cancelled.
func StartDispatchWorker(
	ctx context.Context,
	l *logger.Logger,
	cfg config.Config,
	deliveryService *order.OrderService,
) {
	controller := message.NewDispatchMessageController(l, deliveryService)
	consumer := kafka.NewConsumer(
		l,
		cfg.KafkaBrokers,
		cfg.KafkaDispatchTopic,
		cfg.KafkaDispatchConsumerGroup,
	)
	dlq := kafka.NewDLQPublisher(l, cfg.KafkaBrokers, cfg.KafkaDispatchDLQTopic)

	handler := messaging.WithMetrics(cfg.KafkaDispatchTopic, cfg.KafkaDispatchConsumerGroup,
		messaging.WithDLQ(
			messaging.WithRetry(controller.HandleMessage, messaging.DefaultRetryConfig()),
			dlq,
		),
	)

	runner := messaging.NewRunner(l, []messaging.Worker{consumer}, handler)

	go func() {
		l.Info("Starting dispatch consumer: topic=%s group=%s",
			cfg.KafkaDispatchTopic, cfg.KafkaDispatchConsumerGroup)
		if err := runner.Start(ctx); err != nil {
			l.Error("Dispatch runner failed: error=%v", err)
		}
	}()
}
