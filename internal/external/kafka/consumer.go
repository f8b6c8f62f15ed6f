package kafka

import (
	"context"
	"errors"

	"github.com/segmentio/kafka-go"

	"PosBridge/internal/messaging"
	"PosBridge/pkg/correlation"
	"PosBridge/pkg/logger"
)

// Consumer implements messaging.Worker using Kafka.
type Consumer struct {
	reader *kafka.Reader
	logger *logger.Logger
}

// NewConsumer creates a new Kafka consumer in the given consumer group.
func NewConsumer(l *logger.Logger, brokers []string, topic, groupID string) *Consumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  brokers,
		Topic:    topic,
		GroupID:  groupID,
		MinBytes: 1,
		MaxBytes: 10e6, // 10MB
	})

	return &Consumer{
		reader: reader,
		logger: l,
	}
}

// Start begins consuming messages and passes them to the handler.
// Blocks until the context is cancelled or an unrecoverable error occurs.
func (c *Consumer) Start(ctx context.Context, handler messaging.MessageHandler) error {
	c.logger.Info("Consumer started: topic=%s group_id=%s",
		c.reader.Config().Topic, c.reader.Config().GroupID)

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				c.logger.Info("Consumer stopped (context cancelled)")
				return nil
			}
			c.logger.Error("Failed to fetch message: error=%v", err)
			return err
		}

		msgCtx := contextWithCorrelation(ctx, msg)

		c.logger.DebugCtx(msgCtx, "Message received: topic=%s partition=%d offset=%d key=%s",
			msg.Topic, msg.Partition, msg.Offset, string(msg.Key))

		if err := handler(msgCtx, msg.Key, msg.Value); err != nil {
			c.logger.ErrorCtx(msgCtx, "Handler error, message not committed: topic=%s partition=%d offset=%d key=%s error=%v",
				msg.Topic, msg.Partition, msg.Offset, string(msg.Key), err)
			// Not committed - message is redelivered on restart
			continue
		}

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			c.logger.ErrorCtx(msgCtx, "Failed to commit message: topic=%s partition=%d offset=%d error=%v",
				msg.Topic, msg.Partition, msg.Offset, err)
			return err
		}

		c.logger.DebugCtx(msgCtx, "Message committed: topic=%s partition=%d offset=%d",
			msg.Topic, msg.Partition, msg.Offset)
	}
}

// contextWithCorrelation restores the correlation ID from message headers,
// minting a new one when the producer did not send any.
func contextWithCorrelation(ctx context.Context, msg kafka.Message) context.Context {
	for _, h := range msg.Headers {
		if h.Key == correlation.KafkaHeaderName && len(h.Value) > 0 {
			return correlation.WithID(ctx, string(h.Value))
		}
	}
	return correlation.WithID(ctx, correlation.NewID())
}

// Close closes the Kafka reader.
func (c *Consumer) Close() error {
	c.logger.Info("Closing consumer: topic=%s group_id=%s",
		c.reader.Config().Topic, c.reader.Config().GroupID)
	return c.reader.Close()
}
