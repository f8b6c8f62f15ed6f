package kafka

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"

	"PosBridge/internal/messaging"
	"PosBridge/pkg/correlation"
	"PosBridge/pkg/logger"
)

// Publisher implements messaging.Publisher using Kafka.
type Publisher struct {
	writer *kafka.Writer
	logger *logger.Logger
}

// NewPublisher creates a new Kafka publisher for one topic.
func NewPublisher(l *logger.Logger, brokers []string, topic string) *Publisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
	}

	return &Publisher{
		writer: writer,
		logger: l,
	}
}

// Publish sends an envelope to Kafka, carrying the correlation ID as a
// message header so consumers can continue the trace.
func (p *Publisher) Publish(ctx context.Context, env messaging.Envelope) error {
	value, err := json.Marshal(env)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(env.Key),
		Value: value,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(env.Type)},
		},
	}
	if id := correlation.FromContext(ctx); id != "" {
		msg.Headers = append(msg.Headers, kafka.Header{
			Key:   correlation.KafkaHeaderName,
			Value: []byte(id),
		})
	}

	if err = p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.ErrorCtx(ctx, "Failed to publish message: topic=%s key=%s error=%v",
			p.writer.Topic, env.Key, err)
		return err
	}

	p.logger.DebugCtx(ctx, "Message published: topic=%s key=%s type=%s event_id=%s",
		p.writer.Topic, env.Key, env.Type, env.EventID)
	return nil
}

// Close closes the Kafka writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}
