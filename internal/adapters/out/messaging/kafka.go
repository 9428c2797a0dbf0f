// Package messaging delivers outbox messages to Kafka, or to the log when no
// broker is configured.
package messaging

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/qlimaxx/pizza-ordering-api/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

const eventNameHeader = "event-name"

// ParseBrokers splits a comma separated broker list, dropping blanks.
func ParseBrokers(csv string) []string {
	brokers := []string{}
	for _, b := range strings.Split(csv, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes outbox messages to one topic, keyed by aggregate id
// so that events of one order stay in one partition.
type KafkaPublisher struct {
	writer messageWriter
	topic  string
	logger *slog.Logger
}

func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
	}
}

func NewKafkaPublisher(writer messageWriter, topic string, logger *slog.Logger) (*KafkaPublisher, error) {
	if writer == nil {
		return nil, errors.New("kafka writer is required")
	}
	if topic == "" {
		return nil, errors.New("kafka topic is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &KafkaPublisher{
		writer: writer,
		topic:  topic,
		logger: logger.With("component", "kafka-publisher", "topic", topic),
	}, nil
}

func (p *KafkaPublisher) Publish(ctx context.Context, msgs ...ports.OutboxMessage) error {
	if len(msgs) == 0 {
		return nil
	}

	out := make([]kafka.Message, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, kafka.Message{
			Key:   []byte(m.AggregateID.String()),
			Value: m.Payload,
			Time:  m.OccurredAt.UTC(),
			Headers: []kafka.Header{
				{Key: eventNameHeader, Value: []byte(m.Name)},
			},
		})
	}

	if err := p.writer.WriteMessages(ctx, out...); err != nil {
		return fmt.Errorf("write %d messages to %s: %w", len(out), p.topic, err)
	}

	p.logger.DebugContext(ctx, "published events", "count", len(out))
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// LogPublisher logs every message and reports success. It stands in for Kafka
// in local runs so the outbox still drains.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogPublisher{logger: logger.With("component", "log-publisher")}
}

func (p *LogPublisher) Publish(ctx context.Context, msgs ...ports.OutboxMessage) error {
	for _, m := range msgs {
		p.logger.InfoContext(ctx, "domain event",
			"event_id", m.ID.String(),
			"event", m.Name,
			"aggregate_id", m.AggregateID.String(),
			"payload", string(m.Payload),
		)
	}
	return nil
}

func (p *LogPublisher) Close() error {
	return nil
}
