package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"symbol_catalog/internal/feature/symbols/domain/entity"
	"symbol_catalog/internal/feature/symbols/usecase"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// messageWriter is the subset of *kafka.Writer used by the publisher.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaEventPublisher publishes symbol events as JSON, keyed by ticker so that
// events of one symbol stay ordered within a partition.
type KafkaEventPublisher struct {
	writer messageWriter
	topic  string
	log    *zap.Logger
}

var _ usecase.EventPublisher = (*KafkaEventPublisher)(nil)

// NewKafkaEventPublisher creates a publisher writing to topic on the given brokers.
func NewKafkaEventPublisher(brokers []string, topic string, log *zap.Logger) *KafkaEventPublisher {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
		BatchTimeout:           10 * time.Millisecond,
	}
	return newKafkaEventPublisher(w, topic, log)
}

func newKafkaEventPublisher(w messageWriter, topic string, log *zap.Logger) *KafkaEventPublisher {
	if log == nil {
		log = zap.NewNop()
	}
	return &KafkaEventPublisher{writer: w, topic: topic, log: log}
}

// Publish writes a single event and waits for the broker acknowledgement.
func (p *KafkaEventPublisher) Publish(ctx context.Context, event entity.SymbolEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", event.Type, err)
	}

	msg := kafka.Message{
		Key:     []byte(event.Ticker),
		Value:   value,
		Headers: []kafka.Header{{Key: "event-type", Value: []byte(event.Type)}},
		Time:    event.OccurredAt,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write %s event to %s: %w", event.Type, p.topic, err)
	}

	p.log.Debug("symbol event published",
		zap.String("topic", p.topic),
		zap.String("type", event.Type),
		zap.String("ticker", event.Ticker))
	return nil
}

// Close flushes pending messages and releases the writer.
func (p *KafkaEventPublisher) Close() error {
	return p.writer.Close()
}
