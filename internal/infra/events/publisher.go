package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
)

// KafkaPublisher публикует события бронирования в Kafka.
// Ключ сообщения: ID бронирования, поэтому события одного бронирования
// попадают в одну партицию и читаются по порядку.
type KafkaPublisher struct {
	writer MessageWriter
	logger Logger
}

// NewKafkaPublisher создает асинхронного writer'а: запись не блокирует запрос,
// ошибки доставки логируются в Completion.
func NewKafkaPublisher(brokers []string, topic string, logger Logger) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: 50 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
		Async:        true,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				logger.Error("events: failed to deliver %d message(s) to topic=%s: %v", len(messages), topic, err)
			}
		},
	}

	return NewPublisherWithWriter(writer, logger)
}

// NewPublisherWithWriter создает publisher поверх произвольного writer'а
func NewPublisherWithWriter(writer MessageWriter, logger Logger) *KafkaPublisher {
	return &KafkaPublisher{writer: writer, logger: logger}
}

// Publish отправляет событие
func (p *KafkaPublisher) Publish(ctx context.Context, event domain.BookingEvent) error {
	payload, err := json.Marshal(toMessage(event))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncodeEvent, err)
	}

	msg := kafka.Message{
		Key:   []byte(event.BookingID.String()),
		Value: payload,
		Time:  event.OccurredAt,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("%w: type=%s booking=%s: %v", ErrPublish, event.Type, event.BookingID, err)
	}

	p.logger.Info("events: published %s for booking=%s", event.Type, event.BookingID)
	return nil
}

// Close дожидается отправки буфера и закрывает writer
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NoopPublisher используется, когда Kafka выключена
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, domain.BookingEvent) error { return nil }

func (NoopPublisher) Close() error { return nil }
