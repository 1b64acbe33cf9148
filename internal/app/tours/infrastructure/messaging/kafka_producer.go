package messaging

import (
	"context"
	"fmt"
	"time"

	"explorecali/pkg/metrics"

	"github.com/segmentio/kafka-go"
)

type KafkaProducer struct {
	writer *kafka.Writer
	topic  string
}

// NewKafkaProducer создает producer для событий RATING_CREATED
// brokers - список брокеров Kafka в формате ["host:port"]
func NewKafkaProducer(brokers []string, topic string) *KafkaProducer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		BatchSize:    100,
		BatchTimeout: 10 * time.Second,
	}

	return &KafkaProducer{writer: writer, topic: topic}
}

// PublishMessage отправляет сообщение в Kafka.
// key - tour_id для партиционирования: события одного тура попадают
// в одну партицию и сохраняют порядок
func (p *KafkaProducer) PublishMessage(ctx context.Context, key string, value []byte) error {
	start := time.Now()

	message := kafka.Message{
		Key:   []byte(key),
		Value: value,
		Time:  time.Now(),
	}

	if err := p.writer.WriteMessages(ctx, message); err != nil {
		metrics.KafkaErrors.WithLabelValues("tours-service", p.topic, "produce").Inc()
		return fmt.Errorf("failed to write message to kafka: %w", err)
	}

	metrics.KafkaMessagesProduced.WithLabelValues("tours-service", p.topic).Inc()
	metrics.KafkaProduceDuration.WithLabelValues("tours-service", p.topic).Observe(time.Since(start).Seconds())

	return nil
}

// Close закрывает Kafka writer и освобождает ресурсы
func (p *KafkaProducer) Close() error {
	return p.writer.Close()
}
