package messaging

import (
	"context"
	"time"

	"wedding-console/internal/infra"
	"wedding-console/internal/pkg/config"
	"wedding-console/internal/usecase/readmodel"

	"github.com/IBM/sarama"
)

type EventPublisher interface {
	Publish(ctx context.Context, ev readmodel.OutboxEventRM) error
}

// Producer publishes outbox events to one Kafka topic, keyed by booking id so
// every event of a booking lands on the same partition.
type Producer struct {
	producer sarama.SyncProducer
	topic    string
}

func NewSaramaProducer(cfg config.KafkaConfig) (*Producer, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Retry.Max = 5
	saramaConfig.Producer.Retry.Backoff = 100 * time.Millisecond
	saramaConfig.Producer.Return.Successes = true // required by SyncProducer
	saramaConfig.Producer.Idempotent = true
	saramaConfig.Net.MaxOpenRequests = 1
	saramaConfig.Version = sarama.V2_8_0_0
	saramaConfig.Net.DialTimeout = 10 * time.Second
	saramaConfig.Net.ReadTimeout = 10 * time.Second
	saramaConfig.Net.WriteTimeout = 10 * time.Second

	sp, err := sarama.NewSyncProducer(cfg.Brokers, saramaConfig)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create kafka producer", err, infra.KindUpstreamFailure)
	}
	return NewProducer(sp, cfg.Topic), nil
}

func NewProducer(sp sarama.SyncProducer, topic string) *Producer {
	return &Producer{producer: sp, topic: topic}
}

func (p *Producer) Publish(ctx context.Context, ev readmodel.OutboxEventRM) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(ev.AggregateID.String()),
		Value: sarama.ByteEncoder(ev.Payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event_id"), Value: []byte(ev.ID.String())},
			{Key: []byte("event_type"), Value: []byte(ev.EventType)},
		},
		Timestamp: ev.CreatedAt,
	}

	if _, _, err := p.producer.SendMessage(msg); err != nil {
		return infra.WrapRepoErr("failed to publish booking event", err, infra.KindUpstreamFailure)
	}
	return nil
}

func (p *Producer) Close() error {
	if p.producer == nil {
		return nil
	}
	return p.producer.Close()
}
