package collector

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"

	"github.com/Firav/whackerlink-v4/internal/config"
)

// KafkaForwarder pushes received report bodies onto a Kafka topic, keyed by
// receipt id.
type KafkaForwarder struct {
	writer *kafka.Writer
}

func NewKafkaForwarder(cfg config.KafkaConfig) (*KafkaForwarder, error) {
	if len(cfg.Brokers) == 0 {
		return nil, errors.New("kafka brokers not configured")
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
	}

	log.Info().Str("topic", cfg.Topic).Msg("kafka forwarder initialized")

	return &KafkaForwarder{writer: writer}, nil
}

func (f *KafkaForwarder) Forward(ctx context.Context, key string, body []byte) error {
	return f.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: body,
	})
}

// Close shuts down the Kafka writer gracefully
func (f *KafkaForwarder) Close() error {
	log.Info().Msg("closing kafka forwarder")
	return f.writer.Close()
}
