package kafka

import (
	"context"
	"fmt"
	"sync"
	"time"

	kafkago "github.com/segmentio/kafka-go"
)

// Message represents a Kafka message.
type Message struct {
	Key     []byte
	Value   []byte
	Headers map[string]string
}

// Producer wraps a kafka-go writer for publishing to a single topic.
type Producer struct {
	mu     sync.Mutex
	writer *kafkago.Writer
	cfg    Config
}

// NewProducer creates a new Producer with the given configuration. The
// underlying writer is created lazily on first publish.
func NewProducer(cfg Config) *Producer {
	return &Producer{cfg: cfg}
}

// Publish sends messages to the configured topic.
func (p *Producer) Publish(ctx context.Context, messages ...Message) error {
	w := p.getOrCreateWriter()

	kafkaMessages := make([]kafkago.Message, 0, len(messages))
	for _, msg := range messages {
		km := kafkago.Message{
			Key:   msg.Key,
			Value: msg.Value,
		}
		for k, v := range msg.Headers {
			km.Headers = append(km.Headers, kafkago.Header{
				Key:   k,
				Value: []byte(v),
			})
		}
		kafkaMessages = append(kafkaMessages, km)
	}

	if err := w.WriteMessages(ctx, kafkaMessages...); err != nil {
		return fmt.Errorf("kafka publish to %s: %w", p.cfg.Topic, err)
	}
	return nil
}

// Close closes the underlying writer.
func (p *Producer) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.writer == nil {
		return nil
	}
	w := p.writer
	p.writer = nil
	if err := w.Close(); err != nil {
		return fmt.Errorf("closing writer for topic %s: %w", p.cfg.Topic, err)
	}
	return nil
}

func (p *Producer) getOrCreateWriter() *kafkago.Writer {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.writer == nil {
		p.writer = &kafkago.Writer{
			Addr:         kafkago.TCP(p.cfg.Brokers...),
			Topic:        p.cfg.Topic,
			Balancer:     &kafkago.LeastBytes{},
			BatchTimeout: 10 * time.Millisecond,
			RequiredAcks: kafkago.RequireAll,
		}
	}
	return p.writer
}
