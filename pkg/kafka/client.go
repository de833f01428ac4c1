package kafka

import (
	"context"

	"github.com/twmb/franz-go/pkg/kgo"
)

// KafkaClient defines the interface for Kafka operations
type KafkaClient interface {
	Produce(ctx context.Context, topic string, value []byte) error
	ProduceAsync(ctx context.Context, topic string, value []byte)
	Consume(topics ...string) <-chan *kgo.Record
	Close() error
	GetClient() *kgo.Client
}

// Client represents a Kafka client wrapper that handles both producing and consuming
type Client struct {
	opts   []kgo.Opt
	client *kgo.Client
}

// New creates a new Kafka client with the provided options
func New(opts ...kgo.Opt) (KafkaClient, error) {
	kafkaClient, err := kgo.NewClient(opts...)
	if err != nil {
		return nil, err
	}

	return &Client{
		opts:   opts,
		client: kafkaClient,
	}, nil
}

// Produce sends a message to a Kafka topic and waits for the broker ack
func (k *Client) Produce(ctx context.Context, topic string, value []byte) error {
	record := &kgo.Record{
		Topic: topic,
		Value: value,
	}

	return k.client.ProduceSync(ctx, record).FirstErr()
}

// ProduceAsync sends a message to a Kafka topic without waiting for the ack
// Delivery failures are dropped; use Produce when the caller needs the error
func (k *Client) ProduceAsync(ctx context.Context, topic string, value []byte) {
	record := &kgo.Record{
		Topic: topic,
		Value: value,
	}

	k.client.Produce(ctx, record, nil)
}

// Consume starts consuming messages from the specified topics
// It returns a channel that will receive Kafka records until the client closes
func (k *Client) Consume(topics ...string) <-chan *kgo.Record {
	k.client.AddConsumeTopics(topics...)

	recordsChan := make(chan *kgo.Record, 100)
	go func() {
		defer close(recordsChan)
		for {
			fetches := k.client.PollFetches(context.Background())
			if fetches.IsClientClosed() {
				return
			}

			iter := fetches.RecordIter()
			for !iter.Done() {
				recordsChan <- iter.Next()
			}
		}
	}()

	return recordsChan
}

// Close closes the Kafka client
func (k *Client) Close() error {
	if k.client != nil {
		k.client.Close()
	}
	return nil
}

// GetClient returns the underlying Kafka client for advanced operations
func (k *Client) GetClient() *kgo.Client {
	return k.client
}
