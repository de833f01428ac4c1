package kafka

import (
	"time"

	"github.com/twmb/franz-go/pkg/kgo"
)

// Config holds Kafka configuration
type Config struct {
	Brokers                []string
	ConsumerGroup          string
	ClientID               string
	AllowAutoTopicCreation bool
	RequestRetries         int
	DialTimeout            time.Duration
}

// NewWithConfig creates a new Kafka client from a config struct
func NewWithConfig(config Config) (KafkaClient, error) {
	opts := []kgo.Opt{
		WithBrokers(config.Brokers...),
	}

	if config.ConsumerGroup != "" {
		opts = append(opts, WithConsumerGroup(config.ConsumerGroup))
	}

	if config.ClientID != "" {
		opts = append(opts, WithClientID(config.ClientID))
	}

	if config.AllowAutoTopicCreation {
		opts = append(opts, WithAllowAutoTopicCreation())
	}

	if config.RequestRetries > 0 {
		opts = append(opts, WithRequestRetries(config.RequestRetries))
	}

	if config.DialTimeout > 0 {
		opts = append(opts, WithDialTimeout(config.DialTimeout))
	}

	return New(opts...)
}
