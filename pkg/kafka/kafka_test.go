package kafka

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	client, err := New(WithBrokers("localhost:9092"), WithClientID("crm-test"))
	require.NoError(t, err, "New should not fail before any broker interaction")
	require.NotNil(t, client)

	assert.NotNil(t, client.GetClient())
	assert.NoError(t, client.Close())
}

func TestNewWithConfig(t *testing.T) {
	client, err := NewWithConfig(Config{
		Brokers:                []string{"localhost:9092"},
		ConsumerGroup:          "crm-leads",
		ClientID:               "crm-test",
		AllowAutoTopicCreation: true,
		RequestRetries:         3,
	})
	require.NoError(t, err)
	require.NotNil(t, client)
	assert.NoError(t, client.Close())
}
