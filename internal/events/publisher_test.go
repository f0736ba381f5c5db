package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPublisherWithoutBrokers(t *testing.T) {
	assert.Nil(t, NewPublisher("", nil))
}

func TestNilPublisherIsSafe(t *testing.T) {
	var p *Publisher

	// Must not panic; deployments without Kafka run with a nil publisher.
	p.Publish(TypeProductCreated, "JMB-001", map[string]interface{}{"product_id": "1"})
	assert.NoError(t, p.Close())
}
