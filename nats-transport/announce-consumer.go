package natstransport

import (
	"github.com/nats-io/nats.go"
	"github.com/pkg/errors"
	"github.com/telemetrytv/wsrp"
	"github.com/vmihailenco/msgpack/v5"
)

func (c *NatsTransport) AnnounceConsumer(consumerDescriptor *wsrp.ConsumerDescriptor) error {
	transportNatsAnnounceDebug.Tracef("Announcing consumer %s knowing %d producers",
		consumerDescriptor.Name, len(consumerDescriptor.ProducerDescriptors))

	descriptorBuf, err := msgpack.Marshal(consumerDescriptor)
	if err != nil {
		return errors.Wrap(err, "failed to marshal consumer descriptor")
	}

	if err := c.NatsConnection.Publish(namespace("consumer.announce"), descriptorBuf); err != nil {
		transportNatsAnnounceDebug.Tracef("Failed to publish consumer announcement: %v", err)
		return err
	}
	return nil
}

func (c *NatsTransport) BindConsumerAnnounce(owner string, handler func(consumerDescriptor *wsrp.ConsumerDescriptor)) error {
	transportNatsAnnounceDebug.Tracef("Binding consumer announcement handler for %s", owner)

	subHandler := func(msg *nats.Msg) {
		consumerDescriptor := &wsrp.ConsumerDescriptor{}
		if err := msgpack.Unmarshal(msg.Data, consumerDescriptor); err != nil {
			transportNatsAnnounceDebug.Errorf("Dropping malformed consumer announcement: %v", err)
			return
		}
		transportNatsAnnounceDebug.Tracef("Received announcement from consumer %s", consumerDescriptor.Name)
		handler(consumerDescriptor)
	}

	sub, err := c.NatsConnection.Subscribe(namespace("consumer.announce"), subHandler)
	if err != nil {
		return errors.Wrap(err, "failed to subscribe to consumer announcements")
	}

	c.mu.Lock()
	c.unbindConsumerAnnounce[owner] = append(c.unbindConsumerAnnounce[owner], sub.Unsubscribe)
	c.mu.Unlock()
	return nil
}

func (c *NatsTransport) UnbindConsumerAnnounce(owner string) error {
	c.mu.Lock()
	unbinders := c.unbindConsumerAnnounce[owner]
	delete(c.unbindConsumerAnnounce, owner)
	c.mu.Unlock()

	if len(unbinders) == 0 {
		return nil
	}
	transportNatsAnnounceDebug.Tracef("Unbinding consumer announcement handlers for %s", owner)
	return unbindAll(unbinders)
}
