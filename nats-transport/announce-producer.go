package natstransport

import (
	"github.com/nats-io/nats.go"
	"github.com/pkg/errors"
	"github.com/telemetrytv/wsrp"
	"github.com/vmihailenco/msgpack/v5"
)

func (c *NatsTransport) AnnounceProducer(producerDescriptor *wsrp.ProducerDescriptor) error {
	transportNatsAnnounceDebug.Tracef("Announcing producer %s with %d handles",
		producerDescriptor.Name, len(producerDescriptor.PortletHandles))

	descriptorBuf, err := msgpack.Marshal(producerDescriptor)
	if err != nil {
		return errors.Wrap(err, "failed to marshal producer descriptor")
	}

	if err := c.NatsConnection.Publish(namespace("producer.announce"), descriptorBuf); err != nil {
		transportNatsAnnounceDebug.Tracef("Failed to publish producer announcement: %v", err)
		return err
	}
	return nil
}

func (c *NatsTransport) BindProducerAnnounce(owner string, handler func(producerDescriptor *wsrp.ProducerDescriptor)) error {
	transportNatsAnnounceDebug.Tracef("Binding producer announcement handler for %s", owner)

	subHandler := func(msg *nats.Msg) {
		producerDescriptor := &wsrp.ProducerDescriptor{}
		if err := msgpack.Unmarshal(msg.Data, producerDescriptor); err != nil {
			transportNatsAnnounceDebug.Errorf("Dropping malformed producer announcement: %v", err)
			return
		}
		transportNatsAnnounceDebug.Tracef("Received announcement from producer %s with %d handles",
			producerDescriptor.Name, len(producerDescriptor.PortletHandles))
		handler(producerDescriptor)
	}

	sub, err := c.NatsConnection.Subscribe(namespace("producer.announce"), subHandler)
	if err != nil {
		return errors.Wrap(err, "failed to subscribe to producer announcements")
	}

	c.mu.Lock()
	c.unbindProducerAnnounce[owner] = append(c.unbindProducerAnnounce[owner], sub.Unsubscribe)
	c.mu.Unlock()
	return nil
}

func (c *NatsTransport) UnbindProducerAnnounce(owner string) error {
	c.mu.Lock()
	unbinders := c.unbindProducerAnnounce[owner]
	delete(c.unbindProducerAnnounce, owner)
	c.mu.Unlock()

	if len(unbinders) == 0 {
		return nil
	}
	transportNatsAnnounceDebug.Tracef("Unbinding producer announcement handlers for %s", owner)
	return unbindAll(unbinders)
}
