package inmemorytransport

import "github.com/telemetrytv/wsrp"

func (c *InMemoryTransport) AnnounceConsumer(consumerDescriptor *wsrp.ConsumerDescriptor) error {
	c.mu.RLock()
	handlers := append([]consumerAnnounceHandler{}, c.consumerAnnounceHandlers...)
	c.mu.RUnlock()

	for _, h := range handlers {
		h.handler(consumerDescriptor)
	}
	return nil
}

func (c *InMemoryTransport) BindConsumerAnnounce(owner string, handler func(consumerDescriptor *wsrp.ConsumerDescriptor)) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.consumerAnnounceHandlers = append(c.consumerAnnounceHandlers, consumerAnnounceHandler{owner: owner, handler: handler})
	return nil
}

func (c *InMemoryTransport) UnbindConsumerAnnounce(owner string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	kept := c.consumerAnnounceHandlers[:0:0]
	for _, h := range c.consumerAnnounceHandlers {
		if h.owner != owner {
			kept = append(kept, h)
		}
	}
	c.consumerAnnounceHandlers = kept
	return nil
}
