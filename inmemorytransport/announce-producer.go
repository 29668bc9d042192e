package inmemorytransport

import "github.com/telemetrytv/wsrp"

func (c *InMemoryTransport) AnnounceProducer(producerDescriptor *wsrp.ProducerDescriptor) error {
	c.mu.RLock()
	handlers := append([]producerAnnounceHandler{}, c.producerAnnounceHandlers...)
	c.mu.RUnlock()

	for _, h := range handlers {
		// each consumer indexes its own copy
		descriptor := *producerDescriptor
		descriptor.PortletHandles = append([]string(nil), producerDescriptor.PortletHandles...)
		h.handler(&descriptor)
	}
	return nil
}

func (c *InMemoryTransport) BindProducerAnnounce(owner string, handler func(producerDescriptor *wsrp.ProducerDescriptor)) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.producerAnnounceHandlers = append(c.producerAnnounceHandlers, producerAnnounceHandler{owner: owner, handler: handler})
	return nil
}

func (c *InMemoryTransport) UnbindProducerAnnounce(owner string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	kept := c.producerAnnounceHandlers[:0:0]
	for _, h := range c.producerAnnounceHandlers {
		if h.owner != owner {
			kept = append(kept, h)
		}
	}
	c.producerAnnounceHandlers = kept
	return nil
}
