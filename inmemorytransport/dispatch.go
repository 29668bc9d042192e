package inmemorytransport

import (
	"fmt"

	"github.com/telemetrytv/wsrp"
)

func (c *InMemoryTransport) Dispatch(producerName string, envelope *wsrp.Envelope) (*wsrp.Envelope, error) {
	c.mu.RLock()
	handler, ok := c.dispatchHandlers[producerName]
	c.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("no producer named %s is bound", producerName)
	}

	transportInMemoryDebug.Tracef("Dispatching %s to producer %s", envelope.Operation, producerName)

	request, err := roundTrip(envelope)
	if err != nil {
		return nil, err
	}
	return roundTrip(handler(request))
}

func (c *InMemoryTransport) BindDispatch(producerName string, handler func(envelope *wsrp.Envelope) *wsrp.Envelope) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dispatchHandlers[producerName] = handler
	return nil
}

func (c *InMemoryTransport) UnbindDispatch(producerName string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.dispatchHandlers, producerName)
	return nil
}

func roundTrip(envelope *wsrp.Envelope) (*wsrp.Envelope, error) {
	data, err := wsrp.MarshalEnvelope(envelope)
	if err != nil {
		return nil, err
	}
	return wsrp.UnmarshalEnvelope(data)
}
