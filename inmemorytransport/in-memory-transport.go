package inmemorytransport

import (
	"sync"

	"github.com/telemetrytv/wsrp"
	"github.com/telemetrytv/wsrp/logging"
)

var transportInMemoryDebug = logging.Bind("wsrp:transport:in-memory")

type consumerAnnounceHandler struct {
	owner   string
	handler func(consumerDescriptor *wsrp.ConsumerDescriptor)
}

type producerAnnounceHandler struct {
	owner   string
	handler func(producerDescriptor *wsrp.ProducerDescriptor)
}

// InMemoryTransport connects consumers and producers living in the same
// process. Envelopes are still encoded to bytes on the way through so that
// tests exercise the same codec as the network transports.
type InMemoryTransport struct {
	mu                       sync.RWMutex
	consumerAnnounceHandlers []consumerAnnounceHandler
	producerAnnounceHandlers []producerAnnounceHandler
	dispatchHandlers         map[string]func(envelope *wsrp.Envelope) *wsrp.Envelope
}

var _ wsrp.Transport = &InMemoryTransport{}

func New() *InMemoryTransport {
	transportInMemoryDebug.Trace("Creating new in-memory transport")
	return &InMemoryTransport{
		dispatchHandlers: map[string]func(envelope *wsrp.Envelope) *wsrp.Envelope{},
	}
}
