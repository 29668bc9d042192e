package natstransport

import (
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/nats-io/nats.go"
	"github.com/telemetrytv/wsrp"
	"github.com/telemetrytv/wsrp/logging"
)

var (
	transportNatsDebug         = logging.Bind("wsrp:transport:nats")
	transportNatsAnnounceDebug = logging.Bind("wsrp:transport:nats:announce")
	transportNatsDispatchDebug = logging.Bind("wsrp:transport:nats:dispatch")
)

// NatsTransport carries announcements over NATS subjects and operation
// envelopes over NATS request/reply.
type NatsTransport struct {
	NatsConnection *nats.Conn

	mu                     sync.Mutex
	unbindDispatch         map[string][]func() error
	unbindConsumerAnnounce map[string][]func() error
	unbindProducerAnnounce map[string][]func() error
}

var _ wsrp.Transport = &NatsTransport{}

func New(natsConnection *nats.Conn) *NatsTransport {
	transportNatsDebug.Trace("Creating new NATS transport")
	return &NatsTransport{
		NatsConnection:         natsConnection,
		unbindDispatch:         map[string][]func() error{},
		unbindConsumerAnnounce: map[string][]func() error{},
		unbindProducerAnnounce: map[string][]func() error{},
	}
}

// unbindAll runs every unbinder and reports all failures together.
func unbindAll(unbinders []func() error) error {
	var result *multierror.Error
	for _, unbind := range unbinders {
		if err := unbind(); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}
