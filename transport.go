package wsrp

// Transport moves announcements and operation envelopes between consumers
// and producers.
//
// Announcement handlers are bound under the name of their owner. Unbinding
// an owner removes only the handlers it bound, so several consumers and
// producers can share one transport.
type Transport interface {
	AnnounceConsumer(consumerDescriptor *ConsumerDescriptor) error
	BindConsumerAnnounce(owner string, handler func(consumerDescriptor *ConsumerDescriptor)) error
	UnbindConsumerAnnounce(owner string) error

	AnnounceProducer(producerDescriptor *ProducerDescriptor) error
	BindProducerAnnounce(owner string, handler func(producerDescriptor *ProducerDescriptor)) error
	UnbindProducerAnnounce(owner string) error

	Dispatch(producerName string, envelope *Envelope) (*Envelope, error)
	BindDispatch(producerName string, handler func(envelope *Envelope) *Envelope) error
	UnbindDispatch(producerName string) error
}
