package wsrp

import (
	"fmt"

	"github.com/telemetrytv/wsrp/logging"
)

var producerServiceDebug = logging.Bind("wsrp:producer-service")

// ProducerService exposes a producer on a transport under a name. It answers
// dispatched envelopes and announces the producer's portlet handles to
// consumers.
type ProducerService struct {
	Name      string
	Transport Transport
	Producer  *Producer
	started   bool
}

func NewProducerService(name string, transport Transport, producer *Producer) *ProducerService {
	return &ProducerService{
		Name:      name,
		Transport: transport,
		Producer:  producer,
	}
}

func (s *ProducerService) Start() error {
	if s.started {
		return fmt.Errorf("producer service %s already started", s.Name)
	}
	if s.Transport == nil {
		return fmt.Errorf("cannot start producer service %s without a transport", s.Name)
	}
	if s.Producer == nil {
		return fmt.Errorf("cannot start producer service %s without a producer", s.Name)
	}

	producerServiceDebug.Tracef("Starting producer service %s", s.Name)

	if err := s.Transport.BindConsumerAnnounce(s.Name, s.handleConsumerAnnounce); err != nil {
		return err
	}
	if err := s.Transport.BindDispatch(s.Name, s.Producer.HandleEnvelope); err != nil {
		if unbindErr := s.Transport.UnbindConsumerAnnounce(s.Name); unbindErr != nil {
			producerServiceDebug.Errorf("Failed to unbind consumer announcements of %s: %v", s.Name, unbindErr)
		}
		return err
	}
	s.started = true

	return s.Announce()
}

func (s *ProducerService) Stop() error {
	if !s.started {
		return nil
	}
	s.started = false
	if err := s.Transport.UnbindConsumerAnnounce(s.Name); err != nil {
		return err
	}
	return s.Transport.UnbindDispatch(s.Name)
}

// Announce publishes the current descriptor. Call it again after binding new
// markup handles so consumers can route to them.
func (s *ProducerService) Announce() error {
	descriptor := s.Descriptor()
	producerServiceDebug.Tracef("Announcing producer %s with %d handles", s.Name, len(descriptor.PortletHandles))
	return s.Transport.AnnounceProducer(descriptor)
}

func (s *ProducerService) Descriptor() *ProducerDescriptor {
	return &ProducerDescriptor{
		Name:           s.Name,
		Version:        s.Producer.Version,
		PortletHandles: s.Producer.Registry.Handles(),
	}
}

// handleConsumerAnnounce re-announces the producer to consumers that do not
// know it yet.
func (s *ProducerService) handleConsumerAnnounce(consumerDescriptor *ConsumerDescriptor) {
	for _, descriptor := range consumerDescriptor.ProducerDescriptors {
		if descriptor.Name == s.Name {
			return
		}
	}
	if err := s.Announce(); err != nil {
		producerServiceDebug.Errorf("Failed to announce producer %s to consumer %s: %v", s.Name, consumerDescriptor.Name, err)
	}
}
