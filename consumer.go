package wsrp

import (
	"fmt"
	"sync"

	"github.com/telemetrytv/wsrp/logging"
)

var consumerDebug = logging.Bind("wsrp:consumer")

// Consumer learns which producers serve which portlet handles from their
// announcements and routes markup calls to them.
type Consumer struct {
	Name      string
	Version   Version
	Transport Transport
	client    *Client

	mu      sync.RWMutex
	indexer *ProducerIndexer
}

func NewConsumer(name string, version Version, transport Transport) *Consumer {
	return &Consumer{
		Name:      name,
		Version:   version,
		Transport: transport,
		client:    NewClient(transport, version),
	}
}

// Start binds producer announcements and announces the consumer. Producers
// that are not listed in the announcement are expected to reply with their
// own descriptor.
func (c *Consumer) Start() error {
	if c.Transport == nil {
		return fmt.Errorf("cannot start consumer %s without a transport", c.Name)
	}

	c.mu.Lock()
	if c.indexer != nil {
		c.mu.Unlock()
		return fmt.Errorf("consumer %s already started", c.Name)
	}
	indexer := &ProducerIndexer{}
	c.indexer = indexer
	c.mu.Unlock()

	err := c.Transport.BindProducerAnnounce(c.Name, func(producerDescriptor *ProducerDescriptor) {
		if producerDescriptor.Version != c.Version {
			consumerDebug.Tracef("Ignoring %s producer %s", producerDescriptor.Version, producerDescriptor.Name)
			return
		}
		consumerDebug.Tracef("Indexing producer %s with handles %v", producerDescriptor.Name, producerDescriptor.PortletHandles)
		indexer.SetProducerDescriptor(producerDescriptor)
	})
	if err != nil {
		c.mu.Lock()
		c.indexer = nil
		c.mu.Unlock()
		return err
	}

	return c.Announce()
}

func (c *Consumer) Stop() error {
	if err := c.Transport.UnbindProducerAnnounce(c.Name); err != nil {
		return err
	}
	c.mu.Lock()
	c.indexer = nil
	c.mu.Unlock()
	return nil
}

func (c *Consumer) currentIndexer() *ProducerIndexer {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.indexer
}

func (c *Consumer) Announce() error {
	var known []*ProducerDescriptor
	if indexer := c.currentIndexer(); indexer != nil {
		known = indexer.ProducerDescriptors()
	}
	return c.Transport.AnnounceConsumer(&ConsumerDescriptor{
		Name:                c.Name,
		ProducerDescriptors: known,
	})
}

// Producers returns the descriptors of every indexed producer.
func (c *Consumer) Producers() []*ProducerDescriptor {
	indexer := c.currentIndexer()
	if indexer == nil {
		return nil
	}
	return indexer.ProducerDescriptors()
}

// Producer returns a client for the named producer.
func (c *Consumer) Producer(name string) *ProducerClient {
	return c.client.Producer(name)
}

// ProducerFor returns a client for the producer serving handle, or an
// InvalidHandle fault when no known producer announced it.
func (c *Consumer) ProducerFor(handle string) (*ProducerClient, error) {
	indexer := c.currentIndexer()
	if indexer == nil {
		return nil, fmt.Errorf("consumer %s is not started", c.Name)
	}
	name, ok := indexer.ResolveProducer(handle)
	if !ok {
		return nil, NewFault(InvalidHandle, "no producer serves portlet handle %q", handle)
	}
	return c.client.Producer(name), nil
}

func (c *Consumer) GetMarkup(req *GetMarkup) (*MarkupResponse, error) {
	producer, err := c.ProducerFor(req.PortletContext.PortletHandle)
	if err != nil {
		return nil, err
	}
	return producer.GetMarkup(req)
}

func (c *Consumer) PerformBlockingInteraction(req *PerformBlockingInteraction) (*BlockingInteractionResponse, error) {
	producer, err := c.ProducerFor(req.PortletContext.PortletHandle)
	if err != nil {
		return nil, err
	}
	return producer.PerformBlockingInteraction(req)
}

func (c *Consumer) GetResource(req *GetResource) (*ResourceResponse, error) {
	producer, err := c.ProducerFor(req.PortletContext.PortletHandle)
	if err != nil {
		return nil, err
	}
	return producer.GetResource(req)
}

func (c *Consumer) HandleEvents(req *HandleEvents) (*HandleEventsResponse, error) {
	producer, err := c.ProducerFor(req.PortletContext.PortletHandle)
	if err != nil {
		return nil, err
	}
	return producer.HandleEvents(req)
}
