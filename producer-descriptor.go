package wsrp

import (
	"time"
)

// ProducerDescriptor is what a producer announces about itself: its name,
// the protocol version it speaks, and the portlet handles it can render.
// Consumers use it to route markup calls by handle.
type ProducerDescriptor struct {
	Name           string     `msgpack:"name"`
	Version        Version    `msgpack:"version"`
	PortletHandles []string   `msgpack:"portletHandles"`
	LastSeenAt     *time.Time `msgpack:"-"`
}

// HasHandle reports whether the producer announced handle.
func (d *ProducerDescriptor) HasHandle(handle string) bool {
	for _, portletHandle := range d.PortletHandles {
		if portletHandle == handle {
			return true
		}
	}
	return false
}

// ConsumerDescriptor is what a consumer announces: its name and the
// producers it already knows about.
type ConsumerDescriptor struct {
	Name                string                `msgpack:"name"`
	ProducerDescriptors []*ProducerDescriptor `msgpack:"producerDescriptors"`
}
