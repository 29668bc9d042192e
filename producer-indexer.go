package wsrp

import (
	"sync"
	"time"
)

// ProducerIndexer keeps the producer descriptors a consumer has seen and
// resolves portlet handles to producer names.
type ProducerIndexer struct {
	mu                  sync.RWMutex
	producerDescriptors []*ProducerDescriptor
}

// SetProducerDescriptor indexes a copy of descriptor, replacing any earlier
// descriptor of the same producer. Stored descriptors are never modified, so
// the ones handed out by ProducerDescriptors stay safe to read.
func (r *ProducerIndexer) SetProducerDescriptor(descriptor *ProducerDescriptor) {
	now := time.Now()
	stored := *descriptor
	stored.PortletHandles = append([]string(nil), descriptor.PortletHandles...)
	stored.LastSeenAt = &now

	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existingDescriptor := range r.producerDescriptors {
		if existingDescriptor.Name == descriptor.Name {
			r.producerDescriptors[i] = &stored
			return
		}
	}
	r.producerDescriptors = append(r.producerDescriptors, &stored)
}

func (r *ProducerIndexer) UnsetProducer(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, descriptor := range r.producerDescriptors {
		if descriptor.Name == name {
			descriptors := make([]*ProducerDescriptor, 0, len(r.producerDescriptors)-1)
			descriptors = append(descriptors, r.producerDescriptors[:i]...)
			r.producerDescriptors = append(descriptors, r.producerDescriptors[i+1:]...)
			return
		}
	}
}

// ResolveProducer returns the name of the first producer that announced
// handle.
func (r *ProducerIndexer) ResolveProducer(handle string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, descriptor := range r.producerDescriptors {
		if descriptor.HasHandle(handle) {
			return descriptor.Name, true
		}
	}
	return "", false
}

func (r *ProducerIndexer) ProducerDescriptors() []*ProducerDescriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	descriptors := make([]*ProducerDescriptor, len(r.producerDescriptors))
	copy(descriptors, r.producerDescriptors)
	return descriptors
}
