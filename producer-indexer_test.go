package wsrp_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/telemetrytv/wsrp"
)

func TestProducerIndexer_SetProducerDescriptor(t *testing.T) {
	r := &wsrp.ProducerIndexer{}

	r.SetProducerDescriptor(&wsrp.ProducerDescriptor{Name: "producer", Version: wsrp.V2, PortletHandles: []string{"a"}})
	descriptors := r.ProducerDescriptors()
	require.Len(t, descriptors, 1)
	require.NotNil(t, descriptors[0].LastSeenAt)
	firstSeen := *descriptors[0].LastSeenAt

	t.Run("replaces an indexed producer", func(t *testing.T) {
		previous := descriptors[0]
		r.SetProducerDescriptor(&wsrp.ProducerDescriptor{Name: "producer", Version: wsrp.V2, PortletHandles: []string{"b"}})

		descriptors := r.ProducerDescriptors()
		require.Len(t, descriptors, 1)
		assert.Equal(t, []string{"b"}, descriptors[0].PortletHandles)
		assert.False(t, descriptors[0].LastSeenAt.Before(firstSeen))

		assert.Equal(t, []string{"a"}, previous.PortletHandles)
		assert.Equal(t, firstSeen, *previous.LastSeenAt)
	})

	t.Run("keeps its own copy of the announced handles", func(t *testing.T) {
		handles := []string{"c"}
		r.SetProducerDescriptor(&wsrp.ProducerDescriptor{Name: "producer", Version: wsrp.V2, PortletHandles: handles})
		handles[0] = "changed"

		assert.Equal(t, []string{"c"}, r.ProducerDescriptors()[0].PortletHandles)
	})
}

func TestProducerIndexer_ConcurrentAccess(t *testing.T) {
	r := &wsrp.ProducerIndexer{}
	r.SetProducerDescriptor(&wsrp.ProducerDescriptor{Name: "producer", PortletHandles: []string{"a"}})

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			r.SetProducerDescriptor(&wsrp.ProducerDescriptor{Name: "producer", PortletHandles: []string{"a", "b"}})
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			for _, descriptor := range r.ProducerDescriptors() {
				_ = len(descriptor.PortletHandles)
				_ = descriptor.LastSeenAt.IsZero()
			}
		}
	}()
	wg.Wait()

	descriptors := r.ProducerDescriptors()
	require.Len(t, descriptors, 1)
	assert.Equal(t, []string{"a", "b"}, descriptors[0].PortletHandles)
}

func TestProducerIndexer_UnsetProducer(t *testing.T) {
	r := &wsrp.ProducerIndexer{}
	r.SetProducerDescriptor(&wsrp.ProducerDescriptor{Name: "a"})
	r.SetProducerDescriptor(&wsrp.ProducerDescriptor{Name: "b"})

	r.UnsetProducer("a")
	descriptors := r.ProducerDescriptors()
	require.Len(t, descriptors, 1)
	assert.Equal(t, "b", descriptors[0].Name)

	r.UnsetProducer("unknown")
	assert.Len(t, r.ProducerDescriptors(), 1)
}

func TestProducerIndexer_ResolveProducer(t *testing.T) {
	r := &wsrp.ProducerIndexer{}
	r.SetProducerDescriptor(&wsrp.ProducerDescriptor{Name: "first", PortletHandles: []string{"markup", "error"}})
	r.SetProducerDescriptor(&wsrp.ProducerDescriptor{Name: "second", PortletHandles: []string{"markup", "null"}})

	name, ok := r.ResolveProducer("markup")
	assert.True(t, ok)
	assert.Equal(t, "first", name)

	name, ok = r.ResolveProducer("null")
	assert.True(t, ok)
	assert.Equal(t, "second", name)

	_, ok = r.ResolveProducer("unknown")
	assert.False(t, ok)
}
