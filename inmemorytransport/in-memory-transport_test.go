package inmemorytransport_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/telemetrytv/wsrp"
	"github.com/telemetrytv/wsrp/inmemorytransport"
)

func TestInMemoryTransport_Dispatch(t *testing.T) {
	t.Run("fails without a bound producer", func(t *testing.T) {
		transport := inmemorytransport.New()

		_, err := transport.Dispatch("producer", &wsrp.Envelope{Operation: wsrp.OpGetMarkup})
		assert.Error(t, err)
	})

	t.Run("hands the producer an encoded copy", func(t *testing.T) {
		transport := inmemorytransport.New()
		sent := &wsrp.Envelope{Operation: wsrp.OpGetMarkup, Version: wsrp.V2, Payload: []byte{0x80}}

		var received *wsrp.Envelope
		require.NoError(t, transport.BindDispatch("producer", func(envelope *wsrp.Envelope) *wsrp.Envelope {
			received = envelope
			return &wsrp.Envelope{Operation: envelope.Operation, Version: envelope.Version, Fault: wsrp.NewFault(wsrp.AccessDenied, "no")}
		}))

		result, err := transport.Dispatch("producer", sent)
		require.NoError(t, err)
		require.NotNil(t, received)
		assert.NotSame(t, sent, received)
		assert.Equal(t, sent.Payload, received.Payload)
		assert.True(t, wsrp.IsFault(result.Err(), wsrp.AccessDenied))

		require.NoError(t, transport.UnbindDispatch("producer"))
		_, err = transport.Dispatch("producer", sent)
		assert.Error(t, err)
	})
}

func TestInMemoryTransport_Announce(t *testing.T) {
	transport := inmemorytransport.New()

	var producers []*wsrp.ProducerDescriptor
	require.NoError(t, transport.BindProducerAnnounce("consumer", func(d *wsrp.ProducerDescriptor) {
		producers = append(producers, d)
	}))
	var consumers []*wsrp.ConsumerDescriptor
	require.NoError(t, transport.BindConsumerAnnounce("producer", func(d *wsrp.ConsumerDescriptor) {
		consumers = append(consumers, d)
	}))

	descriptor := &wsrp.ProducerDescriptor{Name: "producer", PortletHandles: []string{"markup"}}
	require.NoError(t, transport.AnnounceProducer(descriptor))
	require.NoError(t, transport.AnnounceConsumer(&wsrp.ConsumerDescriptor{Name: "consumer"}))

	require.Len(t, producers, 1)
	assert.NotSame(t, descriptor, producers[0])
	assert.Equal(t, descriptor.PortletHandles, producers[0].PortletHandles)
	require.Len(t, consumers, 1)
	assert.Equal(t, "consumer", consumers[0].Name)

	require.NoError(t, transport.UnbindProducerAnnounce("consumer"))
	require.NoError(t, transport.UnbindConsumerAnnounce("producer"))
	require.NoError(t, transport.AnnounceProducer(descriptor))
	assert.Len(t, producers, 1)
}

func TestInMemoryTransport_UnbindAnnounce(t *testing.T) {
	transport := inmemorytransport.New()

	var received []string
	for _, owner := range []string{"producer-a", "producer-b"} {
		owner := owner
		require.NoError(t, transport.BindConsumerAnnounce(owner, func(d *wsrp.ConsumerDescriptor) {
			received = append(received, owner)
		}))
	}

	require.NoError(t, transport.UnbindConsumerAnnounce("producer-a"))
	require.NoError(t, transport.UnbindConsumerAnnounce("unknown"))
	require.NoError(t, transport.AnnounceConsumer(&wsrp.ConsumerDescriptor{Name: "consumer"}))
	assert.Equal(t, []string{"producer-b"}, received)
}
