package natstransport_test

import (
	"testing"
	"time"

	natsserver "github.com/nats-io/nats-server/v2/test"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/telemetrytv/wsrp"
	"github.com/telemetrytv/wsrp/behaviors"
	natstransport "github.com/telemetrytv/wsrp/nats-transport"
)

func runServer(t *testing.T) string {
	t.Helper()

	server := natsserver.RunRandClientPortServer()
	t.Cleanup(server.Shutdown)
	return server.ClientURL()
}

func connect(t *testing.T, url string) *nats.Conn {
	t.Helper()

	conn, err := nats.Connect(url)
	require.NoError(t, err)
	t.Cleanup(conn.Close)
	return conn
}

func viewMarkup(handle string) *wsrp.GetMarkup {
	return &wsrp.GetMarkup{
		PortletContext: wsrp.PortletContext{PortletHandle: handle},
		MarkupParams: wsrp.MarkupParams{
			Locales:     []string{"en"},
			MimeTypes:   []string{wsrp.MimeTypeHTML},
			Mode:        wsrp.ModeView,
			WindowState: wsrp.WindowStateNormal,
		},
	}
}

func TestNatsTransport_Dispatch(t *testing.T) {
	url := runServer(t)
	producerConn := connect(t, url)
	producerTransport := natstransport.New(producerConn)
	consumerTransport := natstransport.New(connect(t, url))

	t.Run("round trips an envelope through a producer", func(t *testing.T) {
		registry := wsrp.NewBehaviorRegistry()
		require.NoError(t, behaviors.Install(registry, behaviors.BasicPortletHandle))
		producer := wsrp.NewProducer(wsrp.V2, registry)

		require.NoError(t, producerTransport.BindDispatch("producer", producer.HandleEnvelope))
		t.Cleanup(func() { producerTransport.UnbindDispatch("producer") })
		require.NoError(t, producerConn.Flush())

		request, err := wsrp.NewRequestEnvelope(wsrp.V2, wsrp.OpGetMarkup, viewMarkup(behaviors.BasicPortletHandle))
		require.NoError(t, err)
		response, err := consumerTransport.Dispatch("producer", request)
		require.NoError(t, err)
		require.NoError(t, response.Err())

		markup := &wsrp.MarkupResponse{}
		require.NoError(t, response.Decode(markup))
		assert.Equal(t, behaviors.BasicMarkup, markup.MarkupContext.MarkupString)
	})

	t.Run("turns a handler panic into an operation failed fault", func(t *testing.T) {
		require.NoError(t, producerTransport.BindDispatch("panicking", func(envelope *wsrp.Envelope) *wsrp.Envelope {
			panic("handler exploded")
		}))
		t.Cleanup(func() { producerTransport.UnbindDispatch("panicking") })
		require.NoError(t, producerConn.Flush())

		response, err := consumerTransport.Dispatch("panicking", &wsrp.Envelope{Operation: wsrp.OpGetMarkup, Version: wsrp.V2})
		require.NoError(t, err)
		assert.Equal(t, wsrp.OpGetMarkup, response.Operation)

		fault, ok := wsrp.AsFault(response.Err())
		require.True(t, ok)
		assert.Equal(t, wsrp.OperationFailed, fault.Code)
		assert.Contains(t, fault.Message, "handler exploded")
	})

	t.Run("stops answering after unbinding", func(t *testing.T) {
		require.NoError(t, producerTransport.BindDispatch("unbound", func(envelope *wsrp.Envelope) *wsrp.Envelope {
			return &wsrp.Envelope{Operation: envelope.Operation, Version: envelope.Version}
		}))
		require.NoError(t, producerConn.Flush())

		_, err := consumerTransport.Dispatch("unbound", &wsrp.Envelope{Operation: wsrp.OpGetMarkup, Version: wsrp.V2})
		require.NoError(t, err)

		require.NoError(t, producerTransport.UnbindDispatch("unbound"))
		require.NoError(t, producerConn.Flush())

		_, err = consumerTransport.Dispatch("unbound", &wsrp.Envelope{Operation: wsrp.OpGetMarkup, Version: wsrp.V2})
		assert.Error(t, err)
	})
}

func TestNatsTransport_Announce(t *testing.T) {
	url := runServer(t)
	conn := connect(t, url)
	transport := natstransport.New(conn)
	announcer := natstransport.New(connect(t, url))

	t.Run("delivers producer announcements", func(t *testing.T) {
		received := make(chan *wsrp.ProducerDescriptor, 1)
		require.NoError(t, transport.BindProducerAnnounce("consumer", func(d *wsrp.ProducerDescriptor) {
			received <- d
		}))
		t.Cleanup(func() { transport.UnbindProducerAnnounce("consumer") })
		require.NoError(t, conn.Flush())

		require.NoError(t, announcer.AnnounceProducer(&wsrp.ProducerDescriptor{
			Name:           "producer",
			Version:        wsrp.V2,
			PortletHandles: []string{behaviors.BasicPortletHandle},
		}))

		select {
		case d := <-received:
			assert.Equal(t, "producer", d.Name)
			assert.Equal(t, wsrp.V2, d.Version)
			assert.Equal(t, []string{behaviors.BasicPortletHandle}, d.PortletHandles)
		case <-time.After(2 * time.Second):
			t.Fatal("producer announcement not delivered")
		}
	})

	t.Run("delivers consumer announcements", func(t *testing.T) {
		received := make(chan *wsrp.ConsumerDescriptor, 1)
		require.NoError(t, transport.BindConsumerAnnounce("producer", func(d *wsrp.ConsumerDescriptor) {
			received <- d
		}))
		t.Cleanup(func() { transport.UnbindConsumerAnnounce("producer") })
		require.NoError(t, conn.Flush())

		require.NoError(t, announcer.AnnounceConsumer(&wsrp.ConsumerDescriptor{Name: "consumer"}))

		select {
		case d := <-received:
			assert.Equal(t, "consumer", d.Name)
		case <-time.After(2 * time.Second):
			t.Fatal("consumer announcement not delivered")
		}
	})
}

func TestNatsTransport_UnbindAnnounce(t *testing.T) {
	conn := connect(t, runServer(t))
	transport := natstransport.New(conn)
	baseline := conn.NumSubscriptions()

	noop := func(*wsrp.ProducerDescriptor) {}
	require.NoError(t, transport.BindProducerAnnounce("consumer-a", noop))
	require.NoError(t, transport.BindProducerAnnounce("consumer-a", noop))
	require.NoError(t, transport.BindProducerAnnounce("consumer-b", noop))
	require.NoError(t, transport.BindConsumerAnnounce("producer", func(*wsrp.ConsumerDescriptor) {}))
	assert.Equal(t, baseline+4, conn.NumSubscriptions())

	require.NoError(t, transport.UnbindProducerAnnounce("consumer-a"))
	assert.Equal(t, baseline+2, conn.NumSubscriptions())

	require.NoError(t, transport.UnbindProducerAnnounce("consumer-a"))
	require.NoError(t, transport.UnbindProducerAnnounce("consumer-b"))
	require.NoError(t, transport.UnbindConsumerAnnounce("producer"))
	assert.Equal(t, baseline, conn.NumSubscriptions())
}

func TestNatsTransport_Federation(t *testing.T) {
	url := runServer(t)
	producerConn := connect(t, url)

	registry := wsrp.NewBehaviorRegistry()
	require.NoError(t, behaviors.Install(registry, behaviors.BasicPortletHandle))
	service := wsrp.NewProducerService("producer", natstransport.New(producerConn), wsrp.NewProducer(wsrp.V2, registry))
	require.NoError(t, service.Start())
	t.Cleanup(func() { service.Stop() })
	require.NoError(t, producerConn.Flush())

	consumer := wsrp.NewConsumer("consumer", wsrp.V2, natstransport.New(connect(t, url)))
	require.NoError(t, consumer.Start())
	t.Cleanup(func() { consumer.Stop() })

	assert.Eventually(t, func() bool {
		_, err := consumer.ProducerFor(behaviors.BasicPortletHandle)
		return err == nil
	}, 2*time.Second, 10*time.Millisecond)

	resp, err := consumer.GetMarkup(viewMarkup(behaviors.BasicPortletHandle))
	require.NoError(t, err)
	assert.Equal(t, behaviors.BasicMarkup, resp.MarkupContext.MarkupString)
}
