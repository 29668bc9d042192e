package wsrp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/telemetrytv/wsrp"
	"github.com/telemetrytv/wsrp/behaviors"
)

func TestProducer_HandleEnvelope(t *testing.T) {
	producer := newProducer(t, wsrp.V2, behaviors.BasicPortletHandle)

	t.Run("answers a request", func(t *testing.T) {
		req, err := wsrp.NewRequestEnvelope(wsrp.V2, wsrp.OpGetMarkup, viewMarkup(behaviors.BasicPortletHandle))
		require.NoError(t, err)

		res := producer.HandleEnvelope(req)
		require.NoError(t, res.Err())
		assert.Equal(t, wsrp.OpGetMarkup, res.Operation)

		markup := &wsrp.MarkupResponse{}
		require.NoError(t, res.Decode(markup))
		assert.Equal(t, behaviors.BasicMarkup, markup.MarkupContext.MarkupString)
	})

	t.Run("rejects unknown operations", func(t *testing.T) {
		res := producer.HandleEnvelope(&wsrp.Envelope{Operation: "bogus", Version: wsrp.V2})
		assert.True(t, wsrp.IsFault(res.Err(), wsrp.OperationFailed))
	})

	t.Run("rejects other protocol versions", func(t *testing.T) {
		req, err := wsrp.NewRequestEnvelope(wsrp.V1, wsrp.OpGetMarkup, viewMarkup(behaviors.BasicPortletHandle))
		require.NoError(t, err)

		res := producer.HandleEnvelope(req)
		assert.True(t, wsrp.IsFault(res.Err(), wsrp.OperationFailed))
	})

	t.Run("reports undecodable payloads", func(t *testing.T) {
		res := producer.HandleEnvelope(&wsrp.Envelope{Operation: wsrp.OpGetMarkup, Version: wsrp.V2, Payload: []byte{0xc1}})
		assert.True(t, wsrp.IsFault(res.Err(), wsrp.MissingParameters))
	})

	t.Run("carries not yet implemented apart from faults", func(t *testing.T) {
		req, err := wsrp.NewRequestEnvelope(wsrp.V2, wsrp.OpHandleEvents, &wsrp.HandleEvents{GetMarkup: *viewMarkup(behaviors.BasicPortletHandle)})
		require.NoError(t, err)

		res := producer.HandleEnvelope(req)
		assert.Nil(t, res.Fault)
		assert.NotEmpty(t, res.NotYetImplemented)
		assert.ErrorIs(t, res.Err(), wsrp.ErrNotYetImplemented)
	})
}

func TestEnvelope_Marshal(t *testing.T) {
	envelope := &wsrp.Envelope{
		Operation: wsrp.OpGetMarkup,
		Version:   wsrp.V1,
		Fault:     wsrp.NewFault(wsrp.InvalidCookie, "expired"),
	}

	data, err := wsrp.MarshalEnvelope(envelope)
	require.NoError(t, err)
	decoded, err := wsrp.UnmarshalEnvelope(data)
	require.NoError(t, err)

	assert.Equal(t, wsrp.V1, decoded.Version)
	fault, ok := wsrp.AsFault(decoded.Err())
	require.True(t, ok)
	assert.Equal(t, wsrp.InvalidCookie, fault.Code)
	assert.Equal(t, "expired", fault.Message)

	_, err = wsrp.UnmarshalEnvelope([]byte{0xc1})
	assert.Error(t, err)
}
