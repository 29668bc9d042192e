package httpbinding_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/telemetrytv/wsrp"
	"github.com/telemetrytv/wsrp/behaviors"
	httpbinding "github.com/telemetrytv/wsrp/http-binding"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()

	registry := wsrp.NewBehaviorRegistry()
	require.NoError(t, behaviors.Install(registry, behaviors.BasicPortletHandle, behaviors.ErrorPortletHandle))

	server := httptest.NewServer(httpbinding.New(wsrp.NewProducer(wsrp.V2, registry)))
	t.Cleanup(server.Close)
	return server
}

func getMarkupEnvelope(t *testing.T, version wsrp.Version, handle string) *wsrp.Envelope {
	t.Helper()

	envelope, err := wsrp.NewRequestEnvelope(version, wsrp.OpGetMarkup, &wsrp.GetMarkup{
		PortletContext: wsrp.PortletContext{PortletHandle: handle},
		MarkupParams:   wsrp.MarkupParams{Mode: wsrp.ModeView, WindowState: wsrp.WindowStateNormal},
	})
	require.NoError(t, err)
	return envelope
}

func TestBinding(t *testing.T) {
	server := newServer(t)

	t.Run("answers an operation", func(t *testing.T) {
		result, err := httpbinding.Dispatch(server.Client(), server.URL, getMarkupEnvelope(t, wsrp.V2, behaviors.BasicPortletHandle))
		require.NoError(t, err)
		require.NoError(t, result.Err())

		resp := &wsrp.MarkupResponse{}
		require.NoError(t, result.Decode(resp))
		assert.Equal(t, behaviors.BasicMarkup, resp.MarkupContext.MarkupString)
		assert.True(t, resp.MarkupContext.RequiresRewriting)
	})

	t.Run("carries faults", func(t *testing.T) {
		result, err := httpbinding.Dispatch(server.Client(), server.URL, getMarkupEnvelope(t, wsrp.V2, behaviors.ErrorPortletHandle))
		require.NoError(t, err)
		assert.True(t, wsrp.IsFault(result.Err(), wsrp.OperationFailed))
	})

	t.Run("carries invalid handles", func(t *testing.T) {
		result, err := httpbinding.Dispatch(server.Client(), server.URL, getMarkupEnvelope(t, wsrp.V2, "unknown"))
		require.NoError(t, err)
		assert.True(t, wsrp.IsFault(result.Err(), wsrp.InvalidHandle))
	})

	t.Run("carries not yet implemented", func(t *testing.T) {
		envelope, err := wsrp.NewRequestEnvelope(wsrp.V2, wsrp.OpGetResource, &wsrp.GetResource{
			GetMarkup: wsrp.GetMarkup{PortletContext: wsrp.PortletContext{PortletHandle: behaviors.BasicPortletHandle}},
		})
		require.NoError(t, err)

		result, err := httpbinding.Dispatch(server.Client(), server.URL, envelope)
		require.NoError(t, err)
		assert.ErrorIs(t, result.Err(), wsrp.ErrNotYetImplemented)
	})

	t.Run("rejects a version mismatch", func(t *testing.T) {
		result, err := httpbinding.Dispatch(server.Client(), server.URL, getMarkupEnvelope(t, wsrp.V1, behaviors.BasicPortletHandle))
		require.NoError(t, err)
		assert.True(t, wsrp.IsFault(result.Err(), wsrp.OperationFailed))
	})
}

func TestBinding_StatusCodes(t *testing.T) {
	server := newServer(t)

	post := func(t *testing.T, operation string, version string, body []byte) *http.Response {
		t.Helper()

		req, err := http.NewRequest(http.MethodPost, server.URL+httpbinding.PathPrefix+operation, bytes.NewReader(body))
		require.NoError(t, err)
		req.Header.Set(httpbinding.VersionHeader, version)

		res, err := server.Client().Do(req)
		require.NoError(t, err)
		t.Cleanup(func() { res.Body.Close() })
		return res
	}

	t.Run("ok", func(t *testing.T) {
		envelope := getMarkupEnvelope(t, wsrp.V2, behaviors.BasicPortletHandle)
		res := post(t, string(wsrp.OpGetMarkup), "2", envelope.Payload)
		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.Equal(t, httpbinding.ContentType, res.Header.Get("Content-Type"))
	})

	t.Run("fault", func(t *testing.T) {
		envelope := getMarkupEnvelope(t, wsrp.V2, behaviors.ErrorPortletHandle)
		res := post(t, string(wsrp.OpGetMarkup), "2", envelope.Payload)
		assert.Equal(t, http.StatusInternalServerError, res.StatusCode)
	})

	t.Run("bad version header", func(t *testing.T) {
		res := post(t, string(wsrp.OpGetMarkup), "3", nil)
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	})
}
