package wsrp_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/telemetrytv/wsrp"
)

func TestFault(t *testing.T) {
	t.Run("formats code and message", func(t *testing.T) {
		assert.Equal(t, "InvalidHandle: no portlet x", wsrp.NewFault(wsrp.InvalidHandle, "no portlet %s", "x").Error())
		assert.Equal(t, "AccessDenied", (&wsrp.Fault{Code: wsrp.AccessDenied}).Error())
	})

	t.Run("is found through wrapping", func(t *testing.T) {
		err := errors.Wrap(wsrp.NewFault(wsrp.InvalidSession, "gone"), "markup")
		assert.True(t, wsrp.IsFault(err, wsrp.InvalidSession))
		assert.False(t, wsrp.IsFault(err, wsrp.InvalidHandle))
		assert.False(t, wsrp.IsFault(errors.New("plain"), wsrp.InvalidSession))
	})

	t.Run("keeps its cause", func(t *testing.T) {
		cause := wsrp.NewFault(wsrp.InvalidHandle, "unknown")
		err := wsrp.WrapFault(wsrp.OperationFailed, cause, "initCookie")

		assert.True(t, wsrp.IsFault(err, wsrp.OperationFailed))
		assert.ErrorIs(t, err, cause)
	})
}

func TestParseFaultCode(t *testing.T) {
	code, ok := wsrp.ParseFaultCode("InvalidCookie")
	assert.True(t, ok)
	assert.Equal(t, wsrp.InvalidCookie, code)

	code, ok = wsrp.ParseFaultCode("ExportByValueNotSupported")
	assert.True(t, ok)
	assert.Equal(t, wsrp.ExportByValueNotSupported, code)

	_, ok = wsrp.ParseFaultCode("invalidcookie")
	assert.False(t, ok)
	_, ok = wsrp.ParseFaultCode("")
	assert.False(t, ok)
}

func TestOperation_SupportedBy(t *testing.T) {
	assert.True(t, wsrp.OpGetMarkup.SupportedBy(wsrp.V1))
	assert.True(t, wsrp.OpGetMarkup.SupportedBy(wsrp.V2))
	assert.False(t, wsrp.OpGetResource.SupportedBy(wsrp.V1))
	assert.True(t, wsrp.OpGetResource.SupportedBy(wsrp.V2))
	assert.False(t, wsrp.OpExportPortlets.SupportedBy(wsrp.V1))
	assert.True(t, wsrp.OpClonePortlet.SupportedBy(wsrp.V1))
}

func TestParseVersion(t *testing.T) {
	for value, expected := range map[string]wsrp.Version{"1": wsrp.V1, "v1": wsrp.V1, "2": wsrp.V2, "v2": wsrp.V2} {
		version, err := wsrp.ParseVersion(value)
		assert.NoError(t, err)
		assert.Equal(t, expected, version)
	}

	_, err := wsrp.ParseVersion("3")
	assert.Error(t, err)
}
