package wsrp_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/telemetrytv/wsrp"
)

func TestCreateServiceDescription(t *testing.T) {
	t.Run("builds the registration property model", func(t *testing.T) {
		sd := wsrp.CreateServiceDescription(true, 3)

		assert.True(t, sd.RequiresRegistration)
		require.NotNil(t, sd.RegistrationPropertyDescription)
		properties := sd.RegistrationPropertyDescription.PropertyDescriptions
		require.Len(t, properties, 3)
		for i, property := range properties {
			name := fmt.Sprintf("prop%d", i)
			assert.Equal(t, name, property.Name)
			assert.Equal(t, wsrp.XSDString, property.Type)
			assert.Equal(t, name, property.Label)
			assert.Equal(t, name, property.Hint)
		}
	})

	t.Run("omits the model without registration", func(t *testing.T) {
		sd := wsrp.CreateServiceDescription(false, 3)

		assert.False(t, sd.RequiresRegistration)
		assert.Nil(t, sd.RegistrationPropertyDescription)
	})
}

func TestServiceDescriptionBehavior_GetServiceDescription(t *testing.T) {
	behavior := wsrp.NewServiceDescriptionBehaviorFrom(wsrp.CreateServiceDescription(true, 1))
	behavior.SetCookieProtocol(wsrp.CookieProtocolPerGroup)
	behavior.SetLocales("en", "de")
	behavior.AddPortletDescription(wsrp.CreatePortletDescription("a"))
	behavior.AddPortletDescription(wsrp.CreatePortletDescription("b"))

	t.Run("describes every portlet", func(t *testing.T) {
		sd, err := behavior.GetServiceDescription(&wsrp.GetServiceDescription{})
		require.NoError(t, err)
		assert.True(t, sd.RequiresRegistration)
		assert.Equal(t, wsrp.CookieProtocolPerGroup, sd.RequiresInitCookie)
		assert.Equal(t, []string{"en", "de"}, sd.Locales)
		assert.Len(t, sd.OfferedPortlets, 2)
		assert.Len(t, sd.RegistrationPropertyDescription.PropertyDescriptions, 1)
	})

	t.Run("filters by portlet handle", func(t *testing.T) {
		sd, err := behavior.GetServiceDescription(&wsrp.GetServiceDescription{PortletHandles: []string{"b"}})
		require.NoError(t, err)
		require.Len(t, sd.OfferedPortlets, 1)
		assert.Equal(t, "b", sd.OfferedPortlets[0].PortletHandle)
	})

	t.Run("accepts a nil request", func(t *testing.T) {
		sd, err := behavior.GetServiceDescription(nil)
		require.NoError(t, err)
		assert.Len(t, sd.OfferedPortlets, 2)
	})

	assert.Equal(t, 3, behavior.CallCount())
}

func TestServiceDescriptionBehavior_PortletDescription(t *testing.T) {
	behavior := wsrp.NewServiceDescriptionBehavior()
	behavior.AddPortletDescription(wsrp.CreatePortletDescription("a"))

	description, ok := behavior.PortletDescription("a")
	assert.True(t, ok)
	assert.Equal(t, "a", description.PortletHandle)

	_, ok = behavior.PortletDescription("b")
	assert.False(t, ok)
}

func TestParseCookieProtocol(t *testing.T) {
	for value, expected := range map[string]wsrp.CookieProtocol{
		"":         wsrp.CookieProtocolNone,
		"none":     wsrp.CookieProtocolNone,
		"perUser":  wsrp.CookieProtocolPerUser,
		"perGroup": wsrp.CookieProtocolPerGroup,
	} {
		protocol, err := wsrp.ParseCookieProtocol(value)
		require.NoError(t, err)
		assert.Equal(t, expected, protocol)
	}

	_, err := wsrp.ParseCookieProtocol("perSession")
	assert.Error(t, err)
}
