package wsrp_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/telemetrytv/wsrp"
)

type literalRenderer struct {
	markup string
	err    error
}

func (r *literalRenderer) MarkupString(mode wsrp.Mode, windowState wsrp.WindowState, navigationalState string, req *wsrp.GetMarkup) (string, error) {
	return r.markup, r.err
}

func newMarkupBehavior(registry *wsrp.BehaviorRegistry, markup string, handles ...string) *wsrp.BaseMarkupBehavior {
	behavior := wsrp.NewBaseMarkupBehavior(registry, &literalRenderer{markup: markup})
	for _, handle := range handles {
		behavior.RegisterHandle(handle)
	}
	return behavior
}

func TestBehaviorRegistry_RegisterMarkupBehavior(t *testing.T) {
	t.Run("binds every supported handle", func(t *testing.T) {
		registry := wsrp.NewBehaviorRegistry()
		behavior := newMarkupBehavior(registry, "markup", "b", "a")

		require.NoError(t, registry.RegisterMarkupBehavior(behavior))
		assert.Equal(t, []string{"a", "b"}, registry.Handles())

		for _, handle := range []string{"a", "b"} {
			bound, err := registry.MarkupBehaviorFor(handle)
			require.NoError(t, err)
			assert.Same(t, behavior, bound)
		}
	})

	t.Run("re-registering the same behavior is a no-op", func(t *testing.T) {
		registry := wsrp.NewBehaviorRegistry()
		behavior := newMarkupBehavior(registry, "markup", "a")

		require.NoError(t, registry.RegisterMarkupBehavior(behavior))
		require.NoError(t, registry.RegisterMarkupBehavior(behavior))
		assert.Equal(t, []string{"a"}, registry.Handles())
	})

	t.Run("rejects conflicting handles without binding any", func(t *testing.T) {
		registry := wsrp.NewBehaviorRegistry()
		first := newMarkupBehavior(registry, "first", "a", "b")
		second := newMarkupBehavior(registry, "second", "c", "a", "b")
		require.NoError(t, registry.RegisterMarkupBehavior(first))

		err := registry.RegisterMarkupBehavior(second)
		require.Error(t, err)
		assert.True(t, errors.Is(err, wsrp.ErrHandleAlreadyRegistered))
		assert.Contains(t, err.Error(), `"a"`)
		assert.Contains(t, err.Error(), `"b"`)

		assert.Equal(t, []string{"a", "b"}, registry.Handles())
		_, err = registry.MarkupBehaviorFor("c")
		assert.True(t, wsrp.IsFault(err, wsrp.InvalidHandle))

		bound, err := registry.MarkupBehaviorFor("a")
		require.NoError(t, err)
		assert.Same(t, first, bound)
	})

	t.Run("rejects nil", func(t *testing.T) {
		assert.Error(t, wsrp.NewBehaviorRegistry().RegisterMarkupBehavior(nil))
	})
}

func TestBehaviorRegistry_MarkupBehaviorFor(t *testing.T) {
	registry := wsrp.NewBehaviorRegistry()

	_, err := registry.MarkupBehaviorFor("unknown")
	require.Error(t, err)
	assert.True(t, wsrp.IsFault(err, wsrp.InvalidHandle))
	assert.Contains(t, err.Error(), "unknown")
}

func TestBehaviorRegistry_ServiceDescriptionBehavior(t *testing.T) {
	t.Run("falls back to a per registry default", func(t *testing.T) {
		first := wsrp.NewBehaviorRegistry()
		second := wsrp.NewBehaviorRegistry()

		sd := first.ServiceDescriptionBehavior()
		require.NotNil(t, sd)
		assert.False(t, sd.RequiresRegistration())
		assert.Nil(t, sd.RegistrationProperties())
		assert.Equal(t, wsrp.CookieProtocolNone, sd.CookieProtocol())
		assert.NotSame(t, sd, second.ServiceDescriptionBehavior())

		_, ok := first.LookupServiceDescriptionBehavior()
		assert.False(t, ok)
	})

	t.Run("uses the injected default", func(t *testing.T) {
		defaultBehavior := wsrp.NewServiceDescriptionBehaviorFrom(wsrp.CreateServiceDescription(true, 1))
		registry := wsrp.NewBehaviorRegistry(wsrp.WithDefaultServiceDescription(defaultBehavior))

		assert.Same(t, defaultBehavior, registry.ServiceDescriptionBehavior())
	})

	t.Run("prefers the behavior set explicitly", func(t *testing.T) {
		registry := wsrp.NewBehaviorRegistry()
		behavior := wsrp.NewServiceDescriptionBehavior()
		registry.SetServiceDescriptionBehavior(behavior)

		assert.Same(t, behavior, registry.ServiceDescriptionBehavior())
		looked, ok := registry.LookupServiceDescriptionBehavior()
		assert.True(t, ok)
		assert.Same(t, behavior, looked)
	})
}

func TestBehaviorRegistry_Clear(t *testing.T) {
	setup := func() (*wsrp.BehaviorRegistry, *wsrp.ServiceDescriptionBehavior) {
		registry := wsrp.NewBehaviorRegistry()
		sd := wsrp.NewServiceDescriptionBehavior()
		registry.SetServiceDescriptionBehavior(sd)
		registry.SetRegistrationBehavior(wsrp.NewBaseRegistrationBehavior())
		registry.SetPortletManagementBehavior(wsrp.NewBasePortletManagementBehavior())
		require.NoError(t, registry.RegisterMarkupBehavior(newMarkupBehavior(registry, "markup", "markup")))
		return registry, sd
	}

	t.Run("Clear only unbinds markup handles", func(t *testing.T) {
		registry, sd := setup()
		registry.Clear()

		assert.Empty(t, registry.Handles())
		assert.Same(t, sd, registry.ServiceDescriptionBehavior())
		assert.NotNil(t, registry.RegistrationBehavior())
		assert.NotNil(t, registry.PortletManagementBehavior())
	})

	t.Run("ClearAll empties every slot", func(t *testing.T) {
		registry, sd := setup()
		registry.ClearAll()

		assert.Empty(t, registry.Handles())
		assert.NotSame(t, sd, registry.ServiceDescriptionBehavior())
		assert.Nil(t, registry.RegistrationBehavior())
		assert.Nil(t, registry.PortletManagementBehavior())
	})

	t.Run("Reset clears the selected slots", func(t *testing.T) {
		registry, sd := setup()
		registry.Reset(wsrp.ResetRegistration | wsrp.ResetPortletManagement)

		assert.Equal(t, []string{"markup"}, registry.Handles())
		assert.Same(t, sd, registry.ServiceDescriptionBehavior())
		assert.Nil(t, registry.RegistrationBehavior())
		assert.Nil(t, registry.PortletManagementBehavior())
	})
}
