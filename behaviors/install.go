package behaviors

import (
	"sort"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/telemetrytv/wsrp"
	"github.com/telemetrytv/wsrp/logging"
)

var installDebug = logging.Bind("wsrp:behaviors:install")

// PortletManagementBehaviorName installs BasicPortletManagementBehavior.
const PortletManagementBehaviorName = "portletManagement"

// ErrUnknownBehavior is returned by Install for a name with no factory.
var ErrUnknownBehavior = errors.New("unknown behavior")

var markupFactories = map[string]func(registry *wsrp.BehaviorRegistry) wsrp.MarkupBehavior{
	BasicPortletHandle:       func(r *wsrp.BehaviorRegistry) wsrp.MarkupBehavior { return NewBasicMarkupBehavior(r) },
	ErrorPortletHandle:       func(r *wsrp.BehaviorRegistry) wsrp.MarkupBehavior { return NewErrorMarkupBehavior(r) },
	NullPortletHandle:        func(r *wsrp.BehaviorRegistry) wsrp.MarkupBehavior { return NewNullMarkupBehavior(r) },
	InteractionPortletHandle: func(r *wsrp.BehaviorRegistry) wsrp.MarkupBehavior { return NewInteractionMarkupBehavior(r) },
	InitCookiePortletHandle:  func(r *wsrp.BehaviorRegistry) wsrp.MarkupBehavior { return NewInitCookieMarkupBehavior(r) },
	SessionPortletHandle:     func(r *wsrp.BehaviorRegistry) wsrp.MarkupBehavior { return NewSessionMarkupBehavior(r) },
	ModifyingPortletHandle:   func(r *wsrp.BehaviorRegistry) wsrp.MarkupBehavior { return NewModifyingMarkupBehavior(r) },
}

// Names lists every name Install accepts.
func Names() []string {
	names := []string{PortletManagementBehaviorName}
	for name := range markupFactories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Install creates the named behaviors and registers them with registry.
// Markup behaviors are named by the portlet handle they serve. Unknown names
// are collected and reported together; nothing is installed if any name is
// unknown.
func Install(registry *wsrp.BehaviorRegistry, names ...string) error {
	var result *multierror.Error
	for _, name := range names {
		if _, ok := markupFactories[name]; !ok && name != PortletManagementBehaviorName {
			result = multierror.Append(result, errors.Wrapf(ErrUnknownBehavior, "behavior %q", name))
		}
	}
	if err := result.ErrorOrNil(); err != nil {
		return err
	}

	for _, name := range names {
		if name == PortletManagementBehaviorName {
			installDebug.Trace("installing portlet management behavior")
			registry.SetPortletManagementBehavior(NewBasicPortletManagementBehavior(registry))
			continue
		}

		installDebug.Tracef("installing markup behavior %s", name)
		if err := registry.RegisterMarkupBehavior(markupFactories[name](registry)); err != nil {
			return errors.Wrapf(err, "failed to install behavior %q", name)
		}
	}
	return nil
}
