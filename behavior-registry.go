package wsrp

import (
	"sort"
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/telemetrytv/wsrp/logging"
)

var registryDebug = logging.Bind("wsrp:registry")

// ErrHandleAlreadyRegistered is returned when a markup behavior claims a
// handle already bound to another behavior.
var ErrHandleAlreadyRegistered = errors.New("portlet handle already registered")

// ResetScope selects what Reset clears.
type ResetScope uint8

const (
	ResetMarkup ResetScope = 1 << iota
	ResetServiceDescription
	ResetRegistration
	ResetPortletManagement

	ResetAll = ResetMarkup | ResetServiceDescription | ResetRegistration | ResetPortletManagement
)

// BehaviorRegistry maps portlet handles to markup behaviors and holds the
// single behavior of each other capability area.
type BehaviorRegistry struct {
	mu                        sync.RWMutex
	markupBehaviors           map[string]MarkupBehavior
	defaultServiceDescription *ServiceDescriptionBehavior
	serviceDescription        *ServiceDescriptionBehavior
	registration              RegistrationBehavior
	portletManagement         PortletManagementBehavior
}

type RegistryOption func(r *BehaviorRegistry)

// WithDefaultServiceDescription sets the behavior ServiceDescriptionBehavior
// falls back to while none has been set explicitly.
func WithDefaultServiceDescription(behavior *ServiceDescriptionBehavior) RegistryOption {
	return func(r *BehaviorRegistry) {
		r.defaultServiceDescription = behavior
	}
}

func NewBehaviorRegistry(options ...RegistryOption) *BehaviorRegistry {
	r := &BehaviorRegistry{
		markupBehaviors: map[string]MarkupBehavior{},
	}
	for _, option := range options {
		option(r)
	}
	if r.defaultServiceDescription == nil {
		r.defaultServiceDescription = NewServiceDescriptionBehavior()
	}
	return r
}

// RegisterMarkupBehavior binds every handle the behavior supports. Either all
// handles are bound or, if any of them belongs to another behavior, none are.
func (r *BehaviorRegistry) RegisterMarkupBehavior(behavior MarkupBehavior) error {
	if behavior == nil {
		return errors.New("cannot register a nil markup behavior")
	}
	handles := behavior.SupportedHandles()

	r.mu.Lock()
	defer r.mu.Unlock()

	var conflicts error
	for _, handle := range handles {
		if existing, ok := r.markupBehaviors[handle]; ok && existing != behavior {
			conflicts = multierror.Append(conflicts, errors.Wrapf(ErrHandleAlreadyRegistered, "%q", handle))
		}
	}
	if conflicts != nil {
		registryDebug.Tracef("Rejected markup behavior for handles %v: %v", handles, conflicts)
		return conflicts
	}

	for _, handle := range handles {
		r.markupBehaviors[handle] = behavior
	}
	registryDebug.Tracef("Registered markup behavior for handles %v", handles)
	return nil
}

// MarkupBehaviorFor returns the behavior bound to handle, or an InvalidHandle
// fault.
func (r *BehaviorRegistry) MarkupBehaviorFor(handle string) (MarkupBehavior, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	behavior, ok := r.markupBehaviors[handle]
	if !ok {
		return nil, NewFault(InvalidHandle, "there is no registered markup behavior for handle %q", handle)
	}
	return behavior, nil
}

// Handles returns the bound handles in sorted order.
func (r *BehaviorRegistry) Handles() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	handles := make([]string, 0, len(r.markupBehaviors))
	for handle := range r.markupBehaviors {
		handles = append(handles, handle)
	}
	sort.Strings(handles)
	return handles
}

// ServiceDescriptionBehavior returns the behavior set explicitly, or the
// registry default when none is.
func (r *BehaviorRegistry) ServiceDescriptionBehavior() *ServiceDescriptionBehavior {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.serviceDescription == nil {
		return r.defaultServiceDescription
	}
	return r.serviceDescription
}

// LookupServiceDescriptionBehavior returns the explicitly set behavior and
// false when only the default is available.
func (r *BehaviorRegistry) LookupServiceDescriptionBehavior() (*ServiceDescriptionBehavior, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.serviceDescription, r.serviceDescription != nil
}

func (r *BehaviorRegistry) SetServiceDescriptionBehavior(behavior *ServiceDescriptionBehavior) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.serviceDescription = behavior
}

func (r *BehaviorRegistry) RegistrationBehavior() RegistrationBehavior {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.registration
}

func (r *BehaviorRegistry) SetRegistrationBehavior(behavior RegistrationBehavior) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.registration = behavior
}

func (r *BehaviorRegistry) PortletManagementBehavior() PortletManagementBehavior {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.portletManagement
}

func (r *BehaviorRegistry) SetPortletManagementBehavior(behavior PortletManagementBehavior) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.portletManagement = behavior
}

// Clear unbinds every markup handle. The service description, registration
// and portlet management behaviors are kept; use ClearAll to drop them too.
func (r *BehaviorRegistry) Clear() {
	r.Reset(ResetMarkup)
}

// ClearAll unbinds every markup handle and empties every behavior slot.
func (r *BehaviorRegistry) ClearAll() {
	r.Reset(ResetAll)
}

func (r *BehaviorRegistry) Reset(scope ResetScope) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if scope&ResetMarkup != 0 {
		r.markupBehaviors = map[string]MarkupBehavior{}
	}
	if scope&ResetServiceDescription != 0 {
		r.serviceDescription = nil
	}
	if scope&ResetRegistration != 0 {
		r.registration = nil
	}
	if scope&ResetPortletManagement != 0 {
		r.portletManagement = nil
	}
	registryDebug.Tracef("Reset registry with scope %04b", scope)
}
