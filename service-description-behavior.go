package wsrp

import (
	"fmt"
	"sync"
)

// ServiceDescriptionBehavior answers GetServiceDescription from the portlet
// descriptions published by markup behaviors and a few producer wide flags.
type ServiceDescriptionBehavior struct {
	CallCounter

	mu                     sync.RWMutex
	offeredPortlets        []PortletDescription
	requiresRegistration   bool
	cookieProtocol         CookieProtocol
	registrationProperties *ModelDescription
	locales                []string
}

var _ ServiceDescriptionCapability = &ServiceDescriptionBehavior{}

// NewServiceDescriptionBehavior describes a producer that offers no portlets,
// requires no registration and no cookie protocol.
func NewServiceDescriptionBehavior() *ServiceDescriptionBehavior {
	return &ServiceDescriptionBehavior{
		cookieProtocol: CookieProtocolNone,
	}
}

// NewServiceDescriptionBehaviorFrom answers with the given description.
func NewServiceDescriptionBehaviorFrom(sd *ServiceDescription) *ServiceDescriptionBehavior {
	b := NewServiceDescriptionBehavior()
	if sd == nil {
		return b
	}
	b.offeredPortlets = append(b.offeredPortlets, sd.OfferedPortlets...)
	b.requiresRegistration = sd.RequiresRegistration
	if sd.RequiresInitCookie != "" {
		b.cookieProtocol = sd.RequiresInitCookie
	}
	b.registrationProperties = sd.RegistrationPropertyDescription
	b.locales = append(b.locales, sd.Locales...)
	return b
}

func (b *ServiceDescriptionBehavior) AddPortletDescription(description PortletDescription) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.offeredPortlets = append(b.offeredPortlets, description)
}

func (b *ServiceDescriptionBehavior) PortletDescriptions() []PortletDescription {
	b.mu.RLock()
	defer b.mu.RUnlock()

	descriptions := make([]PortletDescription, len(b.offeredPortlets))
	copy(descriptions, b.offeredPortlets)
	return descriptions
}

// PortletDescription returns the description published for handle.
func (b *ServiceDescriptionBehavior) PortletDescription(handle string) (PortletDescription, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, description := range b.offeredPortlets {
		if description.PortletHandle == handle {
			return description, true
		}
	}
	return PortletDescription{}, false
}

func (b *ServiceDescriptionBehavior) RequiresRegistration() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.requiresRegistration
}

func (b *ServiceDescriptionBehavior) SetRequiresRegistration(requiresRegistration bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.requiresRegistration = requiresRegistration
}

func (b *ServiceDescriptionBehavior) CookieProtocol() CookieProtocol {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.cookieProtocol
}

func (b *ServiceDescriptionBehavior) SetCookieProtocol(protocol CookieProtocol) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if protocol == "" {
		protocol = CookieProtocolNone
	}
	b.cookieProtocol = protocol
}

func (b *ServiceDescriptionBehavior) RegistrationProperties() *ModelDescription {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.registrationProperties
}

func (b *ServiceDescriptionBehavior) SetRegistrationProperties(model *ModelDescription) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.registrationProperties = model
}

func (b *ServiceDescriptionBehavior) SetLocales(locales ...string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.locales = locales
}

// GetServiceDescription never fails. A v2 request listing portlet handles
// only gets the descriptions of those portlets.
func (b *ServiceDescriptionBehavior) GetServiceDescription(req *GetServiceDescription) (*ServiceDescription, error) {
	b.IncrementCallCount()

	b.mu.RLock()
	defer b.mu.RUnlock()

	sd := &ServiceDescription{
		RequiresRegistration:            b.requiresRegistration,
		RequiresInitCookie:              b.cookieProtocol,
		RegistrationPropertyDescription: b.registrationProperties,
		Locales:                         append([]string(nil), b.locales...),
	}

	var wanted map[string]bool
	if req != nil && len(req.PortletHandles) > 0 {
		wanted = map[string]bool{}
		for _, handle := range req.PortletHandles {
			wanted[handle] = true
		}
	}
	for _, description := range b.offeredPortlets {
		if wanted == nil || wanted[description.PortletHandle] {
			sd.OfferedPortlets = append(sd.OfferedPortlets, description)
		}
	}
	return sd, nil
}

// CreateServiceDescription builds a description whose registration property
// model holds numberOfProperties string properties named prop0, prop1, ...
// The model is only present when registration is required.
func CreateServiceDescription(requiresRegistration bool, numberOfProperties int) *ServiceDescription {
	sd := &ServiceDescription{
		RequiresRegistration: requiresRegistration,
		RequiresInitCookie:   CookieProtocolNone,
	}
	if !requiresRegistration {
		return sd
	}

	model := &ModelDescription{
		PropertyDescriptions: make([]PropertyDescription, 0, numberOfProperties),
	}
	for i := 0; i < numberOfProperties; i++ {
		name := fmt.Sprintf("prop%d", i)
		model.PropertyDescriptions = append(model.PropertyDescriptions, PropertyDescription{
			Name:  name,
			Type:  XSDString,
			Label: name,
			Hint:  name,
		})
	}
	sd.RegistrationPropertyDescription = model
	return sd
}
