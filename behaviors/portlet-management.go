package behaviors

import (
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/telemetrytv/wsrp"
)

// ClonePrefix starts the handle of every portlet created by ClonePortlet.
const ClonePrefix = "clone-"

type storedPortlet struct {
	parentHandle string
	properties   map[string]wsrp.Property
}

// BasicPortletManagementBehavior keeps consumer configured portlets in
// memory. Offered portlets come from the registry's service description and
// are read only; clones carry their own properties and can be destroyed.
type BasicPortletManagementBehavior struct {
	*wsrp.BasePortletManagementBehavior
	registry *wsrp.BehaviorRegistry

	mu       sync.RWMutex
	portlets map[string]*storedPortlet
}

func NewBasicPortletManagementBehavior(registry *wsrp.BehaviorRegistry) *BasicPortletManagementBehavior {
	if registry == nil {
		panic("registry cannot be nil")
	}
	return &BasicPortletManagementBehavior{
		BasePortletManagementBehavior: wsrp.NewBasePortletManagementBehavior(),
		registry:                      registry,
		portlets:                      map[string]*storedPortlet{},
	}
}

// offered reports whether handle is a producer offered portlet.
func (b *BasicPortletManagementBehavior) offered(handle string) bool {
	_, ok := b.registry.ServiceDescriptionBehavior().PortletDescription(handle)
	return ok
}

// Clones returns the handles of all cloned portlets.
func (b *BasicPortletManagementBehavior) Clones() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	handles := make([]string, 0, len(b.portlets))
	for handle := range b.portlets {
		handles = append(handles, handle)
	}
	sort.Strings(handles)
	return handles
}

func (b *BasicPortletManagementBehavior) clone(handle string) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	properties := map[string]wsrp.Property{}
	parentHandle := handle
	if parent, ok := b.portlets[handle]; ok {
		parentHandle = parent.parentHandle
		for name, property := range parent.properties {
			properties[name] = property
		}
	} else if !b.offered(handle) {
		return "", wsrp.NewFault(wsrp.InvalidHandle, "unknown portlet handle %q", handle)
	}

	newHandle := ClonePrefix + uuid.NewString()
	b.portlets[newHandle] = &storedPortlet{parentHandle: parentHandle, properties: properties}
	return newHandle, nil
}

func (b *BasicPortletManagementBehavior) ClonePortlet(req *wsrp.ClonePortlet) (*wsrp.PortletContext, error) {
	b.IncrementCallCount()

	handle, err := b.clone(req.PortletContext.PortletHandle)
	if err != nil {
		return nil, err
	}
	return &wsrp.PortletContext{PortletHandle: handle}, nil
}

func (b *BasicPortletManagementBehavior) CopyPortlets(req *wsrp.CopyPortlets) (*wsrp.CopyPortletsResponse, error) {
	b.IncrementCallCount()

	resp := &wsrp.CopyPortletsResponse{}
	for _, from := range req.FromPortletContexts {
		handle, err := b.clone(from.PortletHandle)
		if err != nil {
			resp.FailedPortlets = append(resp.FailedPortlets, wsrp.FailedPortlet{
				PortletHandle: from.PortletHandle,
				Reason:        err.Error(),
			})
			continue
		}
		resp.CopiedPortlets = append(resp.CopiedPortlets, wsrp.CopiedPortlet{
			FromPortletHandle: from.PortletHandle,
			NewPortletContext: wsrp.PortletContext{PortletHandle: handle},
		})
	}
	return resp, nil
}

func (b *BasicPortletManagementBehavior) DestroyPortlets(req *wsrp.DestroyPortlets) (*wsrp.DestroyPortletsResponse, error) {
	b.IncrementCallCount()

	if len(req.PortletHandles) == 0 {
		return nil, wsrp.NewFault(wsrp.MissingParameters, "no portlet handles to destroy")
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	resp := &wsrp.DestroyPortletsResponse{}
	for _, handle := range req.PortletHandles {
		if _, ok := b.portlets[handle]; !ok {
			resp.FailedPortlets = append(resp.FailedPortlets, wsrp.FailedPortlet{
				PortletHandle: handle,
				Reason:        "not a consumer configured portlet",
			})
			continue
		}
		delete(b.portlets, handle)
	}
	return resp, nil
}

func (b *BasicPortletManagementBehavior) SetPortletProperties(req *wsrp.SetPortletProperties) (*wsrp.PortletContext, error) {
	b.IncrementCallCount()

	handle := req.PortletContext.PortletHandle

	b.mu.Lock()
	defer b.mu.Unlock()

	portlet, ok := b.portlets[handle]
	if !ok {
		if b.offered(handle) {
			return nil, wsrp.NewFault(wsrp.InconsistentParameters, "offered portlet %q cannot be modified, clone it first", handle)
		}
		return nil, wsrp.NewFault(wsrp.InvalidHandle, "unknown portlet handle %q", handle)
	}

	for _, name := range req.PropertyList.ResetProperties {
		delete(portlet.properties, name)
	}
	for _, property := range req.PropertyList.Properties {
		portlet.properties[property.Name] = property
	}
	return &wsrp.PortletContext{PortletHandle: handle}, nil
}

func (b *BasicPortletManagementBehavior) GetPortletProperties(req *wsrp.GetPortletProperties) (*wsrp.PropertyList, error) {
	b.IncrementCallCount()

	handle := req.PortletContext.PortletHandle

	b.mu.RLock()
	defer b.mu.RUnlock()

	portlet, ok := b.portlets[handle]
	if !ok {
		if b.offered(handle) {
			return &wsrp.PropertyList{}, nil
		}
		return nil, wsrp.NewFault(wsrp.InvalidHandle, "unknown portlet handle %q", handle)
	}

	names := req.Names
	if len(names) == 0 {
		for name := range portlet.properties {
			names = append(names, name)
		}
		sort.Strings(names)
	}

	list := &wsrp.PropertyList{}
	for _, name := range names {
		if property, ok := portlet.properties[name]; ok {
			list.Properties = append(list.Properties, property)
		}
	}
	return list, nil
}

func (b *BasicPortletManagementBehavior) GetPortletPropertyDescription(req *wsrp.GetPortletPropertyDescription) (*wsrp.PortletPropertyDescriptionResponse, error) {
	b.IncrementCallCount()

	handle := req.PortletContext.PortletHandle

	b.mu.RLock()
	defer b.mu.RUnlock()

	portlet, ok := b.portlets[handle]
	if !ok {
		if b.offered(handle) {
			return &wsrp.PortletPropertyDescriptionResponse{}, nil
		}
		return nil, wsrp.NewFault(wsrp.InvalidHandle, "unknown portlet handle %q", handle)
	}

	names := make([]string, 0, len(portlet.properties))
	for name := range portlet.properties {
		names = append(names, name)
	}
	sort.Strings(names)

	model := &wsrp.ModelDescription{}
	for _, name := range names {
		model.PropertyDescriptions = append(model.PropertyDescriptions, wsrp.PropertyDescription{
			Name:  name,
			Type:  wsrp.XSDString,
			Label: name,
			Hint:  name,
		})
	}
	return &wsrp.PortletPropertyDescriptionResponse{ModelDescription: model}, nil
}

func (b *BasicPortletManagementBehavior) GetPortletDescription(req *wsrp.GetPortletDescription) (*wsrp.PortletDescriptionResponse, error) {
	b.IncrementCallCount()

	handle := req.PortletContext.PortletHandle

	b.mu.RLock()
	parentHandle := handle
	if portlet, ok := b.portlets[handle]; ok {
		parentHandle = portlet.parentHandle
	}
	b.mu.RUnlock()

	description, ok := b.registry.ServiceDescriptionBehavior().PortletDescription(parentHandle)
	if !ok {
		return nil, wsrp.NewFault(wsrp.InvalidHandle, "unknown portlet handle %q", handle)
	}
	description.PortletHandle = handle
	return &wsrp.PortletDescriptionResponse{PortletDescription: description}, nil
}
