package wsrp

import (
	"sync"

	"github.com/telemetrytv/wsrp/logging"
)

var producerDebug = logging.Bind("wsrp:producer")

// Producer routes every WSRP operation to the behavior responsible for it.
// Markup operations are routed by portlet handle, the other capability areas
// to the single behavior the registry holds for them.
type Producer struct {
	Version  Version
	Registry *BehaviorRegistry
	metrics  *Metrics

	mu                  sync.RWMutex
	currentMarkupHandle string
}

var _ Services = &Producer{}

type ProducerOption func(p *Producer)

func WithMetrics(metrics *Metrics) ProducerOption {
	return func(p *Producer) {
		p.metrics = metrics
	}
}

func NewProducer(version Version, registry *BehaviorRegistry, options ...ProducerOption) *Producer {
	if registry == nil {
		registry = NewBehaviorRegistry()
	}
	p := &Producer{
		Version:  version,
		Registry: registry,
	}
	for _, option := range options {
		option(p)
	}
	return p
}

// SetCurrentMarkupHandle selects the markup behavior that answers InitCookie
// and ReleaseSessions, which carry no portlet handle.
func (p *Producer) SetCurrentMarkupHandle(handle string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.currentMarkupHandle = handle
}

func (p *Producer) CurrentMarkupHandle() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.currentMarkupHandle
}

func dispatch[Req any, Res any](p *Producer, operation Operation, req *Req, call func(req *Req) (*Res, error)) (*Res, error) {
	producerDebug.Tracef("Dispatching %s", operation)

	res, err := func() (*Res, error) {
		if !operation.SupportedBy(p.Version) {
			return nil, NewFault(OperationNotSupported, "%s is not part of WSRP %s", operation, p.Version)
		}
		if req == nil {
			return nil, NewFault(MissingParameters, "%s requires a request", operation)
		}
		return call(req)
	}()

	p.metrics.observe(operation, err)
	if err != nil {
		producerDebug.Tracef("%s failed: %v", operation, err)
		return nil, err
	}
	return res, nil
}

// rejectConsumerSession enforces that sessions are producer owned.
func rejectConsumerSession(operation Operation, runtimeContext *RuntimeContext) error {
	if runtimeContext.SessionID != "" {
		return NewFault(OperationFailed, "%s: consumers must not send a session id (got %q)", operation, runtimeContext.SessionID)
	}
	return nil
}

func (p *Producer) currentMarkupBehavior(operation Operation) (MarkupBehavior, error) {
	handle := p.CurrentMarkupHandle()
	behavior, err := p.Registry.MarkupBehaviorFor(handle)
	if err != nil {
		return nil, WrapFault(OperationFailed, err, "%s: no markup behavior for current handle %q", operation, handle)
	}
	return behavior, nil
}

func (p *Producer) registrationBehavior(operation Operation) (RegistrationBehavior, error) {
	behavior := p.Registry.RegistrationBehavior()
	if behavior == nil {
		return nil, NewFault(OperationFailed, "%s: no registration behavior configured", operation)
	}
	return behavior, nil
}

func (p *Producer) portletManagementBehavior(operation Operation) (PortletManagementBehavior, error) {
	behavior := p.Registry.PortletManagementBehavior()
	if behavior == nil {
		return nil, NewFault(OperationFailed, "%s: no portlet management behavior configured", operation)
	}
	return behavior, nil
}

// markup

func (p *Producer) GetMarkup(req *GetMarkup) (*MarkupResponse, error) {
	return dispatch(p, OpGetMarkup, req, func(req *GetMarkup) (*MarkupResponse, error) {
		if err := rejectConsumerSession(OpGetMarkup, &req.RuntimeContext); err != nil {
			return nil, err
		}
		behavior, err := p.Registry.MarkupBehaviorFor(req.PortletContext.PortletHandle)
		if err != nil {
			return nil, err
		}
		return behavior.GetMarkup(req)
	})
}

func (p *Producer) PerformBlockingInteraction(req *PerformBlockingInteraction) (*BlockingInteractionResponse, error) {
	return dispatch(p, OpPerformBlockingInteraction, req, func(req *PerformBlockingInteraction) (*BlockingInteractionResponse, error) {
		if err := rejectConsumerSession(OpPerformBlockingInteraction, &req.RuntimeContext); err != nil {
			return nil, err
		}
		behavior, err := p.Registry.MarkupBehaviorFor(req.PortletContext.PortletHandle)
		if err != nil {
			return nil, err
		}
		return behavior.PerformBlockingInteraction(req)
	})
}

// InitCookie is only legal when the service description asks consumers for a
// cookie protocol.
func (p *Producer) InitCookie(req *InitCookie) (*InitCookieResponse, error) {
	return dispatch(p, OpInitCookie, req, func(req *InitCookie) (*InitCookieResponse, error) {
		protocol := p.Registry.ServiceDescriptionBehavior().CookieProtocol()
		if protocol == "" || protocol == CookieProtocolNone {
			return nil, NewFault(OperationFailed, "initCookie: producer does not require a cookie protocol")
		}
		behavior, err := p.currentMarkupBehavior(OpInitCookie)
		if err != nil {
			return nil, err
		}
		return behavior.InitCookie(req)
	})
}

func (p *Producer) ReleaseSessions(req *ReleaseSessions) (*ReleaseSessionsResponse, error) {
	return dispatch(p, OpReleaseSessions, req, func(req *ReleaseSessions) (*ReleaseSessionsResponse, error) {
		behavior, err := p.currentMarkupBehavior(OpReleaseSessions)
		if err != nil {
			return nil, err
		}
		return behavior.ReleaseSessions(req)
	})
}

func (p *Producer) GetResource(req *GetResource) (*ResourceResponse, error) {
	return dispatch(p, OpGetResource, req, func(req *GetResource) (*ResourceResponse, error) {
		if err := rejectConsumerSession(OpGetResource, &req.RuntimeContext); err != nil {
			return nil, err
		}
		behavior, err := p.Registry.MarkupBehaviorFor(req.PortletContext.PortletHandle)
		if err != nil {
			return nil, err
		}
		return behavior.GetResource(req)
	})
}

func (p *Producer) HandleEvents(req *HandleEvents) (*HandleEventsResponse, error) {
	return dispatch(p, OpHandleEvents, req, func(req *HandleEvents) (*HandleEventsResponse, error) {
		behavior, err := p.Registry.MarkupBehaviorFor(req.PortletContext.PortletHandle)
		if err != nil {
			return nil, err
		}
		return behavior.HandleEvents(req)
	})
}

// service description

func (p *Producer) GetServiceDescription(req *GetServiceDescription) (*ServiceDescription, error) {
	return dispatch(p, OpGetServiceDescription, req, func(req *GetServiceDescription) (*ServiceDescription, error) {
		return p.Registry.ServiceDescriptionBehavior().GetServiceDescription(req)
	})
}

// registration

func (p *Producer) Register(req *Register) (*RegistrationContext, error) {
	return dispatch(p, OpRegister, req, func(req *Register) (*RegistrationContext, error) {
		behavior, err := p.registrationBehavior(OpRegister)
		if err != nil {
			return nil, err
		}
		return behavior.Register(req)
	})
}

func (p *Producer) Deregister(req *Deregister) (*ReturnAny, error) {
	return dispatch(p, OpDeregister, req, func(req *Deregister) (*ReturnAny, error) {
		behavior, err := p.registrationBehavior(OpDeregister)
		if err != nil {
			return nil, err
		}
		return behavior.Deregister(req)
	})
}

func (p *Producer) ModifyRegistration(req *ModifyRegistration) (*RegistrationState, error) {
	return dispatch(p, OpModifyRegistration, req, func(req *ModifyRegistration) (*RegistrationState, error) {
		behavior, err := p.registrationBehavior(OpModifyRegistration)
		if err != nil {
			return nil, err
		}
		return behavior.ModifyRegistration(req)
	})
}

func (p *Producer) GetRegistrationLifetime(req *GetRegistrationLifetime) (*Lifetime, error) {
	return dispatch(p, OpGetRegistrationLifetime, req, func(req *GetRegistrationLifetime) (*Lifetime, error) {
		behavior, err := p.registrationBehavior(OpGetRegistrationLifetime)
		if err != nil {
			return nil, err
		}
		return behavior.GetRegistrationLifetime(req)
	})
}

func (p *Producer) SetRegistrationLifetime(req *SetRegistrationLifetime) (*Lifetime, error) {
	return dispatch(p, OpSetRegistrationLifetime, req, func(req *SetRegistrationLifetime) (*Lifetime, error) {
		behavior, err := p.registrationBehavior(OpSetRegistrationLifetime)
		if err != nil {
			return nil, err
		}
		return behavior.SetRegistrationLifetime(req)
	})
}

// portlet management

func (p *Producer) GetPortletDescription(req *GetPortletDescription) (*PortletDescriptionResponse, error) {
	return dispatch(p, OpGetPortletDescription, req, func(req *GetPortletDescription) (*PortletDescriptionResponse, error) {
		behavior, err := p.portletManagementBehavior(OpGetPortletDescription)
		if err != nil {
			return nil, err
		}
		return behavior.GetPortletDescription(req)
	})
}

func (p *Producer) ClonePortlet(req *ClonePortlet) (*PortletContext, error) {
	return dispatch(p, OpClonePortlet, req, func(req *ClonePortlet) (*PortletContext, error) {
		behavior, err := p.portletManagementBehavior(OpClonePortlet)
		if err != nil {
			return nil, err
		}
		return behavior.ClonePortlet(req)
	})
}

func (p *Producer) DestroyPortlets(req *DestroyPortlets) (*DestroyPortletsResponse, error) {
	return dispatch(p, OpDestroyPortlets, req, func(req *DestroyPortlets) (*DestroyPortletsResponse, error) {
		behavior, err := p.portletManagementBehavior(OpDestroyPortlets)
		if err != nil {
			return nil, err
		}
		return behavior.DestroyPortlets(req)
	})
}

func (p *Producer) SetPortletProperties(req *SetPortletProperties) (*PortletContext, error) {
	return dispatch(p, OpSetPortletProperties, req, func(req *SetPortletProperties) (*PortletContext, error) {
		behavior, err := p.portletManagementBehavior(OpSetPortletProperties)
		if err != nil {
			return nil, err
		}
		return behavior.SetPortletProperties(req)
	})
}

func (p *Producer) GetPortletProperties(req *GetPortletProperties) (*PropertyList, error) {
	return dispatch(p, OpGetPortletProperties, req, func(req *GetPortletProperties) (*PropertyList, error) {
		behavior, err := p.portletManagementBehavior(OpGetPortletProperties)
		if err != nil {
			return nil, err
		}
		return behavior.GetPortletProperties(req)
	})
}

func (p *Producer) GetPortletPropertyDescription(req *GetPortletPropertyDescription) (*PortletPropertyDescriptionResponse, error) {
	return dispatch(p, OpGetPortletPropertyDescription, req, func(req *GetPortletPropertyDescription) (*PortletPropertyDescriptionResponse, error) {
		behavior, err := p.portletManagementBehavior(OpGetPortletPropertyDescription)
		if err != nil {
			return nil, err
		}
		return behavior.GetPortletPropertyDescription(req)
	})
}

func (p *Producer) CopyPortlets(req *CopyPortlets) (*CopyPortletsResponse, error) {
	return dispatch(p, OpCopyPortlets, req, func(req *CopyPortlets) (*CopyPortletsResponse, error) {
		behavior, err := p.portletManagementBehavior(OpCopyPortlets)
		if err != nil {
			return nil, err
		}
		return behavior.CopyPortlets(req)
	})
}

func (p *Producer) ExportPortlets(req *ExportPortlets) (*ExportPortletsResponse, error) {
	return dispatch(p, OpExportPortlets, req, func(req *ExportPortlets) (*ExportPortletsResponse, error) {
		behavior, err := p.portletManagementBehavior(OpExportPortlets)
		if err != nil {
			return nil, err
		}
		return behavior.ExportPortlets(req)
	})
}

func (p *Producer) ImportPortlets(req *ImportPortlets) (*ImportPortletsResponse, error) {
	return dispatch(p, OpImportPortlets, req, func(req *ImportPortlets) (*ImportPortletsResponse, error) {
		behavior, err := p.portletManagementBehavior(OpImportPortlets)
		if err != nil {
			return nil, err
		}
		return behavior.ImportPortlets(req)
	})
}

func (p *Producer) ReleaseExport(req *ReleaseExport) (*ReturnAny, error) {
	return dispatch(p, OpReleaseExport, req, func(req *ReleaseExport) (*ReturnAny, error) {
		behavior, err := p.portletManagementBehavior(OpReleaseExport)
		if err != nil {
			return nil, err
		}
		return behavior.ReleaseExport(req)
	})
}

func (p *Producer) SetExportLifetime(req *SetExportLifetime) (*Lifetime, error) {
	return dispatch(p, OpSetExportLifetime, req, func(req *SetExportLifetime) (*Lifetime, error) {
		behavior, err := p.portletManagementBehavior(OpSetExportLifetime)
		if err != nil {
			return nil, err
		}
		return behavior.SetExportLifetime(req)
	})
}

func (p *Producer) GetPortletsLifetime(req *GetPortletsLifetime) (*PortletsLifetimeResponse, error) {
	return dispatch(p, OpGetPortletsLifetime, req, func(req *GetPortletsLifetime) (*PortletsLifetimeResponse, error) {
		behavior, err := p.portletManagementBehavior(OpGetPortletsLifetime)
		if err != nil {
			return nil, err
		}
		return behavior.GetPortletsLifetime(req)
	})
}

func (p *Producer) SetPortletsLifetime(req *SetPortletsLifetime) (*PortletsLifetimeResponse, error) {
	return dispatch(p, OpSetPortletsLifetime, req, func(req *SetPortletsLifetime) (*PortletsLifetimeResponse, error) {
		behavior, err := p.portletManagementBehavior(OpSetPortletsLifetime)
		if err != nil {
			return nil, err
		}
		return behavior.SetPortletsLifetime(req)
	})
}
