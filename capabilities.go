package wsrp

// MarkupCapability is the WSRP markup port type.
type MarkupCapability interface {
	GetMarkup(req *GetMarkup) (*MarkupResponse, error)
	PerformBlockingInteraction(req *PerformBlockingInteraction) (*BlockingInteractionResponse, error)
	InitCookie(req *InitCookie) (*InitCookieResponse, error)
	ReleaseSessions(req *ReleaseSessions) (*ReleaseSessionsResponse, error)
	GetResource(req *GetResource) (*ResourceResponse, error)
	HandleEvents(req *HandleEvents) (*HandleEventsResponse, error)
}

// ServiceDescriptionCapability is the WSRP service description port type.
type ServiceDescriptionCapability interface {
	GetServiceDescription(req *GetServiceDescription) (*ServiceDescription, error)
}

// RegistrationCapability is the WSRP registration port type.
type RegistrationCapability interface {
	Register(req *Register) (*RegistrationContext, error)
	Deregister(req *Deregister) (*ReturnAny, error)
	ModifyRegistration(req *ModifyRegistration) (*RegistrationState, error)
	GetRegistrationLifetime(req *GetRegistrationLifetime) (*Lifetime, error)
	SetRegistrationLifetime(req *SetRegistrationLifetime) (*Lifetime, error)
}

// PortletManagementCapability is the WSRP portlet management port type.
type PortletManagementCapability interface {
	GetPortletDescription(req *GetPortletDescription) (*PortletDescriptionResponse, error)
	ClonePortlet(req *ClonePortlet) (*PortletContext, error)
	DestroyPortlets(req *DestroyPortlets) (*DestroyPortletsResponse, error)
	SetPortletProperties(req *SetPortletProperties) (*PortletContext, error)
	GetPortletProperties(req *GetPortletProperties) (*PropertyList, error)
	GetPortletPropertyDescription(req *GetPortletPropertyDescription) (*PortletPropertyDescriptionResponse, error)
	CopyPortlets(req *CopyPortlets) (*CopyPortletsResponse, error)
	ExportPortlets(req *ExportPortlets) (*ExportPortletsResponse, error)
	ImportPortlets(req *ImportPortlets) (*ImportPortletsResponse, error)
	ReleaseExport(req *ReleaseExport) (*ReturnAny, error)
	SetExportLifetime(req *SetExportLifetime) (*Lifetime, error)
	GetPortletsLifetime(req *GetPortletsLifetime) (*PortletsLifetimeResponse, error)
	SetPortletsLifetime(req *SetPortletsLifetime) (*PortletsLifetimeResponse, error)
}

// Services is the full surface of a producer, either local or remote.
type Services interface {
	MarkupCapability
	ServiceDescriptionCapability
	RegistrationCapability
	PortletManagementCapability
}
