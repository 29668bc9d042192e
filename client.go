package wsrp

// Client calls producers over a transport.
type Client struct {
	Transport Transport
	Version   Version
}

// ProducerClient is a remote producer. It implements Services, so it can back
// a ServiceFactory just like a local *Producer.
type ProducerClient struct {
	*Client
	Name string
}

var _ Services = &ProducerClient{}

func NewClient(transport Transport, version Version) *Client {
	return &Client{
		Transport: transport,
		Version:   version,
	}
}

func (c *Client) Producer(name string) *ProducerClient {
	return &ProducerClient{
		Client: c,
		Name:   name,
	}
}

func call[Req any, Res any](c *ProducerClient, operation Operation, req *Req) (*Res, error) {
	envelope, err := NewRequestEnvelope(c.Version, operation, req)
	if err != nil {
		return nil, err
	}
	result, err := c.Transport.Dispatch(c.Name, envelope)
	if err != nil {
		return nil, err
	}
	if err := result.Err(); err != nil {
		return nil, err
	}
	res := new(Res)
	if err := result.Decode(res); err != nil {
		return nil, err
	}
	return res, nil
}

func (c *ProducerClient) GetMarkup(req *GetMarkup) (*MarkupResponse, error) {
	return call[GetMarkup, MarkupResponse](c, OpGetMarkup, req)
}

func (c *ProducerClient) PerformBlockingInteraction(req *PerformBlockingInteraction) (*BlockingInteractionResponse, error) {
	return call[PerformBlockingInteraction, BlockingInteractionResponse](c, OpPerformBlockingInteraction, req)
}

func (c *ProducerClient) InitCookie(req *InitCookie) (*InitCookieResponse, error) {
	return call[InitCookie, InitCookieResponse](c, OpInitCookie, req)
}

func (c *ProducerClient) ReleaseSessions(req *ReleaseSessions) (*ReleaseSessionsResponse, error) {
	return call[ReleaseSessions, ReleaseSessionsResponse](c, OpReleaseSessions, req)
}

func (c *ProducerClient) GetResource(req *GetResource) (*ResourceResponse, error) {
	return call[GetResource, ResourceResponse](c, OpGetResource, req)
}

func (c *ProducerClient) HandleEvents(req *HandleEvents) (*HandleEventsResponse, error) {
	return call[HandleEvents, HandleEventsResponse](c, OpHandleEvents, req)
}

func (c *ProducerClient) GetServiceDescription(req *GetServiceDescription) (*ServiceDescription, error) {
	return call[GetServiceDescription, ServiceDescription](c, OpGetServiceDescription, req)
}

func (c *ProducerClient) Register(req *Register) (*RegistrationContext, error) {
	return call[Register, RegistrationContext](c, OpRegister, req)
}

func (c *ProducerClient) Deregister(req *Deregister) (*ReturnAny, error) {
	return call[Deregister, ReturnAny](c, OpDeregister, req)
}

func (c *ProducerClient) ModifyRegistration(req *ModifyRegistration) (*RegistrationState, error) {
	return call[ModifyRegistration, RegistrationState](c, OpModifyRegistration, req)
}

func (c *ProducerClient) GetRegistrationLifetime(req *GetRegistrationLifetime) (*Lifetime, error) {
	return call[GetRegistrationLifetime, Lifetime](c, OpGetRegistrationLifetime, req)
}

func (c *ProducerClient) SetRegistrationLifetime(req *SetRegistrationLifetime) (*Lifetime, error) {
	return call[SetRegistrationLifetime, Lifetime](c, OpSetRegistrationLifetime, req)
}

func (c *ProducerClient) GetPortletDescription(req *GetPortletDescription) (*PortletDescriptionResponse, error) {
	return call[GetPortletDescription, PortletDescriptionResponse](c, OpGetPortletDescription, req)
}

func (c *ProducerClient) ClonePortlet(req *ClonePortlet) (*PortletContext, error) {
	return call[ClonePortlet, PortletContext](c, OpClonePortlet, req)
}

func (c *ProducerClient) DestroyPortlets(req *DestroyPortlets) (*DestroyPortletsResponse, error) {
	return call[DestroyPortlets, DestroyPortletsResponse](c, OpDestroyPortlets, req)
}

func (c *ProducerClient) SetPortletProperties(req *SetPortletProperties) (*PortletContext, error) {
	return call[SetPortletProperties, PortletContext](c, OpSetPortletProperties, req)
}

func (c *ProducerClient) GetPortletProperties(req *GetPortletProperties) (*PropertyList, error) {
	return call[GetPortletProperties, PropertyList](c, OpGetPortletProperties, req)
}

func (c *ProducerClient) GetPortletPropertyDescription(req *GetPortletPropertyDescription) (*PortletPropertyDescriptionResponse, error) {
	return call[GetPortletPropertyDescription, PortletPropertyDescriptionResponse](c, OpGetPortletPropertyDescription, req)
}

func (c *ProducerClient) CopyPortlets(req *CopyPortlets) (*CopyPortletsResponse, error) {
	return call[CopyPortlets, CopyPortletsResponse](c, OpCopyPortlets, req)
}

func (c *ProducerClient) ExportPortlets(req *ExportPortlets) (*ExportPortletsResponse, error) {
	return call[ExportPortlets, ExportPortletsResponse](c, OpExportPortlets, req)
}

func (c *ProducerClient) ImportPortlets(req *ImportPortlets) (*ImportPortletsResponse, error) {
	return call[ImportPortlets, ImportPortletsResponse](c, OpImportPortlets, req)
}

func (c *ProducerClient) ReleaseExport(req *ReleaseExport) (*ReturnAny, error) {
	return call[ReleaseExport, ReturnAny](c, OpReleaseExport, req)
}

func (c *ProducerClient) SetExportLifetime(req *SetExportLifetime) (*Lifetime, error) {
	return call[SetExportLifetime, Lifetime](c, OpSetExportLifetime, req)
}

func (c *ProducerClient) GetPortletsLifetime(req *GetPortletsLifetime) (*PortletsLifetimeResponse, error) {
	return call[GetPortletsLifetime, PortletsLifetimeResponse](c, OpGetPortletsLifetime, req)
}

func (c *ProducerClient) SetPortletsLifetime(req *SetPortletsLifetime) (*PortletsLifetimeResponse, error) {
	return call[SetPortletsLifetime, PortletsLifetimeResponse](c, OpSetPortletsLifetime, req)
}
