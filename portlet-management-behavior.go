package wsrp

type PortletManagementBehavior interface {
	PortletManagementCapability
	CallCount() int
}

// BasePortletManagementBehavior counts every call and stubs none of them.
// Behaviors embed it and override what their tests need.
type BasePortletManagementBehavior struct {
	CallCounter
}

var _ PortletManagementBehavior = &BasePortletManagementBehavior{}

func NewBasePortletManagementBehavior() *BasePortletManagementBehavior {
	return &BasePortletManagementBehavior{}
}

func (b *BasePortletManagementBehavior) GetPortletDescription(req *GetPortletDescription) (*PortletDescriptionResponse, error) {
	b.IncrementCallCount()
	return nil, notYetImplemented(OpGetPortletDescription)
}

func (b *BasePortletManagementBehavior) ClonePortlet(req *ClonePortlet) (*PortletContext, error) {
	b.IncrementCallCount()
	return nil, notYetImplemented(OpClonePortlet)
}

func (b *BasePortletManagementBehavior) DestroyPortlets(req *DestroyPortlets) (*DestroyPortletsResponse, error) {
	b.IncrementCallCount()
	return nil, notYetImplemented(OpDestroyPortlets)
}

func (b *BasePortletManagementBehavior) SetPortletProperties(req *SetPortletProperties) (*PortletContext, error) {
	b.IncrementCallCount()
	return nil, notYetImplemented(OpSetPortletProperties)
}

func (b *BasePortletManagementBehavior) GetPortletProperties(req *GetPortletProperties) (*PropertyList, error) {
	b.IncrementCallCount()
	return nil, notYetImplemented(OpGetPortletProperties)
}

func (b *BasePortletManagementBehavior) GetPortletPropertyDescription(req *GetPortletPropertyDescription) (*PortletPropertyDescriptionResponse, error) {
	b.IncrementCallCount()
	return nil, notYetImplemented(OpGetPortletPropertyDescription)
}

func (b *BasePortletManagementBehavior) CopyPortlets(req *CopyPortlets) (*CopyPortletsResponse, error) {
	b.IncrementCallCount()
	return nil, notYetImplemented(OpCopyPortlets)
}

func (b *BasePortletManagementBehavior) ExportPortlets(req *ExportPortlets) (*ExportPortletsResponse, error) {
	b.IncrementCallCount()
	return nil, notYetImplemented(OpExportPortlets)
}

func (b *BasePortletManagementBehavior) ImportPortlets(req *ImportPortlets) (*ImportPortletsResponse, error) {
	b.IncrementCallCount()
	return nil, notYetImplemented(OpImportPortlets)
}

func (b *BasePortletManagementBehavior) ReleaseExport(req *ReleaseExport) (*ReturnAny, error) {
	b.IncrementCallCount()
	return nil, notYetImplemented(OpReleaseExport)
}

func (b *BasePortletManagementBehavior) SetExportLifetime(req *SetExportLifetime) (*Lifetime, error) {
	b.IncrementCallCount()
	return nil, notYetImplemented(OpSetExportLifetime)
}

func (b *BasePortletManagementBehavior) GetPortletsLifetime(req *GetPortletsLifetime) (*PortletsLifetimeResponse, error) {
	b.IncrementCallCount()
	return nil, notYetImplemented(OpGetPortletsLifetime)
}

func (b *BasePortletManagementBehavior) SetPortletsLifetime(req *SetPortletsLifetime) (*PortletsLifetimeResponse, error) {
	b.IncrementCallCount()
	return nil, notYetImplemented(OpSetPortletsLifetime)
}
