package wsrp

// Operation names a WSRP port type operation.
type Operation string

const (
	// markup port type
	OpGetMarkup                  Operation = "getMarkup"
	OpPerformBlockingInteraction Operation = "performBlockingInteraction"
	OpInitCookie                 Operation = "initCookie"
	OpReleaseSessions            Operation = "releaseSessions"
	OpGetResource                Operation = "getResource"
	OpHandleEvents               Operation = "handleEvents"

	// service description port type
	OpGetServiceDescription Operation = "getServiceDescription"

	// registration port type
	OpRegister                Operation = "register"
	OpDeregister              Operation = "deregister"
	OpModifyRegistration      Operation = "modifyRegistration"
	OpGetRegistrationLifetime Operation = "getRegistrationLifetime"
	OpSetRegistrationLifetime Operation = "setRegistrationLifetime"

	// portlet management port type
	OpGetPortletDescription         Operation = "getPortletDescription"
	OpClonePortlet                  Operation = "clonePortlet"
	OpDestroyPortlets               Operation = "destroyPortlets"
	OpSetPortletProperties          Operation = "setPortletProperties"
	OpGetPortletProperties          Operation = "getPortletProperties"
	OpGetPortletPropertyDescription Operation = "getPortletPropertyDescription"
	OpCopyPortlets                  Operation = "copyPortlets"
	OpExportPortlets                Operation = "exportPortlets"
	OpImportPortlets                Operation = "importPortlets"
	OpReleaseExport                 Operation = "releaseExport"
	OpSetExportLifetime             Operation = "setExportLifetime"
	OpGetPortletsLifetime           Operation = "getPortletsLifetime"
	OpSetPortletsLifetime           Operation = "setPortletsLifetime"
)

var v2OnlyOperations = map[Operation]bool{
	OpGetResource:             true,
	OpHandleEvents:            true,
	OpGetRegistrationLifetime: true,
	OpSetRegistrationLifetime: true,
	OpCopyPortlets:            true,
	OpExportPortlets:          true,
	OpImportPortlets:          true,
	OpReleaseExport:           true,
	OpSetExportLifetime:       true,
	OpGetPortletsLifetime:     true,
	OpSetPortletsLifetime:     true,
}

// SupportedBy reports whether the operation exists in the given protocol
// version.
func (o Operation) SupportedBy(version Version) bool {
	if version == V1 {
		return !v2OnlyOperations[o]
	}
	return version == V2
}
