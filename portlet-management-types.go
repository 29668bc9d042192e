package wsrp

type GetPortletDescription struct {
	RegistrationContext *RegistrationContext `msgpack:"registrationContext"`
	PortletContext      PortletContext       `msgpack:"portletContext"`
	UserContext         *UserContext         `msgpack:"userContext"`
	DesiredLocales      []string             `msgpack:"desiredLocales"`
}

type PortletDescriptionResponse struct {
	PortletDescription PortletDescription `msgpack:"portletDescription"`
}

type ClonePortlet struct {
	RegistrationContext *RegistrationContext `msgpack:"registrationContext"`
	PortletContext      PortletContext       `msgpack:"portletContext"`
	UserContext         *UserContext         `msgpack:"userContext"`
}

type DestroyPortlets struct {
	RegistrationContext *RegistrationContext `msgpack:"registrationContext"`
	PortletHandles      []string             `msgpack:"portletHandles"`
}

type FailedPortlet struct {
	PortletHandle string `msgpack:"portletHandle"`
	Reason        string `msgpack:"reason"`
}

type DestroyPortletsResponse struct {
	FailedPortlets []FailedPortlet `msgpack:"failedPortlets"`
}

type PropertyList struct {
	Properties      []Property `msgpack:"properties"`
	ResetProperties []string   `msgpack:"resetProperties"`
}

type SetPortletProperties struct {
	RegistrationContext *RegistrationContext `msgpack:"registrationContext"`
	PortletContext      PortletContext       `msgpack:"portletContext"`
	UserContext         *UserContext         `msgpack:"userContext"`
	PropertyList        PropertyList         `msgpack:"propertyList"`
}

type GetPortletProperties struct {
	RegistrationContext *RegistrationContext `msgpack:"registrationContext"`
	PortletContext      PortletContext       `msgpack:"portletContext"`
	UserContext         *UserContext         `msgpack:"userContext"`
	Names               []string             `msgpack:"names"`
}

type GetPortletPropertyDescription struct {
	RegistrationContext *RegistrationContext `msgpack:"registrationContext"`
	PortletContext      PortletContext       `msgpack:"portletContext"`
	UserContext         *UserContext         `msgpack:"userContext"`
	DesiredLocales      []string             `msgpack:"desiredLocales"`
}

type PortletPropertyDescriptionResponse struct {
	ModelDescription *ModelDescription `msgpack:"modelDescription"`
}

type CopyPortlets struct {
	ToRegistrationContext   *RegistrationContext `msgpack:"toRegistrationContext"`
	FromRegistrationContext *RegistrationContext `msgpack:"fromRegistrationContext"`
	FromPortletContexts     []PortletContext     `msgpack:"fromPortletContexts"`
}

type CopiedPortlet struct {
	FromPortletHandle string         `msgpack:"fromPortletHandle"`
	NewPortletContext PortletContext `msgpack:"newPortletContext"`
}

type CopyPortletsResponse struct {
	CopiedPortlets []CopiedPortlet `msgpack:"copiedPortlets"`
	FailedPortlets []FailedPortlet `msgpack:"failedPortlets"`
}

type ExportPortlets struct {
	RegistrationContext *RegistrationContext `msgpack:"registrationContext"`
	PortletContexts     []PortletContext     `msgpack:"portletContexts"`
	ExportByValue       bool                 `msgpack:"exportByValue"`
	Lifetime            *Lifetime            `msgpack:"lifetime"`
}

type ExportedPortlet struct {
	PortletHandle string `msgpack:"portletHandle"`
	ExportData    []byte `msgpack:"exportData"`
}

type ExportPortletsResponse struct {
	ExportContext    []byte            `msgpack:"exportContext"`
	ExportedPortlets []ExportedPortlet `msgpack:"exportedPortlets"`
	FailedPortlets   []FailedPortlet   `msgpack:"failedPortlets"`
	Lifetime         *Lifetime         `msgpack:"lifetime"`
}

type ImportPortlet struct {
	ImportID   string `msgpack:"importID"`
	ExportData []byte `msgpack:"exportData"`
}

type ImportPortlets struct {
	RegistrationContext *RegistrationContext `msgpack:"registrationContext"`
	ImportContext       []byte               `msgpack:"importContext"`
	ImportList          []ImportPortlet      `msgpack:"importList"`
	Lifetime            *Lifetime            `msgpack:"lifetime"`
}

type ImportedPortlet struct {
	ImportID          string         `msgpack:"importID"`
	NewPortletContext PortletContext `msgpack:"newPortletContext"`
}

type ImportPortletsResponse struct {
	ImportedPortlets []ImportedPortlet `msgpack:"importedPortlets"`
	ImportFailed     []FailedPortlet   `msgpack:"importFailed"`
}

type ReleaseExport struct {
	RegistrationContext *RegistrationContext `msgpack:"registrationContext"`
	ExportContext       []byte               `msgpack:"exportContext"`
}

type SetExportLifetime struct {
	RegistrationContext *RegistrationContext `msgpack:"registrationContext"`
	ExportContext       []byte               `msgpack:"exportContext"`
	Lifetime            *Lifetime            `msgpack:"lifetime"`
}

type GetPortletsLifetime struct {
	RegistrationContext *RegistrationContext `msgpack:"registrationContext"`
	PortletContexts     []PortletContext     `msgpack:"portletContexts"`
}

type PortletLifetime struct {
	PortletContext       PortletContext `msgpack:"portletContext"`
	ScheduledDestruction *Lifetime      `msgpack:"scheduledDestruction"`
}

type PortletsLifetimeResponse struct {
	PortletLifetimes []PortletLifetime `msgpack:"portletLifetimes"`
	FailedPortlets   []FailedPortlet   `msgpack:"failedPortlets"`
}

type SetPortletsLifetime struct {
	RegistrationContext *RegistrationContext `msgpack:"registrationContext"`
	PortletContexts     []PortletContext     `msgpack:"portletContexts"`
	Lifetime            *Lifetime            `msgpack:"lifetime"`
}
