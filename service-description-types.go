package wsrp

import "fmt"

// CookieProtocol tells the consumer whether, and how often, it must call
// InitCookie before markup calls.
type CookieProtocol string

const (
	CookieProtocolNone     CookieProtocol = "none"
	CookieProtocolPerUser  CookieProtocol = "perUser"
	CookieProtocolPerGroup CookieProtocol = "perGroup"
)

// ParseCookieProtocol maps a configuration value onto a cookie protocol. An
// empty value means none.
func ParseCookieProtocol(value string) (CookieProtocol, error) {
	switch CookieProtocol(value) {
	case "", CookieProtocolNone:
		return CookieProtocolNone, nil
	case CookieProtocolPerUser, CookieProtocolPerGroup:
		return CookieProtocol(value), nil
	}
	return "", fmt.Errorf("unknown cookie protocol %q", value)
}

// XSDString is the qualified name of the XML schema string type.
const XSDString = "xsd:string"

type PropertyDescription struct {
	Name  string `msgpack:"name"`
	Type  string `msgpack:"type"`
	Label string `msgpack:"label"`
	Hint  string `msgpack:"hint"`
}

type ModelDescription struct {
	PropertyDescriptions []PropertyDescription `msgpack:"propertyDescriptions"`
}

type MarkupType struct {
	MimeType     string        `msgpack:"mimeType"`
	Modes        []Mode        `msgpack:"modes"`
	WindowStates []WindowState `msgpack:"windowStates"`
	Locales      []string      `msgpack:"locales"`
}

type PortletDescription struct {
	PortletHandle string       `msgpack:"portletHandle"`
	GroupID       string       `msgpack:"groupID"`
	Title         string       `msgpack:"title"`
	DisplayName   string       `msgpack:"displayName"`
	Description   string       `msgpack:"description"`
	MarkupTypes   []MarkupType `msgpack:"markupTypes"`
}

// CreatePortletDescription describes a portlet serving text/html in view
// mode and normal window state, which is all markup behaviors render.
func CreatePortletDescription(handle string) PortletDescription {
	return PortletDescription{
		PortletHandle: handle,
		Title:         handle,
		DisplayName:   handle,
		Description:   handle + " portlet",
		MarkupTypes: []MarkupType{{
			MimeType:     MimeTypeHTML,
			Modes:        []Mode{ModeView},
			WindowStates: []WindowState{WindowStateNormal},
			Locales:      []string{"en"},
		}},
	}
}

type ServiceDescription struct {
	RequiresRegistration            bool                 `msgpack:"requiresRegistration"`
	OfferedPortlets                 []PortletDescription `msgpack:"offeredPortlets"`
	RequiresInitCookie              CookieProtocol       `msgpack:"requiresInitCookie"`
	RegistrationPropertyDescription *ModelDescription    `msgpack:"registrationPropertyDescription"`
	Locales                         []string             `msgpack:"locales"`
}

type GetServiceDescription struct {
	RegistrationContext *RegistrationContext `msgpack:"registrationContext"`
	DesiredLocales      []string             `msgpack:"desiredLocales"`
	// PortletHandles restricts the offered portlets (v2).
	PortletHandles []string     `msgpack:"portletHandles"`
	UserContext    *UserContext `msgpack:"userContext"`
}
