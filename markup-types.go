package wsrp

import "time"

// Mode is a portlet mode such as wsrp:view.
type Mode string

const (
	ModeView    Mode = "wsrp:view"
	ModeEdit    Mode = "wsrp:edit"
	ModeHelp    Mode = "wsrp:help"
	ModePreview Mode = "wsrp:preview"
)

// WindowState is a portlet window state such as wsrp:normal.
type WindowState string

const (
	WindowStateNormal    WindowState = "wsrp:normal"
	WindowStateMinimized WindowState = "wsrp:minimized"
	WindowStateMaximized WindowState = "wsrp:maximized"
	WindowStateSolo      WindowState = "wsrp:solo"
)

// MimeTypeHTML is the MIME type of all markup generated by markup behaviors.
const MimeTypeHTML = "text/html"

type Extension struct {
	Name  string `msgpack:"name"`
	Value string `msgpack:"value"`
}

type NamedString struct {
	Name  string `msgpack:"name"`
	Value string `msgpack:"value"`
}

type RegistrationContext struct {
	RegistrationHandle string `msgpack:"registrationHandle"`
	RegistrationState  []byte `msgpack:"registrationState"`
}

type PortletContext struct {
	PortletHandle string `msgpack:"portletHandle"`
	PortletState  []byte `msgpack:"portletState"`
}

// RuntimeContext carries per request information from the consumer. A
// non-empty SessionID is never legal: sessions are producer owned.
type RuntimeContext struct {
	UserAuthentication string `msgpack:"userAuthentication"`
	PortletInstanceKey string `msgpack:"portletInstanceKey"`
	NamespacePrefix    string `msgpack:"namespacePrefix"`
	SessionID          string `msgpack:"sessionID"`
	// Cookies echoes the cookies the producer set through InitCookie or a
	// previous response.
	Cookies []NamedString `msgpack:"cookies"`
}

type UserContext struct {
	UserContextKey string   `msgpack:"userContextKey"`
	UserCategories []string `msgpack:"userCategories"`
}

type MarkupParams struct {
	Secure               bool          `msgpack:"secure"`
	Locales              []string      `msgpack:"locales"`
	MimeTypes            []string      `msgpack:"mimeTypes"`
	Mode                 Mode          `msgpack:"mode"`
	WindowState          WindowState   `msgpack:"windowState"`
	NavigationalState    string        `msgpack:"navigationalState"`
	MarkupCharacterSets  []string      `msgpack:"markupCharacterSets"`
	ValidNewModes        []Mode        `msgpack:"validNewModes"`
	ValidNewWindowStates []WindowState `msgpack:"validNewWindowStates"`
}

type GetMarkup struct {
	RegistrationContext *RegistrationContext `msgpack:"registrationContext"`
	PortletContext      PortletContext       `msgpack:"portletContext"`
	RuntimeContext      RuntimeContext       `msgpack:"runtimeContext"`
	UserContext         *UserContext         `msgpack:"userContext"`
	MarkupParams        MarkupParams         `msgpack:"markupParams"`
}

type CacheControl struct {
	Expires     int    `msgpack:"expires"`
	UserScope   string `msgpack:"userScope"`
	ValidateTag string `msgpack:"validateTag"`
}

type MarkupContext struct {
	MimeType          string        `msgpack:"mimeType"`
	MarkupString      string        `msgpack:"markupString"`
	Locale            string        `msgpack:"locale"`
	RequiresRewriting bool          `msgpack:"requiresRewriting"`
	UseCachedMarkup   bool          `msgpack:"useCachedMarkup"`
	PreferredTitle    string        `msgpack:"preferredTitle"`
	CacheControl      *CacheControl `msgpack:"cacheControl"`
}

type SessionContext struct {
	SessionID string `msgpack:"sessionID"`
	Expires   int    `msgpack:"expires"`
}

type MarkupResponse struct {
	MarkupContext  MarkupContext   `msgpack:"markupContext"`
	SessionContext *SessionContext `msgpack:"sessionContext"`
	Extensions     []Extension     `msgpack:"extensions"`
}

type InteractionParams struct {
	InteractionState   string        `msgpack:"interactionState"`
	FormParameters     []NamedString `msgpack:"formParameters"`
	PortletStateChange string        `msgpack:"portletStateChange"`
}

type PerformBlockingInteraction struct {
	GetMarkup
	InteractionParams InteractionParams `msgpack:"interactionParams"`
}

type UpdateResponse struct {
	SessionContext    *SessionContext `msgpack:"sessionContext"`
	PortletContext    *PortletContext `msgpack:"portletContext"`
	MarkupContext     *MarkupContext  `msgpack:"markupContext"`
	NavigationalState string          `msgpack:"navigationalState"`
	NewWindowState    WindowState     `msgpack:"newWindowState"`
	NewMode           Mode            `msgpack:"newMode"`
}

type BlockingInteractionResponse struct {
	UpdateResponse *UpdateResponse `msgpack:"updateResponse"`
	RedirectURL    string          `msgpack:"redirectURL"`
	Extensions     []Extension     `msgpack:"extensions"`
}

type InitCookie struct {
	RegistrationContext *RegistrationContext `msgpack:"registrationContext"`
	UserContext         *UserContext         `msgpack:"userContext"`
}

// InitCookieResponse carries the cookies a producer wants the consumer to
// send back on subsequent markup calls.
type InitCookieResponse struct {
	Cookies    []NamedString `msgpack:"cookies"`
	Extensions []Extension   `msgpack:"extensions"`
}

type ReleaseSessions struct {
	RegistrationContext *RegistrationContext `msgpack:"registrationContext"`
	SessionIDs          []string             `msgpack:"sessionIDs"`
}

type ReleaseSessionsResponse struct {
	FailedSessions []string    `msgpack:"failedSessions"`
	Extensions     []Extension `msgpack:"extensions"`
}

type GetResource struct {
	GetMarkup
	ResourceID string `msgpack:"resourceID"`
}

type ResourceContext struct {
	MimeType          string `msgpack:"mimeType"`
	ItemString        string `msgpack:"itemString"`
	ItemBinary        []byte `msgpack:"itemBinary"`
	RequiresRewriting bool   `msgpack:"requiresRewriting"`
}

type ResourceResponse struct {
	ResourceContext ResourceContext `msgpack:"resourceContext"`
	Extensions      []Extension     `msgpack:"extensions"`
}

type Event struct {
	Name    string `msgpack:"name"`
	Type    string `msgpack:"type"`
	Payload []byte `msgpack:"payload"`
}

type HandleEvents struct {
	GetMarkup
	Events []Event `msgpack:"events"`
}

type FailedEvent struct {
	EventName string `msgpack:"eventName"`
	Reason    string `msgpack:"reason"`
}

type HandleEventsResponse struct {
	UpdateResponse *UpdateResponse `msgpack:"updateResponse"`
	FailedEvents   []FailedEvent   `msgpack:"failedEvents"`
}

type Lifetime struct {
	CurrentTime     time.Time     `msgpack:"currentTime"`
	TerminationTime time.Time     `msgpack:"terminationTime"`
	RefreshDuration time.Duration `msgpack:"refreshDuration"`
}
