package behaviors

import (
	"sync"

	"github.com/google/uuid"
	"github.com/telemetrytv/wsrp"
)

const (
	InitCookiePortletHandle = "initCookie"
	// CookieName is the name of the cookie issued by InitCookie.
	CookieName = "wsrp-cookie"
)

// InitCookieMarkupBehavior issues a cookie from InitCookie and refuses to
// render markup unless the request echoes a cookie it issued.
type InitCookieMarkupBehavior struct {
	*wsrp.BaseMarkupBehavior

	mu      sync.Mutex
	cookies map[string]bool
}

func NewInitCookieMarkupBehavior(registry *wsrp.BehaviorRegistry) *InitCookieMarkupBehavior {
	b := &InitCookieMarkupBehavior{cookies: map[string]bool{}}
	b.BaseMarkupBehavior = wsrp.NewBaseMarkupBehavior(registry, b)
	b.RegisterHandle(InitCookiePortletHandle)
	return b
}

func (b *InitCookieMarkupBehavior) InitCookie(req *wsrp.InitCookie) (*wsrp.InitCookieResponse, error) {
	b.IncrementCallCount()

	cookie := uuid.NewString()
	b.mu.Lock()
	b.cookies[cookie] = true
	b.mu.Unlock()

	return &wsrp.InitCookieResponse{
		Cookies: []wsrp.NamedString{{Name: CookieName, Value: cookie}},
	}, nil
}

// IssuedCookies returns the number of cookies issued so far.
func (b *InitCookieMarkupBehavior) IssuedCookies() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.cookies)
}

func (b *InitCookieMarkupBehavior) MarkupString(mode wsrp.Mode, windowState wsrp.WindowState, navigationalState string, req *wsrp.GetMarkup) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, cookie := range req.RuntimeContext.Cookies {
		if cookie.Name == CookieName && b.cookies[cookie.Value] {
			return "cookie " + cookie.Value, nil
		}
	}
	return "", wsrp.NewFault(wsrp.InvalidCookie, "request does not carry a cookie issued by initCookie")
}
